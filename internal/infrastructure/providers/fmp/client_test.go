package fmp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/ayankousky/market-data-proxy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type endpoint struct {
	status int
	body   string
}

func newFMPServer(t *testing.T, endpoints map[string]endpoint) (*httptest.Server, *sync.Map) {
	t.Helper()

	keys := &sync.Map{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/v3/")
		keys.Store(path, r.URL.Query().Get("apikey"))

		e, ok := endpoints[path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(e.status)
		_, _ = w.Write([]byte(e.body))
	}))
	t.Cleanup(server.Close)

	return server, keys
}

func ptr(v float64) *float64 {
	return &v
}

func TestClient_FetchMacro(t *testing.T) {
	okQuote := endpoint{http.StatusOK, `[{"symbol":"DXY","price":104.237}]`}
	okTreasury := endpoint{http.StatusOK, `[{"symbol":"US2Y","yield":4.6},{"symbol":"US10Y","yield":4.25}]`}
	okEconomic := endpoint{http.StatusOK, `[{"symbol":"CPI","value":3.1},{"symbol":"FEDFUNDS","value":5.33}]`}

	tests := []struct {
		name         string
		endpoints    map[string]endpoint
		want         domain.MacroSnapshot
		wantWarnings int
		wantErr      bool
	}{
		{
			name: "all sources answer",
			endpoints: map[string]endpoint{
				DXYQuotePath: okQuote,
				TreasuryPath: okTreasury,
				EconomicPath: okEconomic,
			},
			want: domain.MacroSnapshot{
				DXY:          ptr(104.237),
				TenYearYield: ptr(4.25),
				Inflation:    ptr(3.1),
				FedRate:      ptr(5.33),
			},
		},
		{
			name: "dollar index unavailable",
			endpoints: map[string]endpoint{
				DXYQuotePath: {http.StatusForbidden, `{"Error Message":"Invalid API KEY"}`},
				TreasuryPath: okTreasury,
				EconomicPath: okEconomic,
			},
			want: domain.MacroSnapshot{
				TenYearYield: ptr(4.25),
				Inflation:    ptr(3.1),
				FedRate:      ptr(5.33),
			},
			wantWarnings: 1,
		},
		{
			name: "symbols missing from lists",
			endpoints: map[string]endpoint{
				DXYQuotePath: {http.StatusOK, `[]`},
				TreasuryPath: {http.StatusOK, `[{"symbol":"US2Y","yield":4.6}]`},
				EconomicPath: {http.StatusOK, `[{"symbol":"GDP","value":2.1}]`},
			},
			want: domain.MacroSnapshot{},
		},
		{
			name: "malformed economic body",
			endpoints: map[string]endpoint{
				DXYQuotePath: okQuote,
				TreasuryPath: okTreasury,
				EconomicPath: {http.StatusOK, `{"unexpected":"object"}`},
			},
			want: domain.MacroSnapshot{
				DXY:          ptr(104.237),
				TenYearYield: ptr(4.25),
			},
			wantWarnings: 1,
		},
		{
			name:      "every source fails",
			endpoints: map[string]endpoint{},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, keys := newFMPServer(t, tt.endpoints)
			client := NewFMP(Config{APIUrl: server.URL + "/api/v3", APIKey: "secret"})

			got, err := client.FetchMacro(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
				assert.NotContains(t, err.Error(), "secret", "api key must not leak into errors")
				return
			}

			require.NoError(t, err)
			assert.Len(t, got.Warnings, tt.wantWarnings)
			for _, w := range got.Warnings {
				assert.NotContains(t, w.Error(), "secret")
			}

			got.Warnings = nil
			assert.Equal(t, tt.want, got)

			for _, path := range []string{DXYQuotePath, TreasuryPath, EconomicPath} {
				key, ok := keys.Load(path)
				require.True(t, ok, "%s was not requested", path)
				assert.Equal(t, "secret", key)
			}
		})
	}
}

func TestNewFMP_Defaults(t *testing.T) {
	client := NewFMP(Config{})

	assert.Equal(t, "fmp", client.GetName())
	assert.Equal(t, DefaultAPIURL, client.apiURL)
}
