package cnn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ayankousky/market-data-proxy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchFearGreed(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		want       domain.FearGreed
		wantErr    error
	}{
		{
			name:       "score and rating",
			statusCode: http.StatusOK,
			body:       `{"fear_and_greed":{"score":62.4571,"rating":"greed","timestamp":"2025-03-14T23:59:57+00:00"},"fear_and_greed_historical":{}}`,
			want:       domain.FearGreed{Score: 62.4571, Rating: "greed"},
		},
		{
			name:       "zero score is valid",
			statusCode: http.StatusOK,
			body:       `{"fear_and_greed":{"score":0}}`,
			want:       domain.FearGreed{Score: 0},
		},
		{
			name:       "missing section",
			statusCode: http.StatusOK,
			body:       `{"market_momentum_sp500":{}}`,
			wantErr:    domain.ErrUpstreamFormat,
		},
		{
			name:       "missing score",
			statusCode: http.StatusOK,
			body:       `{"fear_and_greed":{"rating":"fear"}}`,
			wantErr:    domain.ErrUpstreamFormat,
		},
		{
			name:       "blocked",
			statusCode: http.StatusTeapot,
			body:       `I'm a teapot`,
			wantErr:    domain.ErrUpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUA string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUA = r.Header.Get("User-Agent")
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewCNN(Config{APIUrl: server.URL})
			got, err := client.FetchFearGreed(context.Background())
			assert.Contains(t, gotUA, "Mozilla/5.0")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewCNN_Defaults(t *testing.T) {
	client := NewCNN(Config{})

	assert.Equal(t, "cnn", client.GetName())
	assert.Equal(t, DefaultAPIURL, client.apiURL)
}
