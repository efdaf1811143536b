package indicator

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func series(from, to float64) []float64 {
	step := 1.0
	if to < from {
		step = -1
	}
	var out []float64
	for v := from; ; v += step {
		out = append(out, v)
		if v == to {
			return out
		}
	}
}

func constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func randomWalk(seed int64, n int) []float64 {
	rnd := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	price := 100.0
	for i := range out {
		price += rnd.NormFloat64() * 2
		out[i] = price
	}
	return out
}

func TestCalculate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		prices  []float64
		window  int
		wantErr error
	}{
		{
			name:    "fewer prices than the window",
			prices:  []float64{45, 46, 47, 50, 48, 47, 49, 51, 52, 53},
			window:  DefaultWindow,
			wantErr: ErrInsufficientData,
		},
		{
			name:    "empty series",
			prices:  nil,
			window:  DefaultWindow,
			wantErr: ErrInsufficientData,
		},
		{
			name:    "zero window",
			prices:  series(1, 20),
			window:  0,
			wantErr: ErrInvalidWindow,
		},
		{
			name:    "negative window",
			prices:  series(1, 20),
			window:  -3,
			wantErr: ErrInvalidWindow,
		},
		{
			name:    "NaN in series",
			prices:  append(series(1, 14), math.NaN()),
			window:  DefaultWindow,
			wantErr: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.prices, tt.window)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got, "no partial result on error")
		})
	}
}

func TestCalculate_EdgeSeries(t *testing.T) {
	tests := []struct {
		name      string
		prices    []float64
		wantFinal float64
	}{
		{name: "strictly increasing", prices: series(1, 14), wantFinal: 100},
		{name: "strictly decreasing", prices: series(14, 1), wantFinal: 0},
		{name: "flat", prices: constant(42, 20), wantFinal: NeutralValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.prices, DefaultWindow)
			require.NoError(t, err)
			require.Len(t, got, len(tt.prices))
			assert.Equal(t, tt.wantFinal, got[len(got)-1])
		})
	}
}

func TestCalculate_FlatSeriesIsNeutralEverywhere(t *testing.T) {
	got, err := Calculate(constant(101.25, 20), DefaultWindow)
	require.NoError(t, err)

	for i, v := range got {
		assert.Equal(t, NeutralValue, v, "index %d", i)
	}
}

func TestCalculate_LeadingPositionsAreNeutral(t *testing.T) {
	prices := series(1, 30)
	got, err := Calculate(prices, DefaultWindow)
	require.NoError(t, err)

	for i := 0; i < DefaultWindow-1; i++ {
		assert.Equal(t, NeutralValue, got[i], "index %d", i)
	}
	for i := DefaultWindow - 1; i < len(got); i++ {
		assert.Equal(t, 100.0, got[i], "index %d", i)
	}
}

func TestCalculate_KnownValue(t *testing.T) {
	prices := []float64{45, 46, 47, 50, 48, 47, 49, 51, 52, 53, 52, 54, 55, 53}

	got, err := Calculate(prices, 7)
	require.NoError(t, err)

	// gains in the first window: 0,1,1,3,0,0,2 = 7; losses: 0,0,0,0,2,1,0 = 3
	assert.InDelta(t, 70.0, got[6], 1e-9)

	// second window drops the seed sample and adds +2: gains 9, losses 3
	assert.InDelta(t, 75.0, got[7], 1e-9)
}

func TestCalculate_Properties(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		prices := randomWalk(seed, 250)
		for _, window := range []int{2, 7, 14, 50} {
			got, err := Calculate(prices, window)
			require.NoError(t, err)
			require.Len(t, got, len(prices))

			for i, v := range got {
				assert.GreaterOrEqual(t, v, 0.0, "seed %d window %d index %d", seed, window, i)
				assert.LessOrEqual(t, v, 100.0, "seed %d window %d index %d", seed, window, i)
			}

			again, err := Calculate(prices, window)
			require.NoError(t, err)
			assert.Equal(t, got, again, "repeated calls must be bit-identical")
		}
	}
}

func TestCalculate_OverflowingMoves(t *testing.T) {
	prices := make([]float64, 20)
	for i := range prices {
		prices[i] = math.MaxFloat64
		if i%2 == 1 {
			prices[i] = -math.MaxFloat64
		}
	}

	got, err := Calculate(prices, DefaultWindow)
	require.NoError(t, err)
	require.Len(t, got, len(prices))

	for i, v := range got {
		assert.Equal(t, NeutralValue, v, "index %d", i)
	}

	_, err = json.Marshal(got)
	assert.NoError(t, err)
}

func TestRSI_RecoversAfterOverflow(t *testing.T) {
	tail := randomWalk(3, 60)

	rsi, err := NewRSI(DefaultWindow)
	require.NoError(t, err)
	for _, p := range []float64{1e308, -1e308, 1e308} {
		rsi.Update(p)
	}

	fresh, err := NewRSI(DefaultWindow)
	require.NoError(t, err)

	for i, p := range tail {
		got, want := rsi.Update(p), fresh.Update(p)
		assert.False(t, math.IsNaN(got), "index %d", i)
		assert.GreaterOrEqual(t, got, 0.0, "index %d", i)
		assert.LessOrEqual(t, got, 100.0, "index %d", i)

		// once the big moves have left the window both calculators see the same deltas
		if i >= DefaultWindow {
			assert.InDelta(t, want, got, 1e-9, "index %d", i)
		}
	}
}

func TestCalculate_WindowOverride(t *testing.T) {
	prices := []float64{45, 46, 47, 50, 48, 47, 49, 51, 52, 53, 52, 54, 55, 53, 52, 51, 53, 56, 57, 55}

	short, err := Calculate(prices, 7)
	require.NoError(t, err)
	long, err := Calculate(prices, 14)
	require.NoError(t, err)

	assert.NotEqual(t, short, long)
	assert.Less(t, firstNonNeutral(short), firstNonNeutral(long))
}

func TestCalculate_FlatAfterMovesIsExactlyNeutral(t *testing.T) {
	prices := append([]float64{1.1, 2.3, 0.7, 3.3, 0.1}, constant(5.0, 20)...)

	got, err := Calculate(prices, 5)
	require.NoError(t, err)
	assert.Equal(t, NeutralValue, got[len(got)-1])
}

func TestRSI_IncrementalMatchesBatch(t *testing.T) {
	prices := randomWalk(7, 120)

	batch, err := Calculate(prices, DefaultWindow)
	require.NoError(t, err)

	rsi, err := NewRSI(DefaultWindow)
	require.NoError(t, err)

	for i, p := range prices {
		assert.Equal(t, batch[i], rsi.Update(p), "index %d", i)
	}
	assert.True(t, rsi.Ready())
	assert.Equal(t, DefaultWindow, rsi.Window())
}

func TestRSI_Reset(t *testing.T) {
	rsi, err := NewRSI(3)
	require.NoError(t, err)

	for _, p := range []float64{1, 2, 3, 4} {
		rsi.Update(p)
	}
	require.True(t, rsi.Ready())

	rsi.Reset()
	assert.False(t, rsi.Ready())
	assert.Equal(t, NeutralValue, rsi.Value())
	assert.Equal(t, NeutralValue, rsi.Update(10), "first price after reset carries no change")
}

func TestNewRSI_InvalidWindow(t *testing.T) {
	_, err := NewRSI(0)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestRequiredPoints(t *testing.T) {
	assert.Equal(t, MinPrices, RequiredPoints(7))
	assert.Equal(t, MinPrices, RequiredPoints(14))
	assert.Equal(t, 30, RequiredPoints(30))
}

func firstNonNeutral(values []float64) int {
	for i, v := range values {
		if v != NeutralValue {
			return i
		}
	}
	return len(values)
}
