// Package indicator computes technical indicators over price series
package indicator

import (
	"errors"
	"fmt"
	"math"

	"github.com/ayankousky/market-data-proxy/pkg/utils"
	"github.com/ayankousky/market-data-proxy/pkg/utils/mathutils"
)

const (
	// DefaultWindow is the conventional RSI look-back length
	DefaultWindow = 14

	// MinPrices is the smallest series accepted from API callers regardless of window
	MinPrices = 14

	// NeutralValue is reported wherever RSI is undefined
	NeutralValue = 50.0
)

var (
	// ErrInsufficientData is returned when the series is shorter than the window
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInvalidWindow is returned for a non-positive window
	ErrInvalidWindow = errors.New("window must be positive")

	// ErrInvalidPrice is returned when the series contains NaN or an infinity
	ErrInvalidPrice = errors.New("price must be a finite number")
)

// RequiredPoints returns how many prices a caller must supply for the given window
func RequiredPoints(window int) int {
	if window > MinPrices {
		return window
	}
	return MinPrices
}

// Calculate returns one RSI value per price using a simple rolling mean of
// gains and losses over `window` samples. Positions before the first full
// window are NeutralValue, so the result always has len(prices) entries.
func Calculate(prices []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindow, window)
	}
	if len(prices) < window {
		return nil, fmt.Errorf("%w: need at least %d prices, got %d", ErrInsufficientData, window, len(prices))
	}
	if idx, ok := mathutils.AllFinite(prices); !ok {
		return nil, fmt.Errorf("%w: index %d", ErrInvalidPrice, idx)
	}

	rsi, err := NewRSI(window)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(prices))
	for i, price := range prices {
		out[i] = rsi.Update(price)
	}
	return out, nil
}

// RSI is an incremental Relative Strength Index calculator.
// It is not safe for concurrent use.
type RSI struct {
	window int
	gains  *slidingSum
	losses *slidingSum

	last float64
	seen bool
}

// NewRSI creates a calculator over `window` samples
func NewRSI(window int) (*RSI, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindow, window)
	}
	return &RSI{
		window: window,
		gains:  newSlidingSum(window),
		losses: newSlidingSum(window),
	}, nil
}

// Window returns the look-back length
func (r *RSI) Window() int {
	return r.window
}

// Update feeds the next price and returns the RSI at that position.
// The first price carries no change and counts as a zero gain and zero loss.
func (r *RSI) Update(price float64) float64 {
	var delta float64
	if r.seen {
		delta = price - r.last
	}
	r.last = price
	r.seen = true

	var gain, loss float64
	if delta > 0 {
		gain = delta
	} else if delta < 0 {
		loss = -delta
	}
	r.gains.push(gain)
	r.losses.push(loss)

	return r.Value()
}

// Ready reports whether a full window of samples has been seen
func (r *RSI) Ready() bool {
	return r.gains.full()
}

// Value returns the RSI for the current window without consuming a price
func (r *RSI) Value() float64 {
	if !r.Ready() {
		return NeutralValue
	}

	avgGain := r.gains.mean()
	avgLoss := r.losses.mean()

	switch {
	case avgGain == 0 && avgLoss == 0:
		return NeutralValue
	case avgLoss == 0:
		return 100
	}

	value := 100 - (100 / (1 + avgGain/avgLoss))
	if math.IsNaN(value) {
		// gains and losses both overflowed
		return NeutralValue
	}
	return mathutils.Clamp(value, 0, 100)
}

// Reset drops all history
func (r *RSI) Reset() {
	r.gains.reset()
	r.losses.reset()
	r.last = 0
	r.seen = false
}

// slidingSum keeps the sum of the last n samples in O(1) per push.
// nonZero counts non-zero samples in the window so that a window of zeros
// reports an exact 0 instead of accumulated floating point residue.
// The sum is rebuilt from the samples when it stops being finite or when an
// evicted sample dwarfs what is left, so a huge move stops skewing the
// window once it leaves it.
type slidingSum struct {
	samples *utils.RingBuffer[float64]
	sum     float64
	nonZero int
}

// cancellationRatio marks an eviction that may have wiped out the precision of the remaining sum
const cancellationRatio = 1e8

func newSlidingSum(n int) *slidingSum {
	return &slidingSum{samples: utils.NewRingBuffer[float64](n)}
}

func (s *slidingSum) push(v float64) {
	old, evicted := s.samples.PushEvict(v)
	if evicted {
		s.sum -= old
		if old != 0 {
			s.nonZero--
		}
	}

	s.sum += v
	if v != 0 {
		s.nonZero++
	}

	switch {
	case s.nonZero == 0:
		s.sum = 0
	case !mathutils.IsFinite(s.sum), evicted && math.Abs(old) > cancellationRatio*math.Abs(s.sum):
		s.recompute()
	}
}

func (s *slidingSum) recompute() {
	s.sum = 0
	for _, v := range s.samples.Values() {
		s.sum += v
	}
}

func (s *slidingSum) full() bool {
	return s.samples.Full()
}

func (s *slidingSum) mean() float64 {
	if s.nonZero == 0 || s.sum < 0 {
		return 0
	}
	return s.sum / float64(s.samples.Cap())
}

func (s *slidingSum) reset() {
	s.samples.Reset()
	s.sum = 0
	s.nonZero = 0
}
