package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamUnavailable means a provider could not be reached or answered with a non-200 status
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamFormat means a provider answered with a body we cannot interpret
	ErrUpstreamFormat = errors.New("invalid upstream response structure")

	// ErrPriceUnavailable means the quote carried none of the price fields; it is not a fault
	ErrPriceUnavailable = errors.New("price not available")
)

// ValidationError represents a validation for domain objects
type ValidationError struct {
	Field string
	Err   error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %s: %v", e.Field, e.Err)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// UpstreamError describes a failed call to a third-party provider.
// Kind is ErrUpstreamUnavailable or ErrUpstreamFormat so callers can use errors.Is.
type UpstreamError struct {
	Provider   string
	Op         string
	StatusCode int // 0 when no response was received
	Kind       error
	Err        error
}

// NewUpstreamError builds an UpstreamError of the given kind
func NewUpstreamError(provider, op string, kind, err error) *UpstreamError {
	return &UpstreamError{
		Provider: provider,
		Op:       op,
		Kind:     kind,
		Err:      err,
	}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
