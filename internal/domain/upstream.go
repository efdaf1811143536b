package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// UpstreamFailure is published whenever a provider call fails
type UpstreamFailure struct {
	Provider   string    `json:"provider"`
	Operation  string    `json:"operation"`
	Subject    string    `json:"subject,omitempty"` // ticker or symbol, when the call had one
	StatusCode int       `json:"status_code,omitempty"`
	Message    string    `json:"message"`
	Time       time.Time `json:"time"`
}

// NewUpstreamFailure describes err as seen by the given operation
func NewUpstreamFailure(provider, operation, subject string, err error, at time.Time) *UpstreamFailure {
	failure := &UpstreamFailure{
		Provider:  provider,
		Operation: operation,
		Subject:   subject,
		Time:      at,
	}
	if err != nil {
		failure.Message = err.Error()
	}

	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		failure.StatusCode = upstreamErr.StatusCode
	}
	return failure
}

// Format renders the failure as a short human readable alert
func (f *UpstreamFailure) Format() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("<b>Upstream failure: %s %s</b>\n", f.Provider, f.Operation))
	if f.Subject != "" {
		sb.WriteString(fmt.Sprintf("Subject: %s\n", f.Subject))
	}
	if f.StatusCode != 0 {
		sb.WriteString(fmt.Sprintf("Status: %d\n", f.StatusCode))
	}
	sb.WriteString(fmt.Sprintf("Error: %s\n", f.Message))
	sb.WriteString(fmt.Sprintf("At: %s\n", f.Time.UTC().Format(time.RFC3339)))

	return sb.String()
}
