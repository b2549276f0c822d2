// Package llm defines the contract for the structuring service that turns
// raw transcripts into titled markdown notes.
package llm

import (
	"context"
	"fmt"
)

// StructuredNote is the {title, content} pair produced by the structuring
// service. Content holds a complete markdown document.
type StructuredNote struct {
	Title   string
	Content string
}

// Structurer turns a transcript into a structured note.
type Structurer interface {
	Structure(ctx context.Context, transcript string) (*StructuredNote, error)
}

// DependencyStatus classifies the liveness of the structuring service.
type DependencyStatus string

const (
	StatusHealthy     DependencyStatus = "healthy"
	StatusUnhealthy   DependencyStatus = "unhealthy"
	StatusUnavailable DependencyStatus = "unavailable"
)

// Prober reports the structuring service's liveness without ever failing.
type Prober interface {
	Probe(ctx context.Context) DependencyStatus
}

// UnavailableError reports a network-level failure to reach the structuring
// service (connection refused, timeout). Kept distinct from ServiceError so
// callers can translate transient unavailability to 503.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("structuring service unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// ServiceError reports that the structuring service was reachable but
// answered with a failure status.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("structuring service returned status %d: %s", e.StatusCode, e.Body)
}
