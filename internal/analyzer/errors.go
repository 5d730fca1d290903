package analyzer

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout marks a fetch that did not complete within the bound.
	ErrTimeout = errors.New("request timed out")

	// ErrNoIndicators means the indicator set has zero total weight. That is
	// a configuration mistake, not a runtime condition.
	ErrNoIndicators = errors.New("indicator set has zero total weight")
)

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.Status)
}

// AnalysisError is the single failure surface of an analysis. Callers must
// treat it as "analysis unavailable", there is no partial result behind it.
type AnalysisError struct {
	URL string
	Err error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis of %s failed: %v", e.URL, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }
