package enrich

import "fmt"

// EnrichmentError is returned when the language model reply cannot be used.
type EnrichmentError struct {
	Message string
	Reply   string
	Cause   error
}

func (e *EnrichmentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("enrichment error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("enrichment error: %s", e.Message)
}

func (e *EnrichmentError) Unwrap() error {
	return e.Cause
}
