package summarize

import (
	"context"
)

// Provider is one note-generation back end. Implementations keep all
// provider-specific response handling (safety blocks, HTTP statuses,
// payload shapes) behind this contract: a returned error means "this
// provider could not produce notes" and the failover moves on.
type Provider interface {
	Name() string
	Summarize(ctx context.Context, prompt string) (string, error)
}
