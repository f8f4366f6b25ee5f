// Package provider defines the contract emote catalog adapters implement.
package provider

import (
	"context"

	"emotebot/internal/emote"
)

// Searcher queries one external emote catalog. Implementations map the
// provider's response into canonical records at their own boundary. A
// failed or malformed call is reported as an error; the aggregator
// treats it as zero contributed candidates, never as a fatal condition.
type Searcher interface {
	Name() string
	Search(ctx context.Context, query string) ([]emote.Emote, error)
}
