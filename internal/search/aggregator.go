// Package search implements query normalization and the multi-provider
// emote aggregation pipeline.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"emotebot/internal/emote"
	"emotebot/internal/metrics"
	"emotebot/internal/provider"
)

const (
	// DefaultLimit bounds the result list of a single search.
	DefaultLimit = 50
	// DefaultProviderTimeout caps each live provider call so a slow
	// provider cannot hold the whole request.
	DefaultProviderTimeout = 5 * time.Second
)

// Normalize lowercases and trims a raw query. Nothing else — no
// punctuation stripping, no Unicode folding. An empty result is valid
// and matches every emote, since empty-substring containment always
// holds.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Config holds the aggregator's tunables. Zero values select defaults.
type Config struct {
	Limit   int
	Timeout time.Duration
	Logger  *log.Logger
	Metrics *metrics.Metrics
}

// Aggregator fans a query out to the live providers and merges their
// candidates with the static catalog. Registration order of the
// providers, with the catalog last, is the only ranking: no scoring,
// no dedup. It holds no mutable state, so one value serves all
// concurrent requests.
type Aggregator struct {
	providers []provider.Searcher
	catalog   []emote.Emote
	limit     int
	timeout   time.Duration
	logger    *log.Logger
	metrics   *metrics.Metrics
}

// New builds an aggregator over the given providers and the preloaded
// read-only catalog.
func New(providers []provider.Searcher, catalog []emote.Emote, cfg Config) *Aggregator {
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultProviderTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Aggregator{
		providers: providers,
		catalog:   catalog,
		limit:     cfg.Limit,
		timeout:   cfg.Timeout,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
	}
}

// Search runs the full pipeline: normalize, concurrent provider
// fan-out, then an ordered scan that keeps substring matches and stops
// at the limit. A provider failure degrades to zero candidates from
// that provider; the call itself never fails.
func (a *Aggregator) Search(ctx context.Context, rawQuery string) []emote.Emote {
	start := time.Now()
	query := Normalize(rawQuery)

	fetched := make([][]emote.Emote, len(a.providers))
	var wg sync.WaitGroup
	for i, p := range a.providers {
		wg.Add(1)
		go func(i int, p provider.Searcher) {
			defer wg.Done()
			pctx, cancel := context.WithTimeout(ctx, a.timeout)
			defer cancel()

			found, err := p.Search(pctx, query)
			if err != nil {
				a.logger.Warn("provider search failed", "provider", p.Name(), "err", err)
				a.metrics.IncProviderFailures(p.Name())
				return
			}
			a.metrics.AddProviderResults(p.Name(), len(found))
			fetched[i] = found
		}(i, p)
	}
	wg.Wait()

	// Scan in fixed provider order with the catalog last. The scan
	// stops as soon as the limit is reached, so later candidates are
	// never evaluated against the query.
	candidates := make([][]emote.Emote, 0, len(fetched)+1)
	candidates = append(candidates, fetched...)
	candidates = append(candidates, a.catalog)

	result := make([]emote.Emote, 0, a.limit)
scan:
	for _, list := range candidates {
		for _, e := range list {
			if strings.Contains(strings.ToLower(e.Code), query) {
				result = append(result, e)
				if len(result) >= a.limit {
					break scan
				}
			}
		}
	}

	a.metrics.ObserveSearch(time.Since(start))
	a.logger.Debug("search complete", "query", query, "results", len(result))
	return result
}
