// Package resolver implements the enrichment core: computing a course's
// (duration, fees) pair from its page with deterministic fallback.
//
// Precedence is strict and total: a signal parsed from the fetched page
// wins, then the static fallback table keyed by (level, country), then the
// generic placeholder. Every path terminates in a well-formed pair; no
// error ever escapes Resolve. Network conditions can degrade fidelity but
// never break the run.
package resolver

import (
	"context"
	"time"

	"uniscrape/internal/catalog"
	"uniscrape/internal/fallback"
	"uniscrape/internal/logger"
	"uniscrape/internal/metrics"
)

// Placeholder strings for fields with no better signal.
const (
	GenericPlaceholder = "Refer official website"
	FeesListedOnPage   = "Refer official website (fees listed on page)"
)

// Fetcher is the injected page-fetch capability. Implementations return
// the page flattened to plain text, or an error for any failure mode
// (network error, non-success status, timeout, unparsable body). The
// resolver does not distinguish between failure causes.
type Fetcher interface {
	PageText(ctx context.Context, url string) (string, error)
}

// Resolution is the resolved (duration, fees) pair for one course.
type Resolution struct {
	Duration string
	Fees     string
}

// Resolver computes resolutions against an injected fetcher and fallback
// table. A nil fetcher resolves offline: every course takes the fallback
// path without touching the network.
type Resolver struct {
	fetcher Fetcher
	table   fallback.Table
	log     *logger.Logger
	metrics *metrics.Metrics
}

// New creates a resolver. log must not be nil; metrics may be.
func New(fetcher Fetcher, table fallback.Table, log *logger.Logger, m *metrics.Metrics) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		table:   table,
		log:     log.WithModule("resolver"),
		metrics: m,
	}
}

// Resolve computes the (duration, fees) pair for one course page.
// It never returns an error: fetch and parse failures degrade through the
// fallback table to the generic placeholder.
func (r *Resolver) Resolve(ctx context.Context, url string, level catalog.Level, country string) Resolution {
	if r.fetcher == nil {
		r.metrics.RecordFetch(metrics.StatusSkipped, 0)
		return r.fallbackResolution(level, country)
	}

	start := time.Now()
	text, err := r.fetcher.PageText(ctx, url)
	elapsed := time.Since(start)

	if err != nil {
		r.metrics.RecordFetch(metrics.StatusError, elapsed.Seconds())
		r.log.WithError(err).WithField("url", url).Debug("Page fetch failed, using fallback")
		return r.fallbackResolution(level, country)
	}
	r.metrics.RecordFetch(metrics.StatusSuccess, elapsed.Seconds())

	duration, tier := r.resolveDuration(text, level, country)
	r.metrics.RecordResolution(tier)

	return Resolution{
		Duration: duration,
		Fees:     extractFees(text),
	}
}

// resolveDuration applies the three-tier precedence to fetched page text.
func (r *Resolver) resolveDuration(text string, level catalog.Level, country string) (string, string) {
	if d, ok := matchDuration(text); ok {
		return d, metrics.TierPage
	}
	if d, ok := r.table.Lookup(level, country); ok {
		return d, metrics.TierTable
	}
	return GenericPlaceholder, metrics.TierGeneric
}

// fallbackResolution is the fetch-failure path: duration from the table or
// the generic placeholder, fees always generic since no page text exists.
func (r *Resolver) fallbackResolution(level catalog.Level, country string) Resolution {
	duration, ok := r.table.Lookup(level, country)
	if ok {
		r.metrics.RecordResolution(metrics.TierTable)
	} else {
		duration = GenericPlaceholder
		r.metrics.RecordResolution(metrics.TierGeneric)
	}
	return Resolution{Duration: duration, Fees: GenericPlaceholder}
}
