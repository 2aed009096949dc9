// Package config provides centralized timeout constants for the pipeline.
//
// The defaults assume slow, bot-hostile targets:
//   - University catalog pages respond slowly or block bots outright, so a
//     single bounded attempt per page is all we budget for.
//   - A short pause between fetches keeps the scraper polite; it is a
//     courtesy, not a correctness requirement.
package config

import "time"

const (
	// FetchTimeout is the upper bound for a single page fetch. Expiry is
	// treated as a plain fetch failure, never retried.
	FetchTimeout = 10 * time.Second

	// FetchDelay is the pacing pause between successive page fetches.
	FetchDelay = 800 * time.Millisecond

	// RunTimeout bounds the whole pipeline run. With 25 sequential fetches
	// at 10s worst case plus pacing, 6 minutes leaves ample headroom.
	RunTimeout = 6 * time.Minute
)
