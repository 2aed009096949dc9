// Package config defines environment variable keys for configuration.
package config

const (
	// Logging
	EnvLogLevel = "UNISCRAPE_LOG_LEVEL"

	// Output
	EnvOutputPath = "UNISCRAPE_OUTPUT_PATH"

	// Fetcher
	EnvFetchTimeout = "UNISCRAPE_FETCH_TIMEOUT"
	EnvFetchDelay   = "UNISCRAPE_FETCH_DELAY"
	EnvFetchWorkers = "UNISCRAPE_FETCH_WORKERS"
	EnvSkipFetch    = "UNISCRAPE_SKIP_FETCH"

	// Run
	EnvRunTimeout = "UNISCRAPE_RUN_TIMEOUT"
)
