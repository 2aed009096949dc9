// Package main provides the scraping pipeline entry point: build the seed
// catalog, enrich every course from its page with fallback, and render the
// styled workbook.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"

	"uniscrape/internal/catalog"
	"uniscrape/internal/config"
	"uniscrape/internal/export"
	"uniscrape/internal/fallback"
	"uniscrape/internal/logger"
	"uniscrape/internal/metrics"
	"uniscrape/internal/pipeline"
	"uniscrape/internal/resolver"
	"uniscrape/internal/scraper"
)

// CLI flags
var (
	outputFlag    = flag.String("output", "", "Workbook path (overrides env/default)")
	workersFlag   = flag.Int("workers", 0, "Parallel resolutions (0 = use config default)")
	skipFetchFlag = flag.Bool("skip-fetch", false, "Resolve offline from the fallback table only")
	metricsFlag   = flag.String("metrics-out", "", "Optional path for a Prometheus text-format metrics dump")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *outputFlag != "" {
		cfg.OutputPath = *outputFlag
	}
	if *workersFlag > 0 {
		cfg.FetchWorkers = *workersFlag
	}
	if *skipFetchFlag {
		cfg.SkipFetch = true
	}

	log := logger.New(cfg.LogLevel).WithRunID(uuid.NewString())
	log.Info("Starting university course scraper")

	// Prometheus registry with standard collectors.
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	cat := catalog.Seed()
	if err := cat.Validate(); err != nil {
		log.WithError(err).Fatal("Seed catalog is corrupt")
	}
	log.WithFields(map[string]any{
		"universities": len(cat.Universities),
		"courses":      cat.CourseCount(),
	}).Info("Seed catalog loaded")

	// The fetch capability: nil in offline mode, which makes the resolver
	// take the fallback path for every course.
	var fetcher resolver.Fetcher
	var pacer *scraper.Pacer
	if cfg.SkipFetch {
		log.Warn("Fetching disabled, resolving from fallback table only")
	} else {
		fetcher = scraper.NewClient(cfg.FetchTimeout)
		pacer = scraper.NewPacer(cfg.FetchDelay)
	}

	res := resolver.New(fetcher, fallback.Known(), log, m)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RunTimeout)
	defer cancel()

	start := time.Now()
	result, err := pipeline.Run(ctx, cat, res, log, pipeline.Options{
		Workers: cfg.FetchWorkers,
		Pacer:   pacer,
		Metrics: m,
	})
	if err != nil {
		log.WithError(err).Fatal("Pipeline run failed")
	}

	writer := export.NewWriter(log)
	if err := writer.Write(cfg.OutputPath, result.Universities, result.Courses); err != nil {
		log.WithError(err).Fatal("Workbook export failed")
	}

	if *metricsFlag != "" {
		if err := dumpMetrics(registry, *metricsFlag); err != nil {
			log.WithError(err).Warn("Metrics dump failed")
		}
	}

	levelCounts := result.LevelCounts()
	log.WithFields(map[string]any{
		"output":    cfg.OutputPath,
		"elapsed":   time.Since(start).String(),
		"fallbacks": result.Stats.Fallbacks.Load(),
		"bachelors": levelCounts[catalog.LevelBachelors],
		"masters":   levelCounts[catalog.LevelMasters],
		"phd":       levelCounts[catalog.LevelPhD],
	}).Info("Scrape complete")

	fmt.Printf("✓ Saved: %s\n", cfg.OutputPath)
	fmt.Printf("  Sheet 1 - Universities : %d rows\n", len(result.Universities))
	fmt.Printf("  Sheet 2 - Courses      : %d rows\n", len(result.Courses))
}

// dumpMetrics writes the gathered registry in Prometheus text format.
// A batch run has no /metrics endpoint to scrape, so the dump is the
// machine-readable record of fetch outcomes and resolution tiers.
func dumpMetrics(registry *prometheus.Registry, path string) error {
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := expfmt.NewEncoder(f, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	return nil
}
