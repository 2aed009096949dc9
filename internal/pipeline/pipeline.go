// Package pipeline walks the seed catalog, resolves every course through
// the enrichment resolver, and aggregates the final dataset.
//
// Resolutions are independent and side-effect-free, so they can run
// sequentially with pacing (the default, matching polite scraping) or in
// parallel under a worker bound. Either way results land in fixed slots
// keyed by course position, so output order is always catalog order.
package pipeline

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"uniscrape/internal/catalog"
	"uniscrape/internal/logger"
	"uniscrape/internal/metrics"
	"uniscrape/internal/resolver"
	"uniscrape/internal/scraper"
)

// Options configures a pipeline run.
type Options struct {
	Workers int            // Parallel resolutions; <= 1 means sequential
	Pacer   *scraper.Pacer // Optional pacing between fetches (sequential mode)
	Metrics *metrics.Metrics
}

// Stats tracks run statistics.
// All fields use atomic operations for concurrent access.
type Stats struct {
	Resolved  atomic.Int64
	Fallbacks atomic.Int64 // resolutions whose duration still reads the generic placeholder
}

// Result is the aggregated output of a run, ready for export.
type Result struct {
	Universities []catalog.University
	Courses      []catalog.Course
	Stats        *Stats
	Elapsed      time.Duration
}

// LevelCounts tallies resolved courses per academic level.
func (r *Result) LevelCounts() map[catalog.Level]int {
	counts := make(map[catalog.Level]int, 3)
	for _, c := range r.Courses {
		counts[c.Level]++
	}
	return counts
}

// job is one course resolution unit: the seed plus its output slot.
type job struct {
	seed       catalog.CourseSeed
	university catalog.University
	courseID   string
	slot       int
}

// Run resolves every course in the catalog and returns the aggregated
// dataset. It fails only on structural invariant violations (corrupt seed
// data or a resolved-count mismatch); fetch trouble never fails a run.
func Run(ctx context.Context, cat *catalog.Catalog, res *resolver.Resolver, log *logger.Logger, opts Options) (*Result, error) {
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("seed catalog invalid: %w", err)
	}

	log = log.WithModule("pipeline")
	start := time.Now()

	expected := cat.CourseCount()
	jobs := make([]job, 0, expected)
	courseNum := 1
	for _, u := range cat.Universities {
		for _, cs := range u.Courses {
			jobs = append(jobs, job{
				seed:       cs,
				university: u,
				courseID:   catalog.CourseID(courseNum),
				slot:       courseNum - 1,
			})
			courseNum++
		}
	}

	stats := &Stats{}
	courses := make([]catalog.Course, expected)

	if opts.Workers > 1 {
		if err := runParallel(ctx, jobs, courses, res, stats, opts.Workers); err != nil {
			return nil, err
		}
	} else {
		runSequential(ctx, jobs, courses, res, log, stats, opts.Pacer)
	}

	resolved := int(stats.Resolved.Load())
	if resolved != expected {
		return nil, fmt.Errorf("resolved %d courses, expected %d: seed data corrupt", resolved, expected)
	}
	for i, c := range courses {
		if c.Duration == "" || c.Fees == "" {
			return nil, fmt.Errorf("course %s has an empty resolved field", catalog.CourseID(i+1))
		}
	}

	elapsed := time.Since(start)
	if opts.Metrics != nil {
		opts.Metrics.RunDurationSeconds.Observe(elapsed.Seconds())
	}

	log.WithFields(map[string]any{
		"universities": len(cat.Universities),
		"courses":      resolved,
		"fallbacks":    stats.Fallbacks.Load(),
		"elapsed":      elapsed.String(),
	}).Info("Pipeline run complete")

	return &Result{
		Universities: cat.Universities,
		Courses:      courses,
		Stats:        stats,
		Elapsed:      elapsed,
	}, nil
}

// runSequential resolves jobs one at a time with pacing between fetches.
// A canceled context does not abort the loop: resolutions degrade to the
// fallback path and the run still completes with a full dataset.
func runSequential(ctx context.Context, jobs []job, courses []catalog.Course, res *resolver.Resolver, log *logger.Logger, stats *Stats, pacer *scraper.Pacer) {
	for _, j := range jobs {
		_ = pacer.Wait(ctx)
		courses[j.slot] = resolveOne(ctx, j, res, stats)
		log.WithFields(map[string]any{
			"course_id": j.courseID,
			"course":    j.seed.Name,
			"duration":  courses[j.slot].Duration,
		}).Debug("Course resolved")
	}
}

// runParallel resolves jobs concurrently under a worker bound. Resolutions
// never error, so the group only propagates slot-bookkeeping bugs.
func runParallel(ctx context.Context, jobs []job, courses []catalog.Course, res *resolver.Resolver, stats *Stats, workers int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, j := range jobs {
		j := j
		g.Go(func() error {
			courses[j.slot] = resolveOne(ctx, j, res, stats)
			return nil
		})
	}
	return g.Wait()
}

func resolveOne(ctx context.Context, j job, res *resolver.Resolver, stats *Stats) catalog.Course {
	r := res.Resolve(ctx, j.seed.URL, j.seed.Level, j.university.Country)

	stats.Resolved.Add(1)
	if r.Duration == resolver.GenericPlaceholder {
		stats.Fallbacks.Add(1)
	}

	return catalog.Course{
		ID:           j.courseID,
		UniversityID: j.university.ID,
		Name:         j.seed.Name,
		Level:        j.seed.Level,
		Discipline:   j.seed.Discipline,
		Duration:     r.Duration,
		Fees:         r.Fees,
		Eligibility:  resolver.GenericPlaceholder,
	}
}
