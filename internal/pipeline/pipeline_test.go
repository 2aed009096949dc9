package pipeline

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniscrape/internal/catalog"
	"uniscrape/internal/fallback"
	"uniscrape/internal/logger"
	"uniscrape/internal/resolver"
)

// failingFetcher simulates a network where every page fetch fails.
type failingFetcher struct {
	calls atomic.Int64
}

func (f *failingFetcher) PageText(ctx context.Context, url string) (string, error) {
	f.calls.Add(1)
	return "", errors.New("connection refused")
}

// textFetcher returns fixed text for every page.
type textFetcher struct {
	text string
}

func (f *textFetcher) PageText(ctx context.Context, url string) (string, error) {
	return f.text, nil
}

func testLogger() *logger.Logger {
	return logger.NewWithWriter("error", io.Discard)
}

func TestRunAllFetchesFailing(t *testing.T) {
	cat := catalog.Seed()
	fetcher := &failingFetcher{}
	res := resolver.New(fetcher, fallback.Known(), testLogger(), nil)

	result, err := Run(context.Background(), cat, res, testLogger(), Options{})

	require.NoError(t, err, "fetch failures must never fail the run")
	assert.Len(t, result.Universities, 5)
	assert.Len(t, result.Courses, 25)
	assert.EqualValues(t, 25, result.Stats.Resolved.Load())
	assert.EqualValues(t, 25, fetcher.calls.Load())

	for _, c := range result.Courses {
		assert.NotEmpty(t, c.Duration, "course %s", c.ID)
		assert.NotEmpty(t, c.Fees, "course %s", c.ID)
		assert.Equal(t, resolver.GenericPlaceholder, c.Fees, "course %s", c.ID)
	}

	// Every seed (level, country) pair has a table entry, so no course
	// should have dropped through to the generic duration placeholder.
	assert.EqualValues(t, 0, result.Stats.Fallbacks.Load())
}

func TestRunCourseIDsSequential(t *testing.T) {
	cat := catalog.Seed()
	res := resolver.New(nil, fallback.Known(), testLogger(), nil)

	result, err := Run(context.Background(), cat, res, testLogger(), Options{})
	require.NoError(t, err)

	for i, c := range result.Courses {
		assert.Equal(t, catalog.CourseID(i+1), c.ID)
	}
	assert.Equal(t, "C001", result.Courses[0].ID)
	assert.Equal(t, "C025", result.Courses[24].ID)

	// First university's courses reference U001.
	for _, c := range result.Courses[:5] {
		assert.Equal(t, "U001", c.UniversityID)
	}
	// Last university's courses reference U005.
	for _, c := range result.Courses[20:] {
		assert.Equal(t, "U005", c.UniversityID)
	}
}

func TestRunReferentialIntegrity(t *testing.T) {
	cat := catalog.Seed()
	res := resolver.New(nil, fallback.Known(), testLogger(), nil)

	result, err := Run(context.Background(), cat, res, testLogger(), Options{})
	require.NoError(t, err)

	known := make(map[string]bool)
	for _, u := range result.Universities {
		known[u.ID] = true
	}
	for _, c := range result.Courses {
		assert.True(t, known[c.UniversityID], "course %s references unknown university %s", c.ID, c.UniversityID)
	}
}

func TestRunMergesPageSignals(t *testing.T) {
	cat := catalog.Seed()
	res := resolver.New(&textFetcher{text: "A four-year program. Tuition: $45,000 per year."},
		fallback.Known(), testLogger(), nil)

	result, err := Run(context.Background(), cat, res, testLogger(), Options{})
	require.NoError(t, err)

	for _, c := range result.Courses {
		assert.Equal(t, "4 years", c.Duration, "course %s", c.ID)
		assert.Equal(t, resolver.FeesListedOnPage, c.Fees, "course %s", c.ID)
		assert.Equal(t, resolver.GenericPlaceholder, c.Eligibility, "course %s", c.ID)
	}
}

func TestRunParallelMatchesSequential(t *testing.T) {
	cat := catalog.Seed()

	seqRes := resolver.New(&failingFetcher{}, fallback.Known(), testLogger(), nil)
	seq, err := Run(context.Background(), cat, seqRes, testLogger(), Options{})
	require.NoError(t, err)

	parRes := resolver.New(&failingFetcher{}, fallback.Known(), testLogger(), nil)
	par, err := Run(context.Background(), cat, parRes, testLogger(), Options{Workers: 8})
	require.NoError(t, err)

	require.Len(t, par.Courses, len(seq.Courses))
	for i := range seq.Courses {
		assert.Equal(t, seq.Courses[i], par.Courses[i], "slot %d", i)
	}
}

func TestRunRejectsCorruptCatalog(t *testing.T) {
	cat := catalog.Seed()
	cat.Universities[0].Courses[0].Level = "Certificate"

	res := resolver.New(nil, fallback.Known(), testLogger(), nil)
	_, err := Run(context.Background(), cat, res, testLogger(), Options{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed catalog invalid")
}

func TestRunCanceledContextStillCompletes(t *testing.T) {
	cat := catalog.Seed()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := resolver.New(&failingFetcher{}, fallback.Known(), testLogger(), nil)
	result, err := Run(ctx, cat, res, testLogger(), Options{})

	require.NoError(t, err, "cancellation degrades to fallback, never aborts")
	assert.Len(t, result.Courses, 25)
	for _, c := range result.Courses {
		assert.NotEmpty(t, c.Duration)
		assert.NotEmpty(t, c.Fees)
	}
}

func TestRunLevelCounts(t *testing.T) {
	cat := catalog.Seed()
	res := resolver.New(nil, fallback.Known(), testLogger(), nil)

	result, err := Run(context.Background(), cat, res, testLogger(), Options{})
	require.NoError(t, err)

	counts := result.LevelCounts()
	assert.Equal(t, 10, counts[catalog.LevelBachelors])
	assert.Equal(t, 10, counts[catalog.LevelMasters])
	assert.Equal(t, 5, counts[catalog.LevelPhD])
}

func TestRunGenericFallbackCountry(t *testing.T) {
	// A university outside the fallback table's countries drops every
	// course to the generic placeholder when fetches fail.
	cat := &catalog.Catalog{
		Universities: []catalog.University{
			{
				ID: "U001", Name: "Sorbonne University", Country: "France",
				City: "Paris", Website: "https://www.sorbonne-universite.fr",
				Courses: []catalog.CourseSeed{
					{Name: "PhD Mathematics", Level: catalog.LevelPhD, Discipline: "Mathematics", URL: "https://example.fr/phd"},
				},
			},
		},
	}

	res := resolver.New(&failingFetcher{}, fallback.Known(), testLogger(), nil)
	result, err := Run(context.Background(), cat, res, testLogger(), Options{})

	require.NoError(t, err)
	require.Len(t, result.Courses, 1)
	assert.Equal(t, resolver.GenericPlaceholder, result.Courses[0].Duration)
	assert.EqualValues(t, 1, result.Stats.Fallbacks.Load())
}

func TestRunCanceledParallel(t *testing.T) {
	cat := catalog.Seed()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := resolver.New(&failingFetcher{}, fallback.Known(), testLogger(), nil)
	result, err := Run(ctx, cat, res, testLogger(), Options{Workers: 4})

	require.NoError(t, err)
	assert.Len(t, result.Courses, 25)
	for _, c := range result.Courses {
		assert.True(t, strings.HasPrefix(c.ID, "C"))
		assert.NotEmpty(t, c.Duration)
	}
}
