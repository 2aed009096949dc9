package export

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"uniscrape/internal/catalog"
	"uniscrape/internal/fallback"
	"uniscrape/internal/logger"
	"uniscrape/internal/pipeline"
	"uniscrape/internal/resolver"
)

func testLogger() *logger.Logger {
	return logger.NewWithWriter("error", io.Discard)
}

// resolvedDataset runs the pipeline offline so the export test consumes
// the same record shapes the real program produces.
func resolvedDataset(t *testing.T) ([]catalog.University, []catalog.Course) {
	t.Helper()

	res := resolver.New(nil, fallback.Known(), testLogger(), nil)
	result, err := pipeline.Run(context.Background(), catalog.Seed(), res, testLogger(), pipeline.Options{})
	require.NoError(t, err)
	return result.Universities, result.Courses
}

func TestWriteWorkbook(t *testing.T) {
	universities, courses := resolvedDataset(t)
	path := filepath.Join(t.TempDir(), "out.xlsx")

	w := NewWriter(testLogger())
	require.NoError(t, w.Write(path, universities, courses))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.ElementsMatch(t, []string{sheetUniversities, sheetCourses}, f.GetSheetList())
}

func TestWriteUniversitiesSheet(t *testing.T) {
	universities, courses := resolvedDataset(t)
	path := filepath.Join(t.TempDir(), "out.xlsx")

	require.NoError(t, NewWriter(testLogger()).Write(path, universities, courses))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	title, err := f.GetCellValue(sheetUniversities, "A1")
	require.NoError(t, err)
	assert.Contains(t, title, "University Dataset")

	header, err := f.GetCellValue(sheetUniversities, "A2")
	require.NoError(t, err)
	assert.Equal(t, "University ID", header)

	// First data row.
	id, _ := f.GetCellValue(sheetUniversities, "A3")
	name, _ := f.GetCellValue(sheetUniversities, "B3")
	assert.Equal(t, "U001", id)
	assert.Equal(t, "University of Texas at Austin", name)

	// Last data row.
	id, _ = f.GetCellValue(sheetUniversities, "A7")
	country, _ := f.GetCellValue(sheetUniversities, "C7")
	assert.Equal(t, "U005", id)
	assert.Equal(t, "United Kingdom", country)

	// Website hyperlink.
	hasLink, target, err := f.GetCellHyperLink(sheetUniversities, "E3")
	require.NoError(t, err)
	assert.True(t, hasLink)
	assert.Equal(t, "https://www.utexas.edu", target)

	// Summary panel.
	head, _ := f.GetCellValue(sheetUniversities, "G2")
	totalLabel, _ := f.GetCellValue(sheetUniversities, "G3")
	totalValue, _ := f.GetCellValue(sheetUniversities, "H3")
	countriesValue, _ := f.GetCellValue(sheetUniversities, "H4")
	assert.Equal(t, "Summary", head)
	assert.Equal(t, "Total Universities", totalLabel)
	assert.Equal(t, "5", totalValue)
	assert.Equal(t, "3", countriesValue)
}

func TestWriteCoursesSheet(t *testing.T) {
	universities, courses := resolvedDataset(t)
	path := filepath.Join(t.TempDir(), "out.xlsx")

	require.NoError(t, NewWriter(testLogger()).Write(path, universities, courses))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	title, err := f.GetCellValue(sheetCourses, "A1")
	require.NoError(t, err)
	assert.Contains(t, title, "Course Dataset")

	// First data row: C001 belongs to U001.
	id, _ := f.GetCellValue(sheetCourses, "A3")
	uid, _ := f.GetCellValue(sheetCourses, "B3")
	level, _ := f.GetCellValue(sheetCourses, "D3")
	duration, _ := f.GetCellValue(sheetCourses, "F3")
	assert.Equal(t, "C001", id)
	assert.Equal(t, "U001", uid)
	assert.Equal(t, "Bachelor's", level)
	assert.Equal(t, "4 years", duration, "offline run resolves from the fallback table")

	// Last data row: C025 belongs to U005.
	id, _ = f.GetCellValue(sheetCourses, "A27")
	uid, _ = f.GetCellValue(sheetCourses, "B27")
	assert.Equal(t, "C025", id)
	assert.Equal(t, "U005", uid)

	// Fees fell back offline, so the cell reads the placeholder.
	fees, _ := f.GetCellValue(sheetCourses, "G3")
	assert.Equal(t, "Refer official website", fees)

	// Summary panel.
	total, _ := f.GetCellValue(sheetCourses, "K3")
	linked, _ := f.GetCellValue(sheetCourses, "K4")
	bachelors, _ := f.GetCellValue(sheetCourses, "K5")
	masters, _ := f.GetCellValue(sheetCourses, "K6")
	phd, _ := f.GetCellValue(sheetCourses, "K7")
	assert.Equal(t, "25", total)
	assert.Equal(t, "5", linked)
	assert.Equal(t, "10", bachelors)
	assert.Equal(t, "10", masters)
	assert.Equal(t, "5", phd)
}

func TestWriteEmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	// Degenerate input still produces a valid workbook; the caller's
	// invariant checks run before export, not inside it.
	require.NoError(t, NewWriter(testLogger()).Write(path, nil, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	total, _ := f.GetCellValue(sheetCourses, "K3")
	assert.Equal(t, "0", total)
}

func TestWriteBadPath(t *testing.T) {
	universities, courses := resolvedDataset(t)

	err := NewWriter(testLogger()).Write(filepath.Join(t.TempDir(), "missing", "out.xlsx"), universities, courses)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save workbook")
}
