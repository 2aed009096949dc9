// Package export renders the resolved dataset as a styled xlsx workbook:
// a Universities sheet and a Courses sheet, each with a title bar, header
// row, zebra striping, and a computed summary panel. Fields that fell back
// to a placeholder are highlighted so a reader knows to check the page.
package export

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"uniscrape/internal/catalog"
	"uniscrape/internal/logger"
)

const (
	sheetUniversities = "Universities"
	sheetCourses      = "Courses"

	titleRowHeight  = 30
	headerRowHeight = 22
	dataRowHeight   = 20
)

var universityHeaders = []string{"University ID", "University Name", "Country", "City", "Official Website"}

var courseHeaders = []string{"Course ID", "University ID", "Course Name", "Level",
	"Discipline", "Duration", "Fees", "Eligibility"}

// Writer renders workbooks.
type Writer struct {
	log *logger.Logger
}

// NewWriter creates a workbook writer.
func NewWriter(log *logger.Logger) *Writer {
	return &Writer{log: log.WithModule("export")}
}

// Write renders the dataset and saves the workbook to path.
func (w *Writer) Write(path string, universities []catalog.University, courses []catalog.Course) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	styles, err := newStyleSet(f)
	if err != nil {
		return err
	}

	if err := f.SetSheetName("Sheet1", sheetUniversities); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetCourses); err != nil {
		return fmt.Errorf("failed to create courses sheet: %w", err)
	}

	if err := w.writeUniversities(f, styles, universities); err != nil {
		return err
	}
	if err := w.writeCourses(f, styles, courses); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook to %s: %w", path, err)
	}

	w.log.WithFields(map[string]any{
		"path":         path,
		"universities": len(universities),
		"courses":      len(courses),
	}).Info("Workbook saved")
	return nil
}

func (w *Writer) writeUniversities(f *excelize.File, styles *styleSet, universities []catalog.University) error {
	if err := setupSheet(f, styles, sheetUniversities, "🎓  University Dataset", len(universityHeaders), universityHeaders); err != nil {
		return err
	}

	centerCols := map[int]bool{1: true}
	for i, u := range universities {
		row := i + 3
		values := []any{u.ID, u.Name, u.Country, u.City, u.Website}
		if err := writeDataRow(f, styles, sheetUniversities, row, values, centerCols, row%2 == 0); err != nil {
			return err
		}

		// Clickable hyperlink on the website cell.
		cell, _ := excelize.CoordinatesToCellName(5, row)
		if err := f.SetCellHyperLink(sheetUniversities, cell, u.Website, "External"); err != nil {
			return fmt.Errorf("failed to set hyperlink: %w", err)
		}
		linkStyle := styles.hyperlink
		if row%2 == 0 {
			linkStyle = styles.altHyperlink
		}
		if err := f.SetCellStyle(sheetUniversities, cell, cell, linkStyle); err != nil {
			return err
		}
	}

	if err := setColWidths(f, sheetUniversities, []float64{14, 36, 18, 16, 36}); err != nil {
		return err
	}

	countries := lo.Uniq(lo.Map(universities, func(u catalog.University, _ int) string { return u.Country }))
	return writeSummaryBlock(f, styles, sheetUniversities, 2, 7, []summaryStat{
		{"Total Universities", len(universities)},
		{"Countries", len(countries)},
	})
}

func (w *Writer) writeCourses(f *excelize.File, styles *styleSet, courses []catalog.Course) error {
	if err := setupSheet(f, styles, sheetCourses, "📚  Course Dataset", len(courseHeaders), courseHeaders); err != nil {
		return err
	}

	centerCols := map[int]bool{1: true, 2: true, 4: true, 6: true}
	for i, c := range courses {
		row := i + 3
		values := []any{c.ID, c.UniversityID, c.Name, string(c.Level), c.Discipline, c.Duration, c.Fees, c.Eligibility}
		if err := writeDataRow(f, styles, sheetCourses, row, values, centerCols, row%2 == 0); err != nil {
			return err
		}

		// Colour-coded level badge.
		if badge, ok := styles.levelBadge[c.Level]; ok {
			cell, _ := excelize.CoordinatesToCellName(4, row)
			if err := f.SetCellStyle(sheetCourses, cell, cell, badge); err != nil {
				return err
			}
		}

		// Yellow highlight for fields that fell back to a placeholder.
		for col, value := range map[int]string{7: c.Fees, 8: c.Eligibility} {
			if strings.Contains(value, "Refer official website") {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				if err := f.SetCellStyle(sheetCourses, cell, cell, styles.fallbackHit); err != nil {
					return err
				}
			}
		}
	}

	if err := setColWidths(f, sheetCourses, []float64{12, 14, 32, 14, 26, 14, 28, 24}); err != nil {
		return err
	}

	levelCounts := lo.CountValuesBy(courses, func(c catalog.Course) catalog.Level { return c.Level })
	linked := lo.Uniq(lo.Map(courses, func(c catalog.Course, _ int) string { return c.UniversityID }))
	return writeSummaryBlock(f, styles, sheetCourses, 2, 10, []summaryStat{
		{"Total Courses", len(courses)},
		{"Linked Universities", len(linked)},
		{"Bachelor's", levelCounts[catalog.LevelBachelors]},
		{"Master's", levelCounts[catalog.LevelMasters]},
		{"PhD", levelCounts[catalog.LevelPhD]},
	})
}

// setupSheet applies the shared sheet chrome: hidden gridlines, frozen
// panes above the data rows, the merged title bar, and the header row.
func setupSheet(f *excelize.File, styles *styleSet, sheet, title string, colSpan int, headers []string) error {
	showGridLines := false
	if err := f.SetSheetView(sheet, 0, &excelize.ViewOptions{ShowGridLines: &showGridLines}); err != nil {
		return fmt.Errorf("failed to hide gridlines on %s: %w", sheet, err)
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze: true, YSplit: 2, TopLeftCell: "A3", ActivePane: "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze panes on %s: %w", sheet, err)
	}

	// Title bar.
	last, _ := excelize.CoordinatesToCellName(colSpan, 1)
	if err := f.MergeCell(sheet, "A1", last); err != nil {
		return fmt.Errorf("failed to merge title on %s: %w", sheet, err)
	}
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, styles.title); err != nil {
		return err
	}
	if err := f.SetRowHeight(sheet, 1, titleRowHeight); err != nil {
		return err
	}

	// Header row.
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.header); err != nil {
			return err
		}
	}
	return f.SetRowHeight(sheet, 2, headerRowHeight)
}

func writeDataRow(f *excelize.File, styles *styleSet, sheet string, row int, values []any, centerCols map[int]bool, alt bool) error {
	for i, v := range values {
		col := i + 1
		cell, _ := excelize.CoordinatesToCellName(col, row)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}

		style := styles.bodyLeft
		switch {
		case alt && centerCols[col]:
			style = styles.altCenter
		case alt:
			style = styles.altLeft
		case centerCols[col]:
			style = styles.bodyCenter
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return f.SetRowHeight(sheet, row, dataRowHeight)
}

type summaryStat struct {
	label string
	value int
}

// writeSummaryBlock writes a labelled stats panel beside the data columns.
func writeSummaryBlock(f *excelize.File, styles *styleSet, sheet string, startRow, col int, stats []summaryStat) error {
	labelCell, _ := excelize.CoordinatesToCellName(col, startRow)
	valueCell, _ := excelize.CoordinatesToCellName(col+1, startRow)

	if err := f.MergeCell(sheet, labelCell, valueCell); err != nil {
		return fmt.Errorf("failed to merge summary header on %s: %w", sheet, err)
	}
	if err := f.SetCellValue(sheet, labelCell, "Summary"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, labelCell, valueCell, styles.summaryHead); err != nil {
		return err
	}

	for i, stat := range stats {
		row := startRow + i + 1
		lc, _ := excelize.CoordinatesToCellName(col, row)
		vc, _ := excelize.CoordinatesToCellName(col+1, row)

		if err := f.SetCellValue(sheet, lc, stat.label); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, lc, lc, styles.summaryLabel); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, vc, stat.value); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, vc, vc, styles.summaryValue); err != nil {
			return err
		}
	}

	labelName, _ := excelize.ColumnNumberToName(col)
	valueName, _ := excelize.ColumnNumberToName(col + 1)
	if err := f.SetColWidth(sheet, labelName, labelName, 22); err != nil {
		return err
	}
	return f.SetColWidth(sheet, valueName, valueName, 10)
}

func setColWidths(f *excelize.File, sheet string, widths []float64) error {
	for i, width := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return fmt.Errorf("failed to set column width on %s: %w", sheet, err)
		}
	}
	return nil
}
