package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"uniscrape/internal/catalog"
)

// Workbook palette.
const (
	colorDarkBlue  = "1F3864"
	colorMidBlue   = "2E75B6"
	colorLightBlue = "D6E4F0"
	colorAccent    = "E8F4FD"
	colorWhite     = "FFFFFF"
	colorYellow    = "FFF2CC"
	colorGreenStat = "E2EFDA"
	colorBorder    = "BFBFBF"
	colorHyperlink = "0563C1"
)

// levelColors are the badge fills for the course level column.
var levelColors = map[catalog.Level]string{
	catalog.LevelBachelors: colorLightBlue,
	catalog.LevelMasters:   colorGreenStat,
	catalog.LevelPhD:       "FCE4D6",
}

// styleSet holds the registered style IDs for one workbook.
type styleSet struct {
	title        int
	header       int
	bodyLeft     int
	bodyCenter   int
	altLeft      int
	altCenter    int
	hyperlink    int
	altHyperlink int
	levelBadge   map[catalog.Level]int
	fallbackHit  int
	summaryHead  int
	summaryLabel int
	summaryValue int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: colorBorder, Style: 1},
		{Type: "right", Color: colorBorder, Style: 1},
		{Type: "top", Color: colorBorder, Style: 1},
		{Type: "bottom", Color: colorBorder, Style: 1},
	}
}

func thickBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: colorMidBlue, Style: 2},
		{Type: "right", Color: colorMidBlue, Style: 2},
		{Type: "top", Color: colorMidBlue, Style: 2},
		{Type: "bottom", Color: colorMidBlue, Style: 2},
	}
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func center() *excelize.Alignment {
	return &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}
}

func left() *excelize.Alignment {
	return &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true}
}

// newStyleSet registers every style the report needs on the file.
func newStyleSet(f *excelize.File) (*styleSet, error) {
	s := &styleSet{levelBadge: make(map[catalog.Level]int, len(levelColors))}

	var err error
	register := func(dst *int, style *excelize.Style) {
		if err != nil {
			return
		}
		*dst, err = f.NewStyle(style)
	}

	register(&s.title, &excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Bold: true, Size: 14, Color: colorWhite},
		Fill:      solidFill(colorDarkBlue),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	register(&s.header, &excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Bold: true, Size: 11, Color: colorWhite},
		Fill:      solidFill(colorMidBlue),
		Alignment: center(),
		Border:    thickBorder(),
	})

	bodyFont := &excelize.Font{Family: "Arial", Size: 10}
	register(&s.bodyLeft, &excelize.Style{
		Font: bodyFont, Fill: solidFill(colorWhite), Alignment: left(), Border: thinBorder(),
	})
	register(&s.bodyCenter, &excelize.Style{
		Font: bodyFont, Fill: solidFill(colorWhite), Alignment: center(), Border: thinBorder(),
	})
	register(&s.altLeft, &excelize.Style{
		Font: bodyFont, Fill: solidFill(colorAccent), Alignment: left(), Border: thinBorder(),
	})
	register(&s.altCenter, &excelize.Style{
		Font: bodyFont, Fill: solidFill(colorAccent), Alignment: center(), Border: thinBorder(),
	})

	linkFont := &excelize.Font{Family: "Arial", Size: 10, Color: colorHyperlink, Underline: "single"}
	register(&s.hyperlink, &excelize.Style{
		Font: linkFont, Fill: solidFill(colorWhite), Alignment: left(), Border: thinBorder(),
	})
	register(&s.altHyperlink, &excelize.Style{
		Font: linkFont, Fill: solidFill(colorAccent), Alignment: left(), Border: thinBorder(),
	})

	for level, color := range levelColors {
		var id int
		register(&id, &excelize.Style{
			Font:      &excelize.Font{Family: "Arial", Size: 10, Bold: true},
			Fill:      solidFill(color),
			Alignment: center(),
			Border:    thinBorder(),
		})
		s.levelBadge[level] = id
	}

	register(&s.fallbackHit, &excelize.Style{
		Font: bodyFont, Fill: solidFill(colorYellow), Alignment: left(), Border: thinBorder(),
	})

	register(&s.summaryHead, &excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Bold: true, Size: 10, Color: colorWhite},
		Fill:      solidFill(colorMidBlue),
		Alignment: center(),
		Border:    thickBorder(),
	})
	register(&s.summaryLabel, &excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 10, Bold: true},
		Fill:      solidFill(colorLightBlue),
		Alignment: left(),
		Border:    thinBorder(),
	})
	register(&s.summaryValue, &excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 11, Bold: true, Color: colorMidBlue},
		Fill:      solidFill(colorGreenStat),
		Alignment: center(),
		Border:    thinBorder(),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to register workbook styles: %w", err)
	}
	return s, nil
}
