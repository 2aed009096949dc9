// Package catalog defines the seed university/course dataset.
// The seed records are the ground truth of the pipeline: every row in the
// final workbook exists here, and enrichment only fills in the duration and
// fees fields. Records are constructed once and never mutated.
package catalog

import "fmt"

// Level is the academic level of a course.
type Level string

const (
	LevelBachelors Level = "Bachelor's"
	LevelMasters   Level = "Master's"
	LevelPhD       Level = "PhD"
)

// Valid reports whether l is one of the three known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelBachelors, LevelMasters, LevelPhD:
		return true
	}
	return false
}

// Levels lists the known levels in display order.
func Levels() []Level {
	return []Level{LevelBachelors, LevelMasters, LevelPhD}
}

// University is a seed university record.
type University struct {
	ID      string // assigned sequentially as U001, U002, ...
	Name    string
	Country string
	City    string
	Website string

	Courses []CourseSeed
}

// CourseSeed is the immutable part of a course record. Duration and fees
// are resolved later from the page at URL.
type CourseSeed struct {
	Name       string
	Level      Level
	Discipline string
	URL        string
}

// Course is a fully resolved course record, ready for export.
type Course struct {
	ID           string // assigned sequentially as C001, C002, ... across all universities
	UniversityID string
	Name         string
	Level        Level
	Discipline   string
	Duration     string
	Fees         string
	Eligibility  string
}

// Catalog is the full seed dataset.
type Catalog struct {
	Universities []University
}

// CourseCount returns the total number of course seeds across all universities.
func (c *Catalog) CourseCount() int {
	n := 0
	for _, u := range c.Universities {
		n += len(u.Courses)
	}
	return n
}

// Countries returns the distinct countries in catalog order.
func (c *Catalog) Countries() []string {
	seen := make(map[string]struct{}, len(c.Universities))
	var out []string
	for _, u := range c.Universities {
		if _, ok := seen[u.Country]; ok {
			continue
		}
		seen[u.Country] = struct{}{}
		out = append(out, u.Country)
	}
	return out
}

// Validate checks the catalog's structural invariants:
// non-empty identity fields, known levels, the same number of courses per
// university, and the expected total course count. A violation means the
// seed data itself is corrupt, which is the only fatal condition in the
// pipeline.
func (c *Catalog) Validate() error {
	if len(c.Universities) == 0 {
		return fmt.Errorf("catalog has no universities")
	}

	perUniversity := len(c.Universities[0].Courses)
	total := 0

	for i, u := range c.Universities {
		if u.ID == "" || u.Name == "" || u.Country == "" || u.City == "" || u.Website == "" {
			return fmt.Errorf("university %d (%q) has an empty field", i, u.Name)
		}
		if len(u.Courses) != perUniversity {
			return fmt.Errorf("university %s has %d courses, expected %d",
				u.ID, len(u.Courses), perUniversity)
		}
		for j, cs := range u.Courses {
			if cs.Name == "" || cs.Discipline == "" || cs.URL == "" {
				return fmt.Errorf("course %d of university %s has an empty field", j, u.ID)
			}
			if !cs.Level.Valid() {
				return fmt.Errorf("course %q of university %s has unknown level %q",
					cs.Name, u.ID, cs.Level)
			}
		}
		total += len(u.Courses)
	}

	if expected := len(c.Universities) * perUniversity; total != expected {
		return fmt.Errorf("expected %d courses, got %d", expected, total)
	}
	return nil
}
