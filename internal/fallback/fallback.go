// Package fallback provides the static (level, country) duration lookup
// used when live page extraction fails or finds no signal.
package fallback

import "uniscrape/internal/catalog"

// Key identifies a fallback table entry.
type Key struct {
	Level   catalog.Level
	Country string
}

// Table maps (level, country) to a typical duration string.
// A missing entry is a normal miss, not an error; callers fall through to
// the generic placeholder.
type Table map[Key]string

// Lookup returns the configured duration for the given level and country.
func (t Table) Lookup(level catalog.Level, country string) (string, bool) {
	d, ok := t[Key{Level: level, Country: country}]
	return d, ok
}

// Known returns the built-in duration table covering the countries present
// in the seed catalog.
func Known() Table {
	return Table{
		{catalog.LevelBachelors, "United States"}:  "4 years",
		{catalog.LevelBachelors, "Canada"}:         "4 years",
		{catalog.LevelBachelors, "United Kingdom"}: "3 years",
		{catalog.LevelMasters, "United States"}:    "1-2 years",
		{catalog.LevelMasters, "Canada"}:           "1-2 years",
		{catalog.LevelMasters, "United Kingdom"}:   "1 year",
		{catalog.LevelPhD, "United States"}:        "4-6 years",
		{catalog.LevelPhD, "Canada"}:               "4-5 years",
		{catalog.LevelPhD, "United Kingdom"}:       "3-4 years",
	}
}
