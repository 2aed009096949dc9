// Package main provides an offline verification tool for the seed dataset.
// It checks the catalog's structural invariants and the fallback table's
// coverage without touching the network.
package main

import (
	"fmt"
	"os"

	"uniscrape/internal/catalog"
	"uniscrape/internal/fallback"
)

// Verification results
type verifyResult struct {
	name    string
	passed  bool
	message string
}

func main() {
	fmt.Println("🔍 uniscrape - Seed Data Verification Tool")
	fmt.Println("==========================================")

	results := []verifyResult{}
	results = append(results, verifyCatalog()...)
	results = append(results, verifyFallbackCoverage()...)

	fmt.Println("\n📊 Verification Results:")
	fmt.Println("========================")

	passedCount := 0
	failedCount := 0

	for _, result := range results {
		status := "❌"
		if result.passed {
			status = "✅"
			passedCount++
		} else {
			failedCount++
		}
		fmt.Printf("%s %s: %s\n", status, result.name, result.message)
	}

	fmt.Printf("\n📈 Summary: %d passed, %d failed\n", passedCount, failedCount)

	if failedCount > 0 {
		os.Exit(1)
	}
}

// verifyCatalog checks the seed catalog's structural invariants.
func verifyCatalog() []verifyResult {
	results := []verifyResult{}
	cat := catalog.Seed()

	if err := cat.Validate(); err != nil {
		results = append(results, verifyResult{
			name:    "Catalog structure",
			passed:  false,
			message: err.Error(),
		})
		return results
	}
	results = append(results, verifyResult{
		name:   "Catalog structure",
		passed: true,
		message: fmt.Sprintf("%d universities, %d courses, all fields present",
			len(cat.Universities), cat.CourseCount()),
	})

	// Course identifiers must be assignable without collision: the count
	// fits the C### format.
	if cat.CourseCount() <= 999 {
		results = append(results, verifyResult{
			name:    "Identifier capacity",
			passed:  true,
			message: fmt.Sprintf("course count %d fits C### identifiers", cat.CourseCount()),
		})
	} else {
		results = append(results, verifyResult{
			name:    "Identifier capacity",
			passed:  false,
			message: fmt.Sprintf("course count %d exceeds C### identifier space", cat.CourseCount()),
		})
	}

	return results
}

// verifyFallbackCoverage checks every seed (level, country) pair resolves
// to a concrete duration even when all fetches fail.
func verifyFallbackCoverage() []verifyResult {
	results := []verifyResult{}
	cat := catalog.Seed()
	table := fallback.Known()

	missing := 0
	for _, u := range cat.Universities {
		for _, cs := range u.Courses {
			if _, ok := table.Lookup(cs.Level, u.Country); !ok {
				missing++
				results = append(results, verifyResult{
					name:    "Fallback coverage",
					passed:  false,
					message: fmt.Sprintf("no entry for (%s, %s)", cs.Level, u.Country),
				})
			}
		}
	}

	if missing == 0 {
		results = append(results, verifyResult{
			name:    "Fallback coverage",
			passed:  true,
			message: "every seed (level, country) pair has a table entry",
		})
	}
	return results
}
