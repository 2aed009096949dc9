package resolver

import "strings"

// durationPhrases maps phrase variants to canonical durations, in match
// precedence order: the first family with any variant present wins and no
// combination is attempted. Only these hard-coded variants are recognized;
// numeric/unit forms like "48 months" intentionally are not.
var durationPhrases = []struct {
	canonical string
	variants  []string
}{
	{"4 years", []string{"four year", "4 year", "four-year", "4-year"}},
	{"3 years", []string{"three year", "3 year", "three-year", "3-year"}},
	{"2 years", []string{"two year", "2 year"}},
	{"1 year", []string{"one year", "1 year"}},
}

// matchDuration scans page text for a duration phrase marker.
func matchDuration(text string) (string, bool) {
	t := strings.ToLower(text)
	for _, p := range durationPhrases {
		for _, v := range p.variants {
			if strings.Contains(t, v) {
				return p.canonical, true
			}
		}
	}
	return "", false
}

// extractFees reports whether the page carries any fee signal: a currency
// symbol or a mention of tuition. A concrete figure is never parsed out;
// the signal only tells a reader the page is worth checking.
func extractFees(text string) string {
	if strings.Contains(text, "$") || strings.Contains(text, "£") ||
		strings.Contains(strings.ToLower(text), "tuition") {
		return FeesListedOnPage
	}
	return GenericPlaceholder
}
