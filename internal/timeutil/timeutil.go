package timeutil

import (
	"fmt"
	"regexp"
	"time"
)

// seasonStartMonth is the month a new NBA regular season begins.
const seasonStartMonth = time.October

var seasonPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// SeasonFor returns the stats.nba.com season label (e.g. "2023-24") that t falls in.
// Months before October belong to the season that started the previous year.
func SeasonFor(t time.Time) string {
	start := t.Year()
	if t.Month() < seasonStartMonth {
		start--
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}

// ValidSeason reports whether s is a well-formed season label whose second
// year follows the first.
func ValidSeason(s string) bool {
	if !seasonPattern.MatchString(s) {
		return false
	}
	var start, end int
	if _, err := fmt.Sscanf(s, "%d-%d", &start, &end); err != nil {
		return false
	}
	return (start+1)%100 == end
}
