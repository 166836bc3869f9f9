package scrape

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The season pages have no stable CSS schema, so extraction leans on a
// small set of text patterns that have held across decades of tables.
var (
	scoreRe      = regexp.MustCompile(`(\d+)\.(\d+)\.(\d+)`)
	roundTextRe  = regexp.MustCompile(`Round\s+(\d+)`)
	statsRoundRe = regexp.MustCompile(`(?i)round[=/](\d+)`)
	gameDateRe   = regexp.MustCompile(`([A-Z][a-z]{2})\s+(\d{1,2}-[A-Z][a-z]{2}-\d{4})`)
	bareDateRe   = regexp.MustCompile(`(\d{1,2}-[A-Z][a-z]{2}-\d{4})`)
	attendanceRe = regexp.MustCompile(`Attendance:\s*([\d,]+)`)
	venueLabelRe = regexp.MustCompile(`Venue:\s*([^(\n]+)`)
)

// knownVenues backs venue extraction on rows that carry a ground name
// without the "Venue:" label.
var knownVenues = []string{
	"MCG",
	"SCG",
	"Marvel Stadium",
	"Docklands",
	"Optus Stadium",
	"Adelaide Oval",
	"Gabba",
	"GMHBA Stadium",
	"Kardinia Park",
	"Heritage Bank Stadium",
	"ENGIE Stadium",
	"Manuka Oval",
	"Bellerive Oval",
	"York Park",
	"Mars Stadium",
	"TIO Stadium",
	"Cazalys Stadium",
	"Norwood Oval",
	"Princes Park",
	"Waverley Park",
}

// parseScore extracts one side's score from cell text. It accepts the
// full goals.behinds.total form with the total authoritative, or a bare
// total of up to three digits. Anything else ("", "-", team words)
// reports false, which leaves that side's score null.
func parseScore(text string) (Score, bool) {
	text = strings.TrimSpace(text)
	if text == "" || text == "-" {
		return Score{}, false
	}

	if m := scoreRe.FindStringSubmatch(text); m != nil {
		goals, _ := strconv.Atoi(m[1])
		behinds, _ := strconv.Atoi(m[2])
		total, _ := strconv.Atoi(m[3])
		return Score{Total: total, Goals: goals, Behinds: behinds, HasBreakdown: true}, true
	}

	if len(text) <= 3 {
		if total, err := strconv.Atoi(text); err == nil {
			return Score{Total: total}, true
		}
	}

	return Score{}, false
}

// parseGameDate extracts a game date from text like "Sat 15-Mar-2024",
// falling back to the bare "15-Mar-2024" form. Unparseable dates report
// false rather than failing the row.
func parseGameDate(text string) (time.Time, bool) {
	if m := gameDateRe.FindStringSubmatch(text); m != nil {
		if t, err := time.Parse("2-Jan-2006", m[2]); err == nil {
			return t, true
		}
	}
	if m := bareDateRe.FindStringSubmatch(text); m != nil {
		if t, err := time.Parse("2-Jan-2006", m[1]); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseVenue extracts a venue from a "Venue: X" label, or matches a
// known ground name embedded in the row text. The label capture stops
// at a line break, and any trailing "Attendance:" label or date in the
// same cell is cut off; the ground name is all that may remain.
func parseVenue(text string) (string, bool) {
	if m := venueLabelRe.FindStringSubmatch(text); m != nil {
		venue := clipVenue(m[1])
		if venue != "" {
			return venue, true
		}
	}
	for _, venue := range knownVenues {
		if strings.Contains(text, venue) {
			return venue, true
		}
	}
	return "", false
}

// clipVenue trims the tail of a venue capture that ran into neighboring
// labels within the same cell.
func clipVenue(s string) string {
	if i := strings.Index(s, "Attendance:"); i >= 0 {
		s = s[:i]
	}
	if loc := gameDateRe.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	} else if loc := bareDateRe.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	return strings.TrimSpace(s)
}

// parseAttendance extracts a crowd figure from an "Attendance: N" label.
func parseAttendance(text string) (int, bool) {
	m := attendanceRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}

// roundFromText extracts a raw round number from "Round N" text.
func roundFromText(text string) (int, bool) {
	m := roundTextRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// roundFromStatsPath extracts a raw round number embedded in a
// stats-detail URL, when the link carries one ("?round=5" or "/round/5/").
func roundFromStatsPath(href string) (int, bool) {
	m := statsRoundRe.FindStringSubmatch(href)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// cellInt coerces a stat cell to an int. Empty, dashed or otherwise
// non-numeric cells count as zero; absence of a stat is expected, not
// an error.
func cellInt(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	return n
}
