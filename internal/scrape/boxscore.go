package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// statsHeaderMarker tags the per-team box-score tables on a
	// stats-detail page ("Essendon Match Statistics").
	statsHeaderMarker = "Match Statistics"

	// playerPathMarker identifies player-profile hyperlinks.
	playerPathMarker = "players/"
)

// ParseBoxScore extracts the per-team player statistics tables from a
// stats-detail page. Pages without any marked table yield an empty
// slice. Older seasons simply don't publish detailed stats, which is
// expected, not an error.
func ParseBoxScore(doc *goquery.Document) []TeamBoxScore {
	var out []TeamBoxScore

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		header := tableHeaderText(table)
		if !strings.Contains(header, statsHeaderMarker) {
			return
		}

		team := strings.TrimSpace(header[:strings.Index(header, statsHeaderMarker)])

		var players []PlayerLine
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			if line, ok := parsePlayerRow(row); ok {
				players = append(players, line)
			}
		})

		out = append(out, TeamBoxScore{Team: team, Players: players})
	})

	return out
}

// tableHeaderText returns the text of a table's first row.
func tableHeaderText(table *goquery.Selection) string {
	return strings.TrimSpace(table.Find("tr").First().Text())
}

// parsePlayerRow extracts one player line from a box-score body row. A
// row qualifies only if it carries a player-profile anchor; header and
// totals rows don't. Stat cells sit at fixed positions after the name
// cell, in the source's column order; any cell that doesn't parse as a
// number counts as zero.
func parsePlayerRow(row *goquery.Selection) (PlayerLine, bool) {
	var line PlayerLine

	nameIdx := -1
	var cells []string
	row.Find("td").Each(func(i int, cell *goquery.Selection) {
		cells = append(cells, cell.Text())
		if nameIdx >= 0 {
			return
		}
		cell.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			href, ok := a.Attr("href")
			if ok && strings.Contains(href, playerPathMarker) {
				line.Name = strings.TrimSpace(a.Text())
				nameIdx = i
				return false
			}
			return true
		})
	})

	if nameIdx < 0 || line.Name == "" {
		return PlayerLine{}, false
	}

	if nameIdx > 0 {
		line.JumperNumber = cellInt(cells[nameIdx-1])
	}
	line.Stats = statsFromCells(cells[nameIdx+1:])

	return line, true
}

// statsFromCells maps the fixed-position cells after the player name
// into a StatLine. Source column order: KI MK HB DI GL BH HO TK RB IF
// CL CG FF FA BR CP UP CM MI 1% BO GA. Short rows leave the tail at
// zero.
func statsFromCells(cells []string) StatLine {
	at := func(i int) int {
		if i >= len(cells) {
			return 0
		}
		return cellInt(cells[i])
	}

	return StatLine{
		Kicks:                  at(0),
		Marks:                  at(1),
		Handballs:              at(2),
		Disposals:              at(3),
		Goals:                  at(4),
		Behinds:                at(5),
		Hitouts:                at(6),
		Tackles:                at(7),
		Rebound50s:             at(8),
		Inside50s:              at(9),
		Clearances:             at(10),
		Clangers:               at(11),
		FreesFor:               at(12),
		FreesAgainst:           at(13),
		BrownlowVotes:          at(14),
		ContestedPossessions:   at(15),
		UncontestedPossessions: at(16),
		ContestedMarks:         at(17),
		MarksInside50:          at(18),
		OnePercenters:          at(19),
		Bounces:                at(20),
		GoalAssists:            at(21),
	}
}
