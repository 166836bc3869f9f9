package scrape

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// teamPathMarker identifies team-profile hyperlinks. Link structure is
	// the one signal that has stayed stable across every season's tables;
	// CSS classes have not.
	teamPathMarker = "teams/"

	// statsPathMarker identifies stats-detail hyperlinks.
	statsPathMarker = "/stats/games/"

	// minTeamLinks is the threshold for a table to qualify as a
	// game-record candidate.
	minTeamLinks = 2
)

// SeasonPageURL builds the fixed per-season page URL.
func SeasonPageURL(baseURL string, season int) string {
	return fmt.Sprintf("%s/seas/%d.html", strings.TrimSuffix(baseURL, "/"), season)
}

// ParseSeasonPage scans a parsed season page and returns every
// provisional game it can extract, plus a count of rows that looked like
// game rows but failed pairing. Round headers between tables update a
// round hint that is carried forward until the next header. Tables with
// fewer than two team-profile links are ignored; summary/navigation
// tables never carry two.
//
// The returned games have normalized rounds; callers should Dedup before
// persisting since overlapping tables can describe the same game.
func ParseSeasonPage(doc *goquery.Document, season int, pageURL string) ([]Game, int) {
	var games []Game
	skipped := 0
	roundHint := RoundUnknown

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		// Round-header rows update the hint even when they sit in a
		// non-qualifying table of their own.
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			if teamLinkText(row) != "" {
				return
			}
			if r, ok := roundFromText(row.Text()); ok {
				roundHint = r
			}
		})

		if countTeamLinks(table) < minTeamLinks {
			return
		}

		tableGames, tableSkipped := parseGameTable(table, season, roundHint, pageURL)
		games = append(games, tableGames...)
		skipped += tableSkipped
	})

	return games, skipped
}

// parseGameTable walks the rows of a qualifying table pairing adjacent
// team-link rows into home/away games. A team-link row whose immediate
// successor is not also a team-link row is never paired with anything
// later; it is skipped and scanning advances by one.
func parseGameTable(table *goquery.Selection, season, roundHint int, pageURL string) ([]Game, int) {
	var rows []*goquery.Selection
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		rows = append(rows, row)
	})

	var games []Game
	skipped := 0

	i := 0
	for i < len(rows) {
		homeTeam := teamLinkText(rows[i])
		if homeTeam == "" {
			i++
			continue
		}

		if i+1 >= len(rows) {
			skipped++
			break
		}

		awayTeam := teamLinkText(rows[i+1])
		if awayTeam == "" {
			skipped++
			i++
			continue
		}

		game := extractGame(rows[i], rows[i+1], season, roundHint, pageURL)
		game.HomeTeam = homeTeam
		game.AwayTeam = awayTeam
		games = append(games, game)
		i += 2
	}

	return games, skipped
}

// extractGame pulls the non-team fields out of a home/away row pair.
func extractGame(homeRow, awayRow *goquery.Selection, season, roundHint int, pageURL string) Game {
	game := Game{Season: season, Round: RoundUnknown}

	if score, ok := rowScore(homeRow); ok {
		game.HomeScore = &score
	}
	if score, ok := rowScore(awayRow); ok {
		game.AwayScore = &score
	}

	combined := homeRow.Text() + " " + awayRow.Text()

	if venue, ok := parseVenue(combined); ok {
		game.Venue = venue
	}
	if date, ok := parseGameDate(combined); ok {
		game.Date = date
	}
	if attendance, ok := parseAttendance(combined); ok {
		game.Attendance = attendance
	}

	statsHref := statsLink(homeRow, awayRow)
	if statsHref != "" {
		game.StatsURL = absoluteURL(pageURL, statsHref)
	}

	// Round priority: stats-link path, then the carried hint, then local
	// row text. Whatever the origin, it passes through NormalizeRound
	// before it can reach a natural key.
	raw := RoundUnknown
	if r, ok := roundFromStatsPath(statsHref); ok {
		raw = r
	} else if roundHint != RoundUnknown {
		raw = roundHint
	} else if r, ok := roundFromText(combined); ok {
		raw = r
	}
	game.Round = NormalizeRound(season, raw)

	return game
}

// rowScore finds the first cell in a row that parses as a score.
func rowScore(row *goquery.Selection) (Score, bool) {
	var score Score
	found := false
	row.Find("td, th").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		if s, ok := parseScore(cell.Text()); ok {
			score = s
			found = true
			return false
		}
		return true
	})
	return score, found
}

// teamLinkText returns the anchor text of the first team-profile link in
// a row, trimmed only. Team names are natural keys and must not be
// normalized here.
func teamLinkText(row *goquery.Selection) string {
	var name string
	row.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if !ok || !strings.Contains(href, teamPathMarker) {
			return true
		}
		name = strings.TrimSpace(a.Text())
		return false
	})
	return name
}

// statsLink returns the href of the first stats-detail anchor in either row.
func statsLink(homeRow, awayRow *goquery.Selection) string {
	for _, row := range []*goquery.Selection{homeRow, awayRow} {
		var href string
		row.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			h, ok := a.Attr("href")
			if ok && strings.Contains(h, statsPathMarker) {
				href = h
				return false
			}
			return true
		})
		if href != "" {
			return href
		}
	}
	return ""
}

// countTeamLinks counts team-profile hyperlinks in a table.
func countTeamLinks(table *goquery.Selection) int {
	count := 0
	table.Find("a").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok && strings.Contains(href, teamPathMarker) {
			count++
		}
	})
	return count
}

// absoluteURL resolves a possibly relative href against the page it was
// found on.
func absoluteURL(pageURL, href string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
