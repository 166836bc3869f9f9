package scrape

import "time"

// RoundUnknown marks a game whose round could not be determined from the
// stats link, the carried round hint, or the surrounding row text.
// Round 0 is a real round in seasons with an opening round, so the
// sentinel has to sit below zero.
const RoundUnknown = -1

// Score is one side's result. AFL scores publish as goals.behinds.total
// ("12.8.80"); some historical tables carry only the bare total, in which
// case HasBreakdown is false and Goals/Behinds are zero.
type Score struct {
	Total        int
	Goals        int
	Behinds      int
	HasBreakdown bool
}

// Game is a provisional game extracted from one season page, before
// dedup and persistence. Nil scores mean the side's result was absent or
// unparseable; a zero Date means no date could be extracted.
type Game struct {
	Season     int
	Round      int // normalized
	HomeTeam   string
	AwayTeam   string
	HomeScore  *Score
	AwayScore  *Score
	Venue      string
	Date       time.Time
	Attendance int
	StatsURL   string
}

// Key is the natural key of a game. The source exposes no stable game
// ID, so identity is (season, normalized round, team names).
type Key struct {
	Season   int
	Round    int
	HomeTeam string
	AwayTeam string
}

// Key returns the game's natural key.
func (g *Game) Key() Key {
	return Key{Season: g.Season, Round: g.Round, HomeTeam: g.HomeTeam, AwayTeam: g.AwayTeam}
}

// HasKey reports whether every key component is present. Records with a
// partial key are never persisted.
func (g *Game) HasKey() bool {
	return g.Season != 0 && g.Round != RoundUnknown && g.HomeTeam != "" && g.AwayTeam != ""
}

// IsFinished reports whether both sides have a parseable score.
func (g *Game) IsFinished() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// Winner returns "home", "away" or "draw" for a finished game, "" otherwise.
func (g *Game) Winner() string {
	if !g.IsFinished() {
		return ""
	}
	switch {
	case g.HomeScore.Total > g.AwayScore.Total:
		return "home"
	case g.AwayScore.Total > g.HomeScore.Total:
		return "away"
	default:
		return "draw"
	}
}

// PlayerLine is one body row of a box-score table: a player and their
// counting statistics in afltables column order.
type PlayerLine struct {
	Name         string
	JumperNumber int
	Stats        StatLine
}

// StatLine carries the fixed-position counting statistics of a box-score
// row. Empty or non-numeric cells coerce to zero.
type StatLine struct {
	Kicks                  int
	Marks                  int
	Handballs              int
	Disposals              int
	Goals                  int
	Behinds                int
	Hitouts                int
	Tackles                int
	Rebound50s             int
	Inside50s              int
	Clearances             int
	Clangers               int
	FreesFor               int
	FreesAgainst           int
	BrownlowVotes          int
	ContestedPossessions   int
	UncontestedPossessions int
	ContestedMarks         int
	MarksInside50          int
	OnePercenters          int
	Bounces                int
	GoalAssists            int
}

// TeamBoxScore is one team's box-score table from a stats-detail page.
type TeamBoxScore struct {
	Team    string
	Players []PlayerLine
}

// FilterWindow keeps games whose date falls inside [from, to). Games
// without a parsed date are excluded; the window views (recent results,
// upcoming fixtures) are date-driven by definition.
func FilterWindow(games []Game, from, to time.Time) []Game {
	var out []Game
	for _, g := range games {
		if g.Date.IsZero() {
			continue
		}
		if !g.Date.Before(from) && g.Date.Before(to) {
			out = append(out, g)
		}
	}
	return out
}
