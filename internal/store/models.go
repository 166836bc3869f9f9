package store

import (
	"database/sql"
	"time"
)

// Team represents an AFL club. Teams are created lazily the first time a
// scrape sights their name; the name is the natural key.
type Team struct {
	TeamID       int            `json:"team_id" db:"team_id"`
	Name         string         `json:"name" db:"name"`
	Abbreviation sql.NullString `json:"abbreviation,omitempty" db:"abbreviation"`
	City         sql.NullString `json:"city,omitempty" db:"city"`
	State        sql.NullString `json:"state,omitempty" db:"state"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// Game represents one AFL game. The natural key is
// (season, round_number, home_team_id, away_team_id) since the source
// publishes no stable external ID. Scores stay NULL until the game is
// complete; is_finished transitions false→true exactly once.
type Game struct {
	GameID      int            `json:"game_id" db:"game_id"`
	Season      int            `json:"season" db:"season"`
	RoundNumber int            `json:"round_number" db:"round_number"`
	HomeTeamID  int            `json:"home_team_id" db:"home_team_id"`
	AwayTeamID  int            `json:"away_team_id" db:"away_team_id"`
	Venue       sql.NullString `json:"venue,omitempty" db:"venue"`
	GameDate    sql.NullTime   `json:"game_date,omitempty" db:"game_date"`
	Attendance  sql.NullInt32  `json:"attendance,omitempty" db:"attendance"`
	HomeScore   sql.NullInt32  `json:"home_score,omitempty" db:"home_score"`
	AwayScore   sql.NullInt32  `json:"away_score,omitempty" db:"away_score"`
	HomeGoals   sql.NullInt32  `json:"home_goals,omitempty" db:"home_goals"`
	HomeBehinds sql.NullInt32  `json:"home_behinds,omitempty" db:"home_behinds"`
	AwayGoals   sql.NullInt32  `json:"away_goals,omitempty" db:"away_goals"`
	AwayBehinds sql.NullInt32  `json:"away_behinds,omitempty" db:"away_behinds"`
	Winner      sql.NullString `json:"winner,omitempty" db:"winner"` // "home", "away" or "draw"
	IsFinished  bool           `json:"is_finished" db:"is_finished"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

// Player represents a player. The display name is the natural key; the
// source has no player ID that survives across pages.
type Player struct {
	PlayerID      int           `json:"player_id" db:"player_id"`
	Name          string        `json:"name" db:"name"`
	CurrentTeamID sql.NullInt32 `json:"current_team_id,omitempty" db:"current_team_id"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

// PlayerGameStats holds one player's counting statistics for one game,
// in afltables column order. At most one row per (game_id, player_id);
// re-parsing a box score updates the row in place.
type PlayerGameStats struct {
	ID       int `json:"id" db:"id"`
	GameID   int `json:"game_id" db:"game_id"`
	PlayerID int `json:"player_id" db:"player_id"`
	TeamID   int `json:"team_id" db:"team_id"`

	Kicks                  int `json:"kicks" db:"kicks"`
	Marks                  int `json:"marks" db:"marks"`
	Handballs              int `json:"handballs" db:"handballs"`
	Disposals              int `json:"disposals" db:"disposals"`
	Goals                  int `json:"goals" db:"goals"`
	Behinds                int `json:"behinds" db:"behinds"`
	Hitouts                int `json:"hitouts" db:"hitouts"`
	Tackles                int `json:"tackles" db:"tackles"`
	Rebound50s             int `json:"rebound_50s" db:"rebound_50s"`
	Inside50s              int `json:"inside_50s" db:"inside_50s"`
	Clearances             int `json:"clearances" db:"clearances"`
	Clangers               int `json:"clangers" db:"clangers"`
	FreesFor               int `json:"frees_for" db:"frees_for"`
	FreesAgainst           int `json:"frees_against" db:"frees_against"`
	BrownlowVotes          int `json:"brownlow_votes" db:"brownlow_votes"`
	ContestedPossessions   int `json:"contested_possessions" db:"contested_possessions"`
	UncontestedPossessions int `json:"uncontested_possessions" db:"uncontested_possessions"`
	ContestedMarks         int `json:"contested_marks" db:"contested_marks"`
	MarksInside50          int `json:"marks_inside_50" db:"marks_inside_50"`
	OnePercenters          int `json:"one_percenters" db:"one_percenters"`
	Bounces                int `json:"bounces" db:"bounces"`
	GoalAssists            int `json:"goal_assists" db:"goal_assists"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
