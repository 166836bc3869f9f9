package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/digitalimprov/footybets-ai/internal/ingest"
	"github.com/digitalimprov/footybets-ai/internal/scrape"
	"github.com/digitalimprov/footybets-ai/internal/store"
)

// Adapter exposes the Postgres repositories as the ingest storage port.
// Each Begin opens one database transaction covering a whole season.
type Adapter struct {
	db *store.Database
}

// NewAdapter wraps a connected database.
func NewAdapter(db *store.Database) *Adapter {
	return &Adapter{db: db}
}

// Begin opens a season-scoped transaction.
func (a *Adapter) Begin(ctx context.Context) (ingest.Tx, error) {
	tx, err := a.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	return &seasonTx{
		tx:      tx,
		teams:   NewTeamRepository(tx),
		players: NewPlayerRepository(tx),
		games:   NewGameRepository(tx),
		stats:   NewStatsRepository(tx),
	}, nil
}

type seasonTx struct {
	tx      *sql.Tx
	teams   *TeamRepository
	players *PlayerRepository
	games   *GameRepository
	stats   *StatsRepository
}

func (t *seasonTx) ResolveTeam(ctx context.Context, name string) (int, error) {
	team := &store.Team{
		Name:         name,
		Abbreviation: nullString(scrape.TeamAbbreviation(name)),
		City:         nullString(scrape.TeamCity(name)),
		State:        nullString(scrape.TeamState(name)),
	}
	return t.teams.ResolveByName(ctx, team)
}

func (t *seasonTx) ResolvePlayer(ctx context.Context, name string, teamID int) (int, error) {
	return t.players.ResolveByName(ctx, name, teamID)
}

func (t *seasonTx) UpsertGame(ctx context.Context, game scrape.Game, homeTeamID, awayTeamID int) (int, error) {
	row := &store.Game{
		Season:      game.Season,
		RoundNumber: game.Round,
		HomeTeamID:  homeTeamID,
		AwayTeamID:  awayTeamID,
		Venue:       nullString(game.Venue),
		Winner:      nullString(game.Winner()),
		IsFinished:  game.IsFinished(),
	}
	if !game.Date.IsZero() {
		row.GameDate = sql.NullTime{Time: game.Date, Valid: true}
	}
	if game.Attendance > 0 {
		row.Attendance = nullInt(game.Attendance)
	}
	applyScore(game.HomeScore, &row.HomeScore, &row.HomeGoals, &row.HomeBehinds)
	applyScore(game.AwayScore, &row.AwayScore, &row.AwayGoals, &row.AwayBehinds)

	if err := t.games.Upsert(ctx, row); err != nil {
		return 0, err
	}
	return row.GameID, nil
}

func (t *seasonTx) UpsertPlayerStats(ctx context.Context, gameID, playerID, teamID int, line scrape.StatLine) error {
	return t.stats.Upsert(ctx, &store.PlayerGameStats{
		GameID:                 gameID,
		PlayerID:               playerID,
		TeamID:                 teamID,
		Kicks:                  line.Kicks,
		Marks:                  line.Marks,
		Handballs:              line.Handballs,
		Disposals:              line.Disposals,
		Goals:                  line.Goals,
		Behinds:                line.Behinds,
		Hitouts:                line.Hitouts,
		Tackles:                line.Tackles,
		Rebound50s:             line.Rebound50s,
		Inside50s:              line.Inside50s,
		Clearances:             line.Clearances,
		Clangers:               line.Clangers,
		FreesFor:               line.FreesFor,
		FreesAgainst:           line.FreesAgainst,
		BrownlowVotes:          line.BrownlowVotes,
		ContestedPossessions:   line.ContestedPossessions,
		UncontestedPossessions: line.UncontestedPossessions,
		ContestedMarks:         line.ContestedMarks,
		MarksInside50:          line.MarksInside50,
		OnePercenters:          line.OnePercenters,
		Bounces:                line.Bounces,
		GoalAssists:            line.GoalAssists,
	})
}

func (t *seasonTx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (t *seasonTx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && err != sql.ErrTxDone {
		return fmt.Errorf("rolling back transaction: %w", err)
	}
	return nil
}

// applyScore maps a parsed score onto the nullable columns. Bare totals
// leave the goal and behind columns null.
func applyScore(s *scrape.Score, total, goals, behinds *sql.NullInt32) {
	if s == nil {
		return
	}
	*total = nullInt(s.Total)
	if s.HasBreakdown {
		*goals = nullInt(s.Goals)
		*behinds = nullInt(s.Behinds)
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(v int) sql.NullInt32 {
	return sql.NullInt32{Int32: int32(v), Valid: true}
}
