package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/digitalimprov/footybets-ai/internal/store"
)

// GameRepository handles game data access
type GameRepository struct {
	q store.Querier
}

// NewGameRepository creates a new game repository over a database or transaction
func NewGameRepository(q store.Querier) *GameRepository {
	return &GameRepository{q: q}
}

const gameColumns = `game_id, season, round_number, home_team_id, away_team_id,
		venue, game_date, attendance, home_score, away_score,
		home_goals, home_behinds, away_goals, away_behinds,
		winner, is_finished, created_at, updated_at`

// GetByNaturalKey finds a game by (season, round, home, away)
func (r *GameRepository) GetByNaturalKey(ctx context.Context, season, round, homeTeamID, awayTeamID int) (*store.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games
		WHERE season = $1 AND round_number = $2 AND home_team_id = $3 AND away_team_id = $4
	`

	game := &store.Game{}
	err := r.q.QueryRowContext(ctx, query, season, round, homeTeamID, awayTeamID).Scan(
		&game.GameID, &game.Season, &game.RoundNumber, &game.HomeTeamID, &game.AwayTeamID,
		&game.Venue, &game.GameDate, &game.Attendance, &game.HomeScore, &game.AwayScore,
		&game.HomeGoals, &game.HomeBehinds, &game.AwayGoals, &game.AwayBehinds,
		&game.Winner, &game.IsFinished, &game.CreatedAt, &game.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game not found: season %d round %d teams %d/%d", season, round, homeTeamID, awayTeamID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying game: %w", err)
	}

	return game, nil
}

// GetBySeason returns all games in a season ordered by round and date
func (r *GameRepository) GetBySeason(ctx context.Context, season int) ([]*store.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games
		WHERE season = $1
		ORDER BY round_number, game_date
	`

	rows, err := r.q.QueryContext(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("querying season games: %w", err)
	}
	defer rows.Close()

	return r.scanGames(rows)
}

// GetByDateWindow returns games inside [from, to) ordered by date
func (r *GameRepository) GetByDateWindow(ctx context.Context, from, to time.Time) ([]*store.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games
		WHERE game_date >= $1 AND game_date < $2
		ORDER BY game_date
	`

	rows, err := r.q.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("querying games by window: %w", err)
	}
	defer rows.Close()

	return r.scanGames(rows)
}

// Upsert inserts or updates a game by its natural key. Score, winner and
// finished fields never move backwards: a re-scrape that fails to parse a
// score leaves the stored result intact, and is_finished can only
// transition false→true.
func (r *GameRepository) Upsert(ctx context.Context, game *store.Game) error {
	query := `
		INSERT INTO games (season, round_number, home_team_id, away_team_id,
			venue, game_date, attendance, home_score, away_score,
			home_goals, home_behinds, away_goals, away_behinds,
			winner, is_finished)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (season, round_number, home_team_id, away_team_id) DO UPDATE SET
			venue = COALESCE(EXCLUDED.venue, games.venue),
			game_date = COALESCE(EXCLUDED.game_date, games.game_date),
			attendance = COALESCE(EXCLUDED.attendance, games.attendance),
			home_score = COALESCE(EXCLUDED.home_score, games.home_score),
			away_score = COALESCE(EXCLUDED.away_score, games.away_score),
			home_goals = COALESCE(EXCLUDED.home_goals, games.home_goals),
			home_behinds = COALESCE(EXCLUDED.home_behinds, games.home_behinds),
			away_goals = COALESCE(EXCLUDED.away_goals, games.away_goals),
			away_behinds = COALESCE(EXCLUDED.away_behinds, games.away_behinds),
			winner = COALESCE(EXCLUDED.winner, games.winner),
			is_finished = games.is_finished OR EXCLUDED.is_finished,
			updated_at = NOW()
		RETURNING game_id
	`

	err := r.q.QueryRowContext(ctx, query,
		game.Season, game.RoundNumber, game.HomeTeamID, game.AwayTeamID,
		game.Venue, game.GameDate, game.Attendance, game.HomeScore, game.AwayScore,
		game.HomeGoals, game.HomeBehinds, game.AwayGoals, game.AwayBehinds,
		game.Winner, game.IsFinished,
	).Scan(&game.GameID)

	if err != nil {
		return fmt.Errorf("upserting game: %w", err)
	}

	return nil
}

// scanGames scans multiple game rows
func (r *GameRepository) scanGames(rows *sql.Rows) ([]*store.Game, error) {
	var games []*store.Game
	for rows.Next() {
		game := &store.Game{}
		err := rows.Scan(
			&game.GameID, &game.Season, &game.RoundNumber, &game.HomeTeamID, &game.AwayTeamID,
			&game.Venue, &game.GameDate, &game.Attendance, &game.HomeScore, &game.AwayScore,
			&game.HomeGoals, &game.HomeBehinds, &game.AwayGoals, &game.AwayBehinds,
			&game.Winner, &game.IsFinished, &game.CreatedAt, &game.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		games = append(games, game)
	}

	return games, rows.Err()
}
