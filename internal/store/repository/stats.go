package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/digitalimprov/footybets-ai/internal/store"
)

// StatsRepository handles player box-score data access
type StatsRepository struct {
	q store.Querier
}

// NewStatsRepository creates a new stats repository over a database or transaction
func NewStatsRepository(q store.Querier) *StatsRepository {
	return &StatsRepository{q: q}
}

const statsColumns = `id, game_id, player_id, team_id,
		kicks, marks, handballs, disposals, goals, behinds, hitouts, tackles,
		rebound_50s, inside_50s, clearances, clangers, frees_for, frees_against,
		brownlow_votes, contested_possessions, uncontested_possessions,
		contested_marks, marks_inside_50, one_percenters, bounces, goal_assists,
		created_at, updated_at`

// GetByGame returns all player stat lines recorded for a game
func (r *StatsRepository) GetByGame(ctx context.Context, gameID int) ([]*store.PlayerGameStats, error) {
	query := `
		SELECT ` + statsColumns + `
		FROM player_game_stats
		WHERE game_id = $1
		ORDER BY team_id, disposals DESC
	`

	rows, err := r.q.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying box score: %w", err)
	}
	defer rows.Close()

	return r.scanStats(rows)
}

// GetByPlayer returns a player's stat lines, most recent game first
func (r *StatsRepository) GetByPlayer(ctx context.Context, playerID int, limit int) ([]*store.PlayerGameStats, error) {
	query := `
		SELECT ` + statsPrefixed + `
		FROM player_game_stats pgs
		JOIN games g ON pgs.game_id = g.game_id
		WHERE pgs.player_id = $1
		ORDER BY g.game_date DESC NULLS LAST
		LIMIT $2
	`

	rows, err := r.q.QueryContext(ctx, query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying player stats: %w", err)
	}
	defer rows.Close()

	return r.scanStats(rows)
}

// Upsert inserts or updates a stat line by (game_id, player_id).
// Re-parsing a box score replaces every counting field in place.
func (r *StatsRepository) Upsert(ctx context.Context, stats *store.PlayerGameStats) error {
	query := `
		INSERT INTO player_game_stats (game_id, player_id, team_id,
			kicks, marks, handballs, disposals, goals, behinds, hitouts, tackles,
			rebound_50s, inside_50s, clearances, clangers, frees_for, frees_against,
			brownlow_votes, contested_possessions, uncontested_possessions,
			contested_marks, marks_inside_50, one_percenters, bounces, goal_assists)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
		ON CONFLICT (game_id, player_id) DO UPDATE SET
			team_id = EXCLUDED.team_id,
			kicks = EXCLUDED.kicks,
			marks = EXCLUDED.marks,
			handballs = EXCLUDED.handballs,
			disposals = EXCLUDED.disposals,
			goals = EXCLUDED.goals,
			behinds = EXCLUDED.behinds,
			hitouts = EXCLUDED.hitouts,
			tackles = EXCLUDED.tackles,
			rebound_50s = EXCLUDED.rebound_50s,
			inside_50s = EXCLUDED.inside_50s,
			clearances = EXCLUDED.clearances,
			clangers = EXCLUDED.clangers,
			frees_for = EXCLUDED.frees_for,
			frees_against = EXCLUDED.frees_against,
			brownlow_votes = EXCLUDED.brownlow_votes,
			contested_possessions = EXCLUDED.contested_possessions,
			uncontested_possessions = EXCLUDED.uncontested_possessions,
			contested_marks = EXCLUDED.contested_marks,
			marks_inside_50 = EXCLUDED.marks_inside_50,
			one_percenters = EXCLUDED.one_percenters,
			bounces = EXCLUDED.bounces,
			goal_assists = EXCLUDED.goal_assists,
			updated_at = NOW()
		RETURNING id
	`

	err := r.q.QueryRowContext(ctx, query,
		stats.GameID, stats.PlayerID, stats.TeamID,
		stats.Kicks, stats.Marks, stats.Handballs, stats.Disposals, stats.Goals,
		stats.Behinds, stats.Hitouts, stats.Tackles, stats.Rebound50s, stats.Inside50s,
		stats.Clearances, stats.Clangers, stats.FreesFor, stats.FreesAgainst,
		stats.BrownlowVotes, stats.ContestedPossessions, stats.UncontestedPossessions,
		stats.ContestedMarks, stats.MarksInside50, stats.OnePercenters,
		stats.Bounces, stats.GoalAssists,
	).Scan(&stats.ID)

	if err != nil {
		return fmt.Errorf("upserting player stats: %w", err)
	}

	return nil
}

// statsPrefixed is statsColumns qualified for joins against games
const statsPrefixed = `pgs.id, pgs.game_id, pgs.player_id, pgs.team_id,
		pgs.kicks, pgs.marks, pgs.handballs, pgs.disposals, pgs.goals, pgs.behinds,
		pgs.hitouts, pgs.tackles, pgs.rebound_50s, pgs.inside_50s, pgs.clearances,
		pgs.clangers, pgs.frees_for, pgs.frees_against, pgs.brownlow_votes,
		pgs.contested_possessions, pgs.uncontested_possessions, pgs.contested_marks,
		pgs.marks_inside_50, pgs.one_percenters, pgs.bounces, pgs.goal_assists,
		pgs.created_at, pgs.updated_at`

// scanStats is a helper to scan multiple stat rows
func (r *StatsRepository) scanStats(rows *sql.Rows) ([]*store.PlayerGameStats, error) {
	var all []*store.PlayerGameStats
	for rows.Next() {
		s := &store.PlayerGameStats{}
		err := rows.Scan(
			&s.ID, &s.GameID, &s.PlayerID, &s.TeamID,
			&s.Kicks, &s.Marks, &s.Handballs, &s.Disposals, &s.Goals, &s.Behinds,
			&s.Hitouts, &s.Tackles, &s.Rebound50s, &s.Inside50s, &s.Clearances,
			&s.Clangers, &s.FreesFor, &s.FreesAgainst, &s.BrownlowVotes,
			&s.ContestedPossessions, &s.UncontestedPossessions, &s.ContestedMarks,
			&s.MarksInside50, &s.OnePercenters, &s.Bounces, &s.GoalAssists,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning player stats: %w", err)
		}
		all = append(all, s)
	}

	return all, rows.Err()
}
