package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/digitalimprov/footybets-ai/internal/store"
)

// PlayerRepository handles player data access
type PlayerRepository struct {
	q store.Querier
}

// NewPlayerRepository creates a new player repository over a database or transaction
func NewPlayerRepository(q store.Querier) *PlayerRepository {
	return &PlayerRepository{q: q}
}

// GetByName finds a player by display name
func (r *PlayerRepository) GetByName(ctx context.Context, name string) (*store.Player, error) {
	query := `
		SELECT player_id, name, current_team_id, created_at, updated_at
		FROM players
		WHERE name = $1
	`

	player := &store.Player{}
	err := r.q.QueryRowContext(ctx, query, name).Scan(
		&player.PlayerID, &player.Name, &player.CurrentTeamID,
		&player.CreatedAt, &player.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player not found: %s", name)
	}
	if err != nil {
		return nil, fmt.Errorf("querying player: %w", err)
	}

	return player, nil
}

// GetByCurrentTeam returns all players currently attached to a team
func (r *PlayerRepository) GetByCurrentTeam(ctx context.Context, teamID int) ([]*store.Player, error) {
	query := `
		SELECT player_id, name, current_team_id, created_at, updated_at
		FROM players
		WHERE current_team_id = $1
		ORDER BY name
	`

	rows, err := r.q.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("querying players by team: %w", err)
	}
	defer rows.Close()

	var players []*store.Player
	for rows.Next() {
		player := &store.Player{}
		err := rows.Scan(
			&player.PlayerID, &player.Name, &player.CurrentTeamID,
			&player.CreatedAt, &player.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		players = append(players, player)
	}

	return players, rows.Err()
}

// ResolveByName returns the ID for a player name, creating the row on first
// sighting in a box score. The current team moves with the most recent
// sighting; the UNIQUE(name) constraint keeps concurrent resolvers safe.
func (r *PlayerRepository) ResolveByName(ctx context.Context, name string, teamID int) (int, error) {
	query := `
		INSERT INTO players (name, current_team_id)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET
			current_team_id = EXCLUDED.current_team_id,
			updated_at = NOW()
		RETURNING player_id
	`

	var playerID int
	err := r.q.QueryRowContext(ctx, query, name, teamID).Scan(&playerID)
	if err != nil {
		return 0, fmt.Errorf("resolving player %q: %w", name, err)
	}

	return playerID, nil
}
