package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/digitalimprov/footybets-ai/internal/store"
)

// TeamRepository handles team data access
type TeamRepository struct {
	q store.Querier
}

// NewTeamRepository creates a new team repository over a database or transaction
func NewTeamRepository(q store.Querier) *TeamRepository {
	return &TeamRepository{q: q}
}

// GetAll returns all teams ordered by name
func (r *TeamRepository) GetAll(ctx context.Context) ([]*store.Team, error) {
	query := `
		SELECT team_id, name, abbreviation, city, state, created_at, updated_at
		FROM teams
		ORDER BY name
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer rows.Close()

	var teams []*store.Team
	for rows.Next() {
		team := &store.Team{}
		err := rows.Scan(
			&team.TeamID, &team.Name, &team.Abbreviation, &team.City, &team.State,
			&team.CreatedAt, &team.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

// GetByName finds a team by its display name
func (r *TeamRepository) GetByName(ctx context.Context, name string) (*store.Team, error) {
	query := `
		SELECT team_id, name, abbreviation, city, state, created_at, updated_at
		FROM teams
		WHERE name = $1
	`

	team := &store.Team{}
	err := r.q.QueryRowContext(ctx, query, name).Scan(
		&team.TeamID, &team.Name, &team.Abbreviation, &team.City, &team.State,
		&team.CreatedAt, &team.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("team not found: %s", name)
	}
	if err != nil {
		return nil, fmt.Errorf("querying team: %w", err)
	}

	return team, nil
}

// ResolveByName returns the ID for a team name, creating the row on first
// sighting. The insert rides the UNIQUE(name) constraint so concurrent
// resolvers cannot race a duplicate in; metadata on an existing row is
// never overwritten.
func (r *TeamRepository) ResolveByName(ctx context.Context, team *store.Team) (int, error) {
	query := `
		INSERT INTO teams (name, abbreviation, city, state)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE SET
			abbreviation = COALESCE(teams.abbreviation, EXCLUDED.abbreviation),
			city = COALESCE(teams.city, EXCLUDED.city),
			state = COALESCE(teams.state, EXCLUDED.state),
			updated_at = NOW()
		RETURNING team_id
	`

	var teamID int
	err := r.q.QueryRowContext(ctx, query,
		team.Name, team.Abbreviation, team.City, team.State,
	).Scan(&teamID)

	if err != nil {
		return 0, fmt.Errorf("resolving team %q: %w", team.Name, err)
	}

	return teamID, nil
}
