package ingest

import (
	"context"

	"github.com/digitalimprov/footybets-ai/internal/scrape"
)

// Store is the storage port the ingestion core writes through. It is
// engine-agnostic: the Postgres adapter and the in-memory dry-run store
// both satisfy it. The only capability it demands of an engine is
// natural-key lookup.
type Store interface {
	// Begin opens one season's write scope. All writes inside it commit
	// together; a failure rolls back that season only.
	Begin(ctx context.Context) (Tx, error)
}

// Tx is a season-scoped transaction. Resolve methods are
// lookup-or-create by name, safe against duplicate creation (unique
// constraint plus upsert, never query-then-insert).
type Tx interface {
	// ResolveTeam returns the ID for a team display name, creating the
	// team on first sighting.
	ResolveTeam(ctx context.Context, name string) (int, error)

	// ResolvePlayer returns the ID for a player display name, creating
	// the player on first sighting in a box score.
	ResolvePlayer(ctx context.Context, name string, teamID int) (int, error)

	// UpsertGame writes a game by natural key and returns its ID.
	// Scores and the finished flag never regress: a nil score side
	// leaves stored values intact, and finished games stay finished.
	UpsertGame(ctx context.Context, game scrape.Game, homeTeamID, awayTeamID int) (int, error)

	// UpsertPlayerStats writes one player's stat line for a game,
	// keyed by (game, player); re-parsing updates in place.
	UpsertPlayerStats(ctx context.Context, gameID, playerID, teamID int, line scrape.StatLine) error

	Commit() error
	Rollback() error
}
