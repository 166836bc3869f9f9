package ingest

import (
	"context"
	"sync"
	"time"

	"github.com/digitalimprov/footybets-ai/internal/scrape"
)

// MemoryStore is an in-memory implementation of the storage port. It
// backs --dry-run invocations and tests, with the same natural-key and
// monotonicity semantics as the Postgres adapter.
type MemoryStore struct {
	mu sync.Mutex

	nextTeamID   int
	nextPlayerID int
	nextGameID   int

	teams   map[string]int
	players map[string]int
	games   map[scrape.Key]*StoredGame
	stats   map[StatKey]scrape.StatLine
}

// StoredGame is the merged state of one game in the memory store.
type StoredGame struct {
	ID         int
	Season     int
	Round      int
	HomeTeam   string
	AwayTeam   string
	HomeTeamID int
	AwayTeamID int
	HomeScore  *scrape.Score
	AwayScore  *scrape.Score
	Venue      string
	Date       time.Time
	Attendance int
	Winner     string
	IsFinished bool
}

// StatKey identifies one stat line.
type StatKey struct {
	GameID   int
	PlayerID int
}

// NewMemoryStore creates an empty memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextTeamID:   1,
		nextPlayerID: 1,
		nextGameID:   1,
		teams:        make(map[string]int),
		players:      make(map[string]int),
		games:        make(map[scrape.Key]*StoredGame),
		stats:        make(map[StatKey]scrape.StatLine),
	}
}

// Begin opens a staged season scope; nothing lands until Commit.
func (m *MemoryStore) Begin(ctx context.Context) (Tx, error) {
	return &memoryTx{
		store:   m,
		teams:   make(map[string]int),
		players: make(map[string]int),
		games:   make(map[scrape.Key]*StoredGame),
		stats:   make(map[StatKey]scrape.StatLine),
	}, nil
}

// Teams returns the committed team name → ID mapping.
func (m *MemoryStore) Teams() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.teams))
	for k, v := range m.teams {
		out[k] = v
	}
	return out
}

// Players returns the committed player name → ID mapping.
func (m *MemoryStore) Players() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.players))
	for k, v := range m.players {
		out[k] = v
	}
	return out
}

// Games returns the committed games.
func (m *MemoryStore) Games() []StoredGame {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]StoredGame, 0, len(m.games))
	for _, g := range m.games {
		out = append(out, *g)
	}
	return out
}

// Game looks up one committed game by natural key.
func (m *MemoryStore) Game(key scrape.Key) (StoredGame, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[key]
	if !ok {
		return StoredGame{}, false
	}
	return *g, true
}

// Stats returns the committed stat lines.
func (m *MemoryStore) Stats() map[StatKey]scrape.StatLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[StatKey]scrape.StatLine, len(m.stats))
	for k, v := range m.stats {
		out[k] = v
	}
	return out
}

// memoryTx stages one season's writes; Commit folds them into the store.
type memoryTx struct {
	store *MemoryStore
	done  bool

	teams   map[string]int
	players map[string]int
	games   map[scrape.Key]*StoredGame
	stats   map[StatKey]scrape.StatLine
}

func (t *memoryTx) ResolveTeam(ctx context.Context, name string) (int, error) {
	if id, ok := t.teams[name]; ok {
		return id, nil
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if id, ok := t.store.teams[name]; ok {
		t.teams[name] = id
		return id, nil
	}
	id := t.store.nextTeamID
	t.store.nextTeamID++
	t.teams[name] = id
	return id, nil
}

func (t *memoryTx) ResolvePlayer(ctx context.Context, name string, teamID int) (int, error) {
	if id, ok := t.players[name]; ok {
		return id, nil
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if id, ok := t.store.players[name]; ok {
		t.players[name] = id
		return id, nil
	}
	id := t.store.nextPlayerID
	t.store.nextPlayerID++
	t.players[name] = id
	return id, nil
}

func (t *memoryTx) UpsertGame(ctx context.Context, game scrape.Game, homeTeamID, awayTeamID int) (int, error) {
	key := game.Key()

	existing, ok := t.games[key]
	if !ok {
		t.store.mu.Lock()
		if committed, found := t.store.games[key]; found {
			clone := *committed
			existing = &clone
		}
		t.store.mu.Unlock()
	}

	if existing == nil {
		t.store.mu.Lock()
		id := t.store.nextGameID
		t.store.nextGameID++
		t.store.mu.Unlock()
		existing = &StoredGame{
			ID:       id,
			Season:   game.Season,
			Round:    game.Round,
			HomeTeam: game.HomeTeam,
			AwayTeam: game.AwayTeam,
		}
	}

	existing.HomeTeamID = homeTeamID
	existing.AwayTeamID = awayTeamID
	mergeGame(existing, game)
	t.games[key] = existing

	return existing.ID, nil
}

func (t *memoryTx) UpsertPlayerStats(ctx context.Context, gameID, playerID, teamID int, line scrape.StatLine) error {
	t.stats[StatKey{GameID: gameID, PlayerID: playerID}] = line
	return nil
}

func (t *memoryTx) Commit() error {
	if t.done {
		return nil
	}
	t.done = true

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for name, id := range t.teams {
		t.store.teams[name] = id
	}
	for name, id := range t.players {
		t.store.players[name] = id
	}
	for key, game := range t.games {
		t.store.games[key] = game
	}
	for key, line := range t.stats {
		t.store.stats[key] = line
	}
	return nil
}

func (t *memoryTx) Rollback() error {
	t.done = true
	return nil
}

// mergeGame applies the same non-regressing merge as the SQL upsert:
// incoming non-null fields win, missing ones leave stored values
// intact, and is_finished can only move false→true.
func mergeGame(stored *StoredGame, game scrape.Game) {
	if game.HomeScore != nil {
		stored.HomeScore = game.HomeScore
	}
	if game.AwayScore != nil {
		stored.AwayScore = game.AwayScore
	}
	if game.Venue != "" {
		stored.Venue = game.Venue
	}
	if !game.Date.IsZero() {
		stored.Date = game.Date
	}
	if game.Attendance > 0 {
		stored.Attendance = game.Attendance
	}
	if w := game.Winner(); w != "" {
		stored.Winner = w
	}
	if game.IsFinished() {
		stored.IsFinished = true
	}
}
