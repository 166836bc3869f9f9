package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/digitalimprov/footybets-ai/internal/scrape"
)

const seasonPage = `<html><body>
<table><tr><td>Round 3</td></tr></table>
<table>
<tr>
  <td><a href="../teams/essendon/idx.html">Essendon</a></td>
  <td>15.10.100</td>
  <td>Sat 15-Apr-2023 Venue: MCG Attendance: 85,000</td>
  <td><a href="../stats/games/2023/031420230415.html">Stats</a></td>
</tr>
<tr>
  <td><a href="../teams/richmond/idx.html">Richmond</a></td>
  <td>12.9.81</td>
</tr>
<tr>
  <td><a href="../teams/geelong/idx.html">Geelong</a></td>
  <td></td>
  <td>Sat 22-Apr-2023 Venue: GMHBA Stadium</td>
</tr>
<tr>
  <td><a href="../teams/carlton/idx.html">Carlton</a></td>
  <td></td>
</tr>
</table>
</body></html>`

const statsPage = `<html><body>
<table>
<tr><th colspan="24">Essendon Match Statistics</th></tr>
<tr>
  <td>7</td>
  <td><a href="../../players/Zach_Merrett.html">Zach Merrett</a></td>
  <td>21</td><td>4</td><td>13</td><td>34</td><td>1</td><td>0</td><td>0</td><td>6</td>
  <td>3</td><td>5</td><td>7</td><td>2</td><td>1</td><td>0</td><td>3</td><td>15</td>
  <td>19</td><td>0</td><td>1</td><td>2</td><td>4</td><td>2</td>
</tr>
</table>
<table>
<tr><th colspan="24">Richmond Match Statistics</th></tr>
<tr>
  <td>3</td>
  <td><a href="../../players/Tim_Taranto.html">Tim Taranto</a></td>
  <td>18</td><td>5</td><td>10</td><td>28</td><td>0</td><td>1</td>
</tr>
</table>
</body></html>`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/seas/2023.html", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(seasonPage))
	})
	mux.HandleFunc("/seas/2024.html", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})
	mux.HandleFunc("/stats/games/2023/031420230415.html", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(statsPage))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestIngester(srv *httptest.Server, store Store) *Ingester {
	client := scrape.NewClient("test-agent", 0, nil)
	return NewIngester(client, store, Config{BaseURL: srv.URL, DryRun: true})
}

func TestIngesterRun(t *testing.T) {
	srv := newTestServer(t)
	store := NewMemoryStore()
	ing := newTestIngester(srv, store)

	summary, err := ing.Run(context.Background(), 2023, 2023)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(summary.Seasons) != 1 {
		t.Fatalf("expected 1 season result, got %d", len(summary.Seasons))
	}
	season := summary.Seasons[0]
	if !season.Committed {
		t.Fatalf("season not committed: %s", season.Failure)
	}
	if season.GamesFound != 2 {
		t.Errorf("expected 2 games, got %d", season.GamesFound)
	}
	if season.GamesFinished != 1 {
		t.Errorf("expected 1 finished game, got %d", season.GamesFinished)
	}
	if season.PlayerStatRows != 2 {
		t.Errorf("expected 2 stat rows, got %d", season.PlayerStatRows)
	}

	games := store.Games()
	if len(games) != 2 {
		t.Fatalf("expected 2 stored games, got %d", len(games))
	}

	finished, ok := store.Game(scrape.Key{Season: 2023, Round: 3, HomeTeam: "Essendon", AwayTeam: "Richmond"})
	if !ok {
		t.Fatal("finished game missing from store")
	}
	if !finished.IsFinished || finished.Winner != "home" {
		t.Errorf("unexpected finished game state: finished=%v winner=%q", finished.IsFinished, finished.Winner)
	}
	if finished.Attendance != 85000 {
		t.Errorf("expected attendance 85000, got %d", finished.Attendance)
	}

	upcoming, ok := store.Game(scrape.Key{Season: 2023, Round: 3, HomeTeam: "Geelong", AwayTeam: "Carlton"})
	if !ok {
		t.Fatal("upcoming game missing from store")
	}
	if upcoming.IsFinished {
		t.Error("upcoming game should not be finished")
	}

	players := store.Players()
	if len(players) != 2 {
		t.Errorf("expected 2 players, got %d", len(players))
	}
	merrettID, ok := players["Zach Merrett"]
	if !ok {
		t.Fatal("player Zach Merrett missing")
	}
	line, ok := store.Stats()[StatKey{GameID: finished.ID, PlayerID: merrettID}]
	if !ok {
		t.Fatal("stat line missing for Zach Merrett")
	}
	if line.Disposals != 34 || line.Kicks != 21 {
		t.Errorf("unexpected stat line: %+v", line)
	}
}

func TestIngesterRunIsIdempotent(t *testing.T) {
	srv := newTestServer(t)
	store := NewMemoryStore()
	ing := newTestIngester(srv, store)

	if _, err := ing.Run(context.Background(), 2023, 2023); err != nil {
		t.Fatalf("first run: %v", err)
	}
	firstGames := store.Games()
	firstStats := len(store.Stats())

	if _, err := ing.Run(context.Background(), 2023, 2023); err != nil {
		t.Fatalf("second run: %v", err)
	}

	if len(store.Games()) != len(firstGames) {
		t.Errorf("second run changed game count: %d then %d", len(firstGames), len(store.Games()))
	}
	if len(store.Stats()) != firstStats {
		t.Errorf("second run changed stat count: %d then %d", firstStats, len(store.Stats()))
	}
}

func TestIngesterSeasonPageFailureIsIsolated(t *testing.T) {
	srv := newTestServer(t)
	store := NewMemoryStore()
	ing := newTestIngester(srv, store)

	summary, err := ing.Run(context.Background(), 2023, 2024)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(summary.Seasons) != 2 {
		t.Fatalf("expected 2 season results, got %d", len(summary.Seasons))
	}
	if !summary.Seasons[0].Committed {
		t.Errorf("2023 should commit despite 2024 failing: %s", summary.Seasons[0].Failure)
	}
	if summary.Seasons[1].Committed || summary.Seasons[1].Failure == "" {
		t.Error("2024 should be recorded as failed")
	}
	if len(summary.PageErrors) != 1 {
		t.Errorf("expected 1 page error, got %d", len(summary.PageErrors))
	}
	if summary.CommittedSeasons() != 1 {
		t.Errorf("expected 1 committed season, got %d", summary.CommittedSeasons())
	}
}

func TestIngesterBoxScoreFetchFailureKeepsSeason(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/seas/2023.html", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(seasonPage))
	})
	// No stats handler: the box-score fetch 404s.
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := NewMemoryStore()
	ing := newTestIngester(srv, store)

	summary, err := ing.Run(context.Background(), 2023, 2023)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	season := summary.Seasons[0]
	if !season.Committed {
		t.Fatalf("season should commit when only a box score fails: %s", season.Failure)
	}
	if season.PlayerStatRows != 0 {
		t.Errorf("expected 0 stat rows, got %d", season.PlayerStatRows)
	}
	if len(summary.PageErrors) != 1 {
		t.Errorf("expected 1 page error, got %d", len(summary.PageErrors))
	}
	if len(store.Games()) != 2 {
		t.Errorf("games should still be stored, got %d", len(store.Games()))
	}
}

func TestIngesterSkipStats(t *testing.T) {
	srv := newTestServer(t)
	store := NewMemoryStore()
	client := scrape.NewClient("test-agent", 0, nil)
	ing := NewIngester(client, store, Config{BaseURL: srv.URL, SkipStats: true, DryRun: true})

	summary, err := ing.Run(context.Background(), 2023, 2023)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Seasons[0].PlayerStatRows != 0 {
		t.Errorf("expected no stat rows with SkipStats, got %d", summary.Seasons[0].PlayerStatRows)
	}
	if len(store.Stats()) != 0 {
		t.Errorf("expected empty stats, got %d", len(store.Stats()))
	}
}

func TestIngesterInvalidRange(t *testing.T) {
	store := NewMemoryStore()
	client := scrape.NewClient("test-agent", 0, nil)
	ing := NewIngester(client, store, Config{BaseURL: "http://localhost"})

	if _, err := ing.Run(context.Background(), 2024, 2023); err == nil {
		t.Fatal("expected error for inverted season range")
	}
}

func TestIngesterCancelledContext(t *testing.T) {
	srv := newTestServer(t)
	store := NewMemoryStore()
	ing := newTestIngester(srv, store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := ing.Run(ctx, 2023, 2023)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if summary == nil || len(summary.Seasons) != 0 {
		t.Error("no season should have been processed")
	}
}
