package ingest

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// PageError records one page that could not be fetched or parsed. The
// run keeps going; this is how the failure surfaces afterwards.
type PageError struct {
	URL     string
	Message string
}

// SeasonResult aggregates what happened to one season.
type SeasonResult struct {
	Season         int
	GamesFound     int
	GamesFinished  int
	PlayerStatRows int
	RowsSkipped    int
	Committed      bool
	Failure        string
}

// Summary is the report for an entire ingestion run.
type Summary struct {
	RunID      uuid.UUID
	DryRun     bool
	StartedAt  time.Time
	FinishedAt time.Time
	Seasons    []SeasonResult
	PageErrors []PageError
}

// TotalGames sums games found across all seasons.
func (s *Summary) TotalGames() int {
	total := 0
	for _, sr := range s.Seasons {
		total += sr.GamesFound
	}
	return total
}

// TotalStatRows sums player stat rows across all seasons.
func (s *Summary) TotalStatRows() int {
	total := 0
	for _, sr := range s.Seasons {
		total += sr.PlayerStatRows
	}
	return total
}

// CommittedSeasons counts seasons whose transaction committed.
func (s *Summary) CommittedSeasons() int {
	count := 0
	for _, sr := range s.Seasons {
		if sr.Committed {
			count++
		}
	}
	return count
}

// Log writes the summary to the standard logger, one line per season.
func (s *Summary) Log() {
	mode := "live"
	if s.DryRun {
		mode = "dry-run"
	}
	log.Printf("[ingest] run %s (%s) finished in %s", s.RunID, mode, s.FinishedAt.Sub(s.StartedAt).Round(time.Millisecond))
	for _, sr := range s.Seasons {
		if sr.Failure != "" {
			log.Printf("[ingest] season %d: FAILED (%s)", sr.Season, sr.Failure)
			continue
		}
		log.Printf("[ingest] ✓ season %d: %d games (%d finished), %d stat rows, %d rows skipped",
			sr.Season, sr.GamesFound, sr.GamesFinished, sr.PlayerStatRows, sr.RowsSkipped)
	}
	for _, pe := range s.PageErrors {
		log.Printf("[ingest] page error: %s: %s", pe.URL, pe.Message)
	}
	log.Printf("[ingest] total: %d games, %d stat rows, %d/%d seasons committed",
		s.TotalGames(), s.TotalStatRows(), s.CommittedSeasons(), len(s.Seasons))
}
