package ingest

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/digitalimprov/footybets-ai/internal/scrape"
)

// Config controls one ingestion run.
type Config struct {
	// BaseURL is the site root, e.g. "https://afltables.com/afl".
	BaseURL string
	// SkipStats disables the per-game box score pass.
	SkipStats bool
	// DryRun marks the summary; the store decides what actually persists.
	DryRun bool
	// Verbose enables per-row skip logging.
	Verbose bool
}

// Ingester walks season pages in order, parses them, and writes each
// season inside its own transaction. A failed page or season never
// stops the run; it is recorded and the next one proceeds.
type Ingester struct {
	client *scrape.Client
	store  Store
	cfg    Config
}

// NewIngester wires a fetch client and a storage backend.
func NewIngester(client *scrape.Client, store Store, cfg Config) *Ingester {
	return &Ingester{client: client, store: store, cfg: cfg}
}

// Run ingests seasons startSeason through endSeason inclusive,
// sequentially. Context cancellation stops before the next season;
// already committed seasons stay committed.
func (in *Ingester) Run(ctx context.Context, startSeason, endSeason int) (*Summary, error) {
	if startSeason > endSeason {
		return nil, fmt.Errorf("invalid season range %d-%d", startSeason, endSeason)
	}

	summary := &Summary{
		RunID:     uuid.New(),
		DryRun:    in.cfg.DryRun,
		StartedAt: time.Now(),
	}
	log.Printf("[ingest] run %s: seasons %d-%d", summary.RunID, startSeason, endSeason)

	for season := startSeason; season <= endSeason; season++ {
		if err := ctx.Err(); err != nil {
			summary.FinishedAt = time.Now()
			return summary, fmt.Errorf("run interrupted at season %d: %w", season, err)
		}
		result := in.processSeason(ctx, season, summary)
		summary.Seasons = append(summary.Seasons, result)
	}

	summary.FinishedAt = time.Now()
	return summary, nil
}

func (in *Ingester) processSeason(ctx context.Context, season int, summary *Summary) SeasonResult {
	result := SeasonResult{Season: season}

	pageURL := scrape.SeasonPageURL(in.cfg.BaseURL, season)
	doc, err := in.client.GetDocument(ctx, pageURL)
	if err != nil {
		summary.PageErrors = append(summary.PageErrors, PageError{URL: pageURL, Message: err.Error()})
		result.Failure = fmt.Sprintf("season page fetch failed: %v", err)
		log.Printf("[ingest] season %d: %s", season, result.Failure)
		return result
	}

	games, skipped := scrape.ParseSeasonPage(doc, season, pageURL)
	games = scrape.Dedup(games)
	result.GamesFound = len(games)
	result.RowsSkipped = skipped
	if in.cfg.Verbose && skipped > 0 {
		log.Printf("[ingest] season %d: skipped %d unparseable rows", season, skipped)
	}
	if len(games) == 0 {
		log.Printf("[ingest] season %d: no games found", season)
		return result
	}

	tx, err := in.store.Begin(ctx)
	if err != nil {
		result.Failure = fmt.Sprintf("begin transaction: %v", err)
		log.Printf("[ingest] season %d: %s", season, result.Failure)
		return result
	}

	// Team and player IDs are cached per run of this season only.
	teamIDs := make(map[string]int)
	playerIDs := make(map[string]int)

	if err := in.persistSeason(ctx, tx, season, games, teamIDs, playerIDs, summary, &result); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("[ingest] season %d: rollback failed: %v", season, rbErr)
		}
		result.Failure = err.Error()
		result.GamesFinished = 0
		result.PlayerStatRows = 0
		log.Printf("[ingest] season %d: rolled back: %s", season, result.Failure)
		return result
	}

	if err := tx.Commit(); err != nil {
		result.Failure = fmt.Sprintf("commit: %v", err)
		result.GamesFinished = 0
		result.PlayerStatRows = 0
		log.Printf("[ingest] season %d: %s", season, result.Failure)
		return result
	}

	result.Committed = true
	log.Printf("[ingest] ✓ season %d: committed %d games", season, result.GamesFound)
	return result
}

// persistSeason writes all games and stats for one season through tx.
// Any error returned here rolls the season back.
func (in *Ingester) persistSeason(ctx context.Context, tx Tx, season int, games []scrape.Game, teamIDs, playerIDs map[string]int, summary *Summary, result *SeasonResult) error {
	for _, game := range games {
		homeID, err := in.resolveTeam(ctx, tx, teamIDs, game.HomeTeam)
		if err != nil {
			return fmt.Errorf("resolve team %q: %w", game.HomeTeam, err)
		}
		awayID, err := in.resolveTeam(ctx, tx, teamIDs, game.AwayTeam)
		if err != nil {
			return fmt.Errorf("resolve team %q: %w", game.AwayTeam, err)
		}

		gameID, err := tx.UpsertGame(ctx, game, homeID, awayID)
		if err != nil {
			return fmt.Errorf("upsert game %d R%d %s v %s: %w", game.Season, game.Round, game.HomeTeam, game.AwayTeam, err)
		}
		if game.IsFinished() {
			result.GamesFinished++
		}

		if in.cfg.SkipStats || game.StatsURL == "" || !game.IsFinished() {
			continue
		}
		if err := in.persistBoxScore(ctx, tx, game, gameID, teamIDs, playerIDs, summary, result); err != nil {
			return err
		}
	}
	return nil
}

// persistBoxScore fetches and writes one game's player lines. A fetch
// failure is a page error, not a season failure; persistence errors
// propagate so the season rolls back.
func (in *Ingester) persistBoxScore(ctx context.Context, tx Tx, game scrape.Game, gameID int, teamIDs, playerIDs map[string]int, summary *Summary, result *SeasonResult) error {
	doc, err := in.client.GetDocument(ctx, game.StatsURL)
	if err != nil {
		summary.PageErrors = append(summary.PageErrors, PageError{URL: game.StatsURL, Message: err.Error()})
		if in.cfg.Verbose {
			log.Printf("[ingest] box score fetch failed for %s v %s: %v", game.HomeTeam, game.AwayTeam, err)
		}
		return nil
	}

	boxes := scrape.ParseBoxScore(doc)
	for _, box := range boxes {
		teamID, err := in.resolveTeam(ctx, tx, teamIDs, box.Team)
		if err != nil {
			return fmt.Errorf("resolve team %q: %w", box.Team, err)
		}
		for _, line := range box.Players {
			playerID, ok := playerIDs[line.Name]
			if !ok {
				playerID, err = tx.ResolvePlayer(ctx, line.Name, teamID)
				if err != nil {
					return fmt.Errorf("resolve player %q: %w", line.Name, err)
				}
				playerIDs[line.Name] = playerID
			}
			if err := tx.UpsertPlayerStats(ctx, gameID, playerID, teamID, line.Stats); err != nil {
				return fmt.Errorf("upsert stats for %q: %w", line.Name, err)
			}
			result.PlayerStatRows++
		}
	}
	return nil
}

func (in *Ingester) resolveTeam(ctx context.Context, tx Tx, teamIDs map[string]int, name string) (int, error) {
	if id, ok := teamIDs[name]; ok {
		return id, nil
	}
	id, err := tx.ResolveTeam(ctx, name)
	if err != nil {
		return 0, err
	}
	teamIDs[name] = id
	return id, nil
}
