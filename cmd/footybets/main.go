package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/digitalimprov/footybets-ai/internal/cache"
	"github.com/digitalimprov/footybets-ai/internal/config"
	"github.com/digitalimprov/footybets-ai/internal/ingest"
	"github.com/digitalimprov/footybets-ai/internal/publisher"
	"github.com/digitalimprov/footybets-ai/internal/scrape"
	"github.com/digitalimprov/footybets-ai/internal/store"
	"github.com/digitalimprov/footybets-ai/internal/store/repository"
)

var (
	flagSeason    int
	flagStart     int
	flagEnd       int
	flagDryRun    bool
	flagSkipStats bool
	flagDelayMs   int
	flagDSN       string
	flagVerbose   bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "footybets",
		Short: "AFL historical data ingestion",
		Long: `Scrapes AFL season and box-score pages from afltables.com and loads
games, teams, players and player statistics into Postgres.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newReportCmd())
	return cmd
}

func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape one or more seasons",
		RunE:  runScrape,
	}

	cmd.Flags().IntVar(&flagSeason, "season", 0, "Single season to scrape (e.g. 2024)")
	cmd.Flags().IntVar(&flagStart, "start", 0, "First season of a range")
	cmd.Flags().IntVar(&flagEnd, "end", 0, "Last season of a range")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Parse and report without writing to the database")
	cmd.Flags().BoolVar(&flagSkipStats, "skip-stats", false, "Skip per-game player box scores")
	cmd.Flags().IntVar(&flagDelayMs, "delay", 0, "Delay between page fetches in milliseconds (overrides SCRAPE_DELAY)")
	cmd.Flags().StringVar(&flagDSN, "dsn", "", "Postgres DSN (overrides DATABASE_URL)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable per-row logging")

	return cmd
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if flagDSN != "" {
		cfg.DatabaseURL = flagDSN
	}
	if flagDelayMs > 0 {
		cfg.ScrapeDelay = time.Duration(flagDelayMs) * time.Millisecond
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	start, end := flagStart, flagEnd
	if flagSeason != 0 {
		start, end = flagSeason, flagSeason
	}
	if start == 0 || end == 0 {
		return fmt.Errorf("either --season or both --start and --end are required")
	}
	if err := config.ValidateSeasons(start, end); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pageCache scrape.PageCache
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer rc.Close()
		log.Println("✓ Connected to Redis")
		pageCache = rc
	}

	client := scrape.NewClient(cfg.UserAgent, cfg.ScrapeDelay, pageCache)

	var backend ingest.Store
	if flagDryRun {
		log.Println("Dry run: nothing will be written")
		backend = ingest.NewMemoryStore()
	} else {
		db, err := store.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer db.Close()
		log.Println("✓ Connected to database")

		if err := db.RunMigrations(); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		backend = repository.NewAdapter(db)
	}

	ingester := ingest.NewIngester(client, backend, ingest.Config{
		BaseURL:   cfg.BaseURL,
		SkipStats: flagSkipStats,
		DryRun:    flagDryRun,
		Verbose:   cfg.Verbose,
	})

	summary, err := ingester.Run(ctx, start, end)
	if summary != nil {
		summary.Log()
		publishSummary(cfg, summary)
	}
	return err
}

// publishSummary announces the run on Redis streams when Redis is
// configured. Publishing is best effort; a failure never fails the run.
// It runs on its own context so an interrupted run still reports its
// committed seasons.
func publishSummary(cfg config.Config, summary *ingest.Summary) {
	if cfg.RedisURL == "" || summary.DryRun {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pub, err := publisher.NewRedisPublisher(cfg.RedisURL)
	if err != nil {
		log.Printf("publisher unavailable: %v", err)
		return
	}
	defer pub.Close()

	for _, sr := range summary.Seasons {
		if err := pub.PublishSeasonResult(ctx, summary.RunID.String(), sr); err != nil {
			log.Printf("publishing season %d: %v", sr.Season, err)
		}
	}
	if err := pub.PublishRunSummary(ctx, summary); err != nil {
		log.Printf("publishing run summary: %v", err)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
