package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/digitalimprov/footybets-ai/internal/config"
	"github.com/digitalimprov/footybets-ai/internal/service"
	"github.com/digitalimprov/footybets-ai/internal/store"
)

var (
	flagLadderSeason int
	flagRecentDays   int
	flagUpcomingDays int
	flagPlayer       string
	flagPlayerGames  int
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Query ingested data",
		RunE:  runReport,
	}

	cmd.Flags().IntVar(&flagLadderSeason, "ladder", 0, "Print the ladder for a season")
	cmd.Flags().IntVar(&flagRecentDays, "recent", 0, "Print results from the last N days")
	cmd.Flags().IntVar(&flagUpcomingDays, "upcoming", 0, "Print fixtures for the next N days")
	cmd.Flags().StringVar(&flagPlayer, "player", "", "Print recent form for a player")
	cmd.Flags().IntVar(&flagPlayerGames, "games", 5, "Number of games for --player")
	cmd.Flags().StringVar(&flagDSN, "dsn", "", "Postgres DSN (overrides DATABASE_URL)")

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if flagDSN != "" {
		cfg.DatabaseURL = flagDSN
	}

	db, err := store.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()

	switch {
	case flagLadderSeason != 0:
		return printLadder(ctx, db, flagLadderSeason)
	case flagRecentDays != 0:
		return printRecent(ctx, db, flagRecentDays)
	case flagUpcomingDays != 0:
		return printUpcoming(ctx, db, flagUpcomingDays)
	case flagPlayer != "":
		return printPlayerForm(ctx, db, flagPlayer, flagPlayerGames)
	default:
		return fmt.Errorf("one of --ladder, --recent, --upcoming or --player is required")
	}
}

func printLadder(ctx context.Context, db *store.Database, season int) error {
	svc := service.NewResultsService(db)
	ladder, err := svc.Ladder(ctx, season)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Team\tP\tW\tL\tD\tPF\tPA\t%%\tPts\n")
	for _, e := range ladder {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%.1f\t%d\n",
			e.Team, e.Played, e.Wins, e.Losses, e.Draws, e.PointsFor, e.PointsAgst, e.Percentage, e.Points)
	}
	return w.Flush()
}

func printRecent(ctx context.Context, db *store.Database, days int) error {
	svc := service.NewResultsService(db)
	results, err := svc.RecentResults(ctx, days)
	if err != nil {
		return err
	}
	for _, r := range results {
		printGame(r)
	}
	return nil
}

func printUpcoming(ctx context.Context, db *store.Database, days int) error {
	svc := service.NewResultsService(db)
	fixtures, err := svc.UpcomingFixtures(ctx, days)
	if err != nil {
		return err
	}
	for _, f := range fixtures {
		printGame(f)
	}
	return nil
}

func printGame(gs service.GameSummary) {
	g := gs.Game
	when := ""
	if g.GameDate.Valid {
		when = g.GameDate.Time.Format("Mon 2 Jan 2006")
	}
	if g.IsFinished && g.HomeScore.Valid && g.AwayScore.Valid {
		fmt.Printf("%s  R%d  %s %d d. %s %d\n", when, g.RoundNumber, gs.HomeTeam, g.HomeScore.Int32, gs.AwayTeam, g.AwayScore.Int32)
		return
	}
	fmt.Printf("%s  R%d  %s v %s\n", when, g.RoundNumber, gs.HomeTeam, gs.AwayTeam)
}

func printPlayerForm(ctx context.Context, db *store.Database, name string, games int) error {
	svc := service.NewPlayerStatsService(db)
	form, err := svc.RecentForm(ctx, name, games)
	if err != nil {
		return err
	}

	fmt.Printf("%s, last %d games:\n", form.Player.Name, form.GamesAnalyzed)
	fmt.Printf("  disposals %.1f (kicks %.1f, handballs %.1f)\n", form.AvgDisposals, form.AvgKicks, form.AvgHandballs)
	fmt.Printf("  marks %.1f, tackles %.1f\n", form.AvgMarks, form.AvgTackles)
	fmt.Printf("  goals %.1f per game (%d total)\n", form.AvgGoals, form.TotalGoals)
	return nil
}
