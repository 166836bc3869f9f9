package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/digitalimprov/footybets-ai/internal/store"
	"github.com/digitalimprov/footybets-ai/internal/store/repository"
)

// ResultsService answers read queries over ingested games: recent
// results, upcoming fixtures and season ladders.
type ResultsService struct {
	gameRepo *repository.GameRepository
	teamRepo *repository.TeamRepository
}

// NewResultsService creates a results service over a connected database.
func NewResultsService(db *store.Database) *ResultsService {
	return &ResultsService{
		gameRepo: repository.NewGameRepository(db.DB()),
		teamRepo: repository.NewTeamRepository(db.DB()),
	}
}

// GameSummary pairs a game row with resolved team names.
type GameSummary struct {
	Game     *store.Game
	HomeTeam string
	AwayTeam string
}

// RecentResults returns finished games played in the last `days` days.
func (s *ResultsService) RecentResults(ctx context.Context, days int) ([]GameSummary, error) {
	now := time.Now()
	games, err := s.gameRepo.GetByDateWindow(ctx, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, fmt.Errorf("fetching recent games: %w", err)
	}

	finished := games[:0]
	for _, g := range games {
		if g.IsFinished {
			finished = append(finished, g)
		}
	}
	return s.withTeamNames(ctx, finished)
}

// UpcomingFixtures returns unfinished games dated within the next
// `days` days.
func (s *ResultsService) UpcomingFixtures(ctx context.Context, days int) ([]GameSummary, error) {
	now := time.Now()
	games, err := s.gameRepo.GetByDateWindow(ctx, now, now.AddDate(0, 0, days))
	if err != nil {
		return nil, fmt.Errorf("fetching upcoming games: %w", err)
	}

	upcoming := games[:0]
	for _, g := range games {
		if !g.IsFinished {
			upcoming = append(upcoming, g)
		}
	}
	return s.withTeamNames(ctx, upcoming)
}

// LadderEntry is one team's standing in a season ladder.
type LadderEntry struct {
	Team       string
	Played     int
	Wins       int
	Losses     int
	Draws      int
	PointsFor  int
	PointsAgst int
	Percentage float64
	Points     int
}

// Ladder computes the season ladder from stored finished games.
// Standard premiership points: 4 for a win, 2 for a draw.
func (s *ResultsService) Ladder(ctx context.Context, season int) ([]LadderEntry, error) {
	games, err := s.gameRepo.GetBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("fetching season %d: %w", season, err)
	}

	names, err := s.teamNames(ctx)
	if err != nil {
		return nil, err
	}

	return computeLadder(games, names), nil
}

// computeLadder folds finished games into ladder entries, ordered by
// premiership points then percentage.
func computeLadder(games []*store.Game, teamNames map[int]string) []LadderEntry {
	byTeam := make(map[int]*LadderEntry)
	entry := func(teamID int) *LadderEntry {
		e, ok := byTeam[teamID]
		if !ok {
			e = &LadderEntry{Team: teamNames[teamID]}
			byTeam[teamID] = e
		}
		return e
	}

	for _, g := range games {
		if !g.IsFinished || !g.HomeScore.Valid || !g.AwayScore.Valid {
			continue
		}
		home, away := entry(g.HomeTeamID), entry(g.AwayTeamID)
		hs, as := int(g.HomeScore.Int32), int(g.AwayScore.Int32)

		home.Played++
		away.Played++
		home.PointsFor += hs
		home.PointsAgst += as
		away.PointsFor += as
		away.PointsAgst += hs

		switch {
		case hs > as:
			home.Wins++
			away.Losses++
		case as > hs:
			away.Wins++
			home.Losses++
		default:
			home.Draws++
			away.Draws++
		}
	}

	out := make([]LadderEntry, 0, len(byTeam))
	for _, e := range byTeam {
		e.Points = e.Wins*4 + e.Draws*2
		if e.PointsAgst > 0 {
			e.Percentage = float64(e.PointsFor) / float64(e.PointsAgst) * 100
		}
		out = append(out, *e)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].Percentage != out[j].Percentage {
			return out[i].Percentage > out[j].Percentage
		}
		return out[i].Team < out[j].Team
	})
	return out
}

func (s *ResultsService) withTeamNames(ctx context.Context, games []*store.Game) ([]GameSummary, error) {
	names, err := s.teamNames(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]GameSummary, 0, len(games))
	for _, g := range games {
		out = append(out, GameSummary{
			Game:     g,
			HomeTeam: names[g.HomeTeamID],
			AwayTeam: names[g.AwayTeamID],
		})
	}
	return out, nil
}

func (s *ResultsService) teamNames(ctx context.Context) (map[int]string, error) {
	teams, err := s.teamRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}
	names := make(map[int]string, len(teams))
	for _, t := range teams {
		names[t.TeamID] = t.Name
	}
	return names, nil
}
