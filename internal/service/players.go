package service

import (
	"context"
	"fmt"

	"github.com/digitalimprov/footybets-ai/internal/store"
	"github.com/digitalimprov/footybets-ai/internal/store/repository"
)

// PlayerStatsService answers read queries over ingested player
// statistics.
type PlayerStatsService struct {
	playerRepo *repository.PlayerRepository
	statsRepo  *repository.StatsRepository
}

// NewPlayerStatsService creates a player stats service over a connected
// database.
func NewPlayerStatsService(db *store.Database) *PlayerStatsService {
	return &PlayerStatsService{
		playerRepo: repository.NewPlayerRepository(db.DB()),
		statsRepo:  repository.NewStatsRepository(db.DB()),
	}
}

// PlayerForm summarizes a player's recent output.
type PlayerForm struct {
	Player        *store.Player
	GamesAnalyzed int
	AvgDisposals  float64
	AvgKicks      float64
	AvgHandballs  float64
	AvgMarks      float64
	AvgTackles    float64
	AvgGoals      float64
	TotalGoals    int
}

// RecentForm averages a player's last `games` stat lines, most recent
// first.
func (s *PlayerStatsService) RecentForm(ctx context.Context, name string, games int) (*PlayerForm, error) {
	player, err := s.playerRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("fetching player %q: %w", name, err)
	}

	lines, err := s.statsRepo.GetByPlayer(ctx, player.PlayerID, games)
	if err != nil {
		return nil, fmt.Errorf("fetching stats for %q: %w", name, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no stats recorded for player %q", name)
	}

	form := &PlayerForm{Player: player, GamesAnalyzed: len(lines)}
	for _, line := range lines {
		form.AvgDisposals += float64(line.Disposals)
		form.AvgKicks += float64(line.Kicks)
		form.AvgHandballs += float64(line.Handballs)
		form.AvgMarks += float64(line.Marks)
		form.AvgTackles += float64(line.Tackles)
		form.AvgGoals += float64(line.Goals)
		form.TotalGoals += line.Goals
	}

	n := float64(len(lines))
	form.AvgDisposals /= n
	form.AvgKicks /= n
	form.AvgHandballs /= n
	form.AvgMarks /= n
	form.AvgTackles /= n
	form.AvgGoals /= n

	return form, nil
}
