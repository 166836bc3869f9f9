package service

import (
	"database/sql"
	"testing"

	"github.com/digitalimprov/footybets-ai/internal/store"
)

func finishedGame(season, homeID, awayID, homeScore, awayScore int) *store.Game {
	return &store.Game{
		Season:     season,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		HomeScore:  sql.NullInt32{Int32: int32(homeScore), Valid: true},
		AwayScore:  sql.NullInt32{Int32: int32(awayScore), Valid: true},
		IsFinished: true,
	}
}

func TestComputeLadder(t *testing.T) {
	names := map[int]string{1: "Essendon", 2: "Richmond", 3: "Geelong"}
	games := []*store.Game{
		finishedGame(2023, 1, 2, 100, 81), // Essendon beats Richmond
		finishedGame(2023, 2, 3, 70, 95),  // Geelong beats Richmond
		finishedGame(2023, 3, 1, 88, 88),  // draw
		// Unfinished fixture must not count.
		{Season: 2023, HomeTeamID: 1, AwayTeamID: 3},
	}

	ladder := computeLadder(games, names)

	if len(ladder) != 3 {
		t.Fatalf("expected 3 ladder entries, got %d", len(ladder))
	}

	top := ladder[0]
	if top.Team != "Geelong" {
		t.Errorf("expected Geelong on top, got %s", top.Team)
	}
	if top.Wins != 1 || top.Draws != 1 || top.Losses != 0 {
		t.Errorf("unexpected Geelong record: %+v", top)
	}
	if top.Points != 6 {
		t.Errorf("expected 6 premiership points, got %d", top.Points)
	}

	var richmond LadderEntry
	for _, e := range ladder {
		if e.Team == "Richmond" {
			richmond = e
		}
	}
	if richmond.Played != 2 || richmond.Losses != 2 || richmond.Points != 0 {
		t.Errorf("unexpected Richmond record: %+v", richmond)
	}
	if richmond.PointsFor != 151 || richmond.PointsAgst != 195 {
		t.Errorf("unexpected Richmond points: %+v", richmond)
	}
}

func TestComputeLadderTieBreakByPercentage(t *testing.T) {
	names := map[int]string{1: "A", 2: "B", 3: "C", 4: "D"}
	games := []*store.Game{
		finishedGame(2023, 1, 3, 120, 60), // A wins big
		finishedGame(2023, 2, 4, 80, 75),  // B wins narrowly
	}

	ladder := computeLadder(games, names)
	if ladder[0].Team != "A" {
		t.Errorf("equal points should order by percentage; got %s first", ladder[0].Team)
	}
}
