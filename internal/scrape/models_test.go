package scrape

import (
	"testing"
	"time"
)

func TestGameWinner(t *testing.T) {
	tests := []struct {
		name string
		home *Score
		away *Score
		want string
	}{
		{"home win", &Score{Total: 100}, &Score{Total: 81}, "home"},
		{"away win", &Score{Total: 70}, &Score{Total: 95}, "away"},
		{"draw", &Score{Total: 88}, &Score{Total: 88}, "draw"},
		{"unfinished", &Score{Total: 88}, nil, ""},
		{"not played", nil, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Game{HomeScore: tt.home, AwayScore: tt.away}
			if got := g.Winner(); got != tt.want {
				t.Errorf("Winner() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestFilterWindow(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
	}
	games := []Game{
		{HomeTeam: "A", AwayTeam: "B", Date: day(1)},
		{HomeTeam: "C", AwayTeam: "D", Date: day(10)},
		{HomeTeam: "E", AwayTeam: "F", Date: day(20)},
		{HomeTeam: "G", AwayTeam: "H"}, // no date
	}

	out := FilterWindow(games, day(5), day(20))
	if len(out) != 1 {
		t.Fatalf("expected 1 game in window, got %d", len(out))
	}
	if out[0].HomeTeam != "C" {
		t.Errorf("unexpected game in window: %s", out[0].HomeTeam)
	}
}

func TestTeamMetadata(t *testing.T) {
	if got := TeamAbbreviation("Collingwood"); got != "COL" {
		t.Errorf("TeamAbbreviation(Collingwood) = %q", got)
	}
	if got := TeamState("West Coast"); got != "WA" {
		t.Errorf("TeamState(West Coast) = %q", got)
	}
	if got := TeamCity("Geelong"); got != "Geelong" {
		t.Errorf("TeamCity(Geelong) = %q", got)
	}
	// Unknown club names fall back to a derived abbreviation.
	if got := TeamAbbreviation("University"); got != "UNI" {
		t.Errorf("TeamAbbreviation(University) = %q", got)
	}
	if got := TeamCity("University"); got != "" {
		t.Errorf("TeamCity(University) = %q, expected empty", got)
	}
}
