package scrape

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return doc
}

const seasonFixture = `<html><body>
<table><tr><td>Round 3</td></tr></table>
<table>
<tr>
  <td><a href="../teams/essendon/idx.html">Essendon</a></td>
  <td>15.10.100</td>
  <td>Sat 15-Mar-2023 Venue: MCG Attendance: 85,000</td>
  <td><a href="../stats/games/2023/031420230315.html">Match stats</a></td>
</tr>
<tr>
  <td><a href="../teams/richmond/idx.html">Richmond</a></td>
  <td>12.9.81</td>
</tr>
<tr>
  <td><a href="../teams/geelong/idx.html">Geelong</a></td>
  <td>10.10.70</td>
  <td>Sun 16-Mar-2023 Venue: GMHBA Stadium</td>
</tr>
<tr>
  <td><a href="../teams/carlton/idx.html">Carlton</a></td>
  <td>9.9.63</td>
</tr>
</table>
<table><tr><td>Round 4</td></tr></table>
<table>
<tr>
  <td><a href="../teams/essendon/idx.html">Essendon</a></td>
  <td></td>
  <td>Sat 22-Mar-2023 Venue: MCG</td>
</tr>
<tr>
  <td><a href="../teams/geelong/idx.html">Geelong</a></td>
  <td></td>
</tr>
</table>
<table><tr><td><a href="../teams/essendon/idx.html">Essendon</a> ladder position</td></tr></table>
</body></html>`

func TestParseSeasonPage(t *testing.T) {
	doc := parseDoc(t, seasonFixture)
	games, skipped := ParseSeasonPage(doc, 2023, "https://afltables.com/afl/seas/2023.html")

	if skipped != 0 {
		t.Errorf("expected 0 skipped rows, got %d", skipped)
	}
	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}

	first := games[0]
	if first.HomeTeam != "Essendon" || first.AwayTeam != "Richmond" {
		t.Errorf("unexpected teams: %s v %s", first.HomeTeam, first.AwayTeam)
	}
	if first.Round != 3 {
		t.Errorf("expected round 3, got %d", first.Round)
	}
	if first.HomeScore == nil || first.HomeScore.Total != 100 || first.HomeScore.Goals != 15 || first.HomeScore.Behinds != 10 {
		t.Errorf("unexpected home score: %+v", first.HomeScore)
	}
	if first.AwayScore == nil || first.AwayScore.Total != 81 {
		t.Errorf("unexpected away score: %+v", first.AwayScore)
	}
	if !first.IsFinished() {
		t.Error("expected first game to be finished")
	}
	if first.Winner() != "home" {
		t.Errorf("expected home winner, got %q", first.Winner())
	}
	if first.Venue != "MCG" {
		t.Errorf("expected venue MCG, got %q", first.Venue)
	}
	wantDate := time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !first.Date.Equal(wantDate) {
		t.Errorf("expected date %v, got %v", wantDate, first.Date)
	}
	if first.Attendance != 85000 {
		t.Errorf("expected attendance 85000, got %d", first.Attendance)
	}
	if first.StatsURL != "https://afltables.com/afl/stats/games/2023/031420230315.html" {
		t.Errorf("stats URL not resolved: %q", first.StatsURL)
	}

	second := games[1]
	if second.HomeTeam != "Geelong" || second.AwayTeam != "Carlton" {
		t.Errorf("unexpected teams in second game: %s v %s", second.HomeTeam, second.AwayTeam)
	}
	if second.Round != 3 {
		t.Errorf("expected round 3 for second game, got %d", second.Round)
	}
	if second.StatsURL != "" {
		t.Errorf("expected no stats URL, got %q", second.StatsURL)
	}

	// Third pair has no scores yet: an upcoming fixture, captured but
	// not finished.
	upcoming := games[2]
	if upcoming.HomeTeam != "Essendon" || upcoming.AwayTeam != "Geelong" {
		t.Errorf("unexpected teams in upcoming game: %s v %s", upcoming.HomeTeam, upcoming.AwayTeam)
	}
	if upcoming.Round != 4 {
		t.Errorf("expected round 4, got %d", upcoming.Round)
	}
	if upcoming.IsFinished() {
		t.Error("upcoming game should not be finished")
	}
	if upcoming.Winner() != "" {
		t.Errorf("upcoming game should have no winner, got %q", upcoming.Winner())
	}
}

func TestParseSeasonPageNormalizesRounds(t *testing.T) {
	fixture := `<html><body>
<table><tr><td>Round 1</td></tr></table>
<table>
<tr><td><a href="../teams/sydney/idx.html">Sydney</a></td><td>11.7.73</td></tr>
<tr><td><a href="../teams/melbourne/idx.html">Melbourne</a></td><td>10.9.69</td></tr>
</table>
</body></html>`

	doc := parseDoc(t, fixture)
	games, _ := ParseSeasonPage(doc, 2024, "https://afltables.com/afl/seas/2024.html")

	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	if games[0].Round != 0 {
		t.Errorf("expected normalized round 0 for 2024 opening round, got %d", games[0].Round)
	}
}

func TestParseSeasonPageSkipsUnpairedRows(t *testing.T) {
	fixture := `<html><body>
<table>
<tr><td><a href="../teams/hawthorn/idx.html">Hawthorn</a></td><td>8.8.56</td></tr>
<tr><td>Bye</td></tr>
<tr><td><a href="../teams/sydney/idx.html">Sydney</a></td><td>9.9.63</td></tr>
</table>
</body></html>`

	doc := parseDoc(t, fixture)
	games, skipped := ParseSeasonPage(doc, 2023, "https://afltables.com/afl/seas/2023.html")

	if len(games) != 0 {
		t.Fatalf("expected no games from unpaired rows, got %d", len(games))
	}
	if skipped != 2 {
		t.Errorf("expected 2 skipped rows, got %d", skipped)
	}
}

func TestParseSeasonPageIgnoresSmallTables(t *testing.T) {
	fixture := `<html><body>
<table><tr><td><a href="../teams/essendon/idx.html">Essendon</a> sits first on the ladder</td></tr></table>
</body></html>`

	doc := parseDoc(t, fixture)
	games, skipped := ParseSeasonPage(doc, 2023, "https://afltables.com/afl/seas/2023.html")

	if len(games) != 0 || skipped != 0 {
		t.Errorf("expected nothing from a single-link table, got %d games %d skipped", len(games), skipped)
	}
}

func TestSeasonPageURL(t *testing.T) {
	got := SeasonPageURL("https://afltables.com/afl/", 1997)
	want := "https://afltables.com/afl/seas/1997.html"
	if got != want {
		t.Errorf("SeasonPageURL = %q, expected %q", got, want)
	}
}
