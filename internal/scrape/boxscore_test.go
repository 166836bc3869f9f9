package scrape

import "testing"

const boxScoreFixture = `<html><body>
<table>
<tr><th colspan="24">Essendon Match Statistics</th></tr>
<tr><th>#</th><th>Player</th><th>KI</th><th>MK</th><th>HB</th><th>DI</th><th>GL</th><th>BH</th><th>HO</th><th>TK</th><th>RB</th><th>IF</th><th>CL</th><th>CG</th><th>FF</th><th>FA</th><th>BR</th><th>CP</th><th>UP</th><th>CM</th><th>MI</th><th>1%</th><th>BO</th><th>GA</th></tr>
<tr>
  <td>5</td>
  <td><a href="../../players/Zach_Merrett.html">Zach Merrett</a></td>
  <td>21</td><td>4</td><td>13</td><td>34</td><td>1</td><td>0</td><td>0</td><td>6</td>
  <td>3</td><td>5</td><td>7</td><td>2</td><td>1</td><td>0</td><td>3</td><td>15</td>
  <td>19</td><td>0</td><td>1</td><td>2</td><td>4</td><td>2</td>
</tr>
<tr>
  <td>9</td>
  <td><a href="../../players/Jye_Caldwell.html">Jye Caldwell</a></td>
  <td>12</td><td>2</td><td>9</td><td>21</td><td></td><td></td>
</tr>
<tr><td></td><td>Totals</td><td>350</td></tr>
</table>
<table>
<tr><th colspan="24">Richmond Match Statistics</th></tr>
<tr>
  <td>3</td>
  <td><a href="../../players/Tim_Taranto.html">Tim Taranto</a></td>
  <td>18</td><td>5</td><td>10</td><td>28</td><td>0</td><td>1</td>
</tr>
</table>
<table>
<tr><th>Ladder</th></tr>
<tr><td>Essendon</td><td>12</td></tr>
</table>
</body></html>`

func TestParseBoxScore(t *testing.T) {
	doc := parseDoc(t, boxScoreFixture)
	boxes := ParseBoxScore(doc)

	if len(boxes) != 2 {
		t.Fatalf("expected 2 team tables, got %d", len(boxes))
	}

	home := boxes[0]
	if home.Team != "Essendon" {
		t.Errorf("expected team Essendon, got %q", home.Team)
	}
	if len(home.Players) != 2 {
		t.Fatalf("expected 2 player lines, got %d", len(home.Players))
	}

	merrett := home.Players[0]
	if merrett.Name != "Zach Merrett" {
		t.Errorf("unexpected player name %q", merrett.Name)
	}
	if merrett.JumperNumber != 5 {
		t.Errorf("expected jumper 5, got %d", merrett.JumperNumber)
	}
	if merrett.Stats.Kicks != 21 || merrett.Stats.Handballs != 13 || merrett.Stats.Disposals != 34 {
		t.Errorf("unexpected disposal stats: %+v", merrett.Stats)
	}
	if merrett.Stats.GoalAssists != 2 || merrett.Stats.Bounces != 4 {
		t.Errorf("unexpected tail stats: %+v", merrett.Stats)
	}

	// Short row: empty and missing cells read as zero.
	caldwell := home.Players[1]
	if caldwell.Stats.Kicks != 12 || caldwell.Stats.Disposals != 21 {
		t.Errorf("unexpected stats for short row: %+v", caldwell.Stats)
	}
	if caldwell.Stats.Goals != 0 || caldwell.Stats.GoalAssists != 0 {
		t.Errorf("missing cells should be zero: %+v", caldwell.Stats)
	}

	away := boxes[1]
	if away.Team != "Richmond" {
		t.Errorf("expected team Richmond, got %q", away.Team)
	}
	if len(away.Players) != 1 || away.Players[0].Name != "Tim Taranto" {
		t.Errorf("unexpected away players: %+v", away.Players)
	}
}

func TestParseBoxScoreNoStatsTables(t *testing.T) {
	doc := parseDoc(t, `<html><body><table><tr><td>Final scores only</td></tr></table></body></html>`)
	if boxes := ParseBoxScore(doc); len(boxes) != 0 {
		t.Errorf("expected no box scores on a page without marked tables, got %d", len(boxes))
	}
}
