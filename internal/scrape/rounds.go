package scrape

// roundZeroSeasons lists seasons that opened with a preliminary
// "Opening Round". The source numbers it Round 1 and shifts every later
// round up by one, so raw numbers from those pages sit one above the
// official fixture.
var roundZeroSeasons = map[int]bool{
	2024: true,
	2025: true,
}

// HasRoundZero reports whether a season carries the opening-round offset.
func HasRoundZero(season int) bool {
	return roundZeroSeasons[season]
}

// NormalizeRound corrects a raw round number scraped for a season.
// Every round number in the pipeline must pass through here before it
// touches a natural key, including rounds re-derived later from a
// stats-link path.
func NormalizeRound(season, raw int) int {
	if raw == RoundUnknown {
		return RoundUnknown
	}
	if roundZeroSeasons[season] && raw > 0 {
		return raw - 1
	}
	return raw
}
