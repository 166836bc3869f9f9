package scrape

// Dedup collapses provisional games sharing a natural key down to one
// record each. Season pages carry overlapping tables (summary and
// detail) that describe the same game; the first extraction wins since
// tables appear in page order and the detailed table comes first.
// Records missing any key component are dropped entirely; a partial
// key can never be persisted.
func Dedup(games []Game) []Game {
	seen := make(map[Key]bool, len(games))
	out := make([]Game, 0, len(games))

	for _, g := range games {
		if !g.HasKey() {
			continue
		}
		key := g.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, g)
	}

	return out
}
