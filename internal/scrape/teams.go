package scrape

import "strings"

// teamMeta is the metadata backfilled onto a Team row the first time a
// club name is sighted. Abbreviation, city and state never overwrite
// existing values.
type teamMeta struct {
	Abbreviation string
	City         string
	State        string
}

var teamMetaByName = map[string]teamMeta{
	"Adelaide":                {"ADE", "Adelaide", "SA"},
	"Brisbane Lions":          {"BRI", "Brisbane", "QLD"},
	"Carlton":                 {"CAR", "Melbourne", "VIC"},
	"Collingwood":             {"COL", "Melbourne", "VIC"},
	"Essendon":                {"ESS", "Melbourne", "VIC"},
	"Fremantle":               {"FRE", "Perth", "WA"},
	"Geelong":                 {"GEE", "Geelong", "VIC"},
	"Gold Coast":              {"GCS", "Gold Coast", "QLD"},
	"Greater Western Sydney":  {"GWS", "Sydney", "NSW"},
	"Hawthorn":                {"HAW", "Melbourne", "VIC"},
	"Melbourne":               {"MEL", "Melbourne", "VIC"},
	"North Melbourne":         {"NTH", "Melbourne", "VIC"},
	"Port Adelaide":           {"POR", "Adelaide", "SA"},
	"Richmond":                {"RIC", "Melbourne", "VIC"},
	"St Kilda":                {"STK", "Melbourne", "VIC"},
	"Sydney":                  {"SYD", "Sydney", "NSW"},
	"West Coast":              {"WCE", "Perth", "WA"},
	"Western Bulldogs":        {"WBD", "Melbourne", "VIC"},
}

// TeamAbbreviation returns the club abbreviation for a display name,
// falling back to the first three letters uppercased for names outside
// the known-club table (historical clubs, rebrandings).
func TeamAbbreviation(name string) string {
	if meta, ok := teamMetaByName[name]; ok {
		return meta.Abbreviation
	}
	trimmed := strings.TrimSpace(name)
	if len(trimmed) >= 3 {
		return strings.ToUpper(trimmed[:3])
	}
	return strings.ToUpper(trimmed)
}

// TeamCity returns the home city for a known club name, "" otherwise.
func TeamCity(name string) string {
	if meta, ok := teamMetaByName[name]; ok {
		return meta.City
	}
	return ""
}

// TeamState returns the home state for a known club name, "" otherwise.
func TeamState(name string) string {
	if meta, ok := teamMetaByName[name]; ok {
		return meta.State
	}
	return ""
}
