package ballotpedia

import "strings"

// State names use underscores in place of spaces, matching how they
// appear in source page URLs.
var stateAbbrevs = map[string]string{
	"Alabama": "AL", "Alaska": "AK", "Arizona": "AZ", "Arkansas": "AR",
	"California": "CA", "Colorado": "CO", "Connecticut": "CT", "Delaware": "DE",
	"Florida": "FL", "Georgia": "GA", "Hawaii": "HI", "Idaho": "ID",
	"Illinois": "IL", "Indiana": "IN", "Iowa": "IA", "Kansas": "KS",
	"Kentucky": "KY", "Louisiana": "LA", "Maine": "ME", "Maryland": "MD",
	"Massachusetts": "MA", "Michigan": "MI", "Minnesota": "MN", "Mississippi": "MS",
	"Missouri": "MO", "Montana": "MT", "Nebraska": "NE", "Nevada": "NV",
	"New_Hampshire": "NH", "New_Jersey": "NJ", "New_Mexico": "NM", "New_York": "NY",
	"North_Carolina": "NC", "North_Dakota": "ND", "Ohio": "OH", "Oklahoma": "OK",
	"Oregon": "OR", "Pennsylvania": "PA", "Rhode_Island": "RI", "South_Carolina": "SC",
	"South_Dakota": "SD", "Tennessee": "TN", "Texas": "TX", "Utah": "UT",
	"Vermont": "VT", "Virginia": "VA", "Washington": "WA", "West_Virginia": "WV",
	"Wisconsin": "WI", "Wyoming": "WY",
}

// Abbreviation maps a full state name to its two-letter code. Unmapped
// names fall back to the first two ASCII letters uppercased, padded with
// X, so the result is always a valid 2-letter code.
func Abbreviation(stateName string) string {
	abbrev, ok := stateAbbrevs[stateName]
	if ok {
		return abbrev
	}
	letters := make([]rune, 0, 2)
	for _, c := range strings.ToUpper(stateName) {
		if c >= 'A' && c <= 'Z' {
			letters = append(letters, c)
			if len(letters) == 2 {
				break
			}
		}
	}
	for len(letters) < 2 {
		letters = append(letters, 'X')
	}
	return string(letters)
}

// StateNames returns every state name known to the abbreviation table.
func StateNames() []string {
	names := make([]string, 0, len(stateAbbrevs))
	for name := range stateAbbrevs {
		names = append(names, name)
	}
	return names
}

// PriorityStates is the curated subset scraped by default. The full
// 50-state set is an explicit opt-in.
var PriorityStates = []string{
	"California", "Texas", "Florida", "New_York", "Pennsylvania",
	"Illinois", "Ohio", "Georgia", "North_Carolina", "Michigan",
	"New_Jersey", "Virginia", "Washington", "Arizona", "Massachusetts",
	"Tennessee", "Indiana", "Missouri", "Maryland", "Wisconsin",
	"Colorado", "Minnesota", "South_Carolina", "Alabama", "Louisiana",
}

var AllStates = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
	"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
	"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana",
	"Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota",
	"Mississippi", "Missouri", "Montana", "Nebraska", "Nevada",
	"New_Hampshire", "New_Jersey", "New_Mexico", "New_York",
	"North_Carolina", "North_Dakota", "Ohio", "Oklahoma", "Oregon",
	"Pennsylvania", "Rhode_Island", "South_Carolina", "South_Dakota",
	"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington",
	"West_Virginia", "Wisconsin", "Wyoming",
}

// OfficeTypes is the office vocabulary tracked by the system. Only the
// state legislative pages are scraped today, the rest arrive through
// external insertion.
var OfficeTypes = []string{
	"State Senate",
	"State House",
	"County Commissioner",
	"Mayor",
	"City Council",
	"School Board",
}
