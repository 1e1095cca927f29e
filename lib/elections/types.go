package elections

import (
	"fmt"
	"math"
	"time"
)

// Election is a single upcoming contest scraped from a source page. The
// zero value is not valid, records are produced by the ballotpedia scraper
// or constructed explicitly (fixtures, imports).
type Election struct {
	Location      string   `json:"location"`
	State         string   `json:"state"`
	Office        string   `json:"office"`
	District      string   `json:"district"`
	ElectionDate  string   `json:"election_date"`
	RPlus         *float64 `json:"r_plus"`
	IsUncontested bool     `json:"is_uncontested"`
	Incumbent     *string  `json:"incumbent"`
	SourceURL     string   `json:"source_url"`
	LastUpdated   string   `json:"last_updated"`
}

// recordKey is the identity of a contest. A page scraped twice emits the
// same key for the same physical race.
type recordKey struct {
	location string
	date     string
}

func (e Election) key() recordKey {
	return recordKey{location: e.Location, date: e.ElectionDate}
}

func (e Election) Validate() error {
	if len(e.State) != 2 {
		return fmt.Errorf("state must be a 2-letter abbreviation, got %q", e.State)
	}
	for _, c := range e.State {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("state must be uppercase, got %q", e.State)
		}
	}
	if e.RPlus != nil && (math.IsNaN(*e.RPlus) || math.IsInf(*e.RPlus, 0)) {
		return fmt.Errorf("r_plus must be finite, got %v", *e.RPlus)
	}
	return nil
}

// Timestamp is the wire format of the last_updated field.
func Timestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
