package elections

import (
	"slices"
	"strings"
)

// Filters are ANDed together. Nil bounds mean "no bound", but a record
// without an r_plus value is excluded whenever either bound is set:
// absent partisan data is unknown, not unbounded.
type Filters struct {
	State           string
	OfficeType      string
	UncontestedOnly bool
	MinRPlus        *float64
	MaxRPlus        *float64
}

func (f Filters) match(e Election) bool {
	if f.State != "" && e.State != f.State {
		return false
	}
	if f.OfficeType != "" && e.Office != f.OfficeType {
		return false
	}
	if f.UncontestedOnly && !e.IsUncontested {
		return false
	}
	if f.MinRPlus != nil || f.MaxRPlus != nil {
		if e.RPlus == nil {
			return false
		}
		if f.MinRPlus != nil && *e.RPlus < *f.MinRPlus {
			return false
		}
		if f.MaxRPlus != nil && *e.RPlus > *f.MaxRPlus {
			return false
		}
	}
	return true
}

// Query filters records without mutating the input, preserving order.
func Query(records []Election, f Filters) []Election {
	out := []Election{}
	for _, rec := range records {
		if f.match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

type Statistics struct {
	TotalElections   int      `json:"total_elections"`
	UncontestedCount int      `json:"uncontested_count"`
	StatesCovered    int      `json:"states_covered"`
	OfficesTracked   int      `json:"offices_tracked"`
	AvgRPlus         *float64 `json:"avg_r_plus"`
}

// ComputeStatistics aggregates over the full record set. An empty set
// yields zero counts and a null avg_r_plus, not an error.
func ComputeStatistics(records []Election) Statistics {
	stats := Statistics{TotalElections: len(records)}

	states := map[string]struct{}{}
	offices := map[string]struct{}{}
	var rplusSum float64
	var rplusCount int

	for _, rec := range records {
		if rec.IsUncontested {
			stats.UncontestedCount++
		}
		if rec.State != "" {
			states[rec.State] = struct{}{}
		}
		if rec.Office != "" {
			offices[rec.Office] = struct{}{}
		}
		if rec.RPlus != nil {
			rplusSum += *rec.RPlus
			rplusCount++
		}
	}

	stats.StatesCovered = len(states)
	stats.OfficesTracked = len(offices)
	if rplusCount > 0 {
		avg := rplusSum / float64(rplusCount)
		stats.AvgRPlus = &avg
	}
	return stats
}

type StateSummary struct {
	State            string   `json:"state"`
	TotalElections   int      `json:"total_elections"`
	UncontestedCount int      `json:"uncontested_count"`
	Offices          []string `json:"offices"`
}

// StateBreakdown rolls the record set up per state, most elections first,
// ties broken alphabetically. Records without a state are skipped.
func StateBreakdown(records []Election) []StateSummary {
	byState := map[string]*StateSummary{}
	officesByState := map[string]map[string]struct{}{}

	for _, rec := range records {
		if rec.State == "" {
			continue
		}
		summary, ok := byState[rec.State]
		if !ok {
			summary = &StateSummary{State: rec.State}
			byState[rec.State] = summary
			officesByState[rec.State] = map[string]struct{}{}
		}
		summary.TotalElections++
		if rec.IsUncontested {
			summary.UncontestedCount++
		}
		if rec.Office != "" {
			officesByState[rec.State][rec.Office] = struct{}{}
		}
	}

	out := make([]StateSummary, 0, len(byState))
	for state, summary := range byState {
		for office := range officesByState[state] {
			summary.Offices = append(summary.Offices, office)
		}
		slices.Sort(summary.Offices)
		out = append(out, *summary)
	}

	slices.SortFunc(out, func(a, b StateSummary) int {
		if a.TotalElections != b.TotalElections {
			return b.TotalElections - a.TotalElections
		}
		return strings.Compare(a.State, b.State)
	})
	return out
}
