package tracker

import (
	"context"
	"log/slog"

	"electiontracker/lib/elections"
)

// PartisanSource supplies partisan-lean (R+) estimates for a district.
// None of the public sources are wired up yet, the interface is the
// extension point for when one is.
type PartisanSource interface {
	// PartisanLean returns nil when the source has no estimate.
	PartisanLean(ctx context.Context, state, district, office string) (*float64, error)
}

func (s *Service) SetPartisanSource(src PartisanSource) {
	s.partisan = src
}

// EnrichPartisanLean fills r_plus on records that lack one. Without a
// configured source this is a no-op. Lookup failures leave the record
// untouched.
func (s *Service) EnrichPartisanLean(ctx context.Context, records []elections.Election) []elections.Election {
	if s.partisan == nil {
		return records
	}

	for i := range records {
		if records[i].RPlus != nil {
			continue
		}
		lean, err := s.partisan.PartisanLean(ctx, records[i].State, records[i].District, records[i].Office)
		if err != nil {
			slog.WarnContext(ctx, "partisan lookup failed", "location", records[i].Location, "err", err)
			continue
		}
		records[i].RPlus = lean
	}
	return records
}
