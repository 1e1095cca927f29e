package elections

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func rplus(v float64) *float64 {
	return &v
}

func name(s string) *string {
	return &s
}

func TestDeduplicateFirstSeenWins(t *testing.T) {
	records := []Election{
		{Location: "A", ElectionDate: "2025-11-04"},
		{Location: "A", ElectionDate: "2025-11-04", RPlus: rplus(7)},
	}

	unique := Deduplicate(records)
	require.Len(t, unique, 1)
	// the later duplicate had richer data, the first record still wins
	require.Nil(t, unique[0].RPlus)
}

func TestDeduplicateDistinctDates(t *testing.T) {
	records := []Election{
		{Location: "A", ElectionDate: "2025-11-04"},
		{Location: "A", ElectionDate: "2026-11-03"},
	}

	require.Len(t, Deduplicate(records), 2)
}

func TestDeduplicateOrderPreserved(t *testing.T) {
	records := []Election{
		{Location: "C", ElectionDate: "2025-11-04"},
		{Location: "A", ElectionDate: "2025-11-04"},
		{Location: "C", ElectionDate: "2025-11-04"},
		{Location: "B", ElectionDate: "2025-11-04"},
		{Location: "A", ElectionDate: "2025-11-04"},
	}

	unique := Deduplicate(records)
	locations := make([]string, len(unique))
	for i, rec := range unique {
		locations[i] = rec.Location
	}
	require.Equal(t, []string{"C", "A", "B"}, locations)
}

func TestDeduplicateIdempotent(t *testing.T) {
	records := []Election{
		{Location: "A", ElectionDate: "2025-11-04"},
		{Location: "B", ElectionDate: "2025-11-04"},
		{Location: "A", ElectionDate: "2025-11-04"},
		{Location: "A", ElectionDate: "2026-11-03"},
	}

	once := Deduplicate(records)
	twice := Deduplicate(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("deduplicate is not idempotent:\n%s", diff)
	}
}

func TestDeduplicateEmpty(t *testing.T) {
	require.Empty(t, Deduplicate(nil))
}
