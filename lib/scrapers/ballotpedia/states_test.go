package ballotpedia

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbbreviation(t *testing.T) {
	require.Equal(t, "CA", Abbreviation("California"))
	require.Equal(t, "TX", Abbreviation("Texas"))
	require.Equal(t, "NC", Abbreviation("North_Carolina"))
	require.Equal(t, "NH", Abbreviation("New_Hampshire"))
}

func TestAbbreviationFallback(t *testing.T) {
	// unmapped names fall back to the first two ASCII letters uppercased
	require.Equal(t, "PU", Abbreviation("Puerto_Rico"))
	require.Equal(t, "GU", Abbreviation("guam"))
	require.Equal(t, "XX", Abbreviation("X"))

	// non-ASCII runes never leak into the code
	require.Equal(t, "LA", Abbreviation("Álava"))
	require.Equal(t, "XX", Abbreviation("日本"))
}

func TestAllStatesMapped(t *testing.T) {
	seen := map[string]struct{}{}
	for _, state := range AllStates {
		abbrev := Abbreviation(state)
		require.Len(t, abbrev, 2)
		seen[abbrev] = struct{}{}
	}
	require.Len(t, seen, 50)
}

func TestPriorityStatesAreKnown(t *testing.T) {
	all := map[string]struct{}{}
	for _, state := range AllStates {
		all[state] = struct{}{}
	}
	for _, state := range PriorityStates {
		_, ok := all[state]
		require.True(t, ok, "priority state %q missing from the full set", state)
	}
}

func TestGeneralElectionDate(t *testing.T) {
	// the Tuesday after the first Monday of November
	require.Equal(t, "2021-11-02", GeneralElectionDate(2021))
	require.Equal(t, "2024-11-05", GeneralElectionDate(2024))
	require.Equal(t, "2025-11-04", GeneralElectionDate(2025))
	require.Equal(t, "2026-11-03", GeneralElectionDate(2026))
	require.Equal(t, "2027-11-02", GeneralElectionDate(2027))
}
