package elections

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []Election {
	return []Election{
		{Location: "Texas - State Senate 1", State: "TX", Office: "State Senate", ElectionDate: "2026-11-03", RPlus: rplus(5), IsUncontested: true},
		{Location: "Texas - State House 2", State: "TX", Office: "State House", ElectionDate: "2026-11-03", RPlus: rplus(-3)},
		{Location: "California - State Senate 3", State: "CA", Office: "State Senate", ElectionDate: "2026-11-03"},
		{Location: "Ohio - State House 4", State: "OH", Office: "State House", ElectionDate: "2026-11-03", RPlus: rplus(12), IsUncontested: true},
	}
}

func TestQueryStateFilter(t *testing.T) {
	results := Query(sampleRecords(), Filters{State: "TX"})
	require.Len(t, results, 2)
	for _, rec := range results {
		require.Equal(t, "TX", rec.State)
	}

	// exact, case-sensitive match
	require.Empty(t, Query(sampleRecords(), Filters{State: "tx"}))
}

func TestQueryOfficeFilter(t *testing.T) {
	results := Query(sampleRecords(), Filters{OfficeType: "State Senate"})
	require.Len(t, results, 2)
}

func TestQueryUncontestedOnly(t *testing.T) {
	results := Query(sampleRecords(), Filters{UncontestedOnly: true})
	require.Len(t, results, 2)
	for _, rec := range results {
		require.True(t, rec.IsUncontested)
	}
}

func TestQueryRPlusBounds(t *testing.T) {
	// r_plus values are 5, -3, null, 12: only 5 falls inside [0, 10]
	results := Query(sampleRecords(), Filters{MinRPlus: rplus(0), MaxRPlus: rplus(10)})
	require.Len(t, results, 1)
	require.Equal(t, 5.0, *results[0].RPlus)
}

func TestQueryRPlusBoundsInclusive(t *testing.T) {
	results := Query(sampleRecords(), Filters{MinRPlus: rplus(5), MaxRPlus: rplus(5)})
	require.Len(t, results, 1)
	require.Equal(t, 5.0, *results[0].RPlus)
}

func TestQueryUnknownRPlusExcludedByEitherBound(t *testing.T) {
	// a record without partisan data never matches a bounded query
	for _, f := range []Filters{
		{MinRPlus: rplus(-1000)},
		{MaxRPlus: rplus(1000)},
	} {
		for _, rec := range Query(sampleRecords(), f) {
			require.NotNil(t, rec.RPlus)
		}
	}
}

func TestQueryFilterComposition(t *testing.T) {
	combined := Query(sampleRecords(), Filters{State: "TX", UncontestedOnly: true})
	sequential := Query(Query(sampleRecords(), Filters{State: "TX"}), Filters{UncontestedOnly: true})
	if diff := cmp.Diff(combined, sequential); diff != "" {
		t.Fatalf("filter composition mismatch:\n%s", diff)
	}
}

func TestQueryNoFilters(t *testing.T) {
	require.Len(t, Query(sampleRecords(), Filters{}), 4)
}

func TestComputeStatisticsEmpty(t *testing.T) {
	stats := ComputeStatistics(nil)
	require.Equal(t, 0, stats.TotalElections)
	require.Equal(t, 0, stats.UncontestedCount)
	require.Equal(t, 0, stats.StatesCovered)
	require.Equal(t, 0, stats.OfficesTracked)
	require.Nil(t, stats.AvgRPlus)
}

func TestComputeStatistics(t *testing.T) {
	stats := ComputeStatistics(sampleRecords())
	require.Equal(t, 4, stats.TotalElections)
	require.Equal(t, 2, stats.UncontestedCount)
	require.Equal(t, 3, stats.StatesCovered)
	require.Equal(t, 2, stats.OfficesTracked)
	require.NotNil(t, stats.AvgRPlus)
	// mean over the non-null values only: (5 - 3 + 12) / 3
	require.InDelta(t, 14.0/3.0, *stats.AvgRPlus, 1e-9)
}

func TestComputeStatisticsNoRPlus(t *testing.T) {
	stats := ComputeStatistics([]Election{
		{Location: "A", State: "TX", ElectionDate: "2026-11-03"},
	})
	require.Equal(t, 1, stats.TotalElections)
	require.Nil(t, stats.AvgRPlus)
}

func TestStateBreakdown(t *testing.T) {
	breakdown := StateBreakdown(sampleRecords())
	require.Len(t, breakdown, 3)

	// TX leads with two elections, CA and OH tie broken alphabetically
	require.Equal(t, "TX", breakdown[0].State)
	require.Equal(t, 2, breakdown[0].TotalElections)
	require.Equal(t, []string{"State House", "State Senate"}, breakdown[0].Offices)
	require.Equal(t, "CA", breakdown[1].State)
	require.Equal(t, "OH", breakdown[2].State)
}
