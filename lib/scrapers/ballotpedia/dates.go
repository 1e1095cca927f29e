package ballotpedia

import (
	"fmt"
	"time"
)

// GeneralElectionDate returns the statutory general election day for a
// year: the Tuesday after the first Monday of November. Used as the
// approximate date for scraped contests whose true date is unknown.
func GeneralElectionDate(year int) string {
	nov1 := time.Date(year, time.November, 1, 0, 0, 0, 0, time.UTC)
	daysUntilMonday := (8 - int(nov1.Weekday())) % 7
	electionDay := nov1.AddDate(0, 0, daysUntilMonday+1)
	return fmt.Sprintf("%04d-11-%02d", year, electionDay.Day())
}
