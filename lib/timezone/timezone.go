package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
}

// Election dates are civil dates in US Eastern time. Servers running in
// UTC would flip Year()/Month()/Day() a few hours early around midnight,
// so anything doing calendar arithmetic goes through this.
func Now() time.Time {
	return time.Now().In(Location)
}
