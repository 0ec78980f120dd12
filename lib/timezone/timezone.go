package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Asia/Tokyo")
	if err != nil {
		panic(err)
	}
}

// force timezone to be JST regardless of where the server runs, since
// season/date arithmetic follows the league's calendar.
func Now() time.Time {
	return time.Now().In(Location)
}

// CurrentSeason returns the season year a query made at t refers to. The
// season runs March through October, so January and February still belong to
// the previous year's season.
func CurrentSeason(t time.Time) int {
	t = t.In(Location)
	if t.Month() < time.March {
		return t.Year() - 1
	}
	return t.Year()
}
