package pogoda

import "time"

// DayPart names one of the four forecast periods of a day.
type DayPart string

const (
	Night   DayPart = "night"
	Morning DayPart = "morning"
	Day     DayPart = "day"
	Evening DayPart = "evening"
)

// DayPartHour pairs a day part with its representative hour.
type DayPartHour struct {
	Part DayPart
	Hour int
}

// DayParts is ordered by representative hour.
var DayParts = []DayPartHour{
	{Night, 2},
	{Morning, 9},
	{Day, 15},
	{Evening, 20},
}

// DayPartAt returns the day part whose representative hour is nearest to
// t's hour on the 24 hour circle. Ties go to the earlier entry.
func DayPartAt(t time.Time) DayPart {
	minutes := t.Hour()*60 + t.Minute()
	best := DayParts[0]
	bestDist := 24 * 60
	for _, dp := range DayParts {
		d := minutes - dp.Hour*60
		if d < 0 {
			d = -d
		}
		if d > 12*60 {
			d = 24*60 - d
		}
		if d < bestDist {
			best, bestDist = dp, d
		}
	}
	return best.Part
}

// RepresentativeHour returns the anchor hour for p, or false for an
// unknown part.
func RepresentativeHour(p DayPart) (int, bool) {
	for _, dp := range DayParts {
		if dp.Part == p {
			return dp.Hour, true
		}
	}
	return 0, false
}
