// Package entry records daily work intervals: one entry per resource per
// calendar date, with duration and pay period resolved at creation time.
package entry

import (
	"math"
	"strconv"
	"strings"
)

// TimeLayout is the wire format for interval bounds: 24-hour HH:MM.
const TimeLayout = "15:04"

// CalculateDuration returns the span between two HH:MM times in hours,
// rounded to two decimals. An end before the start is read as crossing
// midnight, so "22:00" to "06:00" is 8 hours, never negative. Either bound
// empty yields 0.
func CalculateDuration(startTime, endTime string) float64 {
	if startTime == "" || endTime == "" {
		return 0
	}

	start, ok := minutesOfDay(startTime)
	if !ok {
		return 0
	}
	end, ok := minutesOfDay(endTime)
	if !ok {
		return 0
	}

	diff := end - start
	if diff < 0 {
		diff += 24 * 60
	}

	return math.Round(float64(diff)/60*100) / 100
}

func minutesOfDay(hhmm string) (int, bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}
