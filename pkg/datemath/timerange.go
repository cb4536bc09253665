package datemath

import (
	"regexp"
	"strconv"
	"time"
)

// DefaultEventDuration is used when no end time can be read from the text.
const DefaultEventDuration = time.Hour

// Range patterns, tried in priority order. The first captures "16h-19h",
// "16h30 à 18h45"; the second "16:00-19:00". The separator is "-" or "à".
var rangeRes = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}\s*h\s*\d{0,2}\s*(?:-|–|[àa])\s*(\d{1,2})\s*h\s*(\d{2})?`),
	regexp.MustCompile(`\b\d{1,2}:\d{2}\s*(?:-|–|[àa])\s*(\d{1,2}):(\d{2})`),
}

// EndOfRange scans free text for an embedded end-time expression and builds
// the event end on the same calendar date as start. An end that is not
// strictly after start rolls forward one day (ranges crossing midnight,
// "23h-1h"). Without a match the end is start plus the default duration.
func EndOfRange(text string, start time.Time) time.Time {
	for _, re := range rangeRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		hour, _ := strconv.Atoi(m[1])
		if hour > 23 {
			continue
		}
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if minute > 59 {
			continue
		}
		end := time.Date(start.Year(), start.Month(), start.Day(), hour, minute, 0, 0, start.Location())
		if !end.After(start) {
			end = end.AddDate(0, 0, 1)
		}
		return end
	}
	return start.Add(DefaultEventDuration)
}
