package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves natural-language date phrases and partial ISO strings
// into absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string,
// e.g. "Europe/Paris".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// isoLayouts are tried in order by ParseISO. Layouts without an offset are
// interpreted in the parser's timezone.
var isoLayouts = []struct {
	layout    string
	hasOffset bool
}{
	{time.RFC3339, true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02T15:04", false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02 15:04", false},
	{"2006-01-02", false},
}

// ParseISO parses a full or partial ISO-8601 string into the canonical form.
func (p *Parser) ParseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}
	for _, l := range isoLayouts {
		if l.hasOffset {
			if t, err := time.Parse(l.layout, s); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(l.layout, s, p.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}

var (
	clockRe   = regexp.MustCompile(`(?:\b[àa]\s+)?\b(\d{1,2})\s*(?:h\s*(\d{2})?|:(\d{2}))`)
	inDaysRe  = regexp.MustCompile(`(?:dans|in)\s+(\d+)\s+(jour|jours|day|days|semaine|semaines|week|weeks|mois|month|months)`)
	weekdayRe = regexp.MustCompile(`\b(lundi|mardi|mercredi|jeudi|vendredi|samedi|dimanche|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
)

var weekdays = map[string]time.Weekday{
	"lundi": time.Monday, "monday": time.Monday,
	"mardi": time.Tuesday, "tuesday": time.Tuesday,
	"mercredi": time.Wednesday, "wednesday": time.Wednesday,
	"jeudi": time.Thursday, "thursday": time.Thursday,
	"vendredi": time.Friday, "friday": time.Friday,
	"samedi": time.Saturday, "saturday": time.Saturday,
	"dimanche": time.Sunday, "sunday": time.Sunday,
}

// Parse resolves a date phrase relative to baseTime. ISO strings are
// accepted too, so input that is already a timestamp round-trips to its
// canonical form. Unresolvable input returns an error, never a panic.
func (p *Parser) Parse(phrase string, baseTime time.Time) (time.Time, error) {
	raw := strings.TrimSpace(phrase)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date phrase")
	}

	if t, err := p.ParseISO(raw); err == nil {
		return t, nil
	}

	lower := strings.ToLower(raw)
	base := baseTime.In(p.location)

	day, err := p.resolveDay(lower, base)
	if err != nil {
		return time.Time{}, err
	}

	if hour, minute, ok := extractClock(lower); ok {
		return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location), nil
	}
	return day, nil
}

// resolveDay finds the calendar day a phrase refers to, at midnight in the
// parser's timezone. "mardi prochain" and a bare "mardi" both resolve to
// the upcoming occurrence, strictly after the base day.
func (p *Parser) resolveDay(lower string, base time.Time) (time.Time, error) {
	switch {
	case strings.Contains(lower, "après-demain"), strings.Contains(lower, "apres-demain"):
		return p.startOfDay(base.AddDate(0, 0, 2)), nil
	case strings.Contains(lower, "aujourd'hui"), strings.Contains(lower, "today"):
		return p.startOfDay(base), nil
	case strings.Contains(lower, "demain"), strings.Contains(lower, "tomorrow"):
		return p.startOfDay(base.AddDate(0, 0, 1)), nil
	case strings.Contains(lower, "hier"), strings.Contains(lower, "yesterday"):
		return p.startOfDay(base.AddDate(0, 0, -1)), nil
	}

	if m := inDaysRe.FindStringSubmatch(lower); m != nil {
		amount, _ := strconv.Atoi(m[1])
		switch {
		case strings.HasPrefix(m[2], "jour"), strings.HasPrefix(m[2], "day"):
			return p.startOfDay(base.AddDate(0, 0, amount)), nil
		case strings.HasPrefix(m[2], "semaine"), strings.HasPrefix(m[2], "week"):
			return p.startOfDay(base.AddDate(0, 0, amount*7)), nil
		default:
			return p.startOfDay(base.AddDate(0, amount, 0)), nil
		}
	}

	if m := weekdayRe.FindStringSubmatch(lower); m != nil {
		target := weekdays[m[1]]
		daysUntil := int(target - base.Weekday())
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return p.startOfDay(base.AddDate(0, 0, daysUntil)), nil
	}

	// A bare clock time ("à 15h") means today.
	if _, _, ok := extractClock(lower); ok {
		return p.startOfDay(base), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date phrase: %q", lower)
}

// extractClock pulls an hour/minute out of a phrase ("à 15h", "9h30",
// "15:30"). Minutes default to 0.
func extractClock(lower string) (hour, minute int, ok bool) {
	m := clockRe.FindStringSubmatch(lower)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	if hour > 23 {
		return 0, 0, false
	}
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	} else if m[3] != "" {
		minute, _ = strconv.Atoi(m[3])
	}
	if minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// startOfDay returns midnight of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 of the day containing t.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	return p.startOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
