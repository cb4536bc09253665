// Package schedule decides whether a candidate event can be placed on the
// calendar without colliding with what is already there.
package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/dondeestakoko/easemyday/pkg/gcalendar"
	pkgLog "github.com/dondeestakoko/easemyday/pkg/log"
)

// CalendarLister abstracts the calendar query capability so the checker can
// be exercised with a fake in tests.
type CalendarLister interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Conflict is the outcome of a check. With summaries ordered by start time
// by the collaborator, With is the first colliding event.
type Conflict struct {
	Found bool
	With  string
}

// Checker queries an external calendar for events overlapping a candidate
// window. The overlap semantics are delegated entirely to the collaborator:
// any event returned for the [start, end) window is a conflict.
type Checker struct {
	calendar   CalendarLister
	calendarID string
	l          pkgLog.Logger
}

// NewChecker creates a conflict checker for one calendar.
func NewChecker(calendar CalendarLister, calendarID string, l pkgLog.Logger) *Checker {
	return &Checker{
		calendar:   calendar,
		calendarID: calendarID,
		l:          l,
	}
}

// Check reports whether [start, end) collides with an existing event.
// A query failure is returned to the caller, which must treat the conflict
// status as unknown and skip the candidate rather than insert blindly.
func (c *Checker) Check(ctx context.Context, start, end time.Time) (Conflict, error) {
	if !start.Before(end) {
		return Conflict{}, fmt.Errorf("invalid window: start %v is not before end %v", start, end)
	}

	events, err := c.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: c.calendarID,
		TimeMin:    start,
		TimeMax:    end,
	})
	if err != nil {
		c.l.Errorf(ctx, "schedule: conflict query failed for [%v, %v): %v", start, end, err)
		return Conflict{}, fmt.Errorf("conflict query failed: %w", err)
	}

	if len(events) == 0 {
		return Conflict{}, nil
	}

	c.l.Infof(ctx, "schedule: window [%v, %v) collides with %q", start, end, events[0].Summary)
	return Conflict{Found: true, With: events[0].Summary}, nil
}
