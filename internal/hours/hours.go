// Package hours evaluates weekly opening schedules for activity venues.
// A schedule maps weekday keys ("sun".."sat") to zero or more open intervals
// expressed as 24-hour clock strings, e.g. {"sat": [["09:00","17:30"]]}.
//
// All time math happens here, against the single household time zone. An
// absent schedule means "hours unknown" and never blocks a recommendation;
// malformed interval data is treated the same way.
package hours

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dayKeys is indexed by time.Weekday (Sunday == 0).
var dayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// Span is a single open interval as stored: [open, close] in "HH:MM".
type Span [2]string

// Schedule is a weekly opening-hours table keyed by short weekday name.
type Schedule map[string][]Span

// Clock abstracts "now" so schedule evaluation is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// Evaluator answers open/closed questions about schedules at the current
// household-local time.
type Evaluator struct {
	clock Clock
	loc   *time.Location
}

// NewEvaluator creates an Evaluator bound to the household time zone.
func NewEvaluator(clock Clock, loc *time.Location) *Evaluator {
	if loc == nil {
		loc = time.UTC
	}
	return &Evaluator{clock: clock, loc: loc}
}

// localNow returns the current weekday and minute-of-day in the household zone.
func (e *Evaluator) localNow() (time.Weekday, int) {
	now := e.clock.Now().In(e.loc)
	return now.Weekday(), now.Hour()*60 + now.Minute()
}

// IsOpenNow reports whether the venue is open at the current local time.
// A nil schedule is treated as open (unknown hours never block); a present
// schedule with no intervals today means closed. Interval endpoints are
// inclusive.
func (e *Evaluator) IsOpenNow(s Schedule) bool {
	if s == nil {
		return true
	}
	weekday, nowMin := e.localNow()
	for _, span := range s[dayKeys[weekday]] {
		open, close, ok := spanMinutes(span)
		if !ok {
			continue
		}
		if nowMin >= open && nowMin <= close {
			return true
		}
	}
	return false
}

// ClosesWithin reports whether any of today's intervals closes between now
// and now+d (inclusive). It does not require the venue to currently be open.
// A nil schedule always reports false.
func (e *Evaluator) ClosesWithin(s Schedule, d time.Duration) bool {
	if s == nil {
		return false
	}
	weekday, nowMin := e.localNow()
	threshold := int(d.Minutes())
	for _, span := range s[dayKeys[weekday]] {
		_, close, ok := spanMinutes(span)
		if !ok {
			continue
		}
		diff := close - nowMin
		if diff >= 0 && diff <= threshold {
			return true
		}
	}
	return false
}

// TodayText formats today's intervals for display.
func (e *Evaluator) TodayText(s Schedule) string {
	weekday, _ := e.localNow()
	return TextForWeekday(s, weekday)
}

// TextForWeekday formats the intervals for the given weekday as 12-hour clock
// ranges joined by commas, e.g. "9:00 AM – 5:30 PM". A nil schedule or a day
// with no intervals renders as "Closed".
func TextForWeekday(s Schedule, weekday time.Weekday) string {
	spans := s[dayKeys[weekday]]
	parts := make([]string, 0, len(spans))
	for _, span := range spans {
		openText, ok1 := to12Hour(span[0])
		closeText, ok2 := to12Hour(span[1])
		if !ok1 || !ok2 {
			continue
		}
		parts = append(parts, openText+" – "+closeText)
	}
	if len(parts) == 0 {
		return "Closed"
	}
	return strings.Join(parts, ", ")
}

// spanMinutes parses a span into open/close minutes-of-day. ok is false when
// either endpoint is malformed, in which case the span is ignored.
func spanMinutes(span Span) (open, close int, ok bool) {
	open, okOpen := parseClock(span[0])
	close, okClose := parseClock(span[1])
	return open, close, okOpen && okClose
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(v string) (int, bool) {
	h, m, found := strings.Cut(v, ":")
	if !found {
		return 0, false
	}
	hour, err1 := strconv.Atoi(strings.TrimSpace(h))
	minute, err2 := strconv.Atoi(strings.TrimSpace(m))
	if err1 != nil || err2 != nil {
		return 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// to12Hour renders "HH:MM" as a 12-hour clock string like "3:05 PM".
func to12Hour(v string) (string, bool) {
	minutes, ok := parseClock(v)
	if !ok {
		return "", false
	}
	hour := minutes / 60
	minute := minutes % 60
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, minute, suffix), true
}
