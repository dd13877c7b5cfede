package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser resolves natural-language date and time expressions against an explicit
// reference instant. It never reads the wall clock.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
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

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// addUnit moves amount days, weeks or months forward from the start of base's day.
func (p *Parser) addUnit(base time.Time, amount int, unit string) time.Time {
	b := base.In(p.location)
	switch {
	case strings.HasPrefix(unit, "week"):
		return p.dayOffset(b, amount*7)
	case strings.HasPrefix(unit, "month"):
		// Jan 31 plus one month is the last day of February.
		first := time.Date(b.Year(), b.Month()+time.Month(amount), 1, 0, 0, 0, 0, p.location)
		last := first.AddDate(0, 1, -1).Day()
		return first.AddDate(0, 0, min(b.Day(), last)-1)
	default:
		return p.dayOffset(b, amount)
	}
}

// weekday returns the next occurrence of target. With strict set the reference day itself
// is skipped, so the result is 1 to 7 days ahead; otherwise 0 to 6.
func (p *Parser) weekday(base time.Time, target time.Weekday, strict bool) time.Time {
	b := base.In(p.location)
	diff := (int(target) - int(b.Weekday()) + 7) % 7
	if strict && diff == 0 {
		diff = 7
	}
	return p.dayOffset(b, diff)
}

// dayOffset returns midnight n days after t's day, in the parser's timezone.
func (p *Parser) dayOffset(t time.Time, n int) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, p.location)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	return p.dayOffset(t, 0)
}
