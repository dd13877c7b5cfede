package datemath

import (
	"fmt"
	"time"
)

// Kind names the pattern family a resolved date came from.
type Kind string

const (
	KindNone     Kind = ""
	KindAbsolute Kind = "absolute"
	KindRelative Kind = "relative"
	KindPeriod   Kind = "period"
	KindTime     Kind = "time"
)

// rank orders kinds by specificity for tie-breaking.
func (k Kind) rank() int {
	switch k {
	case KindAbsolute:
		return 0
	case KindRelative:
		return 1
	case KindPeriod:
		return 2
	default:
		return 3
	}
}

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// String formats the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Range is a half-open byte range [Start, End) into the resolved text.
type Range struct {
	Start int
	End   int
}

func (r Range) overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

// Resolution is the outcome of scanning a text for temporal expressions.
// The zero value means nothing was found.
type Resolution struct {
	// Date is midnight of the resolved day in the parser's location.
	Date *time.Time
	Time *TimeOfDay
	// Confidence is the selected date pattern's confidence, or the time pattern's
	// when only a time was found.
	Confidence float64
	Kind       Kind
	// Ranges covers every temporal expression found, merged and sorted.
	Ranges []Range
}

// Found reports whether a date or a time was resolved.
func (r Resolution) Found() bool {
	return r.Date != nil || r.Time != nil
}

// At combines Date and Time into one instant. It reports false when no date was resolved.
func (r Resolution) At() (time.Time, bool) {
	if r.Date == nil {
		return time.Time{}, false
	}
	if r.Time == nil {
		return *r.Date, true
	}
	d := *r.Date
	return time.Date(d.Year(), d.Month(), d.Day(), r.Time.Hour, r.Time.Minute, 0, 0, d.Location()), true
}
