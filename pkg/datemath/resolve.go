package datemath

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	lead    = `\b(?:(?:by|before|until|on|at|around|for|due)\s+)?`
	monthRe = `(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`
	dayRe   = `(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`
	countRe = `(\d{1,3}|a couple of|a few|an?|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve)`
)

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

var counts = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
	"a couple of": 2, "a few": 3,
}

// groups is one regexp match: g(i) returns capture group i lowercased, or "".
type groups []string

func (g groups) at(i int) string {
	if i >= len(g) {
		return ""
	}
	return strings.ToLower(g[i])
}

type datePattern struct {
	kind    Kind
	re      *regexp.Regexp
	resolve func(p *Parser, g groups, ref time.Time) (time.Time, float64, bool)
}

type timePattern struct {
	re        *regexp.Regexp
	// afterDate accepts a match only when it directly follows a date ("tomorrow 3.30").
	afterDate bool
	resolve   func(g groups) (timeHit, bool)
}

// Date families, most specific first. A later match overlapping an earlier one is dropped.
var datePatterns = []datePattern{
	{
		kind: KindAbsolute,
		re:   regexp.MustCompile(`(?i)` + lead + `(\d{4})-(\d{1,2})-(\d{1,2})\b`),
		resolve: func(p *Parser, g groups, ref time.Time) (time.Time, float64, bool) {
			y, _ := strconv.Atoi(g.at(1))
			m, _ := strconv.Atoi(g.at(2))
			d, _ := strconv.Atoi(g.at(3))
			t, ok := p.date(y, time.Month(m), d)
			return t, 0.95, ok
		},
	},
	{
		kind: KindAbsolute,
		re:   regexp.MustCompile(`(?i)` + lead + `(?:the\s+)?` + monthRe + `\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b(?:,?\s+(\d{4})\b)?`),
		resolve: func(p *Parser, g groups, ref time.Time) (time.Time, float64, bool) {
			d, _ := strconv.Atoi(g.at(2))
			t, ok := p.dayOfYear(ref, g.at(3), months[g.at(1)[:3]], d)
			return t, 0.90, ok
		},
	},
	{
		kind: KindAbsolute,
		re:   regexp.MustCompile(`(?i)` + lead + `(?:the\s+)?(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?` + monthRe + `\b\.?(?:,?\s+(\d{4})\b)?`),
		resolve: func(p *Parser, g groups, ref time.Time) (time.Time, float64, bool) {
			d, _ := strconv.Atoi(g.at(1))
			t, ok := p.dayOfYear(ref, g.at(3), months[g.at(2)[:3]], d)
			return t, 0.88, ok
		},
	},
	{
		kind: KindAbsolute,
		re:   regexp.MustCompile(`(?i)` + lead + `(\d{1,2})/(\d{1,2})(?:/(\d{2}|\d{4}))?\b`),
		resolve: func(p *Parser, g groups, ref time.Time) (time.Time, float64, bool) {
			m, _ := strconv.Atoi(g.at(1))
			d, _ := strconv.Atoi(g.at(2))
			if m > 12 && d <= 12 {
				m, d = d, m
			}
			t, ok := p.dayOfYear(ref, g.at(3), time.Month(m), d)
			return t, 0.90, ok
		},
	},
	{
		kind: KindRelative,
		re:   regexp.MustCompile(`(?i)` + lead + `(the day after tomorrow|day after tomorrow|today|tonight|tomorrow|tmrw)\b`),
		resolve: func(p *Parser, g groups, ref time.Time) (time.Time, float64, bool) {
			switch g.at(1) {
			case "today", "tonight":
				return p.dayOffset(ref, 0), 0.95, true
			case "tomorrow", "tmrw":
				return p.dayOffset(ref, 1), 0.95, true
			default:
				return p.dayOffset(ref, 2), 0.96, true
			}
		},
	},
	{
		kind: KindRelative,
		re:   regexp.MustCompile(`(?i)` + lead + `(?:in|within)\s+` + countRe + `\s+(day|week|month)s?\b`),
		resolve: func(p *Parser, g groups, ref time.Time) (time.Time, float64, bool) {
			n, ok := counts[g.at(1)]
			if !ok {
				var err error
				if n, err = strconv.Atoi(g.at(1)); err != nil {
					return time.Time{}, 0, false
				}
			}
			return p.addUnit(ref, n, g.at(2)), 0.85, true
		},
	},
	{
		kind: KindRelative,
		re:   regexp.MustCompile(`(?i)\b(?:(this\s+coming|next|this|coming|on|by|before|until|for|due)\s+)?` + dayRe + `\b`),
		resolve: func(p *Parser, g groups, ref time.Time) (time.Time, float64, bool) {
			target := weekdays[g.at(2)]
			// "next Friday" is the first Friday strictly after today, so it only differs from
			// "this Friday" on a Friday. Policy in DESIGN.md, next-weekday resolution.
			switch q := g.at(1); {
			case q == "next":
				return p.weekday(ref, target, true), 0.85, true
			case q == "this" || q == "coming" || strings.HasPrefix(q, "this"):
				return p.weekday(ref, target, false), 0.85, true
			default:
				return p.weekday(ref, target, false), 0.80, true
			}
		},
	},
	{
		kind: KindPeriod,
		re:   regexp.MustCompile(`(?i)` + lead + `(?:the\s+)?(end|beginning|start)\s+of\s+(?:the\s+)?(next\s+)?(week|month|year)\b`),
		resolve: func(p *Parser, g groups, ref time.Time) (time.Time, float64, bool) {
			return p.boundary(ref, g.at(1) == "end", g.at(2) != "", g.at(3))
		},
	},
	{
		kind: KindPeriod,
		re:   regexp.MustCompile(`(?i)` + lead + `(next|this|the)\s+(weekend|week|month|year)\b`),
		resolve: func(p *Parser, g groups, ref time.Time) (time.Time, float64, bool) {
			next := g.at(1) == "next"
			switch g.at(2) {
			case "weekend":
				sunday := ref.Weekday() == time.Sunday
				sat := p.weekday(ref, time.Saturday, false)
				if next {
					if !sunday {
						sat = p.dayOffset(sat, 7)
					}
					return sat, 0.60, true
				}
				if sunday {
					return p.dayOffset(ref, 0), 0.65, true
				}
				return sat, 0.65, true
			case "week":
				if next {
					return p.weekday(ref, time.Monday, true), 0.60, true
				}
				return p.weekday(ref, time.Friday, false), 0.60, true
			default:
				if next {
					t, _, ok := p.boundary(ref, false, true, g.at(2))
					return t, 0.60, ok
				}
				t, _, ok := p.boundary(ref, true, false, g.at(2))
				return t, 0.60, ok
			}
		},
	},
}

var timePatterns = []timePattern{
	{
		re: regexp.MustCompile(`(?i)` + lead + `(\d{1,2})(?:[:.](\d{2}))?\s*(a\.m\.?|p\.m\.?|am\b|pm\b)`),
		resolve: func(g groups) (timeHit, bool) {
			h, _ := strconv.Atoi(g.at(1))
			m, _ := strconv.Atoi(g.at(2))
			if h < 1 || h > 12 || m > 59 {
				return timeHit{}, false
			}
			pm := strings.HasPrefix(g.at(3), "p")
			switch {
			case h == 12 && !pm:
				h = 0
			case h != 12 && pm:
				h += 12
			}
			return timeHit{tod: TimeOfDay{Hour: h, Minute: m}, conf: 0.90}, true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(?:at|around|by)\s+(\d{1,2})(?:[.:]([0-5]\d))?(?:\s*o'?clock)?\b`),
		resolve: func(g groups) (timeHit, bool) {
			conf := 0.70
			if g.at(2) != "" {
				conf = 0.85
			}
			return clockTime(g.at(1), g.at(2), conf)
		},
	},
	{
		re: regexp.MustCompile(`(?i)` + lead + `([01]?\d|2[0-3]):([0-5]\d)\b`),
		resolve: func(g groups) (timeHit, bool) {
			h, _ := strconv.Atoi(g.at(1))
			m, _ := strconv.Atoi(g.at(2))
			return timeHit{tod: TimeOfDay{Hour: h, Minute: m}, conf: 0.85}, true
		},
	},
	{
		re:        regexp.MustCompile(`\b([01]?\d|2[0-3])\.([0-5]\d)\b`),
		afterDate: true,
		resolve: func(g groups) (timeHit, bool) {
			return clockTime(g.at(1), g.at(2), 0.85)
		},
	},
	{
		re: regexp.MustCompile(`(?i)` + lead + `(noon|midday|midnight)\b`),
		resolve: func(g groups) (timeHit, bool) {
			if g.at(1) == "midnight" {
				return timeHit{conf: 0.90}, true
			}
			return timeHit{tod: TimeOfDay{Hour: 12}, conf: 0.90}, true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(?:(?:in\s+the|this|at|by|before|until|around)\s+)?(morning|afternoon|evening|tonight|end\s+of\s+(?:the\s+)?day|eod|cob|close\s+of\s+business)\b|\b(?:at|by|before|around|over)\s+(lunchtime|lunch)\b`),
		resolve: func(g groups) (timeHit, bool) {
			w := g.at(1)
			if w == "" {
				w = g.at(2)
			}
			switch {
			case w == "morning":
				return timeHit{tod: TimeOfDay{Hour: 9}, conf: 0.65, daypart: true, half: halfAM}, true
			case w == "afternoon":
				return timeHit{tod: TimeOfDay{Hour: 14}, conf: 0.65, daypart: true, half: halfPM}, true
			case w == "evening":
				return timeHit{tod: TimeOfDay{Hour: 18}, conf: 0.65, daypart: true, half: halfPM}, true
			case w == "tonight":
				return timeHit{tod: TimeOfDay{Hour: 20}, conf: 0.75, daypart: true, half: halfPM}, true
			case strings.HasPrefix(w, "lunch"):
				return timeHit{tod: TimeOfDay{Hour: 12}, conf: 0.65, daypart: true}, true
			default:
				return timeHit{tod: TimeOfDay{Hour: 17}, conf: 0.75, daypart: true}, true
			}
		},
	},
}

// clockTime reads an hour with optional minutes and no am/pm. A single-digit hour up to 7
// reads as afternoon or evening; the hit stays open to a daypart word that says otherwise.
func clockTime(hour, minute string, conf float64) (timeHit, bool) {
	h, _ := strconv.Atoi(hour)
	m, _ := strconv.Atoi(minute)
	if h > 23 || m > 59 {
		return timeHit{}, false
	}
	hit := timeHit{tod: TimeOfDay{Hour: h, Minute: m}, conf: conf}
	if h >= 1 && h <= 12 && hour[0] != '0' {
		hit.clock = h
		if h <= 7 {
			hit.tod.Hour += 12
		}
	}
	return hit, true
}

type half int

const (
	halfAny half = iota
	halfAM
	halfPM
)

type dateHit struct {
	Range
	date time.Time
	conf float64
	kind Kind
}

type timeHit struct {
	Range
	tod     TimeOfDay
	conf    float64
	// clock is the 12-hour value of an hour read without am/pm, or 0.
	clock   int
	daypart bool
	half    half
}

// Resolve scans text for date and time expressions relative to ref.
//
// Among dates the highest confidence wins; ties go to the more specific family
// (absolute, then relative, then period) and then to the earliest position.
// An explicit clock time beats a daypart word ("tonight at 9"), and a daypart fixes the
// half of the day of an hour given without am/pm. Finding nothing yields the zero Resolution.
func (p *Parser) Resolve(text string, ref time.Time) Resolution {
	ref = ref.In(p.location)
	dates := p.scanDates(text, ref)
	times := scanTimes(text, dates)

	var res Resolution
	if len(dates) > 0 {
		sort.SliceStable(dates, func(i, j int) bool {
			a, b := dates[i], dates[j]
			if a.conf != b.conf {
				return a.conf > b.conf
			}
			if a.kind.rank() != b.kind.rank() {
				return a.kind.rank() < b.kind.rank()
			}
			return a.Start < b.Start
		})
		best := dates[0]
		res.Date = &best.date
		res.Confidence = best.conf
		res.Kind = best.kind
	}
	if best, ok := pickTime(times); ok {
		res.Time = &best.tod
		if res.Date == nil {
			res.Confidence = best.conf
			res.Kind = KindTime
		}
	}

	ranges := make([]Range, 0, len(dates)+len(times))
	for _, d := range dates {
		ranges = append(ranges, d.Range)
	}
	for _, t := range times {
		ranges = append(ranges, t.Range)
	}
	res.Ranges = mergeRanges(ranges)
	return res
}

// Expressions returns the merged byte ranges of every temporal expression in text.
func (p *Parser) Expressions(text string, ref time.Time) []Range {
	return p.Resolve(text, ref).Ranges
}

// pickTime selects the highest-confidence clock time, falling back to daypart words.
func pickTime(times []timeHit) (timeHit, bool) {
	var clocks, dayparts []timeHit
	for _, t := range times {
		if t.daypart {
			dayparts = append(dayparts, t)
		} else {
			clocks = append(clocks, t)
		}
	}
	byConfidence := func(ts []timeHit) {
		sort.SliceStable(ts, func(i, j int) bool {
			if ts[i].conf != ts[j].conf {
				return ts[i].conf > ts[j].conf
			}
			return ts[i].Start < ts[j].Start
		})
	}
	byConfidence(dayparts)
	if len(clocks) == 0 {
		if len(dayparts) == 0 {
			return timeHit{}, false
		}
		return dayparts[0], true
	}

	byConfidence(clocks)
	best := clocks[0]
	if best.clock == 0 || best.clock == 12 {
		return best, true
	}
	for _, d := range dayparts {
		switch d.half {
		case halfAM:
			best.tod.Hour = best.clock
		case halfPM:
			best.tod.Hour = best.clock + 12
		default:
			continue
		}
		break
	}
	return best, true
}

func (p *Parser) scanDates(text string, ref time.Time) []dateHit {
	var hits []dateHit
	for _, pat := range datePatterns {
		for _, loc := range pat.re.FindAllStringSubmatchIndex(text, -1) {
			r := Range{Start: loc[0], End: loc[1]}
			if overlapsAny(r, hits) {
				continue
			}
			date, conf, ok := pat.resolve(p, submatches(text, loc), ref)
			if !ok {
				continue
			}
			hits = append(hits, dateHit{Range: r, date: date, conf: conf, kind: pat.kind})
		}
	}
	return hits
}

// scanTimes drops a time match that overlaps a date match ("by 12" inside "by 12/25")
// unless both end together, as "tonight" does inside "by tonight".
func scanTimes(text string, dates []dateHit) []timeHit {
	var hits []timeHit
	for _, pat := range timePatterns {
	next:
		for _, loc := range pat.re.FindAllStringSubmatchIndex(text, -1) {
			r := Range{Start: loc[0], End: loc[1]}
			for _, h := range hits {
				if r.overlaps(h.Range) {
					continue next
				}
			}
			for _, d := range dates {
				if r.overlaps(d.Range) && r.End != d.End {
					continue next
				}
			}
			if pat.afterDate && !followsDate(text, r, dates) {
				continue
			}
			hit, ok := pat.resolve(submatches(text, loc))
			if !ok {
				continue
			}
			hit.Range = r
			hits = append(hits, hit)
		}
	}
	return hits
}

// followsDate reports whether only spaces or a comma separate r from a preceding date.
func followsDate(text string, r Range, dates []dateHit) bool {
	for _, d := range dates {
		if d.End <= r.Start && strings.Trim(text[d.End:r.Start], " ,") == "" {
			return true
		}
	}
	return false
}

func overlapsAny(r Range, hits []dateHit) bool {
	for _, h := range hits {
		if r.overlaps(h.Range) {
			return true
		}
	}
	return false
}

func submatches(text string, loc []int) groups {
	g := make(groups, len(loc)/2)
	for i := range g {
		if loc[2*i] >= 0 {
			g[i] = text[loc[2*i]:loc[2*i+1]]
		}
	}
	return g
}

func mergeRanges(rs []Range) []Range {
	if len(rs) == 0 {
		return nil
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].Start < rs[j].Start })
	out := []Range{rs[0]}
	for _, r := range rs[1:] {
		last := &out[len(out)-1]
		if r.Start <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

// date builds midnight of y-m-d, rejecting dates that time.Date would normalise.
func (p *Parser) date(y int, m time.Month, d int) (time.Time, bool) {
	t := time.Date(y, m, d, 0, 0, 0, 0, p.location)
	if t.Year() != y || t.Month() != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// dayOfYear resolves a month and day with an optional year. Without a year the next
// occurrence on or after ref's day is used.
func (p *Parser) dayOfYear(ref time.Time, year string, m time.Month, d int) (time.Time, bool) {
	if year != "" {
		y, _ := strconv.Atoi(year)
		if y < 100 {
			y += 2000
		}
		return p.date(y, m, d)
	}
	t, ok := p.date(ref.Year(), m, d)
	if !ok {
		// Feb 29 outside a leap year
		return p.date(ref.Year()+1, m, d)
	}
	if t.Before(p.startOfDay(ref)) {
		return p.date(ref.Year()+1, m, d)
	}
	return t, true
}

// boundary resolves "end of the week", "beginning of next month" and friends. The end of
// a week is its Friday.
func (p *Parser) boundary(ref time.Time, end, next bool, unit string) (time.Time, float64, bool) {
	ref = ref.In(p.location)
	y, m := ref.Year(), ref.Month()

	switch unit {
	case "week":
		if end {
			if next {
				return p.weekday(ref, time.Monday, true).AddDate(0, 0, 4), 0.65, true
			}
			return p.weekday(ref, time.Friday, false), 0.65, true
		}
		return p.weekday(ref, time.Monday, true), 0.65, true
	case "month":
		if end {
			if next {
				m++
			}
			return time.Date(y, m+1, 0, 0, 0, 0, 0, p.location), 0.70, true
		}
		if !next && ref.Day() == 1 {
			return p.startOfDay(ref), 0.65, true
		}
		return time.Date(y, m+1, 1, 0, 0, 0, 0, p.location), 0.65, true
	case "year":
		if end {
			if next {
				y++
			}
			return time.Date(y, time.December, 31, 0, 0, 0, 0, p.location), 0.70, true
		}
		if !next && ref.YearDay() == 1 {
			return p.startOfDay(ref), 0.65, true
		}
		return time.Date(y+1, time.January, 1, 0, 0, 0, 0, p.location), 0.65, true
	}
	return time.Time{}, 0, false
}
