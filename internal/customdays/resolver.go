package customdays

import (
	"fmt"

	"github.com/baruchs/hebdate/internal/calendar"
)

// Query is one requested interval. Day 0 widens the interval to the whole
// month, Month 0 (with Day 0) to the whole year; Flavor names the calendar
// Day/Month/Year are denominated in.
type Query struct {
	Day    int
	Month  int
	Year   int
	Flavor Flavor
}

// RangeStart resolves the first day of the query interval, validating the
// query along the way.
func (q Query) RangeStart() (calendar.DateRecord, error) {
	if q.Month == 0 && q.Day != 0 {
		return calendar.DateRecord{}, fmt.Errorf("day %d given without a month", q.Day)
	}
	day, month := q.Day, q.Month
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}
	if q.Flavor == Hebrew {
		return calendar.FromHebrew(day, month, q.Year)
	}
	return calendar.FromGregorian(day, month, q.Year)
}

// Resolve determines whether a rule has an occurrence inside the query
// interval and returns its date record. A false result is the normal
// "not this interval" outcome; errors are internal kernel faults only and
// abort the surrounding scan.
//
// start must be the record for the interval's first day (Query.RangeStart).
func Resolve(r *Rule, q Query, ov Overrides, start calendar.DateRecord) (calendar.DateRecord, bool, error) {
	baseYear := yearIn(start, r.Anchor.flavor())

	// A weekday shift can carry a rule anchored near the year boundary
	// into the neighboring year; widen whole-month queries for months 1
	// and 12 accordingly.
	if q.Day == 0 {
		switch a := r.Anchor.(type) {
		case HebrewFixed:
			baseYear += yearBoundShift(q.Month, a.Month)
		case GregorianFixed:
			baseYear += yearBoundShift(q.Month, a.Month)
		}
	}

	rec, ok, err := r.resolveForYear(baseYear, ov)
	if err != nil {
		return calendar.DateRecord{}, false, err
	}

	// When the rule and the query use different calendars, the occurrence
	// for the base year can land in the wrong query-flavor year; one
	// retry against the following year covers the offset between the two
	// calendars.
	if q.Day == 0 && r.Anchor.flavor() != q.Flavor {
		if !ok || yearIn(rec, q.Flavor) != q.Year {
			rec, ok, err = r.resolveForYear(baseYear+1, ov)
			if err != nil {
				return calendar.DateRecord{}, false, err
			}
		}
	}
	if !ok {
		return calendar.DateRecord{}, false, nil
	}

	// Interval filter.
	if q.Day != 0 {
		return rec, rec.JDN == start.JDN, nil
	}
	if rec.JDN < start.JDN {
		return calendar.DateRecord{}, false, nil
	}
	if q.Month != 0 {
		return rec, monthIn(rec, q.Flavor) == q.Month, nil
	}
	return rec, yearIn(rec, q.Flavor) == q.Year, nil
}

// resolveForYear computes the rule's adjusted occurrence for one candidate
// year of the rule's own calendar, or reports that the rule yields none.
func (r *Rule) resolveForYear(year int, ov Overrides) (calendar.DateRecord, bool, error) {
	if !r.appliesTo(year) {
		return calendar.DateRecord{}, false, nil
	}
	rec, ok, err := r.Anchor.occurrence(year, ov)
	if err != nil || !ok {
		return calendar.DateRecord{}, ok, err
	}
	shift := r.Adjustments[rec.Weekday-1]
	if shift == 0 {
		return rec, true, nil
	}
	return recordAt(rec.JDN + shift)
}

func yearBoundShift(queryMonth, ruleMonth int) int {
	switch {
	case queryMonth == 12 && ruleMonth == 1:
		return 1
	case queryMonth == 1 && ruleMonth == 12:
		return -1
	}
	return 0
}

func yearIn(rec calendar.DateRecord, f Flavor) int {
	if f == Hebrew {
		return rec.HebrewYear
	}
	return rec.GregorianYear
}

func monthIn(rec calendar.DateRecord, f Flavor) int {
	if f == Hebrew {
		return rec.HebrewMonth
	}
	return rec.GregorianMonth
}
