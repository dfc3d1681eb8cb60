package customdays

import (
	"errors"

	"github.com/baruchs/hebdate/internal/calendar"
)

// Flavor selects which calendar a rule or query is denominated in.
type Flavor int

const (
	Gregorian Flavor = iota
	Hebrew
)

func (f Flavor) String() string {
	if f == Hebrew {
		return "hebrew"
	}
	return "gregorian"
}

// Description slots, in rule-file field order.
const (
	DescLocalLong = iota
	DescLocalShort
	DescHebrewLong
	DescHebrewShort
)

// Maximum description lengths after truncation.
const (
	MaxDescriptionLong  = 40
	MaxDescriptionShort = 15
)

// DescriptionIndex maps a text preference to a description slot.
func DescriptionIndex(short, hebrew bool) int {
	i := 0
	if hebrew {
		i = 2
	}
	if short {
		i++
	}
	return i
}

// An Anchor places a rule's occurrence within one year of its calendar.
// Each day type is its own variant; resolution is a method, not a tag
// switch. occurrence reports ok=false when the rule simply has no
// occurrence that year (a normal negative outcome); a non-nil error means
// an internal kernel fault and aborts the scan.
type Anchor interface {
	flavor() Flavor
	occurrence(year int, ov Overrides) (calendar.DateRecord, bool, error)
}

// HebrewFixed anchors a rule to a fixed Hebrew month/day. Months are
// numbered 1..12 Tishrei..Elul with 6 the sole Adar of a common year and
// 13/14 Adar I/II of a leap year; the Overrides decide what happens in
// years where the nominal day does not exist.
type HebrewFixed struct {
	Month int
	Day   int
}

func (HebrewFixed) flavor() Flavor { return Hebrew }

func (a HebrewFixed) occurrence(year int, ov Overrides) (calendar.DateRecord, bool, error) {
	month, day := a.Month, a.Day
	leapAdj := 0
	size := calendar.SizeOfHebrewYear(year)

	switch {
	case day == 30 && (month == 2 || month == 3) && !calendar.ValidHebrewDate(day, month, year):
		// 30 Cheshvan / 30 Kislev in a year where the month has 29 days.
		policy := ov.Cheshvan30
		if month == 3 {
			policy = ov.Kislev30
		}
		switch policy {
		case 0:
			return calendar.DateRecord{}, false, nil
		case -1:
			leapAdj = -1
		}
		// policy 1 keeps day 30, which spills into the next month.

	case month == 14 && day > 0 && day < 30 && size < 383:
		// Adar II in a year with a single Adar.
		switch ov.AdarII {
		case 0:
			return calendar.DateRecord{}, false, nil
		case -1:
			month = 6
		case 1:
			month = 7
		}

	case month == 13 && day > 0 && size < 383:
		// Adar I in a year with a single Adar.
		if day > 30 {
			return calendar.DateRecord{}, false, nil
		}
		month = 6
		if day == 30 {
			switch ov.AdarI30 {
			case 0:
				return calendar.DateRecord{}, false, nil
			case -1:
				leapAdj = -1
			}
			// policy 1 keeps day 30 of the 29-day Adar: 1 Nisan.
		} else if ov.AdarI == 0 {
			return calendar.DateRecord{}, false, nil
		}

	case month == 6 && day > 0 && day < 31 && size > 355:
		// Sole-Adar reference in a year with two Adars.
		switch ov.AdarInLeapYear {
		case 1:
			month = 13
		case 2:
			month = 14
		default:
			return calendar.DateRecord{}, false, nil
		}

	default:
		if !calendar.ValidHebrewMonth(month, year) || !calendar.ValidHebrewDate(day, month, year) {
			return calendar.DateRecord{}, false, nil
		}
	}

	// Raw conversion, not FromHebrew: an out-of-month day kept by an
	// override (30 Cheshvan, 30 Adar I) must spill into the next month.
	jdn, _, _ := calendar.HebrewToJDN(day+leapAdj, month, year)
	return recordAt(jdn)
}

// recordAt rebuilds a record from a raw JDN, treating the edge of the
// supported date window as a silent non-occurrence rather than a fault.
func recordAt(jdn int) (calendar.DateRecord, bool, error) {
	rec, err := calendar.FromJDN(jdn)
	if err != nil {
		if errors.Is(err, calendar.ErrJDNOutOfRange) {
			return calendar.DateRecord{}, false, nil
		}
		return calendar.DateRecord{}, false, err
	}
	return rec, true, nil
}

// GregorianFixed anchors a rule to a fixed Gregorian month/day. The
// February29 override decides what happens in non-leap years.
type GregorianFixed struct {
	Month int
	Day   int
}

func (GregorianFixed) flavor() Flavor { return Gregorian }

func (a GregorianFixed) occurrence(year int, ov Overrides) (calendar.DateRecord, bool, error) {
	day := a.Day
	if a.Month == 2 && day == 29 && !calendar.GregorianLeapYear(year) {
		switch ov.February29 {
		case 0:
			return calendar.DateRecord{}, false, nil
		case -1:
			day = 28
		}
		// policy 1 keeps February 29, which spills to 1 March.
	} else if !calendar.ValidGregorianDate(day, a.Month, year) {
		return calendar.DateRecord{}, false, nil
	}

	return recordAt(calendar.GregorianToJDN(day, a.Month, year))
}

// HebrewNthWeekday anchors a rule to the nth weekday of a Hebrew month,
// e.g. the second Shabbat of Nisan.
type HebrewNthWeekday struct {
	Month   int
	Nth     int
	Weekday int
}

func (HebrewNthWeekday) flavor() Flavor { return Hebrew }

func (a HebrewNthWeekday) occurrence(year int, ov Overrides) (calendar.DateRecord, bool, error) {
	if !calendar.ValidHebrewMonth(a.Month, year) {
		return calendar.DateRecord{}, false, nil
	}
	first, err := calendar.FromHebrew(1, a.Month, year)
	if err != nil {
		return calendar.DateRecord{}, false, err
	}
	rec, ok, err := recordAt(first.JDN + (a.Nth-1)*7 + (a.Weekday - first.Weekday))
	if err != nil || !ok {
		return calendar.DateRecord{}, false, err
	}
	// A fifth weekday may not exist; the arithmetic then lands in the
	// following month.
	if a.Nth == 5 && rec.HebrewMonth != first.HebrewMonth {
		return calendar.DateRecord{}, false, nil
	}
	return rec, true, nil
}

// GregorianNthWeekday anchors a rule to the nth weekday of a Gregorian
// month, e.g. the first Monday of May.
type GregorianNthWeekday struct {
	Month   int
	Nth     int
	Weekday int
}

func (GregorianNthWeekday) flavor() Flavor { return Gregorian }

func (a GregorianNthWeekday) occurrence(year int, ov Overrides) (calendar.DateRecord, bool, error) {
	if a.Month < 1 || a.Month > 12 {
		return calendar.DateRecord{}, false, nil
	}
	first, err := calendar.FromGregorian(1, a.Month, year)
	if err != nil {
		return calendar.DateRecord{}, false, err
	}
	rec, ok, err := recordAt(first.JDN + (a.Nth-1)*7 + (a.Weekday - first.Weekday))
	if err != nil || !ok {
		return calendar.DateRecord{}, false, err
	}
	if a.Nth == 5 && rec.GregorianMonth != a.Month {
		return calendar.DateRecord{}, false, nil
	}
	return rec, true, nil
}

// Rule is one parsed custom-day definition: an anchor placing it within a
// year, year bounds in the anchor's calendar, descriptive text and the
// weekday-triggered day shifts.
type Rule struct {
	Anchor Anchor
	Symbol byte

	// StartYear and EndYear bound the commemoration in the anchor's
	// calendar; EndYear 0 leaves it open-ended.
	StartYear int
	EndYear   int

	// All four description alternates are kept; callers pick one with
	// DescriptionIndex.
	Descriptions [4]string

	// Adjustments holds the day shift to apply when the occurrence falls
	// on a given weekday, indexed by weekday-1 (0 = Sunday). Zero means
	// no shift.
	Adjustments [7]int
}

// appliesTo reports whether the rule is in force for a year of its own
// calendar.
func (r *Rule) appliesTo(year int) bool {
	if year < r.StartYear {
		return false
	}
	return r.EndYear == 0 || year <= r.EndYear
}
