package calendar

import (
	"errors"
	"fmt"
)

// Errors returned by the record constructors.
var (
	ErrGregorianOutOfRange = errors.New("calendar: gregorian date out of range")
	ErrHebrewOutOfRange    = errors.New("calendar: hebrew date out of range")
	ErrJDNOutOfRange       = errors.New("calendar: julian day number out of range")
)

// DateRecord is a fully resolved calendar date: one Julian day number with
// its Gregorian and Hebrew readings plus the derived Hebrew-year fields.
// Construct records through FromGregorian, FromHebrew or FromJDN; a
// zero-value DateRecord is not a valid date.
type DateRecord struct {
	JDN int

	GregorianDay   int
	GregorianMonth int
	GregorianYear  int

	HebrewDay   int
	HebrewMonth int
	HebrewYear  int

	// Weekday of this date, 1 = Sunday .. 7 = Saturday.
	Weekday int

	// SizeOfYear is the length in days of the Hebrew year holding this
	// date, NewYearWeekday the weekday of its 1 Tishrei, and YearType
	// the canonical type 1..14 derived from the two.
	SizeOfYear     int
	NewYearWeekday int
	YearType       int

	// DayOfYear and WeekOfYear count from 1 Tishrei, both 1-based.
	DayOfYear  int
	WeekOfYear int
}

// FromGregorian builds the record for a Gregorian calendar date.
func FromGregorian(day, month, year int) (DateRecord, error) {
	if !ValidGregorianDate(day, month, year) {
		return DateRecord{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrGregorianOutOfRange, year, month, day)
	}
	return fromJDN(GregorianToJDN(day, month, year))
}

// FromHebrew builds the record for a Hebrew calendar date. Months are
// numbered 1..12 Tishrei..Elul with 6 the sole Adar of a common year, and
// 13/14 Adar I / Adar II in leap years.
func FromHebrew(day, month, year int) (DateRecord, error) {
	if !ValidHebrewDate(day, month, year) {
		return DateRecord{}, fmt.Errorf("%w: day %d month %d year %d", ErrHebrewOutOfRange, day, month, year)
	}
	jdn, tishrei1, tishrei1Next := HebrewToJDN(day, month, year)
	return fromParts(jdn, day, month, year, tishrei1, tishrei1Next)
}

// FromJDN builds the record for a Julian day number. The JDN must fall
// where the supported Hebrew and Gregorian year ranges overlap so both
// readings resolve.
func FromJDN(jdn int) (DateRecord, error) {
	if jdn < supportedFirstJDN || jdn > supportedLastJDN {
		return DateRecord{}, fmt.Errorf("%w: %d", ErrJDNOutOfRange, jdn)
	}
	return fromJDN(jdn)
}

// Supported JDN window: 1 January 1 CE (Hebrew year 3000 starts earlier)
// through the eve of 1 Tishrei 11000 (well before Gregorian 9999).
var (
	supportedFirstJDN = GregorianToJDN(1, 1, GregorianYearMin)
	supportedLastJDN  = tishrei1JDN(HebrewYearMax+1) - 1
)

func fromJDN(jdn int) (DateRecord, error) {
	day, month, year, tishrei1, tishrei1Next := JDNToHebrew(jdn)
	return fromParts(jdn, day, month, year, tishrei1, tishrei1Next)
}

func fromParts(jdn, hebrewDay, hebrewMonth, hebrewYear, tishrei1, tishrei1Next int) (DateRecord, error) {
	r := DateRecord{
		JDN:            jdn,
		HebrewDay:      hebrewDay,
		HebrewMonth:    hebrewMonth,
		HebrewYear:     hebrewYear,
		Weekday:        weekdayOfJDN(jdn),
		SizeOfYear:     tishrei1Next - tishrei1,
		NewYearWeekday: weekdayOfJDN(tishrei1),
		DayOfYear:      jdn - tishrei1 + 1,
	}
	r.GregorianDay, r.GregorianMonth, r.GregorianYear = JDNToGregorian(jdn)
	r.WeekOfYear = (r.DayOfYear-1+(r.NewYearWeekday-1))/7 + 1

	yearType, err := ClassifyYearType(r.SizeOfYear, r.NewYearWeekday)
	if err != nil {
		return DateRecord{}, fmt.Errorf("resolving jdn %d: %w", jdn, err)
	}
	r.YearType = yearType
	return r, nil
}
