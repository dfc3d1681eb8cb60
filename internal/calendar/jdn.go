// Package calendar provides Hebrew and Gregorian calendar calculations.
//
// All conversions go through the Julian Day Number (JDN), a single integer
// counting days from a fixed epoch. The JDN is the canonical identity of a
// civil day: no two distinct days share a value and it increases
// monotonically with real time. Everything here is pure integer arithmetic;
// no floating point appears anywhere in this package.
package calendar

// Supported year ranges. Conversions are exact inside these bounds.
const (
	HebrewYearMin = 3000
	HebrewYearMax = 10999

	GregorianYearMin = 1
	GregorianYearMax = 9999
)

// GregorianToJDN converts a proleptic Gregorian date to its Julian Day
// Number using the closed-form Fliegel–Van Flandern conversion.
//
// The algorithm is valid for any date with year > 0. Inputs are not range
// checked; callers that need validation use ValidGregorianDate first.
func GregorianToJDN(day, month, year int) int {
	return (1461*(year+4800+(month-14)/12))/4 +
		(367*(month-2-12*((month-14)/12)))/12 -
		(3*((year+4900+(month-14)/12)/100))/4 +
		day - 32075
}

// JDNToGregorian converts a Julian Day Number back to a Gregorian date.
// It is the exact inverse of GregorianToJDN for every JDN in the supported
// range.
func JDNToGregorian(jdn int) (day, month, year int) {
	l := jdn + 68569
	n := (4 * l) / 146097
	l = l - (146097*n+3)/4
	i := (4000 * (l + 1)) / 1461001
	l = l - (1461*i)/4 + 31
	j := (80 * l) / 2447
	day = l - (2447*j)/80
	l = j / 11
	month = j + 2 - 12*l
	year = 100*(n-49) + i + l
	return day, month, year
}

// weekdayOfJDN returns the day of week 1..7 (1 = Sunday) for a JDN.
func weekdayOfJDN(jdn int) int {
	return (jdn+1)%7 + 1
}

// GregorianLeapYear reports whether a Gregorian year has a February 29.
func GregorianLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInGregorianMonth returns the number of days in a Gregorian month.
func DaysInGregorianMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if GregorianLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// ValidGregorianDate reports whether the day/month/year triple names a real
// Gregorian calendar day inside the supported year range.
func ValidGregorianDate(day, month, year int) bool {
	if year < GregorianYearMin || year > GregorianYearMax {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= DaysInGregorianMonth(month, year)
}
