package calendar

// The Hebrew calendar places the new year by the molad, the mean lunar
// conjunction, computed in "parts" of 1/1080 hour. A mean lunation is
// 29 days, 12 hours and 793 parts. The arithmetic below follows Amos
// Shapir's classic formulation: count whole months since the molad of
// Tishrei 3744, convert to days, then apply the dehiyot (postponement
// rules) that keep the new year off certain weekdays.
const (
	partsPerHour = 1080
	partsPerDay  = 24 * partsPerHour
	partsPerWeek = 7 * partsPerDay

	// A lunar month exceeds four weeks by 1 day, 12 hours, 793 parts.
	monthParts = partsPerDay + 12*partsPerHour + 793

	// Molad of Tishrei 3744, shifted by the six-hour day-start offset.
	molad3744 = (1+6)*partsPerHour + 779

	// Molad-zaken style postponement thresholds, in parts into the day.
	postponeThresholdWeekday3 = (9+6)*partsPerHour + 204
	postponeThresholdWeekday2 = (15+6)*partsPerHour + 589

	// JDN of the day before day 1 of the epoch count; 1 Tishrei of a year
	// lands at daysFromEpoch(year) + hebrewEpochJDN + 1.
	hebrewEpochJDN = 1715118
)

// daysFromEpoch returns the number of days from the epoch (Tishrei 3744)
// to the new year of the given Hebrew year, dehiyot applied.
func daysFromEpoch(year int) int {
	yearsFromEpoch := year - 3744

	// Leap months completed in the 19-year cycle, and the position within it.
	leapMonths := (yearsFromEpoch*7 + 1) / 19
	leapLeft := (yearsFromEpoch*7 + 1) % 19
	months := yearsFromEpoch*12 + leapMonths

	parts := months*monthParts + molad3744
	days := months*28 + parts/partsPerDay - 2

	partsLeftInWeek := parts % partsPerWeek
	partsLeftInDay := parts % partsPerDay
	weekday := partsLeftInWeek / partsPerDay

	// Molad zaken special cases: postpone by a day when the molad falls
	// late enough on a Tuesday (common year ahead) or Monday (after a
	// leap year).
	if (leapLeft < 12 && weekday == 3 && partsLeftInDay >= postponeThresholdWeekday3) ||
		(leapLeft < 7 && weekday == 2 && partsLeftInDay >= postponeThresholdWeekday2) {
		days++
		weekday++
	}

	// ADU rule: the new year never falls on Sunday, Wednesday or Friday.
	if weekday == 1 || weekday == 4 || weekday == 6 {
		days++
	}

	return days
}

// tishrei1JDN returns the JDN of 1 Tishrei of a Hebrew year.
func tishrei1JDN(year int) int {
	return daysFromEpoch(year) + hebrewEpochJDN + 1
}

// SizeOfHebrewYear returns the length of a Hebrew year in days: one of
// 353, 354, 355 (common) or 383, 384, 385 (leap).
func SizeOfHebrewYear(year int) int {
	return daysFromEpoch(year+1) - daysFromEpoch(year)
}

// HebrewLeapYear reports whether the Hebrew year has the inserted months
// Adar I and Adar II.
func HebrewLeapYear(year int) bool {
	return SizeOfHebrewYear(year) > 365
}

// HebrewToJDN converts a Hebrew date to its Julian Day Number. Months are
// numbered 1..12 Tishrei..Elul, with 6 the sole Adar of a common year and
// 13/14 Adar I/Adar II of a leap year.
//
// It also returns the JDN of 1 Tishrei of the date's year and of the next
// year; the two together give the year length and are needed repeatedly by
// callers classifying the year.
func HebrewToJDN(day, month, year int) (jdn, tishrei1, tishrei1Next int) {
	// Fold the leap months onto the Adar slot; Adar II counts as
	// thirty days past Adar I.
	if month == 13 {
		month = 6
	}
	if month == 14 {
		month = 6
		day += 30
	}

	days := daysFromEpoch(year)
	dayOfYear := (59*(month-1)+1)/2 + day

	sizeOfYear := daysFromEpoch(year+1) - days

	// Month-length irregularities: long Cheshvan, short Kislev, leap Adar.
	if sizeOfYear%10 > 4 && month > 2 {
		dayOfYear++
	}
	if sizeOfYear%10 < 4 && month > 3 {
		dayOfYear--
	}
	if sizeOfYear > 365 && month > 6 {
		dayOfYear += 30
	}

	jdn = days + dayOfYear + hebrewEpochJDN
	tishrei1 = days + hebrewEpochJDN + 1
	tishrei1Next = tishrei1 + sizeOfYear
	return jdn, tishrei1, tishrei1Next
}

// JDNToHebrew converts a Julian Day Number to a Hebrew date, returning the
// same 1 Tishrei JDNs as HebrewToJDN. It estimates the Hebrew year from
// the Gregorian year and corrects the estimate by one if it undershoots.
func JDNToHebrew(jdn int) (day, month, year, tishrei1, tishrei1Next int) {
	_, _, gregorianYear := JDNToGregorian(jdn)

	year = gregorianYear + 3760
	tishrei1 = tishrei1JDN(year)
	tishrei1Next = tishrei1JDN(year + 1)
	if tishrei1Next <= jdn {
		year++
		tishrei1 = tishrei1Next
		tishrei1Next = tishrei1JDN(year + 1)
	}

	sizeOfYear := tishrei1Next - tishrei1
	days := jdn - tishrei1 // days into the year, 0-based

	if days >= sizeOfYear-236 {
		// The last 8 months of every year span exactly 236 days.
		days -= sizeOfYear - 236
		month = days * 2 / 59
		day = days - (month*59+1)/2 + 1
		month += 4 + 1
		if sizeOfYear > 365 && month <= 6 {
			// Leap year: the trailing months follow Adar II.
			month += 8
		}
	} else {
		// The leading months vary with the year's irregularities.
		switch {
		case sizeOfYear%10 > 4 && days > 58: // long Cheshvan
			month = (days - 1) * 2 / 59
			day = days - (month*59+1)/2
		case sizeOfYear%10 < 4 && days > 87: // short Kislev
			month = (days + 1) * 2 / 59
			day = days - (month*59+1)/2 + 2
		default:
			month = days * 2 / 59
			day = days - (month*59+1)/2 + 1
		}
		month++
	}

	return day, month, year, tishrei1, tishrei1Next
}

// DaysInHebrewMonth returns the number of days in a Hebrew month of the
// given year, accounting for long Cheshvan and short Kislev. Months are
// numbered as in HebrewToJDN. Returns 0 for Adar I/II in a common year.
// Month 6 in a leap year converts as the first 29 days of Adar I, matching
// HebrewToJDN's folding.
func DaysInHebrewMonth(month, year int) int {
	size := SizeOfHebrewYear(year)
	if (month == 13 || month == 14) && size < 383 {
		return 0
	}
	switch month {
	case 1, 5, 7, 9, 11, 13:
		return 30
	case 4, 6, 8, 10, 12, 14:
		return 29
	case 2: // Cheshvan is long only in complete years
		if size%10 == 5 {
			return 30
		}
		return 29
	case 3: // Kislev is short only in deficient years
		if size%10 == 3 {
			return 29
		}
		return 30
	}
	return 0
}

// ValidHebrewDate reports whether the day/month/year triple names a day
// that exists in that Hebrew year, inside the supported year range.
func ValidHebrewDate(day, month, year int) bool {
	if year < HebrewYearMin || year > HebrewYearMax {
		return false
	}
	if month < 1 || month > 14 {
		return false
	}
	n := DaysInHebrewMonth(month, year)
	return n > 0 && day >= 1 && day <= n
}

// ValidHebrewMonth reports whether the month exists in the given Hebrew
// year (Adar I/II only in leap years).
func ValidHebrewMonth(month, year int) bool {
	if year < HebrewYearMin || year > HebrewYearMax {
		return false
	}
	if month < 1 || month > 14 {
		return false
	}
	return DaysInHebrewMonth(month, year) > 0
}
