package customdays

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/baruchs/hebdate/internal/calendar"
)

// ruleFieldCount is the number of comma-delimited fields on a rule line:
// type, symbol, two years, month, day, nth, weekday, four descriptions and
// seven weekday adjustments.
const ruleFieldCount = 19

// Characters that may never serve as a day symbol.
const reservedSymbols = "/+*~!@$'\"`"

// adjustmentSlots maps the file's adjustment field order (Friday, Shabbat,
// Sunday, then the remaining days of the week) onto the weekday-indexed
// Adjustments array (0 = Sunday).
var adjustmentSlots = [7]int{5, 6, 0, 1, 2, 3, 4}

// ParseLine parses one logical line of a custom-day file. Three outcomes:
// a rule line yields a Rule; an override assignment (NAME = value) mutates
// ov and yields (nil, nil); anything malformed yields an error the caller
// logs before moving to the next line.
//
// ParseLine performs no I/O; comment stripping and physical-line joining
// belong to the caller.
func ParseLine(line string, ov *Overrides) (*Rule, error) {
	if !strings.Contains(line, ",") {
		return nil, parseOverride(line, ov)
	}

	fields := strings.Split(line, ",")
	if len(fields) != ruleFieldCount {
		return nil, fmt.Errorf("expected %d fields, got %d", ruleFieldCount, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	dayType := fields[0]
	switch dayType {
	case "H", "G", "h", "g":
	default:
		return nil, fmt.Errorf("field 1: day type must be one of H, G, h, g; got %q", dayType)
	}

	symbol, err := parseSymbol(fields[1])
	if err != nil {
		return nil, fmt.Errorf("field 2: %w", err)
	}

	nums := make([]int, 6)
	for i := range nums {
		v, err := strconv.Atoi(fields[2+i])
		if err != nil {
			return nil, fmt.Errorf("field %d: not an integer: %q", 3+i, fields[2+i])
		}
		if v < 0 {
			return nil, fmt.Errorf("field %d: negative value %d", 3+i, v)
		}
		nums[i] = v
	}
	startYear, endYear := nums[0], nums[1]
	month, dayOfMonth := nums[2], nums[3]
	nth, weekday := nums[4], nums[5]

	r := &Rule{Symbol: symbol, StartYear: startYear, EndYear: endYear}

	flavor := Hebrew
	if dayType == "G" || dayType == "g" {
		flavor = Gregorian
	}
	if err := checkYearBounds(flavor, startYear, endYear); err != nil {
		return nil, err
	}

	switch dayType {
	case "H", "G":
		if nth != 0 || weekday != 0 {
			return nil, fmt.Errorf("fields 7-8: nth and weekday must be zero for fixed day type %s", dayType)
		}
		if dayType == "H" {
			if month < 1 || month > 14 {
				return nil, fmt.Errorf("field 5: hebrew month %d out of range 1-14", month)
			}
			if dayOfMonth < 1 || dayOfMonth > 30 {
				return nil, fmt.Errorf("field 6: day of month %d out of range 1-30", dayOfMonth)
			}
			r.Anchor = HebrewFixed{Month: month, Day: dayOfMonth}
		} else {
			if month < 1 || month > 12 {
				return nil, fmt.Errorf("field 5: gregorian month %d out of range 1-12", month)
			}
			if dayOfMonth < 1 || dayOfMonth > 31 {
				return nil, fmt.Errorf("field 6: day of month %d out of range 1-31", dayOfMonth)
			}
			r.Anchor = GregorianFixed{Month: month, Day: dayOfMonth}
		}

	case "h", "g":
		if dayOfMonth != 0 {
			return nil, fmt.Errorf("field 6: day of month must be zero for nth-weekday type %s", dayType)
		}
		if nth < 1 || nth > 5 {
			return nil, fmt.Errorf("field 7: nth %d out of range 1-5", nth)
		}
		if weekday < 1 || weekday > 7 {
			return nil, fmt.Errorf("field 8: weekday %d out of range 1-7", weekday)
		}
		if dayType == "h" {
			if month < 1 || month > 14 {
				return nil, fmt.Errorf("field 5: hebrew month %d out of range 1-14", month)
			}
			r.Anchor = HebrewNthWeekday{Month: month, Nth: nth, Weekday: weekday}
		} else {
			if month < 1 || month > 12 {
				return nil, fmt.Errorf("field 5: gregorian month %d out of range 1-12", month)
			}
			r.Anchor = GregorianNthWeekday{Month: month, Nth: nth, Weekday: weekday}
		}
	}

	// All four description alternates are parsed and kept; the text
	// preference picks between them only when a match is emitted.
	maxLen := [4]int{MaxDescriptionLong, MaxDescriptionShort, MaxDescriptionLong, MaxDescriptionShort}
	for i := 0; i < 4; i++ {
		desc := fields[8+i]
		if desc == "" {
			return nil, fmt.Errorf("field %d: empty description", 9+i)
		}
		if strings.Contains(desc, ";") {
			return nil, fmt.Errorf("field %d: semicolons are not allowed in descriptions", 9+i)
		}
		r.Descriptions[i] = truncate(desc, maxLen[i])
	}

	for i := 0; i < 7; i++ {
		v, err := strconv.Atoi(fields[12+i])
		if err != nil {
			return nil, fmt.Errorf("field %d: not an integer: %q", 13+i, fields[12+i])
		}
		if v < -9 || v > 9 {
			return nil, fmt.Errorf("field %d: adjustment %d out of range -9..9", 13+i, v)
		}
		r.Adjustments[adjustmentSlots[i]] = v
	}

	return r, nil
}

func parseSymbol(field string) (byte, error) {
	if len(field) != 1 {
		return 0, fmt.Errorf("symbol must be a single character, got %q", field)
	}
	c := field[0]
	if c < '!' || c > '~' {
		return 0, fmt.Errorf("symbol %q is not a printable ascii character", field)
	}
	if strings.IndexByte(reservedSymbols, c) >= 0 {
		return 0, fmt.Errorf("symbol %q is reserved", field)
	}
	return c, nil
}

func parseOverride(line string, ov *Overrides) error {
	name, value, found := strings.Cut(line, "=")
	if !found {
		return fmt.Errorf("neither a rule line nor an override assignment: %q", line)
	}
	name = strings.TrimSpace(name)
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("override %s: not an integer: %q", name, strings.TrimSpace(value))
	}
	return ov.Set(name, v)
}

func checkYearBounds(f Flavor, start, end int) error {
	min, max := calendar.GregorianYearMin, calendar.GregorianYearMax
	if f == Hebrew {
		min, max = calendar.HebrewYearMin, calendar.HebrewYearMax
	}
	if start < min || start > max {
		return fmt.Errorf("field 3: start year %d outside %s range %d-%d", start, f, min, max)
	}
	if end != 0 && (end < start || end > max) {
		return fmt.Errorf("field 4: end year %d invalid for start year %d", end, start)
	}
	return nil
}

// truncate cuts a description to at most max characters, counting runes so
// multi-byte Hebrew text is never split mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
