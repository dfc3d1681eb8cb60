package calendar

import (
	"errors"
	"fmt"
)

// ErrImpossibleYearType is returned when a (year size, new-year weekday)
// pair matches none of the 14 legal Hebrew year types. The kernel never
// produces such a pair, so seeing this error means an internal arithmetic
// fault, not bad user input; callers must escalate it rather than treat
// the year as unmatched.
var ErrImpossibleYearType = errors.New("calendar: impossible year size / new-year weekday combination")

// yearTypeKey identifies a Hebrew year type by its length in days and the
// weekday (1 = Sunday) of 1 Tishrei.
type yearTypeKey struct {
	size    int
	weekday int
}

// The 14 canonical year types (keviyot). The dehiyot admit no other
// combination: a common year of 353/355 days or any leap year of 383/385
// days starts Monday, Thursday or Saturday, a 354-day year Tuesday or
// Thursday, a 384-day year only Tuesday.
var yearTypes = map[yearTypeKey]int{
	{353, 2}: 1,
	{353, 7}: 2,
	{354, 3}: 3,
	{354, 5}: 4,
	{355, 2}: 5,
	{355, 5}: 6,
	{355, 7}: 7,
	{383, 2}: 8,
	{383, 5}: 9,
	{383, 7}: 10,
	{384, 3}: 11,
	{385, 2}: 12,
	{385, 5}: 13,
	{385, 7}: 14,
}

// ClassifyYearType returns the canonical year type (1..14) for a Hebrew
// year's size and new-year weekday. Any combination outside the 14 legal
// ones yields ErrImpossibleYearType.
func ClassifyYearType(sizeOfYear, newYearWeekday int) (int, error) {
	t, ok := yearTypes[yearTypeKey{sizeOfYear, newYearWeekday}]
	if !ok {
		return 0, fmt.Errorf("%w: size %d, weekday %d", ErrImpossibleYearType, sizeOfYear, newYearWeekday)
	}
	return t, nil
}
