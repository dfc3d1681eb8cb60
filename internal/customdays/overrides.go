package customdays

import "fmt"

// Overrides are the named knobs deciding how a rule referencing a day that
// does not exist in every calendar year is handled: 0 drops the occurrence
// for that year, 1 moves it forward, -1 moves it back (AdarInLeapYear
// instead picks which Adar, 1 or 2).
//
// One Overrides value belongs to one scan. Assignments read from the rule
// stream mutate it in file order and affect only the rules that follow.
type Overrides struct {
	Cheshvan30     int
	Kislev30       int
	February29     int
	AdarI          int
	AdarI30        int
	AdarII         int
	AdarInLeapYear int
}

// DefaultOverrides returns the seed values every scan starts from.
func DefaultOverrides() Overrides {
	return Overrides{
		Cheshvan30:     1,
		Kislev30:       1,
		February29:     1,
		AdarI:          0,
		AdarI30:        1,
		AdarII:         -1,
		AdarInLeapYear: 2,
	}
}

// overrideKeys maps assignment-line names to setters with their legal
// ranges.
var overrideKeys = map[string]func(o *Overrides, v int) error{
	"CHESHVAN_30":       func(o *Overrides, v int) error { return setSigned(&o.Cheshvan30, "CHESHVAN_30", v) },
	"KISLEV_30":         func(o *Overrides, v int) error { return setSigned(&o.Kislev30, "KISLEV_30", v) },
	"FEBRUARY_29":       func(o *Overrides, v int) error { return setSigned(&o.February29, "FEBRUARY_29", v) },
	"ADAR_I_30":         func(o *Overrides, v int) error { return setSigned(&o.AdarI30, "ADAR_I_30", v) },
	"ADAR_II":           func(o *Overrides, v int) error { return setSigned(&o.AdarII, "ADAR_II", v) },
	"ADAR_I": func(o *Overrides, v int) error {
		if v != 0 && v != 1 {
			return fmt.Errorf("ADAR_I must be 0 or 1, got %d", v)
		}
		o.AdarI = v
		return nil
	},
	"ADAR_IN_LEAP_YEAR": func(o *Overrides, v int) error {
		if v != 1 && v != 2 {
			return fmt.Errorf("ADAR_IN_LEAP_YEAR must be 1 or 2, got %d", v)
		}
		o.AdarInLeapYear = v
		return nil
	},
}

func setSigned(field *int, name string, v int) error {
	if v < -1 || v > 1 {
		return fmt.Errorf("%s must be -1, 0 or 1, got %d", name, v)
	}
	*field = v
	return nil
}

// Set assigns a named override, validating both the name and the value's
// legal range.
func (o *Overrides) Set(name string, value int) error {
	set, ok := overrideKeys[name]
	if !ok {
		return fmt.Errorf("unknown override %q", name)
	}
	return set(o, value)
}
