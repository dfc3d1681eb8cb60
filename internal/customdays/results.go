package customdays

import (
	"errors"

	"github.com/baruchs/hebdate/internal/calendar"
)

// DefaultMaxResults bounds a scan's result set when the caller does not
// set a limit of their own.
const DefaultMaxResults = 1000

// ErrTruncated reports that a scan stopped at the result limit. The
// results collected up to that point are valid and returned alongside it.
var ErrTruncated = errors.New("customdays: result limit reached")

// Occurrence is one matched custom day: its resolved date plus the rule's
// symbol and the description selected by the scan's text preference.
type Occurrence struct {
	Record      calendar.DateRecord
	Symbol      byte
	Description string
}

// Results collects occurrences in discovery order, append-only during a
// scan and read-only afterward.
type Results struct {
	items []Occurrence
}

func (r *Results) append(o Occurrence, limit int) error {
	if len(r.items) >= limit {
		return ErrTruncated
	}
	r.items = append(r.items, o)
	return nil
}

// Len returns the number of collected occurrences.
func (r *Results) Len() int { return len(r.items) }

// Get returns the i-th occurrence in discovery order; i must satisfy
// 0 <= i < Len().
func (r *Results) Get(i int) Occurrence { return r.items[i] }

// All returns the collected occurrences as a slice for ranging; the slice
// shares the Results' backing storage and must not be mutated.
func (r *Results) All() []Occurrence { return r.items }
