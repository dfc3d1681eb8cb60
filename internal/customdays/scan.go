// Package customdays parses line-oriented custom-day rule files and
// resolves each rule against a queried day, month or year interval in
// either the Hebrew or the Gregorian calendar.
//
// A rule file mixes three kinds of lines: comments and blanks, override
// assignments (NAME = value) that steer how days absent from some years
// are handled, and nineteen-field rule definitions. Overrides apply to
// the rules that follow them, so a single sequential scan processes the
// file; each scan owns its Overrides, its Results and its reader, and
// nothing is shared between scans.
package customdays

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ScanOptions steer one scan of a rule file.
type ScanOptions struct {
	// ShortForm and HebrewText pick which of each rule's four
	// description alternates appears in the results.
	ShortForm  bool
	HebrewText bool

	// MaxResults caps the result set; zero means DefaultMaxResults.
	MaxResults int

	// Logger receives line-level parse warnings; nil uses slog.Default.
	Logger *slog.Logger
}

// Scan reads a rule file and collects every custom day matching the query
// interval. Malformed lines are logged and skipped; a full result set
// stops the scan and returns the partial Results with ErrTruncated. The
// caller owns the reader and closes it.
func Scan(src io.Reader, q Query, opts ScanOptions) (*Results, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	limit := opts.MaxResults
	if limit <= 0 {
		limit = DefaultMaxResults
	}

	start, err := q.RangeStart()
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	ov := DefaultOverrides()
	results := &Results{}
	descIndex := DescriptionIndex(opts.ShortForm, opts.HebrewText)

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	logical := ""
	logicalStart := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()

		if logical == "" {
			trimmed := strings.TrimSpace(raw)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
			logicalStart = lineNo
		}

		// A trailing backslash joins the next physical line.
		if tail := strings.TrimRight(raw, " \t"); strings.HasSuffix(tail, "\\") {
			logical += strings.TrimSuffix(tail, "\\")
			continue
		}
		line := logical + raw
		logical = ""

		rule, err := ParseLine(line, &ov)
		if err != nil {
			log.Warn("skipping malformed custom day line",
				"line", logicalStart, "error", err)
			continue
		}
		if rule == nil {
			continue // override assignment, already applied
		}

		rec, ok, err := Resolve(rule, q, ov, start)
		if err != nil {
			return results, fmt.Errorf("custom day at line %d: %w", logicalStart, err)
		}
		if !ok {
			continue
		}

		occ := Occurrence{
			Record:      rec,
			Symbol:      rule.Symbol,
			Description: rule.Descriptions[descIndex],
		}
		if err := results.append(occ, limit); err != nil {
			log.Warn("custom day result limit reached, returning partial results",
				"line", logicalStart, "limit", limit)
			return results, err
		}
	}
	if err := scanner.Err(); err != nil {
		return results, fmt.Errorf("reading custom days: %w", err)
	}
	return results, nil
}
