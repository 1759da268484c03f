// Package filter implements the pure predicates applied to organization
// records. Filters compose by logical AND; every predicate is side-effect
// free, so application order does not affect the result and applying the
// same filter state twice yields the same row set as applying it once.
package filter

import (
	"strconv"
	"strings"

	"github.com/jaeyk/wop-organizations-map/internal/dataset"
)

// YearOp is a comparison operator for founding-year filters.
type YearOp string

const (
	YearEq YearOp = "eq"
	YearGt YearOp = "gt"
	YearLt YearOp = "lt"
	YearLe YearOp = "le"
	YearGe YearOp = "ge"
)

// YearFilter compares founding years against a user-supplied threshold.
// The threshold is kept as raw input: a non-numeric or empty value means
// "no constraint" and every row passes.
type YearFilter struct {
	Op    YearOp `json:"op"`
	Value string `json:"value"`
}

// Match reports whether a founding year passes the filter. A record with no
// founding year fails any active year comparison.
func (f YearFilter) Match(year *int) bool {
	threshold, ok := f.threshold()
	if !ok {
		return true
	}
	if year == nil {
		return false
	}
	switch f.Op {
	case YearGt:
		return *year > threshold
	case YearLt:
		return *year < threshold
	case YearLe:
		return *year <= threshold
	case YearGe:
		return *year >= threshold
	case YearEq, "":
		return *year == threshold
	default:
		return true
	}
}

// threshold parses the raw value, reporting false when no constraint applies.
func (f YearFilter) threshold() (int, bool) {
	v := strings.TrimSpace(f.Value)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Primary is the first filter stage, driving both the map and the table:
// organization type, free-text name search, and a year comparison.
type Primary struct {
	// Type matches the record type exactly; "" or "all" disables it.
	Type string `json:"type"`

	// Search is a case-insensitive substring match on the organization name.
	Search string `json:"search"`

	Year YearFilter `json:"year"`
}

// Match reports whether a record passes all primary predicates.
func (p Primary) Match(rec dataset.Record) bool {
	if t := strings.TrimSpace(p.Type); t != "" && !strings.EqualFold(t, "all") {
		if !strings.EqualFold(rec.Type, t) {
			return false
		}
	}
	if q := strings.TrimSpace(p.Search); q != "" {
		if !strings.Contains(strings.ToLower(rec.Name), strings.ToLower(q)) {
			return false
		}
	}
	return p.Year.Match(rec.FoundingYear)
}

// Apply returns the records passing the primary stage. The input slice is
// never mutated.
func Apply(rows []dataset.Record, p Primary) []dataset.Record {
	out := make([]dataset.Record, 0, len(rows))
	for _, rec := range rows {
		if p.Match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Table is the second, independent filter stage used only by the tabular
// view: per-column filters plus a second year comparison that may differ
// from the primary one.
type Table struct {
	// Dataset matches the dataset label exactly; "" or "all" disables it.
	Dataset string `json:"dataset"`

	// Name, Type, City, and County are case-insensitive substring matches.
	Name   string `json:"name"`
	Type   string `json:"type"`
	City   string `json:"city"`
	County string `json:"county"`

	// State matches the 2-letter state code exactly, case-insensitively.
	State string `json:"state"`

	Year YearFilter `json:"year"`
}

// Match reports whether a record passes all table-stage predicates.
func (t Table) Match(rec dataset.Record) bool {
	if d := strings.TrimSpace(t.Dataset); d != "" && !strings.EqualFold(d, "all") {
		if !strings.EqualFold(rec.DatasetLabel, d) {
			return false
		}
	}
	if !containsFold(rec.Name, t.Name) {
		return false
	}
	if !containsFold(rec.Type, t.Type) {
		return false
	}
	if !containsFold(rec.City, t.City) {
		return false
	}
	if !containsFold(rec.County, t.County) {
		return false
	}
	if s := strings.TrimSpace(t.State); s != "" {
		if !strings.EqualFold(rec.State, s) {
			return false
		}
	}
	return t.Year.Match(rec.FoundingYear)
}

// ApplyTable returns the records passing the table stage.
func ApplyTable(rows []dataset.Record, t Table) []dataset.Record {
	out := make([]dataset.Record, 0, len(rows))
	for _, rec := range rows {
		if t.Match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// containsFold is a case-insensitive substring match; an empty needle
// matches everything.
func containsFold(haystack, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
