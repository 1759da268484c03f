// Package table builds the merged, sorted tabular view of the filtered
// datasets.
package table

import (
	"sort"
	"strings"

	"github.com/jaeyk/wop-organizations-map/internal/dataset"
)

// Summary reports the match counts shown next to the table. Total is always
// the true match count even when a row cap truncates Rows.
type Summary struct {
	Total      int            `json:"total"`
	Shown      int            `json:"shown"`
	PerDataset map[string]int `json:"per_dataset"`
}

// View is the table payload: the (possibly capped) sorted rows plus counts.
type View struct {
	Rows    []dataset.Record `json:"rows"`
	Summary Summary          `json:"summary"`
}

// Merge concatenates per-dataset row sets and sorts the result.
func Merge(rowSets ...[]dataset.Record) []dataset.Record {
	var merged []dataset.Record
	for _, rows := range rowSets {
		merged = append(merged, rows...)
	}
	Sort(merged)
	return merged
}

// Sort orders rows by (dataset key, founding year ascending with absent
// years last, name ascending). The sort is stable.
func Sort(rows []dataset.Record) {
	sort.SliceStable(rows, func(i, j int) bool {
		return Compare(rows[i], rows[j]) < 0
	})
}

// Compare is the table's total ordering. It returns a negative value when a
// sorts before b, positive when after, and zero when the sort keys are equal.
func Compare(a, b dataset.Record) int {
	if c := strings.Compare(a.DatasetKey, b.DatasetKey); c != 0 {
		return c
	}
	if c := compareYears(a.FoundingYear, b.FoundingYear); c != 0 {
		return c
	}
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}

// compareYears orders founding years ascending, with absent years after all
// present ones.
func compareYears(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

// BuildView sorts rows and assembles the table payload. A positive rowCap
// truncates the returned rows while the summary keeps the true totals;
// rowCap <= 0 returns the full set.
func BuildView(rows []dataset.Record, rowCap int) View {
	Sort(rows)

	perDataset := make(map[string]int)
	for _, rec := range rows {
		perDataset[rec.DatasetKey]++
	}

	shown := rows
	if rowCap > 0 && len(rows) > rowCap {
		shown = rows[:rowCap]
	}

	return View{
		Rows: shown,
		Summary: Summary{
			Total:      len(rows),
			Shown:      len(shown),
			PerDataset: perDataset,
		},
	}
}
