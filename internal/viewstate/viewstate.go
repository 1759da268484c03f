// Package viewstate models the per-session UI state as an explicit value
// plus a reducer over a small command set, so selection and filter behavior
// is unit-testable without any browser involved.
//
// State is mutated only by Apply, which returns a new value; the stored
// state is never aliased by callers.
package viewstate

import (
	"github.com/jaeyk/wop-organizations-map/internal/dataset"
	"github.com/jaeyk/wop-organizations-map/internal/filter"
)

// State is the whole view state for one session: the two filter stages and,
// per dataset, the state code currently drilled into (absent = none).
type State struct {
	Primary  filter.Primary    `json:"primary"`
	Table    filter.Table      `json:"table"`
	Selected map[string]string `json:"selected"`
}

// New returns an empty view state: no filters, no selections.
func New() State {
	return State{Selected: map[string]string{}}
}

// Command is a view-state mutation. The concrete types below enumerate
// every way the UI can change the state.
type Command interface {
	commandType() string
}

// FilterChanged replaces both filter stages.
type FilterChanged struct {
	Primary filter.Primary
	Table   filter.Table
}

// MarkerClicked selects a state for one dataset, from either a point marker
// or a state aggregate marker.
type MarkerClicked struct {
	Dataset string
	State   string
}

// SelectionCleared drops the selection for one dataset.
type SelectionCleared struct {
	Dataset string
}

func (FilterChanged) commandType() string    { return "filter_changed" }
func (MarkerClicked) commandType() string    { return "marker_clicked" }
func (SelectionCleared) commandType() string { return "selection_cleared" }

// Type returns the wire name of a command, used for metrics and logging.
func Type(cmd Command) string {
	if cmd == nil {
		return "none"
	}
	return cmd.commandType()
}

// Apply reduces a command onto a state and returns the resulting state.
// rowsByDataset holds the full (unfiltered) datasets; it is needed to clear
// selections that no longer match any row under the new filters.
func Apply(s State, cmd Command, rowsByDataset map[string][]dataset.Record) State {
	next := s
	next.Selected = make(map[string]string, len(s.Selected))
	for k, v := range s.Selected {
		next.Selected[k] = v
	}

	switch c := cmd.(type) {
	case FilterChanged:
		next.Primary = c.Primary
		next.Table = c.Table
		reconcileSelections(&next, rowsByDataset)

	case MarkerClicked:
		if c.Dataset == "" || c.State == "" {
			return next
		}
		if _, ok := rowsByDataset[c.Dataset]; !ok {
			return next
		}
		next.Selected[c.Dataset] = c.State

	case SelectionCleared:
		delete(next.Selected, c.Dataset)
	}

	return next
}

// reconcileSelections clears any selection whose state no longer appears in
// that dataset's rows under the current primary filter.
func reconcileSelections(s *State, rowsByDataset map[string][]dataset.Record) {
	for key, state := range s.Selected {
		if !statePresent(rowsByDataset[key], s.Primary, state) {
			delete(s.Selected, key)
		}
	}
}

// statePresent reports whether any filtered row carries the given state code.
func statePresent(rows []dataset.Record, p filter.Primary, state string) bool {
	for _, rec := range rows {
		if rec.State == state && p.Match(rec) {
			return true
		}
	}
	return false
}
