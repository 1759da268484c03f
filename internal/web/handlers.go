package web

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jaeyk/wop-organizations-map/internal/dataset"
	"github.com/jaeyk/wop-organizations-map/internal/filter"
	"github.com/jaeyk/wop-organizations-map/internal/geo"
	"github.com/jaeyk/wop-organizations-map/internal/logging"
	"github.com/jaeyk/wop-organizations-map/internal/metrics"
	"github.com/jaeyk/wop-organizations-map/internal/table"
	"github.com/jaeyk/wop-organizations-map/internal/viewstate"
)

// handleIndex renders the map and table shell.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.session(w, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, map[string]any{"Datasets": s.datasets}); err != nil {
		logging.FromContext(r.Context()).Error("render index", "error", err)
	}
}

// datasetInfo is the /api/datasets payload for one dataset.
type datasetInfo struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Color    string   `json:"color"`
	Rows     int      `json:"rows"`
	Points   int      `json:"points"`
	Unmapped int      `json:"unmapped"`
	Types    []string `json:"types"`
}

// handleDatasets returns metadata and counts for every loaded dataset.
func (s *Server) handleDatasets(w http.ResponseWriter, r *http.Request) {
	infos := make([]datasetInfo, 0, len(s.datasets))
	for _, cfg := range s.datasets {
		rows := s.data[cfg.Key]
		info := datasetInfo{
			Key:   cfg.Key,
			Label: cfg.Label,
			Color: cfg.Color,
			Rows:  len(rows),
			Types: recordTypes(rows),
		}
		for _, rec := range rows {
			if rec.HasCoordinates() {
				info.Points++
			} else {
				info.Unmapped++
			}
		}
		infos = append(infos, info)
	}
	writeJSON(w, infos)
}

// handlePoints returns the filtered point markers for one dataset as GeoJSON.
func (s *Server) handlePoints(w http.ResponseWriter, r *http.Request) {
	cfg, ok := s.datasetByKey(chi.URLParam(r, "dataset"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown dataset")
		return
	}

	_, state := s.session(w, r)
	rows := filter.Apply(s.data[cfg.Key], state.Primary)
	writeJSON(w, geo.PointFeatures(rows, cfg))
}

// handleAggregates returns the filtered state-level aggregate markers for
// one dataset as GeoJSON.
func (s *Server) handleAggregates(w http.ResponseWriter, r *http.Request) {
	cfg, ok := s.datasetByKey(chi.URLParam(r, "dataset"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown dataset")
		return
	}

	_, state := s.session(w, r)
	rows := filter.Apply(s.data[cfg.Key], state.Primary)
	writeJSON(w, geo.AggregateFeatures(geo.AggregateStates(rows), cfg))
}

// handleTable returns the doubly-filtered, cross-dataset-merged, sorted
// table rows plus summary counts. A dataset's rows are restricted to its
// selected state when one is drilled into.
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	_, state := s.session(w, r)

	var merged []dataset.Record
	for _, cfg := range s.datasets {
		rows := filter.Apply(s.data[cfg.Key], state.Primary)
		if selected := state.Selected[cfg.Key]; selected != "" {
			rows = onlyState(rows, selected)
		}
		merged = append(merged, filter.ApplyTable(rows, state.Table)...)
	}

	writeJSON(w, table.BuildView(merged, s.cfg.Table.RowCap))
}

// handleState returns the caller's current view state.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	_, state := s.session(w, r)
	writeJSON(w, state)
}

// eventRequest is the wire form of a view-state command.
type eventRequest struct {
	Type    string          `json:"type"`
	Primary *filter.Primary `json:"primary,omitempty"`
	Table   *filter.Table   `json:"table,omitempty"`
	Dataset string          `json:"dataset,omitempty"`
	State   string          `json:"state,omitempty"`
}

// handleEvents dispatches a view-state command to the session's reducer and
// returns the resulting state.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	id, state := s.session(w, r)

	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid event payload")
		return
	}

	cmd, err := req.command()
	if err != "" {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	next := viewstate.Apply(state, cmd, s.data)
	s.sessions.put(id, next)
	metrics.ViewEvents.WithLabelValues(viewstate.Type(cmd)).Inc()

	logging.FromContext(r.Context()).Debug("event applied",
		"type", viewstate.Type(cmd), "selected", next.Selected)
	writeJSON(w, next)
}

// command maps a wire event onto a reducer command. The second return value
// is a non-empty client error message on failure.
func (e eventRequest) command() (viewstate.Command, string) {
	switch e.Type {
	case "filter_changed":
		cmd := viewstate.FilterChanged{}
		if e.Primary != nil {
			cmd.Primary = *e.Primary
		}
		if e.Table != nil {
			cmd.Table = *e.Table
		}
		return cmd, ""
	case "marker_clicked":
		if e.Dataset == "" || e.State == "" {
			return nil, "marker_clicked requires dataset and state"
		}
		return viewstate.MarkerClicked{Dataset: e.Dataset, State: strings.ToUpper(e.State)}, ""
	case "selection_cleared":
		if e.Dataset == "" {
			return nil, "selection_cleared requires dataset"
		}
		return viewstate.SelectionCleared{Dataset: e.Dataset}, ""
	default:
		return nil, "unknown event type"
	}
}

// datasetByKey looks up a dataset config by its key.
func (s *Server) datasetByKey(key string) (dataset.Config, bool) {
	for _, cfg := range s.datasets {
		if cfg.Key == key {
			return cfg, true
		}
	}
	return dataset.Config{}, false
}

// onlyState keeps the rows carrying the given state code.
func onlyState(rows []dataset.Record, state string) []dataset.Record {
	out := make([]dataset.Record, 0, len(rows))
	for _, rec := range rows {
		if rec.State == state {
			out = append(out, rec)
		}
	}
	return out
}

// recordTypes returns the distinct organization types in rows, sorted.
func recordTypes(rows []dataset.Record) []string {
	seen := make(map[string]bool)
	for _, rec := range rows {
		seen[rec.Type] = true
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
