// Package dataset loads and normalizes the organization CSV datasets.
// This package has no UI dependencies and can be used by any frontend.
package dataset

// Record is one organization after normalization. Records are immutable:
// created once per loaded CSV row, never mutated, discarded on reload.
//
// Latitude and Longitude are either both set (valid finite numbers) or both
// nil. A record without coordinates is only ever rendered as part of a
// state-level aggregate, never as a point.
type Record struct {
	DatasetKey   string   `json:"dataset_key"`
	DatasetLabel string   `json:"dataset_label"`
	Name         string   `json:"name"`
	FoundingYear *int     `json:"founding_year"`
	Address      string   `json:"address"`
	State        string   `json:"state"` // 2-letter code, upper case, or empty
	City         string   `json:"city"`
	County       string   `json:"county"`
	Type         string   `json:"type"` // never empty, defaults to "Unknown"
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// HasCoordinates reports whether the record can be drawn as a point marker.
func (r Record) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Config is the static, compile-time-known metadata for one dataset:
// the ordered candidate file paths, display color, and label.
type Config struct {
	Key        string   `json:"key"`
	Label      string   `json:"label"`
	Color      string   `json:"color"`
	Candidates []string `json:"-"`
}

// Defaults returns the two organization datasets served by the application.
// Candidate order prefers the geocoded exports, falling back to the raw files.
func Defaults(asianCandidates, latinoCandidates []string) []Config {
	return []Config{
		{
			Key:        "asian",
			Label:      "Asian American Organizations",
			Color:      "#d53e4f",
			Candidates: asianCandidates,
		},
		{
			Key:        "latino",
			Label:      "Latino Organizations",
			Color:      "#3288bd",
			Candidates: latinoCandidates,
		},
	}
}
