package dataset

import (
	"testing"
)

var testCfg = Config{Key: "asian", Label: "Asian American Organizations", Color: "#d53e4f"}

func TestNormalize_FullRow(t *testing.T) {
	raw := RawRecord{
		"name":      "  Example Advocacy Network ",
		"f.year":    "1992",
		"address":   "12 Main St, Oakland, CA",
		"states":    "ca",
		"city":      " Oakland ",
		"county":    "Alameda",
		"type":      "Advocacy",
		"latitude":  "37.8",
		"longitude": "-122.27",
	}

	rec := Normalize(testCfg, raw)

	if rec.DatasetKey != "asian" {
		t.Errorf("DatasetKey = %q, want %q", rec.DatasetKey, "asian")
	}
	if rec.DatasetLabel != "Asian American Organizations" {
		t.Errorf("DatasetLabel = %q, want %q", rec.DatasetLabel, "Asian American Organizations")
	}
	if rec.Name != "Example Advocacy Network" {
		t.Errorf("Name = %q, want trimmed name", rec.Name)
	}
	if rec.FoundingYear == nil || *rec.FoundingYear != 1992 {
		t.Errorf("FoundingYear = %v, want 1992", rec.FoundingYear)
	}
	if rec.State != "CA" {
		t.Errorf("State = %q, want %q (upper-cased)", rec.State, "CA")
	}
	if rec.City != "Oakland" {
		t.Errorf("City = %q, want %q", rec.City, "Oakland")
	}
	if rec.Type != "Advocacy" {
		t.Errorf("Type = %q, want %q", rec.Type, "Advocacy")
	}
	if !rec.HasCoordinates() {
		t.Fatal("HasCoordinates() = false, want true")
	}
	if *rec.Latitude != 37.8 || *rec.Longitude != -122.27 {
		t.Errorf("coordinates = (%v, %v), want (37.8, -122.27)", *rec.Latitude, *rec.Longitude)
	}
}

func TestNormalize_IsTotal(t *testing.T) {
	// Normalization never fails: malformed rows become records with nulled
	// fields rather than being dropped.
	tests := []struct {
		name string
		raw  RawRecord
	}{
		{"empty record", RawRecord{}},
		{"nil record", nil},
		{"garbage everywhere", RawRecord{
			"name": "", "f.year": "not-a-year", "states": "  ",
			"latitude": "north", "longitude": "west", "type": "",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Normalize(testCfg, tt.raw)

			if rec.DatasetLabel == "" {
				t.Error("DatasetLabel is empty, want dataset label carried on every record")
			}
			if rec.Type != "Unknown" {
				t.Errorf("Type = %q, want %q fallback", rec.Type, "Unknown")
			}
			if rec.FoundingYear != nil {
				t.Errorf("FoundingYear = %v, want nil", rec.FoundingYear)
			}
			if rec.Latitude != nil || rec.Longitude != nil {
				t.Error("coordinates should be nil for unparseable input")
			}
		})
	}
}

func TestNormalize_CoordinateNullityIsPaired(t *testing.T) {
	tests := []struct {
		name       string
		lat, lon   string
		wantCoords bool
	}{
		{"both valid", "40.1", "-75.2", true},
		{"longitude garbage", "40.1", "abc", false},
		{"latitude garbage", "abc", "-75.2", false},
		{"latitude missing", "", "-75.2", false},
		{"longitude missing", "40.1", "", false},
		{"both missing", "", "", false},
		{"latitude infinite", "+Inf", "-75.2", false},
		{"longitude NaN", "40.1", "NaN", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Normalize(testCfg, RawRecord{"latitude": tt.lat, "longitude": tt.lon})

			// Never one present and the other absent.
			if (rec.Latitude == nil) != (rec.Longitude == nil) {
				t.Fatalf("unpaired nullity: lat=%v lon=%v", rec.Latitude, rec.Longitude)
			}
			if rec.HasCoordinates() != tt.wantCoords {
				t.Errorf("HasCoordinates() = %v, want %v", rec.HasCoordinates(), tt.wantCoords)
			}
		})
	}
}

func TestNormalize_HalfValidPairKeepsNeither(t *testing.T) {
	// latitude="40.1", longitude="abc" normalizes to a coordinate-less record.
	rec := Normalize(testCfg, RawRecord{"states": "pa", "latitude": "40.1", "longitude": "abc"})

	if rec.Latitude != nil {
		t.Errorf("Latitude = %v, want nil when longitude fails to parse", *rec.Latitude)
	}
	if rec.Longitude != nil {
		t.Error("Longitude should be nil")
	}
	if rec.State != "PA" {
		t.Errorf("State = %q, want %q so the row still aggregates", rec.State, "PA")
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		input string
		want  *int
	}{
		{"1990", intPtr(1990)},
		{" 1990 ", intPtr(1990)},
		{"1990.0", intPtr(1990)},
		{"", nil},
		{"unknown", nil},
		{"1990.5", nil},
		{"NaN", nil},
	}

	for _, tt := range tests {
		got := parseYear(tt.input)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("parseYear(%q) = %d, want nil", tt.input, *got)
		case tt.want != nil && got == nil:
			t.Errorf("parseYear(%q) = nil, want %d", tt.input, *tt.want)
		case tt.want != nil && got != nil && *got != *tt.want:
			t.Errorf("parseYear(%q) = %d, want %d", tt.input, *got, *tt.want)
		}
	}
}

func intPtr(i int) *int { return &i }
