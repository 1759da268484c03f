package geo

import (
	"testing"

	"github.com/jaeyk/wop-organizations-map/internal/dataset"
)

func floatPtr(f float64) *float64 { return &f }

func TestAggregateStates_GroupsCoordinatelessRowsByState(t *testing.T) {
	rows := []dataset.Record{
		{State: "CA"},
		{State: "CA"},
		{State: "CA"},
		{State: "TX"},
		{State: ""},   // no state code: dropped, shown nowhere
		{State: "XX"}, // no centroid to anchor a marker: dropped
		{State: "CA", Latitude: floatPtr(37.8), Longitude: floatPtr(-122.2)}, // has coordinates: a point, not an aggregate
	}

	counts := AggregateStates(rows)
	if len(counts) != 2 {
		t.Fatalf("len(counts) = %d, want 2", len(counts))
	}

	// Sorted by state code
	if counts[0].State != "CA" || counts[0].Count != 3 {
		t.Errorf("counts[0] = %+v, want CA count 3", counts[0])
	}
	if counts[1].State != "TX" || counts[1].Count != 1 {
		t.Errorf("counts[1] = %+v, want TX count 1", counts[1])
	}

	if counts[0].Centroid != StateCentroids["CA"] {
		t.Errorf("CA centroid = %+v, want fixed reference centroid", counts[0].Centroid)
	}
}

func TestAggregateStates_RadiusScaling(t *testing.T) {
	rows := []dataset.Record{
		{State: "CA"}, {State: "CA"}, {State: "CA"}, {State: "CA"},
		{State: "TX"},
	}

	counts := AggregateStates(rows)

	// The max-count state gets the max radius, the min a scaled-down but
	// floored radius.
	if counts[0].Radius != MaxRadius {
		t.Errorf("CA radius = %v, want %v", counts[0].Radius, MaxRadius)
	}
	tx := counts[1]
	if tx.Radius <= MinRadius || tx.Radius >= MaxRadius {
		t.Errorf("TX radius = %v, want strictly between %v and %v", tx.Radius, MinRadius, MaxRadius)
	}
}

func TestAggregateStates_SingleStateGetsMaxRadius(t *testing.T) {
	counts := AggregateStates([]dataset.Record{{State: "OH"}})
	if len(counts) != 1 {
		t.Fatalf("len(counts) = %d, want 1", len(counts))
	}
	if counts[0].Radius != MaxRadius {
		t.Errorf("radius = %v, want %v when count equals max", counts[0].Radius, MaxRadius)
	}
}

func TestAggregateStates_Empty(t *testing.T) {
	if got := AggregateStates(nil); got != nil {
		t.Errorf("AggregateStates(nil) = %v, want nil", got)
	}
	// Only rows that cannot aggregate
	rows := []dataset.Record{{State: ""}, {State: "CA", Latitude: floatPtr(1), Longitude: floatPtr(1)}}
	if got := AggregateStates(rows); got != nil {
		t.Errorf("AggregateStates = %v, want nil", got)
	}
}

func TestScaleRadius_Bounds(t *testing.T) {
	tests := []struct {
		count, max int
		want       float64
	}{
		{1, 1, MaxRadius},
		{0, 10, MinRadius},
		{10, 0, MinRadius}, // degenerate max
	}
	for _, tt := range tests {
		if got := scaleRadius(tt.count, tt.max); got != tt.want {
			t.Errorf("scaleRadius(%d, %d) = %v, want %v", tt.count, tt.max, got, tt.want)
		}
	}
}

func TestPointFeatures_SkipsCoordinatelessRows(t *testing.T) {
	cfg := dataset.Config{Key: "asian", Color: "#d53e4f"}
	year := 1990
	rows := []dataset.Record{
		{Name: "Org A", State: "CA", FoundingYear: &year, Latitude: floatPtr(37.8), Longitude: floatPtr(-122.2)},
		{Name: "Org B", State: "PA"}, // aggregate-only
	}

	fc := PointFeatures(rows, cfg)
	if fc.Type != "FeatureCollection" {
		t.Errorf("Type = %q, want FeatureCollection", fc.Type)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("len(Features) = %d, want 1 (coordinate-less rows are never points)", len(fc.Features))
	}

	f := fc.Features[0]
	if f.Geometry.Type != "Point" {
		t.Errorf("Geometry.Type = %q, want Point", f.Geometry.Type)
	}
	// GeoJSON convention: [lon, lat]
	if f.Geometry.Coordinates[0] != -122.2 || f.Geometry.Coordinates[1] != 37.8 {
		t.Errorf("Coordinates = %v, want [-122.2 37.8]", f.Geometry.Coordinates)
	}
	if f.Properties["color"] != "#d53e4f" {
		t.Errorf("color = %v, want dataset color", f.Properties["color"])
	}
	if f.Properties["founding_year"] != 1990 {
		t.Errorf("founding_year = %v, want 1990", f.Properties["founding_year"])
	}
}

func TestAggregateFeatures(t *testing.T) {
	cfg := dataset.Config{Key: "latino", Color: "#3288bd"}
	counts := []StateCount{
		{State: "TX", Count: 4, Centroid: StateCentroids["TX"], Radius: 30},
	}

	fc := AggregateFeatures(counts, cfg)
	if len(fc.Features) != 1 {
		t.Fatalf("len(Features) = %d, want 1", len(fc.Features))
	}
	f := fc.Features[0]
	if f.Properties["state"] != "TX" || f.Properties["count"] != 4 {
		t.Errorf("properties = %v, want state TX count 4", f.Properties)
	}
	if f.Geometry.Coordinates[0] != StateCentroids["TX"].Lon {
		t.Errorf("Coordinates[0] = %v, want centroid longitude", f.Geometry.Coordinates[0])
	}
}

func TestStateCentroids_CoverContinentalStates(t *testing.T) {
	// Spot-check the table is populated and in range.
	for code, c := range StateCentroids {
		if len(code) != 2 {
			t.Errorf("state code %q is not 2 letters", code)
		}
		if c.Lat < 17 || c.Lat > 72 {
			t.Errorf("%s latitude %v out of range", code, c.Lat)
		}
		if c.Lon > -65 || c.Lon < -180 {
			t.Errorf("%s longitude %v out of range", code, c.Lon)
		}
	}
	if len(StateCentroids) < 50 {
		t.Errorf("len(StateCentroids) = %d, want at least 50", len(StateCentroids))
	}
}
