package geo

// geojson.go builds the GeoJSON payloads consumed by the Leaflet shell.
// Coordinates follow the GeoJSON convention: [longitude, latitude].

import (
	"github.com/jaeyk/wop-organizations-map/internal/dataset"
)

// FeatureCollection is a standard GeoJSON feature collection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single GeoJSON feature with point geometry and marker
// properties.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// Geometry is the point geometry of a feature.
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [lon, lat]
}

// PointFeatures renders each row that has coordinates as a small fixed-style
// point marker. Rows without coordinates are skipped; they belong to the
// state aggregates instead.
func PointFeatures(rows []dataset.Record, cfg dataset.Config) FeatureCollection {
	features := make([]Feature, 0, len(rows))
	for _, rec := range rows {
		if !rec.HasCoordinates() {
			continue
		}
		props := map[string]any{
			"dataset": rec.DatasetKey,
			"name":    rec.Name,
			"type":    rec.Type,
			"state":   rec.State,
			"city":    rec.City,
			"color":   cfg.Color,
		}
		if rec.FoundingYear != nil {
			props["founding_year"] = *rec.FoundingYear
		}
		features = append(features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{*rec.Longitude, *rec.Latitude},
			},
			Properties: props,
		})
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}

// AggregateFeatures renders state-level counts as size-scaled circle markers
// anchored at the state's reference centroid.
func AggregateFeatures(counts []StateCount, cfg dataset.Config) FeatureCollection {
	features := make([]Feature, 0, len(counts))
	for _, sc := range counts {
		features = append(features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{sc.Centroid.Lon, sc.Centroid.Lat},
			},
			Properties: map[string]any{
				"dataset": cfg.Key,
				"state":   sc.State,
				"count":   sc.Count,
				"radius":  sc.Radius,
				"color":   cfg.Color,
			},
		})
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}
