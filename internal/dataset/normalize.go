package dataset

// normalize.go maps raw CSV records to typed Records.
//
// Normalization is total: it never fails and never drops a row. A malformed
// row still normalizes to a Record with nulled fields. Numeric parse failures
// become nil, not zero, so an unparseable year or coordinate is simply absent.

import (
	"math"
	"strconv"
	"strings"
)

// Expected CSV column names, lowercased. The loader lowercases header keys,
// so lookups here are case-insensitive. Unrecognized columns (such as the
// geocode_source/matched_address columns the geocoder appends) are ignored,
// and missing columns normalize to empty/nil.
const (
	colName      = "name"
	colYear      = "f.year"
	colAddress   = "address"
	colState     = "states"
	colCity      = "city"
	colCounty    = "county"
	colType      = "type"
	colLatitude  = "latitude"
	colLongitude = "longitude"
)

// RawRecord is one CSV row keyed by lowercased header name.
type RawRecord map[string]string

// Normalize converts a raw CSV record into a Record for the given dataset.
//
// Policy: strings are trimmed, state codes are upper-cased, numeric parse
// failures become nil, and a blank or missing type becomes "Unknown".
// Coordinates are only kept when both latitude and longitude parse to finite
// values; a half-parsed pair is dropped entirely so nullity stays paired.
func Normalize(cfg Config, raw RawRecord) Record {
	rec := Record{
		DatasetKey:   cfg.Key,
		DatasetLabel: cfg.Label,
		Name:         clean(raw[colName]),
		Address:      clean(raw[colAddress]),
		State:        strings.ToUpper(clean(raw[colState])),
		City:         clean(raw[colCity]),
		County:       clean(raw[colCounty]),
		Type:         clean(raw[colType]),
		FoundingYear: parseYear(raw[colYear]),
	}

	if rec.Type == "" {
		rec.Type = "Unknown"
	}

	lat := parseCoordinate(raw[colLatitude])
	lon := parseCoordinate(raw[colLongitude])
	if lat != nil && lon != nil {
		rec.Latitude = lat
		rec.Longitude = lon
	}

	return rec
}

// clean trims whitespace and strips a UTF-8 BOM if present.
func clean(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.TrimSpace(s)
}

// parseYear parses a founding year, returning nil on failure.
// Accepts plain integers and integral floats ("1990.0").
func parseYear(s string) *int {
	s = clean(s)
	if s == "" {
		return nil
	}
	if y, err := strconv.Atoi(s); err == nil {
		return &y
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil
	}
	y := int(f)
	return &y
}

// parseCoordinate parses a latitude or longitude, returning nil unless the
// value is a finite number.
func parseCoordinate(s string) *float64 {
	s = clean(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
