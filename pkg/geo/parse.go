// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geo

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geodist/pkg/geo/geopb"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/ewkbhex"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// ParseGeometry parses a Geometry from a string which may be EWKT, WKT,
// hex encoded EWKB or GeoJSON. The format is picked from the first
// character, as PostGIS does when casting text to GEOMETRY.
func ParseGeometry(str string) (Geometry, error) {
	t, err := parseAmbiguousText(str, geopb.UnknownSRID)
	if err != nil {
		return Geometry{}, err
	}
	return MakeGeometryFromGeomT(t)
}

// ParseGeometryWithSRID is ParseGeometry, giving the objects which do not
// carry an SRID of their own the given one.
func ParseGeometryWithSRID(str string, srid geopb.SRID) (Geometry, error) {
	t, err := parseAmbiguousText(str, srid)
	if err != nil {
		return Geometry{}, err
	}
	return MakeGeometryFromGeomT(t)
}

// MustParseGeometry is ParseGeometry that panics on error.
func MustParseGeometry(str string) Geometry {
	g, err := ParseGeometry(str)
	if err != nil {
		panic(err)
	}
	return g
}

// ParseGeometryFromEWKT parses EWKT into a Geometry. defaultSRID is used
// when the text has no SRID=...; prefix.
func ParseGeometryFromEWKT(ewkt geopb.EWKT, defaultSRID geopb.SRID) (Geometry, error) {
	t, err := decodeEWKT(string(ewkt), defaultSRID)
	if err != nil {
		return Geometry{}, err
	}
	return MakeGeometryFromGeomT(t)
}

// ParseGeometryFromEWKB parses EWKB into a Geometry.
func ParseGeometryFromEWKB(b geopb.EWKB) (Geometry, error) {
	t, err := ewkb.Unmarshal(b)
	if err != nil {
		return Geometry{}, errors.Wrap(err, "error parsing EWKB")
	}
	return MakeGeometryFromGeomT(t)
}

// ParseGeometryFromWKB parses WKB into a Geometry with the given SRID.
func ParseGeometryFromWKB(b geopb.WKB, srid geopb.SRID) (Geometry, error) {
	t, err := wkb.Unmarshal(b, wkbOptions...)
	if err != nil {
		return Geometry{}, errors.Wrap(err, "error parsing WKB")
	}
	if err := adjustGeomTSRID(t, srid); err != nil {
		return Geometry{}, err
	}
	return MakeGeometryFromGeomT(t)
}

// ParseGeometryFromGeoJSON parses a GeoJSON geometry into a Geometry.
func ParseGeometryFromGeoJSON(data []byte) (Geometry, error) {
	t, err := decodeGeoJSON(data, geopb.UnknownSRID)
	if err != nil {
		return Geometry{}, err
	}
	return MakeGeometryFromGeomT(t)
}

// parseAmbiguousText parses a text as one of the formats spatial objects
// are written in, using the first character as a heuristic.
func parseAmbiguousText(str string, defaultSRID geopb.SRID) (geom.T, error) {
	str = strings.TrimSpace(str)
	if len(str) == 0 {
		return nil, errors.Newf("parsing empty string to geo type")
	}

	switch str[0] {
	case '0':
		t, err := ewkbhex.Decode(str)
		if err != nil {
			return nil, errors.Wrap(err, "error parsing EWKB hex")
		}
		if defaultSRID != geopb.UnknownSRID && t.SRID() == 0 {
			if err := adjustGeomTSRID(t, defaultSRID); err != nil {
				return nil, err
			}
		}
		return t, nil
	case '{':
		return decodeGeoJSON([]byte(str), defaultSRID)
	}
	return decodeEWKT(str, defaultSRID)
}

const sridPrefix = "SRID="
const sridPrefixLen = len(sridPrefix)

// decodeEWKT decodes WKT with an optional SRID=...; prefix.
func decodeEWKT(str string, defaultSRID geopb.SRID) (geom.T, error) {
	srid := defaultSRID
	if len(str) >= sridPrefixLen && strings.EqualFold(str[:sridPrefixLen], sridPrefix) {
		end := strings.Index(str[sridPrefixLen:], ";")
		if end == -1 {
			return nil, errors.Newf(
				"failed to find ; character with SRID declaration during EWKT decode: %q",
				str,
			)
		}
		sridInt64, err := strconv.ParseInt(str[sridPrefixLen:sridPrefixLen+end], 10, 32)
		if err != nil {
			return nil, errors.Wrap(err, "error parsing SRID for EWKT")
		}
		// An explicit SRID of 0 keeps the default.
		if sridInt64 != 0 {
			srid = geopb.SRID(sridInt64)
		}
		str = str[sridPrefixLen+end+1:]
	}

	t, err := wkt.Unmarshal(str)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing WKT")
	}
	if err := adjustGeomTSRID(t, srid); err != nil {
		return nil, err
	}
	return t, nil
}

func decodeGeoJSON(data []byte, srid geopb.SRID) (geom.T, error) {
	var t geom.T
	if err := geojson.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrap(err, "error parsing GeoJSON")
	}
	if t == nil {
		return nil, errors.Newf("invalid GeoJSON input")
	}
	if err := adjustGeomTSRID(t, srid); err != nil {
		return nil, err
	}
	return t, nil
}
