// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geo

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geodist/pkg/geo/geopb"
	"github.com/pierrre/geohash"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/ewkbhex"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// DefaultGeoJSONDecimalDigits is the default number of digits coordinates in GeoJSON.
const DefaultGeoJSONDecimalDigits = 9

// FullPrecisionDecimalDigits prints coordinates with as many digits as
// needed to round trip them.
const FullPrecisionDecimalDigits = -1

// SpatialObjectToWKT transforms a given SpatialObject to WKT.
func SpatialObjectToWKT(so geopb.SpatialObject, maxDecimalDigits int) (geopb.WKT, error) {
	t, err := ewkb.Unmarshal(so.EWKB)
	if err != nil {
		return "", err
	}
	ret, err := wkt.Marshal(t, wkt.EncodeOptionWithMaxDecimalDigits(maxDecimalDigits))
	return geopb.WKT(ret), err
}

// SpatialObjectToEWKT transforms a given SpatialObject to EWKT.
func SpatialObjectToEWKT(so geopb.SpatialObject, maxDecimalDigits int) (geopb.EWKT, error) {
	ret, err := SpatialObjectToWKT(so, maxDecimalDigits)
	if err != nil {
		return "", err
	}
	if so.SRID != geopb.UnknownSRID {
		return geopb.EWKT(fmt.Sprintf("SRID=%d;%s", so.SRID, ret)), nil
	}
	return geopb.EWKT(ret), nil
}

// SpatialObjectToWKB transforms a given SpatialObject to WKB.
func SpatialObjectToWKB(so geopb.SpatialObject, byteOrder binary.ByteOrder) (geopb.WKB, error) {
	t, err := ewkb.Unmarshal(so.EWKB)
	if err != nil {
		return nil, err
	}
	ret, err := wkb.Marshal(t, byteOrder, wkbOptions...)
	return geopb.WKB(ret), err
}

// SpatialObjectToEWKBHex transforms a given SpatialObject to upper case hex
// encoded EWKB.
func SpatialObjectToEWKBHex(so geopb.SpatialObject) (string, error) {
	t, err := ewkb.Unmarshal(so.EWKB)
	if err != nil {
		return "", err
	}
	ret, err := ewkbhex.Encode(t, DefaultEWKBEncodingFormat)
	return strings.ToUpper(ret), err
}

// SpatialObjectToGeoJSONFlag maps to the ST_AsGeoJSON flags for PostGIS.
type SpatialObjectToGeoJSONFlag int

// These should be kept with ST_AsGeoJSON in PostGIS.
// 0: means no option
// 1: GeoJSON BBOX
// 2: GeoJSON Short CRS (e.g EPSG:4326)
const (
	SpatialObjectToGeoJSONFlagIncludeBBox SpatialObjectToGeoJSONFlag = 1 << (iota)
	SpatialObjectToGeoJSONFlagShortCRS

	SpatialObjectToGeoJSONFlagZero = 0
)

// SpatialObjectToGeoJSON transforms a given SpatialObject to GeoJSON.
func SpatialObjectToGeoJSON(
	so geopb.SpatialObject, maxDecimalDigits int, flag SpatialObjectToGeoJSONFlag,
) ([]byte, error) {
	t, err := ewkb.Unmarshal(so.EWKB)
	if err != nil {
		return nil, err
	}
	options := []geojson.EncodeGeometryOption{
		geojson.EncodeGeometryWithMaxDecimalDigits(maxDecimalDigits),
	}
	// Empty objects have no bounding box to print.
	if flag&SpatialObjectToGeoJSONFlagIncludeBBox != 0 && so.BoundingBox != nil {
		options = append(options, geojson.EncodeGeometryWithBBox())
	}
	if flag&SpatialObjectToGeoJSONFlagShortCRS != 0 && so.SRID != geopb.UnknownSRID {
		options = append(options, geojson.EncodeGeometryWithCRS(&geojson.CRS{
			Type: "name",
			Properties: map[string]interface{}{
				"name": fmt.Sprintf("EPSG:%d", so.SRID),
			},
		}))
	}
	return geojson.Marshal(t, options...)
}

// GeoHashAutoPrecision means to calculate the precision of SpatialObjectToGeoHash
// based on input, up to 32 characters.
const GeoHashAutoPrecision = 0

// GeoHashMaxPrecision is the maximum precision for GeoHashes.
// 20 is picked as doubles have 51 decimals of precision, and each base32 position
// can contain 5 bits of data. As we have two points, we use floor((2 * 51) / 5) = 20.
const GeoHashMaxPrecision = 20

// SpatialObjectToGeoHash returns the GeoHash of the center of the bounding
// box of a SpatialObject whose coordinates are longitudes and latitudes.
func SpatialObjectToGeoHash(so geopb.SpatialObject, p int) (string, error) {
	if so.BoundingBox == nil {
		return "", nil
	}
	bbox := so.BoundingBox
	if bbox.LoX < -180 || bbox.HiX > 180 || bbox.LoY < -90 || bbox.HiY > 90 {
		return "", errors.Newf(
			"object has bounds greater than the bounds of lat/lng, got (%f %f, %f %f)",
			bbox.LoX, bbox.LoY,
			bbox.HiX, bbox.HiY,
		)
	}

	if p <= GeoHashAutoPrecision {
		p = getPrecisionForBBox(bbox)
	}
	if p > GeoHashMaxPrecision {
		p = GeoHashMaxPrecision
	}

	bbCenterLng := bbox.LoX + (bbox.HiX-bbox.LoX)/2.0
	bbCenterLat := bbox.LoY + (bbox.HiY-bbox.LoY)/2.0

	return geohash.Encode(bbCenterLat, bbCenterLng, p), nil
}

// getPrecisionForBBox halves the world bounding box until it no longer fits
// within the feature bounding box, which yields the largest GeoHash cell
// encompassing the feature.
func getPrecisionForBBox(bbox *geopb.BoundingBox) int {
	// Points use the full precision.
	if bbox.LoX == bbox.HiX && bbox.LoY == bbox.HiY {
		return GeoHashMaxPrecision
	}

	bitPrecision := 0
	lonMin, lonMax := -180.0, 180.0
	latMin, latMax := -90.0, 90.0
	for {
		lonWidth := lonMax - lonMin
		latWidth := latMax - latMin
		latMaxDelta, lonMaxDelta, latMinDelta, lonMinDelta := 0.0, 0.0, 0.0, 0.0

		if bbox.LoX > lonMin+lonWidth/2.0 {
			lonMinDelta = lonWidth / 2.0
		} else if bbox.HiX < lonMax-lonWidth/2.0 {
			lonMaxDelta = lonWidth / -2.0
		}
		if bbox.LoY > latMin+latWidth/2.0 {
			latMinDelta = latWidth / 2.0
		} else if bbox.HiY < latMax-latWidth/2.0 {
			latMaxDelta = latWidth / -2.0
		}

		// Stop as soon as a dimension can no longer be split. Only rounds
		// that split both dimensions count.
		if lonMinDelta == 0.0 && lonMaxDelta == 0.0 {
			break
		}
		lonMin += lonMinDelta
		lonMax += lonMaxDelta
		if latMinDelta == 0.0 && latMaxDelta == 0.0 {
			break
		}
		latMin += latMinDelta
		latMax += latMaxDelta
		bitPrecision += 2
	}
	// Each character holds 5 bits.
	return bitPrecision / 5
}

// StringToByteOrder returns the byte order of string.
func StringToByteOrder(s string) binary.ByteOrder {
	switch strings.ToLower(s) {
	case "ndr":
		return binary.LittleEndian
	case "xdr":
		return binary.BigEndian
	default:
		return DefaultEWKBEncodingFormat
	}
}
