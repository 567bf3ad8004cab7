// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// geodist computes planar minimum distances and nearest points between
// geometries given as WKT, EWKT, hex encoded EWKB or GeoJSON.
//
// Usage:
//
//	geodist distance 'POINT (0 0)' 'LINESTRING (1 1, 2 2)'
//	geodist nearest --format=geojson 'POINT (0 0)' 'LINESTRING (1 1, 2 2)'
//	geodist dwithin 'POINT (0 0)' 'POINT (3 4)' 5
//	geodist batch pairs.tsv --concurrency=8
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
)

func main() {
	if err := makeGeodistCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "HINT: %s\n", hint)
		}
		os.Exit(1)
	}
}
