// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geo

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geodist/pkg/geo/geopb"
)

// NewMismatchingSRIDsError returns the error for an operation on two
// spatial objects in different reference systems.
func NewMismatchingSRIDsError(a geopb.SpatialObject, b geopb.SpatialObject) error {
	return errors.WithHint(
		errors.Newf(
			"operation on mixed SRIDs forbidden: (%s, %d) != (%s, %d)",
			a.ShapeType, a.SRID, b.ShapeType, b.SRID,
		),
		"reproject the geometries into the same SRID before combining them",
	)
}
