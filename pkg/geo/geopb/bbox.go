// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geopb

import "math"

// NewBoundingBox returns a bounding box that contains nothing. It grows
// with each call to Update.
func NewBoundingBox() *BoundingBox {
	return &BoundingBox{
		LoX: math.MaxFloat64,
		HiX: -math.MaxFloat64,
		LoY: math.MaxFloat64,
		HiY: -math.MaxFloat64,
	}
}

// Update extends the box to cover (x, y).
func (b *BoundingBox) Update(x, y float64) {
	b.LoX = math.Min(b.LoX, x)
	b.HiX = math.Max(b.HiX, x)
	b.LoY = math.Min(b.LoY, y)
	b.HiY = math.Max(b.HiY, y)
}

// IsEmpty returns whether Update was never called on the box.
func (b *BoundingBox) IsEmpty() bool {
	return b.LoX > b.HiX || b.LoY > b.HiY
}

// Intersects returns whether the boxes share at least one point.
func (b *BoundingBox) Intersects(o *BoundingBox) bool {
	if b == nil || o == nil {
		return false
	}
	return b.LoX <= o.HiX && o.LoX <= b.HiX && b.LoY <= o.HiY && o.LoY <= b.HiY
}

// Buffer returns a copy of the box extended by d on each side.
func (b *BoundingBox) Buffer(d float64) *BoundingBox {
	if b == nil {
		return nil
	}
	return &BoundingBox{
		LoX: b.LoX - d,
		HiX: b.HiX + d,
		LoY: b.LoY - d,
		HiY: b.HiY + d,
	}
}
