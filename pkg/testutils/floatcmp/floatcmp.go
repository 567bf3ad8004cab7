// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package floatcmp provides approximate equality checks for floating point
// values and for values holding them, such as coordinates and results.
package floatcmp

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const (
	// CloseFraction can be used to set a "close" tolerance for the fraction
	// argument of functions in this package. It should typically be used with
	// the CloseMargin constant for the margin argument. Its value is taken from
	// the close tolerances in go's math package.
	CloseFraction float64 = 1e-14

	// CloseMargin can be used to set a "close" tolerance for the margin
	// argument of functions in this package. It should typically be used with
	// the CloseFraction constant for the fraction argument.
	//
	// It is set to the square of CloseFraction so it is only used when the
	// expected value is exactly zero.
	CloseMargin float64 = CloseFraction * CloseFraction
)

// EqualApprox reports whether expected and actual are deeply equal, with
// floats compared to within the given fraction or margin. NaNs are equal
// to each other.
//
// Two floats x and y are equal if |x-y| <= max(margin, fraction*min(|x|, |y|)).
func EqualApprox(expected interface{}, actual interface{}, fraction float64, margin float64) bool {
	return cmp.Equal(expected, actual, cmpopts.EquateApprox(fraction, margin), cmpopts.EquateNaNs())
}

// DiffApprox returns a human readable report of the differences between
// expected and actual under the same tolerances as EqualApprox, or an empty
// string if there are none.
func DiffApprox(expected interface{}, actual interface{}, fraction float64, margin float64) string {
	return cmp.Diff(expected, actual, cmpopts.EquateApprox(fraction, margin), cmpopts.EquateNaNs())
}
