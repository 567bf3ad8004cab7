// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geodist/pkg/geo"
	"github.com/cockroachdb/geodist/pkg/geo/geomfn"
	"github.com/cockroachdb/geodist/pkg/util/log"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"
)

func makeDistanceCommand(config *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "distance <geometry-a> <geometry-b>",
		Short: "Print the minimum distance between two geometries.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := config.parsePair(args[0], args[1])
			if err != nil {
				return err
			}
			d, err := geomfn.MinDistance(a, b)
			if err != nil {
				return err
			}
			log.VEventf(cmd.Context(), 1, "distance between %s and %s: %v", a.ShapeType(), b.ShapeType(), d)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), config.formatFloat(d))
			return err
		},
	}
}

func makeNearestCommand(config *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "nearest <geometry-a> <geometry-b>",
		Short: "Print the point of each geometry nearest to the other one.",
		Long: `Print the point of each geometry nearest to the other one.

The point of A is printed on the first line, the point of B on the second one.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := config.parsePair(args[0], args[1])
			if err != nil {
				return err
			}
			points, err := nearestPoints(a, b)
			if err != nil {
				return err
			}
			for _, p := range points {
				s, err := config.formatGeometry(p)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), s); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func makeDWithinCommand(config *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "dwithin <geometry-a> <geometry-b> [--] <distance>",
		Short: "Print whether two geometries are within the given distance of each other.",
		Long: `Print whether two geometries are within the given distance of each other.

A distance starting with a minus sign must follow a -- separator, as in
    geodist dwithin 'POINT (0 0)' 'POINT (1 1)' -- -1`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := config.parsePair(args[0], args[1])
			if err != nil {
				return err
			}
			d, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return errors.Wrapf(err, "parsing distance %q", args[2])
			}
			within, err := geomfn.DWithin(a, b, d)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), within)
			return err
		},
	}
}

func makeLocateCommand(config *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "locate <linestring> <point>",
		Short: "Print the fraction of the line length at which the point nearest to the given point lies.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, point, err := config.parsePair(args[0], args[1])
			if err != nil {
				return err
			}
			fraction, err := geomfn.LineLocatePoint(line, point)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), config.formatFloat(fraction))
			return err
		},
	}
}

func makeSegmentizeCommand(config *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "segmentize <geometry> <max-segment-length>",
		Short: "Print the geometry with points inserted so that no segment is longer than the given length.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := config.parseGeometry(args[0])
			if err != nil {
				return err
			}
			maxLength, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return errors.Wrapf(err, "parsing maximum segment length %q", args[1])
			}
			ret, err := geomfn.Segmentize(g, maxLength)
			if err != nil {
				return err
			}
			s, err := config.formatGeometry(ret)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
}

func (c *cliConfig) parsePair(strA, strB string) (geo.Geometry, geo.Geometry, error) {
	a, err := c.parseGeometry(strA)
	if err != nil {
		return geo.Geometry{}, geo.Geometry{}, err
	}
	b, err := c.parseGeometry(strB)
	if err != nil {
		return geo.Geometry{}, geo.Geometry{}, err
	}
	return a, b, nil
}

// nearestPoints returns the point of A nearest to B and the point of B
// nearest to A, resolved from a single query.
func nearestPoints(a, b geo.Geometry) ([2]geo.Geometry, error) {
	var ret [2]geo.Geometry
	line, err := geomfn.ShortestLineString(a, b)
	if err != nil {
		return ret, err
	}
	t, err := line.AsGeomT()
	if err != nil {
		return ret, err
	}
	lineString, ok := t.(*geom.LineString)
	if !ok || lineString.NumCoords() != 2 {
		return ret, errors.AssertionFailedf("expected a two point LineString, got %s", line.ShapeType())
	}
	for i := range ret {
		p := geom.NewPointFlat(lineString.Layout(), lineString.Coord(i)).SetSRID(lineString.SRID())
		if ret[i], err = geo.MakeGeometryFromGeomT(p); err != nil {
			return ret, err
		}
	}
	return ret, nil
}

// formatFloat prints f with the configured number of decimal digits.
func (c *cliConfig) formatFloat(f float64) string {
	if c.maxDecimalDigits < 0 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', c.maxDecimalDigits, 64)
}
