// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/geodist/pkg/geo"
	"github.com/cockroachdb/geodist/pkg/geo/geomfn"
	"github.com/spf13/cobra"
)

// closestPointExamples pair geometries covering points, lines, crossing
// lines and a line lying in a polygon hole.
var closestPointExamples = [][2]string{
	{"POLYGON ((200 180, 60 140, 60 260, 200 180))", "POINT (140 280)"},
	{"POLYGON ((200 180, 60 140, 60 260, 200 180))", "MULTIPOINT ((140 280), (140 320))"},
	{"LINESTRING (100 100, 200 100, 200 200, 100 200, 100 100)", "POINT (10 10)"},
	{"LINESTRING (100 100, 200 200)", "LINESTRING (100 200, 200 100)"},
	{"LINESTRING (100 100, 200 200)", "LINESTRING (150 121, 200 0)"},
	{
		"POLYGON ((76 185, 125 283, 331 276, 324 122, 177 70, 184 155, 69 123, 76 185), (267 237, 148 248, 135 185, 223 189, 251 151, 286 183, 267 237))",
		"LINESTRING (153 204, 185 224, 209 207, 238 222, 254 186)",
	},
	{
		"POLYGON ((76 185, 125 283, 331 276, 324 122, 177 70, 184 155, 69 123, 76 185), (267 237, 148 248, 135 185, 223 189, 251 151, 286 183, 267 237))",
		"LINESTRING (120 215, 185 224, 209 207, 238 222, 254 186)",
	},
}

func makeExamplesCommand(config *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Print the distance and closest points of a set of sample geometries.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, ex := range closestPointExamples {
				if err := runClosestPointExample(config, cmd.OutOrStdout(), ex[0], ex[1]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func runClosestPointExample(config *cliConfig, w io.Writer, strA, strB string) error {
	a, b, err := config.parsePair(strA, strB)
	if err != nil {
		return err
	}
	d, err := geomfn.MinDistance(a, b)
	if err != nil {
		return err
	}
	line, err := geomfn.ShortestLineString(a, b)
	if err != nil {
		return err
	}
	var formatted [3]string
	for i, g := range [...]geo.Geometry{a, b, line} {
		if formatted[i], err = config.formatGeometry(g); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w,
		"-------------------------------------\nA: %s\nB: %s\ndistance: %s\nclosest points: %s\n",
		formatted[0], formatted[1], config.formatFloat(d), formatted[2],
	)
	return err
}
