// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geodist/pkg/cmd/cmdutil"
	"github.com/cockroachdb/geodist/pkg/geo"
	"github.com/cockroachdb/geodist/pkg/geo/geopb"
	"github.com/cockroachdb/geodist/pkg/util/log"
	"github.com/spf13/cobra"
)

const verbosityEnv = "GEODIST_VERBOSITY"

// Output formats for geometries.
const (
	formatWKT     = "wkt"
	formatEWKT    = "ewkt"
	formatGeoJSON = "geojson"
	formatEWKBHex = "ewkbhex"
	formatGeoHash = "geohash"
)

var outputFormats = []string{formatWKT, formatEWKT, formatGeoJSON, formatEWKBHex, formatGeoHash}

type cliConfig struct {
	format           string
	maxDecimalDigits int
	srid             int32
	concurrency      int
	verbosity        int
	logThreshold     log.Severity
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		format:           formatWKT,
		maxDecimalDigits: geo.FullPrecisionDecimalDigits,
		srid:             int32(geopb.UnknownSRID),
		concurrency:      runtime.GOMAXPROCS(0),
		logThreshold:     log.Severity_WARNING,
	}
}

func makeGeodistCommand() *cobra.Command {
	config := defaultCLIConfig()
	command := &cobra.Command{
		Use:   "geodist [command] (flags)",
		Short: "geodist computes planar minimum distances and nearest points between geometries.",
		Long: `geodist computes planar minimum distances and nearest points between geometries.

Geometries are given as WKT, EWKT (SRID=4326;POINT (1 2)), hex encoded EWKB
or GeoJSON. Both geometries of a query must share an SRID.

Typical usage:
    geodist distance 'POLYGON ((200 180, 60 140, 60 260, 200 180))' 'POINT (140 280)'
        Print the minimum distance between the two geometries.

    geodist nearest --format=ewkt 'SRID=4326;LINESTRING (0 0, 2 2)' 'SRID=4326;POINT (2 0)'
        Print the point of each geometry nearest to the other one.

    geodist batch pairs.tsv --concurrency=8
        Print the distance of every tab separated pair of geometries in pairs.tsv.
`,
		Version:       "v0.1",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.apply(cmd)
		},
	}

	flags := command.PersistentFlags()
	flags.StringVar(&config.format, "format", config.format, "output format of geometries (wkt, ewkt, geojson, ewkbhex, geohash)")
	flags.IntVar(&config.maxDecimalDigits, "max-decimal-digits", config.maxDecimalDigits, "maximum number of decimal digits of printed coordinates, -1 for full precision")
	flags.Int32Var(&config.srid, "srid", config.srid, "SRID given to input geometries which do not carry one")
	flags.IntVar(&config.concurrency, "concurrency", config.concurrency, "number of queries evaluated in parallel by the batch command")
	flags.IntVarP(&config.verbosity, "verbosity", "v", config.verbosity, "log verbosity, defaults to $"+verbosityEnv)
	flags.Var(&config.logThreshold, "log-threshold", "lowest severity of log entries written to stderr")

	command.AddCommand(makeDistanceCommand(&config))
	command.AddCommand(makeNearestCommand(&config))
	command.AddCommand(makeDWithinCommand(&config))
	command.AddCommand(makeLocateCommand(&config))
	command.AddCommand(makeSegmentizeCommand(&config))
	command.AddCommand(makeBatchCommand(&config))
	command.AddCommand(makeExamplesCommand(&config))
	return command
}

// apply validates the flags and sets up logging.
func (c *cliConfig) apply(cmd *cobra.Command) error {
	if !isOutputFormat(c.format) {
		return errors.WithHintf(
			errors.Newf("unknown output format %q", c.format),
			"supported formats are %v", outputFormats,
		)
	}
	if c.concurrency < 1 {
		return errors.Newf("concurrency must be at least 1, got %d", c.concurrency)
	}
	if f := cmd.Flag("verbosity"); f == nil || !f.Changed {
		v, err := cmdutil.EnvOrDefaultInt(verbosityEnv, c.verbosity)
		if err != nil {
			return err
		}
		c.verbosity = v
	}
	log.SetOutput(cmd.ErrOrStderr())
	log.SetVerbosity(int32(c.verbosity))
	// Verbose runs need INFO entries to be visible.
	threshold := c.logThreshold
	if c.verbosity > 0 && threshold > log.Severity_INFO {
		threshold = log.Severity_INFO
	}
	log.SetThreshold(threshold)
	return nil
}

func isOutputFormat(format string) bool {
	for _, f := range outputFormats {
		if f == format {
			return true
		}
	}
	return false
}

func (c *cliConfig) parseGeometry(str string) (geo.Geometry, error) {
	g, err := geo.ParseGeometryWithSRID(str, geopb.SRID(c.srid))
	if err != nil {
		return geo.Geometry{}, errors.Wrapf(err, "parsing %q", str)
	}
	return g, nil
}

// formatGeometry prints g in the configured output format.
func (c *cliConfig) formatGeometry(g geo.Geometry) (string, error) {
	so := g.SpatialObject()
	switch c.format {
	case formatWKT:
		ret, err := geo.SpatialObjectToWKT(so, c.maxDecimalDigits)
		return string(ret), err
	case formatEWKT:
		ret, err := geo.SpatialObjectToEWKT(so, c.maxDecimalDigits)
		return string(ret), err
	case formatGeoJSON:
		digits := c.maxDecimalDigits
		if digits < 0 {
			digits = geo.DefaultGeoJSONDecimalDigits
		}
		ret, err := geo.SpatialObjectToGeoJSON(so, digits, geo.SpatialObjectToGeoJSONFlagShortCRS)
		return string(ret), err
	case formatEWKBHex:
		return geo.SpatialObjectToEWKBHex(so)
	case formatGeoHash:
		return geo.SpatialObjectToGeoHash(so, geo.GeoHashAutoPrecision)
	default:
		return "", errors.AssertionFailedf("unhandled output format %q", c.format)
	}
}
