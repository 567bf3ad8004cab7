// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geodist/pkg/geo/geomfn"
	"github.com/cockroachdb/geodist/pkg/util/log"
	"github.com/cockroachdb/logtags"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Operations evaluated by the batch command.
const (
	batchOpDistance = "distance"
	batchOpNearest  = "nearest"
	batchOpDWithin  = "dwithin"
)

// maxBatchLineSize bounds the size of a single input line.
const maxBatchLineSize = 16 << 20

type batchConfig struct {
	op     string
	within float64
}

// batchQuery is a pair of geometries read from one input line.
type batchQuery struct {
	line int
	a, b string
}

func makeBatchCommand(config *cliConfig) *cobra.Command {
	bc := batchConfig{op: batchOpDistance}
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Evaluate a query for every pair of geometries of a file.",
		Long: `Evaluate a query for every pair of geometries of a file, or of stdin when
no file or "-" is given.

Each line holds two geometries separated by a tab. Blank lines and lines
starting with # are skipped. Queries are evaluated in parallel and their
results are printed in input order, one line per query. A query which fails
prints ERROR followed by the reason.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch bc.op {
			case batchOpDistance, batchOpNearest:
			case batchOpDWithin:
				if !cmd.Flags().Changed("within") {
					return errors.Newf("--within is required with --op=%s", batchOpDWithin)
				}
			default:
				return errors.Newf("unknown batch operation %q", bc.op)
			}
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runBatch(cmd.Context(), config, bc, in, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&bc.op, "op", bc.op, "operation evaluated for each pair (distance, nearest, dwithin)")
	cmd.Flags().Float64Var(&bc.within, "within", bc.within, "distance used by --op=dwithin")
	return cmd
}

func readBatchQueries(in io.Reader) ([]batchQuery, error) {
	var queries []batchQuery
	scanner := bufio.NewScanner(in)
	scanner.Buffer(nil, maxBatchLineSize)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) != 2 {
			return nil, errors.Newf(
				"line %d: expected two tab separated geometries, got %d fields", line, len(fields),
			)
		}
		queries = append(queries, batchQuery{line: line, a: fields[0], b: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading batch input")
	}
	return queries, nil
}

func runBatch(
	ctx context.Context, config *cliConfig, bc batchConfig, in io.Reader, out io.Writer,
) error {
	queries, err := readBatchQueries(in)
	if err != nil {
		return err
	}

	results := make([]string, len(queries))
	var processed, failed atomic.Int64
	progress := log.Every(time.Second)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(config.concurrency)
	for i := range queries {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			q := queries[i]
			qCtx := logtags.AddTag(gCtx, "line", q.line)
			log.VEventf(qCtx, 2, "evaluating %s", bc.op)
			res, err := evaluateBatchQuery(config, bc, q)
			if err != nil {
				failed.Add(1)
				log.Warningf(qCtx, "%v", err)
				res = fmt.Sprintf("ERROR: %v", err)
			}
			results[i] = res
			if n := processed.Add(1); progress.ShouldLog() {
				log.Infof(ctx, "processed %d/%d queries", n, len(queries))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	for _, res := range results {
		if _, err := fmt.Fprintln(w, res); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	log.Infof(ctx, "evaluated %d queries, %d failed", len(queries), failed.Load())
	if n := failed.Load(); n > 0 {
		return errors.Newf("%d of %d queries failed", n, len(queries))
	}
	return nil
}

func evaluateBatchQuery(config *cliConfig, bc batchConfig, q batchQuery) (string, error) {
	a, b, err := config.parsePair(q.a, q.b)
	if err != nil {
		return "", err
	}
	switch bc.op {
	case batchOpDistance:
		d, err := geomfn.MinDistance(a, b)
		if err != nil {
			return "", err
		}
		return config.formatFloat(d), nil
	case batchOpNearest:
		points, err := nearestPoints(a, b)
		if err != nil {
			return "", err
		}
		var parts [2]string
		for i, p := range points {
			if parts[i], err = config.formatGeometry(p); err != nil {
				return "", err
			}
		}
		return parts[0] + "\t" + parts[1], nil
	case batchOpDWithin:
		within, err := geomfn.DWithin(a, b, bc.within)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(within), nil
	default:
		return "", errors.AssertionFailedf("unhandled batch operation %q", bc.op)
	}
}
