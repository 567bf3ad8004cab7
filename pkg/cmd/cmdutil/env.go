// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cmdutil

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geodist/pkg/util/log"
)

// RequireEnv returns the value of the environment variable s. If s is unset or
// blank, RequireEnv logs a fatal error, which exits the process.
func RequireEnv(s string) string {
	v := strings.TrimSpace(os.Getenv(s))
	if v == "" {
		log.Fatalf(context.Background(), "missing required environment variable %q", s)
	}
	return v
}

// EnvOrDefaultInt returns the integer value of the environment variable s,
// or def when s is unset or blank.
func EnvOrDefaultInt(s string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(s))
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid value for environment variable %q", s)
	}
	return i, nil
}
