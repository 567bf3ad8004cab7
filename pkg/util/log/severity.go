// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
)

// Severity is the severity of a log entry.
type Severity int32

// Severity values, from least to most severe.
const (
	Severity_INFO Severity = iota
	Severity_WARNING
	Severity_ERROR
	Severity_FATAL
	Severity_NONE
)

var severityName = []string{
	Severity_INFO:    "INFO",
	Severity_WARNING: "WARNING",
	Severity_ERROR:   "ERROR",
	Severity_FATAL:   "FATAL",
	Severity_NONE:    "NONE",
}

// severityChar is the first character of each entry header.
const severityChar = "IWEFN"

var _ pflag.Value = (*Severity)(nil)

// String is part of the pflag.Value interface.
func (s *Severity) String() string {
	if i := int(*s); i >= 0 && i < len(severityName) {
		return severityName[i]
	}
	return strconv.FormatInt(int64(*s), 10)
}

// Set is part of the pflag.Value interface.
func (s *Severity) Set(value string) error {
	if v, ok := SeverityByName(value); ok {
		*s = v
		return nil
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return errors.Newf("unknown severity %q", value)
	}
	if v < int(Severity_INFO) || v > int(Severity_NONE) {
		return errors.Newf("severity %d out of range", v)
	}
	*s = Severity(v)
	return nil
}

// Type is part of the pflag.Value interface.
func (s *Severity) Type() string {
	return "severity"
}

// SeverityByName attempts to parse the passed in string into a severity. (i.e.
// ERROR, INFO). If it succeeds, the returned bool is set to true.
func SeverityByName(s string) (Severity, bool) {
	s = strings.ToUpper(s)
	for i, name := range severityName {
		if name == s {
			return Severity(i), true
		}
	}
	return 0, false
}
