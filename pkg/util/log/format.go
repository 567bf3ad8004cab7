// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"strconv"
	"time"
)

// formatHeader renders the prefix of an entry:
//
//	Lyymmdd hh:mm:ss.uuuuuu file:line
func formatHeader(s Severity, now time.Time, file string, line int) []byte {
	if s < Severity_INFO || s > Severity_FATAL {
		s = Severity_INFO
	}
	buf := make([]byte, 0, 64)
	year, month, day := now.Date()
	hour, minute, second := now.Clock()
	buf = append(buf, severityChar[s])
	buf = appendDigits(buf, year-2000, 2)
	buf = appendDigits(buf, int(month), 2)
	buf = appendDigits(buf, day, 2)
	buf = append(buf, ' ')
	buf = appendDigits(buf, hour, 2)
	buf = append(buf, ':')
	buf = appendDigits(buf, minute, 2)
	buf = append(buf, ':')
	buf = appendDigits(buf, second, 2)
	buf = append(buf, '.')
	buf = appendDigits(buf, now.Nanosecond()/1000, 6)
	buf = append(buf, ' ')
	buf = append(buf, file...)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, int64(line), 10)
	// Extra space between the header and the message for scannability.
	buf = append(buf, ' ', ' ')
	return buf
}

// appendDigits appends n zero padded to width digits.
func appendDigits(buf []byte, n, width int) []byte {
	s := strconv.Itoa(n)
	for i := len(s); i < width; i++ {
		buf = append(buf, '0')
	}
	return append(buf, s...)
}
