// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log is a small leveled logger. Entries carry a severity, the
// position of the call site and the logging tags found in the context:
//
//	I261015 10:11:12.123456 geodist/batch.go:42  [line=3] computed distance
//
// INFO entries are gated by the stderr threshold; V(level) entries are
// emitted when the verbosity is at least level.
package log

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

type loggingT struct {
	// verbosity gates V and VEventf.
	verbosity atomic.Int32

	mu struct {
		sync.Mutex
		w io.Writer
		// threshold is the lowest severity written out.
		threshold Severity
		// now is overridden in tests.
		now          func() time.Time
		exitOverride struct {
			f func(int)
		}
	}
}

var logging = func() *loggingT {
	l := &loggingT{}
	l.mu.w = os.Stderr
	l.mu.threshold = Severity_INFO
	l.mu.now = time.Now
	return l
}()

// SetOutput redirects entries to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prev := logging.mu.w
	logging.mu.w = w
	return prev
}

// SetThreshold sets the lowest severity written out and returns the
// previous one.
func SetThreshold(s Severity) Severity {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prev := logging.mu.threshold
	logging.mu.threshold = s
	return prev
}

// SetVerbosity sets the verbosity level and returns the previous one.
func SetVerbosity(level int32) int32 {
	return logging.verbosity.Swap(level)
}

// V returns whether entries at the given verbosity level are enabled.
func V(level int32) bool {
	return logging.verbosity.Load() >= level
}

// SetExitFunc allows setting a function that will be called to exit
// the process when a Fatal message is generated.
//
// Call with a nil function to undo.
func SetExitFunc(f func(int)) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	logging.mu.exitOverride.f = f
}

// ResetExitFunc undoes any prior call to SetExitFunc.
func ResetExitFunc() {
	SetExitFunc(nil)
}

// outputLogEntry writes an entry whose message is already formatted. The
// call site is looked up depth frames above the caller.
func (l *loggingT) outputLogEntry(s Severity, depth int, msg string) {
	_, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		file, line = "???", 0
	} else {
		file = filepath.Join(filepath.Base(filepath.Dir(file)), filepath.Base(file))
	}

	l.mu.Lock()
	if s >= l.mu.threshold {
		buf := formatHeader(s, l.mu.now(), file, line)
		buf = append(buf, msg...)
		if len(msg) == 0 || msg[len(msg)-1] != '\n' {
			buf = append(buf, '\n')
		}
		_, _ = l.mu.w.Write(buf)
	}
	exit := l.mu.exitOverride.f
	l.mu.Unlock()

	if s == Severity_FATAL {
		if exit == nil {
			exit = os.Exit
		}
		exit(255)
	}
}
