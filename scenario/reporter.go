// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/jaguarX024/Ship-Tracker/fleet"
)

//go:generate mockgen -destination=mocks/reporter.go -package=mocks github.com/jaguarX024/Ship-Tracker/scenario Reporter

// Reporter - receives the fleet after each step of a scenario
type Reporter interface {
	Report(title string, f *fleet.Fleet) error
}

// ConsoleReporter - write the parenthesised dump to a stream
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter - reporter writing to w
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

// Report - title, blank line and the dump
func (r *ConsoleReporter) Report(title string, f *fleet.Fleet) error {
	_, err := fmt.Fprintf(r.w, "\n%s:\n\n%s\n", title, f)
	return err
}

// LogReporter - send the dump to a log channel
type LogReporter struct {
	log *logger.L
}

// NewLogReporter - reporter writing to a log channel
func NewLogReporter(log *logger.L) *LogReporter {
	return &LogReporter{log: log}
}

// Report - log the dump at info level, the counters at debug
func (r *LogReporter) Report(title string, f *fleet.Fleet) error {
	r.log.Infof("%s: %s", title, f)
	r.log.Debugf("%s: %d ships  %d rotations", title, f.Count(), f.Rotations())
	return nil
}
