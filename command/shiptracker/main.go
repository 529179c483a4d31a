// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/jaguarX024/Ship-Tracker/fault"
	"github.com/jaguarX024/Ship-Tracker/fleet"
	"github.com/jaguarX024/Ship-Tracker/scenario"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// the log directory is created on first run
	if err := os.MkdirAll(masterConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: cannot create log directory: %q  error: %s", program, masterConfiguration.Logging.Directory, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	source, err := scenario.NewSource(masterConfiguration.Seed)
	fault.PanicIfError("scenario source", err)

	reporters := teeReporter{scenario.NewLogReporter(logger.New("report"))}
	if 0 == len(options["quiet"]) {
		reporters = append(reporters, scenario.NewConsoleReporter(os.Stdout))
	}

	verbose := len(options["verbose"]) > 0
	runLog := logger.New("scenario")

	for _, s := range masterConfiguration.Scenarios {
		// already validated when the configuration was read
		run, _ := s.scenario()

		f, result, err := scenario.Run(runLog, source, reporters, run)
		if nil != err {
			log.Criticalf("scenario: %q failed: %s", s.Name, err)
			if nil != f {
				f.Print(os.Stderr)
			}
			exitwithstatus.Message("%s: scenario: %q failed: %s", program, s.Name, err)
		}
		log.Infof("scenario: %q  ships: %d  rejected: %d  removed: %d  rotations: %d",
			result.Name, len(result.Ships), result.Rejected, result.Removed, result.Rotations)

		if verbose {
			b, err := json.MarshalIndent(result, "", "  ")
			if nil != err {
				exitwithstatus.Message("%s: json error: %s", program, err)
			}
			fmt.Printf("%s\n", b)
		}
		f.Clear()
	}
}

// send every report to each of a list of reporters
type teeReporter []scenario.Reporter

func (t teeReporter) Report(title string, f *fleet.Fleet) error {
	for _, r := range t {
		if err := r.Report(title, f); nil != err {
			return err
		}
	}
	return nil
}
