// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// separate from main so tests can run commands
func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "fleet-cli"
	app.Usage = "build ship fleets and show their tree structure"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	outputFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "tree, t",
			Value: "bst",
			Usage: " tree `TYPE` [bst|avl|splay]",
		},
		cli.StringSliceFlag{
			Name:  "convert, c",
			Usage: " change tree type after building, may be repeated `TYPE`",
		},
		cli.StringFlag{
			Name:  "format, f",
			Value: "dump",
			Usage: " output `FORMAT` [dump|print|json]",
		},
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "build a fleet from ships given as ID[:TYPE[:STATE]]",
			ArgsUsage: "SHIP...",
			Flags: append([]cli.Flag{
				cli.IntSliceFlag{
					Name:  "remove, r",
					Usage: " remove ship `ID` after inserting, may be repeated",
				},
				cli.IntSliceFlag{
					Name:  "find, l",
					Usage: " look up ship `ID` after removals (splays a Splay tree), may be repeated",
				},
			}, outputFlags...),
			Action: runBuild,
		},
		{
			Name:  "random",
			Usage: "build a fleet of randomly generated ships",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 10,
					Usage: " number of ships to generate `COUNT`",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: " generator `SEED`, 0 for a different fleet each run",
				},
			}, outputFlags...),
			Action: runRandom,
		},
		{
			Name:  "version",
			Usage: "display fleet-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
