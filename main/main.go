// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/stakevault/stakevaultgo/app"
	"github.com/stakevault/stakevaultgo/config"
	"github.com/stakevault/stakevaultgo/version"
)

// main either evaluates one snapshot and prints the verdict, or serves the
// evaluation API over HTTP until signalled.
func main() {
	v, err := config.BuildViper(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't parse flags: %s\n", err)
		os.Exit(exitError)
	}

	if v.GetBool(config.VersionKey) {
		fmt.Print(version.String)
		os.Exit(0)
	}

	cfg, err := config.GetConfig(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't load config: %s\n", err)
		os.Exit(exitError)
	}

	if cfg.Serve {
		a, err := app.New(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "couldn't initialize service: %s\n", err)
			os.Exit(exitError)
		}
		os.Exit(app.Run(a))
	}

	os.Exit(evaluate(cfg))
}
