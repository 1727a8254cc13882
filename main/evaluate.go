// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"os"

	stdjson "encoding/json"

	"github.com/stakevault/stakevaultgo/api/vaultapi"
	"github.com/stakevault/stakevaultgo/components/txs"
	"github.com/stakevault/stakevaultgo/config"
	"github.com/stakevault/stakevaultgo/stakefx"
	"github.com/stakevault/stakevaultgo/utils/logging"
)

// Exit codes of one shot evaluation, following the grep convention: reserve
// a distinct code for "couldn't evaluate" so scripts can tell a rejection
// from a broken invocation.
const (
	exitAccepted = 0
	exitRejected = 1
	exitError    = 2
)

// evaluate runs the one shot evaluation described by [cfg] and prints the
// verdict as JSON on stdout.
func evaluate(cfg config.Config) int {
	fx, err := stakefx.New(&cfg.VaultConfig, logging.NoLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return exitError
	}

	snapshotBytes, err := os.ReadFile(cfg.SnapshotPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't read snapshot: %s\n", err)
		return exitError
	}

	tx := txs.Tx{}
	if err := stdjson.Unmarshal(snapshotBytes, &tx); err != nil {
		fmt.Fprintf(os.Stderr, "couldn't parse snapshot %q: %s\n", cfg.SnapshotPath, err)
		return exitError
	}

	var evalErr error
	if cfg.OwnInput != nil {
		evalErr = fx.VerifySpend(&tx, *cfg.OwnInput)
	} else {
		action, err := stakefx.UnmarshalAction(cfg.Action)
		if err != nil {
			evalErr = err
		} else {
			evalErr = fx.VerifyMint(&tx, cfg.Policy, action)
		}
	}

	verdict, err := verdictOf(evalErr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return exitError
	}

	out, err := stdjson.MarshalIndent(verdict, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return exitError
	}
	fmt.Println(string(out))

	if verdict.Accepted {
		return exitAccepted
	}
	return exitRejected
}

// verdictOf translates the validator's decision into the same verdict shape
// the HTTP API serves. Errors that did not come from the validator are
// returned unchanged.
func verdictOf(err error) (vaultapi.Verdict, error) {
	if err == nil {
		return vaultapi.Verdict{Accepted: true}, nil
	}

	var rejection *stakefx.Error
	if !errors.As(err, &rejection) {
		return vaultapi.Verdict{}, err
	}
	return vaultapi.Verdict{
		Class:  rejection.Class,
		Reason: rejection.Reason(),
	}, nil
}
