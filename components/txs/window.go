// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/stakevault/stakevaultgo/components/verify"
	avajson "github.com/stakevault/stakevaultgo/utils/json"
)

var (
	errInvertedWindow = errors.New("window lower bound after upper bound")

	_ verify.Verifiable = Window{}
)

// Window is the validity interval of a transaction, in unix seconds. Either
// bound may be omitted. The upper bound doubles as the evaluation time for
// staking durations, so the protocol never consults a wall clock.
type Window struct {
	Lower *avajson.Int64 `serialize:"true" json:"lowerBound,omitempty"`
	Upper *avajson.Int64 `serialize:"true" json:"upperBound,omitempty"`
}

// LowerBound returns the window's lower bound, if one was set.
func (w Window) LowerBound() (int64, bool) {
	if w.Lower == nil {
		return 0, false
	}
	return int64(*w.Lower), true
}

// UpperBound returns the window's upper bound, if one was set.
func (w Window) UpperBound() (int64, bool) {
	if w.Upper == nil {
		return 0, false
	}
	return int64(*w.Upper), true
}

func (w Window) Verify() error {
	lower, hasLower := w.LowerBound()
	upper, hasUpper := w.UpperBound()
	if hasLower && hasUpper && lower > upper {
		return errInvertedWindow
	}
	return nil
}
