// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/stakevault/stakevaultgo/components/tokens"
	"github.com/stakevault/stakevaultgo/components/verify"
)

var _ verify.Verifiable = Output{}

// Output is one entry of a transaction's output list: who it pays, what it
// carries, and optionally a datum.
type Output struct {
	Addr  Address      `serialize:"true" json:"address"`
	Value tokens.Value `serialize:"true" json:"value"`
	Datum Datum        `serialize:"true" json:"datum,omitempty"`
}

// HasDatum reports whether this output carries a datum.
func (o Output) HasDatum() bool {
	return len(o.Datum) > 0
}

func (o Output) Verify() error {
	if err := o.Addr.Verify(); err != nil {
		return err
	}
	return o.Value.Verify()
}
