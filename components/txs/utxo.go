// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/stakevault/stakevaultgo/components/verify"
)

var _ verify.Verifiable = UTXO{}

// UTXO is a resolved transaction input: the reference an input names plus
// the output it consumes.
type UTXO struct {
	UTXOID `serialize:"true"`

	Out Output `serialize:"true" json:"output"`
}

func (u UTXO) Verify() error {
	if err := u.UTXOID.Verify(); err != nil {
		return err
	}
	return u.Out.Verify()
}
