// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"
	"fmt"

	"github.com/stakevault/stakevaultgo/components/tokens"
	"github.com/stakevault/stakevaultgo/components/verify"
	"github.com/stakevault/stakevaultgo/ids"
	"github.com/stakevault/stakevaultgo/utils"
	"github.com/stakevault/stakevaultgo/utils/set"

	safemath "github.com/stakevault/stakevaultgo/utils/math"
)

var (
	errNilTx                  = errors.New("nil tx is not valid")
	errDuplicateInput         = errors.New("duplicate input reference")
	errSignersNotSortedUnique = errors.New("signers not sorted and unique")

	_ verify.Verifiable = (*Tx)(nil)
)

// Tx is the read-only snapshot of a transaction the validator judges:
// resolved inputs, produced outputs, the net minted multiset, the key
// credentials that signed, and the validity window. It carries no witness
// material and cannot be submitted anywhere.
type Tx struct {
	Inputs   []UTXO        `serialize:"true" json:"inputs"`
	Outputs  []Output      `serialize:"true" json:"outputs"`
	Minted   tokens.Mint   `serialize:"true" json:"minted,omitempty"`
	Signers  []ids.ShortID `serialize:"true" json:"signers,omitempty"`
	Validity Window        `serialize:"true" json:"validity"`
}

// Verify enforces structural well-formedness. It makes no protocol
// judgement: a verified snapshot may still be rejected by every rule.
func (tx *Tx) Verify() error {
	if tx == nil {
		return errNilTx
	}

	inputRefs := set.NewSet[UTXOID](len(tx.Inputs))
	for _, in := range tx.Inputs {
		if err := in.Verify(); err != nil {
			return fmt.Errorf("input %s failed verification: %s", in.UTXOID, err)
		}
		if inputRefs.Contains(in.UTXOID) {
			return fmt.Errorf("%w: %s", errDuplicateInput, in.UTXOID)
		}
		inputRefs.Add(in.UTXOID)
	}

	for i, out := range tx.Outputs {
		if err := out.Verify(); err != nil {
			return fmt.Errorf("output %d failed verification: %s", i, err)
		}
	}

	if err := tx.Minted.Verify(); err != nil {
		return err
	}
	if !utils.IsSortedAndUnique(tx.Signers) {
		return errSignersNotSortedUnique
	}
	return tx.Validity.Verify()
}

// FindInput returns the input consuming [ref], if the snapshot has one.
func (tx *Tx) FindInput(ref UTXOID) (UTXO, bool) {
	for _, in := range tx.Inputs {
		if in.UTXOID == ref {
			return in, true
		}
	}
	return UTXO{}, false
}

// InputSum totals the quantity of [asset] across all inputs. A snapshot
// with no inputs sums to 0.
func (tx *Tx) InputSum(asset tokens.Asset) (uint64, error) {
	var sum uint64
	for _, in := range tx.Inputs {
		newSum, err := safemath.Add64(sum, in.Out.Value.Quantity(asset))
		if err != nil {
			return 0, fmt.Errorf("%w while summing %s over inputs", err, asset)
		}
		sum = newSum
	}
	return sum, nil
}

// HasSigner reports whether [signer] signed this transaction.
func (tx *Tx) HasSigner(signer ids.ShortID) bool {
	for _, s := range tx.Signers {
		if s == signer {
			return true
		}
	}
	return false
}
