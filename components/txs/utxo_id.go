// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/stakevault/stakevaultgo/components/verify"
	"github.com/stakevault/stakevaultgo/ids"
	"github.com/stakevault/stakevaultgo/utils"
)

var (
	errEmptyUTXOIDTxID           = errors.New("utxoID txID is empty")
	errMalformedUTXOIDString     = errors.New("unexpected number of tokens in string")
	errFailedDecodingUTXOIDTxID  = errors.New("failed decoding UTXOID TxID")
	errFailedDecodingUTXOIDIndex = errors.New("failed decoding UTXOID index")

	_ verify.Verifiable      = UTXOID{}
	_ utils.Sortable[UTXOID] = UTXOID{}
)

// UTXOID references the output an input consumes. It is comparable, so it
// can key maps and sets directly.
type UTXOID struct {
	TxID        ids.ID `serialize:"true" json:"txID"`
	OutputIndex uint32 `serialize:"true" json:"outputIndex"`
}

// UTXOIDFromString attempts to parse a string as a UTXOID. The string is
// expected to be formatted as `[txID]:[outputIndex]`.
func UTXOIDFromString(s string) (UTXOID, error) {
	ss := strings.Split(s, ":")
	if len(ss) != 2 {
		return UTXOID{}, errMalformedUTXOIDString
	}

	txID, err := ids.FromString(ss[0])
	if err != nil {
		return UTXOID{}, fmt.Errorf("%w: %s", errFailedDecodingUTXOIDTxID, err)
	}

	idx, err := strconv.ParseUint(ss[1], 10, 32)
	if err != nil {
		return UTXOID{}, fmt.Errorf("%w: %s", errFailedDecodingUTXOIDIndex, err)
	}

	return UTXOID{
		TxID:        txID,
		OutputIndex: uint32(idx),
	}, nil
}

func (id UTXOID) Verify() error {
	if id.TxID == ids.Empty {
		return errEmptyUTXOIDTxID
	}
	return nil
}

func (id UTXOID) Less(other UTXOID) bool {
	switch bytes.Compare(id.TxID[:], other.TxID[:]) {
	case -1:
		return true
	case 1:
		return false
	default:
		return id.OutputIndex < other.OutputIndex
	}
}

func (id UTXOID) String() string {
	return fmt.Sprintf("%s:%d", id.TxID, id.OutputIndex)
}
