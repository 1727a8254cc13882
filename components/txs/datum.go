// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/stakevault/stakevaultgo/utils/formatting"
)

const nullStr = "null"

var errMissingQuotes = errors.New("first and last characters should be quotes")

// Datum is the opaque payload attached to an output. The validator only
// ever parses the staking-start field out of it; everything else rides
// along untouched.
type Datum []byte

func (d Datum) String() string {
	str, _ := formatting.Encode(formatting.Hex, d)
	return str
}

func (d Datum) MarshalJSON() ([]byte, error) {
	str, err := formatting.Encode(formatting.Hex, d)
	if err != nil {
		return nil, err
	}
	return []byte(`"` + str + `"`), nil
}

func (d *Datum) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == nullStr {
		return nil
	}
	if len(str) < 2 || str[0] != '"' || str[len(str)-1] != '"' {
		return errMissingQuotes
	}
	bytes, err := formatting.Decode(formatting.Hex, str[1:len(str)-1])
	if err != nil {
		return err
	}
	*d = bytes
	return nil
}
