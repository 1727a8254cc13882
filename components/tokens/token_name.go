// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tokens

import (
	"fmt"

	"github.com/stakevault/stakevaultgo/utils/formatting"
)

// MaxTokenNameLen is the longest byte string a policy may use to name an
// asset.
const MaxTokenNameLen = 32

var errTokenNameTooLong = fmt.Errorf("token name exceeds %d bytes", MaxTokenNameLen)

// TokenName is the opaque byte string a minting policy uses to name an
// asset. It is backed by a Go string so it can key maps; the bytes need not
// be valid UTF-8.
type TokenName string

func (n TokenName) Bytes() []byte {
	return []byte(n)
}

func (n TokenName) Verify() error {
	if len(n) > MaxTokenNameLen {
		return fmt.Errorf("%w: %d bytes", errTokenNameTooLong, len(n))
	}
	return nil
}

func (n TokenName) String() string {
	// We assume that the maximum size of a byte slice that can be stringified
	// is at least the maximum length of a token name
	str, _ := formatting.Encode(formatting.Hex, []byte(n))
	return str
}

// TokenNameFromString is the inverse of TokenName.String()
func TokenNameFromString(str string) (TokenName, error) {
	b, err := formatting.Decode(formatting.Hex, str)
	if err != nil {
		return "", err
	}
	return TokenName(b), nil
}

func (n TokenName) MarshalJSON() ([]byte, error) {
	str, err := formatting.Encode(formatting.Hex, []byte(n))
	if err != nil {
		return nil, err
	}
	return []byte("\"" + str + "\""), nil
}

func (n *TokenName) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == nullStr { // If "null", do nothing
		return nil
	} else if len(str) < 2 {
		return errMissingQuotes
	}

	lastIndex := len(str) - 1
	if str[0] != '"' || str[lastIndex] != '"' {
		return errMissingQuotes
	}

	var err error
	*n, err = TokenNameFromString(str[1:lastIndex])
	return err
}

func (n TokenName) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *TokenName) UnmarshalText(text []byte) error {
	return n.UnmarshalJSON(text)
}

func (n TokenName) Less(other TokenName) bool {
	return n < other
}
