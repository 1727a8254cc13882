// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/stakevault/stakevaultgo/utils"
	"github.com/stakevault/stakevaultgo/utils/formatting"
	"github.com/stakevault/stakevaultgo/utils/hashing"
)

const ShortIDLen = 20

var (
	// ShortEmpty is a useful all-zero value
	ShortEmpty = ShortID{}

	_ utils.Sortable[ShortID] = ShortID{}
)

// ShortID wraps a 20 byte hash used as an identifier
type ShortID [ShortIDLen]byte

// ToShortID attempts to convert a byte slice into an id
func ToShortID(bytes []byte) (ShortID, error) {
	return hashing.ToHash160(bytes)
}

// ShortFromString is the inverse of ShortID.String()
func ShortFromString(idStr string) (ShortID, error) {
	bytes, err := formatting.Decode(formatting.CB58, idStr)
	if err != nil {
		return ShortID{}, err
	}
	return ToShortID(bytes)
}

// ShortFromPrefixedString returns a ShortID assuming the cb58 format is
// prefixed
func ShortFromPrefixedString(idStr, prefix string) (ShortID, error) {
	if !strings.HasPrefix(idStr, prefix) {
		return ShortID{}, fmt.Errorf("ID: %s is missing the prefix: %s", idStr, prefix)
	}
	return ShortFromString(strings.TrimPrefix(idStr, prefix))
}

func (id ShortID) MarshalJSON() ([]byte, error) {
	str, err := formatting.Encode(formatting.CB58, id[:])
	if err != nil {
		return nil, err
	}
	return []byte("\"" + str + "\""), nil
}

func (id *ShortID) UnmarshalJSON(b []byte) error {
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
	*id, err = ShortFromString(str[1:lastIndex])
	return err
}

func (id ShortID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ShortID) UnmarshalText(text []byte) error {
	return id.UnmarshalJSON(text)
}

// Any modification to Bytes will be lost since id is passed-by-value
func (id ShortID) Bytes() []byte {
	return id[:]
}

// Hex returns a hex encoded string of this id
func (id ShortID) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id ShortID) String() string {
	// We assume that the maximum size of a byte slice that can be stringified
	// is at least the length of an ID
	str, _ := formatting.Encode(formatting.CB58, id[:])
	return str
}

// PrefixedString returns the String representation with a prefix added
func (id ShortID) PrefixedString(prefix string) string {
	return prefix + id.String()
}

func (id ShortID) Less(other ShortID) bool {
	return bytes.Compare(id[:], other[:]) == -1
}
