// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/stakevault/stakevaultgo/utils"
	"github.com/stakevault/stakevaultgo/utils/formatting"
	"github.com/stakevault/stakevaultgo/utils/hashing"
)

const (
	// IDLen is the number of bytes in an ID
	IDLen = 32

	nullStr = "null"
)

var (
	// Empty is a useful all-zero value
	Empty = ID{}

	errMissingQuotes = errors.New("first and last characters should be quotes")

	_ utils.Sortable[ID] = ID{}
)

// ID wraps a 32 byte hash used as an identifier
type ID [IDLen]byte

// ToID attempts to convert a byte slice into an id
func ToID(bytes []byte) (ID, error) {
	return hashing.ToHash256(bytes)
}

// FromString is the inverse of ID.String()
func FromString(idStr string) (ID, error) {
	bytes, err := formatting.Decode(formatting.CB58, idStr)
	if err != nil {
		return ID{}, err
	}
	return ToID(bytes)
}

func (id ID) MarshalJSON() ([]byte, error) {
	str, err := formatting.Encode(formatting.CB58, id[:])
	if err != nil {
		return nil, err
	}
	return []byte("\"" + str + "\""), nil
}

func (id *ID) UnmarshalJSON(b []byte) error {
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

	// Parse the string representation
	var err error
	*id, err = FromString(str[1:lastIndex])
	return err
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(text []byte) error {
	return id.UnmarshalJSON(text)
}

// Any modification to Bytes will be lost since id is passed-by-value
func (id ID) Bytes() []byte {
	return id[:]
}

// Hex returns a hex encoded string of this id
func (id ID) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id ID) String() string {
	// We assume that the maximum size of a byte slice that can be stringified
	// is at least the length of an ID
	str, _ := formatting.Encode(formatting.CB58, id[:])
	return str
}

// PrefixedString returns the String representation with a prefix added
func (id ID) PrefixedString(prefix string) string {
	return prefix + id.String()
}

func (id ID) Less(other ID) bool {
	return bytes.Compare(id[:], other[:]) == -1
}

func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

// FromStringOrPanic is the same as FromString, but will panic on error
func FromStringOrPanic(idStr string) ID {
	id, err := FromString(idStr)
	if err != nil {
		panic(fmt.Errorf("failed to parse ID %q: %w", idStr, err))
	}
	return id
}
