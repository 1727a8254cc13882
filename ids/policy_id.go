// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/stakevault/stakevaultgo/utils"
)

const (
	PolicyIDPrefix = "Policy-"
	PolicyIDLen    = ShortIDLen
)

var (
	EmptyPolicyID = PolicyID{}

	errShortPolicyID = errors.New("insufficient PolicyID length")

	_ utils.Sortable[PolicyID] = PolicyID{}
)

// PolicyID identifies a minting policy. It is the 160 bit hash of the script
// that controls minting and burning under that policy. A script's payment
// credential and the policy it controls are the same hash, so spending from a
// script address also names the policy the script may act on.
type PolicyID ShortID

// Any modification to Bytes will be lost since id is passed-by-value
// Directly access PolicyID[:] if you need to modify the PolicyID
func (id PolicyID) Bytes() []byte {
	return id[:]
}

// ToPolicyID attempts to convert a byte slice into a policy id
func ToPolicyID(bytes []byte) (PolicyID, error) {
	policyID, err := ToShortID(bytes)
	return PolicyID(policyID), err
}

func (id PolicyID) String() string {
	return ShortID(id).PrefixedString(PolicyIDPrefix)
}

// PolicyIDFromString is the inverse of PolicyID.String()
func PolicyIDFromString(policyIDStr string) (PolicyID, error) {
	asShort, err := ShortFromPrefixedString(policyIDStr, PolicyIDPrefix)
	if err != nil {
		return PolicyID{}, err
	}
	return PolicyID(asShort), nil
}

func (id PolicyID) MarshalJSON() ([]byte, error) {
	return []byte("\"" + id.String() + "\""), nil
}

func (id *PolicyID) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == nullStr { // If "null", do nothing
		return nil
	} else if len(str) <= 2+len(PolicyIDPrefix) {
		return fmt.Errorf("%w: expected to be > %d", errShortPolicyID, 2+len(PolicyIDPrefix))
	}

	lastIndex := len(str) - 1
	if str[0] != '"' || str[lastIndex] != '"' {
		return errMissingQuotes
	}

	var err error
	*id, err = PolicyIDFromString(str[1:lastIndex])
	return err
}

func (id PolicyID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *PolicyID) UnmarshalText(text []byte) error {
	return id.UnmarshalJSON(text)
}

func (id PolicyID) Less(other PolicyID) bool {
	return bytes.Compare(id[:], other[:]) == -1
}
