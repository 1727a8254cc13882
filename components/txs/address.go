// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"
	"fmt"

	"github.com/stakevault/stakevaultgo/components/verify"
	"github.com/stakevault/stakevaultgo/ids"
)

const (
	KeyAddress AddressKind = iota
	ScriptAddress
)

var (
	errUnknownAddressKind = errors.New("unknown address kind")
	errEmptyAddressHash   = errors.New("address hash is empty")

	_ verify.Verifiable = Address{}
)

// AddressKind reports which credential form an address carries. Key
// addresses are controlled by a signing key, script addresses by the policy
// whose hash they carry.
type AddressKind uint8

func (k AddressKind) String() string {
	switch k {
	case KeyAddress:
		return "key"
	case ScriptAddress:
		return "script"
	default:
		return "unknown"
	}
}

func (k AddressKind) MarshalText() ([]byte, error) {
	switch k {
	case KeyAddress, ScriptAddress:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", errUnknownAddressKind, k)
	}
}

func (k *AddressKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "key":
		*k = KeyAddress
	case "script":
		*k = ScriptAddress
	default:
		return fmt.Errorf("%w: %q", errUnknownAddressKind, text)
	}
	return nil
}

// Address is the payment credential of an output.
type Address struct {
	Kind AddressKind `serialize:"true" json:"kind"`
	Hash ids.ShortID `serialize:"true" json:"hash"`
}

func NewKeyAddress(hash ids.ShortID) Address {
	return Address{
		Kind: KeyAddress,
		Hash: hash,
	}
}

func NewScriptAddress(policy ids.PolicyID) Address {
	return Address{
		Kind: ScriptAddress,
		Hash: ids.ShortID(policy),
	}
}

// Script returns the policy controlling this address. The second return
// value is false when the address is key-controlled.
func (a Address) Script() (ids.PolicyID, bool) {
	if a.Kind != ScriptAddress {
		return ids.EmptyPolicyID, false
	}
	return ids.PolicyID(a.Hash), true
}

func (a Address) Verify() error {
	switch {
	case a.Kind != KeyAddress && a.Kind != ScriptAddress:
		return fmt.Errorf("%w: %d", errUnknownAddressKind, a.Kind)
	case a.Hash == ids.ShortEmpty:
		return errEmptyAddressHash
	default:
		return nil
	}
}

func (a Address) String() string {
	if policy, ok := a.Script(); ok {
		return policy.String()
	}
	return a.Hash.String()
}
