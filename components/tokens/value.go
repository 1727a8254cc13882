// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tokens

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/stakevault/stakevaultgo/components/verify"
	"github.com/stakevault/stakevaultgo/ids"
	"github.com/stakevault/stakevaultgo/utils"
	avajson "github.com/stakevault/stakevaultgo/utils/json"
	safemath "github.com/stakevault/stakevaultgo/utils/math"
)

var _ verify.Verifiable = Value{}

// Value is the multiset of tokens carried by a single output. Keying by
// asset keeps each asset's quantity unique by construction: there is exactly
// one net quantity per (policy, name) pair.
//
// The JSON form is a list of entries. Entries naming the same asset are
// summed while decoding, so a round trip canonicalizes duplicates.
type Value map[Asset]uint64

type valueEntry struct {
	Policy   ids.PolicyID   `json:"policy"`
	Name     TokenName      `json:"name"`
	Quantity avajson.Uint64 `json:"quantity"`
}

// Quantity returns the amount of [asset] in this value, or 0 when the asset
// is absent.
func (v Value) Quantity(asset Asset) uint64 {
	return v[asset]
}

// Add accumulates [quantity] of [asset], failing on overflow.
func (v Value) Add(asset Asset, quantity uint64) error {
	newQuantity, err := safemath.Add64(v[asset], quantity)
	if err != nil {
		return fmt.Errorf("%w while adding %d of %s", err, quantity, asset)
	}
	if newQuantity == 0 {
		return nil
	}
	v[asset] = newQuantity
	return nil
}

// Assets returns the assets present with a non-zero quantity, in no
// particular order.
func (v Value) Assets() []Asset {
	return maps.Keys(v)
}

func (v Value) Equal(other Value) bool {
	return maps.Equal(v, other)
}

func (v Value) Verify() error {
	for asset := range v {
		if err := asset.Verify(); err != nil {
			return err
		}
	}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	assets := v.Assets()
	utils.Sort(assets)

	entries := make([]valueEntry, len(assets))
	for i, asset := range assets {
		entries[i] = valueEntry{
			Policy:   asset.Policy,
			Name:     asset.Name,
			Quantity: avajson.Uint64(v[asset]),
		}
	}
	return json.Marshal(entries)
}

func (v *Value) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == nullStr { // If "null", do nothing
		return nil
	}

	var entries []valueEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return err
	}

	value := make(Value, len(entries))
	for _, entry := range entries {
		asset := NewAsset(entry.Policy, entry.Name)
		if err := value.Add(asset, uint64(entry.Quantity)); err != nil {
			return err
		}
	}
	*v = value
	return nil
}
