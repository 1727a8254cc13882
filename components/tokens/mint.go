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

var _ verify.Verifiable = Mint{}

// Mint is the signed multiset of tokens a transaction mints. Positive
// quantities create tokens and negative quantities burn them. As with
// [Value], keying by asset guarantees one net quantity per asset.
type Mint map[Asset]int64

type mintEntry struct {
	Policy   ids.PolicyID  `json:"policy"`
	Name     TokenName     `json:"name"`
	Quantity avajson.Int64 `json:"quantity"`
}

// Of returns the net minted quantity of [asset]. Assets the transaction
// doesn't touch report 0.
func (m Mint) Of(asset Asset) int64 {
	return m[asset]
}

// Add accumulates [quantity] of [asset], failing on overflow. Assets that
// net to zero are dropped so that map presence always implies a non-zero
// quantity.
func (m Mint) Add(asset Asset, quantity int64) error {
	newQuantity, err := safemath.AddInt64(m[asset], quantity)
	if err != nil {
		return fmt.Errorf("%w while minting %d of %s", err, quantity, asset)
	}
	if newQuantity == 0 {
		delete(m, asset)
		return nil
	}
	m[asset] = newQuantity
	return nil
}

// Assets returns the assets with a non-zero net quantity, in no particular
// order.
func (m Mint) Assets() []Asset {
	return maps.Keys(m)
}

func (m Mint) Equal(other Mint) bool {
	return maps.Equal(m, other)
}

func (m Mint) Verify() error {
	for asset := range m {
		if err := asset.Verify(); err != nil {
			return err
		}
	}
	return nil
}

func (m Mint) MarshalJSON() ([]byte, error) {
	assets := m.Assets()
	utils.Sort(assets)

	entries := make([]mintEntry, len(assets))
	for i, asset := range assets {
		entries[i] = mintEntry{
			Policy:   asset.Policy,
			Name:     asset.Name,
			Quantity: avajson.Int64(m[asset]),
		}
	}
	return json.Marshal(entries)
}

func (m *Mint) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == nullStr { // If "null", do nothing
		return nil
	}

	var entries []mintEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return err
	}

	mint := make(Mint, len(entries))
	for _, entry := range entries {
		asset := NewAsset(entry.Policy, entry.Name)
		if err := mint.Add(asset, int64(entry.Quantity)); err != nil {
			return err
		}
	}
	*m = mint
	return nil
}
