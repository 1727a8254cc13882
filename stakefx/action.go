// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stakefx

import (
	"encoding/json"
	"errors"
	"fmt"

	avajson "github.com/stakevault/stakevaultgo/utils/json"
)

const (
	mintActionType    = "mint"
	burnActionType    = "burn"
	depositActionType = "depositReward"
)

var (
	errNoMintAmount = errors.New("mint action requires an amount")

	_ Action = (*MintAction)(nil)
	_ Action = (*BurnAction)(nil)
	_ Action = (*DepositRewardAction)(nil)
)

// Action is the redeemer: what a transaction claims to be doing. The set
// is closed; anything the type switch in VerifyMint doesn't name is
// rejected as an unknown action.
type Action interface {
	fmt.Stringer

	// isAction restricts implementations to this package. New actions are
	// protocol changes, not extensions.
	isAction()
}

// MintAction declares that [Amount] underlying tokens are being staked in
// exchange for the same amount of LP tokens.
type MintAction struct {
	Amount int64 `json:"amount"`
}

func (*MintAction) isAction() {}

func (a *MintAction) String() string {
	return fmt.Sprintf("mint(%d)", a.Amount)
}

// BurnAction declares that LP tokens are being burned to release stake.
type BurnAction struct{}

func (*BurnAction) isAction() {}

func (*BurnAction) String() string {
	return burnActionType
}

// DepositRewardAction declares an admin top-up of the reward pool.
type DepositRewardAction struct{}

func (*DepositRewardAction) isAction() {}

func (*DepositRewardAction) String() string {
	return depositActionType
}

// actionEnvelope is the wire form of an action: a type tag plus the
// fields the tagged action carries.
type actionEnvelope struct {
	Type   string         `json:"type"`
	Amount *avajson.Int64 `json:"amount,omitempty"`
}

func MarshalAction(action Action) ([]byte, error) {
	switch a := action.(type) {
	case *MintAction:
		amount := avajson.Int64(a.Amount)
		return json.Marshal(actionEnvelope{
			Type:   mintActionType,
			Amount: &amount,
		})
	case *BurnAction:
		return json.Marshal(actionEnvelope{Type: burnActionType})
	case *DepositRewardAction:
		return json.Marshal(actionEnvelope{Type: depositActionType})
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}
}

// UnmarshalAction decodes an action envelope. Unknown type tags are
// rejected, never decoded to a zero-value action.
func UnmarshalAction(b []byte) (Action, error) {
	var envelope actionEnvelope
	if err := json.Unmarshal(b, &envelope); err != nil {
		return nil, &Error{Class: DataError, Err: err}
	}

	switch envelope.Type {
	case mintActionType:
		if envelope.Amount == nil {
			return nil, &Error{Class: DataError, Err: errNoMintAmount}
		}
		return &MintAction{Amount: int64(*envelope.Amount)}, nil
	case burnActionType:
		return &BurnAction{}, nil
	case depositActionType:
		return &DepositRewardAction{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, envelope.Type)
	}
}
