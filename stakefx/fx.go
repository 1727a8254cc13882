// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stakefx validates staking-vault transactions presented as
// read-only snapshots. Deposits mint a liquidity token 1:1 against the
// staked amount, withdrawals burn it and release the stake together with
// the accrued reward, and the admin tops up the reward escrow.
//
// The validator is pure: it holds no state, performs no IO, and never
// consults a clock. Evaluating the same snapshot twice yields the same
// decision and the same rejection reason.
package stakefx

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/stakevault/stakevaultgo/components/txs"
	"github.com/stakevault/stakevaultgo/ids"
	"github.com/stakevault/stakevaultgo/stakefx/reward"
	"github.com/stakevault/stakevaultgo/utils/logging"
)

// Fx is the validation core of one vault deployment.
type Fx struct {
	cfg        *Config
	log        logging.Logger
	calculator reward.Calculator
}

func New(cfg *Config, log logging.Logger) (*Fx, error) {
	if err := cfg.Verify(); err != nil {
		return nil, fmt.Errorf("invalid vault config: %w", err)
	}
	return &Fx{
		cfg:        cfg,
		log:        log,
		calculator: reward.NewCalculator(cfg.Reward),
	}, nil
}

// Config returns the configuration this Fx validates against.
func (fx *Fx) Config() *Config {
	return fx.cfg
}

// VerifySpend authorizes spending the vault's own input [ownRef] out of
// [tx]. The stake may leave escrow only if no LP tokens appear out of thin
// air and the reward owed for the staking duration is covered by the
// reward tokens among the inputs.
func (fx *Fx) VerifySpend(tx *txs.Tx, ownRef txs.UTXOID) error {
	if err := fx.verifySpend(tx, ownRef); err != nil {
		fx.log.Debug("spend rejected",
			zap.Stringer("ownRef", ownRef),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (fx *Fx) verifySpend(tx *txs.Tx, ownRef txs.UTXOID) error {
	if err := tx.Verify(); err != nil {
		return &Error{Class: StructuralError, Err: err}
	}

	ownInput, ok := tx.FindInput(ownRef)
	if !ok {
		return fmt.Errorf("%w: %s", ErrOwnInputNotFound, ownRef)
	}

	// The vault's own script credential doubles as the LP token policy.
	ownPolicy, ok := ownInput.Out.Addr.Script()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotScriptInput, ownRef)
	}

	mintedLP := tx.Minted.Of(fx.cfg.LPAsset(ownPolicy))
	switch {
	case mintedLP > 0:
		return fmt.Errorf("%w: %d", ErrLPMintDuringSpend, mintedLP)
	case fx.cfg.StrictLPBurnOnSpend && mintedLP == 0:
		return ErrLPNotBurned
	}

	totalStaked, err := tx.InputSum(fx.cfg.UnderlyingAsset())
	if err != nil {
		return &Error{Class: DataError, Err: err}
	}

	stakedDays, err := stakingDays(tx)
	if err != nil {
		return err
	}

	rewardDue, err := fx.calculator.Reward(totalStaked, stakedDays)
	if err != nil {
		return &Error{Class: DataError, Err: err}
	}

	rewardAvailable, err := tx.InputSum(fx.cfg.RewardAsset())
	if err != nil {
		return &Error{Class: DataError, Err: err}
	}

	if rewardDue > rewardAvailable {
		return fmt.Errorf("%w: %d due, %d escrowed", ErrInsufficientReward, rewardDue, rewardAvailable)
	}
	return nil
}

// VerifyMint authorizes the change [tx] makes to the supply of tokens
// under [policy], judged against what [action] declares.
func (fx *Fx) VerifyMint(tx *txs.Tx, policy ids.PolicyID, action Action) error {
	if err := fx.verifyMint(tx, policy, action); err != nil {
		fx.log.Debug("mint rejected",
			zap.Stringer("policy", policy),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (fx *Fx) verifyMint(tx *txs.Tx, policy ids.PolicyID, action Action) error {
	if err := tx.Verify(); err != nil {
		return &Error{Class: StructuralError, Err: err}
	}

	switch a := action.(type) {
	case *MintAction:
		totalStaked, err := tx.InputSum(fx.cfg.UnderlyingAsset())
		if err != nil {
			return &Error{Class: DataError, Err: err}
		}
		mintedLP := tx.Minted.Of(fx.cfg.LPAsset(policy))
		if a.Amount < 0 || totalStaked != uint64(a.Amount) || mintedLP != a.Amount {
			return fmt.Errorf("%w: %d staked, %d minted, %d declared",
				ErrStakeMintMismatch, totalStaked, mintedLP, a.Amount)
		}
		return nil

	case *BurnAction:
		if mintedLP := tx.Minted.Of(fx.cfg.LPAsset(policy)); mintedLP >= 0 {
			return fmt.Errorf("%w: %d minted", ErrBurnNotNegative, mintedLP)
		}
		return nil

	case *DepositRewardAction:
		if !tx.HasSigner(fx.cfg.Admin) {
			return ErrAdminSignatureMissing
		}
		return nil

	default:
		return fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}
}
