// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stakefx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stakevault/stakevaultgo/components/tokens"
	"github.com/stakevault/stakevaultgo/components/txs"
	"github.com/stakevault/stakevaultgo/ids"
	"github.com/stakevault/stakevaultgo/stakefx/reward"
	"github.com/stakevault/stakevaultgo/utils"
	"github.com/stakevault/stakevaultgo/utils/logging"

	avajson "github.com/stakevault/stakevaultgo/utils/json"
)

var testVaultPolicy = ids.PolicyID{0xaa}

func testConfig() *Config {
	return &Config{
		UnderlyingPolicy: ids.PolicyID{0x01},
		UnderlyingToken:  "TOK",
		LPToken:          "stTOK",
		RewardPolicy:     ids.PolicyID{0x02},
		RewardToken:      "RWD",
		Admin:            ids.ShortID{0xad},
		Reward:           reward.DefaultConfig,
	}
}

func newTestFx(t *testing.T, cfg *Config) *Fx {
	fx, err := New(cfg, logging.NoLog)
	require.NoError(t, err)
	return fx
}

// testSpendTx builds a withdrawal snapshot: the vault's own input escrows
// [staked] underlying tokens and the staking record, a second vault input
// escrows [escrowed] reward tokens, and the transaction nets [mintedLP]
// LP tokens. The validity upper bound sits [days] whole days past the
// recorded start.
func testSpendTx(cfg *Config, staked, escrowed uint64, mintedLP int64, days int64) (*txs.Tx, txs.UTXOID) {
	start := int64(1_700_000_000)
	upper := avajson.Int64(start + days*SecondsPerDay)

	ownRef := txs.UTXOID{TxID: ids.ID{0x11}, OutputIndex: 0}
	tx := &txs.Tx{
		Inputs: []txs.UTXO{
			{
				UTXOID: ownRef,
				Out: txs.Output{
					Addr:  txs.NewScriptAddress(testVaultPolicy),
					Value: tokens.Value{cfg.UnderlyingAsset(): staked},
					Datum: recordDatum(start),
				},
			},
			{
				UTXOID: txs.UTXOID{TxID: ids.ID{0x11}, OutputIndex: 1},
				Out: txs.Output{
					Addr:  txs.NewScriptAddress(testVaultPolicy),
					Value: tokens.Value{cfg.RewardAsset(): escrowed},
				},
			},
		},
		Validity: txs.Window{
			Upper: &upper,
		},
	}
	if mintedLP != 0 {
		tx.Minted = tokens.Mint{cfg.LPAsset(testVaultPolicy): mintedLP}
	}
	return tx, ownRef
}

func TestNew(t *testing.T) {
	require := require.New(t)

	_, err := New(testConfig(), logging.NoLog)
	require.NoError(err)

	_, err = New(&Config{}, logging.NoLog)
	require.ErrorIs(err, errEmptyPolicy)
}

func TestVerifySpend(t *testing.T) {
	tests := []struct {
		name        string
		staked      uint64
		escrowed    uint64
		mintedLP    int64
		days        int64
		strict      bool
		expectedErr error
	}{
		{
			name:     "reward covered exactly",
			staked:   1000,
			escrowed: 6, // floor(1000 * 30 * 8 / 36500)
			mintedLP: -1000,
			days:     30,
		},
		{
			name:     "reward over-covered",
			staked:   1000,
			escrowed: 100,
			mintedLP: -1000,
			days:     30,
		},
		{
			name:        "reward under-covered by one",
			staked:      1000,
			escrowed:    5,
			mintedLP:    -1000,
			days:        30,
			expectedErr: ErrInsufficientReward,
		},
		{
			name:     "zero days accrues nothing",
			staked:   1000,
			escrowed: 0,
			mintedLP: -1000,
			days:     0,
		},
		{
			name:     "nothing staked owes nothing",
			staked:   0,
			escrowed: 0,
			mintedLP: -1,
			days:     365,
		},
		{
			name:        "LP minted during spend",
			staked:      1000,
			escrowed:    6,
			mintedLP:    10,
			days:        30,
			expectedErr: ErrLPMintDuringSpend,
		},
		{
			name:     "untouched LP supply passes by default",
			staked:   1000,
			escrowed: 6,
			mintedLP: 0,
			days:     30,
		},
		{
			name:        "untouched LP supply rejected when strict",
			staked:      1000,
			escrowed:    6,
			mintedLP:    0,
			days:        30,
			strict:      true,
			expectedErr: ErrLPNotBurned,
		},
		{
			name:     "burned LP passes when strict",
			staked:   1000,
			escrowed: 6,
			mintedLP: -1000,
			days:     30,
			strict:   true,
		},
		{
			name:        "LP minted rejected when strict",
			staked:      1000,
			escrowed:    6,
			mintedLP:    10,
			days:        30,
			strict:      true,
			expectedErr: ErrLPMintDuringSpend,
		},
		{
			name:        "staking record from the future",
			staked:      1000,
			escrowed:    1000,
			mintedLP:    -1000,
			days:        -1,
			expectedErr: reward.ErrNegativeDuration,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			cfg := testConfig()
			cfg.StrictLPBurnOnSpend = tt.strict
			fx := newTestFx(t, cfg)

			tx, ownRef := testSpendTx(cfg, tt.staked, tt.escrowed, tt.mintedLP, tt.days)
			err := fx.VerifySpend(tx, ownRef)
			require.ErrorIs(err, tt.expectedErr)
			if tt.expectedErr != nil {
				require.NotEqual(Unclassified, ClassOf(err))
			}
		})
	}
}

func TestVerifySpendStructural(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name          string
		mutate        func(tx *txs.Tx)
		ownRef        txs.UTXOID
		expectedErr   error
		expectedClass Class
	}{
		{
			name:          "own input not found",
			ownRef:        txs.UTXOID{TxID: ids.ID{0x99}},
			expectedErr:   ErrOwnInputNotFound,
			expectedClass: StructuralError,
		},
		{
			name: "own input not a script",
			mutate: func(tx *txs.Tx) {
				tx.Inputs[0].Out.Addr = txs.NewKeyAddress(ids.ShortID{0x09})
			},
			expectedErr:   ErrNotScriptInput,
			expectedClass: StructuralError,
		},
		{
			name: "duplicate input references",
			mutate: func(tx *txs.Tx) {
				tx.Inputs[1].UTXOID = tx.Inputs[0].UTXOID
			},
			expectedClass: StructuralError,
		},
		{
			name: "no staking record",
			mutate: func(tx *txs.Tx) {
				tx.Inputs[0].Out.Datum = nil
			},
			expectedErr:   ErrNoStakingRecord,
			expectedClass: DataError,
		},
		{
			name: "malformed staking record",
			mutate: func(tx *txs.Tx) {
				tx.Inputs[0].Out.Datum = txs.Datum{0x01, 0x02, 0x03}
			},
			expectedErr:   ErrMalformedStakingRecord,
			expectedClass: DataError,
		},
		{
			name: "no validity upper bound",
			mutate: func(tx *txs.Tx) {
				tx.Validity = txs.Window{}
			},
			expectedErr:   ErrNoUpperBound,
			expectedClass: DataError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			fx := newTestFx(t, cfg)
			tx, ownRef := testSpendTx(cfg, 1000, 6, -1000, 30)
			if tt.mutate != nil {
				tt.mutate(tx)
			}
			if tt.ownRef != (txs.UTXOID{}) {
				ownRef = tt.ownRef
			}

			err := fx.VerifySpend(tx, ownRef)
			require.Error(err)
			if tt.expectedErr != nil {
				require.ErrorIs(err, tt.expectedErr)
			}
			require.Equal(tt.expectedClass, ClassOf(err))
		})
	}
}

func testMintTx(cfg *Config, staked uint64, mintedLP int64, signers ...ids.ShortID) *txs.Tx {
	utils.Sort(signers)
	tx := &txs.Tx{
		Signers: signers,
	}
	if staked != 0 {
		tx.Inputs = []txs.UTXO{{
			UTXOID: txs.UTXOID{TxID: ids.ID{0x22}, OutputIndex: 0},
			Out: txs.Output{
				Addr:  txs.NewKeyAddress(ids.ShortID{0x01}),
				Value: tokens.Value{cfg.UnderlyingAsset(): staked},
			},
		}}
	}
	if mintedLP != 0 {
		tx.Minted = tokens.Mint{cfg.LPAsset(testVaultPolicy): mintedLP}
	}
	return tx
}

type bogusAction struct{}

func (bogusAction) isAction() {}

func (bogusAction) String() string {
	return "bogus"
}

func TestVerifyMint(t *testing.T) {
	cfg := testConfig()
	admin := cfg.Admin

	tests := []struct {
		name          string
		staked        uint64
		mintedLP      int64
		signers       []ids.ShortID
		action        Action
		expectedErr   error
		expectedClass Class
	}{
		{
			name:     "deposit mints 1:1",
			staked:   1000,
			mintedLP: 1000,
			action:   &MintAction{Amount: 1000},
		},
		{
			name:        "declared more than staked",
			staked:      999,
			mintedLP:    1000,
			action:      &MintAction{Amount: 1000},
			expectedErr: ErrStakeMintMismatch,
		},
		{
			name:        "minted less than declared",
			staked:      1000,
			mintedLP:    999,
			action:      &MintAction{Amount: 1000},
			expectedErr: ErrStakeMintMismatch,
		},
		{
			name:        "declared under both figures",
			staked:      1000,
			mintedLP:    1000,
			action:      &MintAction{Amount: 500},
			expectedErr: ErrStakeMintMismatch,
		},
		{
			name:   "mint of zero against empty snapshot",
			action: &MintAction{Amount: 0},
		},
		{
			name:        "mint of zero with stake present",
			staked:      1000,
			action:      &MintAction{Amount: 0},
			expectedErr: ErrStakeMintMismatch,
		},
		{
			name:        "negative mint amount never matches",
			mintedLP:    -5,
			action:      &MintAction{Amount: -5},
			expectedErr: ErrStakeMintMismatch,
		},
		{
			name:     "burn with negative net mint",
			mintedLP: -100,
			action:   &BurnAction{},
		},
		{
			name:        "burn with zero net mint",
			mintedLP:    0,
			action:      &BurnAction{},
			expectedErr: ErrBurnNotNegative,
		},
		{
			name:        "burn with positive net mint",
			mintedLP:    100,
			action:      &BurnAction{},
			expectedErr: ErrBurnNotNegative,
		},
		{
			name:    "reward deposit signed by admin",
			signers: []ids.ShortID{{0x01}, admin},
			action:  &DepositRewardAction{},
		},
		{
			name:          "reward deposit missing admin signature",
			signers:       []ids.ShortID{{0x01}, {0x02}},
			action:        &DepositRewardAction{},
			expectedErr:   ErrAdminSignatureMissing,
			expectedClass: AuthorizationError,
		},
		{
			name:          "unknown action",
			action:        bogusAction{},
			expectedErr:   ErrUnknownAction,
			expectedClass: UnknownAction,
		},
		{
			name:          "nil action",
			action:        nil,
			expectedErr:   ErrUnknownAction,
			expectedClass: UnknownAction,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			fx := newTestFx(t, cfg)
			tx := testMintTx(cfg, tt.staked, tt.mintedLP, tt.signers...)

			err := fx.VerifyMint(tx, testVaultPolicy, tt.action)
			require.ErrorIs(err, tt.expectedErr)
			if tt.expectedClass != Unclassified {
				require.Equal(tt.expectedClass, ClassOf(err))
			}
		})
	}
}

// Two spends of the same snapshot, even through different Fx instances,
// must agree on the decision and on the exact rejection reason.
func TestDecisionsArePure(t *testing.T) {
	require := require.New(t)

	cfg := testConfig()
	fx1 := newTestFx(t, cfg)
	fx2 := newTestFx(t, testConfig())

	tx1, ownRef := testSpendTx(cfg, 1000, 5, -1000, 30)
	tx2, _ := testSpendTx(cfg, 1000, 5, -1000, 30)

	err1 := fx1.VerifySpend(tx1, ownRef)
	require.ErrorIs(err1, ErrInsufficientReward)

	err2 := fx1.VerifySpend(tx1, ownRef)
	require.EqualError(err2, err1.Error())

	err3 := fx2.VerifySpend(tx2, ownRef)
	require.EqualError(err3, err1.Error())

	mintTx1 := testMintTx(cfg, 999, 1000)
	mintTx2 := testMintTx(cfg, 999, 1000)

	err4 := fx1.VerifyMint(mintTx1, testVaultPolicy, &MintAction{Amount: 1000})
	require.ErrorIs(err4, ErrStakeMintMismatch)

	err5 := fx2.VerifyMint(mintTx2, testVaultPolicy, &MintAction{Amount: 1000})
	require.EqualError(err5, err4.Error())
}
