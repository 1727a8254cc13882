// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stakefx

import (
	"errors"
	"fmt"
)

const (
	// Unclassified marks errors that did not come from the validator.
	Unclassified Class = iota
	// StructuralError rejections mean the snapshot cannot be evaluated at
	// all: a malformed snapshot, a missing own input, a key address where
	// a script was required.
	StructuralError
	// RuleViolation rejections mean a well-formed transaction broke a
	// protocol rule.
	RuleViolation
	// AuthorizationError rejections mean a required signature is absent.
	AuthorizationError
	// DataError rejections mean required data is missing or unusable: no
	// staking record, no validity upper bound, arithmetic that cannot be
	// carried out.
	DataError
	// UnknownAction rejections mean the redeemer is outside the closed
	// action set.
	UnknownAction
)

// Every rejection reason, with its classification. The reason strings are
// part of the protocol surface: identical snapshots produce identical
// reasons, and downstream tooling matches on them.
var (
	ErrOwnInputNotFound       = &Error{Class: StructuralError, Err: errors.New("own input not found")}
	ErrNotScriptInput         = &Error{Class: StructuralError, Err: errors.New("not a script input")}
	ErrLPMintDuringSpend      = &Error{Class: RuleViolation, Err: errors.New("unexpected LP mint during spend")}
	ErrLPNotBurned            = &Error{Class: RuleViolation, Err: errors.New("no LP burned during spend")}
	ErrInsufficientReward     = &Error{Class: RuleViolation, Err: errors.New("insufficient escrowed reward")}
	ErrStakeMintMismatch      = &Error{Class: RuleViolation, Err: errors.New("stake/mint mismatch")}
	ErrBurnNotNegative        = &Error{Class: RuleViolation, Err: errors.New("burn amount not negative")}
	ErrAdminSignatureMissing  = &Error{Class: AuthorizationError, Err: errors.New("admin signature missing")}
	ErrNoStakingRecord        = &Error{Class: DataError, Err: errors.New("no staking record")}
	ErrMalformedStakingRecord = &Error{Class: DataError, Err: errors.New("malformed staking record")}
	ErrNoUpperBound           = &Error{Class: DataError, Err: errors.New("no validity upper bound")}
	ErrUnknownAction          = &Error{Class: UnknownAction, Err: errors.New("invalid redeemer action")}

	_ error = (*Error)(nil)
)

// Class partitions every rejection the validator can produce.
type Class uint8

// ToClass returns the class that corresponds to [s], which is the inverse of
// Class.String()
func ToClass(s string) (Class, error) {
	switch s {
	case "Unclassified":
		return Unclassified, nil
	case "StructuralError":
		return StructuralError, nil
	case "RuleViolation":
		return RuleViolation, nil
	case "AuthorizationError":
		return AuthorizationError, nil
	case "DataError":
		return DataError, nil
	case "UnknownAction":
		return UnknownAction, nil
	default:
		return Unclassified, fmt.Errorf("unknown rejection class: %q", s)
	}
}

func (c Class) String() string {
	switch c {
	case StructuralError:
		return "StructuralError"
	case RuleViolation:
		return "RuleViolation"
	case AuthorizationError:
		return "AuthorizationError"
	case DataError:
		return "DataError"
	case UnknownAction:
		return "UnknownAction"
	default:
		return "Unclassified"
	}
}

func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Class) UnmarshalText(b []byte) error {
	class, err := ToClass(string(b))
	*c = class
	return err
}

// Error is a classified rejection: the coarse class every rejection falls
// into plus the precise reason.
type Error struct {
	Class Class
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Class, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Reason returns the rejection reason without the class prefix.
func (e *Error) Reason() string {
	return e.Err.Error()
}

// ClassOf returns the classification of [err], or Unclassified when the
// error didn't come from the validator.
func ClassOf(err error) Class {
	var e *Error
	if errors.As(err, &e) {
		return e.Class
	}
	return Unclassified
}
