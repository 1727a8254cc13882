// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vaultapi exposes the vault validator over JSON-RPC so integrators
// can evaluate captured transaction snapshots without submitting anything
// on-chain.
package vaultapi

import (
	"errors"
	"net/http"

	stdjson "encoding/json"

	"github.com/gorilla/rpc/v2"
	"github.com/prometheus/client_golang/prometheus"

	"go.uber.org/zap"

	"github.com/stakevault/stakevaultgo/components/txs"
	"github.com/stakevault/stakevaultgo/ids"
	"github.com/stakevault/stakevaultgo/stakefx"
	"github.com/stakevault/stakevaultgo/utils/json"
	"github.com/stakevault/stakevaultgo/utils/logging"
)

const metricsNamespace = "vault_api"

// Service is the API service that evaluates transaction snapshots against
// one vault deployment.
type Service struct {
	log     logging.Logger
	fx      *stakefx.Fx
	metrics *metrics
}

// NewService returns a new vault API service with all methods exposed under
// the "vault" namespace.
func NewService(log logging.Logger, fx *stakefx.Fx, registerer prometheus.Registerer) (http.Handler, error) {
	metrics, err := newMetrics(metricsNamespace, registerer)
	if err != nil {
		return nil, err
	}

	server := rpc.NewServer()
	codec := json.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	return server, server.RegisterService(
		&Service{
			log:     log,
			fx:      fx,
			metrics: metrics,
		},
		"vault",
	)
}

// Verdict is the outcome of evaluating a snapshot. Rejections carry the
// rejection class and the protocol reason string. Errors that did not come
// from the validator are returned as RPC errors instead.
type Verdict struct {
	Accepted bool          `json:"accepted"`
	Class    stakefx.Class `json:"class,omitempty"`
	Reason   string        `json:"reason,omitempty"`
}

// verdict translates the validator's decision on a snapshot into [reply].
// Only classified rejections become verdicts.
func (s *Service) verdict(err error, reply *Verdict) error {
	if err == nil {
		reply.Accepted = true
		s.metrics.markAccepted()
		return nil
	}

	var rejection *stakefx.Error
	if !errors.As(err, &rejection) {
		return err
	}

	reply.Class = rejection.Class
	reply.Reason = rejection.Reason()
	s.metrics.markRejected(rejection.Class)
	return nil
}

// EvaluateSpendArgs are the arguments to EvaluateSpend
type EvaluateSpendArgs struct {
	// Tx is the transaction snapshot under evaluation
	Tx txs.Tx `json:"tx"`
	// OwnInput references the vault UTXO being spent out of [Tx]
	OwnInput txs.UTXOID `json:"ownInput"`
}

// EvaluateSpend decides whether [args.Tx] may spend the vault's own input
func (s *Service) EvaluateSpend(_ *http.Request, args *EvaluateSpendArgs, reply *Verdict) error {
	s.log.Debug("API called",
		zap.String("service", "vault"),
		zap.String("method", "evaluateSpend"),
		zap.Stringer("ownInput", args.OwnInput),
	)

	return s.verdict(s.fx.VerifySpend(&args.Tx, args.OwnInput), reply)
}

// EvaluateMintArgs are the arguments to EvaluateMint
type EvaluateMintArgs struct {
	// Tx is the transaction snapshot under evaluation
	Tx txs.Tx `json:"tx"`
	// Policy is the minting policy being exercised
	Policy ids.PolicyID `json:"policy"`
	// Action is the declared redeemer action, e.g.
	// {"type":"mint","amount":"5"}
	Action stdjson.RawMessage `json:"action"`
}

// EvaluateMint decides whether [args.Tx] may change the supply of tokens
// under [args.Policy] the way [args.Action] declares.
func (s *Service) EvaluateMint(_ *http.Request, args *EvaluateMintArgs, reply *Verdict) error {
	s.log.Debug("API called",
		zap.String("service", "vault"),
		zap.String("method", "evaluateMint"),
		zap.Stringer("policy", args.Policy),
	)

	action, err := stakefx.UnmarshalAction(args.Action)
	if err != nil {
		// A redeemer that doesn't decode is a rejection, not a transport
		// failure.
		return s.verdict(err, reply)
	}
	return s.verdict(s.fx.VerifyMint(&args.Tx, args.Policy, action), reply)
}

// ConfigReply is the vault configuration the service validates against
type ConfigReply struct {
	Config stakefx.Config `json:"config"`
}

// Config returns the active vault configuration
func (s *Service) Config(_ *http.Request, _ *struct{}, reply *ConfigReply) error {
	s.log.Debug("API called",
		zap.String("service", "vault"),
		zap.String("method", "config"),
	)

	reply.Config = *s.fx.Config()
	return nil
}
