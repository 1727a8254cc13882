// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vaultapi

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stakevault/stakevaultgo/stakefx"
	"github.com/stakevault/stakevaultgo/utils/wrappers"
)

type metrics struct {
	numAccepted prometheus.Counter
	numRejected *prometheus.CounterVec
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		numAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_accepted",
			Help:      "number of evaluations that produced an accepting verdict",
		}),
		numRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_rejected",
			Help:      "number of evaluations that produced a rejecting verdict",
		}, []string{"class"}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.numAccepted),
		registerer.Register(m.numRejected),
	)
	return m, errs.Err
}

func (m *metrics) markAccepted() {
	m.numAccepted.Inc()
}

func (m *metrics) markRejected(class stakefx.Class) {
	m.numRejected.WithLabelValues(class.String()).Inc()
}
