// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package health

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"go.uber.org/zap"

	"github.com/stakevault/stakevaultgo/utils/logging"
)

var (
	errDuplicateCheck = errors.New("duplicate health check")

	_ Checker = CheckerFunc(nil)
)

// Checker reports the health of one component.
type Checker interface {
	// HealthCheck returns optional details to marshal for the caller and
	// an error when the component is unhealthy.
	HealthCheck(context.Context) (interface{}, error)
}

type CheckerFunc func(context.Context) (interface{}, error)

func (f CheckerFunc) HealthCheck(ctx context.Context) (interface{}, error) {
	return f(ctx)
}

// Result is the outcome of a single check.
type Result struct {
	Details interface{} `json:"details,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Health runs registered checks on demand. The service is a single
// stateless process, so checks are cheap and evaluated per request rather
// than cached by a background worker.
type Health struct {
	log  logging.Logger
	lock sync.RWMutex

	checks map[string]Checker

	// failingChecks keeps track of the number of failing checks
	failingChecks prometheus.Gauge
}

func New(log logging.Logger, namespace string, registerer prometheus.Registerer) (*Health, error) {
	h := &Health{
		log:    log,
		checks: make(map[string]Checker),
		failingChecks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "checks_failing",
			Help:      "number of currently failing health checks",
		}),
	}
	return h, registerer.Register(h.failingChecks)
}

func (h *Health) RegisterCheck(name string, checker Checker) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	if _, ok := h.checks[name]; ok {
		return fmt.Errorf("%w: %s", errDuplicateCheck, name)
	}
	h.checks[name] = checker
	return nil
}

// Results runs every registered check and reports whether all of them
// passed.
func (h *Health) Results(ctx context.Context) (map[string]Result, bool) {
	h.lock.RLock()
	defer h.lock.RUnlock()

	results := make(map[string]Result, len(h.checks))
	failing := 0
	for name, checker := range h.checks {
		details, err := checker.HealthCheck(ctx)
		result := Result{Details: details}
		if err != nil {
			failing++
			result.Error = err.Error()
			h.log.Warn("health check failed",
				zap.String("name", name),
				zap.Error(err),
			)
		}
		results[name] = result
	}
	h.failingChecks.Set(float64(failing))
	return results, failing == 0
}
