// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package app runs the HTTP evaluation service as a long-lived process.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	"go.uber.org/zap"

	"github.com/stakevault/stakevaultgo/api/admin"
	"github.com/stakevault/stakevaultgo/api/health"
	"github.com/stakevault/stakevaultgo/api/metrics"
	"github.com/stakevault/stakevaultgo/api/server"
	"github.com/stakevault/stakevaultgo/api/vaultapi"
	"github.com/stakevault/stakevaultgo/config"
	"github.com/stakevault/stakevaultgo/stakefx"
	"github.com/stakevault/stakevaultgo/utils/logging"
	"github.com/stakevault/stakevaultgo/utils/perms"
	"github.com/stakevault/stakevaultgo/utils/profiler"
	"github.com/stakevault/stakevaultgo/version"
)

type App interface {
	// Start kicks off the application and returns immediately
	Start() error

	// Stop notifies the application to exit and returns immediately
	Stop() error

	// ExitCode should only be called after [Start] returns with no error. It
	// blocks until the application finishes
	ExitCode() (int, error)
}

// New assembles the HTTP evaluation service described by [cfg]: the vault
// and admin RPC services, the prometheus handler, and the health endpoint,
// all behind one server.
func New(cfg config.Config) (App, error) {
	// Set the log directory permissions to be read write.
	if err := perms.ChmodR(cfg.LoggingConfig.Directory, true, perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("failed to restrict the permissions of the log directory: %w", err)
	}

	logFactory := logging.NewFactory(cfg.LoggingConfig)
	log, err := logFactory.Make("main")
	if err != nil {
		logFactory.Close()
		return nil, fmt.Errorf("failed to initialize log: %w", err)
	}

	shutdownLogs := func() {
		logFactory.Close()
	}

	vaultLog, err := logFactory.Make("vault")
	if err != nil {
		shutdownLogs()
		return nil, fmt.Errorf("failed to initialize vault log: %w", err)
	}

	fx, err := stakefx.New(&cfg.VaultConfig, vaultLog)
	if err != nil {
		shutdownLogs()
		return nil, err
	}

	log.Info("initializing service",
		zap.Stringer("version", version.Current),
		zap.Stringer("underlying", cfg.VaultConfig.UnderlyingAsset()),
		zap.Stringer("reward", cfg.VaultConfig.RewardAsset()),
	)

	registry, metricsHandler := metrics.NewService()

	vaultHandler, err := vaultapi.NewService(vaultLog, fx, registry)
	if err != nil {
		shutdownLogs()
		return nil, fmt.Errorf("failed to initialize vault API: %w", err)
	}

	adminHandler, err := admin.NewService(admin.Config{
		Log:        log,
		ProfileDir: cfg.ProfilerConfig.Dir,
		LogFactory: logFactory,
	})
	if err != nil {
		shutdownLogs()
		return nil, fmt.Errorf("failed to initialize admin API: %w", err)
	}

	healthChecker, err := health.New(log, "health", registry)
	if err != nil {
		shutdownLogs()
		return nil, fmt.Errorf("failed to initialize health API: %w", err)
	}
	// Report which deployment this process validates so probes can tell
	// deployments apart.
	err = healthChecker.RegisterCheck("vault", health.CheckerFunc(
		func(context.Context) (interface{}, error) {
			return map[string]interface{}{
				"underlying": cfg.VaultConfig.UnderlyingAsset().String(),
				"reward":     cfg.VaultConfig.RewardAsset().String(),
			}, nil
		},
	))
	if err != nil {
		shutdownLogs()
		return nil, err
	}

	srv := &server.Server{}
	srv.Initialize(log, cfg.HTTPHost, cfg.HTTPPort, cfg.HTTPAllowedOrigins)

	for _, route := range []struct {
		handler http.Handler
		base    string
	}{
		{vaultHandler, "vault"},
		{adminHandler, "admin"},
		{metricsHandler, "metrics"},
		{health.NewHandler(healthChecker), "health"},
	} {
		if err := srv.AddRoute(route.handler, route.base, ""); err != nil {
			shutdownLogs()
			return nil, fmt.Errorf("failed to register /ext/%s: %w", route.base, err)
		}
	}

	a := &app{
		config:     cfg,
		log:        log,
		logFactory: logFactory,
		server:     srv,
	}
	if cfg.ProfilerConfig.Enabled {
		a.profiler = profiler.NewContinuous(
			cfg.ProfilerConfig.Dir,
			cfg.ProfilerConfig.Freq,
			cfg.ProfilerConfig.MaxNumFiles,
		)
	}
	return a, nil
}

type app struct {
	config     config.Config
	log        logging.Logger
	logFactory logging.Factory
	server     *server.Server

	// profiler is nil unless continuous profiling was enabled
	profiler     profiler.ContinuousProfiler
	profilerOnce sync.Once

	exitWG   sync.WaitGroup
	exitCode int
}

func (a *app) Start() error {
	if a.profiler != nil {
		a.exitWG.Add(1)
		go func() {
			defer a.exitWG.Done()

			a.log.Info("dispatching continuous profiler",
				zap.String("dir", a.config.ProfilerConfig.Dir),
				zap.Duration("freq", a.config.ProfilerConfig.Freq),
			)
			if err := a.profiler.Dispatch(); err != nil {
				a.log.Error("continuous profiler failed",
					zap.Error(err),
				)
			}
		}()
	}

	// [a.ExitCode] blocks until [a.exitWG.Done] is called
	a.exitWG.Add(1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Println("caught panic", r)
			}
			// The profiler stops whenever the server does, signalled or not.
			a.shutdownProfiler()
			a.exitWG.Done()
		}()
		defer a.log.StopOnPanic()

		if err := a.server.Dispatch(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("HTTP server exited",
				zap.Error(err),
			)
			a.exitCode = 1
		}
	}()
	return nil
}

func (a *app) Stop() error {
	a.shutdownProfiler()
	return a.server.Shutdown()
}

func (a *app) ExitCode() (int, error) {
	a.exitWG.Wait()
	a.logFactory.Close()
	return a.exitCode, nil
}

func (a *app) shutdownProfiler() {
	if a.profiler != nil {
		a.profilerOnce.Do(a.profiler.Shutdown)
	}
}

// Run starts [app] and blocks until it exits, stopping it on SIGINT or
// SIGTERM. Returns the process exit code.
func Run(app App) int {
	// start running the application
	if err := app.Start(); err != nil {
		return 1
	}

	// register signals to kill the application
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT)
	signal.Notify(signals, syscall.SIGTERM)

	// start up a new go routine to handle attempts to kill the application
	var eg errgroup.Group
	eg.Go(func() error {
		for range signals {
			return app.Stop()
		}
		return nil
	})

	// wait for the app to exit and get the exit code response
	exitCode, err := app.ExitCode()

	// shut down the signal go routine
	signal.Stop(signals)
	close(signals)

	// if there was an error closing the application, report that error
	if eg.Wait() != nil {
		return 1
	}

	// if there was an error running the application, report that error
	if err != nil {
		return 1
	}

	// return the exit code that the application reported
	return exitCode
}
