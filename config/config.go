// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config turns CLI flags, environment variables, and an optional
// config file into the configuration of one stakevault process.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	stdjson "encoding/json"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/stakevault/stakevaultgo/components/txs"
	"github.com/stakevault/stakevaultgo/ids"
	"github.com/stakevault/stakevaultgo/stakefx"
	"github.com/stakevault/stakevaultgo/utils/constants"
	"github.com/stakevault/stakevaultgo/utils/logging"
)

var (
	homeDir                = os.ExpandEnv("$HOME")
	defaultDataDir         = filepath.Join(homeDir, "."+constants.AppName)
	defaultVaultConfigPath = filepath.Join(defaultDataDir, "vault.json")
	defaultProfileDir      = filepath.Join(defaultDataDir, "profiles")

	errServeWithEvaluation = errors.New("serve mode and one shot evaluation flags are mutually exclusive")
	errBothEvaluations     = errors.New("--own-input and --action are mutually exclusive")
	errNothingToDo         = errors.New("nothing to do: need --http, --own-input, or --action")
	errNoSnapshot          = errors.New("one shot evaluation needs --snapshot")
	errActionNeedsPolicy   = errors.New("--action needs --policy")
)

// ProfilerConfig controls the continuous profiler.
type ProfilerConfig struct {
	Dir         string        `json:"dir"`
	Enabled     bool          `json:"enabled"`
	Freq        time.Duration `json:"freq"`
	MaxNumFiles int           `json:"maxNumFiles"`
}

// Config is everything one invocation of the binary was asked to do: serve
// the evaluation API over HTTP, or evaluate a single snapshot and exit.
type Config struct {
	// Serve the HTTP API until signalled instead of evaluating one snapshot
	Serve bool

	HTTPHost           string
	HTTPPort           uint16
	HTTPAllowedOrigins []string

	LoggingConfig  logging.Config
	ProfilerConfig ProfilerConfig

	// VaultConfig names the deployment being validated. Decoded from the
	// file named by --vault-config.
	VaultConfig stakefx.Config

	// One shot evaluation. OwnInput selects a withdrawal evaluation, Action
	// and Policy a mint evaluation.
	SnapshotPath string
	OwnInput     *txs.UTXOID
	Action       []byte
	Policy       ids.PolicyID
}

// BuildFlagSet returns the complete set of flags for the binary
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(constants.AppName, pflag.ContinueOnError)

	// If true, print the version and quit
	fs.Bool(VersionKey, false, "If true, print version and quit")

	// Config
	fs.String(ConfigFileKey, "", "Specifies a config file")
	fs.String(VaultConfigFileKey, defaultVaultConfigPath, "JSON file naming the vault's policies, tokens, admin, and reward rate")

	// One shot evaluation
	fs.String(SnapshotFileKey, "", "JSON transaction snapshot to evaluate")
	fs.String(OwnInputKey, "", "Vault input being spent, as txID:index. Evaluates the snapshot as a withdrawal")
	fs.String(ActionKey, "", `Declared redeemer action, e.g. {"type":"mint","amount":"5"}. Evaluates the snapshot as a mint`)
	fs.String(PolicyKey, "", "Minting policy the declared action exercises")

	// HTTP API
	fs.Bool(HTTPKey, false, "Serve the evaluation API over HTTP instead of evaluating one snapshot")
	fs.String(HTTPHostKey, constants.DefaultHTTPHost, "Address of the HTTP server")
	fs.Uint(HTTPPortKey, uint(constants.DefaultHTTPPort), "Port of the HTTP server")
	fs.StringSlice(HTTPAllowedOriginsKey, []string{"*"}, "Origins to allow on the HTTP port")

	// Logging
	fs.String(LogsDirKey, "", "Logging directory. If left blank, logs only go to the console")
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, trace, debug, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", "The log display level. If left blank, will inherit the value of log-level. Otherwise, should be one of {verbo, trace, debug, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, "auto", "The structure of log format. Defaults to 'auto' which formats terminal-friendly logs, when the output is a terminal. Otherwise, should be one of {auto, plain, colors, json}")
	fs.Int(LogRotaterMaxSizeKey, 8, "The maximum file size in megabytes of the log file before it gets rotated")
	fs.Int(LogRotaterMaxFilesKey, 7, "The maximum number of old log files to retain")
	fs.Int(LogRotaterMaxAgeKey, 0, "The maximum number of days to retain old log files based on the timestamp encoded in their filename. 0 means retain all old log files")
	fs.Bool(LogRotaterCompressEnabledKey, false, "Whether the rotated log files should be compressed using gzip")

	// Profiling
	fs.String(ProfileDirKey, defaultProfileDir, "Path to the profile directory")
	fs.Bool(ProfileContinuousEnabledKey, false, "Whether the app should continuously produce performance profiles")
	fs.Duration(ProfileContinuousFreqKey, 15*time.Minute, "How frequently to rotate performance profiles")
	fs.Int(ProfileContinuousMaxFilesKey, 5, "Maximum number of historical profiles to keep")

	return fs
}

// BuildViper returns the viper environment from parsing [args] and, when
// --config-file names one, a config file.
func BuildViper(args []string) (*viper.Viper, error) {
	fs := BuildFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(constants.AppName)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		v.SetConfigFile(os.ExpandEnv(v.GetString(ConfigFileKey)))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	config := logging.Config{}
	config.Directory = os.ExpandEnv(v.GetString(LogsDirKey))

	var err error
	config.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return config, err
	}

	logDisplayLevel := v.GetString(LogLevelKey)
	if v.IsSet(LogDisplayLevelKey) {
		logDisplayLevel = v.GetString(LogDisplayLevelKey)
	}
	config.DisplayLevel, err = logging.ToLevel(logDisplayLevel)
	if err != nil {
		return config, err
	}

	config.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey), os.Stdout.Fd())
	if err != nil {
		return config, err
	}

	config.MaxSize = v.GetInt(LogRotaterMaxSizeKey)
	config.MaxFiles = v.GetInt(LogRotaterMaxFilesKey)
	config.MaxAge = v.GetInt(LogRotaterMaxAgeKey)
	config.Compress = v.GetBool(LogRotaterCompressEnabledKey)
	return config, nil
}

func getVaultConfig(v *viper.Viper) (stakefx.Config, error) {
	path := os.ExpandEnv(v.GetString(VaultConfigFileKey))
	bytes, err := os.ReadFile(path)
	if err != nil {
		return stakefx.Config{}, fmt.Errorf("couldn't read vault config %q: %w", path, err)
	}

	config := stakefx.Config{}
	if err := stdjson.Unmarshal(bytes, &config); err != nil {
		return stakefx.Config{}, fmt.Errorf("couldn't parse vault config %q: %w", path, err)
	}
	return config, nil
}

// getEvaluation reads the one shot evaluation flags and checks that, taken
// together with serve mode, they describe exactly one thing to do.
func getEvaluation(v *viper.Viper, config *Config) error {
	config.SnapshotPath = os.ExpandEnv(v.GetString(SnapshotFileKey))

	if v.IsSet(OwnInputKey) {
		ref, err := txs.UTXOIDFromString(v.GetString(OwnInputKey))
		if err != nil {
			return fmt.Errorf("couldn't parse --%s: %w", OwnInputKey, err)
		}
		config.OwnInput = &ref
	}

	if v.IsSet(ActionKey) {
		config.Action = []byte(v.GetString(ActionKey))
		if !v.IsSet(PolicyKey) {
			return errActionNeedsPolicy
		}
	}

	if v.IsSet(PolicyKey) {
		policy, err := ids.PolicyIDFromString(v.GetString(PolicyKey))
		if err != nil {
			return fmt.Errorf("couldn't parse --%s: %w", PolicyKey, err)
		}
		config.Policy = policy
	}

	switch {
	case config.Serve:
		if config.SnapshotPath != "" || config.OwnInput != nil || len(config.Action) > 0 {
			return errServeWithEvaluation
		}
	case config.OwnInput != nil && len(config.Action) > 0:
		return errBothEvaluations
	case config.OwnInput == nil && len(config.Action) == 0:
		return errNothingToDo
	case config.SnapshotPath == "":
		return errNoSnapshot
	}
	return nil
}

// GetConfig returns the config of the process from the viper environment
func GetConfig(v *viper.Viper) (Config, error) {
	config := Config{
		Serve:              v.GetBool(HTTPKey),
		HTTPHost:           v.GetString(HTTPHostKey),
		HTTPPort:           uint16(v.GetUint(HTTPPortKey)),
		HTTPAllowedOrigins: v.GetStringSlice(HTTPAllowedOriginsKey),
		ProfilerConfig: ProfilerConfig{
			Dir:         os.ExpandEnv(v.GetString(ProfileDirKey)),
			Enabled:     v.GetBool(ProfileContinuousEnabledKey),
			Freq:        v.GetDuration(ProfileContinuousFreqKey),
			MaxNumFiles: v.GetInt(ProfileContinuousMaxFilesKey),
		},
	}

	var err error
	if config.LoggingConfig, err = getLoggingConfig(v); err != nil {
		return Config{}, err
	}
	if config.VaultConfig, err = getVaultConfig(v); err != nil {
		return Config{}, err
	}
	if err := getEvaluation(v, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}
