// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

// The names of every CLI flag. Environment variables use the same names,
// capitalized, with hyphens replaced by underscores and prefixed by
// STAKEVAULT_.
const (
	ConfigFileKey      = "config-file"
	VersionKey         = "version"
	VaultConfigFileKey = "vault-config"

	SnapshotFileKey = "snapshot"
	OwnInputKey     = "own-input"
	ActionKey       = "action"
	PolicyKey       = "policy"

	HTTPKey               = "http"
	HTTPHostKey           = "http-host"
	HTTPPortKey           = "http-port"
	HTTPAllowedOriginsKey = "http-allowed-origins"

	LogsDirKey                   = "log-dir"
	LogLevelKey                  = "log-level"
	LogDisplayLevelKey           = "log-display-level"
	LogFormatKey                 = "log-format"
	LogRotaterMaxSizeKey         = "log-rotater-max-size"
	LogRotaterMaxFilesKey        = "log-rotater-max-files"
	LogRotaterMaxAgeKey          = "log-rotater-max-age"
	LogRotaterCompressEnabledKey = "log-rotater-compress-enabled"

	ProfileDirKey                = "profile-dir"
	ProfileContinuousEnabledKey  = "profile-continuous-enabled"
	ProfileContinuousFreqKey     = "profile-continuous-freq"
	ProfileContinuousMaxFilesKey = "profile-continuous-max-files"
)
