// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package admin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stakevault/stakevaultgo/api"
	"github.com/stakevault/stakevaultgo/utils/logging"
)

const testLoggerName = "vault"

// newTestAdmin returns an admin service backed by a factory with one logger.
// The factory is given a log directory so that the log level and display
// level are tracked independently.
func newTestAdmin(t *testing.T) *Admin {
	require := require.New(t)

	// The factory is not closed here. Closing it would close the console
	// core's writer, which is the process's stdout.
	factory := logging.NewFactory(logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			Directory: t.TempDir(),
		},
		LogLevel:     logging.Info,
		DisplayLevel: logging.Info,
	})

	_, err := factory.Make(testLoggerName)
	require.NoError(err)

	return &Admin{
		Config: Config{
			Log:        logging.NoLog,
			LogFactory: factory,
		},
	}
}

func TestSetLoggerLevel(t *testing.T) {
	level := logging.Debug
	tests := []struct {
		name        string
		args        SetLoggerLevelArgs
		expectedErr error
	}{
		{
			name: "set both levels",
			args: SetLoggerLevelArgs{
				LoggerName:   testLoggerName,
				LogLevel:     &level,
				DisplayLevel: &level,
			},
		},
		{
			name: "set log level only",
			args: SetLoggerLevelArgs{
				LoggerName: testLoggerName,
				LogLevel:   &level,
			},
		},
		{
			name: "empty name targets all loggers",
			args: SetLoggerLevelArgs{
				DisplayLevel: &level,
			},
		},
		{
			name: "no level given",
			args: SetLoggerLevelArgs{
				LoggerName: testLoggerName,
			},
			expectedErr: errNoLogLevel,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			service := newTestAdmin(t)
			err := service.SetLoggerLevel(nil, &tt.args, &api.EmptyReply{})
			require.ErrorIs(err, tt.expectedErr)
		})
	}
}

func TestSetLoggerLevelUnknownLogger(t *testing.T) {
	require := require.New(t)

	service := newTestAdmin(t)
	level := logging.Debug
	err := service.SetLoggerLevel(nil, &SetLoggerLevelArgs{
		LoggerName: "unknown",
		LogLevel:   &level,
	}, &api.EmptyReply{})
	require.Error(err)
}

func TestGetLoggerLevel(t *testing.T) {
	require := require.New(t)

	service := newTestAdmin(t)

	level := logging.Trace
	require.NoError(service.SetLoggerLevel(nil, &SetLoggerLevelArgs{
		LoggerName: testLoggerName,
		LogLevel:   &level,
	}, &api.EmptyReply{}))

	reply := GetLoggerLevelReply{}
	require.NoError(service.GetLoggerLevel(nil, &GetLoggerLevelArgs{
		LoggerName: testLoggerName,
	}, &reply))

	require.Len(reply.LoggerLevels, 1)
	levels := reply.LoggerLevels[testLoggerName]
	require.Equal(logging.Trace, levels.LogLevel)
	require.Equal(logging.Info, levels.DisplayLevel)
}

func TestGetLoggerLevelUnknownLogger(t *testing.T) {
	require := require.New(t)

	service := newTestAdmin(t)
	err := service.GetLoggerLevel(nil, &GetLoggerLevelArgs{
		LoggerName: "unknown",
	}, &GetLoggerLevelReply{})
	require.Error(err)
}
