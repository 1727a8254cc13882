// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"

	"go.uber.org/zap"
)

// Logger defines the interface that is used to keep a record of all events
// that happen to the program
type Logger interface {
	io.Writer // For logging pre-formatted messages

	// Log that a fatal error has occurred. The program should likely exit
	// soon after this is called
	Fatal(msg string, fields ...zap.Field)

	// Log that an error has occurred. The program should be able to recover
	// from this error
	Error(msg string, fields ...zap.Field)

	// Log that an event has occurred that may indicate a future error or
	// vulnerability
	Warn(msg string, fields ...zap.Field)

	// Log an event that may be useful for a user to see
	Info(msg string, fields ...zap.Field)

	// Log an event that may be useful for a programmer to see when debugging
	// the execution of the program
	Trace(msg string, fields ...zap.Field)

	// Log an event that may be useful for a programmer to see when debugging
	// the execution of the program
	Debug(msg string, fields ...zap.Field)

	// Log extremely detailed events that can be useful for inspecting every
	// aspect of the program
	Verbo(msg string, fields ...zap.Field)

	// SetLevel that this logger should log to
	SetLevel(level Level)

	// Enabled returns true if the given level is at or above this logger's
	// level
	Enabled(lvl Level) bool

	// StopOnPanic catches a panic, logs it and then rethrows it
	StopOnPanic()

	// RecoverAndPanic catches a panic in the given function, logs it and then
	// rethrows it
	RecoverAndPanic(f func())

	// RecoverAndExit catches a panic in the given function, logs it and calls
	// [exit]
	RecoverAndExit(f, exit func())

	// Stop this logger and write back all meta-data
	Stop()
}
