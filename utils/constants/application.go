// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

// Const variables to be exported
const (
	// AppName is the name of this application
	AppName = "stakevault"

	// DefaultHTTPHost is the host the HTTP API listens on when none is
	// configured
	DefaultHTTPHost = "127.0.0.1"

	// DefaultHTTPPort is the port the HTTP API listens on when none is
	// configured
	DefaultHTTPPort uint16 = 9850
)
