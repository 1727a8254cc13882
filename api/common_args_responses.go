// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

// This file contains structs shared by arguments and responses across
// services.

// EmptyReply indicates that an api doesn't have a response to return.
type EmptyReply struct{}
