// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package json

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
)

var errNoMethod = errors.New("method missing from the request")

// NewCodec returns the JSON-RPC 2.0 codec every API service registers for
// the application/json content types. Method names arrive on the wire in
// camelCase ("vault.evaluateSpend") and are mapped onto the exported Go
// methods of the registered services.
func NewCodec() rpc.Codec {
	return codec{json2.NewCodec()}
}

type codec struct {
	*json2.Codec
}

func (c codec) NewRequest(r *http.Request) rpc.CodecRequest {
	return codecRequest{c.Codec.NewRequest(r)}
}

type codecRequest struct {
	rpc.CodecRequest
}

// Method returns the method of the request with the first character of the
// function name uppercased
func (cr codecRequest) Method() (string, error) {
	method, err := cr.CodecRequest.Method()
	if err != nil {
		return "", err
	}

	methodSections := strings.SplitN(method, ".", 2)
	if len(methodSections) != 2 {
		return method, errNoMethod
	}

	service, function := methodSections[0], methodSections[1]
	if len(function) == 0 {
		return method, errNoMethod
	}
	return service + "." + strings.ToUpper(function[:1]) + function[1:], nil
}
