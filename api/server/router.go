// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
)

var errDuplicateRoute = errors.New("duplicate route")

type router struct {
	lock   sync.RWMutex
	router *mux.Router

	routes map[string]http.Handler
}

func newRouter() *router {
	return &router{
		router: mux.NewRouter(),
		routes: make(map[string]http.Handler),
	}
}

func (r *router) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	r.router.ServeHTTP(writer, request)
}

func (r *router) AddRouter(base, endpoint string, handler http.Handler) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	url := base + endpoint
	if _, exists := r.routes[url]; exists {
		return fmt.Errorf("%w: %s", errDuplicateRoute, url)
	}
	r.routes[url] = handler
	r.router.Handle(url, handler)
	return nil
}
