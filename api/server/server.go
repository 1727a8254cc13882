// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/handlers"
	"github.com/rs/cors"

	"go.uber.org/zap"

	"github.com/stakevault/stakevaultgo/utils/logging"
)

const (
	baseURL               = "/ext"
	serverShutdownTimeout = 10 * time.Second
)

var _ PathAdder = (*Server)(nil)

type PathAdder interface {
	// AddRoute registers a handler at /ext/[base][endpoint].
	AddRoute(handler http.Handler, base, endpoint string) error
}

// Server maintains the HTTP router and the listener behind it.
type Server struct {
	// log this server writes to
	log logging.Logger
	// maps endpoints to handlers
	router *router
	// points to the router with the middleware stack applied
	handler http.Handler
	// listens for HTTP traffic on this address
	listenHost string
	listenPort uint16

	srv *http.Server
}

// Initialize creates the API server at the provided host and port.
func (s *Server) Initialize(
	log logging.Logger,
	host string,
	port uint16,
	allowedOrigins []string,
) {
	s.log = log
	s.listenHost = host
	s.listenPort = port
	s.router = newRouter()

	s.log.Info("API created",
		zap.Strings("allowedOrigins", allowedOrigins),
	)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
	}).Handler(s.router)
	s.handler = gziphandler.GzipHandler(corsHandler)
}

// Dispatch starts the API server and blocks until it shuts down.
func (s *Server) Dispatch() error {
	listenAddress := fmt.Sprintf("%s:%d", s.listenHost, s.listenPort)
	listener, err := net.Listen("tcp", listenAddress)
	if err != nil {
		return err
	}

	s.log.Info("HTTP API server listening",
		zap.String("address", listener.Addr().String()),
	)

	s.srv = &http.Server{Handler: s.handler}
	return s.srv.Serve(listener)
}

func (s *Server) AddRoute(handler http.Handler, base, endpoint string) error {
	url := fmt.Sprintf("%s/%s", baseURL, base)
	s.log.Info("adding route",
		zap.String("url", url),
		zap.String("endpoint", endpoint),
	)

	// Apply the request logging middleware. The server's logger implements
	// io.Writer, so access lines land in the same sinks as everything else.
	h := handlers.CombinedLoggingHandler(s.log, handler)
	return s.router.AddRouter(url, endpoint, h)
}

// Shutdown this server.
func (s *Server) Shutdown() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
