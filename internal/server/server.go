// Package server exposes a message catalog over HTTP: the raw table as JSON,
// single templates, server-side formatting, and the JavaScript asset the
// browser plugin loads.
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/ketchup/pkg/catalog"
	"github.com/dmitrymomot/ketchup/pkg/health"
	"github.com/dmitrymomot/ketchup/pkg/logger"
)

const (
	defaultAddr              = ":8080"
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	defaultCacheMaxAge       = time.Hour
	defaultMaxHeaderBytes    = 1 << 20
)

// asset is a response body rendered once at construction.
type asset struct {
	contentType string
	etag        string
	body        []byte
}

// Server serves a single immutable catalog. Apart from the listener bound by
// Run, it is immutable after New.
type Server struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
	server  *http.Server
	router  chi.Router

	// Arity table used by the readiness probe; nil disables the check.
	arity map[string]int

	js   asset
	json asset

	jsTarget        string
	cacheMaxAge     time.Duration
	shutdownTimeout time.Duration

	listener atomic.Pointer[net.Listener] // set during Run
}

// New creates a server for cat. The JSON and JavaScript representations of
// the catalog are rendered here, so request handling never re-encodes it.
func New(cat *catalog.Catalog, opts ...Option) (*Server, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}

	s := &Server{
		catalog:         cat,
		logger:          logger.Discard(),
		router:          chi.NewRouter(),
		arity:           catalog.DefaultArity(),
		jsTarget:        catalog.DefaultJSTarget,
		cacheMaxAge:     defaultCacheMaxAge,
		shutdownTimeout: defaultShutdownTimeout,
		server: &http.Server{
			Addr:              defaultAddr,
			ReadTimeout:       defaultReadTimeout,
			WriteTimeout:      defaultWriteTimeout,
			IdleTimeout:       defaultIdleTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			MaxHeaderBytes:    defaultMaxHeaderBytes,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	var buf bytes.Buffer
	if err := cat.WriteJS(&buf, s.jsTarget); err != nil {
		return nil, fmt.Errorf("server: rendering script: %w", err)
	}
	s.js = newAsset("text/javascript; charset=utf-8", buf.Bytes())

	data, err := cat.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("server: rendering json: %w", err)
	}
	s.json = newAsset("application/json", data)

	s.routes()
	s.server.Handler = s.router

	return s, nil
}

// Handler returns the root HTTP handler, for tests or embedding in another mux.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the listening address once Run has bound it, or "".
func (s *Server) Addr() string {
	ln := s.listener.Load()
	if ln == nil {
		return ""
	}
	return (*ln).Addr().String()
}

func (s *Server) routes() {
	r := s.router

	r.Use(
		requestID,
		accessLog(s.logger),
		recoverer(s.logger),
	)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrMethodNotAllowed)
	})

	r.Get("/messages", s.listMessages)
	r.Head("/messages", s.listMessages)
	r.Get("/messages/{rule}", s.getMessage)
	r.Get("/messages/{rule}/format", s.formatMessage)
	r.Get("/ketchup.messages.js", s.script)
	r.Head("/ketchup.messages.js", s.script)

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(s.readinessChecks(), health.WithLogger(s.logger)))
}

func (s *Server) readinessChecks() health.Checks {
	if s.arity == nil {
		return nil
	}
	return health.Checks{
		"catalog": func(context.Context) error {
			return s.catalog.CheckArity(s.arity)
		},
	}
}

func newAsset(contentType string, body []byte) asset {
	sum := sha256.Sum256(body)
	return asset{
		contentType: contentType,
		etag:        `"` + hex.EncodeToString(sum[:16]) + `"`,
		body:        body,
	}
}
