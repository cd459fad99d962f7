package server

import (
	"log/slog"
	"time"
)

// Option configures the server.
type Option func(*Server)

// WithLogger sets the server logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAddress sets the listen address. Defaults to ":8080".
func WithAddress(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.server.Addr = addr
		}
	}
}

// WithReadTimeout sets the HTTP read timeout. Defaults to 15 seconds.
func WithReadTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.server.ReadTimeout = d
		}
	}
}

// WithWriteTimeout sets the HTTP write timeout. Defaults to 30 seconds.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.server.WriteTimeout = d
		}
	}
}

// WithShutdownTimeout bounds graceful shutdown. Defaults to 10 seconds.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithJSTarget sets the JavaScript property the script asset assigns to.
// Defaults to catalog.DefaultJSTarget.
func WithJSTarget(target string) Option {
	return func(s *Server) {
		if target != "" {
			s.jsTarget = target
		}
	}
}

// WithCacheMaxAge sets the Cache-Control max-age of catalog responses.
// Zero disables caching. Defaults to one hour.
func WithCacheMaxAge(d time.Duration) Option {
	return func(s *Server) {
		if d >= 0 {
			s.cacheMaxAge = d
		}
	}
}

// WithArity sets the rule arity table checked by the readiness probe.
// Nil disables the check. Defaults to catalog.DefaultArity().
func WithArity(arity map[string]int) Option {
	return func(s *Server) {
		s.arity = arity
	}
}
