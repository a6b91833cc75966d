// Package server assembles the route table and middleware stack into an
// http.Server and runs it with graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/schanne-job/pure-go-rest-api/internal/auth"
	"github.com/schanne-job/pure-go-rest-api/internal/hello"
	"github.com/schanne-job/pure-go-rest-api/internal/middleware"
	"github.com/schanne-job/pure-go-rest-api/internal/router"
)

// Config holds server construction parameters. Zero values are filled in by
// withDefaults, so the zero Config is usable.
type Config struct {
	// Addr is the listen address. Defaults to ":8080".
	Addr string

	// Username and Password gate /api/hello behind HTTP Basic auth. If
	// either is empty the gate is not attached and the endpoint is public.
	Username string
	Password string

	// Realm labels the Basic-auth protection space. Defaults to "hello".
	Realm string

	// ShutdownTimeout bounds how long Run waits for in-flight requests
	// after its context is cancelled. Defaults to 10 s.
	ShutdownTimeout time.Duration

	// Logger receives request and lifecycle logs. If nil, log.Default()
	// is used.
	Logger *log.Logger
}

func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.Realm == "" {
		c.Realm = "hello"
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	return c
}

// Server is the assembled service.
type Server struct {
	cfg     Config
	handler http.Handler
	httpSrv *http.Server
}

// New builds the route table and middleware stack for cfg. The stack, outer
// to inner: Logging, Recovery, then per-route the optional credential gate.
func New(cfg Config) *Server {
	cfg = cfg.withDefaults()

	helloHandler := http.Handler(hello.Handler(cfg.Logger))
	if cfg.Username != "" && cfg.Password != "" {
		creds := auth.StaticCredentials{Username: cfg.Username, Password: cfg.Password}
		helloHandler = auth.Basic(cfg.Realm, creds, cfg.Logger)(helloHandler)
	}

	r := router.New()
	r.Handle(http.MethodGet, "/api/hello", helloHandler)

	handler := middleware.Chain(r,
		middleware.Logging(cfg.Logger),
		middleware.Recovery(cfg.Logger),
	)

	return &Server{
		cfg:     cfg,
		handler: handler,
		httpSrv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
		},
	}
}

// Handler returns the fully assembled request handler. Tests drive it
// directly through httptest without opening a listener.
func (s *Server) Handler() http.Handler { return s.handler }

// Run serves until ctx is cancelled, then shuts down gracefully: no new
// connections, in-flight requests get up to ShutdownTimeout to finish.
// http.ErrServerClosed is the expected outcome of a clean shutdown and is
// not reported as an error.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.cfg.Logger.Info("listening", "addr", s.cfg.Addr)
		if err := s.httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.cfg.Logger.Info("shutdown requested, draining in-flight requests")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
