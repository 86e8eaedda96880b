// Package server exposes the board store over HTTP.
//
// Routes (all JSON unless noted):
//
//	GET    /healthz                         {ok: true, build: {version, commit, date}}
//	GET    /api/boards                      {boards: [meta]}
//	POST   /api/boards                      {name?} -> 201 {board: meta}
//	GET    /api/boards/{id}                 {board: meta + payload}
//	PUT    /api/boards/{id}                 {payload, name?} -> {board: meta}
//	PATCH  /api/boards/{id}                 {name} -> {board: meta}
//	DELETE /api/boards/{id}                 {ok: true}
//	GET    /api/boards/{id}/export.{format} svg, png or pdf bytes
//	GET    /api/icons                       {icons: [{id, label}]}
//	GET    /api/icons/{id}.png?color=       png bytes
//
// Errors are {message} with a 4xx or 5xx status. Everything under /api
// passes through the configured [Authenticator].
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/whiteboard/pkg/buildinfo"
	"github.com/matzehuels/whiteboard/pkg/export"
	"github.com/matzehuels/whiteboard/pkg/icon"
	"github.com/matzehuels/whiteboard/pkg/store"
)

// ShutdownTimeout bounds graceful shutdown.
const ShutdownTimeout = 5 * time.Second

// Option configures a Server.
type Option func(*Server)

// WithAuthenticator gates /api. The default allows every request.
func WithAuthenticator(a Authenticator) Option { return func(s *Server) { s.auth = a } }

// WithLogger sets the request and error logger.
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// WithExporter sets the exporter behind the export route.
func WithExporter(e *export.Exporter) Option { return func(s *Server) { s.exporter = e } }

// WithIcons sets the resolver behind the icon route.
func WithIcons(r *icon.CachedResolver) Option { return func(s *Server) { s.icons = r } }

// Server serves the board API.
type Server struct {
	store    store.Store
	auth     Authenticator
	logger   *log.Logger
	exporter *export.Exporter
	icons    *icon.CachedResolver
}

// New returns a server over st.
func New(st store.Store, opts ...Option) *Server {
	s := &Server{
		store:  st,
		auth:   TokenAuth{},
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.icons == nil {
		s.icons = icon.NewCachedResolver(icon.NewRasterizer(icon.DefaultSize), nil, nil)
	}
	if s.exporter == nil {
		s.exporter = export.New(export.DefaultSettings(), export.WithIconResolver(s.icons), export.WithLogger(s.logger))
	}
	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "build": buildinfo.Current()})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(s.authenticate)

		r.Route("/boards", func(r chi.Router) {
			r.Get("/", s.listBoards)
			r.Post("/", s.createBoard)
			r.Get("/{id}", s.getBoard)
			r.Put("/{id}", s.saveBoard)
			r.Patch("/{id}", s.renameBoard)
			r.Delete("/{id}", s.deleteBoard)
			r.Get("/{id}/export.{format}", s.exportBoard)
		})
		r.Get("/icons", s.listIcons)
		r.Get("/icons/{id}.png", s.iconPNG)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string, readTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
