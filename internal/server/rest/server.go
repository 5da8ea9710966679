// Package rest exposes the project, task and user managers over HTTP.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/projectmanager/internal/logging"
	"github.com/gorilla/mux"
)

// Options configures a Server.
type Options struct {
	Address         string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type Server struct {
	opts     Options
	router   *mux.Router
	handler  http.Handler
	handlers *Handlers
	metrics  *Metrics
	logger   logging.Logger
}

func NewServer(opts Options, l logging.Logger, h *Handlers, m *Metrics) *Server {
	s := &Server{
		opts:     opts,
		router:   mux.NewRouter(),
		handlers: h,
		metrics:  m,
		logger:   l.With("module", "rest_server"),
	}
	s.setupRoutes()
	return s
}

// Handler returns the router wrapped in the outer middleware chain.
func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) setupRoutes() {
	// Route-level middleware only runs for matched routes; anything that must
	// also see 404s, 405s and CORS preflights wraps the router below.
	s.router.Use(s.metricsMiddleware)
	s.router.Use(s.timeoutMiddleware)

	s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	api := s.router.PathPrefix("/").Subrouter()
	api.Use(jsonContentTypeMiddleware)

	api.HandleFunc("/", s.handlers.Home).Methods(http.MethodGet)
	api.HandleFunc("/healthz", s.handlers.Health).Methods(http.MethodGet)

	api.HandleFunc("/projects", s.handlers.ListProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects", s.handlers.CreateProject).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}", s.handlers.UpdateProject).Methods(http.MethodPut)
	api.HandleFunc("/projects/{id}", s.handlers.DeleteProject).Methods(http.MethodDelete)
	api.HandleFunc("/projects/{id}/tasks", s.handlers.ListProjectTasks).Methods(http.MethodGet)

	api.HandleFunc("/tasks", s.handlers.ListTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks", s.handlers.CreateTask).Methods(http.MethodPost)
	api.HandleFunc("/tasks/{id}", s.handlers.UpdateTask).Methods(http.MethodPut)
	api.HandleFunc("/tasks/{id}/status", s.handlers.UpdateTaskStatus).Methods(http.MethodPut)
	api.HandleFunc("/tasks/{id}", s.handlers.DeleteTask).Methods(http.MethodDelete)

	api.HandleFunc("/users", s.handlers.ListUsers).Methods(http.MethodGet)
	api.HandleFunc("/users", s.handlers.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", s.handlers.UpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", s.handlers.DeleteUser).Methods(http.MethodDelete)

	s.router.NotFoundHandler = jsonContentTypeMiddleware(http.HandlerFunc(s.handlers.NotFound))
	s.router.MethodNotAllowedHandler = jsonContentTypeMiddleware(http.HandlerFunc(s.handlers.MethodNotAllowed))

	s.handler = s.requestIDMiddleware(s.loggingMiddleware(corsMiddleware(s.router)))
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.ShutdownTimeout)
		defer cancel()
		done <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-done
}
