// Package server exposes budget entry creation over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fjacquet/budget-form/internal/entry"
	"fjacquet/budget-form/internal/logging"
	"fjacquet/budget-form/internal/models"
	"fjacquet/budget-form/internal/protocol"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	shutdownTimeout = 10 * time.Second
	maxBodyBytes    = 1 << 20
)

// Server serves the entry API.
type Server struct {
	service  *entry.Service
	settings models.Settings
	location *time.Location
	log      logging.Logger
	router   chi.Router
}

// OptionsResponse lists the choices for accounts and tags.
type OptionsResponse struct {
	Accounts models.OptionDictionary `json:"accounts"`
	Tags     models.OptionDictionary `json:"tags"`
}

// CreatedResponse describes a created entry.
type CreatedResponse struct {
	Document models.Document  `json:"document"`
	Summary  *models.Document `json:"summary,omitempty"`
}

// New builds a Server creating entries with settings.
func New(svc *entry.Service, settings models.Settings, loc *time.Location, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	if loc == nil {
		loc = time.Local
	}
	s := &Server{service: svc, settings: settings, location: loc, log: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/options", s.listOptions)
	r.Get("/check", s.check)
	r.Route("/entries", func(r chi.Router) {
		r.Get("/new", s.newEntry)
		r.Post("/", s.createEntry)
	})

	s.router = r
	return s
}

// Handler returns the HTTP handler of the API.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Starting server", logging.F("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) listOptions(w http.ResponseWriter, r *http.Request) {
	accounts, tags, err := s.service.Options(r.Context(), s.settings)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, OptionsResponse{Accounts: accounts, Tags: tags})
}

func (s *Server) check(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Check(r.Context(), s.settings))
}

// newEntry returns the form prefilled from the query string.
func (s *Server) newEntry(w http.ResponseWriter, r *http.Request) {
	partial := protocol.FromValues(r.URL.Query(), s.location)
	form, err := s.service.Prepare(r.Context(), s.settings, partial)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

func (s *Server) createEntry(w http.ResponseWriter, r *http.Request) {
	var partial models.PartialRecord
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&partial); err != nil {
		s.fail(w, r, &badRequestError{err: err})
		return
	}

	doc, err := s.service.Submit(r.Context(), s.settings, partial, nil)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	resp := CreatedResponse{Document: doc}
	summary, ok, err := s.service.Summary(r.Context(), s.settings)
	switch {
	case err != nil:
		s.log.WithError(err).Warn("Could not look up summary file",
			logging.F(logging.FieldPath, s.settings.SummaryFilePath))
	case ok:
		resp.Summary = &summary
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	l := s.log.WithError(err).WithFields(
		logging.F(logging.FieldRoute, r.URL.Path),
		logging.F(logging.FieldStatus, status))
	if status >= http.StatusInternalServerError {
		l.Error("Request failed")
	} else {
		l.Warn("Request rejected")
	}
	writeError(w, err)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("Handled request",
			logging.F(logging.FieldMethod, r.Method),
			logging.F(logging.FieldRoute, r.URL.Path),
			logging.F(logging.FieldStatus, ww.Status()),
			logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
	})
}
