package ui

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tribunal/domain/core"
	"tribunal/internal"
	"tribunal/internal/container"
	apperrors "tribunal/internal/errors"
)

// Server exposes the case-management operations over HTTP. Each handler
// is synchronous: the computation completes before the response is
// written, and no background work outlives a request.
type Server struct {
	c      *container.Container
	logger *internal.Logger
	router chi.Router
}

// NewServer builds the HTTP server over a wired container.
func NewServer(c *container.Container) *Server {
	s := &Server{
		c:      c,
		logger: c.Logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/cases", func(r chi.Router) {
		r.Post("/", s.handleCreateCase)
		r.Get("/", s.handleListCases)

		r.Route("/{caseID}", func(r chi.Router) {
			r.Get("/", s.handleGetCase)

			r.Post("/requests", s.handleFileRequest)
			r.Post("/requests/{requestID}/objection", s.handleObjection)
			r.Post("/requests/{requestID}/reply", s.handleReply)
			r.Post("/requests/{requestID}/ruling", s.handleRuling)
			r.Get("/redfern.xlsx", s.handleRedfernExport)

			r.Post("/events", s.handleAddEvent)
			r.Post("/events/{eventID}/status", s.handleSetEventStatus)
			r.Get("/timeline", s.handleTimeline)

			r.Post("/extensions", s.handleFileExtension)
			r.Post("/extensions/{extensionID}/decision", s.handleExtensionDecision)

			r.Post("/costs", s.handleLogCost)
			r.Post("/offers", s.handleRecordOffer)
			r.Post("/award", s.handleFinalAward)

			r.Get("/allocation", s.handleAllocation)
			r.Get("/allocation.html", s.handleAllocationHTML)
		})
	})

	s.router = r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func caseID(r *http.Request) core.CaseID {
	return core.CaseID(chi.URLParam(r, "caseID"))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case core.IsNotFoundError(err):
		status = http.StatusNotFound
	case errors.Is(err, core.ErrInvalidTransition),
		errors.Is(err, core.ErrAlreadyResolved),
		errors.Is(err, core.ErrNegativeAmount),
		core.IsMalformedError(err):
		status = http.StatusUnprocessableEntity
	default:
		switch apperrors.GetCode(err) {
		case apperrors.CodeInvalidInput, apperrors.CodeValidationError:
			status = http.StatusBadRequest
		case apperrors.CodeNotFound:
			status = http.StatusNotFound
		}
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed: %v", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, apperrors.InvalidInput("malformed request body"))
		return false
	}
	return true
}
