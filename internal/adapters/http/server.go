// Package http is the JSON API over the application facade. It carries
// no business rules: every request is decoded, handed to the facade,
// and the result (or its error) is written back.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"clubhouse/internal/application/club"
)

// Server holds the API's dependencies.
type Server struct {
	app *club.App
	log *slog.Logger
}

// NewServer creates the API server around the facade.
func NewServer(app *club.App, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{app: app, log: log}
}

// Router builds the route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/members", s.handleListMembers)
		r.Post("/members", s.handleSaveMember)
		r.Delete("/members/{id}", s.handleDeleteMember)

		r.Get("/activities", s.handleListActivities)
		r.Post("/activities", s.handleSaveActivity)
		r.Delete("/activities/{id}", s.handleDeleteActivity)

		r.Get("/payments", s.handleListPayments)
		r.Post("/payments", s.handleSavePayment)
		r.Delete("/payments/{id}", s.handleDeletePayment)

		r.Get("/tasks", s.handleListTasks)
		r.Post("/tasks", s.handleSaveTask)
		r.Delete("/tasks/{id}", s.handleDeleteTask)

		r.Get("/events", s.handleListEvents)
		r.Post("/events", s.handleSaveEvent)
		r.Delete("/events/{id}", s.handleDeleteEvent)

		r.Get("/membership-types", s.handleListMembershipTypes)
		r.Post("/membership-types", s.handleSaveMembershipType)
		r.Delete("/membership-types/{id}", s.handleDeleteMembershipType)

		r.Get("/payment-methods", s.handleListPaymentMethods)
		r.Post("/payment-methods", s.handleSavePaymentMethod)
		r.Delete("/payment-methods/{id}", s.handleDeletePaymentMethod)

		r.Get("/event-types", s.handleListEventTypes)
		r.Post("/event-types", s.handleSaveEventType)
		r.Delete("/event-types/{id}", s.handleDeleteEventType)

		r.Get("/seasons", s.handleListSeasons)
		r.Post("/seasons", s.handleCreateSeason)
		r.Post("/seasons/{id}/activate", s.handleActivateSeason)
		r.Put("/seasons/{id}", s.handleUpdateSeason)
		r.Delete("/seasons/{id}", s.handleDeleteSeason)

		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handleUpdateSettings)

		r.Get("/export", s.handleExport)
		r.Post("/import", s.handleImport)

		r.Get("/stats", s.handleStats)
		r.Get("/info", s.handleInfo)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to encode response", "error", err)
	}
}

func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
		return false
	}
	return true
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}
