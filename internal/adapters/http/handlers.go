package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"clubhouse/internal/application/club"
	"clubhouse/internal/application/listutil"
	"clubhouse/internal/application/projections"
	"clubhouse/internal/domain/activity"
	"clubhouse/internal/domain/calendar"
	"clubhouse/internal/domain/lookup"
	"clubhouse/internal/domain/member"
	"clubhouse/internal/domain/payment"
	"clubhouse/internal/domain/season"
	"clubhouse/internal/domain/settings"
	"clubhouse/internal/domain/task"
)

// page wraps a page of items with its pagination metadata.
type page[T any] struct {
	Items []T `json:"items"`
	listutil.PageInfo
}

func paged[T any](r *http.Request, items []T) page[T] {
	slice, info := listutil.Paginate(items, listutil.ParsePageParams(r.URL.Query()))
	return page[T]{Items: slice, PageInfo: info}
}

// Members

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	all, err := s.app.Members(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, paged(r, all))
}

func (s *Server) handleSaveMember(w http.ResponseWriter, r *http.Request) {
	var value member.Member
	if !s.readJSON(w, r, &value) {
		return
	}
	saved, err := s.app.SaveMember(r.Context(), value)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDeleteMember(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteMember(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Activities

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	all, err := s.app.Activities(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, paged(r, all))
}

func (s *Server) handleSaveActivity(w http.ResponseWriter, r *http.Request) {
	var value activity.Activity
	if !s.readJSON(w, r, &value) {
		return
	}
	saved, err := s.app.SaveActivity(r.Context(), value)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteActivity(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Payments

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
	all, err := s.app.Payments(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, paged(r, all))
}

func (s *Server) handleSavePayment(w http.ResponseWriter, r *http.Request) {
	var value payment.Payment
	if !s.readJSON(w, r, &value) {
		return
	}
	saved, err := s.app.SavePayment(r.Context(), value)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDeletePayment(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeletePayment(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Tasks

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	all, err := s.app.Tasks(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleSaveTask(w http.ResponseWriter, r *http.Request) {
	var value task.Task
	if !s.readJSON(w, r, &value) {
		return
	}
	saved, err := s.app.SaveTask(r.Context(), value)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteTask(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Calendar events

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	all, err := s.app.Events(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleSaveEvent(w http.ResponseWriter, r *http.Request) {
	var value calendar.Event
	if !s.readJSON(w, r, &value) {
		return
	}
	saved, err := s.app.SaveEvent(r.Context(), value)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Lookup tables

func (s *Server) handleListMembershipTypes(w http.ResponseWriter, r *http.Request) {
	all, err := s.app.MembershipTypes(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleSaveMembershipType(w http.ResponseWriter, r *http.Request) {
	var value lookup.MembershipType
	if !s.readJSON(w, r, &value) {
		return
	}
	saved, err := s.app.SaveMembershipType(r.Context(), value)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDeleteMembershipType(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteMembershipType(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	all, err := s.app.PaymentMethods(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleSavePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var value lookup.PaymentMethod
	if !s.readJSON(w, r, &value) {
		return
	}
	saved, err := s.app.SavePaymentMethod(r.Context(), value)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDeletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeletePaymentMethod(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListEventTypes(w http.ResponseWriter, r *http.Request) {
	all, err := s.app.EventTypes(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleSaveEventType(w http.ResponseWriter, r *http.Request) {
	var value lookup.EventType
	if !s.readJSON(w, r, &value) {
		return
	}
	saved, err := s.app.SaveEventType(r.Context(), value)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDeleteEventType(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteEventType(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Seasons

func (s *Server) handleListSeasons(w http.ResponseWriter, r *http.Request) {
	all, err := s.app.Seasons(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, all)
}

// handleCreateSeason responds 202: the season exists but the forward
// copy runs in the background.
func (s *Server) handleCreateSeason(w http.ResponseWriter, r *http.Request) {
	var value season.Season
	if !s.readJSON(w, r, &value) {
		return
	}
	created, _, err := s.app.CreateSeason(r.Context(), value)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusAccepted, created)
}

func (s *Server) handleActivateSeason(w http.ResponseWriter, r *http.Request) {
	if err := s.app.ActivateSeason(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpdateSeason(w http.ResponseWriter, r *http.Request) {
	var value season.Season
	if !s.readJSON(w, r, &value) {
		return
	}
	value.ID = chi.URLParam(r, "id")
	if err := s.app.UpdateSeason(r.Context(), value); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, value)
}

func (s *Server) handleDeleteSeason(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteSeason(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Settings

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.app.Settings(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, prefs)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var value settings.Settings
	if !s.readJSON(w, r, &value) {
		return
	}
	updated, err := s.app.UpdateSettings(r.Context(), value)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, updated)
}

// Snapshot

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	snap, err := s.app.Export(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="clubhouse-backup.json"`)
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var snap club.Snapshot
	if !s.readJSON(w, r, &snap) {
		return
	}
	if err := s.app.Import(r.Context(), snap); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Dashboard

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := projections.GetSeasonStats(r.Context(), s.app)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	info, err := s.app.DatabaseInfo(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, info)
}
