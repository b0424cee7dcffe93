package http

import (
	"errors"
	"net/http"

	"clubhouse/internal/application/club"
	"clubhouse/internal/domain/activity"
	"clubhouse/internal/domain/calendar"
	"clubhouse/internal/domain/lookup"
	"clubhouse/internal/domain/member"
	"clubhouse/internal/domain/payment"
	"clubhouse/internal/domain/season"
	"clubhouse/internal/domain/task"
)

// validationErrors are domain rejections of user input: 400.
var validationErrors = []error{
	member.ErrEmptyLastName,
	member.ErrEmptyFirstName,
	member.ErrNameTooLong,
	member.ErrInvalidEmail,
	member.ErrInvalidGender,
	activity.ErrEmptyName,
	activity.ErrNegativePrice,
	payment.ErrEmptyMemberID,
	payment.ErrEmptyActivityID,
	payment.ErrNegativeAmount,
	payment.ErrInvalidStatus,
	task.ErrEmptyName,
	task.ErrInvalidPriority,
	task.ErrInvalidStatus,
	calendar.ErrEmptyTitle,
	calendar.ErrTitleTooLong,
	calendar.ErrEmptyStartDate,
	calendar.ErrEndBeforeStart,
	calendar.ErrDescriptionLong,
	calendar.ErrLocationLong,
	lookup.ErrEmptyName,
	lookup.ErrNegativePrice,
	lookup.ErrEmptyColor,
	season.ErrEmptyName,
	season.ErrEmptyStartDate,
	season.ErrEmptyEndDate,
	season.ErrInvalidDates,
	club.ErrUnsupportedSnapshot,
}

// conflictErrors are requests the current store state refuses: 409.
var conflictErrors = []error{
	season.ErrDuplicateName,
	season.ErrActiveSeason,
	season.ErrLastSeason,
	season.ErrFrozen,
}

// statusFor maps a facade error to its HTTP status. Anything not
// recognized is a storage-side failure: 500.
func statusFor(err error) int {
	if errors.Is(err, season.ErrNotFound) {
		return http.StatusNotFound
	}
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return http.StatusBadRequest
		}
	}
	for _, c := range conflictErrors {
		if errors.Is(err, c) {
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "error", err)
		s.writeJSON(w, status, errorBody("internal error"))
		return
	}
	s.writeJSON(w, status, errorBody(err.Error()))
}
