package handler

import (
	"fmt"
	"net/http"

	"github.com/yndnr/mergington-go/internal/core/domain"
	"github.com/yndnr/mergington-go/internal/core/service"
)

// handleListActivities handles GET /activities.
func (h *Handler) handleListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.enrollment.List(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	resp := make(map[string]*ActivityResponse, len(activities))
	for name, a := range activities {
		resp[name] = newActivityResponse(a)
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

// handleGetActivity handles GET /activities/{name}.
func (h *Handler) handleGetActivity(w http.ResponseWriter, r *http.Request) {
	a, err := h.enrollment.Activity(r.Context(), r.PathValue("name"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, newActivityResponse(a))
}

func newActivityResponse(a *domain.Activity) *ActivityResponse {
	return &ActivityResponse{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    a.Participants,
	}
}

// handleSignup handles POST /activities/{name}/signup.
func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	activity := r.PathValue("name")
	email := r.FormValue("email")

	if err := h.enrollment.Signup(r.Context(), activity, email); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.log(r).Info("student signed up", "activity", activity, "email", email)
	h.writeJSON(w, r, http.StatusOK, &MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activity),
	})
}

// handleUnregister handles DELETE /activities/{name}/unregister.
func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	activity := r.PathValue("name")
	email := r.FormValue("email")
	id := h.identity(r)

	err := h.enrollment.Unregister(r.Context(), &service.UnregisterRequest{
		Activity: activity,
		Email:    email,
		Identity: id,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.log(r).Info("student unregistered",
		"activity", activity,
		"email", email,
		"teacher", id.Username,
	)
	h.writeJSON(w, r, http.StatusOK, &MessageResponse{
		Message: fmt.Sprintf("Teacher %s unregistered %s from %s", id.TeacherName, email, activity),
	})
}
