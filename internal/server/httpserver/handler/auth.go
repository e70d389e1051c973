package handler

import (
	"net/http"

	"github.com/yndnr/mergington-go/internal/core/service"
)

// handleLogin handles POST /auth/login.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	username, err := requireParam(r, "username")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	password, err := requireParam(r, "password")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	resp, err := h.auth.Login(r.Context(), &service.LoginRequest{
		Username:  username,
		Password:  password,
		ClientIP:  getClientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		h.log(r).Warn("login rejected", "username", username, "client_ip", getClientIP(r))
		h.handleServiceError(w, r, err)
		return
	}

	h.log(r).Info("teacher logged in",
		"username", username,
		"session_id", resp.SessionID,
	)
	h.writeJSON(w, r, http.StatusOK, &LoginResponse{
		Message:     "Login successful",
		Token:       resp.Token,
		TeacherName: resp.TeacherName,
	})
}

// handleLogout handles POST /auth/logout.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	resp, err := h.auth.Logout(r.Context(), BearerToken(r))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.log(r).Info("teacher logged out", "revoked", resp.Revoked)
	h.writeJSON(w, r, http.StatusOK, &MessageResponse{Message: "Logged out successfully"})
}

// handleMe handles GET /auth/me.
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	me := h.auth.WhoAmI(r.Context(), BearerToken(r))
	h.writeJSON(w, r, http.StatusOK, &WhoAmIResponse{
		Authenticated: me.Authenticated,
		TeacherName:   me.TeacherName,
		Username:      me.Username,
	})
}
