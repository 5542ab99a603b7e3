package api

import (
	"net/http"

	"go.uber.org/zap"

	"nutriverse/internal/logger"
	"nutriverse/internal/metrics"
	"nutriverse/internal/user"
)

type authResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req user.SignupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, token, err := s.auth.Signup(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	s.metrics.Record(metrics.EventUserSignup, u.ID)
	logger.Info("User signed up", zap.String("user_id", u.ID), zap.String("role", string(u.Role)))
	writeJSON(w, http.StatusCreated, authResponse{Token: token, User: u})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	u, token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Token: token, User: u})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, currentUser(r))
}

func (s *Server) handleListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := s.users.ListDoctors(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doctors)
}
