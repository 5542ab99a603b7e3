package api

import (
	"net/http"

	"nutriverse/internal/user"
)

type profileResponse struct {
	*user.User
	BMI float64 `json:"bmi,omitempty"`
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	writeJSON(w, http.StatusOK, profileResponse{User: u, BMI: u.BMI()})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var upd user.ProfileUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	u := currentUser(r)
	if err := s.users.UpdateProfile(r.Context(), u.ID, upd); err != nil {
		writeError(w, err)
		return
	}

	updated, err := s.users.GetByID(r.Context(), u.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{User: updated, BMI: updated.BMI()})
}
