package api

import (
	"net/http"
	"path/filepath"

	"nutriverse/internal/metrics"
)

type healthResponse struct {
	Status string            `json:"status"`
	System metrics.SysHealth `json:"system"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		System: metrics.GetSysHealth(filepath.Dir(s.cfg.DatabasePath)),
	})
}
