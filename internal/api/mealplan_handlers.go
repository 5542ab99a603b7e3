package api

import (
	"net/http"

	"go.uber.org/zap"

	"nutriverse/internal/logger"
	"nutriverse/internal/metrics"
)

func (s *Server) handleGetMealPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.plans.Get(r.Context(), currentUser(r).ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleGenerateMealPlan(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	plan, err := s.generator.Generate(u.PlannerProfile())
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.plans.Save(r.Context(), u.ID, plan); err != nil {
		writeError(w, err)
		return
	}

	s.metrics.Record(metrics.EventPlanGenerated, u.ID)
	logger.Info("Meal plan generated", zap.String("user_id", u.ID))
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleClearMealPlan(w http.ResponseWriter, r *http.Request) {
	if err := s.plans.Delete(r.Context(), currentUser(r).ID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
