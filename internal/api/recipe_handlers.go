package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"nutriverse/internal/metrics"
	"nutriverse/internal/recipe"
)

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.recipes.List(r.Context(), r.URL.Query().Get("diet"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

func (s *Server) handleShareRecipe(w http.ResponseWriter, r *http.Request) {
	var req recipe.ShareRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u := currentUser(r)
	rec, err := s.recipes.Share(r.Context(), u.ID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	s.metrics.Record(metrics.EventRecipeShared, u.ID)
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	if err := s.recipes.Delete(r.Context(), chi.URLParam(r, "id"), currentUser(r).ID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
