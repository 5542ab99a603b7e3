package api

import (
	"net/http"

	"nutriverse/internal/catalog"
	"nutriverse/internal/shared"
)

// handleListMeals suggests catalog meals for the user's diet and plan,
// with the user's allergens filtered out. Query parameters diet and plan
// override the profile.
func (s *Server) handleListMeals(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	diet := catalog.Diet(r.URL.Query().Get("diet"))
	if diet == "" {
		diet = u.Diet
	}
	plan := catalog.PlanTag(r.URL.Query().Get("plan"))
	if plan == "" {
		plan = catalog.PlanTag(u.Plan)
	}
	if diet == "" || plan == "" {
		writeError(w, shared.ErrIncompleteProfile)
		return
	}

	allergies := u.PlannerProfile().Allergies
	meals := make([]catalog.Meal, 0)
	for _, m := range s.catalog.MealsFor(diet, plan) {
		if !m.ContainsAny(allergies) {
			meals = append(meals, m)
		}
	}
	writeJSON(w, http.StatusOK, meals)
}

// handleListExercises suggests exercises for the user's plan. The plan
// query parameter overrides the profile.
func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	plan := catalog.PlanTag(r.URL.Query().Get("plan"))
	if plan == "" {
		plan = catalog.PlanTag(currentUser(r).Plan)
	}
	if plan == "" {
		writeError(w, shared.ErrIncompleteProfile)
		return
	}
	writeJSON(w, http.StatusOK, s.catalog.ExercisesFor(plan))
}
