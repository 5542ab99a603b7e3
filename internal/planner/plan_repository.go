package planner

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nutriverse/internal/planner/plan_db"
)

// PlanRepository is a database-backed store for weekly meal plans. Each
// user owns at most one plan; saving replaces it wholesale.
type PlanRepository struct {
	queries *plan_db.Queries
	db      *sql.DB
}

// NewPlanRepository creates a new PlanRepository.
func NewPlanRepository(d *sql.DB) *PlanRepository {
	return &PlanRepository{
		queries: plan_db.New(d),
		db:      d,
	}
}

// Save replaces the user's stored plan with the given one.
func (r *PlanRepository) Save(ctx context.Context, userID string, plan WeeklyMealPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal meal plan: %w", err)
	}

	return r.queries.UpsertMealPlan(ctx, plan_db.UpsertMealPlanParams{
		UserID:    userID,
		PlanData:  string(data),
		UpdatedAt: time.Now().UTC(),
	})
}

// Get retrieves the user's stored plan. A user without a stored plan gets
// the empty plan, indistinguishable from a cleared one.
func (r *PlanRepository) Get(ctx context.Context, userID string) (WeeklyMealPlan, error) {
	row, err := r.queries.GetMealPlanByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WeeklyMealPlan{}, nil
		}
		return nil, fmt.Errorf("failed to get meal plan for user %s: %w", userID, err)
	}

	var plan WeeklyMealPlan
	if err := json.Unmarshal([]byte(row.PlanData), &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal meal plan: %w", err)
	}
	return plan, nil
}

// Delete clears the user's stored plan.
func (r *PlanRepository) Delete(ctx context.Context, userID string) error {
	return r.queries.DeleteMealPlanByUserID(ctx, userID)
}
