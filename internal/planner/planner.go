package planner

import (
	"math/rand"
	"time"

	"nutriverse/internal/catalog"
	"nutriverse/internal/shared"
)

const (
	// snackCalorieLimit caps the preferred candidate pool for the evening
	// snack slot. Meals above the limit are still eligible when nothing
	// lighter exists.
	snackCalorieLimit = 250

	// duplicateRetryLimit bounds the redraws used to avoid repeating a meal
	// within the same day. Once spent, the duplicate is accepted:
	// availability takes priority over novelty.
	duplicateRetryLimit = 50
)

// Profile is the slice of a user profile the generator needs.
type Profile struct {
	Diet      catalog.Diet
	Plan      catalog.PlanTag
	Allergies []string
}

// Generator produces randomized weekly meal plans from a catalog. It is a
// pure function over its inputs; persisting the result is the caller's job.
type Generator struct {
	catalog catalog.Provider
	rng     *rand.Rand

	// IncludeEveningSnack adds a fourth slot to each day, filled from the
	// low-calorie pool when one exists.
	IncludeEveningSnack bool
}

// New creates a Generator. Pass a seeded rand to make output reproducible
// in tests; a nil rng gets a time-seeded source.
func New(provider catalog.Provider, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{catalog: provider, rng: rng}
}

// Catalog exposes the provider backing this generator.
func (g *Generator) Catalog() catalog.Provider {
	return g.catalog
}

// Generate builds a full 7-day plan for the profile. Two calls with the
// same inputs are expected to differ: selection is deliberately random.
func (g *Generator) Generate(profile Profile) (WeeklyMealPlan, error) {
	if profile.Diet == "" || profile.Plan == "" {
		return nil, shared.ErrIncompleteProfile
	}

	available := g.availableMeals(profile)
	if len(available) == 0 {
		return nil, shared.ErrNoCandidates
	}

	var snackPool []catalog.Meal
	for _, m := range available {
		if m.Calories <= snackCalorieLimit {
			snackPool = append(snackPool, m)
		}
	}

	slots := BaseSlots
	if g.IncludeEveningSnack {
		slots = append([]Slot{}, BaseSlots...)
		slots = append(slots, EveningSnack)
	}

	plan := make(WeeklyMealPlan, len(Days))
	for _, day := range Days {
		dayMeals := make(DayMeals, len(slots))
		used := make(map[string]bool, len(slots))

		for _, slot := range slots {
			pool := available
			if slot == EveningSnack && len(snackPool) > 0 {
				pool = snackPool
			}

			meal := g.draw(pool, used)
			used[meal.Name] = true
			dayMeals[slot] = &MealAssignment{
				Name:     meal.Name,
				Calories: meal.Calories,
				Emoji:    meal.Emoji,
			}
		}
		plan[day] = dayMeals
	}

	return plan, nil
}

func (g *Generator) availableMeals(profile Profile) []catalog.Meal {
	var out []catalog.Meal
	for _, m := range g.catalog.MealsFor(profile.Diet, profile.Plan) {
		if m.ContainsAny(profile.Allergies) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// draw picks uniformly from the pool, redrawing while the pick repeats a
// meal already assigned on the same day, up to duplicateRetryLimit.
func (g *Generator) draw(pool []catalog.Meal, used map[string]bool) catalog.Meal {
	meal := pool[g.rng.Intn(len(pool))]
	for attempt := 0; used[meal.Name] && attempt < duplicateRetryLimit; attempt++ {
		meal = pool[g.rng.Intn(len(pool))]
	}
	return meal
}
