package catalog

import "testing"

func TestMealsFor(t *testing.T) {
	p := NewStaticProvider()

	t.Run("VegWeightLoss", func(t *testing.T) {
		meals := p.MealsFor(DietVeg, PlanWeightLoss)
		if len(meals) == 0 {
			t.Fatal("Expected veg weight-loss meals, got none")
		}
		for _, m := range meals {
			if m.Diet != DietVeg {
				t.Errorf("Expected diet veg, got %s for %s", m.Diet, m.Name)
			}
			if !m.SuitsPlan(PlanWeightLoss) {
				t.Errorf("Meal %s does not suit weight-loss", m.Name)
			}
		}
	})

	t.Run("UnknownDiet", func(t *testing.T) {
		if meals := p.MealsFor("keto", PlanWeightLoss); len(meals) != 0 {
			t.Errorf("Expected no meals for unknown diet, got %d", len(meals))
		}
	})

	t.Run("UnknownPlan", func(t *testing.T) {
		if meals := p.MealsFor(DietVeg, "marathon"); len(meals) != 0 {
			t.Errorf("Expected no meals for unknown plan, got %d", len(meals))
		}
	})
}

func TestExercisesFor(t *testing.T) {
	p := NewStaticProvider()

	for _, plan := range []PlanTag{PlanWeightLoss, PlanWeightGain, PlanFatLoss, PlanMuscleBuilding} {
		if exs := p.ExercisesFor(plan); len(exs) == 0 {
			t.Errorf("Expected exercises for plan %s, got none", plan)
		}
	}

	if exs := p.ExercisesFor("marathon"); len(exs) != 0 {
		t.Errorf("Expected no exercises for unknown plan, got %d", len(exs))
	}
}

func TestContainsAny(t *testing.T) {
	m := Meal{Name: "Paneer Tikka", Allergens: []string{"dairy"}}

	if !m.ContainsAny([]string{"dairy", "soy"}) {
		t.Error("Expected dairy allergy to match")
	}
	if m.ContainsAny([]string{"soy"}) {
		t.Error("Expected soy allergy not to match")
	}
	if m.ContainsAny(nil) {
		t.Error("Expected empty allergy set not to match")
	}
}

func TestAddMeals(t *testing.T) {
	p := NewStaticProvider()
	before := len(p.MealsFor(DietVegan, PlanWeightLoss))

	added := p.AddMeals([]Meal{
		{Name: "Oat Porridge", Diet: DietVegan, Calories: 210, Plans: []PlanTag{PlanWeightLoss}},
		{Name: "Mystery Meal", Diet: "keto", Calories: 100, Plans: []PlanTag{PlanWeightLoss}},
	})
	if added != 1 {
		t.Fatalf("Expected 1 meal added, got %d", added)
	}

	after := p.MealsFor(DietVegan, PlanWeightLoss)
	if len(after) != before+1 {
		t.Errorf("Expected %d meals after import, got %d", before+1, len(after))
	}
}
