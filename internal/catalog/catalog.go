package catalog

// Diet is a hard filter on meal candidates.
type Diet string

const (
	DietVeg    Diet = "veg"
	DietNonVeg Diet = "non-veg"
	DietVegan  Diet = "vegan"
)

// PlanTag is a fitness goal used to filter both meals and exercises.
type PlanTag string

const (
	PlanWeightLoss     PlanTag = "weight-loss"
	PlanWeightGain     PlanTag = "weight-gain"
	PlanFatLoss        PlanTag = "fat-loss"
	PlanMuscleBuilding PlanTag = "muscle-building"
)

// Meal is an immutable catalog entry.
type Meal struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Emoji       string    `json:"emoji"`
	Diet        Diet      `json:"diet"`
	Calories    int       `json:"calories"`
	Plans       []PlanTag `json:"plans"`
	Allergens   []string  `json:"allergens,omitempty"`
}

// SuitsPlan reports whether the meal is tagged for the given plan.
func (m Meal) SuitsPlan(plan PlanTag) bool {
	for _, p := range m.Plans {
		if p == plan {
			return true
		}
	}
	return false
}

// ContainsAny reports whether the meal carries any of the given allergens.
func (m Meal) ContainsAny(allergies []string) bool {
	for _, a := range allergies {
		for _, al := range m.Allergens {
			if a == al {
				return true
			}
		}
	}
	return false
}

// Exercise is an immutable catalog entry.
type Exercise struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Sets        string `json:"sets"`
	Reps        string `json:"reps"`
	Duration    string `json:"duration"`
	Frequency   string `json:"frequency"`
}

// Provider supplies meal and exercise candidates. An unknown diet or plan
// yields an empty slice, never an error.
type Provider interface {
	MealsFor(diet Diet, plan PlanTag) []Meal
	ExercisesFor(plan PlanTag) []Exercise
}

// StaticProvider serves the built-in catalog tables, optionally extended
// with imported entries.
type StaticProvider struct {
	meals     map[Diet][]Meal
	exercises map[PlanTag][]Exercise
}

// NewStaticProvider returns a provider backed by the built-in tables.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		meals:     builtinMeals(),
		exercises: builtinExercises(),
	}
}

// MealsFor returns the meals matching both the diet and the plan.
func (p *StaticProvider) MealsFor(diet Diet, plan PlanTag) []Meal {
	var out []Meal
	for _, m := range p.meals[diet] {
		if m.SuitsPlan(plan) {
			out = append(out, m)
		}
	}
	return out
}

// ExercisesFor returns the exercises for the given plan.
func (p *StaticProvider) ExercisesFor(plan PlanTag) []Exercise {
	exs := p.exercises[plan]
	out := make([]Exercise, len(exs))
	copy(out, exs)
	return out
}

// AddMeals extends the catalog with additional entries, e.g. from an HTML
// import. Entries with an unknown diet are dropped.
func (p *StaticProvider) AddMeals(meals []Meal) int {
	added := 0
	for _, m := range meals {
		switch m.Diet {
		case DietVeg, DietNonVeg, DietVegan:
			p.meals[m.Diet] = append(p.meals[m.Diet], m)
			added++
		}
	}
	return added
}
