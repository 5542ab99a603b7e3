package planner

// Day is a weekday key in a weekly meal plan.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// Days is the fixed ordered set of weekdays every generated plan covers.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Slot is a named meal period within a day.
type Slot string

const (
	Breakfast    Slot = "Breakfast"
	Lunch        Slot = "Lunch"
	Dinner       Slot = "Dinner"
	EveningSnack Slot = "Evening Snack"
)

// BaseSlots is the slot order used when the evening snack slot is disabled.
var BaseSlots = []Slot{Breakfast, Lunch, Dinner}

// MealAssignment is a snapshot copy of a catalog entry's display fields
// taken at generation time. Later catalog edits do not alter an already
// generated plan.
type MealAssignment struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Emoji    string `json:"emoji"`
}

// DayMeals maps each slot of a day to its assignment. A nil value means
// "not planned".
type DayMeals map[Slot]*MealAssignment

// WeeklyMealPlan maps each weekday to its meals. A generated plan always
// has exactly 7 day keys; an empty map is the cleared / never-generated
// state and both render the same way.
type WeeklyMealPlan map[Day]DayMeals

// IsEmpty reports whether the plan is in the not-yet-planned state.
func (p WeeklyMealPlan) IsEmpty() bool {
	return len(p) == 0
}
