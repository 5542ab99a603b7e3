package telegram

import (
	"strings"
	"testing"

	"nutriverse/internal/appointment"
	"nutriverse/internal/config"
	"nutriverse/internal/planner"
)

func TestFormatPlanMarkdown(t *testing.T) {
	plan := planner.WeeklyMealPlan{
		planner.Monday: planner.DayMeals{
			planner.Breakfast:    &planner.MealAssignment{Name: "Oats Bowl", Calories: 250, Emoji: "🥣"},
			planner.Lunch:        &planner.MealAssignment{Name: "Vegetable Stir Fry", Calories: 180, Emoji: "🥦"},
			planner.Dinner:       &planner.MealAssignment{Name: "Lentil Soup", Calories: 200, Emoji: "🍲"},
			planner.EveningSnack: &planner.MealAssignment{Name: "Fruit Chaat", Calories: 120, Emoji: "🍎"},
		},
	}

	output := formatPlanMarkdown(plan)

	if !strings.Contains(output, "📅 *Weekly Meal Plan*") {
		t.Error("Missing plan header")
	}
	if !strings.Contains(output, "*Monday*") {
		t.Error("Missing day heading")
	}
	if !strings.Contains(output, "🥣 Breakfast: Oats Bowl (250 kcal)") {
		t.Error("Missing breakfast line")
	}
	if !strings.Contains(output, "🍎 Evening Snack: Fruit Chaat (120 kcal)") {
		t.Error("Missing evening snack line")
	}
	if strings.Contains(output, "*Tuesday*") {
		t.Error("Unplanned days should be omitted")
	}
}

func TestFormatAppointmentsMarkdown(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		output := formatAppointmentsMarkdown(nil)
		if !strings.Contains(output, "No appointments") {
			t.Errorf("Unexpected empty output: %q", output)
		}
	})

	t.Run("Mixed", func(t *testing.T) {
		output := formatAppointmentsMarkdown([]appointment.Appointment{
			{Date: "2026-03-11", Time: "09:30", Status: appointment.StatusPending, Reason: "Checkup"},
			{Date: "2026-03-12", Time: "14:00", Status: appointment.StatusConfirmed},
		})
		if !strings.Contains(output, "⏳ *2026-03-11* at 09:30 (pending)") {
			t.Error("Missing pending appointment line")
		}
		if !strings.Contains(output, "_Checkup_") {
			t.Error("Missing reason line")
		}
		if !strings.Contains(output, "✅ *2026-03-12* at 14:00 (confirmed)") {
			t.Error("Missing confirmed appointment line")
		}
	})
}

func TestDataDir(t *testing.T) {
	b := &Bot{cfg: &config.Config{DatabasePath: "/var/lib/nutriverse/nutriverse.db"}}
	if got := b.dataDir(); got != "/var/lib/nutriverse" {
		t.Errorf("Expected the database directory, got %q", got)
	}
}

func TestIsAllowed(t *testing.T) {
	t.Run("EmptyAllowlistAdmitsEveryone", func(t *testing.T) {
		b := &Bot{cfg: &config.Config{}}
		if !b.isAllowed(42) {
			t.Error("Expected open access with an empty allowlist")
		}
	})

	t.Run("AllowlistEnforced", func(t *testing.T) {
		b := &Bot{cfg: &config.Config{TelegramAllowedUserIDs: []int64{1, 2}}}
		if !b.isAllowed(2) {
			t.Error("Expected listed user to be admitted")
		}
		if b.isAllowed(3) {
			t.Error("Expected unlisted user to be denied")
		}
	})
}
