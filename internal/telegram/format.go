package telegram

import (
	"fmt"
	"strings"

	"nutriverse/internal/appointment"
	"nutriverse/internal/planner"
)

var statusEmoji = map[appointment.Status]string{
	appointment.StatusPending:   "⏳",
	appointment.StatusConfirmed: "✅",
	appointment.StatusRejected:  "❌",
	appointment.StatusCancelled: "🚫",
}

func formatPlanMarkdown(plan planner.WeeklyMealPlan) string {
	var sb strings.Builder
	sb.WriteString("📅 *Weekly Meal Plan*\n\n")

	for _, day := range planner.Days {
		meals, ok := plan[day]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("*%s*\n", day))
		for _, slot := range append(append([]planner.Slot{}, planner.BaseSlots...), planner.EveningSnack) {
			assignment, ok := meals[slot]
			if !ok || assignment == nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("  %s %s: %s (%d kcal)\n", assignment.Emoji, slot, assignment.Name, assignment.Calories))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatAppointmentsMarkdown(appts []appointment.Appointment) string {
	if len(appts) == 0 {
		return "🗓️ No appointments yet."
	}

	var sb strings.Builder
	sb.WriteString("🩺 *Your Appointments*\n\n")
	for _, a := range appts {
		emoji, ok := statusEmoji[a.Status]
		if !ok {
			emoji = "❓"
		}
		sb.WriteString(fmt.Sprintf("%s *%s* at %s (%s)\n", emoji, a.Date, a.Time, a.Status))
		if a.Reason != "" {
			sb.WriteString(fmt.Sprintf("_%s_\n", a.Reason))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
