package user

import (
	"strings"

	"nutriverse/internal/catalog"
	"nutriverse/internal/planner"
)

// Role separates patients from doctors. Doctors appear in the public
// directory and receive appointment requests; everyone else is a patient.
type Role string

const (
	RoleUser   Role = "user"
	RoleDoctor Role = "doctor"
)

// User is an account together with its nutrition profile. Doctors carry
// the Specialization and Available* fields instead of the diet ones.
type User struct {
	ID             string       `json:"id"`
	Email          string       `json:"email"`
	Role           Role         `json:"role"`
	TelegramID     int64        `json:"telegramId,omitempty"`
	Name           string       `json:"name"`
	Age            int          `json:"age,omitempty"`
	Gender         string       `json:"gender,omitempty"`
	Height         float64      `json:"height,omitempty"`
	Weight         float64      `json:"weight,omitempty"`
	Diet           catalog.Diet `json:"diet,omitempty"`
	Plan           string       `json:"plan,omitempty"`
	Allergies      []string     `json:"allergies"`
	Specialization string       `json:"specialization,omitempty"`
	AvailableStart string       `json:"availableStart,omitempty"`
	AvailableEnd   string       `json:"availableEnd,omitempty"`

	passwordHash string
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Name           string   `json:"name"`
	Age            int      `json:"age"`
	Gender         string   `json:"gender"`
	Height         float64  `json:"height"`
	Weight         float64  `json:"weight"`
	Diet           string   `json:"diet"`
	Plan           string   `json:"plan"`
	Allergies      []string `json:"allergies"`
	Specialization string   `json:"specialization"`
	AvailableStart string   `json:"availableStart"`
	AvailableEnd   string   `json:"availableEnd"`
}

// PlannerProfile projects the dietary fields into the shape the meal
// planner consumes. Allergies are lower-cased for matching.
func (u *User) PlannerProfile() planner.Profile {
	allergies := make([]string, 0, len(u.Allergies))
	for _, a := range u.Allergies {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" {
			allergies = append(allergies, a)
		}
	}
	return planner.Profile{
		Diet:      u.Diet,
		Plan:      catalog.PlanTag(u.Plan),
		Allergies: allergies,
	}
}

// BMI returns the body mass index, or 0 when height or weight is unset.
func (u *User) BMI() float64 {
	if u.Height <= 0 || u.Weight <= 0 {
		return 0
	}
	meters := u.Height / 100
	return u.Weight / (meters * meters)
}
