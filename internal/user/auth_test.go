package user

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"nutriverse/internal/catalog"
	"nutriverse/internal/database"
)

func newTestAuth(t *testing.T) (*AuthService, *Repository) {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := NewRepository(db.SQL)
	return NewAuthService(repo, "test-secret"), repo
}

func TestSignup(t *testing.T) {
	ctx := context.Background()
	auth, _ := newTestAuth(t)

	t.Run("Success", func(t *testing.T) {
		u, token, err := auth.Signup(ctx, SignupRequest{
			Email:    "Alice@Example.com",
			Password: "secret123",
			Name:     "Alice",
		})
		if err != nil {
			t.Fatalf("Signup failed: %v", err)
		}
		if u.Email != "alice@example.com" {
			t.Errorf("Expected normalized email, got %s", u.Email)
		}
		if u.Role != RoleUser {
			t.Errorf("Expected default role user, got %s", u.Role)
		}
		if token == "" {
			t.Error("Expected a session token")
		}
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, _, err := auth.Signup(ctx, SignupRequest{Email: "alice@example.com", Password: "secret123"})
		if !errors.Is(err, ErrEmailTaken) {
			t.Errorf("Expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("ShortPassword", func(t *testing.T) {
		_, _, err := auth.Signup(ctx, SignupRequest{Email: "bob@example.com", Password: "abc"})
		if err == nil {
			t.Error("Expected an error for a short password")
		}
	})

	t.Run("DoctorRole", func(t *testing.T) {
		u, _, err := auth.Signup(ctx, SignupRequest{
			Email:          "dr.khan@example.com",
			Password:       "secret123",
			Name:           "Dr. Khan",
			Role:           "doctor",
			Specialization: "Nutritionist",
			AvailableStart: "09:00",
			AvailableEnd:   "17:00",
		})
		if err != nil {
			t.Fatalf("Signup failed: %v", err)
		}
		if u.Role != RoleDoctor || u.Specialization != "Nutritionist" {
			t.Errorf("Doctor fields not stored: %+v", u)
		}
	})

	t.Run("UnknownRoleFallsBackToUser", func(t *testing.T) {
		u, _, err := auth.Signup(ctx, SignupRequest{Email: "eve@example.com", Password: "secret123", Role: "admin"})
		if err != nil {
			t.Fatalf("Signup failed: %v", err)
		}
		if u.Role != RoleUser {
			t.Errorf("Expected role user for unknown role, got %s", u.Role)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	auth, _ := newTestAuth(t)

	if _, _, err := auth.Signup(ctx, SignupRequest{Email: "alice@example.com", Password: "secret123", Name: "Alice"}); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	t.Run("Success", func(t *testing.T) {
		u, token, err := auth.Login(ctx, "alice@example.com", "secret123")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if u.Name != "Alice" || token == "" {
			t.Errorf("Unexpected login result: %+v", u)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, _, err := auth.Login(ctx, "alice@example.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, _, err := auth.Login(ctx, "nobody@example.com", "secret123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	auth, _ := newTestAuth(t)

	signedUp, token, err := auth.Signup(ctx, SignupRequest{Email: "alice@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	t.Run("ValidToken", func(t *testing.T) {
		u, err := auth.Authenticate(ctx, token)
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if u.ID != signedUp.ID {
			t.Errorf("Expected user %s, got %s", signedUp.ID, u.ID)
		}
	})

	t.Run("GarbageToken", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, "not-a-token")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewAuthService(auth.repo, "other-secret")
		_, err := other.Authenticate(ctx, token)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	auth, repo := newTestAuth(t)

	u, _, err := auth.Signup(ctx, SignupRequest{Email: "alice@example.com", Password: "secret123", Name: "Alice"})
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	upd := ProfileUpdate{
		Name:      "Alice B",
		Age:       31,
		Gender:    "female",
		Height:    168,
		Weight:    61.5,
		Diet:      "veg",
		Plan:      "weight-loss",
		Allergies: []string{"Dairy", "nuts"},
	}
	if err := repo.UpdateProfile(ctx, u.ID, upd); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	got, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Alice B" || got.Age != 31 || got.Diet != catalog.DietVeg {
		t.Errorf("Profile fields not persisted: %+v", got)
	}
	if len(got.Allergies) != 2 {
		t.Fatalf("Expected 2 allergies, got %v", got.Allergies)
	}

	profile := got.PlannerProfile()
	if profile.Allergies[0] != "dairy" {
		t.Errorf("Expected lower-cased allergies, got %v", profile.Allergies)
	}
	if profile.Diet != catalog.DietVeg || profile.Plan != catalog.PlanWeightLoss {
		t.Errorf("Unexpected planner profile: %+v", profile)
	}

	if bmi := got.BMI(); bmi < 21.7 || bmi > 21.9 {
		t.Errorf("Unexpected BMI: %f", bmi)
	}
}
