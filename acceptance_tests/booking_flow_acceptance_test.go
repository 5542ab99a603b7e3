package acceptance_tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"nutriverse/internal/api"
	"nutriverse/internal/appointment"
	"nutriverse/internal/catalog"
	"nutriverse/internal/config"
	"nutriverse/internal/database"
	"nutriverse/internal/metrics"
	"nutriverse/internal/planner"
	"nutriverse/internal/recipe"
	"nutriverse/internal/user"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		Port:               "0",
		DatabasePath:       "data/test.db",
		JWTSecret:          "acceptance-secret",
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	}

	users := user.NewRepository(db.SQL)
	provider := catalog.NewStaticProvider()
	generator := planner.New(provider, nil)
	generator.IncludeEveningSnack = true

	srv := api.NewServer(
		cfg,
		user.NewAuthService(users, cfg.JWTSecret),
		users,
		provider,
		generator,
		planner.NewPlanRepository(db.SQL),
		appointment.NewService(appointment.NewRepository(db.SQL)),
		recipe.NewService(recipe.NewRepository(db.SQL)),
		metrics.NewStore(db.SQL),
	)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func call(t *testing.T, ts *httptest.Server, method, path, token string, body interface{}, out interface{}) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, ts.URL+path, &buf)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
	}
	return resp.StatusCode
}

// The full patient journey: sign up, fill in the profile, generate a
// weekly plan, book a doctor, and watch the doctor's decision land.
func TestPatientJourney(t *testing.T) {
	ts := startServer(t)

	var patientAuth struct {
		Token string `json:"token"`
	}
	status := call(t, ts, http.MethodPost, "/api/auth/signup", "", map[string]interface{}{
		"email": "alice@example.com", "password": "secret123", "name": "Alice",
	}, &patientAuth)
	if status != http.StatusCreated {
		t.Fatalf("Patient signup returned %d", status)
	}

	var doctorAuth struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	status = call(t, ts, http.MethodPost, "/api/auth/signup", "", map[string]interface{}{
		"email": "dr.khan@example.com", "password": "secret123", "name": "Dr. Khan",
		"role": "doctor", "specialization": "Nutritionist",
	}, &doctorAuth)
	if status != http.StatusCreated {
		t.Fatalf("Doctor signup returned %d", status)
	}

	// Plan generation refuses to run until the profile is complete.
	var guidance struct {
		Action string `json:"action"`
	}
	status = call(t, ts, http.MethodPost, "/api/meal-planner/generate", patientAuth.Token, nil, &guidance)
	if status != http.StatusBadRequest || guidance.Action != "complete_profile" {
		t.Fatalf("Expected complete_profile guidance, got %d %q", status, guidance.Action)
	}

	status = call(t, ts, http.MethodPut, "/api/profile", patientAuth.Token, map[string]interface{}{
		"name": "Alice", "diet": "veg", "plan": "weight-loss", "allergies": []string{"nuts"},
	}, nil)
	if status != http.StatusOK {
		t.Fatalf("Profile update returned %d", status)
	}

	var plan planner.WeeklyMealPlan
	status = call(t, ts, http.MethodPost, "/api/meal-planner/generate", patientAuth.Token, nil, &plan)
	if status != http.StatusOK {
		t.Fatalf("Plan generation returned %d", status)
	}
	if len(plan) != 7 {
		t.Fatalf("Expected a 7-day plan, got %d days", len(plan))
	}

	var appt appointment.Appointment
	status = call(t, ts, http.MethodPost, "/api/appointments", patientAuth.Token, map[string]interface{}{
		"doctorId": doctorAuth.User.ID, "date": "2030-06-01", "time": "10:00", "reason": "Diet review",
	}, &appt)
	if status != http.StatusCreated {
		t.Fatalf("Booking returned %d", status)
	}

	var decided appointment.Appointment
	status = call(t, ts, http.MethodPatch, "/api/appointments/"+appt.ID+"/decide", doctorAuth.Token, map[string]interface{}{
		"status": "confirmed",
	}, &decided)
	if status != http.StatusOK || decided.Status != appointment.StatusConfirmed {
		t.Fatalf("Decision returned %d with status %s", status, decided.Status)
	}

	var mine []appointment.Appointment
	status = call(t, ts, http.MethodGet, "/api/appointments", patientAuth.Token, nil, &mine)
	if status != http.StatusOK || len(mine) != 1 {
		t.Fatalf("Patient listing returned %d with %d appointments", status, len(mine))
	}
	if mine[0].Status != appointment.StatusConfirmed {
		t.Errorf("Expected the patient to see the confirmed status, got %s", mine[0].Status)
	}
}
