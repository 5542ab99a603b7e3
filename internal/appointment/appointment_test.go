package appointment

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"nutriverse/internal/database"
	"nutriverse/internal/shared"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := NewService(NewRepository(db.SQL))
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func mustBook(t *testing.T, svc *Service, patientID string, req BookRequest) *Appointment {
	t.Helper()
	appt, err := svc.Book(context.Background(), patientID, req)
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}
	return appt
}

func TestBook(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("Success", func(t *testing.T) {
		appt, err := svc.Book(ctx, "patient-1", BookRequest{
			DoctorID: "doctor-1",
			Date:     "2026-03-11",
			Time:     "09:30",
			Reason:   "Annual checkup",
		})
		if err != nil {
			t.Fatalf("Book failed: %v", err)
		}
		if appt.ID == "" {
			t.Error("Expected a generated appointment ID")
		}
		if appt.Status != StatusPending {
			t.Errorf("Expected status pending, got %s", appt.Status)
		}

		stored, err := svc.repo.GetByID(ctx, appt.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if stored.PatientID != "patient-1" || stored.DoctorID != "doctor-1" {
			t.Errorf("Stored appointment has wrong parties: %+v", stored)
		}
	})

	t.Run("TodayRejected", func(t *testing.T) {
		_, err := svc.Book(ctx, "patient-1", BookRequest{DoctorID: "doctor-1", Date: "2026-03-10", Time: "09:30"})
		if !errors.Is(err, shared.ErrInvalidDate) {
			t.Errorf("Expected ErrInvalidDate for same-day booking, got %v", err)
		}
	})

	t.Run("PastDateRejected", func(t *testing.T) {
		_, err := svc.Book(ctx, "patient-1", BookRequest{DoctorID: "doctor-1", Date: "2025-12-01", Time: "09:30"})
		if !errors.Is(err, shared.ErrInvalidDate) {
			t.Errorf("Expected ErrInvalidDate for past booking, got %v", err)
		}
	})

	t.Run("MalformedDate", func(t *testing.T) {
		_, err := svc.Book(ctx, "patient-1", BookRequest{DoctorID: "doctor-1", Date: "11/03/2026", Time: "09:30"})
		if !errors.Is(err, shared.ErrInvalidDate) {
			t.Errorf("Expected ErrInvalidDate for malformed date, got %v", err)
		}
	})

	t.Run("MalformedTime", func(t *testing.T) {
		_, err := svc.Book(ctx, "patient-1", BookRequest{DoctorID: "doctor-1", Date: "2026-03-11", Time: "9.30am"})
		if !errors.Is(err, shared.ErrInvalidDate) {
			t.Errorf("Expected ErrInvalidDate for malformed time, got %v", err)
		}
	})

	t.Run("MissingDoctor", func(t *testing.T) {
		_, err := svc.Book(ctx, "patient-1", BookRequest{Date: "2026-03-11", Time: "09:30"})
		if !errors.Is(err, shared.ErrValidation) {
			t.Errorf("Expected ErrValidation when doctor is missing, got %v", err)
		}
	})
}

func TestDecide(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("Confirm", func(t *testing.T) {
		appt := mustBook(t, svc, "patient-1", BookRequest{DoctorID: "doctor-1", Date: "2026-03-11", Time: "09:30"})

		decided, err := svc.Decide(ctx, appt.ID, "doctor-1", StatusConfirmed)
		if err != nil {
			t.Fatalf("Decide failed: %v", err)
		}
		if decided.Status != StatusConfirmed {
			t.Errorf("Expected confirmed, got %s", decided.Status)
		}
	})

	t.Run("SecondDecisionLoses", func(t *testing.T) {
		appt := mustBook(t, svc, "patient-1", BookRequest{DoctorID: "doctor-1", Date: "2026-03-12", Time: "10:00"})

		if _, err := svc.Decide(ctx, appt.ID, "doctor-1", StatusRejected); err != nil {
			t.Fatalf("First decision failed: %v", err)
		}
		_, err := svc.Decide(ctx, appt.ID, "doctor-1", StatusConfirmed)
		if !errors.Is(err, shared.ErrInvalidTransition) {
			t.Errorf("Expected ErrInvalidTransition on second decision, got %v", err)
		}

		stored, err := svc.repo.GetByID(ctx, appt.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if stored.Status != StatusRejected {
			t.Errorf("First decision should stand, got %s", stored.Status)
		}
	})

	t.Run("WrongDoctor", func(t *testing.T) {
		appt := mustBook(t, svc, "patient-1", BookRequest{DoctorID: "doctor-1", Date: "2026-03-13", Time: "11:00"})

		_, err := svc.Decide(ctx, appt.ID, "doctor-2", StatusConfirmed)
		if !errors.Is(err, shared.ErrForbidden) {
			t.Errorf("Expected ErrForbidden for another doctor, got %v", err)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.Decide(ctx, "missing-id", "doctor-1", StatusConfirmed)
		if !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("InvalidDecisionValue", func(t *testing.T) {
		appt := mustBook(t, svc, "patient-1", BookRequest{DoctorID: "doctor-1", Date: "2026-03-14", Time: "12:00"})

		_, err := svc.Decide(ctx, appt.ID, "doctor-1", StatusCancelled)
		if !errors.Is(err, shared.ErrInvalidTransition) {
			t.Errorf("Expected ErrInvalidTransition for cancelled as a decision, got %v", err)
		}
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("PendingCancelled", func(t *testing.T) {
		appt := mustBook(t, svc, "patient-1", BookRequest{DoctorID: "doctor-1", Date: "2026-03-11", Time: "09:30"})

		cancelled, err := svc.Cancel(ctx, appt.ID, "patient-1")
		if err != nil {
			t.Fatalf("Cancel failed: %v", err)
		}
		if cancelled.Status != StatusCancelled {
			t.Errorf("Expected cancelled, got %s", cancelled.Status)
		}
	})

	t.Run("NotOwner", func(t *testing.T) {
		appt := mustBook(t, svc, "patient-1", BookRequest{DoctorID: "doctor-1", Date: "2026-03-12", Time: "10:00"})

		_, err := svc.Cancel(ctx, appt.ID, "patient-2")
		if !errors.Is(err, shared.ErrForbidden) {
			t.Errorf("Expected ErrForbidden for another patient, got %v", err)
		}
	})

	t.Run("AlreadyDecided", func(t *testing.T) {
		appt := mustBook(t, svc, "patient-1", BookRequest{DoctorID: "doctor-1", Date: "2026-03-13", Time: "11:00"})
		if _, err := svc.Decide(ctx, appt.ID, "doctor-1", StatusConfirmed); err != nil {
			t.Fatalf("Decide failed: %v", err)
		}

		_, err := svc.Cancel(ctx, appt.ID, "patient-1")
		if !errors.Is(err, shared.ErrInvalidTransition) {
			t.Errorf("Expected ErrInvalidTransition cancelling a confirmed appointment, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("AnyState", func(t *testing.T) {
		appt := mustBook(t, svc, "patient-1", BookRequest{DoctorID: "doctor-1", Date: "2026-03-11", Time: "09:30"})
		if _, err := svc.Decide(ctx, appt.ID, "doctor-1", StatusConfirmed); err != nil {
			t.Fatalf("Decide failed: %v", err)
		}

		if err := svc.Delete(ctx, appt.ID, "patient-1"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		_, err := svc.repo.GetByID(ctx, appt.ID)
		if !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("NotOwner", func(t *testing.T) {
		appt := mustBook(t, svc, "patient-1", BookRequest{DoctorID: "doctor-1", Date: "2026-03-12", Time: "10:00"})

		err := svc.Delete(ctx, appt.ID, "patient-2")
		if !errors.Is(err, shared.ErrForbidden) {
			t.Errorf("Expected ErrForbidden for another patient, got %v", err)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := svc.Delete(ctx, "missing-id", "patient-1")
		if !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestListOrdering(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	mustBook(t, svc, "patient-1", BookRequest{DoctorID: "doctor-1", Date: "2026-03-20", Time: "09:00"})
	mustBook(t, svc, "patient-1", BookRequest{DoctorID: "doctor-2", Date: "2026-03-11", Time: "14:00"})
	mustBook(t, svc, "patient-1", BookRequest{DoctorID: "doctor-1", Date: "2026-03-11", Time: "08:00"})
	mustBook(t, svc, "patient-2", BookRequest{DoctorID: "doctor-1", Date: "2026-03-15", Time: "10:00"})

	t.Run("ForPatient", func(t *testing.T) {
		appts, err := svc.ListForPatient(ctx, "patient-1")
		if err != nil {
			t.Fatalf("ListForPatient failed: %v", err)
		}
		if len(appts) != 3 {
			t.Fatalf("Expected 3 appointments, got %d", len(appts))
		}
		for i := 1; i < len(appts); i++ {
			prev, cur := appts[i-1], appts[i]
			if prev.Date > cur.Date || (prev.Date == cur.Date && prev.Time > cur.Time) {
				t.Errorf("Appointments out of order: %s %s before %s %s", prev.Date, prev.Time, cur.Date, cur.Time)
			}
		}
	})

	t.Run("ForDoctor", func(t *testing.T) {
		appts, err := svc.ListForDoctor(ctx, "doctor-1")
		if err != nil {
			t.Fatalf("ListForDoctor failed: %v", err)
		}
		if len(appts) != 3 {
			t.Fatalf("Expected 3 appointments, got %d", len(appts))
		}
	})

	t.Run("All", func(t *testing.T) {
		appts, err := svc.ListAll(ctx)
		if err != nil {
			t.Fatalf("ListAll failed: %v", err)
		}
		if len(appts) != 4 {
			t.Fatalf("Expected 4 appointments, got %d", len(appts))
		}
	})
}
