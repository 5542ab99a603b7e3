package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"nutriverse/internal/appointment/appointment_db"
	"nutriverse/internal/shared"
)

// Repository is a database-backed repository for appointments.
type Repository struct {
	queries *appointment_db.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: appointment_db.New(d),
		db:      d,
	}
}

// Create inserts a new appointment row.
func (r *Repository) Create(ctx context.Context, appt *Appointment) error {
	createdAt, err := time.Parse(time.RFC3339, appt.CreatedAt)
	if err != nil {
		createdAt = time.Now().UTC()
	}
	return r.queries.InsertAppointment(ctx, appointment_db.InsertAppointmentParams{
		ID:        appt.ID,
		PatientID: appt.PatientID,
		DoctorID:  appt.DoctorID,
		Date:      appt.Date,
		Time:      appt.Time,
		Reason:    appt.Reason,
		Status:    string(appt.Status),
		CreatedAt: createdAt,
	})
}

// GetByID retrieves an appointment, mapping a missing row to shared.ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	row, err := r.queries.GetAppointmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get appointment by ID: %w", err)
	}
	appt := fromDB(row)
	return &appt, nil
}

// ListByPatient returns all appointments booked by the given patient.
func (r *Repository) ListByPatient(ctx context.Context, patientID string) ([]Appointment, error) {
	rows, err := r.queries.ListAppointmentsByPatientID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments by patient: %w", err)
	}
	return fromDBList(rows), nil
}

// ListByDoctor returns all appointments assigned to the given doctor.
func (r *Repository) ListByDoctor(ctx context.Context, doctorID string) ([]Appointment, error) {
	rows, err := r.queries.ListAppointmentsByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments by doctor: %w", err)
	}
	return fromDBList(rows), nil
}

// ListAll returns every appointment ordered by date and time.
func (r *Repository) ListAll(ctx context.Context) ([]Appointment, error) {
	rows, err := r.queries.ListAllAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return fromDBList(rows), nil
}

// Decide conditionally moves a pending appointment to the given status.
// It reports whether the row was still pending and therefore updated.
func (r *Repository) Decide(ctx context.Context, id string, decision Status) (bool, error) {
	affected, err := r.queries.DecideAppointment(ctx, appointment_db.DecideAppointmentParams{
		Status: string(decision),
		ID:     id,
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Cancel conditionally moves a pending appointment to cancelled.
func (r *Repository) Cancel(ctx context.Context, id string) (bool, error) {
	affected, err := r.queries.CancelAppointment(ctx, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete removes the appointment row.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.queries.DeleteAppointment(ctx, id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}

func fromDB(row appointment_db.Appointment) Appointment {
	return Appointment{
		ID:        row.ID,
		PatientID: row.PatientID,
		DoctorID:  row.DoctorID,
		Date:      row.Date,
		Time:      row.Time,
		Reason:    row.Reason,
		Status:    Status(row.Status),
		CreatedAt: row.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func fromDBList(rows []appointment_db.Appointment) []Appointment {
	appts := make([]Appointment, 0, len(rows))
	for _, row := range rows {
		appts = append(appts, fromDB(row))
	}
	return appts
}
