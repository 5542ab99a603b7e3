package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nutriverse/internal/shared"
)

// Status is the lifecycle state of an appointment.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Appointment is a booking between a patient and a doctor.
type Appointment struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	DoctorID  string `json:"doctorId"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM, 24-hour
	Reason    string `json:"reason,omitempty"`
	Status    Status `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// BookRequest carries the patient-supplied fields of a new booking.
type BookRequest struct {
	DoctorID string `json:"doctorId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Reason   string `json:"reason"`
}

// Service implements the appointment lifecycle on top of a Repository.
type Service struct {
	repo *Repository
	now  func() time.Time
}

// NewService creates a new Service.
func NewService(repo *Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Book creates a pending appointment for the given patient.
// The date must parse as YYYY-MM-DD and lie strictly after today;
// the time must parse as HH:MM. Violations return shared.ErrInvalidDate.
func (s *Service) Book(ctx context.Context, patientID string, req BookRequest) (*Appointment, error) {
	if req.DoctorID == "" {
		return nil, fmt.Errorf("%w: doctor is required", shared.ErrValidation)
	}

	bookedDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", shared.ErrInvalidDate)
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, fmt.Errorf("%w: time must be HH:MM", shared.ErrInvalidDate)
	}

	// Compare calendar days, not instants. Booking for today is rejected
	// because the slot may already have passed when the doctor sees it.
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !bookedDate.After(today) {
		return nil, fmt.Errorf("%w: appointment date must be in the future", shared.ErrInvalidDate)
	}

	appt := &Appointment{
		ID:        uuid.NewString(),
		PatientID: patientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Reason:    req.Reason,
		Status:    StatusPending,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
	if err := s.repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return appt, nil
}

// ListForPatient returns the patient's appointments ordered by date and time.
func (s *Service) ListForPatient(ctx context.Context, patientID string) ([]Appointment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

// ListForDoctor returns the doctor's appointments ordered by date and time.
func (s *Service) ListForDoctor(ctx context.Context, doctorID string) ([]Appointment, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

// ListAll returns every appointment in the system.
func (s *Service) ListAll(ctx context.Context) ([]Appointment, error) {
	return s.repo.ListAll(ctx)
}

// Decide moves a pending appointment to confirmed or rejected on behalf of
// the assigned doctor. At most one decision ever wins: a second decision,
// or a decision racing a cancellation, returns shared.ErrInvalidTransition.
func (s *Service) Decide(ctx context.Context, id, doctorID string, decision Status) (*Appointment, error) {
	if decision != StatusConfirmed && decision != StatusRejected {
		return nil, fmt.Errorf("%w: decision must be confirmed or rejected", shared.ErrInvalidTransition)
	}

	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.DoctorID != doctorID {
		return nil, shared.ErrForbidden
	}

	updated, err := s.repo.Decide(ctx, id, decision)
	if err != nil {
		return nil, fmt.Errorf("failed to decide appointment: %w", err)
	}
	if !updated {
		return nil, fmt.Errorf("%w: appointment is no longer pending", shared.ErrInvalidTransition)
	}

	appt.Status = decision
	return appt, nil
}

// Cancel lets the owning patient withdraw a still-pending appointment.
func (s *Service) Cancel(ctx context.Context, id, patientID string) (*Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.PatientID != patientID {
		return nil, shared.ErrForbidden
	}

	updated, err := s.repo.Cancel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}
	if !updated {
		return nil, fmt.Errorf("%w: only pending appointments can be cancelled", shared.ErrInvalidTransition)
	}

	appt.Status = StatusCancelled
	return appt, nil
}

// Delete removes the record entirely. Unlike Cancel it is allowed from any
// state, but only for the owning patient.
func (s *Service) Delete(ctx context.Context, id, patientID string) error {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appt.PatientID != patientID {
		return shared.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
