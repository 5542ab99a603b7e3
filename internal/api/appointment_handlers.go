package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"nutriverse/internal/appointment"
	"nutriverse/internal/logger"
	"nutriverse/internal/metrics"
	"nutriverse/internal/shared"
	"nutriverse/internal/user"
)

func (s *Server) handleBookAppointment(w http.ResponseWriter, r *http.Request) {
	var req appointment.BookRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u := currentUser(r)

	// The target must exist and actually be a doctor.
	doctor, err := s.users.GetByID(r.Context(), req.DoctorID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		writeError(w, err)
		return
	}
	if doctor == nil || doctor.Role != user.RoleDoctor {
		writeError(w, shared.ErrNotFound)
		return
	}

	appt, err := s.appointments.Book(r.Context(), u.ID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	s.metrics.Record(metrics.EventAppointmentBooked, u.ID)
	logger.Info("Appointment booked",
		zap.String("appointment_id", appt.ID),
		zap.String("doctor_id", appt.DoctorID))
	writeJSON(w, http.StatusCreated, appt)
}

// handleListAppointments is role-aware: patients see their own bookings,
// doctors see the ones assigned to them. Doctors may pass ?all=true to
// see every appointment in the system; anyone else asking for the full
// list is refused.
func (s *Server) handleListAppointments(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	if r.URL.Query().Get("all") == "true" && u.Role != user.RoleDoctor {
		writeError(w, shared.ErrForbidden)
		return
	}

	var (
		appts []appointment.Appointment
		err   error
	)
	switch {
	case u.Role == user.RoleDoctor && r.URL.Query().Get("all") == "true":
		appts, err = s.appointments.ListAll(r.Context())
	case u.Role == user.RoleDoctor:
		appts, err = s.appointments.ListForDoctor(r.Context(), u.ID)
	default:
		appts, err = s.appointments.ListForPatient(r.Context(), u.ID)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, appts)
}

func (s *Server) handleDecideAppointment(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if u.Role != user.RoleDoctor {
		writeError(w, shared.ErrForbidden)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	appt, err := s.appointments.Decide(r.Context(), chi.URLParam(r, "id"), u.ID, appointment.Status(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}

	s.metrics.Record(metrics.EventAppointmentDecided, u.ID)
	logger.Info("Appointment decided",
		zap.String("appointment_id", appt.ID),
		zap.String("status", string(appt.Status)))

	if s.notifier != nil {
		if patient, err := s.users.GetByID(r.Context(), appt.PatientID); err == nil && patient.TelegramID != 0 {
			s.notifier.NotifyAppointmentDecided(*appt, patient.TelegramID)
		}
	}

	writeJSON(w, http.StatusOK, appt)
}

func (s *Server) handleCancelAppointment(w http.ResponseWriter, r *http.Request) {
	appt, err := s.appointments.Cancel(r.Context(), chi.URLParam(r, "id"), currentUser(r).ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, appt)
}

func (s *Server) handleDeleteAppointment(w http.ResponseWriter, r *http.Request) {
	if err := s.appointments.Delete(r.Context(), chi.URLParam(r, "id"), currentUser(r).ID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
