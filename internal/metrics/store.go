package metrics

import (
	"context"
	"database/sql"
	"time"

	metricsdb "nutriverse/internal/metrics/metrics_db"

	"nutriverse/internal/logger"

	"go.uber.org/zap"
)

// Events worth counting. Recording is fire-and-forget so a metrics
// failure never surfaces to the user.
const (
	EventUserSignup         = "user_signup"
	EventPlanGenerated      = "plan_generated"
	EventAppointmentBooked  = "appointment_booked"
	EventAppointmentDecided = "appointment_decided"
	EventRecipeShared       = "recipe_shared"
)

// Store handles persistence of usage events to SQLite.
type Store struct {
	queries *metricsdb.Queries
	db      *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{
		queries: metricsdb.New(db),
		db:      db,
	}
}

// Record saves a usage event. Errors are logged and swallowed.
func (s *Store) Record(event, userID string) {
	err := s.queries.InsertUsageEvent(context.Background(), metricsdb.InsertUsageEventParams{
		Event:     event,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		logger.Warn("Failed to record usage event", zap.String("event", event), zap.Error(err))
	}
}

// EventCount is a per-event total over a reporting window.
type EventCount struct {
	Event string
	Count int
}

// Totals returns per-event counts over the last N days, busiest first.
func (s *Store) Totals(days int) ([]EventCount, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := s.queries.CountEventsSince(context.Background(), since)
	if err != nil {
		return nil, err
	}

	var results []EventCount
	for _, r := range rows {
		results = append(results, EventCount{Event: r.Event, Count: int(r.Count)})
	}
	return results, nil
}

// DailyUsage represents event totals for a single day.
type DailyUsage struct {
	Date  string
	Count int
}

// GetDailyUsage retrieves per-day totals for the last N days.
func (s *Store) GetDailyUsage(days int) ([]DailyUsage, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := s.queries.GetDailyUsage(context.Background(), since)
	if err != nil {
		return nil, err
	}

	var results []DailyUsage
	for _, r := range rows {
		u := DailyUsage{Count: int(r.Count)}
		if day, ok := r.Day.(string); ok {
			u.Date = day
		} else {
			u.Date = "Unknown"
		}
		results = append(results, u)
	}
	return results, nil
}

// Cleanup removes events older than the specified number of days.
func (s *Store) Cleanup(olderThanDays int) error {
	threshold := time.Now().UTC().AddDate(0, 0, -olderThanDays)
	return s.queries.CleanupUsageEvents(context.Background(), threshold)
}
