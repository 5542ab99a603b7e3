package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nutriverse/internal/catalog"
	"nutriverse/internal/shared"
	"nutriverse/internal/user/user_db"
)

// Repository is a database-backed repository for user accounts.
type Repository struct {
	queries *user_db.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: user_db.New(d),
		db:      d,
	}
}

// Create inserts a new account row.
func (r *Repository) Create(ctx context.Context, u *User) error {
	now := time.Now().UTC()
	return r.queries.InsertUser(ctx, user_db.InsertUserParams{
		ID:             u.ID,
		Email:          u.Email,
		PasswordHash:   u.passwordHash,
		Role:           string(u.Role),
		Name:           u.Name,
		Specialization: u.Specialization,
		AvailableStart: u.AvailableStart,
		AvailableEnd:   u.AvailableEnd,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
}

// GetByID retrieves a user, mapping a missing row to shared.ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id string) (*User, error) {
	row, err := r.queries.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return fromDB(row), nil
}

// GetByEmail retrieves a user by email address.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	row, err := r.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return fromDB(row), nil
}

// GetByTelegramID retrieves the user linked to a Telegram account.
func (r *Repository) GetByTelegramID(ctx context.Context, telegramID int64) (*User, error) {
	row, err := r.queries.GetUserByTelegramID(ctx, sql.NullInt64{Int64: telegramID, Valid: true})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by telegram ID: %w", err)
	}
	return fromDB(row), nil
}

// UpdateProfile overwrites the editable profile fields.
func (r *Repository) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) error {
	if upd.Allergies == nil {
		upd.Allergies = []string{}
	}
	allergiesJSON, err := json.Marshal(upd.Allergies)
	if err != nil {
		return fmt.Errorf("failed to marshal allergies to JSON: %w", err)
	}

	return r.queries.UpdateUserProfile(ctx, user_db.UpdateUserProfileParams{
		Name:           upd.Name,
		Age:            sql.NullInt64{Int64: int64(upd.Age), Valid: upd.Age > 0},
		Gender:         upd.Gender,
		Height:         sql.NullFloat64{Float64: upd.Height, Valid: upd.Height > 0},
		Weight:         sql.NullFloat64{Float64: upd.Weight, Valid: upd.Weight > 0},
		Diet:           upd.Diet,
		Plan:           upd.Plan,
		Allergies:      string(allergiesJSON),
		Specialization: upd.Specialization,
		AvailableStart: upd.AvailableStart,
		AvailableEnd:   upd.AvailableEnd,
		UpdatedAt:      time.Now().UTC(),
		ID:             id,
	})
}

// LinkTelegram associates a Telegram account with the user.
func (r *Repository) LinkTelegram(ctx context.Context, id string, telegramID int64) error {
	return r.queries.LinkTelegramID(ctx, user_db.LinkTelegramIDParams{
		TelegramID: sql.NullInt64{Int64: telegramID, Valid: true},
		UpdatedAt:  time.Now().UTC(),
		ID:         id,
	})
}

// ListDoctors returns every doctor account ordered by name.
func (r *Repository) ListDoctors(ctx context.Context) ([]User, error) {
	rows, err := r.queries.ListDoctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	doctors := make([]User, 0, len(rows))
	for _, row := range rows {
		doctors = append(doctors, *fromDB(row))
	}
	return doctors, nil
}

func fromDB(row user_db.User) *User {
	u := &User{
		ID:             row.ID,
		Email:          row.Email,
		Role:           Role(row.Role),
		Name:           row.Name,
		Gender:         row.Gender,
		Diet:           catalog.Diet(row.Diet),
		Plan:           row.Plan,
		Allergies:      []string{},
		Specialization: row.Specialization,
		AvailableStart: row.AvailableStart,
		AvailableEnd:   row.AvailableEnd,
		passwordHash:   row.PasswordHash,
	}
	if row.TelegramID.Valid {
		u.TelegramID = row.TelegramID.Int64
	}
	if row.Age.Valid {
		u.Age = int(row.Age.Int64)
	}
	if row.Height.Valid {
		u.Height = row.Height.Float64
	}
	if row.Weight.Valid {
		u.Weight = row.Weight.Float64
	}
	if err := json.Unmarshal([]byte(row.Allergies), &u.Allergies); err != nil {
		// Corrupted allergy data should not make the account unreadable.
		u.Allergies = []string{}
	}
	return u
}
