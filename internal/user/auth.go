package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"nutriverse/internal/shared"
)

// tokenTTL is how long an issued session token stays valid.
const tokenTTL = 7 * 24 * time.Hour

var (
	// ErrEmailTaken is returned by Signup when the address is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned by Login on a bad email/password pair
	// and by Authenticate on a bad token.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Claims is the JWT payload carried by session tokens.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SignupRequest carries the fields of a new registration.
type SignupRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Specialization string `json:"specialization"`
	AvailableStart string `json:"availableStart"`
	AvailableEnd   string `json:"availableEnd"`
}

// AuthService handles registration, login and token verification.
type AuthService struct {
	repo   *Repository
	secret []byte
}

// NewAuthService creates a new AuthService signing tokens with secret.
func NewAuthService(repo *Repository, secret string) *AuthService {
	return &AuthService{
		repo:   repo,
		secret: []byte(secret),
	}
}

// Signup registers a new account and returns it with a session token.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("%w: a valid email is required", shared.ErrValidation)
	}
	if len(req.Password) < 6 {
		return nil, "", fmt.Errorf("%w: password must be at least 6 characters", shared.ErrValidation)
	}

	role := RoleUser
	if req.Role == string(RoleDoctor) {
		role = RoleDoctor
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{
		ID:             uuid.NewString(),
		Email:          email,
		Role:           role,
		Name:           req.Name,
		Allergies:      []string{},
		Specialization: req.Specialization,
		AvailableStart: req.AvailableStart,
		AvailableEnd:   req.AvailableEnd,
		passwordHash:   string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login verifies the credentials and returns the account with a fresh token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*User, string, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Authenticate verifies a session token and loads its account.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return u, nil
}

func (s *AuthService) issueToken(u *User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
