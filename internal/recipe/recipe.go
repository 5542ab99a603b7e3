package recipe

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nutriverse/internal/catalog"
	"nutriverse/internal/shared"
)

const defaultEmoji = "🍲"

// Recipe is a community-shared recipe.
type Recipe struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Ingredients  []string     `json:"ingredients"`
	Instructions string       `json:"instructions"`
	Calories     int          `json:"calories"`
	Diet         catalog.Diet `json:"diet"`
	Emoji        string       `json:"emoji"`
	CreatedBy    string       `json:"createdBy,omitempty"`
	CreatedAt    string       `json:"createdAt"`
}

// ShareRequest carries the user-supplied fields of a new recipe.
type ShareRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Calories     int      `json:"calories"`
	Diet         string   `json:"diet"`
	Emoji        string   `json:"emoji"`
}

// Service implements community recipe sharing on top of a Repository.
type Service struct {
	repo *Repository
}

// NewService creates a new Service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Share validates and stores a new recipe owned by userID.
func (s *Service) Share(ctx context.Context, userID string, req ShareRequest) (*Recipe, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: recipe name is required", shared.ErrValidation)
	}
	if req.Calories <= 0 {
		return nil, fmt.Errorf("%w: calories must be positive", shared.ErrValidation)
	}
	diet := catalog.Diet(req.Diet)
	switch diet {
	case catalog.DietVeg, catalog.DietNonVeg, catalog.DietVegan:
	default:
		return nil, fmt.Errorf("%w: unknown diet %q", shared.ErrValidation, req.Diet)
	}

	emoji := req.Emoji
	if emoji == "" {
		emoji = defaultEmoji
	}
	if req.Ingredients == nil {
		req.Ingredients = []string{}
	}

	rec := &Recipe{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Calories:     req.Calories,
		Diet:         diet,
		Emoji:        emoji,
		CreatedBy:    userID,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save recipe: %w", err)
	}
	return rec, nil
}

// List returns shared recipes, newest first, optionally filtered by diet.
func (s *Service) List(ctx context.Context, diet string) ([]Recipe, error) {
	return s.repo.List(ctx, diet)
}

// Get retrieves a single recipe by ID.
func (s *Service) Get(ctx context.Context, id string) (*Recipe, error) {
	return s.repo.Get(ctx, id)
}

// Delete removes a recipe. Only its author may delete it.
func (s *Service) Delete(ctx context.Context, id, userID string) error {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if rec.CreatedBy != userID {
		return shared.ErrForbidden
	}
	return s.repo.Delete(ctx, id, userID)
}
