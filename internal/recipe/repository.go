package recipe

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nutriverse/internal/catalog"
	"nutriverse/internal/recipe/recipe_db"
	"nutriverse/internal/shared"
)

// Repository is a database-backed repository for recipes.
type Repository struct {
	queries *recipe_db.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: recipe_db.New(d),
		db:      d,
	}
}

// Save inserts a recipe row.
func (r *Repository) Save(ctx context.Context, rec *Recipe) error {
	ingredientsJSON, err := json.Marshal(rec.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to marshal ingredients to JSON: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339, rec.CreatedAt)
	if err != nil {
		createdAt = time.Now().UTC()
	}

	return r.queries.InsertRecipe(ctx, recipe_db.InsertRecipeParams{
		ID:           rec.ID,
		Name:         rec.Name,
		Description:  rec.Description,
		Ingredients:  string(ingredientsJSON),
		Instructions: rec.Instructions,
		Calories:     int64(rec.Calories),
		Diet:         string(rec.Diet),
		Emoji:        rec.Emoji,
		CreatedBy:    sql.NullString{String: rec.CreatedBy, Valid: rec.CreatedBy != ""},
		CreatedAt:    createdAt,
	})
}

// Get retrieves a recipe by ID, mapping a missing row to shared.ErrNotFound.
func (r *Repository) Get(ctx context.Context, id string) (*Recipe, error) {
	row, err := r.queries.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recipe by ID: %w", err)
	}
	rec := fromDB(row)
	return &rec, nil
}

// List returns recipes newest first, optionally filtered by diet.
func (r *Repository) List(ctx context.Context, diet string) ([]Recipe, error) {
	var rows []recipe_db.Recipe
	var err error
	if diet != "" {
		rows, err = r.queries.ListRecipesByDiet(ctx, diet)
	} else {
		rows, err = r.queries.ListRecipes(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]Recipe, 0, len(rows))
	for _, row := range rows {
		recipes = append(recipes, fromDB(row))
	}
	return recipes, nil
}

// Delete removes a recipe owned by userID.
func (r *Repository) Delete(ctx context.Context, id, userID string) error {
	affected, err := r.queries.DeleteRecipe(ctx, recipe_db.DeleteRecipeParams{
		ID:        id,
		CreatedBy: sql.NullString{String: userID, Valid: userID != ""},
	})
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if affected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count returns the number of shared recipes.
func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.queries.CountRecipes(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return int(count), nil
}

func fromDB(row recipe_db.Recipe) Recipe {
	rec := Recipe{
		ID:           row.ID,
		Name:         row.Name,
		Description:  row.Description,
		Ingredients:  []string{},
		Instructions: row.Instructions,
		Calories:     int(row.Calories),
		Diet:         catalog.Diet(row.Diet),
		Emoji:        row.Emoji,
		CreatedAt:    row.CreatedAt.UTC().Format(time.RFC3339),
	}
	if row.CreatedBy.Valid {
		rec.CreatedBy = row.CreatedBy.String
	}
	if err := json.Unmarshal([]byte(row.Ingredients), &rec.Ingredients); err != nil {
		rec.Ingredients = []string{}
	}
	return rec
}
