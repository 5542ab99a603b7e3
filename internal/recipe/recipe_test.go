package recipe

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"nutriverse/internal/catalog"
	"nutriverse/internal/database"
	"nutriverse/internal/shared"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewService(NewRepository(db.SQL))
}

func TestShare(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("Success", func(t *testing.T) {
		rec, err := svc.Share(ctx, "user-1", ShareRequest{
			Name:         "Masala Oats",
			Description:  "Savory oats with vegetables",
			Ingredients:  []string{"oats", "peas", "carrot"},
			Instructions: "Simmer everything for 10 minutes.",
			Calories:     220,
			Diet:         "veg",
		})
		if err != nil {
			t.Fatalf("Share failed: %v", err)
		}
		if rec.ID == "" || rec.CreatedBy != "user-1" {
			t.Errorf("Unexpected recipe: %+v", rec)
		}
		if rec.Emoji != defaultEmoji {
			t.Errorf("Expected default emoji, got %s", rec.Emoji)
		}

		got, err := svc.Get(ctx, rec.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if len(got.Ingredients) != 3 || got.Diet != catalog.DietVeg {
			t.Errorf("Recipe did not round-trip: %+v", got)
		}
	})

	t.Run("MissingName", func(t *testing.T) {
		_, err := svc.Share(ctx, "user-1", ShareRequest{Calories: 200, Diet: "veg"})
		if err == nil {
			t.Error("Expected an error for missing name")
		}
	})

	t.Run("UnknownDiet", func(t *testing.T) {
		_, err := svc.Share(ctx, "user-1", ShareRequest{Name: "Mystery Bowl", Calories: 200, Diet: "keto"})
		if err == nil {
			t.Error("Expected an error for unknown diet")
		}
	})

	t.Run("NonPositiveCalories", func(t *testing.T) {
		_, err := svc.Share(ctx, "user-1", ShareRequest{Name: "Air Salad", Calories: 0, Diet: "vegan"})
		if err == nil {
			t.Error("Expected an error for zero calories")
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	for _, req := range []ShareRequest{
		{Name: "Masala Oats", Calories: 220, Diet: "veg"},
		{Name: "Grilled Chicken Wrap", Calories: 380, Diet: "non-veg"},
		{Name: "Tofu Bowl", Calories: 300, Diet: "vegan"},
	} {
		if _, err := svc.Share(ctx, "user-1", req); err != nil {
			t.Fatalf("Share failed: %v", err)
		}
	}

	t.Run("All", func(t *testing.T) {
		recipes, err := svc.List(ctx, "")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(recipes) != 3 {
			t.Errorf("Expected 3 recipes, got %d", len(recipes))
		}
	})

	t.Run("FilteredByDiet", func(t *testing.T) {
		recipes, err := svc.List(ctx, "vegan")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(recipes) != 1 || recipes[0].Name != "Tofu Bowl" {
			t.Errorf("Unexpected vegan recipes: %+v", recipes)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	rec, err := svc.Share(ctx, "user-1", ShareRequest{Name: "Masala Oats", Calories: 220, Diet: "veg"})
	if err != nil {
		t.Fatalf("Share failed: %v", err)
	}

	t.Run("NotOwner", func(t *testing.T) {
		err := svc.Delete(ctx, rec.ID, "user-2")
		if !errors.Is(err, shared.ErrForbidden) {
			t.Errorf("Expected ErrForbidden, got %v", err)
		}
	})

	t.Run("Owner", func(t *testing.T) {
		if err := svc.Delete(ctx, rec.ID, "user-1"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		_, err := svc.Get(ctx, rec.ID)
		if !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		err := svc.Delete(ctx, "missing-id", "user-1")
		if !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}
