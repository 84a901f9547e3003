package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/saadjs/mealplan-cli/internal/nutrition"
	"github.com/saadjs/mealplan-cli/internal/service"
)

func TestRecipeNutritionFromStore(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	seedPantry(t, db)

	recipe, totals, err := service.RecipeNutrition(db, "porridge")
	if err != nil {
		t.Fatalf("recipe nutrition: %v", err)
	}
	if recipe.Name != "Porridge" {
		t.Fatalf("expected Porridge, got %q", recipe.Name)
	}
	want := nutrition.Totals{Calories: 416, Protein: 22, Carbs: 66, Fiber: 8}
	if diff := cmp.Diff(want, totals); diff != "" {
		t.Fatalf("porridge totals mismatch (-want +got):\n%s", diff)
	}

	_, totals, err = service.RecipeNutrition(db, "Chicken rice")
	if err != nil {
		t.Fatalf("recipe nutrition: %v", err)
	}
	want = nutrition.Totals{Calories: 523, Protein: 44, Carbs: 70, Fiber: 1}
	if diff := cmp.Diff(want, totals); diff != "" {
		t.Fatalf("chicken rice totals mismatch (-want +got):\n%s", diff)
	}
}

func TestRecipeNutritionEmptyRecipe(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.CreateRecipe(db, service.RecipeInput{Name: "Water"}); err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	_, totals, err := service.RecipeNutrition(db, "Water")
	if err != nil {
		t.Fatalf("recipe nutrition: %v", err)
	}
	if totals != (nutrition.Totals{}) {
		t.Fatalf("expected zero totals, got %+v", totals)
	}
}

func TestRecipeIngredientLines(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	seedPantry(t, db)

	lines, err := service.ListRecipeIngredients(db, "Porridge")
	if err != nil {
		t.Fatalf("list recipe ingredients: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Ingredient == nil || lines[0].Ingredient.Name != "Oats" {
		t.Fatalf("expected first line to be oats, got %+v", lines[0])
	}

	if err := service.UpdateRecipeIngredient(db, lines[1].ID, 500); err != nil {
		t.Fatalf("update line: %v", err)
	}
	_, totals, err := service.RecipeNutrition(db, "Porridge")
	if err != nil {
		t.Fatalf("recipe nutrition: %v", err)
	}
	// 311.2 oats + 210 milk
	if totals.Calories != 521 {
		t.Fatalf("expected 521 kcal after doubling milk, got %v", totals.Calories)
	}

	if err := service.DeleteRecipeIngredient(db, lines[1].ID); err != nil {
		t.Fatalf("delete line: %v", err)
	}
	if err := service.DeleteRecipeIngredient(db, lines[1].ID); err == nil {
		t.Fatalf("expected error deleting a missing line")
	}
	if _, err := service.AddRecipeIngredient(db, "Porridge", service.RecipeIngredientInput{Ingredient: "oats", Quantity: 0}); err == nil {
		t.Fatalf("expected error for zero quantity")
	}
	if _, err := service.AddRecipeIngredient(db, "Porridge", service.RecipeIngredientInput{Ingredient: "butter", Quantity: 10}); err == nil {
		t.Fatalf("expected error for unknown ingredient")
	}
}

func TestRecipeNutritionMissingIngredient(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	seedPantry(t, db)

	milk, err := service.ResolveIngredient(db, "milk")
	if err != nil {
		t.Fatalf("resolve milk: %v", err)
	}
	if err := service.DeleteIngredient(db, "milk"); err != nil {
		t.Fatalf("delete milk: %v", err)
	}

	_, _, err = service.RecipeNutrition(db, "Porridge")
	if !errors.Is(err, nutrition.ErrMissingIngredientData) {
		t.Fatalf("expected missing ingredient data, got %v", err)
	}
	var missing *nutrition.MissingIngredientDataError
	if !errors.As(err, &missing) || missing.IngredientID != milk.ID {
		t.Fatalf("expected missing ingredient %s, got %v", milk.ID, err)
	}

	if _, err := service.ListRecipeNutrition(context.Background(), db); !errors.Is(err, nutrition.ErrMissingIngredientData) {
		t.Fatalf("expected batch resolve to fail with missing data, got %v", err)
	}
}

func TestListRecipeNutrition(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	seedPantry(t, db)

	items, err := service.ListRecipeNutrition(context.Background(), db)
	if err != nil {
		t.Fatalf("list recipe nutrition: %v", err)
	}
	got := make(map[string]float64, len(items))
	names := make([]string, 0, len(items))
	for _, it := range items {
		got[it.Recipe.Name] = it.Totals.Calories
		names = append(names, it.Recipe.Name)
	}
	if diff := cmp.Diff([]string{"Chicken rice", "Porridge"}, names); diff != "" {
		t.Fatalf("recipe order mismatch (-want +got):\n%s", diff)
	}
	if got["Porridge"] != 416 || got["Chicken rice"] != 523 {
		t.Fatalf("unexpected calories: %v", got)
	}
}

func TestDeleteRecipeCascadesLines(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	seedPantry(t, db)

	if err := service.DeleteRecipe(db, "Porridge"); err != nil {
		t.Fatalf("delete recipe: %v", err)
	}
	var n int
	if err := db.QueryRow(`SELECT COUNT(1) FROM recipe_ingredients`).Scan(&n); err != nil {
		t.Fatalf("count lines: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected only chicken rice lines to remain, got %d", n)
	}
	if _, err := service.ResolveRecipe(db, "Porridge"); err == nil {
		t.Fatalf("expected recipe to be gone")
	}
}

func TestRecipeNamesAreUniqueIgnoringCase(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	first, err := service.CreateRecipe(db, service.RecipeInput{Name: "Pasta"})
	if err != nil {
		t.Fatalf("create Pasta: %v", err)
	}
	if _, err := service.CreateRecipe(db, service.RecipeInput{Name: "pasta"}); err == nil {
		t.Fatalf("expected pasta to be rejected after Pasta")
	}
	if _, err := service.CreateRecipe(db, service.RecipeInput{Name: "Salad"}); err != nil {
		t.Fatalf("create Salad: %v", err)
	}
	if err := service.UpdateRecipe(db, "Salad", service.RecipeInput{Name: "PASTA", Servings: 1}); err == nil {
		t.Fatalf("expected rename to PASTA to be rejected")
	}

	recipes, err := service.ListRecipes(db)
	if err != nil {
		t.Fatalf("list recipes: %v", err)
	}
	if len(recipes) != 2 {
		t.Fatalf("expected 2 recipes, got %d", len(recipes))
	}
	got, err := service.ResolveRecipe(db, "PASTA")
	if err != nil {
		t.Fatalf("resolve PASTA: %v", err)
	}
	if got.ID != first {
		t.Fatalf("expected PASTA to resolve to %s, got %s", first, got.ID)
	}
}
