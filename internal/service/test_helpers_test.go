package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/saadjs/mealplan-cli/internal/db"
	"github.com/saadjs/mealplan-cli/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mealplan.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func f(v float64) *float64 {
	return &v
}

// seedPantry stores two recipes:
//
//	Porridge:     80 g oats + 250 ml milk   -> 416 kcal, 22 protein, 66 carbs, 8 fiber
//	Chicken rice: 120 g chicken + 0.25 kg rice -> 523 kcal, 44 protein, 70 carbs, 1 fiber
func seedPantry(t *testing.T, sqldb *sql.DB) {
	t.Helper()
	ingredients := []service.IngredientInput{
		{Name: "Oats", Unit: "g", Calories: f(389), ProteinG: f(16.9), CarbsG: f(66.3), FiberG: f(10.6)},
		{Name: "Milk", Unit: "ml", Calories: f(42), ProteinG: f(3.4), CarbsG: f(5)},
		{Name: "Chicken", Unit: "g", Calories: f(165), ProteinG: f(31), CarbsG: f(0), FiberG: f(0)},
		{Name: "Rice", Unit: "kg", Calories: f(130), ProteinG: f(2.7), CarbsG: f(28), FiberG: f(0.4)},
	}
	for _, in := range ingredients {
		if _, err := service.CreateIngredient(sqldb, in); err != nil {
			t.Fatalf("create ingredient %s: %v", in.Name, err)
		}
	}
	recipes := map[string][]service.RecipeIngredientInput{
		"Porridge":     {{Ingredient: "oats", Quantity: 80}, {Ingredient: "milk", Quantity: 250}},
		"Chicken rice": {{Ingredient: "chicken", Quantity: 120}, {Ingredient: "rice", Quantity: 0.25}},
	}
	for name, lines := range recipes {
		if _, err := service.CreateRecipe(sqldb, service.RecipeInput{Name: name}); err != nil {
			t.Fatalf("create recipe %s: %v", name, err)
		}
		for _, line := range lines {
			if _, err := service.AddRecipeIngredient(sqldb, name, line); err != nil {
				t.Fatalf("add %s to %s: %v", line.Ingredient, name, err)
			}
		}
	}
}
