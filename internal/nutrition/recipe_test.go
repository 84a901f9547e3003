package nutrition_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/saadjs/mealplan-cli/internal/nutrition"
)

func profile(id, unit string, kcal, protein, carbs, fiber float64) *nutrition.Profile {
	return &nutrition.Profile{ID: id, Name: id, Unit: unit, Calories: kcal, Protein: protein, Carbs: carbs, Fiber: fiber}
}

func pancakeLines() []nutrition.Line {
	return []nutrition.Line{
		{IngredientID: "flour", Quantity: 0.25, Profile: profile("flour", "kg", 364, 10.3, 76.3, 2.7)},
		{IngredientID: "milk", Quantity: 300, Profile: profile("milk", "ml", 61, 3.2, 4.8, 0)},
		{IngredientID: "egg", Quantity: 2, Profile: profile("egg", "pcs", 155, 13, 1.1, 0)},
		{IngredientID: "sugar", Quantity: 2, Profile: profile("sugar", "tbsp", 387, 0, 100, 0)},
		{IngredientID: "oil", Quantity: 1, Profile: profile("oil", "tsp", 884, 0, 0, 0)},
	}
}

func TestResolveRecipeEmptyIsZero(t *testing.T) {
	t.Parallel()
	got, err := nutrition.ResolveRecipe(nil)
	if err != nil {
		t.Fatalf("resolve empty recipe: %v", err)
	}
	if got != (nutrition.Totals{}) {
		t.Fatalf("expected zero totals, got %+v", got)
	}
}

func TestResolveRecipeNormalizesAndRounds(t *testing.T) {
	t.Parallel()
	got, err := nutrition.ResolveRecipe(pancakeLines())
	if err != nil {
		t.Fatalf("resolve recipe: %v", err)
	}
	// flour 250g, milk 300ml, egg 2 (unknown unit), sugar 30g, oil 5ml
	want := nutrition.Totals{
		Calories: 910 + 183 + 3.1 + 116.1 + 44.2,
		Protein:  25.75 + 9.6 + 0.26,
		Carbs:    190.75 + 14.4 + 0.022 + 30,
		Fiber:    6.75,
	}.Round()
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestResolveRecipeOrderIndependent(t *testing.T) {
	t.Parallel()
	lines := pancakeLines()
	forward, err := nutrition.SumLines(lines)
	if err != nil {
		t.Fatalf("sum lines: %v", err)
	}
	reversed := make([]nutrition.Line, len(lines))
	for i, l := range lines {
		reversed[len(lines)-1-i] = l
	}
	rotated := append(append([]nutrition.Line{}, lines[2:]...), lines[:2]...)
	for _, perm := range [][]nutrition.Line{reversed, rotated} {
		got, err := nutrition.SumLines(perm)
		if err != nil {
			t.Fatalf("sum permuted lines: %v", err)
		}
		if diff := cmp.Diff(forward, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Fatalf("sum depends on order (-want +got):\n%s", diff)
		}
		rounded, _ := nutrition.ResolveRecipe(perm)
		if rounded != forward.Round() {
			t.Fatalf("rounded totals depend on order: %+v vs %+v", rounded, forward.Round())
		}
	}
}

func TestResolveRecipeIdempotent(t *testing.T) {
	t.Parallel()
	lines := pancakeLines()
	first, err := nutrition.ResolveRecipe(lines)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second, err := nutrition.ResolveRecipe(lines)
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestResolveRecipeMissingProfile(t *testing.T) {
	t.Parallel()
	lines := append(pancakeLines(), nutrition.Line{IngredientID: "ghost", Quantity: 10})
	_, err := nutrition.ResolveRecipe(lines)
	if !errors.Is(err, nutrition.ErrMissingIngredientData) {
		t.Fatalf("expected missing ingredient error, got %v", err)
	}
	var missing *nutrition.MissingIngredientDataError
	if !errors.As(err, &missing) || missing.IngredientID != "ghost" {
		t.Fatalf("expected missing ingredient ghost, got %v", err)
	}
}

func TestResolveRecipeZeroProfileIsNotMissing(t *testing.T) {
	t.Parallel()
	got, err := nutrition.ResolveRecipe([]nutrition.Line{
		{IngredientID: "water", Quantity: 2, Profile: profile("water", "l", 0, 0, 0, 0)},
	})
	if err != nil {
		t.Fatalf("resolve water: %v", err)
	}
	if got != (nutrition.Totals{}) {
		t.Fatalf("expected zero totals, got %+v", got)
	}
}

func TestResolveRecipesKeepsOrder(t *testing.T) {
	t.Parallel()
	recipes := []nutrition.RecipeLines{
		{RecipeID: "pancakes", Lines: pancakeLines()},
		{RecipeID: "empty"},
		{RecipeID: "water", Lines: []nutrition.Line{{IngredientID: "w", Quantity: 1, Profile: profile("w", "l", 0, 0, 0, 0)}}},
	}
	out, err := nutrition.ResolveRecipes(context.Background(), recipes)
	if err != nil {
		t.Fatalf("resolve recipes: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 results, got %d", len(out))
	}
	want, _ := nutrition.ResolveRecipe(pancakeLines())
	if out[0].RecipeID != "pancakes" || out[0].Totals != want {
		t.Fatalf("unexpected first result: %+v", out[0])
	}
	if out[1].RecipeID != "empty" || out[1].Totals != (nutrition.Totals{}) {
		t.Fatalf("unexpected second result: %+v", out[1])
	}
}

func TestResolveRecipesFailsOnMissingData(t *testing.T) {
	t.Parallel()
	_, err := nutrition.ResolveRecipes(context.Background(), []nutrition.RecipeLines{
		{RecipeID: "ok", Lines: pancakeLines()},
		{RecipeID: "broken", Lines: []nutrition.Line{{IngredientID: "gone", Quantity: 1}}},
	})
	if !errors.Is(err, nutrition.ErrMissingIngredientData) {
		t.Fatalf("expected missing ingredient error, got %v", err)
	}
}
