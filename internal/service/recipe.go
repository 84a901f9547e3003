package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/saadjs/mealplan-cli/internal/model"
	"github.com/saadjs/mealplan-cli/internal/nutrition"
)

type RecipeInput struct {
	Name     string
	Servings float64
	Notes    string
}

const recipeColumns = `id, name, servings, IFNULL(notes,''), created_at, updated_at`

func CreateRecipe(db *sql.DB, in RecipeInput) (string, error) {
	if in.Servings == 0 {
		in.Servings = 1
	}
	if err := validateRecipeInput(in); err != nil {
		return "", err
	}
	id := uuid.NewString()
	_, err := db.Exec(`
INSERT INTO recipes(id, name, servings, notes)
VALUES(?, ?, ?, ?)
`, id, strings.TrimSpace(in.Name), in.Servings, strings.TrimSpace(in.Notes))
	if err != nil {
		return "", fmt.Errorf("create recipe: %w", err)
	}
	return id, nil
}

func ListRecipes(db *sql.DB) ([]model.Recipe, error) {
	rows, err := db.Query(`SELECT ` + recipeColumns + ` FROM recipes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	items := make([]model.Recipe, 0)
	for rows.Next() {
		var r model.Recipe
		if err := rows.Scan(&r.ID, &r.Name, &r.Servings, &r.Notes, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		items = append(items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return items, nil
}

func ResolveRecipe(db *sql.DB, idOrName string) (*model.Recipe, error) {
	idOrName = strings.TrimSpace(idOrName)
	if idOrName == "" {
		return nil, fmt.Errorf("recipe identifier is required")
	}
	var row *sql.Row
	if id, ok := parseIDLoose(idOrName); ok {
		row = db.QueryRow(`SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id)
	} else {
		row = db.QueryRow(`SELECT `+recipeColumns+` FROM recipes WHERE LOWER(name) = ?`, normalizeName(idOrName))
	}
	var r model.Recipe
	if err := row.Scan(&r.ID, &r.Name, &r.Servings, &r.Notes, &r.CreatedAt, &r.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("recipe %q not found", idOrName)
		}
		return nil, fmt.Errorf("resolve recipe %q: %w", idOrName, err)
	}
	return &r, nil
}

func UpdateRecipe(db *sql.DB, idOrName string, in RecipeInput) error {
	if err := validateRecipeInput(in); err != nil {
		return err
	}
	recipe, err := ResolveRecipe(db, idOrName)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
UPDATE recipes SET name = ?, servings = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, strings.TrimSpace(in.Name), in.Servings, strings.TrimSpace(in.Notes), recipe.ID)
	if err != nil {
		return fmt.Errorf("update recipe %q: %w", idOrName, err)
	}
	return nil
}

// DeleteRecipe removes the recipe and its lines. Diary slots that captured it
// keep their totals.
func DeleteRecipe(db *sql.DB, idOrName string) error {
	recipe, err := ResolveRecipe(db, idOrName)
	if err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM recipes WHERE id = ?`, recipe.ID); err != nil {
		return fmt.Errorf("delete recipe %q: %w", idOrName, err)
	}
	return nil
}

// RecipeNutrition resolves the current totals of one recipe.
func RecipeNutrition(db *sql.DB, idOrName string) (*model.Recipe, nutrition.Totals, error) {
	recipe, err := ResolveRecipe(db, idOrName)
	if err != nil {
		return nil, nutrition.Totals{}, err
	}
	lines, err := recipeLines(db, recipe.ID)
	if err != nil {
		return nil, nutrition.Totals{}, err
	}
	totals, err := nutrition.ResolveRecipe(lines)
	if err != nil {
		return nil, nutrition.Totals{}, fmt.Errorf("recipe %q: %w", recipe.Name, err)
	}
	return recipe, totals, nil
}

type RecipeWithNutrition struct {
	Recipe model.Recipe     `json:"recipe"`
	Totals nutrition.Totals `json:"totals"`
}

// ListRecipeNutrition loads every recipe and resolves their totals concurrently.
func ListRecipeNutrition(ctx context.Context, db *sql.DB) ([]RecipeWithNutrition, error) {
	recipes, err := ListRecipes(db)
	if err != nil {
		return nil, err
	}
	batch := make([]nutrition.RecipeLines, len(recipes))
	for i, r := range recipes {
		lines, err := recipeLines(db, r.ID)
		if err != nil {
			return nil, err
		}
		batch[i] = nutrition.RecipeLines{RecipeID: r.ID, Lines: lines}
	}
	resolved, err := nutrition.ResolveRecipes(ctx, batch)
	if err != nil {
		return nil, err
	}
	out := make([]RecipeWithNutrition, len(recipes))
	for i, r := range recipes {
		out[i] = RecipeWithNutrition{Recipe: r, Totals: resolved[i].Totals}
	}
	return out, nil
}

func validateRecipeInput(in RecipeInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("recipe name is required")
	}
	if err := validatePositiveFloat("servings", in.Servings); err != nil {
		return err
	}
	return nil
}
