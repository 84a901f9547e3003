package service

import (
	"database/sql"
	"fmt"

	"github.com/saadjs/mealplan-cli/internal/model"
	"github.com/saadjs/mealplan-cli/internal/nutrition"
)

type RecipeIngredientInput struct {
	Ingredient string
	Quantity   float64
}

func AddRecipeIngredient(db *sql.DB, recipeIdentifier string, in RecipeIngredientInput) (int64, error) {
	recipe, err := ResolveRecipe(db, recipeIdentifier)
	if err != nil {
		return 0, err
	}
	if err := validatePositiveFloat("ingredient quantity", in.Quantity); err != nil {
		return 0, err
	}
	ing, err := ResolveIngredient(db, in.Ingredient)
	if err != nil {
		return 0, err
	}
	res, err := db.Exec(`
INSERT INTO recipe_ingredients(recipe_id, ingredient_id, quantity)
VALUES(?, ?, ?)
`, recipe.ID, ing.ID, in.Quantity)
	if err != nil {
		return 0, fmt.Errorf("add recipe ingredient: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve recipe ingredient id: %w", err)
	}
	return id, nil
}

func ListRecipeIngredients(db *sql.DB, recipeIdentifier string) ([]model.RecipeIngredient, error) {
	recipe, err := ResolveRecipe(db, recipeIdentifier)
	if err != nil {
		return nil, err
	}
	return loadRecipeIngredients(db, recipe.ID)
}

func UpdateRecipeIngredient(db *sql.DB, lineID int64, quantity float64) error {
	if lineID <= 0 {
		return fmt.Errorf("ingredient line id must be > 0")
	}
	if err := validatePositiveFloat("ingredient quantity", quantity); err != nil {
		return err
	}
	res, err := db.Exec(`
UPDATE recipe_ingredients SET quantity = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, quantity, lineID)
	if err != nil {
		return fmt.Errorf("update recipe ingredient %d: %w", lineID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("recipe ingredient %d not found", lineID)
	}
	return nil
}

func DeleteRecipeIngredient(db *sql.DB, lineID int64) error {
	if lineID <= 0 {
		return fmt.Errorf("ingredient line id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM recipe_ingredients WHERE id = ?`, lineID)
	if err != nil {
		return fmt.Errorf("delete recipe ingredient %d: %w", lineID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("recipe ingredient %d not found", lineID)
	}
	return nil
}

func loadRecipeIngredients(db *sql.DB, recipeID string) ([]model.RecipeIngredient, error) {
	rows, err := db.Query(`
SELECT ri.id, ri.recipe_id, ri.ingredient_id, ri.quantity, ri.created_at, ri.updated_at,
  i.id, i.name, i.unit, COALESCE(i.calories, 0), COALESCE(i.protein_g, 0), COALESCE(i.carbs_g, 0), COALESCE(i.fiber_g, 0)
FROM recipe_ingredients ri
LEFT JOIN ingredients i ON i.id = ri.ingredient_id
WHERE ri.recipe_id = ?
ORDER BY ri.id ASC
`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("list recipe ingredients: %w", err)
	}
	defer rows.Close()

	items := make([]model.RecipeIngredient, 0)
	for rows.Next() {
		var it model.RecipeIngredient
		var ingID, ingName, ingUnit sql.NullString
		var ing model.Ingredient
		if err := rows.Scan(&it.ID, &it.RecipeID, &it.IngredientID, &it.Quantity, &it.CreatedAt, &it.UpdatedAt,
			&ingID, &ingName, &ingUnit, &ing.Calories, &ing.ProteinG, &ing.CarbsG, &ing.FiberG); err != nil {
			return nil, fmt.Errorf("scan recipe ingredient: %w", err)
		}
		if ingID.Valid {
			ing.ID = ingID.String
			ing.Name = ingName.String
			ing.Unit = ingUnit.String
			it.Ingredient = &ing
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe ingredients: %w", err)
	}
	return items, nil
}

// recipeLines maps stored lines to engine lines, leaving Profile nil for
// lines whose ingredient is gone.
func recipeLines(db *sql.DB, recipeID string) ([]nutrition.Line, error) {
	items, err := loadRecipeIngredients(db, recipeID)
	if err != nil {
		return nil, err
	}
	lines := make([]nutrition.Line, len(items))
	for i, it := range items {
		lines[i] = nutrition.Line{IngredientID: it.IngredientID, Quantity: it.Quantity}
		if it.Ingredient != nil {
			p := Profile(*it.Ingredient)
			lines[i].Profile = &p
		}
	}
	return lines, nil
}
