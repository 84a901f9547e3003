package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/saadjs/mealplan-cli/internal/model"
	"github.com/saadjs/mealplan-cli/internal/nutrition"
)

// IngredientInput describes an ingredient's profile per 100 units of Unit.
// Nil nutrient values are stored as absent and read back as 0.
type IngredientInput struct {
	Name     string
	Unit     string
	Calories *float64
	ProteinG *float64
	CarbsG   *float64
	FiberG   *float64
}

const ingredientColumns = `id, name, unit, COALESCE(calories, 0), COALESCE(protein_g, 0), COALESCE(carbs_g, 0), COALESCE(fiber_g, 0), created_at, updated_at`

func CreateIngredient(db *sql.DB, in IngredientInput) (string, error) {
	if err := validateIngredientInput(in); err != nil {
		return "", err
	}
	id := uuid.NewString()
	_, err := db.Exec(`
INSERT INTO ingredients(id, name, unit, calories, protein_g, carbs_g, fiber_g)
VALUES(?, ?, ?, ?, ?, ?, ?)
`, id, strings.TrimSpace(in.Name), normalizeName(in.Unit), nullableFloat(in.Calories), nullableFloat(in.ProteinG), nullableFloat(in.CarbsG), nullableFloat(in.FiberG))
	if err != nil {
		return "", fmt.Errorf("create ingredient: %w", err)
	}
	return id, nil
}

func ListIngredients(db *sql.DB) ([]model.Ingredient, error) {
	rows, err := db.Query(`SELECT ` + ingredientColumns + ` FROM ingredients ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	items := make([]model.Ingredient, 0)
	for rows.Next() {
		var it model.Ingredient
		if err := rows.Scan(&it.ID, &it.Name, &it.Unit, &it.Calories, &it.ProteinG, &it.CarbsG, &it.FiberG, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingredients: %w", err)
	}
	return items, nil
}

func ResolveIngredient(db *sql.DB, idOrName string) (*model.Ingredient, error) {
	idOrName = strings.TrimSpace(idOrName)
	if idOrName == "" {
		return nil, fmt.Errorf("ingredient identifier is required")
	}
	var row *sql.Row
	if id, ok := parseIDLoose(idOrName); ok {
		row = db.QueryRow(`SELECT `+ingredientColumns+` FROM ingredients WHERE id = ?`, id)
	} else {
		row = db.QueryRow(`SELECT `+ingredientColumns+` FROM ingredients WHERE LOWER(name) = ?`, normalizeName(idOrName))
	}
	var it model.Ingredient
	if err := row.Scan(&it.ID, &it.Name, &it.Unit, &it.Calories, &it.ProteinG, &it.CarbsG, &it.FiberG, &it.CreatedAt, &it.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("ingredient %q not found", idOrName)
		}
		return nil, fmt.Errorf("resolve ingredient %q: %w", idOrName, err)
	}
	return &it, nil
}

func UpdateIngredient(db *sql.DB, idOrName string, in IngredientInput) error {
	if err := validateIngredientInput(in); err != nil {
		return err
	}
	ing, err := ResolveIngredient(db, idOrName)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
UPDATE ingredients
SET name = ?, unit = ?, calories = ?, protein_g = ?, carbs_g = ?, fiber_g = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, strings.TrimSpace(in.Name), normalizeName(in.Unit), nullableFloat(in.Calories), nullableFloat(in.ProteinG), nullableFloat(in.CarbsG), nullableFloat(in.FiberG), ing.ID)
	if err != nil {
		return fmt.Errorf("update ingredient %q: %w", idOrName, err)
	}
	return nil
}

// LoadIngredientInput returns the stored ingredient as an input for
// UpdateIngredient. Nutrients stored as absent stay nil.
func LoadIngredientInput(db *sql.DB, idOrName string) (string, IngredientInput, error) {
	ing, err := ResolveIngredient(db, idOrName)
	if err != nil {
		return "", IngredientInput{}, err
	}
	var calories, protein, carbs, fiber sql.NullFloat64
	if err := db.QueryRow(`SELECT calories, protein_g, carbs_g, fiber_g FROM ingredients WHERE id = ?`, ing.ID).
		Scan(&calories, &protein, &carbs, &fiber); err != nil {
		return "", IngredientInput{}, fmt.Errorf("load ingredient %q: %w", idOrName, err)
	}
	return ing.ID, IngredientInput{
		Name:     ing.Name,
		Unit:     ing.Unit,
		Calories: nullFloatPtr(calories),
		ProteinG: nullFloatPtr(protein),
		CarbsG:   nullFloatPtr(carbs),
		FiberG:   nullFloatPtr(fiber),
	}, nil
}

// DeleteIngredient removes the ingredient. Recipe lines that used it are kept
// and surface as missing ingredient data until they are fixed.
func DeleteIngredient(db *sql.DB, idOrName string) error {
	ing, err := ResolveIngredient(db, idOrName)
	if err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM ingredients WHERE id = ?`, ing.ID); err != nil {
		return fmt.Errorf("delete ingredient %q: %w", idOrName, err)
	}
	return nil
}

// Profile converts a stored ingredient to the nutrient profile the engine reads.
func Profile(it model.Ingredient) nutrition.Profile {
	return nutrition.Profile{
		ID:       it.ID,
		Name:     it.Name,
		Unit:     it.Unit,
		Calories: it.Calories,
		Protein:  it.ProteinG,
		Carbs:    it.CarbsG,
		Fiber:    it.FiberG,
	}
}

func validateIngredientInput(in IngredientInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("ingredient name is required")
	}
	for _, f := range []struct {
		name  string
		value *float64
	}{
		{"calories", in.Calories},
		{"protein", in.ProteinG},
		{"carbs", in.CarbsG},
		{"fiber", in.FiberG},
	} {
		if f.value == nil {
			continue
		}
		if err := validateNonNegativeFloat(f.name, *f.value); err != nil {
			return err
		}
	}
	return nil
}
