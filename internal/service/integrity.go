package service

import (
	"database/sql"
	"fmt"

	"github.com/saadjs/mealplan-cli/internal/nutrition"
)

type DoctorReport struct {
	MissingIngredientLines int      `json:"missing_ingredient_lines"`
	UnknownUnits           []string `json:"unknown_units,omitempty"`
	EmptyRecipes           int      `json:"empty_recipes"`
	FixedLines             int      `json:"fixed_lines,omitempty"`
}

// Healthy reports whether nothing blocks recipe resolution. Unknown units
// and empty recipes are warnings only.
func (r DoctorReport) Healthy() bool {
	return r.MissingIngredientLines == 0
}

func RunDoctor(db *sql.DB, fix bool) (DoctorReport, error) {
	report := DoctorReport{UnknownUnits: []string{}}
	if err := db.QueryRow(`
SELECT COUNT(1) FROM recipe_ingredients ri
LEFT JOIN ingredients i ON i.id = ri.ingredient_id
WHERE i.id IS NULL
`).Scan(&report.MissingIngredientLines); err != nil {
		return report, fmt.Errorf("doctor missing ingredient check: %w", err)
	}

	rows, err := db.Query(`SELECT name, unit FROM ingredients ORDER BY LOWER(name)`)
	if err != nil {
		return report, fmt.Errorf("doctor unit query: %w", err)
	}
	for rows.Next() {
		var name, unit string
		if err := rows.Scan(&name, &unit); err != nil {
			_ = rows.Close()
			return report, fmt.Errorf("doctor unit scan: %w", err)
		}
		if _, ok := nutrition.UnitFactor(unit); !ok {
			report.UnknownUnits = append(report.UnknownUnits, fmt.Sprintf("%s (%s)", name, unit))
		}
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return report, fmt.Errorf("doctor unit iterate: %w", err)
	}
	_ = rows.Close()

	if err := db.QueryRow(`
SELECT COUNT(1) FROM recipes r
WHERE NOT EXISTS (SELECT 1 FROM recipe_ingredients ri WHERE ri.recipe_id = r.id)
`).Scan(&report.EmptyRecipes); err != nil {
		return report, fmt.Errorf("doctor empty recipe check: %w", err)
	}

	if fix && report.MissingIngredientLines > 0 {
		tx, err := db.Begin()
		if err != nil {
			return report, fmt.Errorf("doctor fix begin tx: %w", err)
		}
		res, err := tx.Exec(`DELETE FROM recipe_ingredients WHERE ingredient_id NOT IN (SELECT id FROM ingredients)`)
		if err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("doctor fix missing ingredient lines: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("doctor fix rows affected: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return report, fmt.Errorf("doctor fix commit: %w", err)
		}
		report.FixedLines = int(n)
	}

	return report, nil
}
