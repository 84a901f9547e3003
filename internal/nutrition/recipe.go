package nutrition

import (
	"errors"
	"fmt"
)

// ErrMissingIngredientData matches any *MissingIngredientDataError via errors.Is.
var ErrMissingIngredientData = errors.New("missing ingredient data")

// MissingIngredientDataError reports a recipe line whose ingredient has no
// profile at all. A profile with zero nutrients is not missing.
type MissingIngredientDataError struct {
	IngredientID string
}

func (e *MissingIngredientDataError) Error() string {
	return fmt.Sprintf("ingredient %q has no nutrient profile", e.IngredientID)
}

func (e *MissingIngredientDataError) Is(target error) bool {
	return target == ErrMissingIngredientData
}

// Line is one ingredient of a recipe with its quantity in the ingredient's unit.
// A nil Profile means the ingredient record could not be found.
type Line struct {
	IngredientID string
	Quantity     float64
	Profile      *Profile
}

// SumLines returns the unrounded nutrient sum of lines.
func SumLines(lines []Line) (Totals, error) {
	var total Totals
	for _, line := range lines {
		if line.Profile == nil {
			return Totals{}, &MissingIngredientDataError{IngredientID: line.IngredientID}
		}
		basis := Normalize(line.Quantity, line.Profile.Unit)
		total = total.Add(Scale(*line.Profile, basis))
	}
	return total, nil
}

// ResolveRecipe computes a recipe's totals, rounded once at the end.
// An empty ingredient list yields zero totals.
func ResolveRecipe(lines []Line) (Totals, error) {
	total, err := SumLines(lines)
	if err != nil {
		return Totals{}, err
	}
	return total.Round(), nil
}
