package nutrition

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type RecipeLines struct {
	RecipeID string
	Lines    []Line
}

type RecipeNutrition struct {
	RecipeID string
	Totals   Totals
}

// ResolveRecipes resolves every recipe concurrently. Results keep input order.
func ResolveRecipes(ctx context.Context, recipes []RecipeLines) ([]RecipeNutrition, error) {
	grp, ctx := errgroup.WithContext(ctx)
	out := make([]RecipeNutrition, len(recipes))
	for i, r := range recipes {
		i, r := i, r
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			totals, err := ResolveRecipe(r.Lines)
			if err != nil {
				return fmt.Errorf("resolve recipe %s: %w", r.RecipeID, err)
			}
			out[i] = RecipeNutrition{RecipeID: r.RecipeID, Totals: totals}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
