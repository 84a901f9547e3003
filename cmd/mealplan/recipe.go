package mealplan

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saadjs/mealplan-cli/internal/nutrition"
	"github.com/saadjs/mealplan-cli/internal/service"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Manage recipes",
}

var (
	recipeName      string
	recipeServings  float64
	recipeNotes     string
	recipeNutrients bool
)

var recipeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a recipe",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.RecipeInput{
			Name:     recipeName,
			Servings: recipeServings,
			Notes:    recipeNotes,
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.CreateRecipe(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created recipe %s\n", id)
			return nil
		})
	},
}

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if recipeNutrients {
				items, err := service.ListRecipeNutrition(cmd.Context(), sqldb)
				if err != nil {
					return err
				}
				if jsonOut {
					return printJSON(cmd, items)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tKCAL\tP\tC\tFIBER\tSERVINGS")
				for _, it := range items {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f\t%.0f\t%.0f\t%.0f\t%.2f\n", it.Recipe.ID, it.Recipe.Name, it.Totals.Calories, it.Totals.Protein, it.Totals.Carbs, it.Totals.Fiber, it.Recipe.Servings)
				}
				return nil
			}
			recipes, err := service.ListRecipes(sqldb)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd, recipes)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tSERVINGS")
			for _, r := range recipes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.2f\n", r.ID, r.Name, r.Servings)
			}
			return nil
		})
	},
}

var recipeShowCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Show recipe details and ingredients",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			r, err := service.ResolveRecipe(sqldb, args[0])
			if err != nil {
				return err
			}
			lines, err := service.ListRecipeIngredients(sqldb, r.ID)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd, map[string]any{"recipe": r, "ingredients": lines})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\nName: %s\nServings: %.2f\nNotes: %s\nIngredients:\n", r.ID, r.Name, r.Servings, r.Notes)
			for _, l := range lines {
				if l.Ingredient == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "  [%d] %.2f of missing ingredient %s\n", l.ID, l.Quantity, l.IngredientID)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  [%d] %.2f %s %s\n", l.ID, l.Quantity, l.Ingredient.Unit, l.Ingredient.Name)
			}
			return nil
		})
	},
}

var recipeUpdateCmd = &cobra.Command{
	Use:   "update <id|name>",
	Short: "Update a recipe; unset flags keep their current value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			current, err := service.ResolveRecipe(sqldb, args[0])
			if err != nil {
				return err
			}
			in := service.RecipeInput{Name: current.Name, Servings: current.Servings, Notes: current.Notes}
			if cmd.Flags().Changed("name") {
				in.Name = recipeName
			}
			if cmd.Flags().Changed("servings") {
				in.Servings = recipeServings
			}
			if cmd.Flags().Changed("notes") {
				in.Notes = recipeNotes
			}
			if err := service.UpdateRecipe(sqldb, current.ID, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated recipe %q\n", args[0])
			return nil
		})
	},
}

var recipeDeleteCmd = &cobra.Command{
	Use:   "delete <id|name>",
	Short: "Delete a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteRecipe(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted recipe %q\n", args[0])
			return nil
		})
	},
}

var recipeNutritionCmd = &cobra.Command{
	Use:   "nutrition <id|name>",
	Short: "Compute a recipe's calories, protein, carbs and fiber from its ingredients",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			r, totals, err := service.RecipeNutrition(sqldb, args[0])
			if err != nil {
				return err
			}
			logger.Debug("recipe resolved", zap.String("recipe", r.Name), zap.Float64("calories", totals.Calories))
			if jsonOut {
				return printJSON(cmd, service.RecipeWithNutrition{Recipe: *r, Totals: totals})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", r.Name)
			printTotals(cmd, totals)
			return nil
		})
	},
}

var recipeIngredientCmd = &cobra.Command{
	Use:   "ingredient",
	Short: "Manage recipe ingredients",
}

var (
	lineIngredient string
	lineQuantity   float64
)

var recipeIngredientAddCmd = &cobra.Command{
	Use:   "add <recipe-id|name>",
	Short: "Add ingredient to recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.RecipeIngredientInput{Ingredient: lineIngredient, Quantity: lineQuantity}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddRecipeIngredient(sqldb, args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added ingredient line %d\n", id)
			return nil
		})
	},
}

var recipeIngredientListCmd = &cobra.Command{
	Use:   "list <recipe-id|name>",
	Short: "List ingredients for a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListRecipeIngredients(sqldb, args[0])
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd, items)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "LINE\tINGREDIENT\tQUANTITY\tUNIT")
			for _, it := range items {
				name, unit := "(missing)", ""
				if it.Ingredient != nil {
					name, unit = it.Ingredient.Name, it.Ingredient.Unit
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%.2f\t%s\n", it.ID, name, it.Quantity, unit)
			}
			return nil
		})
	},
}

var recipeIngredientUpdateCmd = &cobra.Command{
	Use:   "update <line-id>",
	Short: "Change the quantity of a recipe ingredient line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("ingredient line id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.UpdateRecipeIngredient(sqldb, id, lineQuantity); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated ingredient line %d\n", id)
			return nil
		})
	},
}

var recipeIngredientDeleteCmd = &cobra.Command{
	Use:   "delete <line-id>",
	Short: "Delete a recipe ingredient line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("ingredient line id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteRecipeIngredient(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted ingredient line %d\n", id)
			return nil
		})
	},
}

func printTotals(cmd *cobra.Command, t nutrition.Totals) {
	fmt.Fprintf(cmd.OutOrStdout(), "Calories: %.0f\nProtein: %.0fg\nCarbs: %.0fg\nFiber: %.0fg\n", t.Calories, t.Protein, t.Carbs, t.Fiber)
}

func bindRecipeFields(cmd *cobra.Command) {
	cmd.Flags().StringVar(&recipeName, "name", "", "Recipe name")
	cmd.Flags().Float64Var(&recipeServings, "servings", 0, "Recipe servings (default 1)")
	cmd.Flags().StringVar(&recipeNotes, "notes", "", "Recipe notes")
}

func init() {
	rootCmd.AddCommand(recipeCmd)
	recipeCmd.AddCommand(recipeAddCmd, recipeListCmd, recipeShowCmd, recipeUpdateCmd, recipeDeleteCmd, recipeNutritionCmd, recipeIngredientCmd)
	recipeIngredientCmd.AddCommand(recipeIngredientAddCmd, recipeIngredientListCmd, recipeIngredientUpdateCmd, recipeIngredientDeleteCmd)

	bindRecipeFields(recipeAddCmd)
	bindRecipeFields(recipeUpdateCmd)
	_ = recipeAddCmd.MarkFlagRequired("name")
	recipeListCmd.Flags().BoolVar(&recipeNutrients, "nutrition", false, "Include computed nutrition for every recipe")

	recipeIngredientAddCmd.Flags().StringVar(&lineIngredient, "ingredient", "", "Ingredient id or name")
	recipeIngredientAddCmd.Flags().Float64Var(&lineQuantity, "quantity", 0, "Quantity in the ingredient's unit")
	recipeIngredientUpdateCmd.Flags().Float64Var(&lineQuantity, "quantity", 0, "Quantity in the ingredient's unit")
	_ = recipeIngredientAddCmd.MarkFlagRequired("ingredient")
	_ = recipeIngredientAddCmd.MarkFlagRequired("quantity")
	_ = recipeIngredientUpdateCmd.MarkFlagRequired("quantity")
}
