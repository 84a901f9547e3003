package mealplan

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/mealplan-cli/internal/nutrition"
	"github.com/saadjs/mealplan-cli/internal/service"
)

var ingredientCmd = &cobra.Command{
	Use:   "ingredient",
	Short: "Manage ingredients and their nutrients per 100 units",
}

var (
	ingName     string
	ingUnit     string
	ingCalories float64
	ingProtein  float64
	ingCarbs    float64
	ingFiber    float64
)

var ingredientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an ingredient",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := buildIngredientInput(cmd, service.IngredientInput{})
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.CreateIngredient(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created ingredient %s\n", id)
			return nil
		})
	},
}

var ingredientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ingredients",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListIngredients(sqldb)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd, items)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tUNIT\tKCAL\tP\tC\tFIBER")
			for _, it := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.1f\t%.1f\t%.1f\t%.1f\n", it.ID, it.Name, it.Unit, it.Calories, it.ProteinG, it.CarbsG, it.FiberG)
			}
			return nil
		})
	},
}

var ingredientShowCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Show ingredient details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			it, err := service.ResolveIngredient(sqldb, args[0])
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd, it)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\nName: %s\nUnit: %s\nPer 100 %s:\n  Calories: %.1f\n  Protein: %.1fg\n  Carbs: %.1fg\n  Fiber: %.1fg\n",
				it.ID, it.Name, it.Unit, it.Unit, it.Calories, it.ProteinG, it.CarbsG, it.FiberG)
			return nil
		})
	},
}

var ingredientUpdateCmd = &cobra.Command{
	Use:   "update <id|name>",
	Short: "Update an ingredient; unset flags keep their current value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, current, err := service.LoadIngredientInput(sqldb, args[0])
			if err != nil {
				return err
			}
			if err := service.UpdateIngredient(sqldb, id, buildIngredientInput(cmd, current)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated ingredient %q\n", args[0])
			return nil
		})
	},
}

var ingredientDeleteCmd = &cobra.Command{
	Use:   "delete <id|name>",
	Short: "Delete an ingredient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteIngredient(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted ingredient %q\n", args[0])
			return nil
		})
	},
}

// buildIngredientInput overlays the flags set on cmd onto current.
func buildIngredientInput(cmd *cobra.Command, current service.IngredientInput) service.IngredientInput {
	in := current
	if cmd.Flags().Changed("name") {
		in.Name = ingName
	}
	if cmd.Flags().Changed("unit") || in.Unit == "" {
		in.Unit = ingUnit
	}
	in.Calories = changedFloat(cmd, "calories", ingCalories, in.Calories)
	in.ProteinG = changedFloat(cmd, "protein", ingProtein, in.ProteinG)
	in.CarbsG = changedFloat(cmd, "carbs", ingCarbs, in.CarbsG)
	in.FiberG = changedFloat(cmd, "fiber", ingFiber, in.FiberG)
	return in
}

func bindIngredientFields(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ingName, "name", "", "Ingredient name")
	cmd.Flags().StringVar(&ingUnit, "unit", "g", "Unit the quantities are given in ("+strings.Join(nutrition.KnownUnits(), ", ")+")")
	cmd.Flags().Float64Var(&ingCalories, "calories", 0, "Calories per 100 units")
	cmd.Flags().Float64Var(&ingProtein, "protein", 0, "Protein grams per 100 units")
	cmd.Flags().Float64Var(&ingCarbs, "carbs", 0, "Carbs grams per 100 units")
	cmd.Flags().Float64Var(&ingFiber, "fiber", 0, "Fiber grams per 100 units")
}

func init() {
	rootCmd.AddCommand(ingredientCmd)
	ingredientCmd.AddCommand(ingredientAddCmd, ingredientListCmd, ingredientShowCmd, ingredientUpdateCmd, ingredientDeleteCmd)

	bindIngredientFields(ingredientAddCmd)
	bindIngredientFields(ingredientUpdateCmd)
	_ = ingredientAddCmd.MarkFlagRequired("name")
}
