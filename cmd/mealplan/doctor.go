package mealplan

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saadjs/mealplan-cli/internal/nutrition"
	"github.com/saadjs/mealplan-cli/internal/service"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.RunDoctor(sqldb, doctorFix)
			if err != nil {
				return err
			}
			if doctorFix {
				logger.Debug("doctor fixes applied", zap.Int("fixed_lines", report.FixedLines))
				fixed := report.FixedLines
				// Re-check after fixes so exit status reflects final state.
				report, err = service.RunDoctor(sqldb, false)
				if err != nil {
					return err
				}
				report.FixedLines = fixed
			}
			if jsonOut {
				if err := printJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Recipe lines with missing ingredients: %d\n", report.MissingIngredientLines)
				fmt.Fprintf(cmd.OutOrStdout(), "Recipes without ingredients: %d\n", report.EmptyRecipes)
				fmt.Fprintf(cmd.OutOrStdout(), "Ingredients with unknown units: %d\n", len(report.UnknownUnits))
				for _, u := range report.UnknownUnits {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", u)
				}
				if len(report.UnknownUnits) > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "  (treated as basis units; known units: %s)\n", strings.Join(nutrition.KnownUnits(), ", "))
				}
				if doctorFix {
					fmt.Fprintf(cmd.OutOrStdout(), "Fixed recipe lines: %d\n", report.FixedLines)
				}
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Remove recipe lines whose ingredient no longer exists")
}
