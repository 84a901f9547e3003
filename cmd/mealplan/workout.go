package mealplan

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saadjs/mealplan-cli/internal/service"
	"github.com/saadjs/mealplan-cli/internal/workout"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Manage the workout catalog and get suggestions",
}

var (
	workoutName      string
	workoutCalories  float64
	workoutDuration  float64
	workoutIntensity string
)

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a workout to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.WorkoutInput{
			Name:            workoutName,
			CaloriesBurnt:   workoutCalories,
			DurationMinutes: workoutDuration,
			Intensity:       workoutIntensity,
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.CreateWorkout(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created workout %s\n", id)
			return nil
		})
	},
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts in catalog order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListWorkouts(sqldb)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd, items)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tKCAL\tMIN\tINTENSITY")
			for _, w := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f\t%.0f\t%s\n", w.ID, w.Name, w.CaloriesBurnt, w.DurationMinutes, w.Intensity)
			}
			return nil
		})
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Show workout details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			w, err := service.ResolveWorkout(sqldb, args[0])
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd, w)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\nName: %s\nCalories burnt: %.0f\nDuration: %.0f min\nIntensity: %s\n", w.ID, w.Name, w.CaloriesBurnt, w.DurationMinutes, w.Intensity)
			return nil
		})
	},
}

var workoutUpdateCmd = &cobra.Command{
	Use:   "update <id|name>",
	Short: "Update a workout; unset flags keep their current value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			current, err := service.ResolveWorkout(sqldb, args[0])
			if err != nil {
				return err
			}
			in := service.WorkoutInput{
				Name:            current.Name,
				CaloriesBurnt:   current.CaloriesBurnt,
				DurationMinutes: current.DurationMinutes,
				Intensity:       current.Intensity,
			}
			if cmd.Flags().Changed("name") {
				in.Name = workoutName
			}
			if cmd.Flags().Changed("calories") {
				in.CaloriesBurnt = workoutCalories
			}
			if cmd.Flags().Changed("duration") {
				in.DurationMinutes = workoutDuration
			}
			if cmd.Flags().Changed("intensity") {
				in.Intensity = workoutIntensity
			}
			if err := service.UpdateWorkout(sqldb, current.ID, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated workout %q\n", args[0])
			return nil
		})
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <id|name>",
	Short: "Delete a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteWorkout(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted workout %q\n", args[0])
			return nil
		})
	},
}

var (
	suggestCalories float64
	suggestRecipe   string
	suggestDate     string
)

var workoutSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest a workout for a calorie amount, a recipe, or a diary day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			in := service.SuggestInput{
				Calories: changedFloat(cmd, "calories", suggestCalories, nil),
				Recipe:   suggestRecipe,
				Date:     suggestDate,
			}
			if in.Date != "" {
				user, err := resolveUser(sqldb)
				if err != nil {
					return err
				}
				in.UserID = user
			}
			s, err := service.SuggestWorkout(sqldb, in)
			if err != nil {
				return err
			}
			logger.Debug("workout suggestion",
				zap.String("source", s.Source),
				zap.Float64("target_calories", s.TargetCalories),
				zap.Int("band_candidates", len(s.Candidates)),
				zap.Bool("fallback", s.Found && !s.InBand),
				zap.String("workout", s.Workout.Name),
			)
			if jsonOut {
				return printJSON(cmd, struct {
					*service.Suggestion
					Advice []string `json:"advice,omitempty"`
				}{s, suggestionAdvice(s)})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Target: %.0f kcal (%s)\n", s.TargetCalories, s.Source)
			if !s.Found {
				fmt.Fprintln(out, "No workouts in the catalog")
				return nil
			}
			if !s.InBand {
				fmt.Fprintln(out, "No workout burns a similar amount; showing the highest-burning one")
			}
			w := s.Workout
			fmt.Fprintf(out, "Suggested: %s (%.0f kcal, %.0f min, %s)\n", w.Name, w.CaloriesBurnt, w.DurationMinutes, w.Intensity)
			for _, tip := range suggestionAdvice(s) {
				fmt.Fprintf(out, "  - %s\n", tip)
			}
			return nil
		})
	},
}

func suggestionAdvice(s *service.Suggestion) []string {
	if !s.Found {
		return nil
	}
	return workout.Advice(s.Workout.Intensity)
}

func bindWorkoutFields(cmd *cobra.Command) {
	cmd.Flags().StringVar(&workoutName, "name", "", "Workout name")
	cmd.Flags().Float64Var(&workoutCalories, "calories", 0, "Calories burnt per session")
	cmd.Flags().Float64Var(&workoutDuration, "duration", 0, "Duration in minutes")
	cmd.Flags().StringVar(&workoutIntensity, "intensity", "", "Intensity: low, medium, or high")
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd, workoutShowCmd, workoutUpdateCmd, workoutDeleteCmd, workoutSuggestCmd)

	bindWorkoutFields(workoutAddCmd)
	bindWorkoutFields(workoutUpdateCmd)
	_ = workoutAddCmd.MarkFlagRequired("name")
	_ = workoutAddCmd.MarkFlagRequired("calories")
	_ = workoutAddCmd.MarkFlagRequired("duration")

	workoutSuggestCmd.Flags().Float64Var(&suggestCalories, "calories", 0, "Calorie amount to match")
	workoutSuggestCmd.Flags().StringVar(&suggestRecipe, "recipe", "", "Match a recipe's calories")
	workoutSuggestCmd.Flags().StringVar(&suggestDate, "date", "", "Match a diary day's calories (YYYY-MM-DD)")
	workoutSuggestCmd.MarkFlagsMutuallyExclusive("calories", "recipe", "date")
	workoutSuggestCmd.MarkFlagsOneRequired("calories", "recipe", "date")
}
