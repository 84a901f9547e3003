package mealplan

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saadjs/mealplan-cli/internal/nutrition"
	"github.com/saadjs/mealplan-cli/internal/service"
)

var diaryCmd = &cobra.Command{
	Use:   "diary",
	Short: "Plan breakfast, lunch and dinner for a day",
}

var diaryDate string

var diaryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a day's meals, totals and progress toward daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			user, err := resolveUser(sqldb)
			if err != nil {
				return err
			}
			status, err := service.LoadDiaryDay(sqldb, user, diaryDate)
			if err != nil {
				return err
			}
			return printDiary(cmd, status)
		})
	},
}

var diarySetCmd = &cobra.Command{
	Use:   "set <breakfast|lunch|dinner> <recipe-id|name>",
	Short: "Choose the recipe for a meal slot, replacing any previous choice",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			user, err := resolveUser(sqldb)
			if err != nil {
				return err
			}
			status, err := service.SelectMeal(sqldb, service.SelectMealInput{
				UserID: user,
				Date:   diaryDate,
				Slot:   args[0],
				Recipe: args[1],
			})
			if err != nil {
				return err
			}
			logger.Debug("diary slot set",
				zap.String("user", user),
				zap.String("date", status.Day.Date),
				zap.String("slot", args[0]),
				zap.String("recipe", args[1]),
				zap.Float64("day_calories", status.Summary.Totals.Calories),
			)
			return printDiary(cmd, status)
		})
	},
}

var diaryClearCmd = &cobra.Command{
	Use:   "clear <breakfast|lunch|dinner>",
	Short: "Clear a meal slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			user, err := resolveUser(sqldb)
			if err != nil {
				return err
			}
			status, err := service.ClearMeal(sqldb, user, diaryDate, args[0])
			if err != nil {
				return err
			}
			logger.Debug("diary slot cleared", zap.String("user", user), zap.String("date", status.Day.Date), zap.String("slot", args[0]))
			return printDiary(cmd, status)
		})
	},
}

func printDiary(cmd *cobra.Command, status *service.DiaryStatus) error {
	if jsonOut {
		return printJSON(cmd, status)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Diary for %s on %s\n", status.Day.UserID, status.Day.Date)
	fmt.Fprintln(out, "SLOT\tRECIPE\tKCAL\tP\tC\tFIBER")
	for _, slot := range nutrition.MealSlots() {
		entry := status.Day.Slots[slot]
		if entry == nil {
			fmt.Fprintf(out, "%s\t-\t0\t0\t0\t0\n", slot)
			continue
		}
		t := entry.Totals
		fmt.Fprintf(out, "%s\t%s\t%.0f\t%.0f\t%.0f\t%.0f\n", slot, entry.RecipeName, t.Calories, t.Protein, t.Carbs, t.Fiber)
	}
	fmt.Fprintf(out, "Total calories: %.0f\n", status.Summary.Totals.Calories)
	for _, n := range nutrition.TrackedNutrients() {
		p := status.Summary.Progress[n]
		fmt.Fprintf(out, "%s: %.0f/%.0fg (%.0f%%)\n", n, p.Current, p.Target, p.Ratio()*100)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(diaryCmd)
	diaryCmd.AddCommand(diaryShowCmd, diarySetCmd, diaryClearCmd)
	for _, c := range []*cobra.Command{diaryShowCmd, diarySetCmd, diaryClearCmd} {
		c.Flags().StringVar(&diaryDate, "date", "", "Diary date YYYY-MM-DD (default today)")
	}
}
