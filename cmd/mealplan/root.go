package mealplan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saadjs/mealplan-cli/internal/logging"
)

var (
	dbPath   string
	userFlag string
	verbose  bool
	jsonOut  bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "mealplan",
	Short: "mealplan computes recipe nutrition, keeps a daily meal diary, and suggests workouts",
	Long:  "mealplan is a local-first CLI for ingredient and recipe nutrition, a breakfast/lunch/dinner diary with daily targets, and workout suggestions matched to calories.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (default $MEALPLAN_DB or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&userFlag, "user", "", "Diary user (default $MEALPLAN_USER, then config default_user, then \"local\")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output as JSON where supported")
}
