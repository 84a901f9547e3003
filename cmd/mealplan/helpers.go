package mealplan

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saadjs/mealplan-cli/internal/app"
	"github.com/saadjs/mealplan-cli/internal/db"
	"github.com/saadjs/mealplan-cli/internal/service"
)

const defaultUser = "local"

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	logger.Debug("opening database", zap.String("path", path))
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

// resolveUser picks the diary user from --user, MEALPLAN_USER, the
// default_user config key, then "local".
func resolveUser(sqldb *sql.DB) (string, error) {
	if u := strings.TrimSpace(userFlag); u != "" {
		return u, nil
	}
	if u := strings.TrimSpace(os.Getenv(app.EnvUser)); u != "" {
		return u, nil
	}
	u, ok, err := service.GetConfig(sqldb, service.ConfigDefaultUser)
	if err != nil {
		return "", err
	}
	if ok && u != "" {
		return u, nil
	}
	return defaultUser, nil
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

// changedFloat returns a pointer to value when the flag was set on the
// command line and fallback otherwise.
func changedFloat(cmd *cobra.Command, name string, value float64, fallback *float64) *float64 {
	if cmd.Flags().Changed(name) {
		v := value
		return &v
	}
	return fallback
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
