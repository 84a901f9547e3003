package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/saadjs/mealplan-cli/internal/model"
	"github.com/saadjs/mealplan-cli/internal/workout"
)

type WorkoutInput struct {
	Name            string
	CaloriesBurnt   float64
	DurationMinutes float64
	Intensity       string
}

const workoutColumns = `id, seq, name, calories_burnt, duration_minutes, intensity, created_at, updated_at`

func CreateWorkout(db *sql.DB, in WorkoutInput) (string, error) {
	normalized, err := normalizeWorkoutInput(in)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	_, err = db.Exec(`
INSERT INTO workouts(id, seq, name, calories_burnt, duration_minutes, intensity)
VALUES(?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM workouts), ?, ?, ?, ?)
`, id, normalized.Name, normalized.CaloriesBurnt, normalized.DurationMinutes, normalized.Intensity)
	if err != nil {
		return "", fmt.Errorf("add workout: %w", err)
	}
	return id, nil
}

// ListWorkouts returns the catalog in the order workouts were added.
func ListWorkouts(db *sql.DB) ([]model.Workout, error) {
	rows, err := db.Query(`SELECT ` + workoutColumns + ` FROM workouts ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	items := make([]model.Workout, 0)
	for rows.Next() {
		var w model.Workout
		if err := rows.Scan(&w.ID, &w.Seq, &w.Name, &w.CaloriesBurnt, &w.DurationMinutes, &w.Intensity, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workouts: %w", err)
	}
	return items, nil
}

func ResolveWorkout(db *sql.DB, idOrName string) (*model.Workout, error) {
	idOrName = strings.TrimSpace(idOrName)
	if idOrName == "" {
		return nil, fmt.Errorf("workout identifier is required")
	}
	var row *sql.Row
	if id, ok := parseIDLoose(idOrName); ok {
		row = db.QueryRow(`SELECT `+workoutColumns+` FROM workouts WHERE id = ?`, id)
	} else {
		row = db.QueryRow(`SELECT `+workoutColumns+` FROM workouts WHERE LOWER(name) = ? ORDER BY seq LIMIT 1`, normalizeName(idOrName))
	}
	var w model.Workout
	if err := row.Scan(&w.ID, &w.Seq, &w.Name, &w.CaloriesBurnt, &w.DurationMinutes, &w.Intensity, &w.CreatedAt, &w.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("workout %q not found", idOrName)
		}
		return nil, fmt.Errorf("resolve workout %q: %w", idOrName, err)
	}
	return &w, nil
}

func UpdateWorkout(db *sql.DB, idOrName string, in WorkoutInput) error {
	normalized, err := normalizeWorkoutInput(in)
	if err != nil {
		return err
	}
	w, err := ResolveWorkout(db, idOrName)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
UPDATE workouts
SET name = ?, calories_burnt = ?, duration_minutes = ?, intensity = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, normalized.Name, normalized.CaloriesBurnt, normalized.DurationMinutes, normalized.Intensity, w.ID)
	if err != nil {
		return fmt.Errorf("update workout %q: %w", idOrName, err)
	}
	return nil
}

func DeleteWorkout(db *sql.DB, idOrName string) error {
	w, err := ResolveWorkout(db, idOrName)
	if err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM workouts WHERE id = ?`, w.ID); err != nil {
		return fmt.Errorf("delete workout %q: %w", idOrName, err)
	}
	return nil
}

// Catalog loads the workout catalog in catalog order for the recommender.
func Catalog(db *sql.DB) ([]workout.Workout, error) {
	items, err := ListWorkouts(db)
	if err != nil {
		return nil, err
	}
	out := make([]workout.Workout, len(items))
	for i, it := range items {
		out[i] = ToWorkout(it)
	}
	return out, nil
}

func ToWorkout(w model.Workout) workout.Workout {
	return workout.Workout{
		ID:              w.ID,
		Name:            w.Name,
		CaloriesBurnt:   w.CaloriesBurnt,
		DurationMinutes: w.DurationMinutes,
		Intensity:       workout.ParseIntensity(w.Intensity),
	}
}

// SuggestInput names where the calorie value comes from. Exactly one of
// Calories, Recipe or Date must be set.
type SuggestInput struct {
	Calories *float64
	Recipe   string
	Date     string
	UserID   string
}

type Suggestion struct {
	TargetCalories float64          `json:"target_calories"`
	Source         string           `json:"source"`
	Found          bool             `json:"found"`
	InBand         bool             `json:"in_band"`
	Workout        workout.Workout  `json:"workout"`
	Candidates     []workout.Scored `json:"candidates,omitempty"`
}

func SuggestWorkout(db *sql.DB, in SuggestInput) (*Suggestion, error) {
	target, source, err := suggestionTarget(db, in)
	if err != nil {
		return nil, err
	}
	catalog, err := Catalog(db)
	if err != nil {
		return nil, err
	}
	s := &Suggestion{TargetCalories: target, Source: source}
	if band := workout.Band(target, catalog); len(band) > 0 {
		s.InBand = true
		s.Candidates = workout.Rank(band)
	}
	s.Workout, s.Found = workout.Recommend(target, catalog)
	return s, nil
}

func suggestionTarget(db *sql.DB, in SuggestInput) (float64, string, error) {
	set := 0
	if in.Calories != nil {
		set++
	}
	if strings.TrimSpace(in.Recipe) != "" {
		set++
	}
	if strings.TrimSpace(in.Date) != "" {
		set++
	}
	if set != 1 {
		return 0, "", fmt.Errorf("use exactly one of --calories, --recipe, or --date")
	}
	switch {
	case in.Calories != nil:
		return *in.Calories, "calories", nil
	case strings.TrimSpace(in.Recipe) != "":
		recipe, totals, err := RecipeNutrition(db, in.Recipe)
		if err != nil {
			return 0, "", err
		}
		return totals.Calories, "recipe " + recipe.Name, nil
	default:
		status, err := LoadDiaryDay(db, in.UserID, in.Date)
		if err != nil {
			return 0, "", err
		}
		return status.Summary.Totals.Calories, "diary " + status.Day.Date, nil
	}
}

func normalizeWorkoutInput(in WorkoutInput) (WorkoutInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return WorkoutInput{}, fmt.Errorf("workout name is required")
	}
	if err := validatePositiveFloat("calories burnt", in.CaloriesBurnt); err != nil {
		return WorkoutInput{}, err
	}
	if err := validatePositiveFloat("duration", in.DurationMinutes); err != nil {
		return WorkoutInput{}, err
	}
	intensity := workout.ParseIntensity(in.Intensity)
	if intensity != "" && !intensity.Known() {
		return WorkoutInput{}, fmt.Errorf("invalid intensity %q (use low, medium, or high)", in.Intensity)
	}
	in.Intensity = string(intensity)
	return in, nil
}
