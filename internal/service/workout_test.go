package service_test

import (
	"database/sql"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/saadjs/mealplan-cli/internal/service"
	"github.com/saadjs/mealplan-cli/internal/workout"
)

func seedWorkouts(t *testing.T, sqldb *sql.DB) {
	t.Helper()
	for _, in := range []service.WorkoutInput{
		{Name: "Stretch", CaloriesBurnt: 100, DurationMinutes: 30, Intensity: "low"},
		{Name: "Run", CaloriesBurnt: 500, DurationMinutes: 45, Intensity: "high"},
		{Name: "Circuit", CaloriesBurnt: 300, DurationMinutes: 20, Intensity: "Medium"},
	} {
		if _, err := service.CreateWorkout(sqldb, in); err != nil {
			t.Fatalf("create workout %s: %v", in.Name, err)
		}
	}
}

func TestWorkoutCatalogKeepsInsertionOrder(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	seedWorkouts(t, db)

	catalog, err := service.Catalog(db)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	names := make([]string, len(catalog))
	for i, w := range catalog {
		names[i] = w.Name
	}
	if diff := cmp.Diff([]string{"Stretch", "Run", "Circuit"}, names); diff != "" {
		t.Fatalf("catalog order mismatch (-want +got):\n%s", diff)
	}
	if catalog[2].Intensity != workout.IntensityMedium {
		t.Fatalf("expected normalized medium intensity, got %q", catalog[2].Intensity)
	}

	if err := service.DeleteWorkout(db, "run"); err != nil {
		t.Fatalf("delete workout: %v", err)
	}
	if _, err := service.CreateWorkout(db, service.WorkoutInput{Name: "Row", CaloriesBurnt: 250, DurationMinutes: 25}); err != nil {
		t.Fatalf("create workout: %v", err)
	}
	items, err := service.ListWorkouts(db)
	if err != nil {
		t.Fatalf("list workouts: %v", err)
	}
	if len(items) != 3 || items[2].Name != "Row" || items[2].Seq != 4 {
		t.Fatalf("expected Row appended with seq 4, got %+v", items)
	}
}

func TestWorkoutUpdateAndValidation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	seedWorkouts(t, db)

	if err := service.UpdateWorkout(db, "stretch", service.WorkoutInput{Name: "Yoga", CaloriesBurnt: 150, DurationMinutes: 40, Intensity: "low"}); err != nil {
		t.Fatalf("update workout: %v", err)
	}
	w, err := service.ResolveWorkout(db, "yoga")
	if err != nil {
		t.Fatalf("resolve workout: %v", err)
	}
	if w.CaloriesBurnt != 150 || w.DurationMinutes != 40 || w.Seq != 1 {
		t.Fatalf("unexpected workout after update: %+v", w)
	}

	bad := []service.WorkoutInput{
		{Name: "", CaloriesBurnt: 100, DurationMinutes: 10},
		{Name: "Walk", CaloriesBurnt: 0, DurationMinutes: 10},
		{Name: "Walk", CaloriesBurnt: 100, DurationMinutes: 0},
		{Name: "Walk", CaloriesBurnt: 100, DurationMinutes: 10, Intensity: "extreme"},
	}
	for _, in := range bad {
		if _, err := service.CreateWorkout(db, in); err == nil {
			t.Fatalf("expected error for %+v", in)
		}
	}
}

func TestSuggestWorkoutFromCalories(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	seedWorkouts(t, db)

	s, err := service.SuggestWorkout(db, service.SuggestInput{Calories: f(300)})
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !s.Found || !s.InBand || s.Workout.Name != "Circuit" {
		t.Fatalf("expected in-band circuit, got %+v", s)
	}
	if len(s.Candidates) != 1 {
		t.Fatalf("expected 1 band candidate, got %d", len(s.Candidates))
	}

	s, err = service.SuggestWorkout(db, service.SuggestInput{Calories: f(5000)})
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !s.Found || s.InBand || s.Workout.Name != "Run" {
		t.Fatalf("expected fallback to run, got %+v", s)
	}
}

func TestSuggestWorkoutFromRecipeAndDiary(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	seedPantry(t, db)
	seedWorkouts(t, db)

	// 416 kcal puts the band at [332.8, 624], which only Run falls into.
	s, err := service.SuggestWorkout(db, service.SuggestInput{Recipe: "porridge"})
	if err != nil {
		t.Fatalf("suggest from recipe: %v", err)
	}
	if s.TargetCalories != 416 || s.Workout.Name != "Run" || !s.InBand {
		t.Fatalf("unexpected recipe suggestion %+v", s)
	}

	if _, err := service.SelectMeal(db, service.SelectMealInput{UserID: "ana", Date: testDate, Slot: "breakfast", Recipe: "Porridge"}); err != nil {
		t.Fatalf("select breakfast: %v", err)
	}
	s, err = service.SuggestWorkout(db, service.SuggestInput{Date: testDate, UserID: "ana"})
	if err != nil {
		t.Fatalf("suggest from diary: %v", err)
	}
	if s.TargetCalories != 416 || s.Workout.Name != "Run" {
		t.Fatalf("unexpected diary suggestion %+v", s)
	}
}

func TestSuggestWorkoutNeedsOneSource(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.SuggestWorkout(db, service.SuggestInput{}); err == nil {
		t.Fatalf("expected error without a calorie source")
	}
	if _, err := service.SuggestWorkout(db, service.SuggestInput{Calories: f(100), Recipe: "Porridge"}); err == nil {
		t.Fatalf("expected error with two calorie sources")
	}

	s, err := service.SuggestWorkout(db, service.SuggestInput{Calories: f(100)})
	if err != nil {
		t.Fatalf("suggest on empty catalog: %v", err)
	}
	if s.Found {
		t.Fatalf("expected no suggestion from an empty catalog, got %+v", s.Workout)
	}
}
