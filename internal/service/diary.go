package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/saadjs/mealplan-cli/internal/model"
	"github.com/saadjs/mealplan-cli/internal/nutrition"
)

type DiaryStatus struct {
	Day     *nutrition.DiaryDay  `json:"day"`
	Summary nutrition.DaySummary `json:"summary"`
}

type SelectMealInput struct {
	UserID string
	Date   string
	Slot   string
	Recipe string
}

// SelectMeal captures the recipe's current totals into the slot, replacing
// whatever the slot held, and returns the recomputed day.
func SelectMeal(db *sql.DB, in SelectMealInput) (*DiaryStatus, error) {
	userID, date, slot, err := normalizeDiaryKey(in.UserID, in.Date, in.Slot)
	if err != nil {
		return nil, err
	}
	recipe, totals, err := RecipeNutrition(db, in.Recipe)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`
INSERT INTO diary_entries(user_id, journal_date, meal_slot, recipe_id, recipe_name, calories, protein_g, carbs_g, fiber_g)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id, journal_date, meal_slot) DO UPDATE SET
  recipe_id=excluded.recipe_id,
  recipe_name=excluded.recipe_name,
  calories=excluded.calories,
  protein_g=excluded.protein_g,
  carbs_g=excluded.carbs_g,
  fiber_g=excluded.fiber_g,
  updated_at=CURRENT_TIMESTAMP
`, userID, date, string(slot), recipe.ID, recipe.Name, totals.Calories, totals.Protein, totals.Carbs, totals.Fiber)
	if err != nil {
		return nil, fmt.Errorf("save %s for %s: %w", slot, date, err)
	}
	return LoadDiaryDay(db, userID, date)
}

// ClearMeal empties one slot of the day and returns the recomputed day.
// Clearing an empty slot is a no-op.
func ClearMeal(db *sql.DB, userID, date, slot string) (*DiaryStatus, error) {
	userID, date, mealSlot, err := normalizeDiaryKey(userID, date, slot)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`DELETE FROM diary_entries WHERE user_id = ? AND journal_date = ? AND meal_slot = ?`, userID, date, string(mealSlot)); err != nil {
		return nil, fmt.Errorf("clear %s for %s: %w", mealSlot, date, err)
	}
	return LoadDiaryDay(db, userID, date)
}

// LoadDiaryDay builds the day from the stored slot snapshots.
func LoadDiaryDay(db *sql.DB, userID, date string) (*DiaryStatus, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	entries, err := ListDiaryEntries(db, userID, date)
	if err != nil {
		return nil, err
	}
	day := nutrition.NewDiaryDay(userID, date)
	for _, e := range entries {
		slot, err := nutrition.ParseMealSlot(e.MealSlot)
		if err != nil {
			return nil, fmt.Errorf("diary entry %d: %w", e.ID, err)
		}
		day.Slots[slot] = &nutrition.SlotEntry{
			RecipeID:   e.RecipeID,
			RecipeName: e.RecipeName,
			Totals: nutrition.Totals{
				Calories: e.Calories,
				Protein:  e.ProteinG,
				Carbs:    e.CarbsG,
				Fiber:    e.FiberG,
			},
		}
	}
	return &DiaryStatus{Day: day, Summary: day.Summary()}, nil
}

func ListDiaryEntries(db *sql.DB, userID, date string) ([]model.DiaryEntry, error) {
	rows, err := db.Query(`
SELECT id, user_id, journal_date, meal_slot, recipe_id, recipe_name, calories, protein_g, carbs_g, fiber_g, created_at, updated_at
FROM diary_entries
WHERE user_id = ? AND journal_date = ?
ORDER BY CASE meal_slot WHEN 'breakfast' THEN 1 WHEN 'lunch' THEN 2 ELSE 3 END
`, userID, date)
	if err != nil {
		return nil, fmt.Errorf("list diary entries: %w", err)
	}
	defer rows.Close()

	items := make([]model.DiaryEntry, 0)
	for rows.Next() {
		var e model.DiaryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.JournalDate, &e.MealSlot, &e.RecipeID, &e.RecipeName, &e.Calories, &e.ProteinG, &e.CarbsG, &e.FiberG, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan diary entry: %w", err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate diary entries: %w", err)
	}
	return items, nil
}

func normalizeDiaryKey(userID, date, slot string) (string, string, nutrition.MealSlot, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", "", "", fmt.Errorf("user id is required")
	}
	date, err := normalizeDate(date)
	if err != nil {
		return "", "", "", err
	}
	mealSlot, err := nutrition.ParseMealSlot(slot)
	if err != nil {
		return "", "", "", err
	}
	return userID, date, mealSlot, nil
}
