package model

import "time"

type Ingredient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	Calories  float64   `json:"calories"`
	ProteinG  float64   `json:"protein_g"`
	CarbsG    float64   `json:"carbs_g"`
	FiberG    float64   `json:"fiber_g"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Recipe struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Servings  float64   `json:"servings"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecipeIngredient is a recipe line joined with its ingredient. Ingredient is
// nil when the referenced ingredient row no longer exists.
type RecipeIngredient struct {
	ID           int64       `json:"id"`
	RecipeID     string      `json:"recipe_id"`
	IngredientID string      `json:"ingredient_id"`
	Quantity     float64     `json:"quantity"`
	Ingredient   *Ingredient `json:"ingredient,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type DiaryEntry struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	JournalDate string    `json:"journal_date"`
	MealSlot    string    `json:"meal_slot"`
	RecipeID    string    `json:"recipe_id"`
	RecipeName  string    `json:"recipe_name"`
	Calories    float64   `json:"calories"`
	ProteinG    float64   `json:"protein_g"`
	CarbsG      float64   `json:"carbs_g"`
	FiberG      float64   `json:"fiber_g"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Workout struct {
	ID              string    `json:"id"`
	Seq             int64     `json:"seq"`
	Name            string    `json:"name"`
	CaloriesBurnt   float64   `json:"calories_burnt"`
	DurationMinutes float64   `json:"duration_minutes"`
	Intensity       string    `json:"intensity"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
