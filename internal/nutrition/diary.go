package nutrition

import (
	"fmt"
	"strings"
)

type MealSlot string

const (
	Breakfast MealSlot = "breakfast"
	Lunch     MealSlot = "lunch"
	Dinner    MealSlot = "dinner"
)

// MealSlots returns every slot in display order.
func MealSlots() []MealSlot {
	return []MealSlot{Breakfast, Lunch, Dinner}
}

func ParseMealSlot(value string) (MealSlot, error) {
	slot := MealSlot(strings.ToLower(strings.TrimSpace(value)))
	switch slot {
	case Breakfast, Lunch, Dinner:
		return slot, nil
	}
	return "", fmt.Errorf("invalid meal slot %q (use breakfast, lunch, or dinner)", value)
}

type Nutrient string

const (
	NutrientFiber   Nutrient = "fiber"
	NutrientProtein Nutrient = "protein"
	NutrientCarbs   Nutrient = "carbs"
)

// Daily targets in grams. Calories are tracked as an absolute number only.
const (
	FiberTargetG   = 30
	ProteinTargetG = 100
	CarbsTargetG   = 250
)

// TrackedNutrients returns the nutrients with a daily target, in display order.
func TrackedNutrients() []Nutrient {
	return []Nutrient{NutrientFiber, NutrientProtein, NutrientCarbs}
}

type Progress struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
}

func (p Progress) Ratio() float64 {
	if p.Target == 0 {
		return 0
	}
	return p.Current / p.Target
}

type DaySummary struct {
	Totals   Totals                `json:"totals"`
	Progress map[Nutrient]Progress `json:"progress"`
}

// AggregateDay sums the totals of every non-nil slot and reports progress
// against the daily targets.
func AggregateDay(slots map[MealSlot]*Totals) DaySummary {
	var total Totals
	for _, slot := range MealSlots() {
		if t := slots[slot]; t != nil {
			total = total.Add(*t)
		}
	}
	return DaySummary{
		Totals: total,
		Progress: map[Nutrient]Progress{
			NutrientFiber:   {Current: total.Fiber, Target: FiberTargetG},
			NutrientProtein: {Current: total.Protein, Target: ProteinTargetG},
			NutrientCarbs:   {Current: total.Carbs, Target: CarbsTargetG},
		},
	}
}

// SlotEntry is the recipe chosen for a slot with the totals captured when it
// was chosen. Later edits to the recipe's ingredients do not change it.
type SlotEntry struct {
	RecipeID   string `json:"recipe_id"`
	RecipeName string `json:"recipe_name"`
	Totals     Totals `json:"totals"`
}

type DiaryDay struct {
	UserID string                  `json:"user_id"`
	Date   string                  `json:"date"`
	Slots  map[MealSlot]*SlotEntry `json:"slots"`
}

func NewDiaryDay(userID, date string) *DiaryDay {
	return &DiaryDay{UserID: userID, Date: date, Slots: map[MealSlot]*SlotEntry{}}
}

// Select overwrites one slot and returns the recomputed day.
func (d *DiaryDay) Select(slot MealSlot, entry SlotEntry) (DaySummary, error) {
	if _, err := ParseMealSlot(string(slot)); err != nil {
		return DaySummary{}, err
	}
	if d.Slots == nil {
		d.Slots = map[MealSlot]*SlotEntry{}
	}
	d.Slots[slot] = &entry
	return d.Summary(), nil
}

// Clear empties one slot and returns the recomputed day.
func (d *DiaryDay) Clear(slot MealSlot) (DaySummary, error) {
	if _, err := ParseMealSlot(string(slot)); err != nil {
		return DaySummary{}, err
	}
	delete(d.Slots, slot)
	return d.Summary(), nil
}

func (d *DiaryDay) Summary() DaySummary {
	slots := make(map[MealSlot]*Totals, len(d.Slots))
	for slot, entry := range d.Slots {
		if entry == nil {
			continue
		}
		t := entry.Totals
		slots[slot] = &t
	}
	return AggregateDay(slots)
}
