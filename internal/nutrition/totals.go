package nutrition

import "math"

// Profile is an ingredient's nutrient values per 100 basis units.
type Profile struct {
	ID       string
	Name     string
	Unit     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fiber    float64
}

// Totals holds calories and macro grams. Values are never mutated in place.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fiber"`
}

func (t Totals) Add(o Totals) Totals {
	return Totals{
		Calories: t.Calories + o.Calories,
		Protein:  t.Protein + o.Protein,
		Carbs:    t.Carbs + o.Carbs,
		Fiber:    t.Fiber + o.Fiber,
	}
}

// Round rounds every field to the nearest integer, halves away from zero.
func (t Totals) Round() Totals {
	return Totals{
		Calories: math.Round(t.Calories),
		Protein:  math.Round(t.Protein),
		Carbs:    math.Round(t.Carbs),
		Fiber:    math.Round(t.Fiber),
	}
}

func Sum(items ...Totals) Totals {
	var out Totals
	for _, it := range items {
		out = out.Add(it)
	}
	return out
}

// Scale returns the nutrients contained in basis units of the profile.
func Scale(p Profile, basis float64) Totals {
	multiplier := basis / 100
	return Totals{
		Calories: p.Calories * multiplier,
		Protein:  p.Protein * multiplier,
		Carbs:    p.Carbs * multiplier,
		Fiber:    p.Fiber * multiplier,
	}
}
