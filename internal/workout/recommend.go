// Package workout picks a workout from a catalog for a calorie value.
package workout

import (
	"cmp"
	"slices"
	"strings"
)

type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// ParseIntensity lowercases value. Anything other than low, medium or high is
// returned as-is and scores as unknown.
func ParseIntensity(value string) Intensity {
	return Intensity(strings.ToLower(strings.TrimSpace(value)))
}

func (i Intensity) Known() bool {
	switch i {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return true
	}
	return false
}

type Workout struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	CaloriesBurnt   float64   `json:"calories_burnt"`
	DurationMinutes float64   `json:"duration_minutes"`
	Intensity       Intensity `json:"intensity,omitempty"`
}

const (
	bandLowerFactor = 0.8
	bandUpperFactor = 1.5
	durationWeight  = 2
)

// Band returns the workouts burning between 0.8x and 1.5x target calories,
// inclusive, in catalog order.
func Band(target float64, catalog []Workout) []Workout {
	lower := bandLowerFactor * target
	upper := bandUpperFactor * target
	out := make([]Workout, 0)
	for _, w := range catalog {
		if w.CaloriesBurnt >= lower && w.CaloriesBurnt <= upper {
			out = append(out, w)
		}
	}
	return out
}

// Fallback returns the workout burning the most calories. The first one in
// catalog order wins a tie.
func Fallback(catalog []Workout) (Workout, bool) {
	if len(catalog) == 0 {
		return Workout{}, false
	}
	best := catalog[0]
	for _, w := range catalog[1:] {
		if w.CaloriesBurnt > best.CaloriesBurnt {
			best = w
		}
	}
	return best, true
}

func IntensityScore(w Workout) float64 {
	switch ParseIntensity(string(w.Intensity)) {
	case IntensityMedium:
		return 3
	case IntensityLow:
		return 2
	case IntensityHigh:
		return 1
	}
	return 0
}

// EfficiencyScore is calories burnt per minute. A zero duration is not
// guarded and yields +Inf or NaN.
func EfficiencyScore(w Workout) float64 {
	return w.CaloriesBurnt / w.DurationMinutes
}

// DurationTerm is how many minutes shorter w is than the longest candidate.
func DurationTerm(w Workout, candidates []Workout) float64 {
	return durationTerm(w, maxDuration(candidates))
}

func durationTerm(w Workout, maxDur float64) float64 {
	return maxDur - w.DurationMinutes
}

// Score ranks w among candidates. For any two candidates a and b,
// Score(a)-Score(b) == 2*(b.dur-a.dur) + intensity delta + efficiency delta.
func Score(w Workout, candidates []Workout) float64 {
	return score(w, maxDuration(candidates))
}

func score(w Workout, maxDur float64) float64 {
	return durationWeight*durationTerm(w, maxDur) + IntensityScore(w) + EfficiencyScore(w)
}

type Scored struct {
	Workout Workout `json:"workout"`
	Score   float64 `json:"score"`
}

// Rank orders candidates by descending score. Equal scores keep catalog order.
func Rank(candidates []Workout) []Scored {
	maxDur := maxDuration(candidates)
	out := make([]Scored, len(candidates))
	for i, w := range candidates {
		out[i] = Scored{Workout: w, Score: score(w, maxDur)}
	}
	slices.SortStableFunc(out, func(a, b Scored) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return out
}

// Recommend picks the best workout for target calories. It ranks the calorie
// band when it has candidates and otherwise falls back to the workout burning
// the most. It reports false only for an empty catalog.
func Recommend(target float64, catalog []Workout) (Workout, bool) {
	band := Band(target, catalog)
	if len(band) == 0 {
		return Fallback(catalog)
	}
	return Rank(band)[0].Workout, true
}

func maxDuration(candidates []Workout) float64 {
	var out float64
	for i, w := range candidates {
		if i == 0 || w.DurationMinutes > out {
			out = w.DurationMinutes
		}
	}
	return out
}
