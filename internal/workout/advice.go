package workout

var adviceByIntensity = map[Intensity][]string{
	IntensityLow: {
		"Start with a light warm-up for 5 minutes",
		"Keep your breathing steady and controlled",
		"Take breaks if needed, but try to maintain a consistent pace",
		"Stay hydrated throughout the exercise",
		"Focus on proper form rather than speed",
	},
	IntensityMedium: {
		"Warm up properly for 7-10 minutes before starting",
		"Maintain a moderate pace that challenges you but doesn't exhaust you",
		"Take short breaks between sets if needed",
		"Keep track of your heart rate to ensure you're in the target zone",
		"Stay hydrated and consider electrolyte replacement if sweating heavily",
	},
	IntensityHigh: {
		"Ensure a thorough warm-up of 10-15 minutes",
		"Push yourself but listen to your body's signals",
		"Take strategic breaks to maintain intensity",
		"Focus on proper breathing techniques",
		"Stay hydrated and consider energy supplements for longer sessions",
		"Cool down properly after the workout",
	},
}

var defaultAdvice = []string{
	"Start with a proper warm-up",
	"Maintain good form throughout the exercise",
	"Stay hydrated",
	"Listen to your body and take breaks when needed",
	"Cool down after the workout",
}

// Advice returns tips for the intensity. The returned slice is a copy.
func Advice(i Intensity) []string {
	tips, ok := adviceByIntensity[ParseIntensity(string(i))]
	if !ok {
		tips = defaultAdvice
	}
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}
