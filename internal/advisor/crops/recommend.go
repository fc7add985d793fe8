package crops

import "github.com/agrosmart-advisor/server/internal/advisor/model"

var (
	HighTemperatureCrops     = []string{"Rice", "Sugarcane", "Cotton"}
	ModerateTemperatureCrops = []string{"Tomato", "Maize", "Soybean"}
	LowTemperatureCrops      = []string{"Wheat", "Barley", "Mustard"}

	// defaultCrops is what Recommend returns when no threshold matched.
	defaultCrops = []string{"Wheat", "Rice"}
)

const (
	highBandFrom = 30.0 // °C, inclusive
	lowBandBelow = 20.0 // °C, exclusive
)

// Recommend applies independent thresholds; several crops can match at once.
func Recommend(w model.Weather) []string {
	t, h := w.Temperature, w.Humidity

	var out []string
	if t > 20 && h > 50 {
		out = append(out, "Tomato")
	}
	if t > 15 && h > 40 {
		out = append(out, "Wheat")
	}
	if t > 25 && h > 60 {
		out = append(out, "Rice")
	}
	if len(out) == 0 {
		return append([]string(nil), defaultCrops...)
	}
	return out
}

// RecommendByBand picks exactly one fixed triple from the temperature band.
// Humidity does not take part.
func RecommendByBand(w model.Weather) []string {
	var band []string
	switch {
	case w.Temperature >= highBandFrom:
		band = HighTemperatureCrops
	case w.Temperature < lowBandBelow:
		band = LowTemperatureCrops
	default:
		band = ModerateTemperatureCrops
	}
	return append([]string(nil), band...)
}
