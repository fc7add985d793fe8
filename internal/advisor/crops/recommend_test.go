package crops

import (
	"testing"

	"github.com/agrosmart-advisor/server/internal/advisor/model"
	"github.com/stretchr/testify/assert"
)

func TestRecommendByBand(t *testing.T) {
	for _, humidity := range []float64{0, 35, 60, 95} {
		assert.Equal(t, HighTemperatureCrops, RecommendByBand(model.Weather{Temperature: 32, Humidity: humidity}))
		assert.Equal(t, LowTemperatureCrops, RecommendByBand(model.Weather{Temperature: 18, Humidity: humidity}))
		assert.Equal(t, ModerateTemperatureCrops, RecommendByBand(model.Weather{Temperature: 25, Humidity: humidity}))
	}
}

func TestRecommendByBandEdges(t *testing.T) {
	assert.Equal(t, HighTemperatureCrops, RecommendByBand(model.Weather{Temperature: 30}))
	assert.Equal(t, ModerateTemperatureCrops, RecommendByBand(model.Weather{Temperature: 20}))
	assert.Equal(t, LowTemperatureCrops, RecommendByBand(model.Weather{Temperature: 19.9}))
}

func TestRecommendByBandReturnsCopy(t *testing.T) {
	got := RecommendByBand(model.Weather{Temperature: 35})
	got[0] = "Cactus"
	assert.Equal(t, "Rice", HighTemperatureCrops[0])
}

func TestRecommendAdditive(t *testing.T) {
	cases := []struct {
		name string
		w    model.Weather
		want []string
	}{
		{"fallback weather", model.FallbackWeather, []string{"Tomato", "Wheat"}},
		{"hot and humid", model.Weather{Temperature: 30, Humidity: 80}, []string{"Tomato", "Wheat", "Rice"}},
		{"mild and dry", model.Weather{Temperature: 18, Humidity: 45}, []string{"Wheat"}},
		{"cold", model.Weather{Temperature: 5, Humidity: 90}, []string{"Wheat", "Rice"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Recommend(tc.w))
		})
	}
}
