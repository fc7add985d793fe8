package model

// Weather is what the dashboard shows for the visitor's city.
type Weather struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Soil        int     `json:"soil"`
	UVIndex     int     `json:"uv_index"`
	Description string  `json:"description"`
}

const (
	DefaultTemperature = 25
	DefaultHumidity    = 60
	// Soil moisture and UV are placeholders; OpenWeather's current endpoint
	// does not provide them.
	PlaceholderSoil    = 50
	PlaceholderUVIndex = 6
)

// FallbackWeather is served whenever the weather API cannot be used.
var FallbackWeather = Weather{
	Temperature: DefaultTemperature,
	Humidity:    DefaultHumidity,
	Soil:        PlaceholderSoil,
	UVIndex:     PlaceholderUVIndex,
	Description: "Weather data unavailable",
}
