package model

import "time"

// ================ Config ================
type SessionConfig struct {
	Secret       string        `envconfig:"SESSION_SECRET" default:"dev-secret-key"`
	TTL          time.Duration `envconfig:"SESSION_TTL" default:"168h"`
	CookieSecure bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
}

type WeatherConfig struct {
	APIKey  string        `envconfig:"OPENWEATHER_API_KEY"`
	BaseURL string        `envconfig:"WEATHER_BASE_URL" default:"https://api.openweathermap.org"`
	Timeout time.Duration `envconfig:"WEATHER_TIMEOUT" default:"10s"`
}

type MarketConfig struct {
	APIKey     string        `envconfig:"AGMARKNET_API_KEY"`
	BaseURL    string        `envconfig:"MARKET_BASE_URL" default:"https://api.data.gov.in"`
	ResourceID string        `envconfig:"MARKET_RESOURCE_ID" default:"9ef84268-d588-465a-a308-a864a43d0070"`
	Commodity  string        `envconfig:"MARKET_COMMODITY" default:"Tomato"`
	Limit      int           `envconfig:"MARKET_LIMIT" default:"10"`
	Timeout    time.Duration `envconfig:"MARKET_TIMEOUT" default:"15s"`
	CacheTTL   time.Duration `envconfig:"MARKET_CACHE_TTL" default:"30m"`
}

type AdvisorModelConfig struct {
	APIKey      string  `envconfig:"GEMINI_API_KEY"`
	BaseURL     string  `envconfig:"GEMINI_BASE_URL"`
	Model       string  `envconfig:"ADVISOR_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"ADVISOR_MAX_TOKENS" default:"1024"`
	Temperature float32 `envconfig:"ADVISOR_TEMPERATURE" default:"0.3"`
}

// Enabled reports whether the search page may forward queries to the model.
func (c AdvisorModelConfig) Enabled() bool {
	return c.APIKey != ""
}

type CropsConfig struct {
	DataPath string `envconfig:"CROPS_DATA_PATH" default:"data/crops_data.json"`
}
