package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/agrosmart-advisor/server/internal/advisor/model"
	errx "github.com/agrosmart-advisor/server/internal/core/error"
	logx "github.com/agrosmart-advisor/server/pkg/logger"
)

var ErrMissingAPIKey = errors.New("weather: OPENWEATHER_API_KEY is not set")

// Client reads current conditions from OpenWeather.
type Client struct {
	cfg  model.WeatherConfig
	http *http.Client
}

func NewClient(cfg model.WeatherConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// currentResponse is the subset of /data/2.5/weather we read. Pointers tell a
// missing key apart from a zero reading.
type currentResponse struct {
	Main struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Current never fails: any problem with the upstream is logged and the
// fallback record is returned instead.
func (c *Client) Current(ctx context.Context, city, country string) model.Weather {
	w, err := c.fetch(ctx, city, country)
	if err != nil {
		logx.Ctx(ctx).Warn().Err(err).
			Str("city", city).
			Str("country", country).
			Msg("weather lookup failed, serving fallback")
		return model.FallbackWeather
	}
	return w
}

func (c *Client) fetch(ctx context.Context, city, country string) (model.Weather, error) {
	if c.cfg.APIKey == "" {
		return model.Weather{}, ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("q", fmt.Sprintf("%s,%s", city, country))
	q.Set("appid", c.cfg.APIKey)
	q.Set("units", "metric")
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/data/2.5/weather?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.Weather{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return model.Weather{}, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.Weather{}, errx.WrapUpstream("openweather", resp.StatusCode, nil)
	}

	var body currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.Weather{}, fmt.Errorf("decode weather response: %w", err)
	}

	w := model.Weather{
		Temperature: model.DefaultTemperature,
		Humidity:    model.DefaultHumidity,
		Soil:        model.PlaceholderSoil,
		UVIndex:     model.PlaceholderUVIndex,
	}
	if body.Main.Temp != nil {
		w.Temperature = *body.Main.Temp
	}
	if body.Main.Humidity != nil {
		w.Humidity = *body.Main.Humidity
	}
	if len(body.Weather) > 0 {
		w.Description = body.Weather[0].Description
	}
	return w, nil
}
