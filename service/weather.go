package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const openWeatherBaseURL = "https://api.openweathermap.org"

// WeatherClient calls the OpenWeatherMap API. OpenWeatherMap has no client
// library in our stack, so this talks to the REST endpoints directly.
type WeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewWeatherClient(apiKey string) *WeatherClient {
	return &WeatherClient{
		apiKey:     apiKey,
		baseURL:    openWeatherBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithBaseURL overrides the API endpoint, used by tests.
func (c *WeatherClient) WithBaseURL(baseURL string) *WeatherClient {
	c.baseURL = baseURL
	return c
}

// OneCall fetches weather data from the One Call API 3.0 for a coordinate
// pair and returns the raw response body.
func (c *WeatherClient) OneCall(ctx context.Context, lat, lon float64) (string, error) {
	if lat < -90 || lat > 90 {
		return "", fmt.Errorf("lat must be between -90 and 90, got %v", lat)
	}
	if lon < -180 || lon > 180 {
		return "", fmt.Errorf("lon must be between -180 and 180, got %v", lon)
	}
	if c.apiKey == "" {
		return "", fmt.Errorf("OPENWEATHER_API_KEY is not set")
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("appid", c.apiKey)

	body, err := c.get(ctx, "/data/3.0/onecall", query)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// CurrentWeather is the subset of the current-weather response the summary
// formatting needs.
type CurrentWeather struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
}

// CurrentByCity fetches current weather for a city name and formats it as a
// one-line summary. Units are metric, imperial or kelvin.
func (c *WeatherClient) CurrentByCity(ctx context.Context, city, units string) (string, error) {
	if strings.TrimSpace(city) == "" {
		return "", fmt.Errorf("city must not be empty")
	}
	if c.apiKey == "" {
		return "", fmt.Errorf("OPENWEATHER_API_KEY is not set")
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	switch units {
	case "", "metric":
		units = "metric"
		query.Set("units", "metric")
	case "imperial":
		query.Set("units", "imperial")
	case "kelvin":
		// API default is Kelvin, no units parameter needed.
	default:
		return "", fmt.Errorf("units must be metric, imperial or kelvin, got %q", units)
	}

	body, err := c.get(ctx, "/data/2.5/weather", query)
	if err != nil {
		return "", err
	}

	var current CurrentWeather
	if err := json.Unmarshal(body, &current); err != nil {
		return "", fmt.Errorf("decode weather response: %w", err)
	}
	return formatCurrentWeather(current, units), nil
}

func (c *WeatherClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openweather request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read openweather response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openweather returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return body, nil
}

func formatCurrentWeather(current CurrentWeather, units string) string {
	tempUnit := "K"
	speedUnit := "m/s"
	switch units {
	case "metric":
		tempUnit = "°C"
	case "imperial":
		tempUnit = "°F"
		speedUnit = "mph"
	}

	description := "unknown conditions"
	if len(current.Weather) > 0 {
		description = current.Weather[0].Description
	}

	location := current.Name
	if current.Sys.Country != "" {
		location += ", " + current.Sys.Country
	}

	return fmt.Sprintf("Weather in %s: %s, %.1f%s (feels like %.1f%s), humidity %d%%, wind %.1f %s",
		location, description,
		current.Main.Temp, tempUnit,
		current.Main.FeelsLike, tempUnit,
		current.Main.Humidity,
		current.Wind.Speed, speedUnit)
}
