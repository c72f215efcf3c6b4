package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/service"
)

func TestWeatherClientOneCall(t *testing.T) {
	const body = `{"lat":37.77,"lon":-122.42,"current":{"temp":289.3}}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/3.0/onecall", r.URL.Path)
		assert.Equal(t, "37.77", r.URL.Query().Get("lat"))
		assert.Equal(t, "-122.42", r.URL.Query().Get("lon"))
		assert.Equal(t, "testkey", r.URL.Query().Get("appid"))
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := service.NewWeatherClient("testkey").WithBaseURL(server.URL)
	res, err := client.OneCall(context.Background(), 37.77, -122.42)
	require.NoError(t, err)
	assert.Equal(t, body, res)
}

func TestWeatherClientOneCallValidatesCoordinates(t *testing.T) {
	client := service.NewWeatherClient("testkey")

	_, err := client.OneCall(context.Background(), 91, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lat")

	_, err = client.OneCall(context.Background(), 0, -181)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lon")
}

func TestWeatherClientRequiresAPIKey(t *testing.T) {
	client := service.NewWeatherClient("")
	_, err := client.OneCall(context.Background(), 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENWEATHER_API_KEY")
}

func TestWeatherClientCurrentByCity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "Tokyo", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		_, _ = w.Write([]byte(`{
			"name": "Tokyo",
			"sys": {"country": "JP"},
			"weather": [{"description": "scattered clouds"}],
			"main": {"temp": 18.2, "feels_like": 17.9, "humidity": 64},
			"wind": {"speed": 3.5}
		}`))
	}))
	defer server.Close()

	client := service.NewWeatherClient("testkey").WithBaseURL(server.URL)
	res, err := client.CurrentByCity(context.Background(), "Tokyo", "metric")
	require.NoError(t, err)
	assert.Equal(t, "Weather in Tokyo, JP: scattered clouds, 18.2°C (feels like 17.9°C), humidity 64%, wind 3.5 m/s", res)
}

func TestWeatherClientCurrentByCityKelvin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Kelvin is the API default, the units parameter must be absent.
		assert.False(t, r.URL.Query().Has("units"))
		_, _ = w.Write([]byte(`{"name":"Oslo","weather":[{"description":"snow"}],"main":{"temp":270.1,"feels_like":266.0,"humidity":80},"wind":{"speed":2.0}}`))
	}))
	defer server.Close()

	client := service.NewWeatherClient("testkey").WithBaseURL(server.URL)
	res, err := client.CurrentByCity(context.Background(), "Oslo", "kelvin")
	require.NoError(t, err)
	assert.Contains(t, res, "270.1K")
}

func TestWeatherClientCurrentByCityRejectsBadUnits(t *testing.T) {
	client := service.NewWeatherClient("testkey")
	_, err := client.CurrentByCity(context.Background(), "Tokyo", "celsius")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "units")
}

func TestWeatherClientReportsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer server.Close()

	client := service.NewWeatherClient("badkey").WithBaseURL(server.URL)
	_, err := client.OneCall(context.Background(), 10, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
