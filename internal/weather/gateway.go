// Package weather proxies current conditions and the short-range forecast
// from an OpenWeatherMap-compatible API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/farmergpt/internal/config"
	"github.com/BruksfildServices01/farmergpt/internal/httperr"
	"github.com/BruksfildServices01/farmergpt/internal/metrics"
)

// ForecastLimit is the number of 3-hour forecast slots returned (~24h).
const ForecastLimit = 8

const provider = "weather"

type Current struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    float64 `json:"humidity"`
	Pressure    float64 `json:"pressure"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	WindSpeed   float64 `json:"wind_speed"`
}

type Report struct {
	Current  Current           `json:"current"`
	Forecast []json.RawMessage `json:"forecast"`
	Location string            `json:"location"`
}

// --------- Provider payloads ---------

type currentPayload struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type forecastPayload struct {
	List []json.RawMessage `json:"list"`
}

// errorPayload is what the provider sends on non-200 answers.
type errorPayload struct {
	Message string `json:"message"`
}

type response struct {
	status int
	body   []byte
}

// --------- Gateway ---------

type Gateway struct {
	apiKey  string
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

func NewGateway(cfg *config.Config, client *http.Client, log *slog.Logger) *Gateway {
	if client == nil {
		client = &http.Client{Timeout: cfg.ProviderTimeout}
	}
	if log == nil {
		log = slog.Default()
	}

	return &Gateway{
		apiKey:  cfg.WeatherAPIKey,
		baseURL: strings.TrimRight(cfg.WeatherBaseURL, "/"),
		client:  client,
		log:     log,
	}
}

func (g *Gateway) Configured() bool {
	return g.apiKey != ""
}

// Get fetches both resources concurrently. Either call answering non-200
// fails the whole lookup with the provider's own message; nothing partial is
// returned.
func (g *Gateway) Get(ctx context.Context, location string) (*Report, error) {
	if !g.Configured() {
		return nil, httperr.Unavailable(
			"weather_not_configured",
			"Please add WEATHER_API_KEY to .env file",
		)
	}

	var current, forecast *response

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		r, err := g.fetch(egCtx, "weather", location)
		current = r
		return err
	})
	eg.Go(func() error {
		r, err := g.fetch(egCtx, "forecast", location)
		forecast = r
		return err
	})

	if err := eg.Wait(); err != nil {
		metrics.ProviderRequests.WithLabelValues(provider, metrics.OutcomeError).Inc()
		g.log.Error("weather provider unreachable", "location", location, "error", err)
		return nil, httperr.Upstream(
			http.StatusInternalServerError,
			"weather_service_error",
			"Weather service error",
		).Wrap(err)
	}

	for _, r := range []*response{current, forecast} {
		if r.status != http.StatusOK {
			metrics.ProviderRequests.WithLabelValues(provider, metrics.OutcomeRejected).Inc()
			msg := providerMessage(r.body)
			g.log.Warn("weather provider rejected request", "location", location, "status", r.status, "message", msg)
			return nil, httperr.Upstream(
				http.StatusBadRequest,
				"weather_fetch_failed",
				msg,
			)
		}
	}

	report, err := build(location, current.body, forecast.body)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(provider, metrics.OutcomeError).Inc()
		g.log.Error("weather payload not understood", "location", location, "error", err)
		return nil, httperr.Upstream(
			http.StatusInternalServerError,
			"weather_service_error",
			"Weather service error",
		).Wrap(err)
	}

	metrics.ProviderRequests.WithLabelValues(provider, metrics.OutcomeOK).Inc()
	return report, nil
}

func (g *Gateway) fetch(ctx context.Context, resource, location string) (*response, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", g.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/"+resource+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", resource, err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", resource, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", resource, err)
	}

	return &response{status: resp.StatusCode, body: body}, nil
}

func build(location string, currentBody, forecastBody []byte) (*Report, error) {
	var cur currentPayload
	if err := json.Unmarshal(currentBody, &cur); err != nil {
		return nil, fmt.Errorf("decode current weather: %w", err)
	}
	if len(cur.Weather) == 0 {
		return nil, fmt.Errorf("decode current weather: empty weather list")
	}

	var fc forecastPayload
	if err := json.Unmarshal(forecastBody, &fc); err != nil {
		return nil, fmt.Errorf("decode forecast: %w", err)
	}

	list := fc.List
	if len(list) > ForecastLimit {
		list = list[:ForecastLimit]
	}
	if list == nil {
		list = []json.RawMessage{}
	}

	return &Report{
		Current: Current{
			Temperature: cur.Main.Temp,
			FeelsLike:   cur.Main.FeelsLike,
			Humidity:    cur.Main.Humidity,
			Pressure:    cur.Main.Pressure,
			Description: cur.Weather[0].Description,
			Icon:        cur.Weather[0].Icon,
			WindSpeed:   cur.Wind.Speed,
		},
		Forecast: list,
		Location: location,
	}, nil
}

func providerMessage(body []byte) string {
	var p errorPayload
	if err := json.Unmarshal(body, &p); err != nil || p.Message == "" {
		return "Unknown error"
	}
	return p.Message
}
