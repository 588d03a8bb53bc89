package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/BruksfildServices01/farmergpt/internal/config"
	"github.com/BruksfildServices01/farmergpt/internal/httperr"
)

const currentOK = `{"main":{"temp":31.2,"feels_like":33.0,"humidity":40,"pressure":1008},
	"weather":[{"description":"haze","icon":"50d"}],"wind":{"speed":3.6}}`

func forecastOK(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{"dt":%d,"main":{"temp":%d}}`, 1700000000+i*10800, 20+i)
	}
	return `{"cod":"200","list":[` + strings.Join(items, ",") + `]}`
}

type fakeProvider struct {
	current  func(w http.ResponseWriter)
	forecast func(w http.ResponseWriter)
	calls    atomic.Int32
	lastQ    atomic.Value
}

func (p *fakeProvider) server(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.calls.Add(1)
		p.lastQ.Store(r.URL.Query())
		switch r.URL.Path {
		case "/weather":
			p.current(w)
		case "/forecast":
			p.forecast(w)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func respond(status int, body string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func newGateway(baseURL, key string) *Gateway {
	return NewGateway(&config.Config{
		WeatherAPIKey:   key,
		WeatherBaseURL:  baseURL,
		ProviderTimeout: 2 * time.Second,
	}, nil, nil)
}

func TestGetMergesBothCalls(t *testing.T) {
	p := &fakeProvider{current: respond(200, currentOK), forecast: respond(200, forecastOK(40))}
	srv := p.server(t)

	report, err := newGateway(srv.URL, "k").Get(context.Background(), "Pune")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	if report.Current.Temperature != 31.2 || report.Current.Icon != "50d" || report.Current.WindSpeed != 3.6 {
		t.Errorf("unexpected current %+v", report.Current)
	}
	if len(report.Forecast) != ForecastLimit {
		t.Errorf("expected %d forecast entries, got %d", ForecastLimit, len(report.Forecast))
	}
	if !strings.Contains(string(report.Forecast[0]), `"dt":1700000000`) {
		t.Errorf("forecast entries must pass through verbatim, got %s", report.Forecast[0])
	}
	if report.Location != "Pune" {
		t.Errorf("expected location echo, got %q", report.Location)
	}
	if p.calls.Load() != 2 {
		t.Errorf("expected 2 provider calls, got %d", p.calls.Load())
	}
}

func TestGetShortForecast(t *testing.T) {
	p := &fakeProvider{current: respond(200, currentOK), forecast: respond(200, forecastOK(3))}
	srv := p.server(t)

	report, err := newGateway(srv.URL, "k").Get(context.Background(), "Delhi")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(report.Forecast) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(report.Forecast))
	}
}

func TestGetRejectedByProvider(t *testing.T) {
	cases := []struct {
		name     string
		current  func(w http.ResponseWriter)
		forecast func(w http.ResponseWriter)
		message  string
	}{
		{
			name:     "current fails",
			current:  respond(404, `{"cod":"404","message":"city not found"}`),
			forecast: respond(200, forecastOK(8)),
			message:  "city not found",
		},
		{
			name:     "forecast fails",
			current:  respond(200, currentOK),
			forecast: respond(401, `{"cod":401,"message":"Invalid API key"}`),
			message:  "Invalid API key",
		},
		{
			name:     "both fail, current wins",
			current:  respond(404, `{"message":"city not found"}`),
			forecast: respond(401, `{"message":"Invalid API key"}`),
			message:  "city not found",
		},
		{
			name:     "no message",
			current:  respond(500, `oops`),
			forecast: respond(200, forecastOK(8)),
			message:  "Unknown error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &fakeProvider{current: tc.current, forecast: tc.forecast}
			srv := p.server(t)

			report, err := newGateway(srv.URL, "k").Get(context.Background(), "Nowhere")
			if report != nil {
				t.Fatal("expected no partial report")
			}

			e, ok := httperr.As(err)
			if !ok || e.Status != http.StatusBadRequest || e.Code != "weather_fetch_failed" {
				t.Fatalf("expected 400 weather_fetch_failed, got %v", err)
			}
			if e.Message != tc.message {
				t.Errorf("expected message %q, got %q", tc.message, e.Message)
			}
		})
	}
}

func TestGetWithoutKeyMakesNoCall(t *testing.T) {
	p := &fakeProvider{current: respond(200, currentOK), forecast: respond(200, forecastOK(8))}
	srv := p.server(t)

	_, err := newGateway(srv.URL, "").Get(context.Background(), "Delhi")
	if !httperr.HasStatus(err, http.StatusServiceUnavailable) || !httperr.HasCode(err, "weather_not_configured") {
		t.Fatalf("expected 503 weather_not_configured, got %v", err)
	}
	if p.calls.Load() != 0 {
		t.Fatalf("expected no provider calls, got %d", p.calls.Load())
	}
}

func TestGetUnreachable(t *testing.T) {
	p := &fakeProvider{current: respond(200, currentOK), forecast: respond(200, forecastOK(8))}
	srv := p.server(t)
	base := srv.URL
	srv.Close()

	_, err := newGateway(base, "k").Get(context.Background(), "Delhi")
	if !httperr.HasStatus(err, http.StatusInternalServerError) || !httperr.HasCode(err, "weather_service_error") {
		t.Fatalf("expected 500 weather_service_error, got %v", err)
	}
}

func TestGetMalformedPayload(t *testing.T) {
	p := &fakeProvider{current: respond(200, `{"main":`), forecast: respond(200, forecastOK(8))}
	srv := p.server(t)

	_, err := newGateway(srv.URL, "k").Get(context.Background(), "Delhi")
	if !httperr.HasCode(err, "weather_service_error") {
		t.Fatalf("expected weather_service_error, got %v", err)
	}
}

func TestGetSendsMetricQuery(t *testing.T) {
	p := &fakeProvider{current: respond(200, currentOK), forecast: respond(200, forecastOK(1))}
	srv := p.server(t)

	if _, err := newGateway(srv.URL, "secret").Get(context.Background(), "New Delhi"); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	q := p.lastQ.Load().(url.Values)
	if q.Get("q") != "New Delhi" || q.Get("appid") != "secret" || q.Get("units") != "metric" {
		t.Fatalf("unexpected query %v", q)
	}
}
