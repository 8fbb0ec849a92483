package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// DayForecast is the per-weekday summary attached to the LLM prompt.
// Temperatures are Fahrenheit.
type DayForecast struct {
	Condition   string  `json:"condition"`
	TempMin     float64 `json:"tempMin"`
	TempMax     float64 `json:"tempMax"`
	HumidityPct float64 `json:"humidityPct"`
}

// Summary maps weekday names ("Monday"...) to their forecast. Only the
// user's workout days are present.
type Summary map[string]DayForecast

// weatherCodeLabels maps Open-Meteo WMO weather codes to readable labels.
// Codes outside the table map to "Unknown".
var weatherCodeLabels = map[int]string{
	0:  "Clear",
	1:  "Mainly Clear",
	2:  "Partly Cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Rime Fog",
	51: "Light Drizzle",
	53: "Moderate Drizzle",
	55: "Dense Drizzle",
	61: "Light Rain",
	63: "Moderate Rain",
	65: "Heavy Rain",
	71: "Light Snow",
	73: "Moderate Snow",
	75: "Heavy Snow",
	95: "Thunderstorm",
}

// Client fetches daily forecasts from Open-Meteo.
type Client struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient creates an Open-Meteo client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}
}

// Summary fetches the 7-day forecast window starting next Monday and reduces
// it to the requested workout days. Enrichment is best-effort: any network or
// decode failure is logged and an empty summary is returned, never an error.
func (c *Client) Summary(ctx context.Context, latitude, longitude float64, workoutDays []string) Summary {
	summary := Summary{}
	if len(workoutDays) == 0 {
		return summary
	}

	start := nextMonday(c.now())
	end := start.AddDate(0, 0, 6)

	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%v&longitude=%v&daily=temperature_2m_max,temperature_2m_min,relative_humidity_2m_max,weathercode&timezone=auto&temperature_unit=fahrenheit&start_date=%s&end_date=%s",
		c.baseURL, latitude, longitude,
		start.Format("2006-01-02"), end.Format("2006-01-02"),
	)

	forecast, err := c.fetchDaily(ctx, url)
	if err != nil {
		log.Printf("[weather] forecast fetch failed: %v", err)
		return Summary{}
	}

	wanted := make(map[string]struct{}, len(workoutDays))
	for _, d := range workoutDays {
		wanted[d] = struct{}{}
	}

	for i, dateStr := range forecast.Time {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			log.Printf("[weather] skipping malformed date %q: %v", dateStr, err)
			continue
		}
		dayName := date.Weekday().String()
		if _, ok := wanted[dayName]; !ok {
			continue
		}
		if i >= len(forecast.WeatherCode) || i >= len(forecast.TempMin) || i >= len(forecast.TempMax) || i >= len(forecast.Humidity) {
			continue
		}

		condition, ok := weatherCodeLabels[forecast.WeatherCode[i]]
		if !ok {
			condition = "Unknown"
		}
		summary[dayName] = DayForecast{
			Condition:   condition,
			TempMin:     forecast.TempMin[i],
			TempMax:     forecast.TempMax[i],
			HumidityPct: forecast.Humidity[i],
		}
	}

	return summary
}

type dailyForecast struct {
	Time        []string  `json:"time"`
	TempMax     []float64 `json:"temperature_2m_max"`
	TempMin     []float64 `json:"temperature_2m_min"`
	Humidity    []float64 `json:"relative_humidity_2m_max"`
	WeatherCode []int     `json:"weathercode"`
}

func (c *Client) fetchDaily(ctx context.Context, url string) (*dailyForecast, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast api error: status %d", resp.StatusCode)
	}

	var body struct {
		Daily dailyForecast `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &body.Daily, nil
}

// nextMonday returns the Monday after today. When today is a Monday the
// window still starts a full week out, so the forecast never covers the
// current day.
func nextMonday(today time.Time) time.Time {
	days := (int(time.Monday) - int(today.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return today.AddDate(0, 0, days)
}
