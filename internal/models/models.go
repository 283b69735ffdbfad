package models

import "time"

// Fact is the provider's current-conditions record. Numeric fields are
// nil when the provider omitted them.
type Fact struct {
	ServerTime  time.Time
	Temperature *float64
	FeelsLike   *float64
	WindSpeed   *float64
	WindGust    *float64
	WindAngle   *float64
	Condition   string
	Daytime     string // "d" or "n"
	Icon        string
}

// IsDay reports whether the provider marked the fact as daytime.
func (f Fact) IsDay() bool {
	return f.Daytime == "d"
}

type ForecastPart struct {
	Time        time.Time
	Temperature *float64
	WindSpeed   *float64
	WindAngle   *float64
	Condition   string
	Daytime     string
	Icon        string
}

func (p ForecastPart) IsDay() bool {
	return p.Daytime == "d"
}

type Forecast struct {
	Time            time.Time `json:"datetime"`
	DayPart         string    `json:"day_part"`
	Condition       string    `json:"condition"`
	YandexCondition string    `json:"yandex_condition"`
	Icon            string    `json:"icon"`
	ProviderIcon    string    `json:"provider_icon,omitempty"`
	Temperature     *float64  `json:"temperature"`
	WindSpeed       *float64  `json:"wind_speed"`
	WindBearing     *float64  `json:"wind_bearing"`
	WindDirection   string    `json:"wind_direction,omitempty"`
}

// WeatherState is the mapped weather entity with its sensor attributes.
type WeatherState struct {
	Condition              string     `json:"condition"`
	YandexCondition        string     `json:"yandex_condition"`
	Icon                   string     `json:"icon"`
	ProviderIcon           string     `json:"provider_icon,omitempty"`
	Temperature            *float64   `json:"temperature"`
	FeelsLike              *float64   `json:"apparent_temperature"`
	TemperatureUnit        string     `json:"temperature_unit"`
	WindSpeed              *float64   `json:"wind_speed"`
	WindGust               *float64   `json:"wind_gust_speed"`
	WindSpeedUnit          string     `json:"wind_speed_unit"`
	WindBearing            *float64   `json:"wind_bearing"`
	WindDirection          string     `json:"wind_direction,omitempty"`
	DayPart                string     `json:"day_part"`
	ObservedAt             time.Time  `json:"observed_at"`
	Forecast               []Forecast `json:"forecast"`
	ForecastIcons          []string   `json:"forecast_icons"`
	MinForecastTemperature *float64   `json:"min_forecast_temperature"`
	Attribution            string     `json:"attribution"`
}

// UnknownCode is a provider code that was passed through unmapped.
type UnknownCode struct {
	Kind      string    `json:"kind"`
	Code      string    `json:"code"`
	Count     int64     `json:"count"`
	FirstSeen time.Time `json:"first_seen"`
	LastSeen  time.Time `json:"last_seen"`
}
