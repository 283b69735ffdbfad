package entity

import (
	"fmt"
	"log"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/lox/pogoda/internal/metrics"
	"github.com/lox/pogoda/internal/models"
	"github.com/lox/pogoda/internal/pogoda"
	"github.com/lox/pogoda/internal/units"
)

// Kinds of mapping table reported to an UnknownRecorder.
const (
	KindCondition = "condition"
	KindIcon      = "icon"
)

// UnknownRecorder is told about provider codes missing from a mapping table.
type UnknownRecorder interface {
	RecordUnknownCode(kind, code string, seenAt time.Time) error
}

// Builder maps provider facts onto the weather entity.
type Builder struct {
	TemperatureUnit string
	WindSpeedUnit   string
	Recorder        UnknownRecorder
	Clock           clockwork.Clock

	// Location is the zone day parts are bucketed in.
	Location *time.Location
}

// NewBuilder returns a builder that reports in the given units. Empty
// units keep the provider's. Day parts are bucketed in time.Local.
func NewBuilder(temperatureUnit, windSpeedUnit string, rec UnknownRecorder) *Builder {
	if temperatureUnit == "" {
		temperatureUnit = pogoda.ProviderTemperatureUnit
	}
	if windSpeedUnit == "" {
		windSpeedUnit = pogoda.ProviderWindSpeedUnit
	}
	return &Builder{
		TemperatureUnit: temperatureUnit,
		WindSpeedUnit:   windSpeedUnit,
		Recorder:        rec,
		Clock:           clockwork.NewRealClock(),
		Location:        time.Local,
	}
}

// Build maps a fact and its forecast. It fails on unsupported units or an
// out of range wind angle.
func (b *Builder) Build(fact models.Fact, forecast []models.ForecastPart) (models.WeatherState, error) {
	state, err := b.build(fact, forecast)
	if err != nil {
		metrics.StatesMapped.WithLabelValues("error").Inc()
		return models.WeatherState{}, err
	}
	metrics.StatesMapped.WithLabelValues("ok").Inc()
	return state, nil
}

func (b *Builder) build(fact models.Fact, forecast []models.ForecastPart) (models.WeatherState, error) {
	observedAt := fact.ServerTime
	if observedAt.IsZero() {
		observedAt = b.Clock.Now()
	}
	observedAt = b.Localize(observedAt)

	isDay := fact.IsDay()
	state := models.WeatherState{
		Condition:       b.mapCode(pogoda.WeatherStates, KindCondition, fact.Condition, isDay, observedAt),
		YandexCondition: fact.Condition,
		Icon:            b.mapCode(pogoda.ConditionIcons, KindIcon, fact.Condition, isDay, observedAt),
		ProviderIcon:    fact.Icon,
		TemperatureUnit: b.TemperatureUnit,
		WindSpeedUnit:   b.WindSpeedUnit,
		WindBearing:     fact.WindAngle,
		DayPart:         string(pogoda.DayPartAt(observedAt)),
		ObservedAt:      observedAt,
		Attribution:     pogoda.Attribution,
	}

	var err error
	if state.Temperature, err = b.temperature(fact.Temperature); err != nil {
		return models.WeatherState{}, err
	}
	if state.FeelsLike, err = b.temperature(fact.FeelsLike); err != nil {
		return models.WeatherState{}, err
	}
	if state.WindSpeed, err = b.windSpeed(fact.WindSpeed); err != nil {
		return models.WeatherState{}, err
	}
	if state.WindGust, err = b.windSpeed(fact.WindGust); err != nil {
		return models.WeatherState{}, err
	}
	if state.WindDirection, err = direction(fact.WindAngle); err != nil {
		return models.WeatherState{}, err
	}

	state.Forecast = make([]models.Forecast, 0, len(forecast))
	state.ForecastIcons = make([]string, 0, len(forecast))
	for _, part := range forecast {
		f, err := b.forecastEntry(part, observedAt)
		if err != nil {
			return models.WeatherState{}, fmt.Errorf("forecast %s: %w", part.Time.Format(time.RFC3339), err)
		}
		state.Forecast = append(state.Forecast, f)
		state.ForecastIcons = append(state.ForecastIcons, f.Icon)
		if f.Temperature != nil && (state.MinForecastTemperature == nil || *f.Temperature < *state.MinForecastTemperature) {
			low := *f.Temperature
			state.MinForecastTemperature = &low
		}
	}

	return state, nil
}

// forecastEntry maps one forecast part. Unknown codes are reported as seen
// at observedAt, not at the forecast's own time.
func (b *Builder) forecastEntry(part models.ForecastPart, observedAt time.Time) (models.Forecast, error) {
	isDay := part.IsDay()
	f := models.Forecast{
		Time:            part.Time,
		DayPart:         string(pogoda.DayPartAt(b.Localize(part.Time))),
		Condition:       b.mapCode(pogoda.WeatherStates, KindCondition, part.Condition, isDay, observedAt),
		YandexCondition: part.Condition,
		Icon:            b.mapCode(pogoda.ConditionIcons, KindIcon, part.Condition, isDay, observedAt),
		ProviderIcon:    part.Icon,
		WindBearing:     part.WindAngle,
	}

	var err error
	if f.Temperature, err = b.temperature(part.Temperature); err != nil {
		return models.Forecast{}, err
	}
	if f.WindSpeed, err = b.windSpeed(part.WindSpeed); err != nil {
		return models.Forecast{}, err
	}
	if f.WindDirection, err = direction(part.WindAngle); err != nil {
		return models.Forecast{}, err
	}
	return f, nil
}

func (b *Builder) mapCode(table *pogoda.Table, kind, code string, isDay bool, seenAt time.Time) string {
	if code == "" {
		return ""
	}
	if _, ok := table.Lookup(code); !ok {
		metrics.CodesPassedThrough.WithLabelValues(kind).Inc()
		if b.Recorder != nil {
			if err := b.Recorder.RecordUnknownCode(kind, code, seenAt); err != nil {
				log.Printf("record unknown %s %q: %v", kind, code, err)
			}
		}
	}
	return pogoda.MapState(code, isDay, table)
}

// Localize returns t in the builder's zone.
func (b *Builder) Localize(t time.Time) time.Time {
	if b.Location == nil {
		return t.In(time.Local)
	}
	return t.In(b.Location)
}

func (b *Builder) temperature(v *float64) (*float64, error) {
	return pogoda.ConvertUnitValue(units.ConvertTemperature, v, pogoda.ProviderTemperatureUnit, b.TemperatureUnit)
}

func (b *Builder) windSpeed(v *float64) (*float64, error) {
	return pogoda.ConvertUnitValue(units.ConvertWindSpeed, v, pogoda.ProviderWindSpeedUnit, b.WindSpeedUnit)
}

func direction(angle *float64) (string, error) {
	if angle == nil {
		return "", nil
	}
	d, err := pogoda.WindDirection(*angle)
	if err != nil {
		metrics.InvalidInputs.WithLabelValues("wind_direction").Inc()
		return "", err
	}
	return d, nil
}
