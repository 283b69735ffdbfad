package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/lox/pogoda/internal/models"
	"github.com/lox/pogoda/internal/pogoda"
)

var ErrInvalidPayload = errors.New("invalid provider payload")

// ParseFact extracts the current conditions ("now") and forecast parts
// ("forecast") from a provider payload.
func ParseFact(raw []byte) (models.Fact, []models.ForecastPart, error) {
	if !gjson.ValidBytes(raw) {
		return models.Fact{}, nil, ErrInvalidPayload
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return models.Fact{}, nil, fmt.Errorf("%w: not an object", ErrInvalidPayload)
	}

	now := doc.Get("now")
	if !now.Exists() {
		return models.Fact{}, nil, fmt.Errorf("%w: missing now", ErrInvalidPayload)
	}

	serverTime, err := parseTime(doc.Get(pogoda.AttrServerTime))
	if err != nil {
		return models.Fact{}, nil, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, pogoda.AttrServerTime, err)
	}

	fact := models.Fact{
		ServerTime:  serverTime,
		Temperature: number(now.Get(pogoda.AttrTemperature)),
		FeelsLike:   number(now.Get(pogoda.AttrFeelsLike)),
		WindSpeed:   number(now.Get(pogoda.AttrWindSpeed)),
		WindGust:    number(now.Get(pogoda.AttrWindGust)),
		WindAngle:   number(now.Get(pogoda.AttrWindBearing)),
		Condition:   now.Get(pogoda.AttrCondition).String(),
		Daytime:     now.Get(pogoda.AttrDaytime).String(),
		Icon:        now.Get(pogoda.AttrIcon).String(),
	}

	var parts []models.ForecastPart
	for i, item := range doc.Get(pogoda.AttrForecast).Array() {
		ts, err := parseTime(item.Get(pogoda.AttrTime))
		if err != nil {
			return models.Fact{}, nil, fmt.Errorf("%w: forecast[%d].%s: %v", ErrInvalidPayload, i, pogoda.AttrTime, err)
		}
		parts = append(parts, models.ForecastPart{
			Time:        ts,
			Temperature: number(item.Get(pogoda.AttrTemperature)),
			WindSpeed:   number(item.Get(pogoda.AttrWindSpeed)),
			WindAngle:   number(item.Get(pogoda.AttrWindBearing)),
			Condition:   item.Get(pogoda.AttrCondition).String(),
			Daytime:     item.Get(pogoda.AttrDaytime).String(),
			Icon:        item.Get(pogoda.AttrIcon).String(),
		})
	}

	return fact, parts, nil
}

func number(r gjson.Result) *float64 {
	if r.Type != gjson.Number {
		return nil
	}
	v := r.Float()
	return &v
}

// parseTime accepts RFC 3339 strings or unix seconds. A missing value is
// the zero time.
func parseTime(r gjson.Result) (time.Time, error) {
	switch r.Type {
	case gjson.Null:
		return time.Time{}, nil
	case gjson.Number:
		return time.Unix(r.Int(), 0).UTC(), nil
	case gjson.String:
		return time.Parse(time.RFC3339, r.Str)
	}
	return time.Time{}, fmt.Errorf("unexpected value %s", r.Raw)
}
