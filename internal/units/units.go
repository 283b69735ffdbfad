package units

import (
	"errors"
	"fmt"
)

var ErrUnknownUnit = errors.New("unknown unit")

const (
	Celsius    = "°C"
	Fahrenheit = "°F"
	Kelvin     = "K"
)

const (
	MetersPerSecond   = "m/s"
	KilometersPerHour = "km/h"
	MilesPerHour      = "mph"
	Knots             = "kn"
	FeetPerSecond     = "ft/s"
)

// TemperatureUnits lists the supported temperature units.
var TemperatureUnits = []string{Celsius, Fahrenheit, Kelvin}

// WindSpeedUnits lists the supported wind speed units.
var WindSpeedUnits = []string{MetersPerSecond, KilometersPerHour, MilesPerHour, Knots, FeetPerSecond}

// metres per second for one of each unit
var speedFactors = map[string]float64{
	MetersPerSecond:   1,
	KilometersPerHour: 1000.0 / 3600.0,
	MilesPerHour:      0.44704,
	Knots:             1852.0 / 3600.0,
	FeetPerSecond:     0.3048,
}

func toCelsius(v float64, unit string) (float64, error) {
	switch unit {
	case Celsius:
		return v, nil
	case Fahrenheit:
		return (v - 32) * 5 / 9, nil
	case Kelvin:
		return v - 273.15, nil
	}
	return 0, fmt.Errorf("temperature %q: %w", unit, ErrUnknownUnit)
}

func fromCelsius(c float64, unit string) (float64, error) {
	switch unit {
	case Celsius:
		return c, nil
	case Fahrenheit:
		return c*9/5 + 32, nil
	case Kelvin:
		return c + 273.15, nil
	}
	return 0, fmt.Errorf("temperature %q: %w", unit, ErrUnknownUnit)
}

// ConvertTemperature converts between °C, °F and K.
func ConvertTemperature(v float64, from, to string) (float64, error) {
	c, err := toCelsius(v, from)
	if err != nil {
		return 0, err
	}
	if from == to {
		return v, nil
	}
	return fromCelsius(c, to)
}

// ConvertWindSpeed converts between the units in WindSpeedUnits.
func ConvertWindSpeed(v float64, from, to string) (float64, error) {
	f, ok := speedFactors[from]
	if !ok {
		return 0, fmt.Errorf("wind speed %q: %w", from, ErrUnknownUnit)
	}
	t, ok := speedFactors[to]
	if !ok {
		return 0, fmt.Errorf("wind speed %q: %w", to, ErrUnknownUnit)
	}
	if from == to {
		return v, nil
	}
	return v * f / t, nil
}
