package units

import (
	"errors"
	"math"
	"testing"

	"github.com/lox/pogoda/internal/pogoda"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestConvertTemperature(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		from, to string
		want     float64
	}{
		{"freezing C to F", 0, Celsius, Fahrenheit, 32},
		{"boiling C to F", 100, Celsius, Fahrenheit, 212},
		{"F to C", -40, Fahrenheit, Celsius, -40},
		{"C to K", 20, Celsius, Kelvin, 293.15},
		{"K to F", 273.15, Kelvin, Fahrenheit, 32},
		{"identity", 12.3, Celsius, Celsius, 12.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertTemperature(tt.v, tt.from, tt.to)
			if err != nil {
				t.Fatalf("ConvertTemperature: %v", err)
			}
			if !approx(got, tt.want) {
				t.Errorf("ConvertTemperature(%v, %s, %s) = %v, want %v", tt.v, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestConvertWindSpeed(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		from, to string
		want     float64
	}{
		{"m/s to km/h", 10, MetersPerSecond, KilometersPerHour, 36},
		{"km/h to m/s", 36, KilometersPerHour, MetersPerSecond, 10},
		{"mph to m/s", 1, MilesPerHour, MetersPerSecond, 0.44704},
		{"kn to km/h", 1, Knots, KilometersPerHour, 1.852},
		{"ft/s to m/s", 10, FeetPerSecond, MetersPerSecond, 3.048},
		{"identity", 7, Knots, Knots, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertWindSpeed(tt.v, tt.from, tt.to)
			if err != nil {
				t.Fatalf("ConvertWindSpeed: %v", err)
			}
			if !approx(got, tt.want) {
				t.Errorf("ConvertWindSpeed(%v, %s, %s) = %v, want %v", tt.v, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestUnknownUnits(t *testing.T) {
	if _, err := ConvertTemperature(1, Celsius, "R"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("temperature to R: err = %v", err)
	}
	if _, err := ConvertTemperature(1, "R", "R"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("temperature R identity: err = %v", err)
	}
	if _, err := ConvertWindSpeed(1, "bft", MetersPerSecond); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("wind speed from bft: err = %v", err)
	}
}

func TestConvertersThroughGuard(t *testing.T) {
	v := 10.0
	got, err := pogoda.ConvertUnitValue(ConvertTemperature, &v, Celsius, Fahrenheit)
	if err != nil || got == nil || !approx(*got, 50) {
		t.Fatalf("got %v, %v, want 50", got, err)
	}

	_, err = pogoda.ConvertUnitValue(ConvertWindSpeed, &v, MetersPerSecond, "furlong/fortnight")
	if !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("err = %v, want ErrUnknownUnit", err)
	}
}
