package pogoda

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidPart  = errors.New("part must be greater than zero")
	ErrInvalidAngle = errors.New("angle should be in [0; 360] range")
)

const compassStep = 22.5

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// Bearing is one entry of the wind direction table.
type Bearing struct {
	Degrees   float64
	Direction string
}

// WindBearings lists the compass bearings from 0 to 360 in 22.5 degree
// steps. Both 0 and 360 are "N".
var WindBearings = func() []Bearing {
	b := make([]Bearing, 0, len(compassPoints)+1)
	for i := 0; i <= len(compassPoints); i++ {
		b = append(b, Bearing{
			Degrees:   float64(i) * compassStep,
			Direction: compassPoints[i%len(compassPoints)],
		})
	}
	return b
}()

// RoundByPart rounds value to the nearest multiple of part. Halves round
// to even.
func RoundByPart(value, part float64) (float64, error) {
	if !(part > 0) {
		return 0, fmt.Errorf("round %v by %v: %w", value, part, ErrInvalidPart)
	}
	return math.RoundToEven(value/part) * part, nil
}

// WindDirection returns the 16-point compass label for a wind bearing in
// degrees.
func WindDirection(angle float64) (string, error) {
	if math.IsNaN(angle) || angle < 0 || angle > 360 {
		return "", fmt.Errorf("wind direction for %v: %w", angle, ErrInvalidAngle)
	}
	idx := int(math.RoundToEven(angle/compassStep)) % len(compassPoints)
	return compassPoints[idx], nil
}
