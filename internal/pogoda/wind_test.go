package pogoda

import (
	"errors"
	"math"
	"testing"
)

func TestRoundByPart(t *testing.T) {
	tests := []struct {
		value float64
		part  float64
		want  float64
	}{
		{10, 22.5, 0},
		{12, 22.5, 22.5},
		{100, 22.5, 90},
		{359, 22.5, 360},
		{14, 6, 12},
		{15, 6, 12}, // 2.5 rounds to even
		{21, 6, 24}, // 3.5 rounds to even
		{-7, 5, -5},
	}

	for _, tt := range tests {
		got, err := RoundByPart(tt.value, tt.part)
		if err != nil {
			t.Fatalf("RoundByPart(%v, %v): %v", tt.value, tt.part, err)
		}
		if got != tt.want {
			t.Errorf("RoundByPart(%v, %v) = %v, want %v", tt.value, tt.part, got, tt.want)
		}
	}
}

func TestRoundByPart_InvalidPart(t *testing.T) {
	for _, part := range []float64{0, -1, -0.5, math.NaN()} {
		if _, err := RoundByPart(10, part); !errors.Is(err, ErrInvalidPart) {
			t.Errorf("RoundByPart(10, %v) err = %v, want ErrInvalidPart", part, err)
		}
	}
}

func TestWindDirection(t *testing.T) {
	tests := []struct {
		angle float64
		want  string
	}{
		{0, "N"},
		{11, "N"},
		{11.25, "N"},
		{12, "NNE"},
		{45, "NE"},
		{90, "E"},
		{180, "S"},
		{200, "SSW"},
		{270, "W"},
		{330, "NNW"},
		{359, "N"},
		{360, "N"},
	}

	for _, tt := range tests {
		got, err := WindDirection(tt.angle)
		if err != nil {
			t.Fatalf("WindDirection(%v): %v", tt.angle, err)
		}
		if got != tt.want {
			t.Errorf("WindDirection(%v) = %q, want %q", tt.angle, got, tt.want)
		}
	}
}

func TestWindDirection_OutOfRange(t *testing.T) {
	for _, angle := range []float64{-1, -0.001, 360.5, 361, math.NaN(), math.Inf(1)} {
		if _, err := WindDirection(angle); !errors.Is(err, ErrInvalidAngle) {
			t.Errorf("WindDirection(%v) err = %v, want ErrInvalidAngle", angle, err)
		}
	}
}

func TestWindBearings(t *testing.T) {
	if len(WindBearings) != 17 {
		t.Fatalf("len(WindBearings) = %d, want 17", len(WindBearings))
	}
	if WindBearings[0].Direction != "N" || WindBearings[16].Direction != "N" {
		t.Errorf("0 and 360 should both be N, got %q and %q", WindBearings[0].Direction, WindBearings[16].Direction)
	}
	for _, b := range WindBearings {
		if b.Degrees < 0 || b.Degrees > 360 || math.Mod(b.Degrees, 22.5) != 0 {
			t.Errorf("bearing %v is not a 22.5 step in [0, 360]", b.Degrees)
		}
		got, err := WindDirection(b.Degrees)
		if err != nil {
			t.Fatalf("WindDirection(%v): %v", b.Degrees, err)
		}
		if got != b.Direction {
			t.Errorf("WindDirection(%v) = %q, want %q", b.Degrees, got, b.Direction)
		}
	}
}

// The direction must agree with snapping via RoundByPart and looking the
// snapped bearing up in the table.
func TestWindDirectionMatchesRoundedBearing(t *testing.T) {
	byDegrees := make(map[float64]string, len(WindBearings))
	for _, b := range WindBearings {
		byDegrees[b.Degrees] = b.Direction
	}
	for angle := 0.0; angle <= 360; angle += 0.25 {
		snapped, err := RoundByPart(angle, 22.5)
		if err != nil {
			t.Fatal(err)
		}
		want, ok := byDegrees[snapped]
		if !ok {
			t.Fatalf("snapped bearing %v for %v missing from table", snapped, angle)
		}
		got, _ := WindDirection(angle)
		if got != want {
			t.Errorf("WindDirection(%v) = %q, want %q", angle, got, want)
		}
	}
}
