package pogoda

import (
	"testing"
	"time"
)

func TestDayPartAt(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         DayPart
	}{
		{2, 0, Night},
		{9, 0, Morning},
		{15, 0, Day},
		{20, 0, Evening},
		{0, 0, Night},
		{5, 30, Night}, // tie between night and morning
		{5, 31, Morning},
		{12, 0, Morning}, // tie between morning and day
		{12, 1, Day},
		{17, 31, Evening},
		{23, 0, Night}, // tie between evening and night across midnight
		{22, 59, Evening},
	}

	for _, tt := range tests {
		ts := time.Date(2026, 1, 15, tt.hour, tt.minute, 0, 0, time.UTC)
		if got := DayPartAt(ts); got != tt.want {
			t.Errorf("DayPartAt(%02d:%02d) = %q, want %q", tt.hour, tt.minute, got, tt.want)
		}
	}
}

func TestRepresentativeHour(t *testing.T) {
	want := map[DayPart]int{Night: 2, Morning: 9, Day: 15, Evening: 20}
	for part, hour := range want {
		got, ok := RepresentativeHour(part)
		if !ok || got != hour {
			t.Errorf("RepresentativeHour(%q) = %d, %v, want %d", part, got, ok, hour)
		}
	}
	if _, ok := RepresentativeHour("noon"); ok {
		t.Error("RepresentativeHour(noon) should be unknown")
	}
}

func TestDayPartsOrdered(t *testing.T) {
	for i := 1; i < len(DayParts); i++ {
		if DayParts[i].Hour <= DayParts[i-1].Hour {
			t.Errorf("DayParts not ordered at %d: %v", i, DayParts)
		}
	}
}
