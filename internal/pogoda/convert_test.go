package pogoda

import (
	"errors"
	"testing"
)

type recordingConverter struct {
	calls  int
	value  float64
	from   string
	to     string
	result float64
	err    error
}

func (r *recordingConverter) convert(v float64, from, to string) (float64, error) {
	r.calls++
	r.value, r.from, r.to = v, from, to
	return r.result, r.err
}

func ptr(f float64) *float64 { return &f }

func TestConvertUnitValue_Skips(t *testing.T) {
	tests := []struct {
		name     string
		val      *float64
		from, to string
	}{
		{"missing value", nil, "C", "F"},
		{"empty from unit", ptr(10), "", "F"},
		{"empty to unit", ptr(10), "C", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingConverter{result: 99}
			got, err := ConvertUnitValue(rec.convert, tt.val, tt.from, tt.to)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != nil {
				t.Errorf("got %v, want nil", *got)
			}
			if rec.calls != 0 {
				t.Errorf("converter called %d times, want 0", rec.calls)
			}
		})
	}
}

func TestConvertUnitValue_Delegates(t *testing.T) {
	rec := &recordingConverter{result: 50}
	got, err := ConvertUnitValue(rec.convert, ptr(10), "C", "F")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != 50 {
		t.Fatalf("got %v, want 50", got)
	}
	if rec.calls != 1 || rec.value != 10 || rec.from != "C" || rec.to != "F" {
		t.Errorf("converter called with (%v, %q, %q) x%d", rec.value, rec.from, rec.to, rec.calls)
	}
}

func TestConvertUnitValue_ZeroIsPresent(t *testing.T) {
	rec := &recordingConverter{result: 32}
	got, err := ConvertUnitValue(rec.convert, ptr(0), "C", "F")
	if err != nil || got == nil || *got != 32 {
		t.Fatalf("got %v, %v, want 32", got, err)
	}
}

func TestConvertUnitValue_ConverterError(t *testing.T) {
	boom := errors.New("unknown unit")
	rec := &recordingConverter{err: boom}
	got, err := ConvertUnitValue(rec.convert, ptr(10), "C", "parsecs")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped converter error", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil", *got)
	}
}
