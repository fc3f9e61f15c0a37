package domain

import (
	"testing"
	"time"
)

func strPtr(s string) *string          { return &s }
func intPtr(n int) *int                { return &n }
func floatPtr(f float64) *float64      { return &f }
func unitPtr(u UnitSystem) *UnitSystem { return &u }

func TestValidatePreferencesPatch(t *testing.T) {
	ok := UserPreferencesPatch{UnitSystem: unitPtr(UnitMetric)}
	if err := Validate(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := UserPreferencesPatch{UnitSystem: unitPtr(UnitSystem("stone"))}
	if err := Validate(bad); err == nil {
		t.Fatalf("expected out-of-set unit_system to fail")
	}
}

func TestValidateEmptyPatchPasses(t *testing.T) {
	if err := Validate(UserPreferencesPatch{}); err != nil {
		t.Fatalf("empty patch must pass: %v", err)
	}
	if err := Validate(nil); err != nil {
		t.Fatalf("nil must pass: %v", err)
	}
}

func TestValidateMetricEntryExactlyOneValue(t *testing.T) {
	base := CustomMetricEntryCreate{RecordedAt: time.Now()}

	if err := Validate(base); err == nil {
		t.Fatalf("expected zero values to fail")
	}

	one := base
	one.ValueNumeric = floatPtr(7.5)
	if err := Validate(one); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	two := one
	two.ValueText = strPtr("tired")
	if err := Validate(two); err == nil {
		t.Fatalf("expected two values to fail")
	}
}

func TestValidateScaleBounds(t *testing.T) {
	e := CustomMetricEntryCreate{RecordedAt: time.Now(), ValueScale: intPtr(11)}
	if err := Validate(e); err == nil {
		t.Fatalf("expected scale above bound to fail")
	}
}

func TestValidateJournalScales(t *testing.T) {
	bad := JournalEntryCreate{Date: "2024-03-01", Mood: intPtr(6)}
	if err := Validate(bad); err == nil {
		t.Fatalf("expected mood 6 to fail")
	}

	good := JournalEntryCreate{Date: "2024-03-01", Mood: intPtr(4)}
	if err := Validate(good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateSlice(t *testing.T) {
	entries := []JournalEntryCreate{
		{Date: "2024-03-01", Mood: intPtr(3)},
		{Date: "2024-03-02", Stress: intPtr(9)},
	}
	if err := Validate(entries); err == nil {
		t.Fatalf("expected second element to fail")
	}
}
