package domain

import "time"

// Unit and format enumerations are closed sets; the client must never send
// a value outside them (see Validate).
type (
	UnitSystem  string
	TimeFormat  string
	WeekStart   string
	GlucoseUnit string
)

const (
	UnitImperial UnitSystem = "imperial"
	UnitMetric   UnitSystem = "metric"

	Time12h TimeFormat = "12h"
	Time24h TimeFormat = "24h"

	WeekStartSunday WeekStart = "sunday"
	WeekStartMonday WeekStart = "monday"

	GlucoseMgDl  GlucoseUnit = "mg_dl"
	GlucoseMmolL GlucoseUnit = "mmol_l"
)

// UserPreferences is a 1:1 dependent of User.
type UserPreferences struct {
	UserID      string      `json:"user_id"`
	UnitSystem  UnitSystem  `json:"unit_system" validate:"oneof=imperial metric"`
	TimeFormat  TimeFormat  `json:"time_format" validate:"oneof=12h 24h"`
	WeekStart   WeekStart   `json:"week_start" validate:"oneof=sunday monday"`
	GlucoseUnit GlucoseUnit `json:"glucose_unit" validate:"oneof=mg_dl mmol_l"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// UserPreferencesPatch carries a subset of preference fields. Omitted fields
// are absent from the request body, not sent as empty strings.
type UserPreferencesPatch struct {
	UnitSystem  *UnitSystem  `json:"unit_system,omitempty" validate:"omitempty,oneof=imperial metric"`
	TimeFormat  *TimeFormat  `json:"time_format,omitempty" validate:"omitempty,oneof=12h 24h"`
	WeekStart   *WeekStart   `json:"week_start,omitempty" validate:"omitempty,oneof=sunday monday"`
	GlucoseUnit *GlucoseUnit `json:"glucose_unit,omitempty" validate:"omitempty,oneof=mg_dl mmol_l"`
}
