package domain

import "time"

// Wearable records are observational: every metric is independently
// nullable so a missing one never blocks ingestion of the others.

// WearableDaily is one day's summary from a connected source.
type WearableDaily struct {
	ID              string   `json:"id"`
	UserID          string   `json:"user_id"`
	Date            string   `json:"date"`
	Source          string   `json:"source"`
	Steps           *int     `json:"steps"`
	RestingHR       *int     `json:"resting_hr"`
	HRVms           *float64 `json:"hrv_ms"`
	ActiveCalories  *int     `json:"active_calories"`
	TotalCalories   *int     `json:"total_calories"`
	DistanceMeters  *float64 `json:"distance_meters"`
	FloorsClimbed   *int     `json:"floors_climbed"`
	ReadinessScore  *int     `json:"readiness_score"`
	SpO2Percent     *float64 `json:"spo2_percent"`
	RespiratoryRate *float64 `json:"respiratory_rate"`
}

// SleepSession is one night's sleep interval.
type SleepSession struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Source          string    `json:"source"`
	StartedAt       time.Time `json:"started_at"`
	EndedAt         time.Time `json:"ended_at"`
	DurationMinutes *int      `json:"duration_minutes"`
	DeepMinutes     *int      `json:"deep_minutes"`
	RemMinutes      *int      `json:"rem_minutes"`
	LightMinutes    *int      `json:"light_minutes"`
	AwakeMinutes    *int      `json:"awake_minutes"`
	SleepScore      *int      `json:"sleep_score"`
	AvgHeartRate    *int      `json:"avg_heart_rate"`
}

// WearableActivity is one recorded workout or session.
type WearableActivity struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Source          string    `json:"source"`
	ActivityType    string    `json:"activity_type"`
	StartedAt       time.Time `json:"started_at"`
	DurationMinutes *int      `json:"duration_minutes"`
	DistanceMeters  *float64  `json:"distance_meters"`
	Calories        *int      `json:"calories"`
	AvgHeartRate    *int      `json:"avg_heart_rate"`
	MaxHeartRate    *int      `json:"max_heart_rate"`
}
