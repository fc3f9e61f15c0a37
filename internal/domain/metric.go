package domain

import "time"

// MetricDataType is the value kind a custom metric records.
type MetricDataType string

const (
	MetricNumeric MetricDataType = "numeric"
	MetricBoolean MetricDataType = "boolean"
	MetricScale   MetricDataType = "scale"
	MetricText    MetricDataType = "text"
)

// CustomMetric is a user-defined metric with one of four data types.
type CustomMetric struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Name      string         `json:"name"`
	DataType  MetricDataType `json:"data_type"`
	Unit      *string        `json:"unit"`
	CreatedAt time.Time      `json:"created_at"`
}

// CustomMetricEntry has exactly one non-null value field, matching the
// metric's data type.
type CustomMetricEntry struct {
	ID           string    `json:"id"`
	MetricID     string    `json:"metric_id"`
	RecordedAt   time.Time `json:"recorded_at"`
	ValueNumeric *float64  `json:"value_numeric"`
	ValueBoolean *bool     `json:"value_boolean"`
	ValueScale   *int      `json:"value_scale"`
	ValueText    *string   `json:"value_text"`
}

type CustomMetricCreate struct {
	Name     string         `json:"name" validate:"required"`
	DataType MetricDataType `json:"data_type" validate:"oneof=numeric boolean scale text"`
	Unit     *string        `json:"unit,omitempty"`
}

type CustomMetricPatch struct {
	Name *string `json:"name,omitempty"`
	Unit *string `json:"unit,omitempty"`
}

// CustomMetricEntryCreate must carry exactly one value field; ValueCount is
// enforced by Validate before the request is sent.
type CustomMetricEntryCreate struct {
	RecordedAt   time.Time `json:"recorded_at"`
	ValueNumeric *float64  `json:"value_numeric,omitempty"`
	ValueBoolean *bool     `json:"value_boolean,omitempty"`
	ValueScale   *int      `json:"value_scale,omitempty" validate:"omitempty,min=1,max=10"`
	ValueText    *string   `json:"value_text,omitempty"`
}

// ValueCount returns how many value fields are set.
func (e CustomMetricEntryCreate) ValueCount() int {
	n := 0
	if e.ValueNumeric != nil {
		n++
	}
	if e.ValueBoolean != nil {
		n++
	}
	if e.ValueScale != nil {
		n++
	}
	if e.ValueText != nil {
		n++
	}
	return n
}
