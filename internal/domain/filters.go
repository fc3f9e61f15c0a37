package domain

// List filters are closed key sets: each struct declares every query
// parameter its endpoint recognizes. Zero values mean "absent" and are
// omitted from the query string entirely (see infra/api query encoding).
// Dates use the wire format YYYY-MM-DD.

// RangeFilter scopes wearable list endpoints.
type RangeFilter struct {
	StartDate string
	EndDate   string
	Source    string
	Limit     *int
}

// PanelFilter scopes blood panel listings.
type PanelFilter struct {
	StartDate string
	EndDate   string
	Limit     *int
}

// TrendFilter scopes marker history across panels by biomarker.
type TrendFilter struct {
	BiomarkerID string
	StartDate   string
	EndDate     string
	Limit       *int
}

// BiomarkerFilter scopes the canonical biomarker dictionary.
type BiomarkerFilter struct {
	Category string
}

// MeasurementFilter scopes measurement listings.
type MeasurementFilter struct {
	Type      string
	StartDate string
	EndDate   string
	Limit     *int
}

// SupplementFilter scopes supplement listings.
type SupplementFilter struct {
	Active *bool
}

// LogFilter scopes nested intake-log listings.
type LogFilter struct {
	StartDate string
	EndDate   string
	Limit     *int
}

// JournalFilter scopes mood journal listings.
type JournalFilter struct {
	StartDate string
	EndDate   string
	Limit     *int
}

// GoalFilter scopes goal listings.
type GoalFilter struct {
	Metric string
	Active *bool
}

// AlertFilter scopes nested goal-alert listings.
type AlertFilter struct {
	Acknowledged *bool
}

// InsightFilter scopes insight listings.
type InsightFilter struct {
	Category string
	Unread   *bool
	Limit    *int
}

// DocumentFilter scopes document listings.
type DocumentFilter struct {
	DocumentType string
	ParseStatus  string
	Limit        *int
}

// EntryFilter scopes nested custom-metric entry listings.
type EntryFilter struct {
	StartDate string
	EndDate   string
	Limit     *int
}
