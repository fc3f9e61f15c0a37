package domain

import "time"

// MarkerFlag is the server-computed classification of a marker value
// against its reference range. The client never computes it.
type MarkerFlag string

const (
	FlagNormal   MarkerFlag = "normal"
	FlagLow      MarkerFlag = "low"
	FlagHigh     MarkerFlag = "high"
	FlagCritical MarkerFlag = "critical"
)

// Biomarker is a canonical dictionary entry: a named laboratory measurement
// type with its unit and category (e.g. Ferritin, ng/mL, iron).
type Biomarker struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Unit        string `json:"unit"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// BloodPanel is one lab draw owning an ordered set of markers.
type BloodPanel struct {
	ID               string        `json:"id"`
	UserID           string        `json:"user_id"`
	TestDate         string        `json:"test_date"`
	LabName          string        `json:"lab_name"`
	SourceDocumentID *string       `json:"source_document_id"`
	Notes            *string       `json:"notes"`
	Markers          []BloodMarker `json:"markers,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}

// BloodMarker is one measured instance of a biomarker within a panel.
type BloodMarker struct {
	ID                 string     `json:"id"`
	PanelID            string     `json:"panel_id"`
	BiomarkerID        string     `json:"biomarker_id"`
	Value              float64    `json:"value"`
	Unit               string     `json:"unit"`
	ReferenceRangeLow  *float64   `json:"reference_range_low"`
	ReferenceRangeHigh *float64   `json:"reference_range_high"`
	Flag               MarkerFlag `json:"flag"`
}

// BloodPanelCreate starts a new panel; markers are added separately.
type BloodPanelCreate struct {
	TestDate string  `json:"test_date" validate:"required"`
	LabName  string  `json:"lab_name"`
	Notes    *string `json:"notes,omitempty"`
}

// BloodPanelPatch holds the panel fields the server accepts on update.
type BloodPanelPatch struct {
	TestDate *string `json:"test_date,omitempty"`
	LabName  *string `json:"lab_name,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// BloodMarkerCreate appends a measured value to a panel. Range and flag
// come back from the server.
type BloodMarkerCreate struct {
	BiomarkerID string  `json:"biomarker_id" validate:"required"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
}
