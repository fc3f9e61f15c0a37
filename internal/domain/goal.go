package domain

import "time"

// GoalDirection says which side of the target counts as progress.
type GoalDirection string

const (
	DirectionMinimize GoalDirection = "minimize"
	DirectionMaximize GoalDirection = "maximize"
	DirectionTarget   GoalDirection = "target"
)

// Goal defines a target for a named metric. Alerts are appended by the
// server when the threshold condition is met.
type Goal struct {
	ID             string        `json:"id"`
	UserID         string        `json:"user_id"`
	Metric         string        `json:"metric"`
	Direction      GoalDirection `json:"direction"`
	TargetValue    float64       `json:"target_value"`
	AlertThreshold *float64      `json:"alert_threshold"`
	Active         bool          `json:"active"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// GoalAlert carries an independent acknowledgment timestamp, null until the
// user acknowledges it.
type GoalAlert struct {
	ID             string     `json:"id"`
	GoalID         string     `json:"goal_id"`
	TriggeredAt    time.Time  `json:"triggered_at"`
	Value          float64    `json:"value"`
	Message        string     `json:"message"`
	AcknowledgedAt *time.Time `json:"acknowledged_at"`
}

type GoalCreate struct {
	Metric         string        `json:"metric" validate:"required"`
	Direction      GoalDirection `json:"direction" validate:"oneof=minimize maximize target"`
	TargetValue    float64       `json:"target_value"`
	AlertThreshold *float64      `json:"alert_threshold,omitempty"`
}

type GoalPatch struct {
	Direction      *GoalDirection `json:"direction,omitempty" validate:"omitempty,oneof=minimize maximize target"`
	TargetValue    *float64       `json:"target_value,omitempty"`
	AlertThreshold *float64       `json:"alert_threshold,omitempty"`
	Active         *bool          `json:"active,omitempty"`
}
