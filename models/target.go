package models

import "time"

// DefaultMonthlyTarget is used for any month without a stored target row.
const DefaultMonthlyTarget = 300.0

// MonthlyTarget is one persisted row per (user, month). Month is always the
// first day of the month at midnight UTC.
type MonthlyTarget struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Month        time.Time `json:"month"`
	TargetAmount float64   `json:"target_amount"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SetTargetRequest struct {
	TargetAmount float64 `json:"target_amount"`
}

// Progress carries every value the dashboard derives from (total, target).
// ProgressPercent is clamped to [0,100] for the progress bar; RawPercent is
// the unclamped ratio used for over-target display text.
type Progress struct {
	Target          float64 `json:"target"`
	ProgressPercent float64 `json:"progress_percent"`
	RawPercent      float64 `json:"raw_percent"`
	Remaining       float64 `json:"remaining"`
	IsOverTarget    bool    `json:"is_over_target"`
	OverageAmount   float64 `json:"overage_amount"`
}
