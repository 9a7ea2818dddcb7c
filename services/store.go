package services

import (
	"context"
	"time"

	"carbontrack-api/models"
)

// EmissionStore is the remote side of the aggregator. The aggregator never
// talks SQL itself so tests can stand in a fake.
type EmissionStore interface {
	// UpsertEntry inserts or replaces the (user, category, day) row.
	UpsertEntry(ctx context.Context, userID string, category models.Category, amount float64, day time.Time) error
	// SumByCategory sums amounts per category for rows on or after from.
	SumByCategory(ctx context.Context, userID string, from time.Time) (map[models.Category]float64, error)
	// DeleteFrom removes all of the user's rows on or after from.
	DeleteFrom(ctx context.Context, userID string, from time.Time) error
	// ListEntries returns the user's daily rows on or after from, oldest
	// first. Feeds the dashboard's trend chart.
	ListEntries(ctx context.Context, userID string, from time.Time) ([]models.EmissionEntry, error)
}

// TargetStore persists one target row per (user, month).
type TargetStore interface {
	UpsertTarget(ctx context.Context, userID string, month time.Time, amount float64) error
	// GetTarget returns (amount, true) when a row exists for the month.
	GetTarget(ctx context.Context, userID string, month time.Time) (float64, bool, error)
}

// todayUTC is the calendar day rows are keyed by.
func todayUTC() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// monthStartUTC returns the first of t's month at midnight UTC, the monthly
// snapshot boundary.
func monthStartUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func currentMonthStart() time.Time {
	return monthStartUTC(time.Now())
}
