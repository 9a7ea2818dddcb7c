package services

import (
	"context"
	"database/sql"
	"time"

	"carbontrack-api/models"

	"github.com/google/uuid"
)

// PostgresStore implements EmissionStore and TargetStore on the two tables
// created by config.RunMigrations.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) UpsertEntry(ctx context.Context, userID string, category models.Category, amount float64, day time.Time) error {
	query := `
		INSERT INTO emissions (id, user_id, category, amount, date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, category, date)
		DO UPDATE SET amount = EXCLUDED.amount, updated_at = NOW()
	`
	_, err := s.db.ExecContext(ctx, query, uuid.New().String(), userID, string(category), amount, day)
	return err
}

func (s *PostgresStore) SumByCategory(ctx context.Context, userID string, from time.Time) (map[models.Category]float64, error) {
	query := `
		SELECT category, COALESCE(SUM(amount), 0)
		FROM emissions
		WHERE user_id = $1 AND date >= $2
		GROUP BY category
	`
	rows, err := s.db.QueryContext(ctx, query, userID, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[models.Category]float64)
	for rows.Next() {
		var category string
		var amount float64
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, err
		}
		sums[models.Category(category)] = amount
	}
	return sums, rows.Err()
}

func (s *PostgresStore) ListEntries(ctx context.Context, userID string, from time.Time) ([]models.EmissionEntry, error) {
	query := `
		SELECT id, user_id, category, amount, date, created_at, updated_at
		FROM emissions
		WHERE user_id = $1 AND date >= $2
		ORDER BY date ASC, category ASC
	`
	rows, err := s.db.QueryContext(ctx, query, userID, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.EmissionEntry
	for rows.Next() {
		var e models.EmissionEntry
		var category string
		if err := rows.Scan(&e.ID, &e.UserID, &category, &e.Amount, &e.Date, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		e.Category = models.Category(category)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *PostgresStore) DeleteFrom(ctx context.Context, userID string, from time.Time) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM emissions WHERE user_id = $1 AND date >= $2`, userID, from)
	return err
}

func (s *PostgresStore) UpsertTarget(ctx context.Context, userID string, month time.Time, amount float64) error {
	query := `
		INSERT INTO monthly_targets (id, user_id, month, target_amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, month)
		DO UPDATE SET target_amount = EXCLUDED.target_amount, updated_at = NOW()
	`
	_, err := s.db.ExecContext(ctx, query, uuid.New().String(), userID, month, amount)
	return err
}

func (s *PostgresStore) GetTarget(ctx context.Context, userID string, month time.Time) (float64, bool, error) {
	var amount float64
	err := s.db.QueryRowContext(ctx, `
		SELECT target_amount FROM monthly_targets
		WHERE user_id = $1 AND month = $2
	`, userID, month).Scan(&amount)

	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return amount, true, nil
}
