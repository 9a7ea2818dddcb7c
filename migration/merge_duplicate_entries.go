// One-off cleanup for databases created before the (user_id, category, date)
// uniqueness constraint: early versions appended a new emissions row per
// calculation instead of upserting. Update semantics are replace-not-add, so
// for each duplicated day only the most recent row is the true value.
//
// Runs at startup before config.RunMigrations creates the unique index, and
// can be re-triggered from the admin endpoint.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"
)

// MergeDuplicateEmissions keeps the newest row of every (user, category,
// date) group and deletes the rest. No-op when the emissions table does not
// exist yet. Returns the number of rows removed.
func MergeDuplicateEmissions(db *sql.DB) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var tableName sql.NullString
	if err := db.QueryRowContext(ctx, `SELECT to_regclass('emissions')`).Scan(&tableName); err != nil {
		return 0, fmt.Errorf("failed to check emissions table: %w", err)
	}
	if !tableName.Valid {
		return 0, nil
	}

	// Newest row wins; created_at ties break on id so the survivor is
	// deterministic.
	result, err := db.ExecContext(ctx, `
		DELETE FROM emissions e
		USING emissions d
		WHERE e.user_id = d.user_id
		  AND e.category = d.category
		  AND e.date = d.date
		  AND (e.created_at < d.created_at
		       OR (e.created_at = d.created_at AND e.id < d.id))
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to merge duplicate emissions: %w", err)
	}

	removed, _ := result.RowsAffected()
	if removed > 0 {
		log.Printf("🧹 Merged %d duplicate emission rows", removed)
	}
	return removed, nil
}
