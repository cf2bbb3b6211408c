package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient full-text search on startup name and description,
// used by the enriched-search endpoint.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_startups_description_gin
		ON startups USING gin(to_tsvector('english', description))`)
	if err != nil {
		return fmt.Errorf("failed to create description GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_startups_name_gin
		ON startups USING gin(to_tsvector('simple', name))`)
	if err != nil {
		return fmt.Errorf("failed to create name GIN index: %w", err)
	}

	return nil
}
