package suggestion

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/barbot/core/logger"
	"github.com/m3rciful/barbot/internal/errs"
)

// PostgresStore keeps suggestions in the suggestions table.
type PostgresStore struct {
	db *sqlx.DB
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore wraps an open connection pool.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const (
	insertSuggestionSQL = `
INSERT INTO suggestions (id, conversation_id, display_name, text, created_at)
VALUES (:id, :conversation_id, :display_name, :text, :created_at)`
	recentSuggestionsSQL = `
SELECT id, conversation_id, display_name, text, created_at
FROM suggestions
ORDER BY created_at DESC
LIMIT $1`
)

// Save inserts s.
func (p *PostgresStore) Save(ctx context.Context, s Suggestion) error {
	if _, err := p.db.NamedExecContext(ctx, insertSuggestionSQL, s); err != nil {
		logger.Error(ctx, logger.CompSuggestion, "save",
			slog.String("status", "fail"),
			logger.Err(err),
		)
		return errs.E(errs.Storage, "suggestion.save", err)
	}
	logger.Info(ctx, logger.CompSuggestion, "save",
		slog.String("status", "ok"),
		slog.String("id", s.ID.String()),
	)
	return nil
}

// Recent returns up to limit suggestions, newest first.
func (p *PostgresStore) Recent(ctx context.Context, limit int) ([]Suggestion, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []Suggestion
	if err := p.db.SelectContext(ctx, &out, recentSuggestionsSQL, limit); err != nil {
		return nil, errs.E(errs.Storage, "suggestion.recent", err)
	}
	return out, nil
}
