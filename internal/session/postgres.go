package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/barbot/core/logger"
	"github.com/m3rciful/barbot/internal/errs"
)

// PostgresStore keeps one row per conversation in the sessions table.
type PostgresStore struct {
	db *sqlx.DB
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore wraps an open connection pool.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type sessionRow struct {
	ConversationID int64     `db:"conversation_id"`
	Tag            string    `db:"tag"`
	Payload        string    `db:"payload"`
	UpdatedAt      time.Time `db:"updated_at"`
}

const (
	selectSessionSQL = `SELECT conversation_id, tag, payload, updated_at FROM sessions WHERE conversation_id = $1`
	upsertSessionSQL = `
INSERT INTO sessions (conversation_id, tag, payload, updated_at)
VALUES (:conversation_id, :tag, :payload, :updated_at)
ON CONFLICT (conversation_id) DO UPDATE
SET tag = EXCLUDED.tag, payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
)

// Get loads the state of id. A missing row is Idle.
func (p *PostgresStore) Get(ctx context.Context, id int64) (State, error) {
	var row sessionRow
	err := p.db.GetContext(ctx, &row, selectSessionSQL, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Idle{}, nil
	}
	if err != nil {
		logger.Error(ctx, logger.CompSession, "get",
			slog.String("status", "fail"),
			slog.String("backend", "postgres"),
			logger.Err(err),
		)
		return nil, errs.E(errs.Storage, "session.get", err)
	}
	return Unwrap(Envelope{Tag: Tag(row.Tag), Payload: json.RawMessage(row.Payload)})
}

// Set upserts the state of id.
func (p *PostgresStore) Set(ctx context.Context, id int64, st State) error {
	env, err := Wrap(st)
	if err != nil {
		return err
	}
	payload := string(env.Payload)
	if payload == "" {
		payload = "{}"
	}
	row := sessionRow{
		ConversationID: id,
		Tag:            string(env.Tag),
		Payload:        payload,
		UpdatedAt:      time.Now().UTC(),
	}
	if _, err := p.db.NamedExecContext(ctx, upsertSessionSQL, row); err != nil {
		logger.Error(ctx, logger.CompSession, "set",
			slog.String("status", "fail"),
			slog.String("backend", "postgres"),
			slog.String("state", string(env.Tag)),
			logger.Err(err),
		)
		return errs.E(errs.Storage, "session.set", err)
	}
	return nil
}
