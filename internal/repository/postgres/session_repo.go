package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vaughan-dsouza/jobboard/internal/models"
)

type sessionRepository struct {
	db *sqlx.DB
	t  tables
}

func NewSessionRepository(db *sqlx.DB, schema string) *sessionRepository {
	return &sessionRepository{db: db, t: newTables(schema)}
}

func (r *sessionRepository) Create(ctx context.Context, s *models.Session) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, session_token, expires_at)
		VALUES ($1, $2, $3)
	`, r.t.sessions)

	if _, err := r.db.ExecContext(ctx, query, s.UserID, s.Token, s.ExpiresAt); err != nil {
		return fmt.Errorf("create session: %w", translate(err))
	}
	return nil
}

func (r *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE session_token = $1`, r.t.sessions)

	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
