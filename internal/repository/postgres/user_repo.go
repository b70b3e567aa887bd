package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vaughan-dsouza/jobboard/internal/models"
)

type userRepository struct {
	db *sqlx.DB
	t  tables
}

func NewUserRepository(db *sqlx.DB, schema string) *userRepository {
	return &userRepository{db: db, t: newTables(schema)}
}

func (r *userRepository) Create(ctx context.Context, u *models.User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (email, password_hash, full_name, phone, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, r.t.users)

	err := r.db.QueryRowxContext(ctx, query, u.Email, u.Password, u.FullName, u.Phone, string(u.Role)).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("create user: %w", translate(err))
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	query := fmt.Sprintf(`
		SELECT id, email, password_hash, full_name, phone, role, created_at
		FROM %s
		WHERE email = $1
	`, r.t.users)

	if err := r.db.GetContext(ctx, &u, query, email); err != nil {
		return nil, fmt.Errorf("get user by email: %w", translate(err))
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	query := fmt.Sprintf(`
		SELECT id, email, password_hash, full_name, phone, role, created_at
		FROM %s
		WHERE id = $1
	`, r.t.users)

	if err := r.db.GetContext(ctx, &u, query, id); err != nil {
		return nil, fmt.Errorf("get user by id: %w", translate(err))
	}
	return &u, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE email = $1)`, r.t.users)

	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}
