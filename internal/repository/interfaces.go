package repository

import (
	"context"
	"errors"

	"github.com/vaughan-dsouza/jobboard/internal/models"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicate        = errors.New("duplicate")
	ErrInvalidReference = errors.New("invalid reference")
)

// Page bounds a list query.
type Page struct {
	Limit  int
	Offset int
}

type UserRepository interface {
	// Create inserts u and fills in its ID and CreatedAt.
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type SessionRepository interface {
	Create(ctx context.Context, s *models.Session) error
	DeleteByToken(ctx context.Context, token string) error
}

type VacancyRepository interface {
	ListActive(ctx context.Context, page Page) ([]models.VacancyListing, error)
	Create(ctx context.Context, v *models.Vacancy) (int64, error)
}

type ResumeRepository interface {
	// LatestByUser returns the newest resume of userID with its skills.
	LatestByUser(ctx context.Context, userID int64) (*models.Resume, error)
	// Create stores the resume and its skills atomically.
	Create(ctx context.Context, r *models.Resume) (int64, error)
}

type CompanyRepository interface {
	List(ctx context.Context, page Page) ([]models.Company, error)
	Create(ctx context.Context, c *models.Company) (int64, error)
}

type Repositories struct {
	User    UserRepository
	Session SessionRepository
	Vacancy VacancyRepository
	Resume  ResumeRepository
	Company CompanyRepository
}
