package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vaughan-dsouza/jobboard/internal/models"
	"github.com/vaughan-dsouza/jobboard/internal/repository"
)

type vacancyRepository struct {
	db *sqlx.DB
	t  tables
}

func NewVacancyRepository(db *sqlx.DB, schema string) *vacancyRepository {
	return &vacancyRepository{db: db, t: newTables(schema)}
}

func (r *vacancyRepository) ListActive(ctx context.Context, page repository.Page) ([]models.VacancyListing, error) {
	query := fmt.Sprintf(`
		SELECT v.id, v.title, v.description, v.salary_min, v.salary_max,
		       v.location, v.employment_type, v.experience_required, v.is_active,
		       c.name AS company_name, c.rating
		FROM %s v
		JOIN %s c ON v.company_id = c.id
		WHERE v.is_active = TRUE
		ORDER BY v.created_at DESC
		LIMIT $1 OFFSET $2
	`, r.t.vacancies, r.t.companies)

	vacancies := []models.VacancyListing{}
	if err := r.db.SelectContext(ctx, &vacancies, query, page.Limit, page.Offset); err != nil {
		return nil, fmt.Errorf("list vacancies: %w", err)
	}

	for i := range vacancies {
		vacancies[i].CompanyRating = models.RatingFloat(vacancies[i].Rating)
	}
	return vacancies, nil
}

func (r *vacancyRepository) Create(ctx context.Context, v *models.Vacancy) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s
		(company_id, title, description, salary_min, salary_max, location, employment_type, experience_required)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, r.t.vacancies)

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		v.CompanyID, v.Title, v.Description, v.SalaryMin, v.SalaryMax,
		v.Location, v.EmploymentType, v.ExperienceRequired,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create vacancy: %w", translate(err))
	}
	return id, nil
}
