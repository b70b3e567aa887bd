package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vaughan-dsouza/jobboard/internal/models"
	"github.com/vaughan-dsouza/jobboard/internal/repository"
)

type companyRepository struct {
	db *sqlx.DB
	t  tables
}

func NewCompanyRepository(db *sqlx.DB, schema string) *companyRepository {
	return &companyRepository{db: db, t: newTables(schema)}
}

func (r *companyRepository) List(ctx context.Context, page repository.Page) ([]models.Company, error) {
	query := fmt.Sprintf(`
		SELECT c.id, c.name, c.description, c.rating, c.reviews_count, c.website,
		       COUNT(v.id) AS vacancies_count
		FROM %s c
		LEFT JOIN %s v ON c.id = v.company_id AND v.is_active = TRUE
		GROUP BY c.id, c.name, c.description, c.rating, c.reviews_count, c.website
		ORDER BY c.rating DESC
		LIMIT $1 OFFSET $2
	`, r.t.companies, r.t.vacancies)

	companies := []models.Company{}
	if err := r.db.SelectContext(ctx, &companies, query, page.Limit, page.Offset); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	for i := range companies {
		companies[i].RatingValue = models.RatingFloat(companies[i].Rating)
	}
	return companies, nil
}

func (r *companyRepository) Create(ctx context.Context, c *models.Company) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, description, website)
		VALUES ($1, $2, $3)
		RETURNING id
	`, r.t.companies)

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, c.Name, c.Description, c.Website).Scan(&id); err != nil {
		return 0, fmt.Errorf("create company: %w", translate(err))
	}
	return id, nil
}
