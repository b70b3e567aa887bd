package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vaughan-dsouza/jobboard/internal/models"
)

type resumeRepository struct {
	db *sqlx.DB
	t  tables
}

func NewResumeRepository(db *sqlx.DB, schema string) *resumeRepository {
	return &resumeRepository{db: db, t: newTables(schema)}
}

func (r *resumeRepository) LatestByUser(ctx context.Context, userID int64) (*models.Resume, error) {
	var resume models.Resume
	query := fmt.Sprintf(`
		SELECT id, user_id, position, experience_years, education,
		       desired_salary, summary, created_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, r.t.resumes)

	if err := r.db.GetContext(ctx, &resume, query, userID); err != nil {
		return nil, fmt.Errorf("latest resume: %w", translate(err))
	}

	skillsQuery := fmt.Sprintf(`
		SELECT skill_name, proficiency_level
		FROM %s
		WHERE resume_id = $1
	`, r.t.skills)

	resume.Skills = []models.Skill{}
	if err := r.db.SelectContext(ctx, &resume.Skills, skillsQuery, resume.ID); err != nil {
		return nil, fmt.Errorf("resume skills: %w", err)
	}

	return &resume, nil
}

// Create writes the resume row and every skill in one transaction, so a
// failed skill insert leaves nothing behind.
func (r *resumeRepository) Create(ctx context.Context, resume *models.Resume) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin resume tx: %w", err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`
		INSERT INTO %s
		(user_id, position, experience_years, education, desired_salary, summary)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, r.t.resumes)

	var id int64
	err = tx.QueryRowxContext(ctx, query,
		resume.UserID, resume.Position, resume.ExperienceYears,
		resume.Education, resume.DesiredSalary, resume.Summary,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create resume: %w", translate(err))
	}

	skillQuery := fmt.Sprintf(`
		INSERT INTO %s (resume_id, skill_name, proficiency_level)
		VALUES ($1, $2, $3)
	`, r.t.skills)

	for _, s := range resume.Skills {
		if _, err := tx.ExecContext(ctx, skillQuery, id, s.Name, s.Level); err != nil {
			return 0, fmt.Errorf("create skill %q: %w", s.Name, translate(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit resume: %w", err)
	}
	return id, nil
}
