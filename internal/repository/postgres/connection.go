package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/vaughan-dsouza/jobboard/internal/repository"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// tables holds the schema-qualified, quoted names of every table. All of them
// live in the same schema, user_sessions included.
type tables struct {
	users     string
	sessions  string
	vacancies string
	resumes   string
	skills    string
	companies string
}

func newTables(schema string) tables {
	q := func(name string) string {
		return pgx.Identifier{schema, name}.Sanitize()
	}
	return tables{
		users:     q("users"),
		sessions:  q("user_sessions"),
		vacancies: q("vacancies"),
		resumes:   q("resumes"),
		skills:    q("skills"),
		companies: q("companies"),
	}
}

func NewRepositories(db *sqlx.DB, schema string) *repository.Repositories {
	return &repository.Repositories{
		User:    NewUserRepository(db, schema),
		Session: NewSessionRepository(db, schema),
		Vacancy: NewVacancyRepository(db, schema),
		Resume:  NewResumeRepository(db, schema),
		Company: NewCompanyRepository(db, schema),
	}
}

// translate maps driver errors onto the repository sentinels. Anything it
// does not recognise is returned unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s", repository.ErrDuplicate, pgErr.ConstraintName)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %s", repository.ErrInvalidReference, pgErr.ConstraintName)
		}
	}
	return err
}
