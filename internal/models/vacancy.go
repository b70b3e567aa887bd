package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultEmploymentType = "full_time"

type Vacancy struct {
	ID                 int64     `db:"id" json:"id"`
	CompanyID          int64     `db:"company_id" json:"company_id"`
	Title              string    `db:"title" json:"title"`
	Description        *string   `db:"description" json:"description"`
	SalaryMin          *int64    `db:"salary_min" json:"salary_min"`
	SalaryMax          *int64    `db:"salary_max" json:"salary_max"`
	Location           *string   `db:"location" json:"location"`
	EmploymentType     string    `db:"employment_type" json:"employment_type"`
	ExperienceRequired int       `db:"experience_required" json:"experience_required"`
	IsActive           bool      `db:"is_active" json:"is_active"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

// VacancyListing is a vacancy flattened with the name and rating of its company.
type VacancyListing struct {
	ID                 int64               `db:"id" json:"id"`
	Title              *string             `db:"title" json:"title"`
	Description        *string             `db:"description" json:"description"`
	SalaryMin          *int64              `db:"salary_min" json:"salary_min"`
	SalaryMax          *int64              `db:"salary_max" json:"salary_max"`
	Location           *string             `db:"location" json:"location"`
	EmploymentType     *string             `db:"employment_type" json:"employment_type"`
	ExperienceRequired *int                `db:"experience_required" json:"experience_required"`
	IsActive           bool                `db:"is_active" json:"is_active"`
	CompanyName        *string             `db:"company_name" json:"company_name"`
	Rating             decimal.NullDecimal `db:"rating" json:"-"`
	CompanyRating      float64             `db:"-" json:"company_rating"`
}
