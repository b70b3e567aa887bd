package models

import "time"

const DefaultProficiency = "intermediate"

type Resume struct {
	ID              int64     `db:"id" json:"id"`
	UserID          int64     `db:"user_id" json:"-"`
	Position        *string   `db:"position" json:"position"`
	ExperienceYears *int      `db:"experience_years" json:"experience_years"`
	Education       *string   `db:"education" json:"education"`
	DesiredSalary   *int64    `db:"desired_salary" json:"desired_salary"`
	Summary         *string   `db:"summary" json:"summary"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	Skills          []Skill   `db:"-" json:"skills"`
}

// Skill columns are nullable; rows written by older clients may carry NULLs.
type Skill struct {
	Name  *string `db:"skill_name" json:"name"`
	Level *string `db:"proficiency_level" json:"level"`
}

func NewSkill(name, level string) Skill {
	return Skill{Name: &name, Level: &level}
}
