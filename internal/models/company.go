package models

import "github.com/shopspring/decimal"

type Company struct {
	ID             int64               `db:"id" json:"id"`
	Name           *string             `db:"name" json:"name"`
	Description    *string             `db:"description" json:"description"`
	Rating         decimal.NullDecimal `db:"rating" json:"-"`
	RatingValue    float64             `db:"-" json:"rating"`
	ReviewsCount   *int64              `db:"reviews_count" json:"reviews_count"`
	Website        *string             `db:"website" json:"website"`
	VacanciesCount int64               `db:"vacancies_count" json:"vacancies_count"`
}

// RatingFloat converts a nullable NUMERIC rating to a float, treating NULL as 0.
func RatingFloat(d decimal.NullDecimal) float64 {
	if !d.Valid {
		return 0
	}
	return d.Decimal.InexactFloat64()
}
