package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/vaughan-dsouza/jobboard/internal/function"
	"github.com/vaughan-dsouza/jobboard/internal/middleware"
	"github.com/vaughan-dsouza/jobboard/internal/models"
	"github.com/vaughan-dsouza/jobboard/internal/repository"
)

type VacancyHandler struct {
	repo    repository.VacancyRepository
	authn   *middleware.Authenticator
	maxPage int
}

func NewVacancyHandler(repo repository.VacancyRepository, authn *middleware.Authenticator, maxPage int) *VacancyHandler {
	return &VacancyHandler{repo: repo, authn: authn, maxPage: maxPage}
}

type createVacancyReq struct {
	CompanyID          int64   `json:"company_id" validate:"required"`
	Title              string  `json:"title" validate:"required"`
	Description        *string `json:"description"`
	SalaryMin          *int64  `json:"salary_min"`
	SalaryMax          *int64  `json:"salary_max"`
	Location           *string `json:"location"`
	EmploymentType     *string `json:"employment_type"`
	ExperienceRequired *int    `json:"experience_required"`
}

// ---------------------- LIST ----------------------

func (h *VacancyHandler) List(ctx context.Context, ev function.Event) (function.Response, error) {
	page, err := parsePage(ev, h.maxPage)
	if err != nil {
		return badRequest(err.Error())
	}

	vacancies, err := h.repo.ListActive(ctx, page)
	if err != nil {
		return function.Response{}, err
	}

	return function.Success(http.StatusOK, vacancies), nil
}

// ---------------------- CREATE ----------------------

func (h *VacancyHandler) Create(ctx context.Context, ev function.Event) (function.Response, error) {
	id, _ := h.authn.Identify(ev)
	if !id.HasRole(models.RoleAdmin, models.RoleEmployer) {
		return unauthorized()
	}

	var req createVacancyReq
	if err := decodeBody(ev, &req); err != nil {
		return badRequest(msgInvalidJSON)
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(validationMessage(err))
	}

	v := &models.Vacancy{
		CompanyID:      req.CompanyID,
		Title:          req.Title,
		Description:    req.Description,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Location:       req.Location,
		EmploymentType: models.DefaultEmploymentType,
	}
	if req.EmploymentType != nil {
		v.EmploymentType = *req.EmploymentType
	}
	if req.ExperienceRequired != nil {
		v.ExperienceRequired = *req.ExperienceRequired
	}

	vacancyID, err := h.repo.Create(ctx, v)
	if errors.Is(err, repository.ErrInvalidReference) {
		return badRequest("Company not found")
	}
	if err != nil {
		return function.Response{}, err
	}

	return created(vacancyID, "Vacancy created")
}
