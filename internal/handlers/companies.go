package handlers

import (
	"context"
	"net/http"

	"github.com/vaughan-dsouza/jobboard/internal/function"
	"github.com/vaughan-dsouza/jobboard/internal/middleware"
	"github.com/vaughan-dsouza/jobboard/internal/models"
	"github.com/vaughan-dsouza/jobboard/internal/repository"
)

type CompanyHandler struct {
	repo    repository.CompanyRepository
	authn   *middleware.Authenticator
	maxPage int
}

func NewCompanyHandler(repo repository.CompanyRepository, authn *middleware.Authenticator, maxPage int) *CompanyHandler {
	return &CompanyHandler{repo: repo, authn: authn, maxPage: maxPage}
}

type createCompanyReq struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
}

func (h *CompanyHandler) List(ctx context.Context, ev function.Event) (function.Response, error) {
	page, err := parsePage(ev, h.maxPage)
	if err != nil {
		return badRequest(err.Error())
	}

	companies, err := h.repo.List(ctx, page)
	if err != nil {
		return function.Response{}, err
	}

	return function.Success(http.StatusOK, companies), nil
}

// Create is admin only; employers may post vacancies but not companies.
func (h *CompanyHandler) Create(ctx context.Context, ev function.Event) (function.Response, error) {
	id, _ := h.authn.Identify(ev)
	if !id.HasRole(models.RoleAdmin) {
		return unauthorized()
	}

	var req createCompanyReq
	if err := decodeBody(ev, &req); err != nil {
		return badRequest(msgInvalidJSON)
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(validationMessage(err))
	}

	companyID, err := h.repo.Create(ctx, &models.Company{
		Name:        &req.Name,
		Description: req.Description,
		Website:     req.Website,
	})
	if err != nil {
		return function.Response{}, err
	}

	return created(companyID, "Company created")
}
