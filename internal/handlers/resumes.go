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

type ResumeHandler struct {
	repo  repository.ResumeRepository
	authn *middleware.Authenticator
}

func NewResumeHandler(repo repository.ResumeRepository, authn *middleware.Authenticator) *ResumeHandler {
	return &ResumeHandler{repo: repo, authn: authn}
}

type skillReq struct {
	Name  string `json:"name" validate:"required"`
	Level string `json:"level"`
}

type createResumeReq struct {
	Position        *string    `json:"position"`
	ExperienceYears *int       `json:"experience_years"`
	Education       *string    `json:"education"`
	DesiredSalary   *int64     `json:"desired_salary"`
	Summary         *string    `json:"summary"`
	Skills          []skillReq `json:"skills" validate:"dive"`
}

// My returns the caller's newest resume, or {"resume": null}.
func (h *ResumeHandler) My(ctx context.Context, ev function.Event) (function.Response, error) {
	id, status := h.authn.Identify(ev)
	if status != middleware.AuthOK {
		return unauthorized()
	}

	resume, err := h.repo.LatestByUser(ctx, id.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return function.Success(http.StatusOK, map[string]any{"resume": nil}), nil
	}
	if err != nil {
		return function.Response{}, err
	}

	return function.Success(http.StatusOK, map[string]any{"resume": resume}), nil
}

func (h *ResumeHandler) Create(ctx context.Context, ev function.Event) (function.Response, error) {
	id, status := h.authn.Identify(ev)
	if status != middleware.AuthOK {
		return unauthorized()
	}

	var req createResumeReq
	if err := decodeBody(ev, &req); err != nil {
		return badRequest(msgInvalidJSON)
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(validationMessage(err))
	}

	experience := 0
	if req.ExperienceYears != nil {
		experience = *req.ExperienceYears
	}

	resume := &models.Resume{
		UserID:          id.UserID,
		Position:        req.Position,
		ExperienceYears: &experience,
		Education:       req.Education,
		DesiredSalary:   req.DesiredSalary,
		Summary:         req.Summary,
		Skills:          make([]models.Skill, 0, len(req.Skills)),
	}
	for _, s := range req.Skills {
		level := s.Level
		if level == "" {
			level = models.DefaultProficiency
		}
		resume.Skills = append(resume.Skills, models.NewSkill(s.Name, level))
	}

	resumeID, err := h.repo.Create(ctx, resume)
	if err != nil {
		return function.Response{}, err
	}

	return created(resumeID, "Resume created")
}
