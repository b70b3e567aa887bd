package handlers

import (
	"net/http"
	"time"

	"github.com/vaughan-dsouza/jobboard/internal/middleware"
	"github.com/vaughan-dsouza/jobboard/internal/repository"
	"go.uber.org/zap"
)

type Options struct {
	JWTSecret    string
	MaxPageSize  int
	ExposeErrors bool
	// Now is the clock used for token and session expiry. Defaults to time.Now.
	Now func() time.Time
}

type Handler struct {
	Auth      *AuthHandler
	Vacancies *VacancyHandler
	Resumes   *ResumeHandler
	Companies *CompanyHandler

	API      *APIRouter
	Accounts *AuthRouter
}

func NewHandler(repos *repository.Repositories, opts Options, log *zap.Logger) *Handler {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.MaxPageSize <= 0 {
		opts.MaxPageSize = 100
	}

	authn := middleware.NewAuthenticator(opts.JWTSecret, log)
	d := dispatcher{log: log, exposeErrors: opts.ExposeErrors}

	h := &Handler{
		Auth:      NewAuthHandler(repos.User, repos.Session, authn, opts.JWTSecret, opts.Now, log),
		Vacancies: NewVacancyHandler(repos.Vacancy, authn, opts.MaxPageSize),
		Resumes:   NewResumeHandler(repos.Resume, authn),
		Companies: NewCompanyHandler(repos.Company, authn, opts.MaxPageSize),
	}

	h.API = &APIRouter{
		dispatcher: d,
		resources: map[Resource]routes{
			ResourceVacancies: {
				{ActionList, http.MethodGet}:    h.Vacancies.List,
				{ActionCreate, http.MethodPost}: h.Vacancies.Create,
			},
			ResourceResumes: {
				{ActionMy, http.MethodGet}:      h.Resumes.My,
				{ActionCreate, http.MethodPost}: h.Resumes.Create,
			},
			ResourceCompanies: {
				{ActionList, http.MethodGet}:    h.Companies.List,
				{ActionCreate, http.MethodPost}: h.Companies.Create,
			},
		},
	}

	h.Accounts = &AuthRouter{
		dispatcher: d,
		routes: routes{
			{ActionRegister, http.MethodPost}: h.Auth.Register,
			{ActionLogin, http.MethodPost}:    h.Auth.Login,
			{ActionMe, http.MethodGet}:        h.Auth.Me,
			{ActionLogout, http.MethodPost}:   h.Auth.Logout,
		},
	}

	return h
}
