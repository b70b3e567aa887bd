package handlers

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vaughan-dsouza/jobboard/internal/models"
	"github.com/vaughan-dsouza/jobboard/internal/repository"
)

// memStore is an in-memory stand-in for the Postgres repositories. Every
// insert advances the clock by a second so creation order is deterministic.
type memStore struct {
	mu        sync.Mutex
	nextID    int64
	clock     time.Time
	users     map[int64]*models.User
	sessions  map[string]models.Session
	vacancies []models.Vacancy
	companies []models.Company
	resumes   []models.Resume

	// failWith, when set, is returned by every call.
	failWith error
}

func newMemStore() *memStore {
	return &memStore{
		clock:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		users:    map[int64]*models.User{},
		sessions: map[string]models.Session{},
	}
}

func (s *memStore) repositories() *repository.Repositories {
	return &repository.Repositories{
		User:    memUsers{s},
		Session: memSessions{s},
		Vacancy: memVacancies{s},
		Resume:  memResumes{s},
		Company: memCompanies{s},
	}
}

func (s *memStore) tick() (int64, time.Time) {
	s.nextID++
	s.clock = s.clock.Add(time.Second)
	return s.nextID, s.clock
}

func paginate[T any](items []T, page repository.Page) []T {
	if page.Offset >= len(items) {
		return []T{}
	}
	end := page.Offset + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[page.Offset:end]
}

// ---------------------- users ----------------------

type memUsers struct{ s *memStore }

func (m memUsers) Create(ctx context.Context, u *models.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return m.s.failWith
	}
	for _, existing := range m.s.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID, u.CreatedAt = m.s.tick()
	cp := *u
	m.s.users[u.ID] = &cp
	return nil
}

func (m memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	for _, u := range m.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m memUsers) GetByID(ctx context.Context, id int64) (*models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	u, ok := m.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m memUsers) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if err == repository.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

// ---------------------- sessions ----------------------

type memSessions struct{ s *memStore }

func (m memSessions) Create(ctx context.Context, sess *models.Session) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return m.s.failWith
	}
	m.s.sessions[sess.Token] = *sess
	return nil
}

func (m memSessions) DeleteByToken(ctx context.Context, token string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return m.s.failWith
	}
	delete(m.s.sessions, token)
	return nil
}

// ---------------------- vacancies ----------------------

type memVacancies struct{ s *memStore }

func (m memVacancies) ListActive(ctx context.Context, page repository.Page) ([]models.VacancyListing, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}

	active := []models.Vacancy{}
	for _, v := range m.s.vacancies {
		if v.IsActive {
			active = append(active, v)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].CreatedAt.After(active[j].CreatedAt) })

	out := []models.VacancyListing{}
	for _, v := range paginate(active, page) {
		c := m.s.company(v.CompanyID)
		et, exp := v.EmploymentType, v.ExperienceRequired
		out = append(out, models.VacancyListing{
			ID:                 v.ID,
			Title:              &v.Title,
			Description:        v.Description,
			SalaryMin:          v.SalaryMin,
			SalaryMax:          v.SalaryMax,
			Location:           v.Location,
			EmploymentType:     &et,
			ExperienceRequired: &exp,
			IsActive:           v.IsActive,
			CompanyName:        c.Name,
			Rating:             c.Rating,
			CompanyRating:      models.RatingFloat(c.Rating),
		})
	}
	return out, nil
}

func (m memVacancies) Create(ctx context.Context, v *models.Vacancy) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return 0, m.s.failWith
	}
	if m.s.company(v.CompanyID) == nil {
		return 0, repository.ErrInvalidReference
	}
	cp := *v
	cp.ID, cp.CreatedAt = m.s.tick()
	cp.IsActive = true
	m.s.vacancies = append(m.s.vacancies, cp)
	return cp.ID, nil
}

// ---------------------- companies ----------------------

func (s *memStore) company(id int64) *models.Company {
	for i := range s.companies {
		if s.companies[i].ID == id {
			return &s.companies[i]
		}
	}
	return nil
}

type memCompanies struct{ s *memStore }

func (m memCompanies) List(ctx context.Context, page repository.Page) ([]models.Company, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}

	out := make([]models.Company, 0, len(m.s.companies))
	for _, c := range m.s.companies {
		c.VacanciesCount = 0
		for _, v := range m.s.vacancies {
			if v.CompanyID == c.ID && v.IsActive {
				c.VacanciesCount++
			}
		}
		c.RatingValue = models.RatingFloat(c.Rating)
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RatingValue > out[j].RatingValue })
	return paginate(out, page), nil
}

func (m memCompanies) Create(ctx context.Context, c *models.Company) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return 0, m.s.failWith
	}
	cp := *c
	cp.ID, _ = m.s.tick()
	m.s.companies = append(m.s.companies, cp)
	return cp.ID, nil
}

// ---------------------- resumes ----------------------

type memResumes struct{ s *memStore }

func (m memResumes) LatestByUser(ctx context.Context, userID int64) (*models.Resume, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}

	var latest *models.Resume
	for i := range m.s.resumes {
		r := &m.s.resumes[i]
		if r.UserID == userID && (latest == nil || r.CreatedAt.After(latest.CreatedAt)) {
			latest = r
		}
	}
	if latest == nil {
		return nil, repository.ErrNotFound
	}
	cp := *latest
	cp.Skills = append([]models.Skill{}, latest.Skills...)
	return &cp, nil
}

func (m memResumes) Create(ctx context.Context, r *models.Resume) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failWith != nil {
		return 0, m.s.failWith
	}
	cp := *r
	cp.ID, cp.CreatedAt = m.s.tick()
	cp.Skills = append([]models.Skill{}, r.Skills...)
	m.s.resumes = append(m.s.resumes, cp)
	return cp.ID, nil
}
