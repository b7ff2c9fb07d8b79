package application_test

import (
	"context"
	"slices"
	"sync"

	"gorm.io/gorm"

	"github.com/paulamunoz06/gestionproyectos/internal/domain/company"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/inbox"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/project"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/student"
	"github.com/paulamunoz06/gestionproyectos/internal/repository"
)

// storeRepos is one service's in-memory store for flows that cross services.
type storeRepos struct {
	mu        sync.Mutex
	projects  map[string]project.Project
	students  map[string]student.Student
	companies map[string]company.Company
	failures  []inbox.Failure
}

func newStore() *storeRepos {
	return &storeRepos{
		projects:  map[string]project.Project{},
		students:  map[string]student.Student{},
		companies: map[string]company.Company{},
	}
}

func (s *storeRepos) Repos() *repository.Repos {
	return &repository.Repos{
		Project: storeProjects{s},
		Student: storeStudents{s},
		Company: storeCompanies{s},
		Failure: storeFailures{s},
	}
}

func (s *storeRepos) project(id string) (project.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	return p, ok
}

func cloneProject(p project.Project) project.Project {
	p.PostulatedStudentIDs = slices.Clone(p.PostulatedStudentIDs)
	p.ApprovedStudentIDs = slices.Clone(p.ApprovedStudentIDs)
	return p
}

func cloneStudent(st student.Student) student.Student {
	st.PostulatedProjectIDs = slices.Clone(st.PostulatedProjectIDs)
	st.ApprovedProjectIDs = slices.Clone(st.ApprovedProjectIDs)
	return st
}

type storeProjects struct{ s *storeRepos }

func (r storeProjects) GetProjectByID(_ context.Context, id string) (project.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.projects[id]
	if !ok {
		return project.Project{}, gorm.ErrRecordNotFound
	}
	return cloneProject(p), nil
}

func (r storeProjects) GetProjectForUpdate(ctx context.Context, id string) (project.Project, error) {
	return r.GetProjectByID(ctx, id)
}

func (r storeProjects) ProjectExists(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.projects[id]
	return ok, nil
}

func (r storeProjects) CreateProject(_ context.Context, p *project.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.projects[p.ID] = cloneProject(*p)
	return nil
}

func (r storeProjects) UpdateProject(ctx context.Context, p *project.Project) error {
	return r.CreateProject(ctx, p)
}

func (r storeProjects) UpsertProject(_ context.Context, p *project.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	next := cloneProject(*p)
	if cur, ok := r.s.projects[p.ID]; ok {
		next.RegistrationDate = cur.RegistrationDate
		next.OwnerCompanyID = cur.OwnerCompanyID
	}
	r.s.projects[p.ID] = next
	return nil
}

func (r storeProjects) InsertProjectIfAbsent(_ context.Context, p *project.Project) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[p.ID]; ok {
		return false, nil
	}
	r.s.projects[p.ID] = cloneProject(*p)
	return true, nil
}

func (r storeProjects) list(keep func(project.Project) bool) []project.Project {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []project.Project{}
	for _, p := range r.s.projects {
		if keep(p) {
			out = append(out, cloneProject(p))
		}
	}
	return out
}

func (r storeProjects) ListProjects(context.Context) ([]project.Project, error) {
	return r.list(func(project.Project) bool { return true }), nil
}

func (r storeProjects) ListProjectsByState(_ context.Context, state project.State) ([]project.Project, error) {
	return r.list(func(p project.Project) bool { return p.State == state }), nil
}

func (r storeProjects) ListProjectsByCompany(_ context.Context, companyID string) ([]project.Project, error) {
	return r.list(func(p project.Project) bool { return p.OwnerCompanyID == companyID }), nil
}

func (r storeProjects) ListProjectsByIDs(_ context.Context, ids []string) ([]project.Project, error) {
	return r.list(func(p project.Project) bool { return slices.Contains(ids, p.ID) }), nil
}

func (r storeProjects) WithTx(*gorm.DB) repository.ProjectRepo { return r }

type storeStudents struct{ s *storeRepos }

func (r storeStudents) GetStudentByID(_ context.Context, id string) (student.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.students[id]
	if !ok {
		return student.Student{}, gorm.ErrRecordNotFound
	}
	return cloneStudent(st), nil
}

func (r storeStudents) GetStudentForUpdate(ctx context.Context, id string) (student.Student, error) {
	return r.GetStudentByID(ctx, id)
}

func (r storeStudents) StudentExists(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.students[id]
	return ok, nil
}

func (r storeStudents) CreateStudent(_ context.Context, st *student.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.students[st.ID] = cloneStudent(*st)
	return nil
}

func (r storeStudents) UpdateStudent(ctx context.Context, st *student.Student) error {
	return r.CreateStudent(ctx, st)
}

func (r storeStudents) UpsertStudent(_ context.Context, st *student.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	next := cloneStudent(*st)
	if cur, ok := r.s.students[st.ID]; ok {
		if next.Name == "" {
			next.Name = cur.Name
		}
		if next.Email == "" {
			next.Email = cur.Email
		}
	}
	r.s.students[st.ID] = next
	return nil
}

func (r storeStudents) WithTx(*gorm.DB) repository.StudentRepo { return r }

type storeCompanies struct{ s *storeRepos }

func (r storeCompanies) GetCompanyByID(_ context.Context, id string) (company.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.companies[id]
	if !ok {
		return company.Company{}, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r storeCompanies) CompanyExists(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.companies[id]
	return ok, nil
}

func (r storeCompanies) CompanyExistsByNIT(_ context.Context, nit string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.companies {
		if c.NIT == nit {
			return true, nil
		}
	}
	return false, nil
}

func (r storeCompanies) CreateCompany(_ context.Context, c *company.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.companies[c.ID] = *c
	return nil
}

func (r storeCompanies) WithTx(*gorm.DB) repository.CompanyRepo { return r }

type storeFailures struct{ s *storeRepos }

func (r storeFailures) CreateFailure(_ context.Context, f *inbox.Failure) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.failures = append(r.s.failures, *f)
	return nil
}

func (r storeFailures) ListFailures(context.Context, repository.FailureQueryParams) ([]inbox.Failure, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return slices.Clone(r.s.failures), nil
}

func (r storeFailures) DeleteOldFailures(context.Context, int) error { return nil }

func (r storeFailures) WithTx(*gorm.DB) repository.FailureRepo { return r }
