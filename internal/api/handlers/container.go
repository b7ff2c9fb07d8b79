package handlers

import (
	"github.com/paulamunoz06/gestionproyectos/internal/application"
)

type Handlers struct {
	Company     *CompanyHandler
	Coordinator *CoordinatorHandler
	Student     *StudentHandler
	Failure     *FailureHandler
	Feed        *ProjectFeed
}

// New builds the handlers over svc. feed may be nil for services that do not
// serve the live project feed.
func New(svc *application.Services, feed *ProjectFeed) *Handlers {
	return &Handlers{
		Company:     NewCompanyHandler(svc.Project, svc.CompanyRegistration, svc.ProjectRegistration),
		Coordinator: NewCoordinatorHandler(svc.StateMachine),
		Student:     NewStudentHandler(svc.Postulation, svc.StudentRegistration),
		Failure:     NewFailureHandler(svc.Failure),
		Feed:        feed,
	}
}

