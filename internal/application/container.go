package application

import (
	"go.uber.org/zap"

	"github.com/paulamunoz06/gestionproyectos/internal/bus"
	"github.com/paulamunoz06/gestionproyectos/internal/metrics"
	"github.com/paulamunoz06/gestionproyectos/internal/repository"
)

// Deps are the collaborators every service is built from.
type Deps struct {
	Repos     *repository.Repos
	Publisher bus.Publisher
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
	// Listeners are told about committed lifecycle changes.
	Listeners []ProjectListener
	// Failure is built by New when nil. Callers that need it before the bus
	// exists construct it first.
	Failure *FailureService
}

// Services holds every application service. A process only wires the routes
// and consumers of its own service, so some fields go unused per process.
type Services struct {
	StateMachine        *StateMachineService
	Project             *ProjectService
	Postulation         *PostulationService
	ProjectRegistration *ProjectRegistration
	CompanyRegistration *CompanyRegistration
	StudentRegistration *StudentRegistration
	Replica             *ReplicaConsumer
	Failure             *FailureService
}

func New(d Deps) *Services {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	failure := d.Failure
	if failure == nil {
		failure = NewFailureService(d.Repos, log.Named("failures"))
	}
	return &Services{
		StateMachine:        NewStateMachineService(d.Repos, d.Publisher, d.Metrics, log.Named("state"), d.Listeners...),
		Project:             NewProjectService(d.Repos),
		Postulation:         NewPostulationService(d.Repos, d.Publisher, d.Metrics, log.Named("postulation")),
		ProjectRegistration: NewProjectRegistration(d.Repos, d.Publisher, log.Named("registration")),
		CompanyRegistration: NewCompanyRegistration(d.Repos, log.Named("registration")),
		StudentRegistration: NewStudentRegistration(d.Repos, log.Named("registration")),
		Replica:             NewReplicaConsumer(d.Repos, log.Named("replica")),
		Failure:             failure,
	}
}
