package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Project ProjectRepo
	Student StudentRepo
	Company CompanyRepo
	Failure FailureRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Project: NewProjectRepo(db),
		Student: NewStudentRepo(db),
		Company: NewCompanyRepo(db),
		Failure: NewFailureRepo(db),
		db:      db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Project: r.Project.WithTx(tx),
		Student: r.Student.WithTx(tx),
		Company: r.Company.WithTx(tx),
		Failure: r.Failure.WithTx(tx),
		db:      tx,
	}
}

// ExecTx runs fn inside one database transaction. Repos built without a
// database (as in unit tests over mocks) run fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
