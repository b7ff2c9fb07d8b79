package project

import (
	"slices"
	"time"

	"gorm.io/datatypes"
)

const (
	MinDeadlineMonths = 1
	MaxDeadlineMonths = 36
	MaxBudget         = 1_000_000_000

	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxAbstractLength    = 1000
	MaxGoalsLength       = 1000
)

// Project is the replicated capstone project. The coordinator service holds
// the canonical copy; company and student services hold replicas.
type Project struct {
	ID               string    `gorm:"primaryKey;column:id;size:64" json:"id"`
	Title            string    `gorm:"size:200;not null" json:"title"`
	Description      string    `gorm:"type:text" json:"description"`
	Abstract         string    `gorm:"type:text" json:"abstract"`
	Goals            string    `gorm:"type:text" json:"goals"`
	DeadlineMonths   int       `gorm:"column:deadline_months;not null" json:"deadlineMonths"`
	Budget           float64   `gorm:"type:numeric(12,2);default:0" json:"budget"`
	RegistrationDate time.Time `gorm:"column:registration_date;not null" json:"registrationDate"`
	State            State     `gorm:"size:20;not null;index" json:"state"`
	OwnerCompanyID   string    `gorm:"column:owner_company_id;size:64;not null;index" json:"ownerCompanyId"`
	CoordinatorID    *string   `gorm:"column:coordinator_id;size:64" json:"coordinatorId"`
	Comments         string    `gorm:"type:text" json:"comments,omitempty"`

	PostulatedStudentIDs datatypes.JSONSlice[string] `gorm:"column:postulated_student_ids" json:"postulatedStudentIds"`
	ApprovedStudentIDs   datatypes.JSONSlice[string] `gorm:"column:approved_student_ids" json:"approvedStudentIds"`

	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Project) TableName() string {
	return "projects"
}

// AcceptsPostulations reports whether students may currently postulate.
func (p *Project) AcceptsPostulations() bool {
	return p.State == StateAccepted
}

func (p *Project) IsPostulated(studentID string) bool {
	return slices.Contains(p.PostulatedStudentIDs, studentID)
}

func (p *Project) IsApproved(studentID string) bool {
	return slices.Contains(p.ApprovedStudentIDs, studentID)
}

// AddPostulation records studentID as postulated. It is a no-op if the
// student is already present.
func (p *Project) AddPostulation(studentID string) {
	p.PostulatedStudentIDs = AddID(p.PostulatedStudentIDs, studentID)
}

// SetStudentMembership places studentID in exactly the sets indicated,
// removing it from the others.
func (p *Project) SetStudentMembership(studentID string, postulated, approved bool) {
	p.PostulatedStudentIDs = RemoveID(p.PostulatedStudentIDs, studentID)
	p.ApprovedStudentIDs = RemoveID(p.ApprovedStudentIDs, studentID)
	if approved {
		p.ApprovedStudentIDs = AddID(p.ApprovedStudentIDs, studentID)
	} else if postulated {
		p.PostulatedStudentIDs = AddID(p.PostulatedStudentIDs, studentID)
	}
}

// AddID appends id unless already present.
func AddID(ids []string, id string) []string {
	if slices.Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}

func RemoveID(ids []string, id string) []string {
	return slices.DeleteFunc(slices.Clone(ids), func(v string) bool { return v == id })
}
