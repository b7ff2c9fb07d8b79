package project

// RegisterProjectDTO is the body of POST /project/register.
type RegisterProjectDTO struct {
	ID             string  `json:"id,omitempty"`
	CompanyID      string  `json:"companyId"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Abstract       string  `json:"abstract"`
	Goals          string  `json:"goals"`
	DeadlineMonths int     `json:"deadlineMonths"`
	Budget         float64 `json:"budget"`
}

// UpdateStatusDTO is the body of PUT /coordinator/projects/update-status.
type UpdateStatusDTO struct {
	ProjectID string `json:"projectId"`
	Status    string `json:"status"`
	Comments  string `json:"comments,omitempty"`
}

// ReviewDTO is the optional body of the per-operation review routes.
type ReviewDTO struct {
	Comments string `json:"comments,omitempty"`
}
