package student

type RegisterStudentDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// PostulateDTO is the body of POST /student/postulations.
type PostulateDTO struct {
	StudentID string `json:"studentId"`
	ProjectID string `json:"projectId"`
}
