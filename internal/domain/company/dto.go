package company

type RegisterCompanyDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	NIT             string `json:"nit"`
	Sector          string `json:"sector"`
	ContactName     string `json:"contactName"`
	ContactPosition string `json:"contactPosition"`
}
