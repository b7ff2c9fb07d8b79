package user

// Identity holds the fields every role-specific record shares. Company,
// student and coordinator records embed it instead of extending a base type.
type Identity struct {
	ID    string `gorm:"primaryKey;column:id;size:64" json:"id"`
	Name  string `gorm:"size:150" json:"name"`
	Email string `gorm:"size:150" json:"email"`
	Phone string `gorm:"size:30" json:"phone,omitempty"`
}
