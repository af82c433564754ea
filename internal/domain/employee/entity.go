package employee

import "time"

type Employee struct {
	ID         string
	UserID     *string
	CompanyID  string
	FullName   string
	Email      *string
	Position   *string
	Department *string
	HireDate   *time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var StatusValues = []string{
	string(StatusActive),
	string(StatusInactive),
}
