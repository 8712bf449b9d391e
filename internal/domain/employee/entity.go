package employee

import "time"

type Employee struct {
	ID         string
	FullName   string
	Email      string
	Position   string
	HourlyRate float64
	HireDate   time.Time
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
