package models

import "time"

// Application is one submitted job application. Fields are stored exactly as
// the applicant typed them. Status defaults to "pending"; nothing in the
// system transitions it yet.
type Application struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	Phone       string    `json:"phone" db:"phone"`
	Destination string    `json:"destination" db:"destination"`
	Position    string    `json:"position" db:"position"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
