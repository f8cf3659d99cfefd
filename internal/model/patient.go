package model

import "time"

type Patient struct {
	PatientID      int64     `db:"patient_id" json:"patient_id"`
	FirstName      string    `db:"first_name" json:"first_name"`
	LastName       string    `db:"last_name" json:"last_name"`
	Identification string    `db:"identification" json:"identification"`
	PhoneNumber    int64     `db:"phone_number" json:"phone_number"`
	Email          *string   `db:"email" json:"email,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type CreatePatientRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Identification string `json:"identification" binding:"required"`
	PhoneNumber    int64  `json:"phone_number" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
}

// UpdatePatientRequest deliberately has no identification field: appointments
// reference patients by identification, so it must stay immutable once set.
type UpdatePatientRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *int64  `json:"phone_number"`
	Email       *string `json:"email" binding:"omitempty,email"`
}
