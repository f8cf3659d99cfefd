package model

import "time"

// Specialties accepted for doctors and appointments.
const (
	SpecialtyRadiologia   = "Radiología"
	SpecialtyOrtopedia    = "Ortopedia"
	SpecialtyCardiologia  = "Cardiología"
	SpecialtyPediatria    = "Pediatría"
	SpecialtyDermatologia = "Dermatología"
	SpecialtyNeurologia   = "Neurología"
)

type Doctor struct {
	DoctorID  int64     `db:"doctor_id" json:"doctor_id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Specialty string    `db:"specialty" json:"specialty"`
	Office    string    `db:"office" json:"office"`
	Email     *string   `db:"email" json:"email,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// FullName is the display form used when an appointment inlines its doctor.
func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}

type CreateDoctorRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Specialty string `json:"specialty" binding:"required,oneof=Radiología Ortopedia Cardiología Pediatría Dermatología Neurología"`
	Office    string `json:"office" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

// UpdateDoctorRequest carries a sparse field set; nil fields keep the stored
// value. The doctor id is never part of an update.
type UpdateDoctorRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Specialty *string `json:"specialty" binding:"omitempty,oneof=Radiología Ortopedia Cardiología Pediatría Dermatología Neurología"`
	Office    *string `json:"office"`
	Email     *string `json:"email" binding:"omitempty,email"`
}
