package model

import "time"

type Appointment struct {
	AppointmentID         int64     `db:"appointment_id" json:"appointment_id"`
	Schedule              string    `db:"schedule" json:"schedule"`
	Specialty             string    `db:"specialty" json:"specialty"`
	DoctorID              int64     `db:"doctor_id" json:"doctor_id"`
	PatientIdentification string    `db:"patient_identification" json:"patient_identification"`
	CreatedAt             time.Time `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time `db:"updated_at" json:"updated_at"`
}

// AppointmentView is the caller-facing representation: the doctor reference is
// denormalized into the doctor's display name and office, the raw doctor id is
// not exposed.
type AppointmentView struct {
	PatientIdentification string `json:"patient_identification"`
	Specialty             string `json:"specialty"`
	Doctor                string `json:"doctor"`
	Office                string `json:"office"`
	Schedule              string `json:"schedule"`
}

// NewAppointmentView inlines the referenced doctor into the appointment.
func NewAppointmentView(apt *Appointment, doctor *Doctor) *AppointmentView {
	return &AppointmentView{
		PatientIdentification: apt.PatientIdentification,
		Specialty:             apt.Specialty,
		Doctor:                doctor.FullName(),
		Office:                doctor.Office,
		Schedule:              apt.Schedule,
	}
}

type CreateAppointmentRequest struct {
	Schedule              string `json:"schedule" binding:"required"`
	Specialty             string `json:"specialty" binding:"required,oneof=Radiología Ortopedia Cardiología Pediatría Dermatología Neurología"`
	DoctorID              int64  `json:"doctor_id" binding:"required"`
	PatientIdentification string `json:"patient_identification" binding:"required"`
}

type UpdateAppointmentRequest struct {
	Schedule              *string `json:"schedule"`
	Specialty             *string `json:"specialty" binding:"omitempty,oneof=Radiología Ortopedia Cardiología Pediatría Dermatología Neurología"`
	DoctorID              *int64  `json:"doctor_id"`
	PatientIdentification *string `json:"patient_identification"`
}
