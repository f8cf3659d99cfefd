package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/clinicbase/clinic-api/internal/repository"
)

type doctorRepository struct {
	baseRepository
}

type patientRepository struct {
	baseRepository
}

type appointmentRepository struct {
	baseRepository
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{baseRepository{conn: db, db: db}}
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{baseRepository{conn: db, db: db}}
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{baseRepository{conn: db, db: db}}
}
