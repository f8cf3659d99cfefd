package repository

import (
	"context"

	"github.com/clinicbase/clinic-api/internal/model"
)

// All repository interfaces in one file. Each method issues exactly one
// statement against the store; WithTx hands the callback a repository bound to
// a single transaction so read-before-write sequences are atomic.
type (
	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error)
		List(ctx context.Context) ([]*model.Doctor, error)
		Get(ctx context.Context, id int64) (*model.Doctor, error)
		Update(ctx context.Context, doctor *model.Doctor) error
		Delete(ctx context.Context, id int64) error
		WithTx(ctx context.Context, fn func(DoctorRepository) error) error
	}

	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) (*model.Patient, error)
		List(ctx context.Context) ([]*model.Patient, error)
		Get(ctx context.Context, id int64) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
		Delete(ctx context.Context, id int64) error
		WithTx(ctx context.Context, fn func(PatientRepository) error) error
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error)
		List(ctx context.Context) ([]*model.Appointment, error)
		Get(ctx context.Context, id int64) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		Delete(ctx context.Context, id int64) error
		WithTx(ctx context.Context, fn func(AppointmentRepository) error) error
	}
)
