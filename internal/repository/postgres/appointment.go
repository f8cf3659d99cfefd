package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"github.com/clinicbase/clinic-api/internal/apperror"
	"github.com/clinicbase/clinic-api/internal/model"
	"github.com/clinicbase/clinic-api/internal/repository"
)

const appointmentEntity = "appointments"

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error) {
	now := time.Now()
	query, args, err := dialect.Insert("appointments").Rows(goqu.Record{
		"schedule":               appointment.Schedule,
		"specialty":              appointment.Specialty,
		"doctor_id":              appointment.DoctorID,
		"patient_identification": appointment.PatientIdentification,
		"created_at":             now,
		"updated_at":             now,
	}).Returning(goqu.Star()).Prepared(true).ToSQL()
	if err != nil {
		return nil, apperror.Wrap(appointmentEntity, apperror.KindCreation, "failed to create appointment", err)
	}

	// Foreign keys to doctors and patients are enforced here by the store,
	// not revalidated beforehand.
	var created model.Appointment
	if err := sqlx.GetContext(ctx, r.db, &created, query, args...); err != nil {
		return nil, apperror.Wrap(appointmentEntity, apperror.KindCreation, "failed to create appointment", err)
	}
	return &created, nil
}

func (r *appointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	query, args, err := dialect.From("appointments").Order(goqu.I("appointment_id").Asc()).Prepared(true).ToSQL()
	if err != nil {
		return nil, apperror.Wrap(appointmentEntity, apperror.KindGetAll, "failed getting all appointments", err)
	}

	var appointments []*model.Appointment
	if err := sqlx.SelectContext(ctx, r.db, &appointments, query, args...); err != nil {
		return nil, apperror.Wrap(appointmentEntity, apperror.KindGetAll, "failed getting all appointments", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	query, args, err := dialect.From("appointments").Where(goqu.Ex{"appointment_id": id}).Prepared(true).ToSQL()
	if err != nil {
		return nil, apperror.Wrap(appointmentEntity, apperror.KindNotFound, "failed to get appointment", err)
	}

	var appointment model.Appointment
	if err := sqlx.GetContext(ctx, r.db, &appointment, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.New(appointmentEntity, apperror.KindNotFound, "record not found")
		}
		return nil, apperror.Wrap(appointmentEntity, apperror.KindNotFound, "failed to get appointment", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	query, args, err := dialect.Update("appointments").Set(goqu.Record{
		"schedule":               appointment.Schedule,
		"specialty":              appointment.Specialty,
		"doctor_id":              appointment.DoctorID,
		"patient_identification": appointment.PatientIdentification,
		"updated_at":             time.Now(),
	}).Where(goqu.Ex{"appointment_id": appointment.AppointmentID}).Prepared(true).ToSQL()
	if err != nil {
		return apperror.Wrap(appointmentEntity, apperror.KindUpdate, "failed to update appointment", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperror.Wrap(appointmentEntity, apperror.KindUpdate, "failed to update appointment", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Wrap(appointmentEntity, apperror.KindUpdate, "failed to update appointment", err)
	}
	if rows == 0 {
		return apperror.New(appointmentEntity, apperror.KindNotFound, "record not found")
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := dialect.Delete("appointments").Where(goqu.Ex{"appointment_id": id}).Prepared(true).ToSQL()
	if err != nil {
		return apperror.Wrap(appointmentEntity, apperror.KindDelete, "failed deleting appointment", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperror.Wrap(appointmentEntity, apperror.KindDelete, "failed deleting appointment", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Wrap(appointmentEntity, apperror.KindDelete, "failed deleting appointment", err)
	}
	if rows == 0 {
		return apperror.New(appointmentEntity, apperror.KindNotFound, "record not found")
	}
	return nil
}

func (r *appointmentRepository) WithTx(ctx context.Context, fn func(repository.AppointmentRepository) error) error {
	return r.runTx(ctx, func(tx *sqlx.Tx) error {
		return fn(&appointmentRepository{baseRepository{db: tx}})
	})
}
