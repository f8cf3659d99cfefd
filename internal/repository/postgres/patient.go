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

const patientEntity = "patients"

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	now := time.Now()
	query, args, err := dialect.Insert("patients").Rows(goqu.Record{
		"first_name":     patient.FirstName,
		"last_name":      patient.LastName,
		"identification": patient.Identification,
		"phone_number":   patient.PhoneNumber,
		"email":          patient.Email,
		"created_at":     now,
		"updated_at":     now,
	}).Returning(goqu.Star()).Prepared(true).ToSQL()
	if err != nil {
		return nil, apperror.Wrap(patientEntity, apperror.KindCreation, "failed to create patient", err)
	}

	var created model.Patient
	if err := sqlx.GetContext(ctx, r.db, &created, query, args...); err != nil {
		return nil, apperror.Wrap(patientEntity, apperror.KindCreation, "failed to create patient", err)
	}
	return &created, nil
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query, args, err := dialect.From("patients").Order(goqu.I("patient_id").Asc()).Prepared(true).ToSQL()
	if err != nil {
		return nil, apperror.Wrap(patientEntity, apperror.KindGetAll, "failed getting all patients", err)
	}

	var patients []*model.Patient
	if err := sqlx.SelectContext(ctx, r.db, &patients, query, args...); err != nil {
		return nil, apperror.Wrap(patientEntity, apperror.KindGetAll, "failed getting all patients", err)
	}
	return patients, nil
}

func (r *patientRepository) Get(ctx context.Context, id int64) (*model.Patient, error) {
	query, args, err := dialect.From("patients").Where(goqu.Ex{"patient_id": id}).Prepared(true).ToSQL()
	if err != nil {
		return nil, apperror.Wrap(patientEntity, apperror.KindNotFound, "failed to get patient", err)
	}

	var patient model.Patient
	if err := sqlx.GetContext(ctx, r.db, &patient, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.New(patientEntity, apperror.KindNotFound, "record not found")
		}
		return nil, apperror.Wrap(patientEntity, apperror.KindNotFound, "failed to get patient", err)
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	// identification is an alternate key referenced by appointments and is
	// never rewritten.
	query, args, err := dialect.Update("patients").Set(goqu.Record{
		"first_name":   patient.FirstName,
		"last_name":    patient.LastName,
		"phone_number": patient.PhoneNumber,
		"email":        patient.Email,
		"updated_at":   time.Now(),
	}).Where(goqu.Ex{"patient_id": patient.PatientID}).Prepared(true).ToSQL()
	if err != nil {
		return apperror.Wrap(patientEntity, apperror.KindUpdate, "failed to update patient", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperror.Wrap(patientEntity, apperror.KindUpdate, "failed to update patient", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Wrap(patientEntity, apperror.KindUpdate, "failed to update patient", err)
	}
	if rows == 0 {
		return apperror.New(patientEntity, apperror.KindNotFound, "record not found")
	}
	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := dialect.Delete("patients").Where(goqu.Ex{"patient_id": id}).Prepared(true).ToSQL()
	if err != nil {
		return apperror.Wrap(patientEntity, apperror.KindDelete, "failed deleting patient", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperror.Wrap(patientEntity, apperror.KindDelete, "failed deleting patient", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Wrap(patientEntity, apperror.KindDelete, "failed deleting patient", err)
	}
	if rows == 0 {
		return apperror.New(patientEntity, apperror.KindNotFound, "record not found")
	}
	return nil
}

func (r *patientRepository) WithTx(ctx context.Context, fn func(repository.PatientRepository) error) error {
	return r.runTx(ctx, func(tx *sqlx.Tx) error {
		return fn(&patientRepository{baseRepository{db: tx}})
	})
}
