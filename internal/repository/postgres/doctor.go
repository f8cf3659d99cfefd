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

const doctorEntity = "doctors"

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error) {
	now := time.Now()
	query, args, err := dialect.Insert("doctors").Rows(goqu.Record{
		"first_name": doctor.FirstName,
		"last_name":  doctor.LastName,
		"specialty":  doctor.Specialty,
		"office":     doctor.Office,
		"email":      doctor.Email,
		"created_at": now,
		"updated_at": now,
	}).Returning(goqu.Star()).Prepared(true).ToSQL()
	if err != nil {
		return nil, apperror.Wrap(doctorEntity, apperror.KindCreation, "failed to create doctor", err)
	}

	var created model.Doctor
	if err := sqlx.GetContext(ctx, r.db, &created, query, args...); err != nil {
		return nil, apperror.Wrap(doctorEntity, apperror.KindCreation, "failed to create doctor", err)
	}
	return &created, nil
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	query, args, err := dialect.From("doctors").Order(goqu.I("doctor_id").Asc()).Prepared(true).ToSQL()
	if err != nil {
		return nil, apperror.Wrap(doctorEntity, apperror.KindGetAll, "failed getting all doctors", err)
	}

	var doctors []*model.Doctor
	if err := sqlx.SelectContext(ctx, r.db, &doctors, query, args...); err != nil {
		return nil, apperror.Wrap(doctorEntity, apperror.KindGetAll, "failed getting all doctors", err)
	}
	return doctors, nil
}

func (r *doctorRepository) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	query, args, err := dialect.From("doctors").Where(goqu.Ex{"doctor_id": id}).Prepared(true).ToSQL()
	if err != nil {
		return nil, apperror.Wrap(doctorEntity, apperror.KindNotFound, "failed to get doctor", err)
	}

	var doctor model.Doctor
	if err := sqlx.GetContext(ctx, r.db, &doctor, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.New(doctorEntity, apperror.KindNotFound, "record not found")
		}
		return nil, apperror.Wrap(doctorEntity, apperror.KindNotFound, "failed to get doctor", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	query, args, err := dialect.Update("doctors").Set(goqu.Record{
		"first_name": doctor.FirstName,
		"last_name":  doctor.LastName,
		"specialty":  doctor.Specialty,
		"office":     doctor.Office,
		"email":      doctor.Email,
		"updated_at": time.Now(),
	}).Where(goqu.Ex{"doctor_id": doctor.DoctorID}).Prepared(true).ToSQL()
	if err != nil {
		return apperror.Wrap(doctorEntity, apperror.KindUpdate, "failed to update doctor", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperror.Wrap(doctorEntity, apperror.KindUpdate, "failed to update doctor", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Wrap(doctorEntity, apperror.KindUpdate, "failed to update doctor", err)
	}
	if rows == 0 {
		return apperror.New(doctorEntity, apperror.KindNotFound, "record not found")
	}
	return nil
}

func (r *doctorRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := dialect.Delete("doctors").Where(goqu.Ex{"doctor_id": id}).Prepared(true).ToSQL()
	if err != nil {
		return apperror.Wrap(doctorEntity, apperror.KindDelete, "failed deleting doctor", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperror.Wrap(doctorEntity, apperror.KindDelete, "failed deleting doctor", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Wrap(doctorEntity, apperror.KindDelete, "failed deleting doctor", err)
	}
	if rows == 0 {
		return apperror.New(doctorEntity, apperror.KindNotFound, "record not found")
	}
	return nil
}

func (r *doctorRepository) WithTx(ctx context.Context, fn func(repository.DoctorRepository) error) error {
	return r.runTx(ctx, func(tx *sqlx.Tx) error {
		return fn(&doctorRepository{baseRepository{db: tx}})
	})
}
