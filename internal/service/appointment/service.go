// Package appointment composes appointment rows with their referenced doctor:
// read and create paths return a view with the doctor's name and office
// inlined instead of the raw doctor id.
package appointment

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/clinicbase/clinic-api/internal/apperror"
	"github.com/clinicbase/clinic-api/internal/model"
	"github.com/clinicbase/clinic-api/internal/repository"
)

type Service struct {
	repo       repository.AppointmentRepository
	doctorRepo repository.DoctorRepository
}

func NewService(repo repository.AppointmentRepository, doctorRepo repository.DoctorRepository) *Service {
	return &Service{repo: repo, doctorRepo: doctorRepo}
}

func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.AppointmentView, error) {
	apt := &model.Appointment{
		Schedule:              req.Schedule,
		Specialty:             req.Specialty,
		DoctorID:              req.DoctorID,
		PatientIdentification: req.PatientIdentification,
	}

	created, err := s.repo.Create(ctx, apt)
	if err != nil {
		log.Error().Err(err).Msg("failed to create appointment")
		return nil, err
	}

	doctor, err := s.doctorRepo.Get(ctx, created.DoctorID)
	if err != nil {
		log.Error().Err(err).Int64("doctor_id", created.DoctorID).Msg("failed to resolve doctor for created appointment")
		return nil, apperror.Wrap("appointments", apperror.KindLookup, "failed to resolve appointment doctor", err)
	}

	return model.NewAppointmentView(created, doctor), nil
}

func (s *Service) ListAppointments(ctx context.Context) ([]*model.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed getting all appointments")
		return nil, err
	}
	return appointments, nil
}

// GetAppointment distinguishes the appointment itself being absent
// (RecordNotFoundError) from the dependent doctor lookup failing
// (LookupError).
func (s *Service) GetAppointment(ctx context.Context, id int64) (*model.AppointmentView, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("appointment_id", id).Msg("failed to get appointment")
		return nil, err
	}

	doctor, err := s.doctorRepo.Get(ctx, apt.DoctorID)
	if err != nil {
		log.Error().Err(err).Int64("doctor_id", apt.DoctorID).Msg("failed to resolve doctor for appointment")
		return nil, apperror.Wrap("appointments", apperror.KindLookup, "failed to resolve appointment doctor", err)
	}

	return model.NewAppointmentView(apt, doctor), nil
}

// UpdateAppointment merges the supplied fields over the stored record and
// persists the result; fields absent from the request keep their stored
// value. The merge is not revalidated against foreign keys, the store rejects
// dangling references on write.
func (s *Service) UpdateAppointment(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	var updated *model.Appointment
	err := s.repo.WithTx(ctx, func(r repository.AppointmentRepository) error {
		existing, err := r.Get(ctx, id)
		if err != nil {
			return err
		}

		merge(existing, req)
		if err := r.Update(ctx, existing); err != nil {
			return err
		}

		updated = existing
		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("appointment_id", id).Msg("failed to update appointment")
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id int64) error {
	err := s.repo.WithTx(ctx, func(r repository.AppointmentRepository) error {
		existing, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		return r.Delete(ctx, existing.AppointmentID)
	})
	if err != nil {
		log.Error().Err(err).Int64("appointment_id", id).Msg("failed to delete appointment")
		return apperror.Wrap("appointments", apperror.KindDelete, "failed to delete appointment", err)
	}
	return nil
}

func merge(apt *model.Appointment, req *model.UpdateAppointmentRequest) {
	if req.Schedule != nil {
		apt.Schedule = *req.Schedule
	}
	if req.Specialty != nil {
		apt.Specialty = *req.Specialty
	}
	if req.DoctorID != nil {
		apt.DoctorID = *req.DoctorID
	}
	if req.PatientIdentification != nil {
		apt.PatientIdentification = *req.PatientIdentification
	}
}
