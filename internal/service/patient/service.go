package patient

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/clinicbase/clinic-api/internal/apperror"
	"github.com/clinicbase/clinic-api/internal/model"
	"github.com/clinicbase/clinic-api/internal/repository"
)

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	patient := &model.Patient{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Identification: req.Identification,
		PhoneNumber:    req.PhoneNumber,
	}
	if req.Email != "" {
		patient.Email = &req.Email
	}

	created, err := s.repo.Create(ctx, patient)
	if err != nil {
		log.Error().Err(err).Msg("failed to create patient")
		return nil, err
	}
	return created, nil
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed getting all patients")
		return nil, err
	}
	return patients, nil
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("patient_id", id).Msg("failed to get patient")
		return nil, err
	}
	return patient, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id int64, req *model.UpdatePatientRequest) (*model.Patient, error) {
	var updated *model.Patient
	err := s.repo.WithTx(ctx, func(r repository.PatientRepository) error {
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
		log.Error().Err(err).Int64("patient_id", id).Msg("failed to update patient")
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	err := s.repo.WithTx(ctx, func(r repository.PatientRepository) error {
		existing, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		return r.Delete(ctx, existing.PatientID)
	})
	if err != nil {
		log.Error().Err(err).Int64("patient_id", id).Msg("failed to delete patient")
		return apperror.Wrap("patients", apperror.KindDelete, "failed to delete patient", err)
	}
	return nil
}

func merge(patient *model.Patient, req *model.UpdatePatientRequest) {
	if req.FirstName != nil {
		patient.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		patient.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		patient.PhoneNumber = *req.PhoneNumber
	}
	if req.Email != nil {
		patient.Email = req.Email
	}
}
