package doctor

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/clinicbase/clinic-api/internal/apperror"
	"github.com/clinicbase/clinic-api/internal/model"
	"github.com/clinicbase/clinic-api/internal/repository"
)

type Service struct {
	repo repository.DoctorRepository
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	doctor := &model.Doctor{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Specialty: req.Specialty,
		Office:    req.Office,
		Email:     &req.Email,
	}

	created, err := s.repo.Create(ctx, doctor)
	if err != nil {
		log.Error().Err(err).Msg("failed to create doctor")
		return nil, err
	}
	return created, nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed getting all doctors")
		return nil, err
	}
	return doctors, nil
}

func (s *Service) GetDoctor(ctx context.Context, id int64) (*model.Doctor, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("doctor_id", id).Msg("failed to get doctor")
		return nil, err
	}
	return doctor, nil
}

// UpdateDoctor fetches the stored record, merges the supplied fields over it
// and persists the result. Fetch and write share one transaction.
func (s *Service) UpdateDoctor(ctx context.Context, id int64, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	var updated *model.Doctor
	err := s.repo.WithTx(ctx, func(r repository.DoctorRepository) error {
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
		log.Error().Err(err).Int64("doctor_id", id).Msg("failed to update doctor")
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id int64) error {
	err := s.repo.WithTx(ctx, func(r repository.DoctorRepository) error {
		existing, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		return r.Delete(ctx, existing.DoctorID)
	})
	if err != nil {
		log.Error().Err(err).Int64("doctor_id", id).Msg("failed to delete doctor")
		return apperror.Wrap("doctors", apperror.KindDelete, "failed to delete doctor", err)
	}
	return nil
}

func merge(doctor *model.Doctor, req *model.UpdateDoctorRequest) {
	if req.FirstName != nil {
		doctor.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		doctor.LastName = *req.LastName
	}
	if req.Specialty != nil {
		doctor.Specialty = *req.Specialty
	}
	if req.Office != nil {
		doctor.Office = *req.Office
	}
	if req.Email != nil {
		doctor.Email = req.Email
	}
}
