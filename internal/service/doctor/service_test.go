package doctor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicbase/clinic-api/internal/apperror"
	"github.com/clinicbase/clinic-api/internal/model"
	"github.com/clinicbase/clinic-api/internal/repository"
)

type stubRepo struct {
	doctors map[int64]*model.Doctor
	nextID  int64
	listErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{doctors: make(map[int64]*model.Doctor)}
}

func (s *stubRepo) Create(_ context.Context, d *model.Doctor) (*model.Doctor, error) {
	s.nextID++
	stored := *d
	stored.DoctorID = s.nextID
	s.doctors[stored.DoctorID] = &stored
	copied := stored
	return &copied, nil
}

func (s *stubRepo) List(context.Context) ([]*model.Doctor, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]*model.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		copied := *d
		out = append(out, &copied)
	}
	return out, nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*model.Doctor, error) {
	d, ok := s.doctors[id]
	if !ok {
		return nil, apperror.New("doctors", apperror.KindNotFound, "record not found")
	}
	copied := *d
	return &copied, nil
}

func (s *stubRepo) Update(_ context.Context, d *model.Doctor) error {
	if _, ok := s.doctors[d.DoctorID]; !ok {
		return apperror.New("doctors", apperror.KindNotFound, "record not found")
	}
	stored := *d
	s.doctors[d.DoctorID] = &stored
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if _, ok := s.doctors[id]; !ok {
		return apperror.New("doctors", apperror.KindNotFound, "record not found")
	}
	delete(s.doctors, id)
	return nil
}

func (s *stubRepo) WithTx(_ context.Context, fn func(repository.DoctorRepository) error) error {
	return fn(s)
}

func createRequest() *model.CreateDoctorRequest {
	return &model.CreateDoctorRequest{
		FirstName: "Carlos",
		LastName:  "Caceres",
		Specialty: model.SpecialtyRadiologia,
		Office:    "101C",
		Email:     "carlos@clinic.com",
	}
}

func TestCreateDoctorAssignsID(t *testing.T) {
	svc := NewService(newStubRepo())

	created, err := svc.CreateDoctor(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.DoctorID)
	assert.Equal(t, "Carlos", created.FirstName)
	assert.Equal(t, "Caceres", created.LastName)
	require.NotNil(t, created.Email)
	assert.Equal(t, "carlos@clinic.com", *created.Email)
}

func TestGetDoctorNotFound(t *testing.T) {
	svc := NewService(newStubRepo())

	_, err := svc.GetDoctor(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestListDoctorsPropagatesError(t *testing.T) {
	repo := newStubRepo()
	repo.listErr = apperror.New("doctors", apperror.KindGetAll, "error getting all doctors")
	svc := NewService(repo)

	_, err := svc.ListDoctors(context.Background())
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindGetAll))
}

func TestUpdateDoctorMergesSuppliedFieldsOnly(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)

	created, err := svc.CreateDoctor(context.Background(), createRequest())
	require.NoError(t, err)

	office := "202B"
	updated, err := svc.UpdateDoctor(context.Background(), created.DoctorID, &model.UpdateDoctorRequest{
		Office: &office,
	})
	require.NoError(t, err)

	assert.Equal(t, "202B", updated.Office)
	assert.Equal(t, "Carlos", updated.FirstName)
	assert.Equal(t, model.SpecialtyRadiologia, updated.Specialty)

	stored, err := svc.GetDoctor(context.Background(), created.DoctorID)
	require.NoError(t, err)
	assert.Equal(t, "202B", stored.Office)
	assert.Equal(t, "Caceres", stored.LastName)
}

func TestUpdateDoctorEmptyPartialIsNoOp(t *testing.T) {
	svc := NewService(newStubRepo())

	created, err := svc.CreateDoctor(context.Background(), createRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateDoctor(context.Background(), created.DoctorID, &model.UpdateDoctorRequest{})
	require.NoError(t, err)
	assert.Equal(t, created, updated)
}

func TestUpdateDoctorMissingRecord(t *testing.T) {
	svc := NewService(newStubRepo())

	first := "Ana"
	_, err := svc.UpdateDoctor(context.Background(), 99, &model.UpdateDoctorRequest{FirstName: &first})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestDeleteDoctorThenGetFails(t *testing.T) {
	svc := NewService(newStubRepo())

	created, err := svc.CreateDoctor(context.Background(), createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDoctor(context.Background(), created.DoctorID))

	_, err = svc.GetDoctor(context.Background(), created.DoctorID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestDeleteDoctorUnknownSurfacesDeleteError(t *testing.T) {
	svc := NewService(newStubRepo())

	err := svc.DeleteDoctor(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindDelete))

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "doctors", appErr.Entity)
}
