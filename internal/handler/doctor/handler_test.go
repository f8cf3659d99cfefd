package doctor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicbase/clinic-api/internal/apperror"
	"github.com/clinicbase/clinic-api/internal/model"
	"github.com/clinicbase/clinic-api/internal/repository"
	doctorsvc "github.com/clinicbase/clinic-api/internal/service/doctor"
)

type stubRepo struct {
	doctors map[int64]*model.Doctor
	nextID  int64
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

func setupRouter(repo repository.DoctorRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(doctorsvc.NewService(repo)).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func perform(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

const validDoctorBody = `{
	"first_name": "Carlos",
	"last_name": "Caceres",
	"specialty": "Radiología",
	"office": "101C",
	"email": "carlos@clinic.com"
}`

func TestCreateDoctor(t *testing.T) {
	engine := setupRouter(newStubRepo())

	w := perform(t, engine, http.MethodPost, "/api/v1/doctors/create", validDoctorBody)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(1), body["doctor_id"])
	assert.Equal(t, "Carlos", body["first_name"])
	assert.Equal(t, "carlos@clinic.com", body["email"])
}

func TestCreateDoctorMissingField(t *testing.T) {
	engine := setupRouter(newStubRepo())

	w := perform(t, engine, http.MethodPost, "/api/v1/doctors/create",
		`{"first_name": "Carlos", "last_name": "Caceres", "office": "101C", "email": "carlos@clinic.com"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Specialty is required", decode(t, w)["message"])
}

func TestCreateDoctorUnknownSpecialty(t *testing.T) {
	engine := setupRouter(newStubRepo())

	w := perform(t, engine, http.MethodPost, "/api/v1/doctors/create",
		`{"first_name": "Carlos", "last_name": "Caceres", "specialty": "Oncología", "office": "101C", "email": "carlos@clinic.com"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["message"], "Specialty must be one of")
}

func TestCreateDoctorMalformedEmail(t *testing.T) {
	engine := setupRouter(newStubRepo())

	w := perform(t, engine, http.MethodPost, "/api/v1/doctors/create",
		`{"first_name": "Carlos", "last_name": "Caceres", "specialty": "Radiología", "office": "101C", "email": "not-an-email"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email must be a valid email address", decode(t, w)["message"])
}

func TestGetDoctorNonIntegerID(t *testing.T) {
	engine := setupRouter(newStubRepo())

	w := perform(t, engine, http.MethodGet, "/api/v1/doctors/abc", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "id must be an integer", decode(t, w)["error"])
}

func TestGetDoctorNotFound(t *testing.T) {
	engine := setupRouter(newStubRepo())

	w := perform(t, engine, http.MethodGet, "/api/v1/doctors/7", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "record not found", decode(t, w)["error"])
}

func TestListDoctors(t *testing.T) {
	engine := setupRouter(newStubRepo())

	require.Equal(t, http.StatusCreated, perform(t, engine, http.MethodPost, "/api/v1/doctors/create", validDoctorBody).Code)

	w := perform(t, engine, http.MethodGet, "/api/v1/doctors", "")
	require.Equal(t, http.StatusOK, w.Code)

	var doctors []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doctors))
	require.Len(t, doctors, 1)
	assert.Equal(t, "Caceres", doctors[0]["last_name"])
}

func TestUpdateDoctorPartialThenGetReflectsMerge(t *testing.T) {
	engine := setupRouter(newStubRepo())

	require.Equal(t, http.StatusCreated, perform(t, engine, http.MethodPost, "/api/v1/doctors/create", validDoctorBody).Code)

	w := perform(t, engine, http.MethodPut, "/api/v1/doctors/1", `{"office": "202B"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "202B", decode(t, w)["office"])

	w = perform(t, engine, http.MethodGet, "/api/v1/doctors/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "202B", body["office"])
	assert.Equal(t, "Carlos", body["first_name"])
	assert.Equal(t, "Radiología", body["specialty"])
}

func TestUpdateDoctorNotFound(t *testing.T) {
	engine := setupRouter(newStubRepo())

	w := perform(t, engine, http.MethodPut, "/api/v1/doctors/99", `{"office": "202B"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "record not found", decode(t, w)["error"])
}

func TestDeleteDoctor(t *testing.T) {
	engine := setupRouter(newStubRepo())

	require.Equal(t, http.StatusCreated, perform(t, engine, http.MethodPost, "/api/v1/doctors/create", validDoctorBody).Code)

	w := perform(t, engine, http.MethodDelete, "/api/v1/doctors/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Doctor was deleted successfully", decode(t, w)["message"])

	w = perform(t, engine, http.MethodDelete, "/api/v1/doctors/1", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "failed to delete doctor", decode(t, w)["error"])
}
