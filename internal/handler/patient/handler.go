package patient

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicbase/clinic-api/internal/apperror"
	"github.com/clinicbase/clinic-api/internal/handler"
	"github.com/clinicbase/clinic-api/internal/model"
	"github.com/clinicbase/clinic-api/internal/service/patient"
)

type Handler struct {
	service *patient.Service
}

func NewHandler(service *patient.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	patients := rg.Group("/patients")
	{
		patients.GET("", h.ListPatients)
		patients.POST("/create", h.CreatePatient)
		patients.GET("/:id", h.GetPatient)
		patients.PUT("/:id", h.UpdatePatient)
		patients.DELETE("/:id", h.DeletePatient)
	}
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.service.ListPatients(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "error getting all patients"})
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": handler.ValidationMessage(err)})
		return
	}

	created, err := h.service.CreatePatient(c.Request.Context(), &req)
	if err != nil {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error_name": appErr.Name(), "message": "failed creating a patient"})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"message": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetPatient(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	patient, err := h.service.GetPatient(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": handler.ErrorMessage(err, "failed to retrieve patient")})
		return
	}

	c.JSON(http.StatusOK, patient)
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	var req model.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": handler.ValidationMessage(err)})
		return
	}

	updated, err := h.service.UpdatePatient(c.Request.Context(), id, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": handler.ErrorMessage(err, "failed to update patient")})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeletePatient(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	if err := h.service.DeletePatient(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": handler.ErrorMessage(err, "failed to delete patient")})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient was deleted successfully"})
}
