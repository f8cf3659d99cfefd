package doctor

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicbase/clinic-api/internal/apperror"
	"github.com/clinicbase/clinic-api/internal/handler"
	"github.com/clinicbase/clinic-api/internal/model"
	"github.com/clinicbase/clinic-api/internal/service/doctor"
)

type Handler struct {
	service *doctor.Service
}

func NewHandler(service *doctor.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	doctors := rg.Group("/doctors")
	{
		doctors.GET("", h.ListDoctors)
		doctors.POST("/create", h.CreateDoctor)
		doctors.GET("/:id", h.GetDoctor)
		doctors.PUT("/:id", h.UpdateDoctor)
		doctors.DELETE("/:id", h.DeleteDoctor)
	}
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.ListDoctors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "error getting all doctors"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": handler.ValidationMessage(err)})
		return
	}

	created, err := h.service.CreateDoctor(c.Request.Context(), &req)
	if err != nil {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error_name": appErr.Name(), "message": "failed creating a doctor"})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"message": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	doctor, err := h.service.GetDoctor(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": handler.ErrorMessage(err, "failed to retrieve doctor")})
		return
	}

	c.JSON(http.StatusOK, doctor)
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	var req model.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": handler.ValidationMessage(err)})
		return
	}

	updated, err := h.service.UpdateDoctor(c.Request.Context(), id, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": handler.ErrorMessage(err, "failed to update doctor")})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	if err := h.service.DeleteDoctor(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": handler.ErrorMessage(err, "failed to delete doctor")})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Doctor was deleted successfully"})
}
