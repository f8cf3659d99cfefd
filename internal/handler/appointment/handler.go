package appointment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicbase/clinic-api/internal/apperror"
	"github.com/clinicbase/clinic-api/internal/handler"
	"github.com/clinicbase/clinic-api/internal/model"
	"github.com/clinicbase/clinic-api/internal/service/appointment"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	appointments := rg.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.POST("/create", h.CreateAppointment)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}

func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.service.ListAppointments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "error getting all appointments"})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": handler.ValidationMessage(err)})
		return
	}

	view, err := h.service.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error_name": appErr.Name(), "message": "failed creating an appointment"})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"message": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	view, err := h.service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": handler.ErrorMessage(err, "failed to retrieve appointment")})
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": handler.ValidationMessage(err)})
		return
	}

	updated, err := h.service.UpdateAppointment(c.Request.Context(), id, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": handler.ErrorMessage(err, "failed to update appointment")})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	if err := h.service.DeleteAppointment(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": handler.ErrorMessage(err, "failed to delete appointment")})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment was deleted successfully"})
}
