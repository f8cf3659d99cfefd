package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clinicbase/clinic-api/internal/apperror"
)

// ParseID reads the :id path parameter as an integer identifier.
func ParseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// ErrorMessage picks the client-facing message for err: the categorized
// message when it is a tagged error, the fallback otherwise. Cause detail
// never reaches the client either way.
func ErrorMessage(err error, fallback string) string {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return fallback
}
