package delivery

import (
	"errors"
	"net/http"
	"strings"

	"category_service/internal/domain"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
	Errors  interface{} `json:"Errors,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

// DomainErrorResponse answers with the status matching err and, for
// validation failures, the offending fields.
func DomainErrorResponse(c *gin.Context, prefix string, err error) {
	resp := Response{
		Status:  "Fail",
		Message: prefix + ": " + err.Error(),
	}
	var verr *domain.EntityValidationError
	if errors.As(err, &verr) {
		resp.Errors = verr.Errors
	}
	c.JSON(mapErrorToStatus(err), resp)
}

func mapErrorToStatus(err error) int {
	var (
		notFound   *domain.NotFoundError
		validation *domain.EntityValidationError
		load       *domain.LoadEntityError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusUnprocessableEntity
	case errors.As(err, &load):
		return http.StatusInternalServerError
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "already exists") || strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint") {
		return http.StatusConflict
	}
	if strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "cannot be empty") {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
