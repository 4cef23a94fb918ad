package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"majestic/internal/shared/apperror"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// Success writes a success envelope with the given HTTP code.
func Success(c *gin.Context, code int, message string, data interface{}) {
	RespondJSON(c, "success", code, message, data, nil)
}

// Error maps an error to the standard envelope. Errors carrying an
// apperror.Kind keep their status code; anything else becomes a 500.
func Error(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	message := "Internal server error"
	if appErr, ok := apperror.From(err); ok {
		code = appErr.StatusCode()
		message = appErr.Message
	}
	RespondJSON(c, "error", code, message, nil, nil)
}

// ValidationError writes a 400 with field-level details.
func ValidationError(c *gin.Context, message string, errors interface{}) {
	RespondJSON(c, "error", http.StatusBadRequest, message, nil, errors)
}
