package apperrors

import (
	"lexhub_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError пишет ошибку в ответ. Все, что не AppError, превращается в 500
// без деталей, причина 5xx попадает только в лог.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		ctx := c.Request.Context()
		if cause := appErr.Unwrap(); cause != nil {
			logger.CtxWithError(ctx, "Server error", cause, "code", appErr.Code, "domain", appErr.Domain)
		} else {
			logger.CtxError(ctx, "Server error", "code", appErr.Code, "domain", appErr.Domain)
		}
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
