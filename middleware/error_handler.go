package middleware

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/errors"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/logger"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
)

// ErrorHandler renders the last error a handler attached with c.Error as
// {"error": message}. Every failure body on the contact endpoint has that
// single field.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var appError *errors.AppError
		if stderrors.As(err, &appError) {
			statusCode := appError.GetHTTPStatus()
			logger.LogHTTPError(c, err, statusCode, fmt.Sprintf("%s error", appError.Type))

			if appError.Type == errors.RateLimitError && appError.RetryAfter > 0 {
				c.Header("Retry-After", strconv.Itoa(appError.RetryAfter))
			}

			c.JSON(statusCode, types.ErrorResponse{Error: appError.Message})
			return
		}

		logger.LogHTTPError(c, err, http.StatusInternalServerError, "Unexpected server error")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: errors.MsgSendFailed})
	}
}
