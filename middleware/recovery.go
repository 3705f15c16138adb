package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/errors"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/logger"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
)

// Recovery turns a panic into the same 500 body the contact pipeline uses
// for any other unexpected failure.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.LogHTTPError(c, fmt.Errorf("panic: %v", recovered), http.StatusInternalServerError, "Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{Error: errors.MsgSendFailed})
	})
}
