package middleware

import (
	"github.com/gin-gonic/gin"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/types"
)

// ErrorHandler turns errors raised before a service was reached, such as
// malformed bodies or query strings, into a failed envelope
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		message := "An unexpected error occurred"
		if ierr.IsReported(err) {
			message = err.Error()
		}
		c.JSON(ierr.HTTPStatusFromErr(err), types.Fail[any](err, message))
	}
}
