package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "episode-srv/pkg/errors"
)

// OK writes a 200 response with the given payload.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error writes an error response. HTTPError values keep their status code and
// message; anything else becomes a generic 500. The underlying detail is only
// attached outside release mode so internals never leak in production.
func Error(c *gin.Context, err error) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.StatusCode(), Resp{
			ErrorCode: httpErr.StatusCode(),
			Message:   httpErr.Message,
		})
		return
	}

	resp := Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	}
	if gin.Mode() != gin.ReleaseMode && err != nil {
		resp.Errors = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// Unauthorized writes a 401 with a specific reason string.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   message,
	})
}

// PanicError writes a generic 500 for recovered panics.
func PanicError(c *gin.Context, _ any) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}
