package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// NoContent writes an empty 204 response and stops the handler chain.
// Used for CORS preflight requests.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
	c.Abort()
}
