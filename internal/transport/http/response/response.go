package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error 统一错误载荷；details 仅在 400 带上
type Error struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func NotFound(c *gin.Context, format string, args ...any) {
	c.JSON(http.StatusNotFound, Error{Message: fmt.Sprintf(format, args...)})
}

func BadRequest(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, Error{Message: "Incorrect request", Details: details})
}

func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Error{Message: err.Error()})
}

func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Error{Message: message})
}
