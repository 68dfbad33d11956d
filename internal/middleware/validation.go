package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/cgpatracker/internal/app/models/dto"
)

// BindJSON binds the request body into obj and runs its binding tags. On
// failure it writes a VAL_001 response listing every failed field and
// returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
