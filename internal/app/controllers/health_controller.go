package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/cgpatracker/internal/app/models/dto"
)

// HealthController reports whether the session store is reachable
type HealthController struct {
	store string
	ping  func(ctx context.Context) error
}

// NewHealthController creates a new HealthController. ping may be nil for
// stores that live in process memory.
func NewHealthController(store string, ping func(ctx context.Context) error) *HealthController {
	return &HealthController{store: store, ping: ping}
}

// Health reports service health
// @Summary Health check
// @Description Reports whether the session store is reachable
// @Tags system
// @Produce json
// @Success 200 {object} dto.APIResponse "Healthy"
// @Failure 503 {object} dto.ErrorResponse "Session store unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	if c.ping != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()
		if err := c.ping(pingCtx); err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Session store unreachable").WithDetails(c.store)
			ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(detail))
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok", "sessionStore": c.store}, ""))
}
