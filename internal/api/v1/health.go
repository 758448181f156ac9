package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/staffdesk/internal/config"
	"github.com/staffdesk/staffdesk/internal/logger"
)

type HealthHandler struct {
	config *config.Configuration
	logger *logger.Logger
}

func NewHealthHandler(config *config.Configuration, logger *logger.Logger) *HealthHandler {
	return &HealthHandler{
		config: config,
		logger: logger,
	}
}

// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"backend": h.config.Backend.Type,
	})
}
