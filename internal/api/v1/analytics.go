package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/logger"
)

type AnalyticsHandler struct {
	service interfaces.AnalyticsService
	log     *logger.Logger
}

func NewAnalyticsHandler(service interfaces.AnalyticsService, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{service: service, log: log}
}

// @Summary Dashboard analytics
// @Description Headcount and per-entity group counts
// @Tags Analytics
// @Produce json
// @Router /analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.GetAnalytics(c.Request.Context()))
}
