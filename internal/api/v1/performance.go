package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/performance"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/logger"
)

type PerformanceHandler struct {
	crudHandler[*performance.Review, dto.CreateReviewRequest, dto.UpdateReviewRequest]
	service interfaces.PerformanceService
}

func NewPerformanceHandler(service interfaces.PerformanceService, log *logger.Logger) *PerformanceHandler {
	return &PerformanceHandler{
		crudHandler: crudHandler[*performance.Review, dto.CreateReviewRequest, dto.UpdateReviewRequest]{
			service: service,
			log:     log,
		},
		service: service,
	}
}

// GetByEmployee serves /employees/:id/reviews
func (h *PerformanceHandler) GetByEmployee(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.GetByEmployee(c.Request.Context(), c.Param("id")))
}

func (h *PerformanceHandler) Submit(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.Submit(c.Request.Context(), c.Param("id")))
}

func (h *PerformanceHandler) Acknowledge(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.Acknowledge(c.Request.Context(), c.Param("id")))
}

func (h *PerformanceHandler) GetStats(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.GetStats(c.Request.Context()))
}
