package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/application"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/logger"
)

type ApplicationHandler struct {
	crudHandler[*application.Application, dto.CreateApplicationRequest, dto.UpdateApplicationRequest]
	service interfaces.ApplicationService
}

func NewApplicationHandler(service interfaces.ApplicationService, log *logger.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		crudHandler: crudHandler[*application.Application, dto.CreateApplicationRequest, dto.UpdateApplicationRequest]{
			service: service,
			log:     log,
		},
		service: service,
	}
}

// GetByJob serves /jobs/:id/applications
func (h *ApplicationHandler) GetByJob(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.GetByJob(c.Request.Context(), c.Param("id")))
}

// @Summary Move an application to another stage
// @Tags Applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body dto.MoveToStageRequest true "Stage"
// @Router /applications/{id}/stage [post]
func (h *ApplicationHandler) MoveToStage(c *gin.Context) {
	var req dto.MoveToStageRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	respond(c, h.log, http.StatusOK, h.service.MoveToStage(c.Request.Context(), c.Param("id"), req))
}

func (h *ApplicationHandler) GetStats(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.GetStats(c.Request.Context()))
}
