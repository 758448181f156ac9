package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/onboarding"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/logger"
)

type OnboardingHandler struct {
	crudHandler[*onboarding.Task, dto.CreateOnboardingTaskRequest, dto.UpdateOnboardingTaskRequest]
	service interfaces.OnboardingService
}

func NewOnboardingHandler(service interfaces.OnboardingService, log *logger.Logger) *OnboardingHandler {
	return &OnboardingHandler{
		crudHandler: crudHandler[*onboarding.Task, dto.CreateOnboardingTaskRequest, dto.UpdateOnboardingTaskRequest]{
			service: service,
			log:     log,
		},
		service: service,
	}
}

// GetByEmployee serves /employees/:id/onboarding-tasks
func (h *OnboardingHandler) GetByEmployee(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.GetByEmployee(c.Request.Context(), c.Param("id")))
}

func (h *OnboardingHandler) Complete(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.Complete(c.Request.Context(), c.Param("id")))
}

// GetProgress serves /employees/:id/onboarding-progress
func (h *OnboardingHandler) GetProgress(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.GetProgress(c.Request.Context(), c.Param("id")))
}
