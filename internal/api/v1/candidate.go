package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/candidate"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/logger"
)

type CandidateHandler struct {
	crudHandler[*candidate.Candidate, dto.CreateCandidateRequest, dto.UpdateCandidateRequest]
	service interfaces.CandidateService
}

func NewCandidateHandler(service interfaces.CandidateService, log *logger.Logger) *CandidateHandler {
	return &CandidateHandler{
		crudHandler: crudHandler[*candidate.Candidate, dto.CreateCandidateRequest, dto.UpdateCandidateRequest]{
			service: service,
			log:     log,
		},
		service: service,
	}
}

func (h *CandidateHandler) Search(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.Search(c.Request.Context(), c.Query("q")))
}
