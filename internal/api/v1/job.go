package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/job"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/logger"
)

type JobHandler struct {
	crudHandler[*job.Job, dto.CreateJobRequest, dto.UpdateJobRequest]
	service interfaces.JobService
}

func NewJobHandler(service interfaces.JobService, log *logger.Logger) *JobHandler {
	return &JobHandler{
		crudHandler: crudHandler[*job.Job, dto.CreateJobRequest, dto.UpdateJobRequest]{
			service: service,
			log:     log,
		},
		service: service,
	}
}

func (h *JobHandler) Search(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.Search(c.Request.Context(), c.Query("q")))
}

// @Summary Publish a job
// @Description Moves a draft or on-hold job to open
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID"
// @Router /jobs/{id}/publish [post]
func (h *JobHandler) Publish(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.Publish(c.Request.Context(), c.Param("id")))
}

// @Summary Close a job
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID"
// @Router /jobs/{id}/close [post]
func (h *JobHandler) Close(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.Close(c.Request.Context(), c.Param("id")))
}

func (h *JobHandler) GetStats(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.GetStats(c.Request.Context()))
}
