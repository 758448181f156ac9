package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/training"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/logger"
)

type TrainingHandler struct {
	crudHandler[*training.Program, dto.CreateTrainingRequest, dto.UpdateTrainingRequest]
	service interfaces.TrainingService
}

func NewTrainingHandler(service interfaces.TrainingService, log *logger.Logger) *TrainingHandler {
	return &TrainingHandler{
		crudHandler: crudHandler[*training.Program, dto.CreateTrainingRequest, dto.UpdateTrainingRequest]{
			service: service,
			log:     log,
		},
		service: service,
	}
}

// @Summary Enroll an employee on a training program
// @Tags Training
// @Accept json
// @Produce json
// @Param id path string true "Training program ID"
// @Param request body dto.EnrollRequest true "Employee"
// @Router /trainings/{id}/enrollments [post]
func (h *TrainingHandler) Enroll(c *gin.Context) {
	var req dto.EnrollRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	respond(c, h.log, http.StatusCreated, h.service.Enroll(c.Request.Context(), c.Param("id"), req))
}

func (h *TrainingHandler) GetEnrollments(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.GetEnrollments(c.Request.Context(), c.Param("id")))
}

// CompleteEnrollment serves /enrollments/:id/complete. The body is optional.
func (h *TrainingHandler) CompleteEnrollment(c *gin.Context) {
	var req dto.CompleteEnrollmentRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, h.log, &req) {
		return
	}
	respond(c, h.log, http.StatusOK, h.service.CompleteEnrollment(c.Request.Context(), c.Param("id"), req))
}

func (h *TrainingHandler) GetStats(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.GetStats(c.Request.Context()))
}
