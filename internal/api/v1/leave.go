package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/leave"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/logger"
)

type LeaveHandler struct {
	crudHandler[*leave.Request, dto.CreateLeaveRequest, dto.UpdateLeaveRequest]
	service interfaces.LeaveService
}

func NewLeaveHandler(service interfaces.LeaveService, log *logger.Logger) *LeaveHandler {
	return &LeaveHandler{
		crudHandler: crudHandler[*leave.Request, dto.CreateLeaveRequest, dto.UpdateLeaveRequest]{
			service: service,
			log:     log,
		},
		service: service,
	}
}

// GetByEmployee serves /employees/:id/leave-requests
func (h *LeaveHandler) GetByEmployee(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.GetByEmployee(c.Request.Context(), c.Param("id")))
}

// @Summary Approve a pending leave request
// @Tags Leave
// @Accept json
// @Produce json
// @Param id path string true "Leave request ID"
// @Param request body dto.LeaveDecisionRequest true "Decision"
// @Router /leave-requests/{id}/approve [post]
func (h *LeaveHandler) Approve(c *gin.Context) {
	var req dto.LeaveDecisionRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	respond(c, h.log, http.StatusOK, h.service.Approve(c.Request.Context(), c.Param("id"), req))
}

// @Summary Reject a pending leave request
// @Tags Leave
// @Accept json
// @Produce json
// @Param id path string true "Leave request ID"
// @Param request body dto.LeaveDecisionRequest true "Decision"
// @Router /leave-requests/{id}/reject [post]
func (h *LeaveHandler) Reject(c *gin.Context) {
	var req dto.LeaveDecisionRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	respond(c, h.log, http.StatusOK, h.service.Reject(c.Request.Context(), c.Param("id"), req))
}

func (h *LeaveHandler) Cancel(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.Cancel(c.Request.Context(), c.Param("id")))
}

func (h *LeaveHandler) GetStats(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.GetStats(c.Request.Context()))
}
