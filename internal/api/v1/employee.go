package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/employee"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/logger"
)

type EmployeeHandler struct {
	crudHandler[*employee.Employee, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest]
	service interfaces.EmployeeService
}

func NewEmployeeHandler(service interfaces.EmployeeService, log *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		crudHandler: crudHandler[*employee.Employee, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest]{
			service: service,
			log:     log,
		},
		service: service,
	}
}

// @Summary Search employees
// @Description Case-insensitive match on name, email, department and position
// @Tags Employees
// @Produce json
// @Param q query string true "Search term"
// @Router /employees/search [get]
func (h *EmployeeHandler) Search(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.Search(c.Request.Context(), c.Query("q")))
}

func (h *EmployeeHandler) GetByDepartment(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.GetByDepartment(c.Request.Context(), c.Param("department")))
}

func (h *EmployeeHandler) GetStats(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.GetStats(c.Request.Context()))
}
