package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/logger"
	"github.com/staffdesk/staffdesk/internal/types"
)

// respond writes the envelope. Failed envelopes get the status of their
// error category.
func respond[T any](c *gin.Context, log *logger.Logger, status int, resp types.Response[T]) {
	if !resp.Success {
		status = ierr.HTTPStatusFromErr(resp.Cause())
		log.Debugw("request failed",
			"path", c.FullPath(),
			"status", status,
			"error", resp.Error,
		)
	}
	c.JSON(status, resp)
}

func bindJSON(c *gin.Context, log *logger.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		log.Warnw("failed to bind request body", "path", c.FullPath(), "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return false
	}
	return true
}

// listQuery is the query string of list endpoints:
// ?page=2&limit=20&order_by=name&ascending=true&filter=status:eq:active
type listQuery struct {
	types.Pagination
	Filters []string `form:"filter"`
}

// bindList returns a nil pagination when neither page nor limit was given
func bindList(c *gin.Context, log *logger.Logger) (*types.Pagination, []*types.Filter, bool) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		log.Warnw("failed to bind query", "path", c.FullPath(), "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return nil, nil, false
	}

	filters, err := types.ParseFilters(q.Filters)
	if err != nil {
		log.Warnw("failed to parse filters", "filters", q.Filters, "error", err)
		c.Error(err)
		return nil, nil, false
	}

	_, hasPage := c.GetQuery("page")
	_, hasLimit := c.GetQuery("limit")
	if !hasPage && !hasLimit {
		return nil, filters, true
	}

	p := q.Pagination
	if !hasPage {
		p.Page = types.DefaultPage
	}
	if !hasLimit {
		p.Limit = types.DefaultLimit
	}
	return &p, filters, true
}

// crudHandler serves the verbs every entity shares
type crudHandler[T any, C any, U any] struct {
	service interfaces.CRUDService[T, C, U]
	log     *logger.Logger
}

func (h *crudHandler[T, C, U]) List(c *gin.Context) {
	pagination, filters, ok := bindList(c, h.log)
	if !ok {
		return
	}
	respond(c, h.log, http.StatusOK, h.service.GetAll(c.Request.Context(), pagination, filters))
}

func (h *crudHandler[T, C, U]) Get(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.GetByID(c.Request.Context(), c.Param("id")))
}

func (h *crudHandler[T, C, U]) Create(c *gin.Context) {
	var req C
	if !bindJSON(c, h.log, &req) {
		return
	}
	respond(c, h.log, http.StatusCreated, h.service.Create(c.Request.Context(), req))
}

func (h *crudHandler[T, C, U]) Update(c *gin.Context) {
	var req U
	if !bindJSON(c, h.log, &req) {
		return
	}
	respond(c, h.log, http.StatusOK, h.service.Update(c.Request.Context(), c.Param("id"), req))
}

func (h *crudHandler[T, C, U]) Delete(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.Delete(c.Request.Context(), c.Param("id")))
}

// Register mounts the shared verbs on group
func (h *crudHandler[T, C, U]) Register(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PATCH("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}
