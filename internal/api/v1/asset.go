package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/asset"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/logger"
)

type AssetHandler struct {
	crudHandler[*asset.Asset, dto.CreateAssetRequest, dto.UpdateAssetRequest]
	service interfaces.AssetService
}

func NewAssetHandler(service interfaces.AssetService, log *logger.Logger) *AssetHandler {
	return &AssetHandler{
		crudHandler: crudHandler[*asset.Asset, dto.CreateAssetRequest, dto.UpdateAssetRequest]{
			service: service,
			log:     log,
		},
		service: service,
	}
}

func (h *AssetHandler) Assign(c *gin.Context) {
	var req dto.AssignAssetRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	respond(c, h.log, http.StatusOK, h.service.Assign(c.Request.Context(), c.Param("id"), req))
}

func (h *AssetHandler) Unassign(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.Unassign(c.Request.Context(), c.Param("id")))
}

func (h *AssetHandler) GetStats(c *gin.Context) {
	respond(c, h.log, http.StatusOK, h.service.GetStats(c.Request.Context()))
}
