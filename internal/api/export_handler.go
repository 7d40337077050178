package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
)

//go:generate mockery --name ExportService --output ../mocks
type ExportService interface {
	RequestExport(ctx context.Context, tenantID string) (string, error)
}

type ExportHandler struct {
	*BaseHandler
	service ExportService
}

func NewExportHandler(base *BaseHandler, service ExportService) *ExportHandler {
	return &ExportHandler{BaseHandler: base, service: service}
}

// RequestExport godoc
// @Summary Export the menu
// @Description Queue a JSON snapshot of the tenant catalog; it is written to object storage under the returned key
// @Tags tenants
// @Produce json
// @Security BearerAuth
// @Param t path string true "Tenant ID"
// @Success 202 {object} dto.ExportResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /tenants/{t}/exports [post]
func (h *ExportHandler) RequestExport(c *gin.Context) {
	key, err := h.service.RequestExport(h.RequestCtx(c), c.Param("t"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.ExportResponse{Key: key, Status: "queued"})
}
