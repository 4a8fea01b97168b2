package http

import (
	"mediawatch-srv/internal/monitor"
	"mediawatch-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Run triggers one monitoring pass for a tenant.
// @Summary Run monitoring
// @Description Execute one change-detection run for the tenant's contacts
// @Tags Monitoring
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} response.Resp "Run summary"
// @Router /internal/api/v1/monitoring/{tenant_id}/run [post]
func (h *handler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	tenantID := c.Param("tenant_id")
	summary, err := h.uc.RunMonitoring(ctx, tenantID)
	if err != nil {
		if err == monitor.ErrTenantRequired {
			response.BadRequest(c, err.Error())
			return
		}
		h.l.Errorf(ctx, "internal.monitor.delivery.http.Run: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newRunResp(summary))
}
