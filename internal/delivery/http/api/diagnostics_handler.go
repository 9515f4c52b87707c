package api

import (
	"net/http"

	"mc-creative-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DiagnosticsHandler struct {
	diagUC domain.DiagnosticsUsecase
}

func NewDiagnosticsHandler(root *gin.RouterGroup, diagUC domain.DiagnosticsUsecase) {
	handler := &DiagnosticsHandler{
		diagUC: diagUC,
	}

	root.GET("/test", handler.Snapshot)
}

// Snapshot godoc
// @Summary      Storage Diagnostics
// @Description  Report storage connectivity and configuration presence. Always returns 200.
// @Tags         diagnostics
// @Produce      json
// @Success      200  {object}  domain.DiagnosticsReport
// @Router       /test [get]
func (h *DiagnosticsHandler) Snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.diagUC.Snapshot(c.Request.Context()))
}
