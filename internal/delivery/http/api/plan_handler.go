package api

import (
	"net/http"

	"mc-creative-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	planUC domain.PlanUsecase
}

func NewPlanHandler(public *gin.RouterGroup, planUC domain.PlanUsecase) {
	handler := &PlanHandler{
		planUC: planUC,
	}

	public.GET("/plans", handler.ListPlans)
}

// ListPlans godoc
// @Summary      List Subscription Plans
// @Description  Return the three subscription tiers with payment links from configuration.
// @Tags         plans
// @Produce      json
// @Success      200  {object}  map[string][]domain.PlanTier
// @Router       /api/plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": h.planUC.ListPlans()})
}
