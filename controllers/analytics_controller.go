package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/florett/florett-backend/services"
)

// AnalyticsController serves the admin dashboard aggregations.
type AnalyticsController struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController.
func NewAnalyticsController(analyticsService services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// Summary handles GET /analytics/summary (admin only).
func (ac *AnalyticsController) Summary(ctx *gin.Context) {
	summary, svcErr := ac.analyticsService.Summary(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// Revenue handles GET /analytics/revenue?days=N (admin only).
func (ac *AnalyticsController) Revenue(ctx *gin.Context) {
	days, _ := strconv.Atoi(ctx.DefaultQuery("days", "30"))

	points, svcErr := ac.analyticsService.Revenue(ctx.Request.Context(), days)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, points)
}

// PopularBouquets handles GET /analytics/popular-bouquets?limit=K (admin only).
func (ac *AnalyticsController) PopularBouquets(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "5"))

	popular, svcErr := ac.analyticsService.PopularBouquets(ctx.Request.Context(), limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, popular)
}
