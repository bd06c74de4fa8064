package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/florett/florett-backend/models"
	"github.com/florett/florett-backend/services"
)

// BouquetController handles HTTP requests for the catalog.
type BouquetController struct {
	bouquetService services.BouquetService
}

// NewBouquetController creates a new BouquetController.
func NewBouquetController(bouquetService services.BouquetService) *BouquetController {
	return &BouquetController{bouquetService: bouquetService}
}

// List handles GET /bouquets. ?active=true narrows to the storefront view.
func (bc *BouquetController) List(ctx *gin.Context) {
	activeOnly := ctx.Query("active") == "true"

	bouquets, svcErr := bc.bouquetService.List(ctx.Request.Context(), activeOnly)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, bouquets)
}

// Get handles GET /bouquets/:id.
func (bc *BouquetController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Букет не найден"})
		return
	}

	bouquet, svcErr := bc.bouquetService.Get(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, bouquet)
}

// Create handles POST /bouquets (admin only).
func (bc *BouquetController) Create(ctx *gin.Context) {
	var req models.BouquetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Заполните все обязательные поля"})
		return
	}

	bouquet, svcErr := bc.bouquetService.Create(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, bouquet)
}

// Update handles PUT /bouquets/:id (admin only).
func (bc *BouquetController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Букет не найден"})
		return
	}

	var req models.BouquetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Заполните все обязательные поля"})
		return
	}

	bouquet, svcErr := bc.bouquetService.Update(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, bouquet)
}

// Delete handles DELETE /bouquets/:id (admin only), 204 on success.
func (bc *BouquetController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Букет не найден"})
		return
	}

	if svcErr := bc.bouquetService.Delete(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.Status(http.StatusNoContent)
}
