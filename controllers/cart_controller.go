package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/florett/florett-backend/models"
	"github.com/florett/florett-backend/services"
)

// SessionHeader carries the client-chosen cart session identifier.
const SessionHeader = "X-Cart-Session"

// CartController exposes the session cart over HTTP.
type CartController struct {
	cartService services.CartService
}

// NewCartController creates a new CartController.
func NewCartController(cartService services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

func sessionID(ctx *gin.Context) (string, bool) {
	id := ctx.GetHeader(SessionHeader)
	if id == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Не указан идентификатор корзины"})
		return "", false
	}
	return id, true
}

// Get handles GET /cart.
func (cc *CartController) Get(ctx *gin.Context) {
	session, ok := sessionID(ctx)
	if !ok {
		return
	}

	view, svcErr := cc.cartService.Get(ctx.Request.Context(), session)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// AddItem handles POST /cart/items.
func (cc *CartController) AddItem(ctx *gin.Context) {
	session, ok := sessionID(ctx)
	if !ok {
		return
	}

	var req models.AddCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Заполните все обязательные поля"})
		return
	}

	view, svcErr := cc.cartService.Add(ctx.Request.Context(), session, req.BouquetID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// SetQuantity handles PATCH /cart/items/:bouquetId.
func (cc *CartController) SetQuantity(ctx *gin.Context) {
	session, ok := sessionID(ctx)
	if !ok {
		return
	}

	bouquetID, err := uuid.Parse(ctx.Param("bouquetId"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Товар не найден в корзине"})
		return
	}

	var req models.SetCartQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Заполните все обязательные поля"})
		return
	}

	view, svcErr := cc.cartService.SetQuantity(ctx.Request.Context(), session, bouquetID, req.Quantity)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// RemoveItem handles DELETE /cart/items/:bouquetId.
func (cc *CartController) RemoveItem(ctx *gin.Context) {
	session, ok := sessionID(ctx)
	if !ok {
		return
	}

	bouquetID, err := uuid.Parse(ctx.Param("bouquetId"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Товар не найден в корзине"})
		return
	}

	view, svcErr := cc.cartService.Remove(ctx.Request.Context(), session, bouquetID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// Clear handles DELETE /cart, 204 on success.
func (cc *CartController) Clear(ctx *gin.Context) {
	session, ok := sessionID(ctx)
	if !ok {
		return
	}

	if svcErr := cc.cartService.Clear(ctx.Request.Context(), session); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.Status(http.StatusNoContent)
}
