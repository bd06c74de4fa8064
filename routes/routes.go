package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/florett/florett-backend/controllers"
)

// Controllers bundles everything Register needs to wire up.
type Controllers struct {
	Auth      *controllers.AuthController
	Bouquets  *controllers.BouquetController
	Orders    *controllers.OrderController
	Reviews   *controllers.ReviewController
	Analytics *controllers.AnalyticsController
	Cart      *controllers.CartController
}

// Register sets up all routes. adminOnly guards the back-office endpoints,
// loginLimiter slows down password guessing on /auth/login.
func Register(r *gin.Engine, c Controllers, adminOnly, loginLimiter gin.HandlerFunc) {
	r.POST("/auth/login", loginLimiter, c.Auth.Login)

	bouquets := r.Group("/bouquets")
	bouquets.GET("", c.Bouquets.List)
	bouquets.GET("/:id", c.Bouquets.Get)

	bouquetAdmin := bouquets.Group("", adminOnly)
	bouquetAdmin.POST("", c.Bouquets.Create)
	bouquetAdmin.PUT("/:id", c.Bouquets.Update)
	bouquetAdmin.DELETE("/:id", c.Bouquets.Delete)

	reviews := r.Group("/reviews")
	reviews.GET("", c.Reviews.List)
	reviews.POST("", c.Reviews.Create)

	reviewAdmin := reviews.Group("", adminOnly)
	reviewAdmin.PATCH("/:id/approve", c.Reviews.Approve)
	reviewAdmin.PUT("/:id", c.Reviews.Update)
	reviewAdmin.DELETE("/:id", c.Reviews.Delete)

	orders := r.Group("/orders")
	orders.POST("", c.Orders.Create)

	orderAdmin := orders.Group("", adminOnly)
	orderAdmin.GET("", c.Orders.List)
	orderAdmin.GET("/:id", c.Orders.Get)
	orderAdmin.PATCH("/:id/status", c.Orders.UpdateStatus)

	analytics := r.Group("/analytics", adminOnly)
	analytics.GET("/summary", c.Analytics.Summary)
	analytics.GET("/revenue", c.Analytics.Revenue)
	analytics.GET("/popular-bouquets", c.Analytics.PopularBouquets)

	cart := r.Group("/cart")
	cart.GET("", c.Cart.Get)
	cart.POST("/items", c.Cart.AddItem)
	cart.PATCH("/items/:bouquetId", c.Cart.SetQuantity)
	cart.DELETE("/items/:bouquetId", c.Cart.RemoveItem)
	cart.DELETE("", c.Cart.Clear)
}
