package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quocthai179/my-succulent-store/chat"
	cartControllers "github.com/quocthai179/my-succulent-store/controllers/cart"
	chatControllers "github.com/quocthai179/my-succulent-store/controllers/chat"
	orderControllers "github.com/quocthai179/my-succulent-store/controllers/order"
	productControllers "github.com/quocthai179/my-succulent-store/controllers/product"
)

// SetupRoutes is the single entry-point that wires up the storefront
// route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, interp chat.Interpreter) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	products := r.Group("/products")
	{
		products.GET("", productControllers.ListProducts(db))
		products.GET("/categories", productControllers.ListCategories(db))
	}

	cart := r.Group("/cart")
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("/items", cartControllers.AddCartItem(db))
		cart.PATCH("/items/:item_id", cartControllers.UpdateCartItem(db))
		cart.DELETE("/items/:item_id", cartControllers.RemoveCartItem(db))
	}

	r.POST("/orders", orderControllers.CreateOrder(db))
	r.POST("/chat", chatControllers.HandleChat(db, interp))
}
