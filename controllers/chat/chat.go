package chatControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quocthai179/my-succulent-store/chat"
	"github.com/quocthai179/my-succulent-store/crud"
)

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	CartID  uint   `json:"cart_id"`
}

// POST /chat
//
// A failed turn against the language-model backend does not roll back
// tool calls that already ran; the turn is best-effort, not atomic.
func HandleChat(db *gorm.DB, interp chat.Interpreter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		cart, err := crud.GetOrCreateCart(db, req.CartID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		response, err := interp.Run(c.Request.Context(), req.Message, cart)
		if err != nil {
			if errors.Is(err, chat.ErrExternalService) {
				c.JSON(http.StatusBadGateway, gin.H{"error": "Assistant is unavailable"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Chat turn failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"response": response,
			"cart_id":  cart.ID,
			"cart":     crud.BuildCartView(cart),
		})
	}
}
