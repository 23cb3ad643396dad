package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quocthai179/my-succulent-store/crud"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type CartItemUpdateInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GET /cart?cart_id=
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := parseCartID(c)
		if !ok {
			return
		}
		cart, err := crud.GetOrCreateCart(db, cartID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, crud.BuildCartView(cart))
	}
}

// POST /cart/items?cart_id=
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := parseCartID(c)
		if !ok {
			return
		}
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		cart, err := crud.GetOrCreateCart(db, cartID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		cart, err = crud.AddToCart(db, cart, input.ProductID, input.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusOK, crud.BuildCartView(cart))
	}
}

// PATCH /cart/items/:item_id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, ok := parseItemID(c)
		if !ok {
			return
		}
		var input CartItemUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		cart, err := crud.UpdateCartItem(db, itemID, input.Quantity)
		if err != nil {
			if errors.Is(err, crud.ErrCartItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, crud.BuildCartView(cart))
	}
}

// DELETE /cart/items/:item_id
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, ok := parseItemID(c)
		if !ok {
			return
		}
		cart, err := crud.RemoveCartItem(db, itemID)
		if err != nil {
			if errors.Is(err, crud.ErrCartItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
			return
		}
		c.JSON(http.StatusOK, crud.BuildCartView(cart))
	}
}

// parseCartID reads the optional cart_id query param; zero means "no
// cart yet".
func parseCartID(c *gin.Context) (uint, bool) {
	raw := c.Query("cart_id")
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart_id"})
		return 0, false
	}
	return uint(id), true
}

func parseItemID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return 0, false
	}
	return uint(id), true
}
