package crud

import (
	"github.com/shopspring/decimal"

	"github.com/quocthai179/my-succulent-store/models"
)

// CartView is the cart payload shared by the cart and chat endpoints.
// Prices and totals serialize as strings (decimal default) so clients
// never see binary-float rounding.
type CartView struct {
	ID    uint              `json:"id"`
	Items []models.CartItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
}

func BuildCartView(cart *models.Cart) CartView {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return CartView{
		ID:    cart.ID,
		Items: items,
		Total: CalculateCartTotal(cart),
	}
}
