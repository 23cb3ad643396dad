package chat

import (
	"encoding/json"

	"github.com/quocthai179/my-succulent-store/crud"
	"github.com/quocthai179/my-succulent-store/models"
)

// cartSummary is the compact cart rendering handed to the user (simple
// parser) and to the planner (show_cart tool). Prices are plain strings.
type cartSummary struct {
	ID    uint          `json:"id"`
	Items []itemSummary `json:"items"`
	Total string        `json:"total"`
}

type itemSummary struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type productSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
}

func summarizeCart(cart *models.Cart) cartSummary {
	items := make([]itemSummary, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, itemSummary{
			Name:     item.Product.Name,
			Quantity: item.Quantity,
			Price:    item.Product.Price.String(),
		})
	}
	return cartSummary{
		ID:    cart.ID,
		Items: items,
		Total: crud.CalculateCartTotal(cart).String(),
	}
}

func renderCart(cart *models.Cart) string {
	payload, err := json.Marshal(summarizeCart(cart))
	if err != nil {
		return "{}"
	}
	return string(payload)
}
