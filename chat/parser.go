package chat

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/quocthai179/my-succulent-store/crud"
	"github.com/quocthai179/my-succulent-store/models"
)

// Each "<digits> <run up to the next comma>" pair is read as
// "quantity, product name fragment".
var orderLinePattern = regexp.MustCompile(`(?i)(\d+)\s+([^,]+)`)

// SimpleParser is the deterministic chat strategy used when no language
// model is configured. It scans the message for quantity/name pairs and
// adds the first catalog match for each one — first match wins, no
// disambiguation.
type SimpleParser struct {
	db *gorm.DB
}

func NewSimpleParser(db *gorm.DB) *SimpleParser {
	return &SimpleParser{db: db}
}

func (p *SimpleParser) Run(_ context.Context, message string, cart *models.Cart) (string, error) {
	var responses []string
	for _, match := range orderLinePattern.FindAllStringSubmatch(message, -1) {
		qty, name := match[1], match[2]
		products, err := crud.FindProducts(p.db, strings.TrimSpace(name))
		if err != nil {
			return "", err
		}
		if len(products) == 0 {
			responses = append(responses, fmt.Sprintf("Không tìm thấy sản phẩm phù hợp với '%s'.", name))
			continue
		}
		quantity, err := strconv.Atoi(qty)
		if err != nil {
			return "", err
		}
		fresh, err := crud.AddToCart(p.db, cart, products[0].ID, quantity)
		if err != nil {
			return "", err
		}
		*cart = *fresh
		responses = append(responses, fmt.Sprintf("Đã thêm %s x %s vào giỏ hàng.", qty, products[0].Name))
	}
	if len(responses) == 0 {
		responses = append(responses, "Bạn muốn mua sản phẩm nào? Hãy cho tôi biết tên và số lượng.")
	}
	responses = append(responses, fmt.Sprintf("Giỏ hàng hiện tại: %s.", renderCart(cart)))
	return strings.Join(responses, " "), nil
}
