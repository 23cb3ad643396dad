package crud

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/quocthai179/my-succulent-store/models"
)

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmptyCart        = errors.New("cart is empty")
)

// GetProducts returns the catalog, optionally filtered by exact category.
func GetProducts(db *gorm.DB, category string) ([]models.Product, error) {
	query := db.Order("id")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	products := []models.Product{}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetCategories returns the distinct product categories in ascending order.
func GetCategories(db *gorm.DB) ([]string, error) {
	categories := []string{}
	err := db.Model(&models.Product{}).
		Distinct().
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// FindProducts does a case-insensitive substring search on the product
// name. An empty query matches every product; no match is an empty
// slice, never an error.
func FindProducts(db *gorm.DB, query string) ([]models.Product, error) {
	products := []models.Product{}
	err := db.Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%").
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetOrCreateCart resolves cartID to an existing cart, or creates a new
// empty one when cartID is zero or unknown.
func GetOrCreateCart(db *gorm.DB, cartID uint) (*models.Cart, error) {
	if cartID != 0 {
		cart, err := loadCart(db, cartID)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, ErrCartNotFound) {
			return nil, err
		}
	}
	cart := models.Cart{}
	if err := db.Create(&cart).Error; err != nil {
		return nil, err
	}
	cart.Items = []models.CartItem{}
	return &cart, nil
}

// AddToCart adds quantity of a product to the cart. If the product is
// already in the cart its quantity is incremented; the cart never holds
// two rows for the same product. The product id is not validated here.
func AddToCart(db *gorm.DB, cart *models.Cart, productID uint, quantity int) (*models.Cart, error) {
	var item models.CartItem
	err := db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
	switch {
	case err == nil:
		if err := db.Model(&item).Update("quantity", item.Quantity+quantity).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
		if err := db.Omit(clause.Associations).Create(&item).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return loadCart(db, cart.ID)
}

// UpdateCartItem overwrites the item quantity (absolute, not additive)
// and returns the owning cart.
func UpdateCartItem(db *gorm.DB, itemID uint, quantity int) (*models.Cart, error) {
	var item models.CartItem
	if err := db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	if err := db.Model(&item).Update("quantity", quantity).Error; err != nil {
		return nil, err
	}
	return loadCart(db, item.CartID)
}

// RemoveCartItem deletes the item and returns the owning cart.
func RemoveCartItem(db *gorm.DB, itemID uint) (*models.Cart, error) {
	var item models.CartItem
	if err := db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	if err := db.Delete(&item).Error; err != nil {
		return nil, err
	}
	return loadCart(db, item.CartID)
}

// CalculateCartTotal sums price x quantity over the cart items in exact
// decimal arithmetic. An empty cart totals to zero.
func CalculateCartTotal(cart *models.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart.Items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// CreateOrderFromCart snapshots the cart into a new pending order,
// copying each product's current price into the order items. The cart
// itself is left untouched; callers decide whether an empty cart may be
// ordered.
func CreateOrderFromCart(db *gorm.DB, cart *models.Cart) (*models.Order, error) {
	order := models.Order{
		Ref:    generateOrderRef(),
		Status: models.OrderStatusPending,
		Total:  CalculateCartTotal(cart),
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return err
		}
		for _, item := range cart.Items {
			orderItem := models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Product.Price,
			}
			if err := tx.Omit(clause.Associations).Create(&orderItem).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loadOrder(db, order.ID)
}

// loadCart reloads a cart with its items (insertion order) and their
// products.
func loadCart(db *gorm.DB, cartID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("cart_items.id") }).
		Preload("Items.Product").
		First(&cart, cartID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

func loadOrder(db *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	err := db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("order_items.id") }).
		Preload("Items.Product").
		First(&order, orderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Generate unique order reference, e.g. 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
