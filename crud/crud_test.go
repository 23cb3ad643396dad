package crud

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quocthai179/my-succulent-store/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	require.NoError(t, SeedProducts(db))
	return db
}

func productByName(t *testing.T, db *gorm.DB, name string) models.Product {
	t.Helper()
	var product models.Product
	require.NoError(t, db.Where("name = ?", name).First(&product).Error)
	return product
}

func TestSeedProductsIdempotent(t *testing.T) {
	db := newTestDB(t)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	require.EqualValues(t, 8, count)

	require.NoError(t, SeedProducts(db))
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	require.EqualValues(t, 8, count)
}

func TestGetProductsCategoryFilter(t *testing.T) {
	db := newTestDB(t)

	all, err := GetProducts(db, "")
	require.NoError(t, err)
	require.Len(t, all, 8)

	pots, err := GetProducts(db, "Chậu sen đá")
	require.NoError(t, err)
	require.Len(t, pots, 2)
	for _, product := range pots {
		require.Equal(t, "Chậu sen đá", product.Category)
	}
}

func TestGetCategories(t *testing.T) {
	db := newTestDB(t)

	categories, err := GetCategories(db)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		"Haworthia",
		"Echeveria",
		"Chậu sen đá",
		"Đồ trang trí",
		"Đất - phân bón - thuốc",
	}, categories)
	require.True(t, sort.StringsAreSorted(categories))
}

func TestFindProducts(t *testing.T) {
	db := newTestDB(t)

	products, err := FindProducts(db, "haworthia")
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Sen đá Haworthia Zebra", products[0].Name)

	// Empty query is a substring of every name
	products, err = FindProducts(db, "")
	require.NoError(t, err)
	require.Len(t, products, 8)

	// No match is an empty slice, not an error
	products, err = FindProducts(db, "không tồn tại")
	require.NoError(t, err)
	require.Empty(t, products)
}

func TestGetOrCreateCart(t *testing.T) {
	db := newTestDB(t)

	cart, err := GetOrCreateCart(db, 0)
	require.NoError(t, err)
	require.NotZero(t, cart.ID)
	require.Empty(t, cart.Items)

	same, err := GetOrCreateCart(db, cart.ID)
	require.NoError(t, err)
	require.Equal(t, cart.ID, same.ID)

	// Unknown id falls back to a fresh cart
	fresh, err := GetOrCreateCart(db, cart.ID+1000)
	require.NoError(t, err)
	require.NotEqual(t, cart.ID, fresh.ID)
}

func TestAddToCartMergesQuantity(t *testing.T) {
	db := newTestDB(t)
	product := productByName(t, db, "Sen đá Haworthia Zebra")

	cart, err := GetOrCreateCart(db, 0)
	require.NoError(t, err)

	cart, err = AddToCart(db, cart, product.ID, 2)
	require.NoError(t, err)
	cart, err = AddToCart(db, cart, product.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	require.Equal(t, 5, cart.Items[0].Quantity)
	require.Equal(t, product.Name, cart.Items[0].Product.Name)
}

// Pins the permissive legacy behavior: AddToCart accepts a product id
// that references nothing.
func TestAddToCartUnknownProduct(t *testing.T) {
	db := newTestDB(t)

	cart, err := GetOrCreateCart(db, 0)
	require.NoError(t, err)

	cart, err = AddToCart(db, cart, 9999, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 1, cart.Items[0].Quantity)
}

func TestUpdateCartItemAbsolute(t *testing.T) {
	db := newTestDB(t)
	product := productByName(t, db, "Sen đá Echeveria Blue")

	cart, err := GetOrCreateCart(db, 0)
	require.NoError(t, err)
	cart, err = AddToCart(db, cart, product.ID, 2)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = UpdateCartItem(db, itemID, 5)
	require.NoError(t, err)
	require.Equal(t, 5, cart.Items[0].Quantity)

	// Overwrite, not add
	cart, err = UpdateCartItem(db, itemID, 1)
	require.NoError(t, err)
	require.Equal(t, 1, cart.Items[0].Quantity)
}

func TestUpdateCartItemNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := UpdateCartItem(db, 12345, 2)
	require.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestRemoveCartItem(t *testing.T) {
	db := newTestDB(t)
	product := productByName(t, db, "Chậu đất nung mini")

	cart, err := GetOrCreateCart(db, 0)
	require.NoError(t, err)
	cart, err = AddToCart(db, cart, product.ID, 1)
	require.NoError(t, err)

	cart, err = RemoveCartItem(db, cart.Items[0].ID)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
}

func TestRemoveCartItemNotFound(t *testing.T) {
	db := newTestDB(t)
	product := productByName(t, db, "Chậu đất nung mini")

	cart, err := GetOrCreateCart(db, 0)
	require.NoError(t, err)
	cart, err = AddToCart(db, cart, product.ID, 1)
	require.NoError(t, err)

	_, err = RemoveCartItem(db, 12345)
	require.ErrorIs(t, err, ErrCartItemNotFound)

	// Cart is unchanged
	cart, err = GetOrCreateCart(db, cart.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
}

func TestCalculateCartTotal(t *testing.T) {
	db := newTestDB(t)
	// 75000 and 65000 in the seed catalog
	zebra := productByName(t, db, "Sen đá Haworthia Zebra")
	pot := productByName(t, db, "Chậu gốm men trắng")

	cart, err := GetOrCreateCart(db, 0)
	require.NoError(t, err)
	require.True(t, CalculateCartTotal(cart).Equal(decimal.Zero))

	cart, err = AddToCart(db, cart, zebra.ID, 2)
	require.NoError(t, err)
	cart, err = AddToCart(db, cart, pot.ID, 1)
	require.NoError(t, err)

	require.True(t, CalculateCartTotal(cart).Equal(decimal.NewFromInt(215000)))
}

func TestCreateOrderSnapshotLeavesCart(t *testing.T) {
	db := newTestDB(t)
	product := productByName(t, db, "Sen đá Haworthia Zebra")

	cart, err := GetOrCreateCart(db, 0)
	require.NoError(t, err)
	cart, err = AddToCart(db, cart, product.ID, 3)
	require.NoError(t, err)

	order, err := CreateOrderFromCart(db, cart)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.NotEmpty(t, order.Ref)
	require.True(t, order.Total.Equal(product.Price.Mul(decimal.NewFromInt(3))))
	require.Len(t, order.Items, 1)
	require.Equal(t, 3, order.Items[0].Quantity)
	require.True(t, order.Items[0].Price.Equal(product.Price))

	// Mutating the cart afterwards must not touch the order
	cart, err = AddToCart(db, cart, product.ID, 4)
	require.NoError(t, err)

	reloaded, err := loadOrder(db, order.ID)
	require.NoError(t, err)
	require.True(t, reloaded.Total.Equal(order.Total))
	require.Len(t, reloaded.Items, 1)
	require.Equal(t, 3, reloaded.Items[0].Quantity)

	// The cart is not cleared by materialization
	cart, err = GetOrCreateCart(db, cart.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 7, cart.Items[0].Quantity)
}

// Nothing stops a second order from the same cart; pinned on purpose.
func TestCreateOrderTwiceFromSameCart(t *testing.T) {
	db := newTestDB(t)
	product := productByName(t, db, "Tượng thỏ mini")

	cart, err := GetOrCreateCart(db, 0)
	require.NoError(t, err)
	cart, err = AddToCart(db, cart, product.ID, 1)
	require.NoError(t, err)

	first, err := CreateOrderFromCart(db, cart)
	require.NoError(t, err)
	second, err := CreateOrderFromCart(db, cart)
	require.NoError(t, err)

	require.NotEqual(t, first.ID, second.ID)
	require.NotEqual(t, first.Ref, second.Ref)
	require.True(t, first.Total.Equal(second.Total))
}
