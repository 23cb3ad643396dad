package crud

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/quocthai179/my-succulent-store/models"
)

var sampleProducts = []models.Product{
	{
		Name:        "Sen đá Haworthia Zebra",
		Category:    "Haworthia",
		Description: "Lá sọc trắng nổi bật, phù hợp để bàn làm việc.",
		Price:       decimal.NewFromInt(75000),
	},
	{
		Name:        "Sen đá Echeveria Blue",
		Category:    "Echeveria",
		Description: "Tán lá xanh phấn, dáng hoa thị sang trọng.",
		Price:       decimal.NewFromInt(89000),
	},
	{
		Name:        "Chậu đất nung mini",
		Category:    "Chậu sen đá",
		Description: "Chậu đất nung thoát nước tốt, kích thước 10cm.",
		Price:       decimal.NewFromInt(32000),
	},
	{
		Name:        "Chậu gốm men trắng",
		Category:    "Chậu sen đá",
		Description: "Phù hợp phối set quà tặng, phong cách tối giản.",
		Price:       decimal.NewFromInt(65000),
	},
	{
		Name:        "Đá trang trí trắng",
		Category:    "Đồ trang trí",
		Description: "Gói 500g đá trang trí bề mặt, sạch và đẹp.",
		Price:       decimal.NewFromInt(25000),
	},
	{
		Name:        "Tượng thỏ mini",
		Category:    "Đồ trang trí",
		Description: "Phụ kiện trang trí giúp chậu sen đá sinh động hơn.",
		Price:       decimal.NewFromInt(29000),
	},
	{
		Name:        "Đất trộn sen đá",
		Category:    "Đất - phân bón - thuốc",
		Description: "Đất tơi xốp, giàu dinh dưỡng, thoát nước nhanh.",
		Price:       decimal.NewFromInt(42000),
	},
	{
		Name:        "Phân bón chậm tan",
		Category:    "Đất - phân bón - thuốc",
		Description: "Bổ sung dinh dưỡng lâu dài cho sen đá.",
		Price:       decimal.NewFromInt(35000),
	},
}

// SeedProducts inserts the sample catalog once; it is a no-op whenever
// the products table already has rows.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	products := make([]models.Product, len(sampleProducts))
	copy(products, sampleProducts)
	return db.Create(&products).Error
}
