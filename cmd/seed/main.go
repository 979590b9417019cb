package main

import (
	"time"

	"github.com/simplyfresh/simplyfresh/internal/config"
	"github.com/simplyfresh/simplyfresh/internal/constants"
	"github.com/simplyfresh/simplyfresh/internal/logger"
	"github.com/simplyfresh/simplyfresh/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	price := func(v float64) models.Money {
		return models.NewMoneyFromDecimal(decimal.NewFromFloat(v))
	}

	// 添加商品
	products := []models.Product{
		{Name: "Apple", Category: constants.ProductCategoryFruits, PriceAmount: price(2.50), Image: "/images/products/apple.jpg", QuantityInStock: 120, IsActive: true, IsSpotlight: true},
		{Name: "Banana", Category: constants.ProductCategoryFruits, PriceAmount: price(1.20), Image: "/images/products/banana.jpg", QuantityInStock: 200, IsActive: true},
		{Name: "Mango", Category: constants.ProductCategoryFruits, PriceAmount: price(5.80), Image: "/images/products/mango.jpg", QuantityInStock: 60, IsActive: true, IsSpotlight: true},
		{Name: "Durian", Category: constants.ProductCategoryFruits, PriceAmount: price(28.00), Image: "/images/products/durian.jpg", QuantityInStock: 15, IsActive: true},
		{Name: "Spinach", Category: constants.ProductCategoryVegetables, PriceAmount: price(3.20), Image: "/images/products/spinach.jpg", QuantityInStock: 80, IsActive: true},
		{Name: "Carrot", Category: constants.ProductCategoryVegetables, PriceAmount: price(2.00), Image: "/images/products/carrot.jpg", QuantityInStock: 150, IsActive: true},
		{Name: "Kangkung", Category: constants.ProductCategoryVegetables, PriceAmount: price(1.80), Image: "/images/products/kangkung.jpg", QuantityInStock: 90, IsActive: true},
		{Name: "Fish", Category: constants.ProductCategorySeafood, PriceAmount: price(4.50), Image: "/images/products/fish.jpg", QuantityInStock: 50, IsActive: true, IsSpotlight: true},
		{Name: "Prawn", Category: constants.ProductCategorySeafood, PriceAmount: price(18.90), Image: "/images/products/prawn.jpg", QuantityInStock: 40, IsActive: true},
		{Name: "Squid", Category: constants.ProductCategorySeafood, PriceAmount: price(14.50), Image: "/images/products/squid.jpg", QuantityInStock: 35, IsActive: true},
		{Name: "Fresh Milk", Category: constants.ProductCategoryDairy, PriceAmount: price(7.90), Image: "/images/products/milk.jpg", QuantityInStock: 70, IsActive: true},
		{Name: "Cheddar Cheese", Category: constants.ProductCategoryDairy, PriceAmount: price(12.50), Image: "/images/products/cheese.jpg", QuantityInStock: 45, IsActive: true},
		{Name: "Butter", Category: constants.ProductCategoryDairy, PriceAmount: price(9.80), Image: "/images/products/butter.jpg", QuantityInStock: 55, IsActive: true},
		{Name: "Jasmine Rice 5kg", Category: constants.ProductCategoryPantry, PriceAmount: price(24.90), Image: "/images/products/rice.jpg", QuantityInStock: 100, IsActive: true},
		{Name: "Cooking Oil 2L", Category: constants.ProductCategoryPantry, PriceAmount: price(15.60), Image: "/images/products/oil.jpg", QuantityInStock: 85, IsActive: true},
		{Name: "Soy Sauce", Category: constants.ProductCategoryPantry, PriceAmount: price(4.20), Image: "/images/products/soy-sauce.jpg", QuantityInStock: 110, IsActive: true},
	}

	for _, p := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", p.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&p).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", p.Name, err)
			} else {
				stdLog.Printf("Created product: %s", p.Name)
			}
		} else {
			stdLog.Printf("Product already exists: %s", p.Name)
		}
	}

	// 添加优惠码
	promos := []models.PromoCode{
		{Code: "FRESH10", DiscountPercent: price(10), ExpirationDate: time.Now().AddDate(0, 3, 0), UsageLimit: 500, IsActive: true},
		{Code: "FRESH20", DiscountPercent: price(20), ExpirationDate: time.Now().AddDate(0, 1, 0), UsageLimit: 100, IsActive: true},
		{Code: "MERDEKA50", DiscountPercent: price(50), ExpirationDate: time.Date(2026, 9, 16, 0, 0, 0, 0, time.Local), UsageLimit: 30, IsActive: true},
	}

	for _, promo := range promos {
		var existing models.PromoCode
		if err := models.DB.Where("code = ?", promo.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&promo).Error; err != nil {
				stdLog.Printf("Failed to create promo code %s: %v", promo.Code, err)
			} else {
				stdLog.Printf("Created promo code: %s", promo.Code)
			}
		} else {
			stdLog.Printf("Promo code already exists: %s", promo.Code)
		}
	}

	stdLog.Println("Seed completed")
}
