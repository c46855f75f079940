package main

import (
	"fmt"

	"github.com/reloop-next/internal/config"
	"github.com/reloop-next/internal/constants"
	"github.com/reloop-next/internal/logger"
	"github.com/reloop-next/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
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

	// 添加演示账号
	users := []struct {
		Email       string
		Password    string
		DisplayName string
		Role        string
	}{
		{Email: "seller@example.com", Password: "seller123", DisplayName: "二手优选小店", Role: constants.UserRoleSeller},
		{Email: "vintage@example.com", Password: "seller123", DisplayName: "复古器材工作室", Role: constants.UserRoleSeller},
		{Email: "buyer@example.com", Password: "buyer123", DisplayName: "demo-buyer", Role: constants.UserRoleCustomer},
	}

	userIDs := map[string]uint{}
	for _, item := range users {
		var existing models.User
		if err := models.DB.Where("email = ?", item.Email).First(&existing).Error; err == nil {
			userIDs[item.Email] = existing.ID
			stdLog.Printf("User already exists: %s", item.Email)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(item.Password), bcrypt.DefaultCost)
		if err != nil {
			stdLog.Printf("Failed to hash password for %s: %v", item.Email, err)
			continue
		}
		user := models.User{
			Email:        item.Email,
			PasswordHash: string(hash),
			DisplayName:  item.DisplayName,
			Role:         item.Role,
			Status:       constants.UserStatusActive,
		}
		if err := models.DB.Create(&user).Error; err != nil {
			stdLog.Printf("Failed to create user %s: %v", item.Email, err)
			continue
		}
		userIDs[item.Email] = user.ID
		stdLog.Printf("Created user: %s (%s)", item.Email, item.Role)
	}

	sellerID := userIDs["seller@example.com"]
	vintageID := userIDs["vintage@example.com"]

	// 添加二手商品
	products := []models.Product{
		{
			SellerID:    sellerID,
			Title:       "索尼 WH-1000XM4 降噪耳机",
			Description: "个人自用一年，成色良好，附原装耳罩与收纳盒。",
			Category:    "electronics",
			Condition:   constants.ProductConditionGood,
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(899.00)),
			Colors:      models.StringArray([]string{"black", "silver"}),
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800",
			}),
			IsActive:  true,
			SortOrder: 300,
		},
		{
			SellerID:    sellerID,
			Title:       "Kindle Paperwhite 4 电子书阅读器",
			Description: "屏幕无划痕，电池健康，带磁吸保护套。",
			Category:    "electronics",
			Condition:   constants.ProductConditionLikeNew,
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(399.00)),
			Colors:      models.StringArray([]string{"black"}),
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1510017803434-a899398421b3?w=800",
			}),
			IsActive:  true,
			SortOrder: 280,
		},
		{
			SellerID:    vintageID,
			Title:       "佳能 AE-1 胶片相机",
			Description: "经典机械胶片机，快门正常，镜头有轻微灰尘不影响成像。",
			Category:    "camera",
			Condition:   constants.ProductConditionFair,
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(1280.00)),
			Colors:      models.StringArray([]string{"default"}),
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1495707902641-75cac588d2e9?w=800",
			}),
			IsActive:  true,
			SortOrder: 260,
		},
		{
			SellerID:    vintageID,
			Title:       "宜家 POÄNG 扶手椅",
			Description: "搬家出售，实木框架无损伤，坐垫可拆洗。",
			Category:    "furniture",
			Condition:   constants.ProductConditionGood,
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(199.00)),
			Colors:      models.StringArray([]string{"birch", "brown"}),
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?w=800",
			}),
			IsActive:  true,
			SortOrder: 240,
		},
		{
			SellerID:    sellerID,
			Title:       "任天堂 Switch 主机（续航版）",
			Description: "已贴钢化膜，含底座与双手柄，无维修史。",
			Category:    "electronics",
			Condition:   constants.ProductConditionGood,
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(1350.00)),
			Colors:      models.StringArray([]string{"neon", "gray"}),
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1578303512597-81e6cc155b3e?w=800",
			}),
			IsActive:  true,
			SortOrder: 220,
		},
		{
			SellerID:    vintageID,
			Title:       "无印良品 落地灯（已下架演示）",
			Description: "用于演示下架商品在前台不可见。",
			Category:    "furniture",
			Condition:   constants.ProductConditionFair,
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(89.00)),
			Colors:      models.StringArray([]string{"default"}),
			IsActive:    false,
			SortOrder:   100,
		},
	}

	for _, prod := range products {
		if prod.SellerID == 0 {
			stdLog.Printf("Skip product %s: seller missing", prod.Title)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("seller_id = ? AND title = ?", prod.SellerID, prod.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Title, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Title)
			}
		} else {
			existing.Description = prod.Description
			existing.Category = prod.Category
			existing.Condition = prod.Condition
			existing.PriceAmount = prod.PriceAmount
			existing.Colors = prod.Colors
			existing.Images = prod.Images
			existing.IsActive = prod.IsActive
			existing.SortOrder = prod.SortOrder
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Title, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Title)
			}
		}
	}

	fmt.Println("\n✅ Demo data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 2 Sellers + 1 Customer")
	fmt.Println("- 6 Products (1 inactive)")
	fmt.Println("Accounts: seller@example.com / seller123, buyer@example.com / buyer123")
}
