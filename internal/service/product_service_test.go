package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/reloop-next/internal/constants"
	"github.com/reloop-next/internal/models"
	"github.com/reloop-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) *ProductService {
	t.Helper()
	dsn := fmt.Sprintf("file:product_service_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewProductService(repository.NewProductRepository(db))
}

func TestProductCreateValidation(t *testing.T) {
	svc := setupProductServiceTest(t)

	if _, err := svc.Create(CreateProductInput{SellerID: 1, Title: "  ", PriceAmount: decimal.NewFromInt(10)}); !errors.Is(err, ErrInvalidProductInput) {
		t.Fatalf("expected invalid input for empty title, got: %v", err)
	}
	if _, err := svc.Create(CreateProductInput{SellerID: 1, Title: "旧书", PriceAmount: decimal.Zero}); !errors.Is(err, ErrProductPriceInvalid) {
		t.Fatalf("expected price invalid, got: %v", err)
	}
	if _, err := svc.Create(CreateProductInput{SellerID: 1, Title: "旧书", PriceAmount: decimal.NewFromInt(10), Condition: "broken"}); !errors.Is(err, ErrInvalidProductInput) {
		t.Fatalf("expected invalid condition, got: %v", err)
	}
	if _, err := svc.Create(CreateProductInput{SellerID: 0, Title: "旧书", PriceAmount: decimal.NewFromInt(10)}); !errors.Is(err, ErrProductForbidden) {
		t.Fatalf("expected forbidden for missing seller, got: %v", err)
	}

	product, err := svc.Create(CreateProductInput{SellerID: 1, Title: " 九成新风扇 ", PriceAmount: decimal.NewFromFloat(59.999)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.Title != "九成新风扇" {
		t.Fatalf("title want trimmed, got %q", product.Title)
	}
	if product.Condition != constants.ProductConditionGood {
		t.Fatalf("condition want default good got %s", product.Condition)
	}
	if !product.PriceAmount.Decimal.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("price want 60 got %s", product.PriceAmount.Decimal.String())
	}
	if !product.IsActive {
		t.Fatalf("product should default to active")
	}
}

func TestProductOwnership(t *testing.T) {
	svc := setupProductServiceTest(t)

	product, err := svc.Create(CreateProductInput{SellerID: 1, Title: "旧手机", PriceAmount: decimal.NewFromInt(500)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.GetForSeller(2, product.ID); !errors.Is(err, ErrProductForbidden) {
		t.Fatalf("expected forbidden for other seller, got: %v", err)
	}
	if _, err := svc.Update(2, product.ID, UpdateProductInput{}); !errors.Is(err, ErrProductForbidden) {
		t.Fatalf("expected update forbidden, got: %v", err)
	}
	if err := svc.Delete(2, product.ID); !errors.Is(err, ErrProductForbidden) {
		t.Fatalf("expected delete forbidden, got: %v", err)
	}

	if err := svc.Delete(1, product.ID); err != nil {
		t.Fatalf("delete by owner failed: %v", err)
	}
	if _, err := svc.GetForSeller(1, product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected not found after delete, got: %v", err)
	}
}

func TestProductUpdateFields(t *testing.T) {
	svc := setupProductServiceTest(t)

	product, err := svc.Create(CreateProductInput{SellerID: 1, Title: "旧键盘", PriceAmount: decimal.NewFromInt(80)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newPrice := decimal.NewFromInt(65)
	condition := constants.ProductConditionLikeNew
	inactive := false
	updated, err := svc.Update(1, product.ID, UpdateProductInput{
		PriceAmount: &newPrice,
		Condition:   &condition,
		IsActive:    &inactive,
		Colors:      []string{"black", "white"},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.PriceAmount.Decimal.Equal(newPrice) {
		t.Fatalf("price want 65 got %s", updated.PriceAmount.Decimal.String())
	}
	if updated.Condition != constants.ProductConditionLikeNew {
		t.Fatalf("condition want like_new got %s", updated.Condition)
	}
	if updated.IsActive {
		t.Fatalf("product should be deactivated")
	}
	if len(updated.Colors) != 2 {
		t.Fatalf("colors want 2 got %d", len(updated.Colors))
	}

	bad := decimal.Zero
	if _, err := svc.Update(1, product.ID, UpdateProductInput{PriceAmount: &bad}); !errors.Is(err, ErrProductPriceInvalid) {
		t.Fatalf("expected price invalid, got: %v", err)
	}
}

func TestListPublicFiltersInactive(t *testing.T) {
	svc := setupProductServiceTest(t)

	if _, err := svc.Create(CreateProductInput{SellerID: 1, Title: "在售商品", PriceAmount: decimal.NewFromInt(10)}); err != nil {
		t.Fatalf("create active failed: %v", err)
	}
	inactive := false
	if _, err := svc.Create(CreateProductInput{SellerID: 1, Title: "下架商品", PriceAmount: decimal.NewFromInt(10), IsActive: &inactive}); err != nil {
		t.Fatalf("create inactive failed: %v", err)
	}

	products, total, err := svc.ListPublic("", "", "", 1, 20)
	if err != nil {
		t.Fatalf("list public failed: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].Title != "在售商品" {
		t.Fatalf("unexpected public list: total=%d products=%+v", total, products)
	}

	products, total, err = svc.ListBySeller(1, "", 1, 20)
	if err != nil {
		t.Fatalf("list by seller failed: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("seller list should include inactive, total=%d", total)
	}
}
