package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/reloop-next/internal/constants"
	"github.com/reloop-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:product_repo_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createRepoProduct(t *testing.T, repo *GormProductRepository, sellerID uint, title, category, condition string, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		SellerID:    sellerID,
		Title:       title,
		Category:    category,
		Condition:   condition,
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
		IsActive:    active,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestProductListFilters(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createRepoProduct(t, repo, 1, "蓝牙耳机", "electronics", constants.ProductConditionGood, true)
	createRepoProduct(t, repo, 1, "旧台灯", "furniture", constants.ProductConditionFair, true)
	createRepoProduct(t, repo, 2, "胶片相机", "camera", constants.ProductConditionLikeNew, false)

	products, total, err := repo.List(ProductListFilter{OnlyActive: true})
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("active list want 2 got total=%d len=%d", total, len(products))
	}

	products, total, err = repo.List(ProductListFilter{Category: "furniture"})
	if err != nil {
		t.Fatalf("list category failed: %v", err)
	}
	if total != 1 || products[0].Title != "旧台灯" {
		t.Fatalf("category filter mismatch: total=%d products=%+v", total, products)
	}

	products, total, err = repo.List(ProductListFilter{Condition: constants.ProductConditionLikeNew})
	if err != nil {
		t.Fatalf("list condition failed: %v", err)
	}
	if total != 1 || products[0].Title != "胶片相机" {
		t.Fatalf("condition filter mismatch: total=%d", total)
	}

	products, total, err = repo.List(ProductListFilter{SellerID: 1})
	if err != nil {
		t.Fatalf("list seller failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("seller filter want 2 got %d", total)
	}

	products, total, err = repo.List(ProductListFilter{Search: "相机"})
	if err != nil {
		t.Fatalf("list search failed: %v", err)
	}
	if total != 1 || products[0].Title != "胶片相机" {
		t.Fatalf("search filter mismatch: total=%d", total)
	}
}

func TestProductListPagination(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	for i := 0; i < 5; i++ {
		createRepoProduct(t, repo, 1, fmt.Sprintf("商品-%d", i), "misc", constants.ProductConditionGood, true)
	}

	products, total, err := repo.List(ProductListFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list page failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("total want 5 got %d", total)
	}
	if len(products) != 2 {
		t.Fatalf("page size want 2 got %d", len(products))
	}
}

func TestGetActiveByID(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	active := createRepoProduct(t, repo, 1, "在售", "misc", constants.ProductConditionGood, true)
	inactive := createRepoProduct(t, repo, 1, "下架", "misc", constants.ProductConditionGood, false)

	got, err := repo.GetActiveByID(active.ID)
	if err != nil {
		t.Fatalf("get active failed: %v", err)
	}
	if got == nil || got.ID != active.ID {
		t.Fatalf("unexpected active product: %+v", got)
	}

	got, err = repo.GetActiveByID(inactive.ID)
	if err != nil {
		t.Fatalf("get inactive failed: %v", err)
	}
	if got != nil {
		t.Fatalf("inactive product should not be returned, got %+v", got)
	}
}

func TestProductSoftDelete(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	product := createRepoProduct(t, repo, 1, "待删除", "misc", constants.ProductConditionGood, true)

	if err := repo.Delete(product.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	got, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get after delete failed: %v", err)
	}
	if got != nil {
		t.Fatalf("deleted product should not be returned")
	}

	var count int64
	if err := db.Unscoped().Model(&models.Product{}).Where("id = ?", product.ID).Count(&count).Error; err != nil {
		t.Fatalf("unscoped count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("soft deleted row should remain, count=%d", count)
	}
}
