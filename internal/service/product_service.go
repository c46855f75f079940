package service

import (
	"strings"

	"github.com/reloop-next/internal/constants"
	"github.com/reloop-next/internal/models"
	"github.com/reloop-next/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService 商品业务服务
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// CreateProductInput 创建商品输入
type CreateProductInput struct {
	SellerID    uint
	Title       string
	Description string
	Category    string
	Condition   string
	PriceAmount decimal.Decimal
	Colors      []string
	Images      []string
	IsActive    *bool
	SortOrder   int
}

// UpdateProductInput 更新商品输入
type UpdateProductInput struct {
	Title       *string
	Description *string
	Category    *string
	Condition   *string
	PriceAmount *decimal.Decimal
	Colors      []string
	Images      []string
	IsActive    *bool
	SortOrder   *int
}

// ListPublic 获取公开商品列表
func (s *ProductService) ListPublic(category, condition, search string, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		Category:   category,
		Condition:  condition,
		Search:     search,
		OnlyActive: true,
		WithSeller: true,
	}
	return s.repo.List(filter)
}

// GetPublicByID 获取公开商品详情
func (s *ProductService) GetPublicByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListBySeller 获取卖家商品列表
func (s *ProductService) ListBySeller(sellerID uint, search string, page, pageSize int) ([]models.Product, int64, error) {
	if sellerID == 0 {
		return nil, 0, ErrProductForbidden
	}
	filter := repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		SellerID: sellerID,
		Search:   search,
	}
	return s.repo.List(filter)
}

// GetForSeller 获取卖家商品详情（校验归属）
func (s *ProductService) GetForSeller(sellerID, productID uint) (*models.Product, error) {
	product, err := s.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.SellerID != sellerID {
		return nil, ErrProductForbidden
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	if input.SellerID == 0 {
		return nil, ErrProductForbidden
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrInvalidProductInput
	}
	priceAmount := input.PriceAmount.Round(2)
	if priceAmount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrProductPriceInvalid
	}
	condition := normalizeProductCondition(input.Condition)
	if condition == "" {
		return nil, ErrInvalidProductInput
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	product := models.Product{
		SellerID:    input.SellerID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		Condition:   condition,
		PriceAmount: models.NewMoneyFromDecimal(priceAmount),
		Colors:      models.StringArray(input.Colors),
		Images:      models.StringArray(input.Images),
		IsActive:    isActive,
		SortOrder:   input.SortOrder,
	}
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update 更新商品（校验归属）
func (s *ProductService) Update(sellerID, productID uint, input UpdateProductInput) (*models.Product, error) {
	product, err := s.GetForSeller(sellerID, productID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrInvalidProductInput
		}
		product.Title = title
	}
	if input.Description != nil {
		product.Description = strings.TrimSpace(*input.Description)
	}
	if input.Category != nil {
		product.Category = strings.TrimSpace(*input.Category)
	}
	if input.Condition != nil {
		condition := normalizeProductCondition(*input.Condition)
		if condition == "" {
			return nil, ErrInvalidProductInput
		}
		product.Condition = condition
	}
	if input.PriceAmount != nil {
		priceAmount := input.PriceAmount.Round(2)
		if priceAmount.LessThanOrEqual(decimal.Zero) {
			return nil, ErrProductPriceInvalid
		}
		product.PriceAmount = models.NewMoneyFromDecimal(priceAmount)
	}
	if input.Colors != nil {
		product.Colors = models.StringArray(input.Colors)
	}
	if input.Images != nil {
		product.Images = models.StringArray(input.Images)
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		product.SortOrder = *input.SortOrder
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除商品（校验归属）
func (s *ProductService) Delete(sellerID, productID uint) error {
	if _, err := s.GetForSeller(sellerID, productID); err != nil {
		return err
	}
	return s.repo.Delete(productID)
}

func normalizeProductCondition(condition string) string {
	switch strings.ToLower(strings.TrimSpace(condition)) {
	case "", constants.ProductConditionGood:
		return constants.ProductConditionGood
	case constants.ProductConditionLikeNew:
		return constants.ProductConditionLikeNew
	case constants.ProductConditionFair:
		return constants.ProductConditionFair
	default:
		return ""
	}
}
