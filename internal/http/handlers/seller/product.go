package seller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/reloop-next/internal/http/response"
	"github.com/reloop-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	PriceAmount string   `json:"price_amount" binding:"required"`
	Colors      []string `json:"colors"`
	Images      []string `json:"images"`
	IsActive    *bool    `json:"is_active"`
	SortOrder   int      `json:"sort_order"`
}

// UpdateProductRequest 更新商品请求
// 仅更新显式传入的字段
type UpdateProductRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Condition   *string  `json:"condition"`
	PriceAmount *string  `json:"price_amount"`
	Colors      []string `json:"colors"`
	Images      []string `json:"images"`
	IsActive    *bool    `json:"is_active"`
	SortOrder   *int     `json:"sort_order"`
}

// ListProducts 卖家商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	search := strings.TrimSpace(c.Query("search"))

	products, total, err := h.ProductService.ListBySeller(sellerID, search, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, products, pagination)
}

// GetProduct 卖家商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.product_invalid", nil)
		return
	}

	product, err := h.ProductService.GetForSeller(sellerID, uint(productID))
	if err != nil {
		respondProductError(c, err)
		return
	}

	response.Success(c, product)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	priceAmount, err := decimal.NewFromString(strings.TrimSpace(req.PriceAmount))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.product_price_invalid", nil)
		return
	}

	product, err := h.ProductService.Create(service.CreateProductInput{
		SellerID:    sellerID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Condition:   req.Condition,
		PriceAmount: priceAmount,
		Colors:      req.Colors,
		Images:      req.Images,
		IsActive:    req.IsActive,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		respondProductError(c, err)
		return
	}

	response.Success(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.product_invalid", nil)
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	input := service.UpdateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Condition:   req.Condition,
		Colors:      req.Colors,
		Images:      req.Images,
		IsActive:    req.IsActive,
		SortOrder:   req.SortOrder,
	}
	if req.PriceAmount != nil {
		priceAmount, perr := decimal.NewFromString(strings.TrimSpace(*req.PriceAmount))
		if perr != nil {
			respondError(c, response.CodeBadRequest, "error.product_price_invalid", nil)
			return
		}
		input.PriceAmount = &priceAmount
	}

	product, err := h.ProductService.Update(sellerID, uint(productID), input)
	if err != nil {
		respondProductError(c, err)
		return
	}

	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.product_invalid", nil)
		return
	}

	if err := h.ProductService.Delete(sellerID, uint(productID)); err != nil {
		respondProductError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}

func respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, response.CodeNotFound, "error.product_not_found", nil)
	case errors.Is(err, service.ErrProductForbidden):
		respondError(c, response.CodeForbidden, "error.product_forbidden", nil)
	case errors.Is(err, service.ErrInvalidProductInput):
		respondError(c, response.CodeBadRequest, "error.product_invalid", nil)
	case errors.Is(err, service.ErrProductPriceInvalid):
		respondError(c, response.CodeBadRequest, "error.product_price_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.internal", err)
	}
}
