package public

import (
	"strconv"

	"github.com/reloop-next/internal/http/response"
	"github.com/reloop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求
// 数量可省略，省略时按 1 件处理
type AddCartItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest 更新购物车项请求
type UpdateCartItemRequest struct {
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	detail, err := h.CartService.GetCart(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, detail)
}

// AddCartItem 加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	detail, err := h.CartService.AddItem(service.AddCartItemInput{
		UserID:    uid,
		ProductID: req.ProductID,
		Color:     req.Color,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondCartMutationError(c, err)
		return
	}

	response.Success(c, detail)
}

// UpdateCartItem 更新购物车项数量
// 数量小于等于 0 时等价于删除该项
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.cart_invalid", nil)
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	detail, err := h.CartService.UpdateItem(service.UpdateCartItemInput{
		UserID:    uid,
		ProductID: uint(productID),
		Color:     req.Color,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondCartMutationError(c, err)
		return
	}

	response.Success(c, detail)
}

// DeleteCartItem 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.cart_invalid", nil)
		return
	}

	detail, err := h.CartService.RemoveItem(uid, uint(productID), c.Query("color"))
	if err != nil {
		respondCartMutationError(c, err)
		return
	}

	response.Success(c, detail)
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	detail, err := h.CartService.ClearCart(uid)
	if err != nil {
		respondCartMutationError(c, err)
		return
	}

	response.Success(c, detail)
}
