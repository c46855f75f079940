package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/reloop-next/internal/http/response"
	"github.com/reloop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest 直接下单请求
type CreateOrderRequest struct {
	ProductID       uint   `json:"product_id" binding:"required"`
	Color           string `json:"color"`
	Quantity        int    `json:"quantity" binding:"required"`
	PaymentMethod   string `json:"payment_method"`
	ShippingAddress string `json:"shipping_address" binding:"required"`
}

// CheckoutCartRequest 购物车结算请求
type CheckoutCartRequest struct {
	PaymentMethod   string `json:"payment_method"`
	ShippingAddress string `json:"shipping_address" binding:"required"`
}

// CreateOrder 直接购买下单
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.CreateDirect(service.CreateDirectOrderInput{
		UserID:          uid,
		ProductID:       req.ProductID,
		Color:           req.Color,
		Quantity:        req.Quantity,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		respondOrderCreateError(c, err)
		return
	}

	response.Success(c, order)
}

// CheckoutCart 购物车结算下单
func (h *Handler) CheckoutCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req CheckoutCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.CreateFromCart(service.CreateFromCartInput{
		UserID:          uid,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	response.Success(c, order)
}

// ListOrders 获取我的订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	status := strings.TrimSpace(c.Query("status"))
	orderNo := strings.TrimSpace(c.Query("order_no"))

	orders, total, err := h.OrderService.ListForBuyer(uid, status, orderNo, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, orders, pagination)
}

// GetOrder 获取订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.order_item_invalid", nil)
		return
	}

	order, err := h.OrderService.GetOrderForUser(uid, uint(orderID))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	response.Success(c, order)
}

// CancelOrder 买家取消订单
// 仅允许取消待确认状态的订单
func (h *Handler) CancelOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.order_item_invalid", nil)
		return
	}

	order, err := h.OrderService.CancelOrder(uid, uint(orderID))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		case errors.Is(err, service.ErrOrderForbidden):
			respondError(c, response.CodeForbidden, "error.order_forbidden", nil)
		case errors.Is(err, service.ErrOrderTransitionInvalid):
			respondError(c, response.CodeBadRequest, "error.order_transition_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.order_update_failed", err)
		}
		return
	}

	response.Success(c, order)
}
