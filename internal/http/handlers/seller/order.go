package seller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/reloop-next/internal/http/response"
	"github.com/reloop-next/internal/models"
	"github.com/reloop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SellerOrderListItem 卖家订单列表返回
type SellerOrderListItem struct {
	models.Order
	BuyerEmail       string `json:"buyer_email,omitempty"`
	BuyerDisplayName string `json:"buyer_display_name,omitempty"`
}

// UpdateOrderStatusRequest 订单状态更新请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOrders 卖家订单列表
// 仅返回包含该卖家商品的订单
func (h *Handler) ListOrders(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	status := strings.TrimSpace(c.Query("status"))
	orderNo := strings.TrimSpace(c.Query("order_no"))

	orders, total, err := h.OrderService.ListForSeller(sellerID, status, orderNo, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	buyerMap := map[uint]models.User{}
	buyerIDs := make([]uint, 0, len(orders))
	seen := map[uint]struct{}{}
	for _, order := range orders {
		if order.UserID == 0 {
			continue
		}
		if _, ok := seen[order.UserID]; ok {
			continue
		}
		seen[order.UserID] = struct{}{}
		buyerIDs = append(buyerIDs, order.UserID)
	}
	if len(buyerIDs) > 0 {
		buyers, err := h.UserRepo.ListByIDs(buyerIDs)
		if err != nil {
			respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
			return
		}
		for _, buyer := range buyers {
			buyerMap[buyer.ID] = buyer
		}
	}

	items := make([]SellerOrderListItem, 0, len(orders))
	for _, order := range orders {
		var email, displayName string
		if buyer, ok := buyerMap[order.UserID]; ok {
			email = buyer.Email
			displayName = buyer.DisplayName
		}
		items = append(items, SellerOrderListItem{
			Order:            order,
			BuyerEmail:       email,
			BuyerDisplayName: displayName,
		})
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, items, pagination)
}

// UpdateOrderStatus 卖家推进订单状态
// pending→confirmed/canceled、confirmed→shipping/canceled、shipping→completed
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	sellerID, ok := getSellerID(c)
	if !ok {
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.order_item_invalid", nil)
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.UpdateStatusBySeller(sellerID, uint(orderID), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		case errors.Is(err, service.ErrOrderForbidden):
			respondError(c, response.CodeForbidden, "error.order_forbidden", nil)
		case errors.Is(err, service.ErrOrderStatusInvalid):
			respondError(c, response.CodeBadRequest, "error.order_status_invalid", nil)
		case errors.Is(err, service.ErrOrderTransitionInvalid):
			respondError(c, response.CodeBadRequest, "error.order_transition_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.order_update_failed", err)
		}
		return
	}

	response.Success(c, order)
}
