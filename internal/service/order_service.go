package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/reloop-next/internal/constants"
	"github.com/reloop-next/internal/logger"
	"github.com/reloop-next/internal/models"
	"github.com/reloop-next/internal/queue"
	"github.com/reloop-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, cartRepo repository.CartRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		queueClient: queueClient,
	}
}

// CreateDirectOrderInput 立即购买下单输入
type CreateDirectOrderInput struct {
	UserID          uint
	ProductID       uint
	Color           string
	Quantity        int
	PaymentMethod   string
	ShippingAddress string
}

// CreateFromCartInput 购物车结算下单输入
type CreateFromCartInput struct {
	UserID          uint
	PaymentMethod   string
	ShippingAddress string
}

var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusConfirmed: true,
		constants.OrderStatusCanceled:  true,
	},
	constants.OrderStatusConfirmed: {
		constants.OrderStatusShipping: true,
		constants.OrderStatusCanceled: true,
	},
	constants.OrderStatusShipping: {
		constants.OrderStatusCompleted: true,
	},
}

// CreateDirect 立即购买（单商品下单）
func (s *OrderService) CreateDirect(input CreateDirectOrderInput) (*models.Order, error) {
	if input.UserID == 0 || input.ProductID == 0 || input.Quantity <= 0 {
		return nil, ErrInvalidOrderItem
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductNotAvailable
	}

	now := time.Now()
	quantity := input.Quantity
	totalPrice := product.PriceAmount.Decimal.Mul(decimal.NewFromInt(int64(quantity)))
	order := &models.Order{
		OrderNo:         generateOrderNo(),
		UserID:          input.UserID,
		Status:          constants.OrderStatusPending,
		TotalAmount:     models.NewMoneyFromDecimal(normalizeOrderAmount(totalPrice)),
		PaymentMethod:   normalizePaymentMethod(input.PaymentMethod),
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	items := []models.OrderItem{
		{
			ProductID:  product.ID,
			SellerID:   product.SellerID,
			Title:      product.Title,
			Color:      normalizeCartColor(input.Color),
			UnitPrice:  product.PriceAmount,
			Quantity:   quantity,
			TotalPrice: models.NewMoneyFromDecimal(normalizeOrderAmount(totalPrice)),
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.WithTx(tx).Create(order, items)
	})
	if err != nil {
		return nil, ErrOrderCreateFailed
	}

	s.notifySellersNewOrder(order.ID, items)
	return s.orderRepo.GetByID(order.ID)
}

// CreateFromCart 购物车结算下单（按商品当前价格重新计价，成功后清空购物车）
func (s *OrderService) CreateFromCart(input CreateFromCartInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidOrderItem
	}
	cart, err := s.cartRepo.GetOrCreateByUser(input.UserID)
	if err != nil {
		return nil, err
	}
	cartItems, err := s.cartRepo.ListItems(cart.ID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrCartEmpty
	}

	productIDs := make([]uint, 0, len(cartItems))
	for _, item := range cartItems {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.productRepo.ListByIDs(productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uint]*models.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	now := time.Now()
	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(cartItems))
	for _, cartItem := range cartItems {
		product, ok := productMap[cartItem.ProductID]
		if !ok || !product.IsActive {
			return nil, ErrProductNotAvailable
		}
		linePrice := product.PriceAmount.Decimal.Mul(decimal.NewFromInt(int64(cartItem.Quantity)))
		total = total.Add(linePrice)
		items = append(items, models.OrderItem{
			ProductID:  product.ID,
			SellerID:   product.SellerID,
			Title:      product.Title,
			Color:      cartItem.Color,
			UnitPrice:  product.PriceAmount,
			Quantity:   cartItem.Quantity,
			TotalPrice: models.NewMoneyFromDecimal(normalizeOrderAmount(linePrice)),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	order := &models.Order{
		OrderNo:         generateOrderNo(),
		UserID:          input.UserID,
		Status:          constants.OrderStatusPending,
		TotalAmount:     models.NewMoneyFromDecimal(normalizeOrderAmount(total)),
		PaymentMethod:   normalizePaymentMethod(input.PaymentMethod),
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, items); err != nil {
			return err
		}
		cartRepo := s.cartRepo.WithTx(tx)
		if err := cartRepo.ClearItems(cart.ID); err != nil {
			return err
		}
		return cartRepo.UpdateTotal(cart.ID, models.NewMoneyFromDecimal(decimal.Zero))
	})
	if err != nil {
		return nil, ErrOrderCreateFailed
	}

	s.notifySellersNewOrder(order.ID, items)
	return s.orderRepo.GetByID(order.ID)
}

// GetOrderForUser 获取买家订单详情
func (s *OrderService) GetOrderForUser(userID, orderID uint) (*models.Order, error) {
	if userID == 0 || orderID == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListForBuyer 获取买家订单列表（按创建倒序）
func (s *OrderService) ListForBuyer(userID uint, status, orderNo string, page, pageSize int) ([]models.Order, int64, error) {
	if userID == 0 {
		return nil, 0, ErrOrderNotFound
	}
	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
		Status:   strings.TrimSpace(status),
		OrderNo:  strings.TrimSpace(orderNo),
	}
	return s.orderRepo.ListByUser(filter)
}

// ListForSeller 获取卖家相关订单列表（含订单全部订单项）
func (s *OrderService) ListForSeller(sellerID uint, status, orderNo string, page, pageSize int) ([]models.Order, int64, error) {
	if sellerID == 0 {
		return nil, 0, ErrOrderNotFound
	}
	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		SellerID: sellerID,
		Status:   strings.TrimSpace(status),
		OrderNo:  strings.TrimSpace(orderNo),
	}
	return s.orderRepo.ListBySeller(filter)
}

// CancelOrder 买家取消订单（仅限待确认状态）
func (s *OrderService) CancelOrder(userID, orderID uint) (*models.Order, error) {
	if userID == 0 || orderID == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrOrderForbidden
	}
	if order.Status != constants.OrderStatusPending {
		return nil, ErrOrderTransitionInvalid
	}

	now := time.Now()
	updates := map[string]interface{}{
		"canceled_at": now,
		"updated_at":  now,
	}
	if err := s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusCanceled, updates); err != nil {
		return nil, ErrOrderUpdateFailed
	}

	s.notifyOrderStatusChanged(order.ID, constants.OrderStatusCanceled)
	return s.orderRepo.GetByID(order.ID)
}

// UpdateStatusBySeller 卖家推进订单状态（需在订单内拥有订单项）
func (s *OrderService) UpdateStatusBySeller(sellerID, orderID uint, target string) (*models.Order, error) {
	if sellerID == 0 || orderID == 0 {
		return nil, ErrOrderNotFound
	}
	target = strings.ToLower(strings.TrimSpace(target))
	if !isKnownOrderStatus(target) {
		return nil, ErrOrderStatusInvalid
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	owns, err := s.orderRepo.SellerHasItems(order.ID, sellerID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if !owns {
		return nil, ErrOrderForbidden
	}

	if order.Status == target {
		return order, nil
	}
	if !isTransitionAllowed(order.Status, target) {
		return nil, ErrOrderTransitionInvalid
	}

	now := time.Now()
	updates := map[string]interface{}{
		"updated_at": now,
	}
	switch target {
	case constants.OrderStatusConfirmed:
		updates["confirmed_at"] = now
	case constants.OrderStatusShipping:
		updates["shipped_at"] = now
	case constants.OrderStatusCompleted:
		updates["completed_at"] = now
	case constants.OrderStatusCanceled:
		updates["canceled_at"] = now
	}
	if err := s.orderRepo.UpdateStatus(order.ID, target, updates); err != nil {
		return nil, ErrOrderUpdateFailed
	}

	s.notifyOrderStatusChanged(order.ID, target)
	return s.orderRepo.GetByID(order.ID)
}

// notifyOrderStatusChanged 入队状态邮件任务（尽力而为，不影响主流程）
func (s *OrderService) notifyOrderStatusChanged(orderID uint, status string) {
	skipped, err := enqueueOrderStatusEmailTaskIfEligible(s.orderRepo, s.queueClient, orderID, status)
	if err != nil {
		logger.Warnw("order_status_email_enqueue_failed",
			"order_id", orderID,
			"status", status,
			"error", err,
		)
		return
	}
	if skipped {
		logger.Debugw("order_status_email_enqueue_skipped", "order_id", orderID, "status", status)
	}
}

// notifySellersNewOrder 通知订单涉及的卖家（按卖家去重入队）
func (s *OrderService) notifySellersNewOrder(orderID uint, items []models.OrderItem) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	seen := make(map[uint]bool, len(items))
	for _, item := range items {
		if item.SellerID == 0 || seen[item.SellerID] {
			continue
		}
		seen[item.SellerID] = true
		if err := s.queueClient.EnqueueSellerNewOrder(queue.SellerNewOrderPayload{
			OrderID:  orderID,
			SellerID: item.SellerID,
		}); err != nil {
			logger.Warnw("order_seller_notify_enqueue_failed",
				"order_id", orderID,
				"seller_id", item.SellerID,
				"error", err,
			)
		}
	}
}

func isKnownOrderStatus(status string) bool {
	switch status {
	case constants.OrderStatusPending,
		constants.OrderStatusConfirmed,
		constants.OrderStatusShipping,
		constants.OrderStatusCompleted,
		constants.OrderStatusCanceled:
		return true
	default:
		return false
	}
}

func isTransitionAllowed(current, target string) bool {
	if current == target {
		return true
	}
	nexts, ok := allowedTransitions[current]
	if !ok {
		return false
	}
	return nexts[target]
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	randPart := randNumeric(6)
	return fmt.Sprintf("RL%s%s", now, randPart)
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}

func normalizePaymentMethod(method string) string {
	normalized := strings.ToLower(strings.TrimSpace(method))
	if normalized == "" {
		return constants.PaymentMethodCOD
	}
	return normalized
}

// normalizeOrderAmount 归一化金额精度与下限
func normalizeOrderAmount(amount decimal.Decimal) decimal.Decimal {
	normalized := amount.Round(2)
	if normalized.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return normalized
}
