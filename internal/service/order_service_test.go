package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/reloop-next/internal/constants"
	"github.com/reloop-next/internal/models"
	"github.com/reloop-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_service_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Cart{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	prevDB := models.DB
	models.DB = db
	t.Cleanup(func() {
		models.DB = prevDB
	})

	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderSvc := NewOrderService(orderRepo, productRepo, cartRepo, nil)
	cartSvc := NewCartService(cartRepo, productRepo)
	return orderSvc, cartSvc, db
}

func createOrderTestProduct(t *testing.T, db *gorm.DB, sellerID uint, price float64) *models.Product {
	t.Helper()
	product := &models.Product{
		SellerID:    sellerID,
		Title:       fmt.Sprintf("测试商品-%d", time.Now().UnixNano()),
		Condition:   constants.ProductConditionGood,
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		IsActive:    true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestCreateDirectOrder(t *testing.T) {
	svc, _, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, 7, 99.5)

	order, err := svc.CreateDirect(CreateDirectOrderInput{
		UserID:          1,
		ProductID:       product.ID,
		Quantity:        2,
		ShippingAddress: "上海市静安区测试路 1 号",
	})
	if err != nil {
		t.Fatalf("create direct failed: %v", err)
	}
	if !strings.HasPrefix(order.OrderNo, "RL") {
		t.Fatalf("order no want RL prefix, got %s", order.OrderNo)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want pending got %s", order.Status)
	}
	if order.PaymentMethod != constants.PaymentMethodCOD {
		t.Fatalf("payment method want cod got %s", order.PaymentMethod)
	}
	if !order.TotalAmount.Decimal.Equal(decimal.NewFromInt(199)) {
		t.Fatalf("total want 199 got %s", order.TotalAmount.Decimal.String())
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(order.Items))
	}
	item := order.Items[0]
	if item.SellerID != 7 {
		t.Fatalf("item seller id want 7 got %d", item.SellerID)
	}
	if item.Color != constants.CartColorDefault {
		t.Fatalf("item color want default got %s", item.Color)
	}
	if item.Title != product.Title {
		t.Fatalf("item title snapshot want %q got %q", product.Title, item.Title)
	}
}

func TestCreateDirectOrderRejectsInvalidInput(t *testing.T) {
	svc, _, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, 7, 10)

	if _, err := svc.CreateDirect(CreateDirectOrderInput{UserID: 1, ProductID: product.ID, Quantity: 0}); !errors.Is(err, ErrInvalidOrderItem) {
		t.Fatalf("expected invalid order item, got: %v", err)
	}
	if _, err := svc.CreateDirect(CreateDirectOrderInput{UserID: 1, ProductID: 9999, Quantity: 1}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected product not found, got: %v", err)
	}

	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}
	if _, err := svc.CreateDirect(CreateDirectOrderInput{UserID: 1, ProductID: product.ID, Quantity: 1}); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("expected product not available, got: %v", err)
	}
}

func TestCreateFromCartRepricesAndClearsCart(t *testing.T) {
	orderSvc, cartSvc, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, 7, 100)

	if _, err := cartSvc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	// 下单时按商品当前价格重新计价，而非购物车锁定价
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("price_amount", models.NewMoneyFromDecimal(decimal.NewFromInt(80))).Error; err != nil {
		t.Fatalf("update price failed: %v", err)
	}

	order, err := orderSvc.CreateFromCart(CreateFromCartInput{UserID: 1, ShippingAddress: "北京市朝阳区测试街 2 号"})
	if err != nil {
		t.Fatalf("create from cart failed: %v", err)
	}
	if !order.TotalAmount.Decimal.Equal(decimal.NewFromInt(160)) {
		t.Fatalf("total want 160 got %s", order.TotalAmount.Decimal.String())
	}
	if len(order.Items) != 1 || !order.Items[0].UnitPrice.Decimal.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("unexpected order items: %+v", order.Items)
	}

	detail, err := cartSvc.GetCart(1)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(detail.Items) != 0 {
		t.Fatalf("cart should be cleared, got %d items", len(detail.Items))
	}
	if !detail.Cart.TotalAmount.Decimal.Equal(decimal.Zero) {
		t.Fatalf("cart total want 0 got %s", detail.Cart.TotalAmount.Decimal.String())
	}

	// 下单清空购物车后，同款商品必须可以再次加入
	detail, err = cartSvc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("re-add after checkout failed: %v", err)
	}
	if len(detail.Items) != 1 || detail.Items[0].Quantity != 1 {
		t.Fatalf("unexpected items after checkout re-add: %+v", detail.Items)
	}
}

func TestCreateFromCartEmpty(t *testing.T) {
	orderSvc, _, _ := setupOrderServiceTest(t)
	if _, err := orderSvc.CreateFromCart(CreateFromCartInput{UserID: 1}); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected cart empty, got: %v", err)
	}
}

func TestCreateFromCartRejectsDeactivatedProduct(t *testing.T) {
	orderSvc, cartSvc, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, 7, 50)

	if _, err := cartSvc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}
	if _, err := orderSvc.CreateFromCart(CreateFromCartInput{UserID: 1}); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("expected product not available, got: %v", err)
	}
}

func TestCancelOrderPendingOnly(t *testing.T) {
	svc, _, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, 7, 30)

	order, err := svc.CreateDirect(CreateDirectOrderInput{UserID: 1, ProductID: product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := svc.CancelOrder(2, order.ID); !errors.Is(err, ErrOrderForbidden) {
		t.Fatalf("expected forbidden for other user, got: %v", err)
	}

	canceled, err := svc.CancelOrder(1, order.ID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if canceled.Status != constants.OrderStatusCanceled {
		t.Fatalf("status want canceled got %s", canceled.Status)
	}
	if canceled.CanceledAt == nil {
		t.Fatalf("canceled_at should be set")
	}

	if _, err := svc.CancelOrder(1, order.ID); !errors.Is(err, ErrOrderTransitionInvalid) {
		t.Fatalf("expected transition invalid for canceled order, got: %v", err)
	}
}

func TestUpdateStatusBySeller(t *testing.T) {
	svc, _, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, 7, 30)

	order, err := svc.CreateDirect(CreateDirectOrderInput{UserID: 1, ProductID: product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := svc.UpdateStatusBySeller(8, order.ID, constants.OrderStatusConfirmed); !errors.Is(err, ErrOrderForbidden) {
		t.Fatalf("expected forbidden for unrelated seller, got: %v", err)
	}
	if _, err := svc.UpdateStatusBySeller(7, order.ID, "unknown"); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected status invalid, got: %v", err)
	}
	if _, err := svc.UpdateStatusBySeller(7, order.ID, constants.OrderStatusShipping); !errors.Is(err, ErrOrderTransitionInvalid) {
		t.Fatalf("expected pending->shipping rejected, got: %v", err)
	}

	confirmed, err := svc.UpdateStatusBySeller(7, order.ID, constants.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if confirmed.Status != constants.OrderStatusConfirmed || confirmed.ConfirmedAt == nil {
		t.Fatalf("unexpected confirmed order: status=%s confirmed_at=%v", confirmed.Status, confirmed.ConfirmedAt)
	}

	// 同状态请求为幂等空操作
	again, err := svc.UpdateStatusBySeller(7, order.ID, constants.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("same status update failed: %v", err)
	}
	if again.Status != constants.OrderStatusConfirmed {
		t.Fatalf("status want confirmed got %s", again.Status)
	}

	shipped, err := svc.UpdateStatusBySeller(7, order.ID, constants.OrderStatusShipping)
	if err != nil {
		t.Fatalf("ship failed: %v", err)
	}
	if shipped.ShippedAt == nil {
		t.Fatalf("shipped_at should be set")
	}
	completed, err := svc.UpdateStatusBySeller(7, order.ID, constants.OrderStatusCompleted)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if completed.Status != constants.OrderStatusCompleted || completed.CompletedAt == nil {
		t.Fatalf("unexpected completed order: %+v", completed)
	}

	if _, err := svc.UpdateStatusBySeller(7, order.ID, constants.OrderStatusCanceled); !errors.Is(err, ErrOrderTransitionInvalid) {
		t.Fatalf("expected completed order immutable, got: %v", err)
	}
}

func TestListForBuyerAndSeller(t *testing.T) {
	svc, _, db := setupOrderServiceTest(t)
	mine := createOrderTestProduct(t, db, 7, 10)
	other := createOrderTestProduct(t, db, 8, 10)

	if _, err := svc.CreateDirect(CreateDirectOrderInput{UserID: 1, ProductID: mine.ID, Quantity: 1}); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if _, err := svc.CreateDirect(CreateDirectOrderInput{UserID: 2, ProductID: other.ID, Quantity: 1}); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	orders, total, err := svc.ListForBuyer(1, "", "", 1, 20)
	if err != nil {
		t.Fatalf("list for buyer failed: %v", err)
	}
	if total != 1 || len(orders) != 1 || orders[0].UserID != 1 {
		t.Fatalf("unexpected buyer orders: total=%d orders=%+v", total, orders)
	}

	orders, total, err = svc.ListForSeller(7, "", "", 1, 20)
	if err != nil {
		t.Fatalf("list for seller failed: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("unexpected seller orders: total=%d len=%d", total, len(orders))
	}
	if orders[0].Items[0].SellerID != 7 {
		t.Fatalf("seller order item mismatch: %+v", orders[0].Items)
	}

	orders, total, err = svc.ListForSeller(9, "", "", 1, 20)
	if err != nil {
		t.Fatalf("list for unrelated seller failed: %v", err)
	}
	if total != 0 || len(orders) != 0 {
		t.Fatalf("expected empty seller orders, got total=%d", total)
	}
}

func TestGenerateOrderNoFormat(t *testing.T) {
	no := generateOrderNo()
	if !strings.HasPrefix(no, "RL") {
		t.Fatalf("order no want RL prefix, got %s", no)
	}
	if len(no) != len("RL")+14+6 {
		t.Fatalf("order no length want %d got %d (%s)", len("RL")+14+6, len(no), no)
	}
}

func TestNormalizeOrderAmount(t *testing.T) {
	if got := normalizeOrderAmount(decimal.NewFromFloat(10.005)); !got.Equal(decimal.NewFromFloat(10.01)) {
		t.Fatalf("round want 10.01 got %s", got.String())
	}
	if got := normalizeOrderAmount(decimal.NewFromInt(-5)); !got.Equal(decimal.Zero) {
		t.Fatalf("negative want 0 got %s", got.String())
	}
}
