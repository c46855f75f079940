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

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_repo_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate order failed: %v", err)
	}
	return NewOrderRepository(db), db
}

func createRepoOrder(t *testing.T, repo *GormOrderRepository, userID uint, orderNo, status string, sellerIDs ...uint) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNo:       orderNo,
		UserID:        userID,
		Status:        status,
		TotalAmount:   models.NewMoneyFromDecimal(decimal.NewFromInt(int64(100 * len(sellerIDs)))),
		PaymentMethod: constants.PaymentMethodCOD,
	}
	items := make([]models.OrderItem, 0, len(sellerIDs))
	for idx, sellerID := range sellerIDs {
		items = append(items, models.OrderItem{
			ProductID:  uint(idx + 1),
			SellerID:   sellerID,
			Title:      fmt.Sprintf("商品-%d", idx+1),
			Color:      constants.CartColorDefault,
			UnitPrice:  models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
			Quantity:   1,
			TotalPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
		})
	}
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestOrderCreateBackfillsItemOrderID(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	order := createRepoOrder(t, repo, 1, "RL20260101000000000001", constants.OrderStatusPending, 5, 6)

	var items []models.OrderItem
	if err := db.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		t.Fatalf("load items failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items want 2 got %d", len(items))
	}
	for _, item := range items {
		if item.OrderID != order.ID {
			t.Fatalf("item order_id want %d got %d", order.ID, item.OrderID)
		}
	}
}

func TestGetByIDAndUserScoped(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	order := createRepoOrder(t, repo, 1, "RL20260101000000000002", constants.OrderStatusPending, 5)

	got, err := repo.GetByIDAndUser(order.ID, 1)
	if err != nil {
		t.Fatalf("get own order failed: %v", err)
	}
	if got == nil || len(got.Items) != 1 {
		t.Fatalf("expected order with items, got %+v", got)
	}

	got, err = repo.GetByIDAndUser(order.ID, 2)
	if err != nil {
		t.Fatalf("get other user order failed: %v", err)
	}
	if got != nil {
		t.Fatalf("other user should not see the order")
	}

	got, err = repo.GetByOrderNoAndUser(order.OrderNo, 1)
	if err != nil {
		t.Fatalf("get by order no failed: %v", err)
	}
	if got == nil || got.ID != order.ID {
		t.Fatalf("order no lookup mismatch: %+v", got)
	}
}

func TestListByUserFiltersStatus(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	createRepoOrder(t, repo, 1, "RL20260101000000000003", constants.OrderStatusPending, 5)
	createRepoOrder(t, repo, 1, "RL20260101000000000004", constants.OrderStatusCompleted, 5)
	createRepoOrder(t, repo, 2, "RL20260101000000000005", constants.OrderStatusPending, 5)

	orders, total, err := repo.ListByUser(OrderListFilter{UserID: 1})
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("user list want 2 got total=%d len=%d", total, len(orders))
	}

	orders, total, err = repo.ListByUser(OrderListFilter{UserID: 1, Status: constants.OrderStatusCompleted})
	if err != nil {
		t.Fatalf("list by status failed: %v", err)
	}
	if total != 1 || orders[0].Status != constants.OrderStatusCompleted {
		t.Fatalf("status filter mismatch: total=%d", total)
	}
}

func TestListBySellerDeduplicatesOrders(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	// 同一订单包含卖家 5 的两个订单项，列表只应出现一次
	createRepoOrder(t, repo, 1, "RL20260101000000000006", constants.OrderStatusPending, 5, 5)
	createRepoOrder(t, repo, 2, "RL20260101000000000007", constants.OrderStatusPending, 5, 6)
	createRepoOrder(t, repo, 3, "RL20260101000000000008", constants.OrderStatusPending, 7)

	orders, total, err := repo.ListBySeller(OrderListFilter{SellerID: 5})
	if err != nil {
		t.Fatalf("list by seller failed: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("seller list want 2 got total=%d len=%d", total, len(orders))
	}

	orders, total, err = repo.ListBySeller(OrderListFilter{SellerID: 6})
	if err != nil {
		t.Fatalf("list by seller 6 failed: %v", err)
	}
	if total != 1 || orders[0].OrderNo != "RL20260101000000000007" {
		t.Fatalf("seller 6 list mismatch: total=%d", total)
	}
}

func TestSellerHasItems(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	order := createRepoOrder(t, repo, 1, "RL20260101000000000009", constants.OrderStatusPending, 5)

	ok, err := repo.SellerHasItems(order.ID, 5)
	if err != nil {
		t.Fatalf("seller has items failed: %v", err)
	}
	if !ok {
		t.Fatalf("seller 5 should own items in the order")
	}

	ok, err = repo.SellerHasItems(order.ID, 6)
	if err != nil {
		t.Fatalf("seller has items failed: %v", err)
	}
	if ok {
		t.Fatalf("seller 6 should not own items in the order")
	}

	ok, err = repo.SellerHasItems(0, 5)
	if err != nil || ok {
		t.Fatalf("zero order id should report false, got ok=%v err=%v", ok, err)
	}
}

func TestUpdateStatusAppliesExtraFields(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	order := createRepoOrder(t, repo, 1, "RL20260101000000000010", constants.OrderStatusPending, 5)

	now := time.Now()
	if err := repo.UpdateStatus(order.ID, constants.OrderStatusConfirmed, map[string]interface{}{"confirmed_at": now}); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	got, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got.Status != constants.OrderStatusConfirmed {
		t.Fatalf("status want confirmed got %s", got.Status)
	}
	if got.ConfirmedAt == nil {
		t.Fatalf("confirmed_at should be set")
	}
}

func TestResolveReceiverEmailByOrderID(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	buyer := models.User{Email: " buyer@example.com ", PasswordHash: "x", DisplayName: "买家", Role: constants.UserRoleCustomer, Status: constants.UserStatusActive}
	if err := db.Create(&buyer).Error; err != nil {
		t.Fatalf("create buyer failed: %v", err)
	}
	order := createRepoOrder(t, repo, buyer.ID, "RL20260101000000000011", constants.OrderStatusPending, 5)

	email, err := repo.ResolveReceiverEmailByOrderID(order.ID)
	if err != nil {
		t.Fatalf("resolve email failed: %v", err)
	}
	if email != "buyer@example.com" {
		t.Fatalf("email want buyer@example.com got %q", email)
	}

	email, err = repo.ResolveReceiverEmailByOrderID(0)
	if err != nil || email != "" {
		t.Fatalf("zero order id should resolve empty, got %q err=%v", email, err)
	}
}
