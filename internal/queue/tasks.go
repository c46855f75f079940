package queue

import (
	"encoding/json"

	"github.com/reloop-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderStatusEmail 订单状态邮件通知任务
	TaskOrderStatusEmail = constants.TaskOrderStatusEmail
	// TaskOrderSellerNewOrder 卖家新订单通知任务
	TaskOrderSellerNewOrder = constants.TaskOrderSellerNewOrder
)

// OrderStatusEmailPayload 订单状态邮件任务载荷
type OrderStatusEmailPayload struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

// SellerNewOrderPayload 卖家新订单通知任务载荷
type SellerNewOrderPayload struct {
	OrderID  uint `json:"order_id"`
	SellerID uint `json:"seller_id"`
}

// NewOrderStatusEmailTask 创建订单状态邮件任务
func NewOrderStatusEmailTask(payload OrderStatusEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusEmail, body), nil
}

// NewSellerNewOrderTask 创建卖家新订单通知任务
func NewSellerNewOrderTask(payload SellerNewOrderPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderSellerNewOrder, body), nil
}
