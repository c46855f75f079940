package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/reloop-next/internal/logger"
	"github.com/reloop-next/internal/provider"
	"github.com/reloop-next/internal/queue"
	"github.com/reloop-next/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusEmail, c.handleOrderStatusEmail)
	mux.HandleFunc(queue.TaskOrderSellerNewOrder, c.handleSellerNewOrder)
}

func (c *Consumer) handleOrderStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	var receiverEmail string
	var locale string
	if order.UserID != 0 {
		user, err := c.UserRepo.GetByID(order.UserID)
		if err != nil {
			logger.Warnw("worker_order_status_email_fetch_user_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
			return err
		}
		if user != nil {
			receiverEmail = strings.TrimSpace(user.Email)
			locale = strings.TrimSpace(user.Locale)
		}
	}
	if receiverEmail == "" {
		logger.Debugw("worker_order_status_email_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_status_email_skip_email_service_nil", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.Status
	}
	input := service.OrderStatusEmailInput{
		OrderNo: order.OrderNo,
		Status:  status,
		Amount:  order.TotalAmount,
	}
	if err := c.EmailService.SendOrderStatusEmail(receiverEmail, input, locale); err != nil {
		logger.Warnw("worker_order_status_email_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"receiver_email", receiverEmail,
			"status", status,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleSellerNewOrder(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_seller_new_order_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.SellerNewOrderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_seller_new_order_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 || payload.SellerID == 0 {
		logger.Debugw("worker_seller_new_order_skip_invalid_payload", "order_id", payload.OrderID, "seller_id", payload.SellerID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_seller_new_order_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_seller_new_order_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	seller, err := c.UserRepo.GetByID(payload.SellerID)
	if err != nil {
		logger.Warnw("worker_seller_new_order_fetch_seller_failed", "order_id", order.ID, "seller_id", payload.SellerID, "error", err)
		return err
	}
	if seller == nil || strings.TrimSpace(seller.Email) == "" {
		logger.Debugw("worker_seller_new_order_skip_empty_receiver", "order_id", order.ID, "seller_id", payload.SellerID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_seller_new_order_skip_email_service_nil", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	input := service.SellerNewOrderEmailInput{
		OrderNo: order.OrderNo,
		Amount:  order.TotalAmount,
	}
	if err := c.EmailService.SendSellerNewOrderEmail(strings.TrimSpace(seller.Email), input, strings.TrimSpace(seller.Locale)); err != nil {
		logger.Warnw("worker_seller_new_order_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"seller_id", payload.SellerID,
			"error", err,
		)
		return err
	}
	return nil
}
