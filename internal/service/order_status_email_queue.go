package service

import (
	"strings"

	"github.com/reloop-next/internal/queue"
	"github.com/reloop-next/internal/repository"
)

// enqueueOrderStatusEmailTaskIfEligible 根据订单收件邮箱决定是否入队状态邮件任务。
// 返回值 skipped 表示任务被跳过（例如订单没有可用的收件邮箱）。
func enqueueOrderStatusEmailTaskIfEligible(orderRepo repository.OrderRepository, queueClient *queue.Client, orderID uint, status string) (skipped bool, err error) {
	if queueClient == nil || !queueClient.Enabled() || orderID == 0 {
		return true, nil
	}
	if orderRepo == nil {
		if err := queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
			OrderID: orderID,
			Status:  strings.TrimSpace(status),
		}); err != nil {
			return false, err
		}
		return false, nil
	}

	receiverEmail, lookupErr := orderRepo.ResolveReceiverEmailByOrderID(orderID)
	if lookupErr == nil {
		if strings.TrimSpace(receiverEmail) == "" {
			return true, nil
		}
	}

	if err := queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
		OrderID: orderID,
		Status:  strings.TrimSpace(status),
	}); err != nil {
		return false, err
	}
	return false, nil
}
