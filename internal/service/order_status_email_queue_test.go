package service

import (
	"testing"

	"github.com/reloop-next/internal/config"
	"github.com/reloop-next/internal/constants"
	"github.com/reloop-next/internal/queue"
)

func TestEnqueueOrderStatusEmailSkippedWhenQueueDisabled(t *testing.T) {
	client, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("new disabled client failed: %v", err)
	}

	skipped, err := enqueueOrderStatusEmailTaskIfEligible(nil, client, 1, constants.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("enqueue should not fail: %v", err)
	}
	if !skipped {
		t.Fatalf("disabled queue should skip the task")
	}
}

func TestEnqueueOrderStatusEmailSkippedWithoutClientOrOrder(t *testing.T) {
	skipped, err := enqueueOrderStatusEmailTaskIfEligible(nil, nil, 1, constants.OrderStatusConfirmed)
	if err != nil || !skipped {
		t.Fatalf("nil client should skip, got skipped=%v err=%v", skipped, err)
	}

	client, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	skipped, err = enqueueOrderStatusEmailTaskIfEligible(nil, client, 0, constants.OrderStatusShipping)
	if err != nil || !skipped {
		t.Fatalf("zero order id should skip, got skipped=%v err=%v", skipped, err)
	}
}
