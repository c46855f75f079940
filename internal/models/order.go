package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                      // 主键
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`                      // 订单编号
	UserID          uint           `gorm:"index;not null" json:"user_id"`                             // 买家ID
	Status          string         `gorm:"index;not null" json:"status"`                              // 订单状态
	TotalAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 实付金额
	PaymentMethod   string         `gorm:"type:varchar(20);not null;default:'cod'" json:"payment_method"` // 支付方式
	ShippingAddress string         `gorm:"type:varchar(500)" json:"shipping_address"`                 // 收货地址
	ConfirmedAt     *time.Time     `gorm:"index" json:"confirmed_at"`                                 // 确认时间
	ShippedAt       *time.Time     `gorm:"index" json:"shipped_at"`                                   // 发货时间
	CompletedAt     *time.Time     `gorm:"index" json:"completed_at"`                                 // 完成时间
	CanceledAt      *time.Time     `gorm:"index" json:"canceled_at"`                                  // 取消时间
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                                   // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
