package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表
type OrderItem struct {
	ID         uint           `gorm:"primarykey" json:"id"`                                     // 主键
	OrderID    uint           `gorm:"index;not null" json:"order_id"`                           // 订单ID
	ProductID  uint           `gorm:"index;not null" json:"product_id"`                         // 商品ID
	SellerID   uint           `gorm:"index;not null" json:"seller_id"`                          // 卖家ID（下单时冗余）
	Title      string         `gorm:"type:varchar(200);not null" json:"title"`                  // 商品标题快照
	Color      string         `gorm:"type:varchar(50);not null;default:'default'" json:"color"` // 颜色快照
	UnitPrice  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`  // 单价
	Quantity   int            `gorm:"not null" json:"quantity"`                                 // 数量
	TotalPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // 小计
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                                  // 创建时间
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`                                  // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                           // 软删除时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
	Seller  *User    `gorm:"foreignKey:SellerID" json:"seller,omitempty"`   // 卖家信息
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
