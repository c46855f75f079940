package models

import (
	"time"
)

// CartItem 购物车项
// 不做软删除：删除的行必须真正释放 (cart_id, product_id, color) 唯一索引，
// 否则同款商品无法再次加入购物车。
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                                          // 主键
	CartID    uint      `gorm:"not null;uniqueIndex:idx_cart_product_color" json:"cart_id"`                    // 购物车ID
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_product_color" json:"product_id"`                 // 商品ID
	Color     string    `gorm:"type:varchar(50);not null;default:'default';uniqueIndex:idx_cart_product_color" json:"color"` // 颜色
	Quantity  int       `gorm:"not null" json:"quantity"`                                                      // 数量
	UnitPrice Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`                       // 加入时锁定的单价
	Subtotal  Money     `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`                         // 小计（单价 × 数量）
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                                       // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                                                       // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
