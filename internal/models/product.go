package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 二手商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                      // 主键
	SellerID    uint           `gorm:"not null;index" json:"seller_id"`                           // 卖家ID
	Title       string         `gorm:"type:varchar(200);not null" json:"title"`                   // 标题
	Description string         `gorm:"type:text" json:"description"`                              // 描述
	Category    string         `gorm:"type:varchar(50);index" json:"category"`                    // 分类
	Condition   string         `gorm:"type:varchar(20);not null;default:'good'" json:"condition"` // 成色（like_new/good/fair）
	PriceAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"` // 价格金额
	Colors      StringArray    `gorm:"type:json" json:"colors"`                                   // 可选颜色数组
	Images      StringArray    `gorm:"type:json" json:"images"`                                   // 图片数组
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`                       // 是否上架
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`                         // 排序权重
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	// 关联
	Seller *User `gorm:"foreignKey:SellerID" json:"seller,omitempty"` // 卖家信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
