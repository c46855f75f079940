package repository

import (
	"errors"

	"github.com/reloop-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	GetByUser(userID uint) (*models.Cart, error)
	GetOrCreateByUser(userID uint) (*models.Cart, error)
	GetItem(cartID, productID uint, color string) (*models.CartItem, error)
	ListItems(cartID uint) ([]models.CartItem, error)
	CreateItem(item *models.CartItem) error
	UpdateItem(item *models.CartItem) error
	DeleteItem(id uint) error
	ClearItems(cartID uint) error
	UpdateTotal(cartID uint, total models.Money) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// GetByUser 获取用户购物车
func (r *GormCartRepository) GetByUser(userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetOrCreateByUser 获取用户购物车（不存在则创建）
func (r *GormCartRepository) GetOrCreateByUser(userID uint) (*models.Cart, error) {
	cart, err := r.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	created := models.Cart{UserID: userID}
	if err := r.db.Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

// GetItem 按商品与颜色获取购物车项
func (r *GormCartRepository) GetItem(cartID, productID uint, color string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("cart_id = ? AND product_id = ? AND color = ?", cartID, productID, color).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// ListItems 获取购物车项列表
func (r *GormCartRepository) ListItems(cartID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Where("cart_id = ?", cartID).Order("updated_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem 创建购物车项
func (r *GormCartRepository) CreateItem(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Create(item).Error
}

// UpdateItem 更新购物车项数量与小计
func (r *GormCartRepository) UpdateItem(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	updates := map[string]interface{}{
		"quantity": item.Quantity,
		"subtotal": item.Subtotal,
	}
	return r.db.Model(&models.CartItem{}).Where("id = ?", item.ID).Updates(updates).Error
}

// DeleteItem 删除购物车项
func (r *GormCartRepository) DeleteItem(id uint) error {
	return r.db.Delete(&models.CartItem{}, id).Error
}

// ClearItems 清空购物车项
func (r *GormCartRepository) ClearItems(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

// UpdateTotal 更新购物车合计金额
func (r *GormCartRepository) UpdateTotal(cartID uint, total models.Money) error {
	return r.db.Model(&models.Cart{}).Where("id = ?", cartID).Update("total_amount", total).Error
}
