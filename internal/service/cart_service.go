package service

import (
	"strings"

	"github.com/reloop-next/internal/constants"
	"github.com/reloop-next/internal/models"
	"github.com/reloop-next/internal/repository"

	"github.com/shopspring/decimal"
)

// CartDetail 购物车详情（用于响应）
type CartDetail struct {
	Cart  *models.Cart      `json:"cart"`
	Items []models.CartItem `json:"items"`
}

// AddCartItemInput 加入购物车输入
type AddCartItemInput struct {
	UserID    uint
	ProductID uint
	Color     string
	Quantity  int
}

// UpdateCartItemInput 更新购物车项输入
type UpdateCartItemInput struct {
	UserID    uint
	ProductID uint
	Color     string
	Quantity  int
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart 获取用户购物车（不存在则创建）
func (s *CartService) GetCart(userID uint) (*CartDetail, error) {
	if userID == 0 {
		return nil, ErrInvalidCartItem
	}
	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}
	items, err := s.cartRepo.ListItems(cart.ID)
	if err != nil {
		return nil, err
	}
	return &CartDetail{Cart: cart, Items: items}, nil
}

// AddItem 加入购物车（同商品同颜色合并数量，单价以首次加入为准）
// 数量缺省为 1
func (s *CartService) AddItem(input AddCartItemInput) (*CartDetail, error) {
	if input.UserID == 0 || input.ProductID == 0 || input.Quantity < 0 {
		return nil, ErrInvalidCartItem
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductNotAvailable
	}

	cart, err := s.cartRepo.GetOrCreateByUser(input.UserID)
	if err != nil {
		return nil, err
	}

	color := normalizeCartColor(input.Color)
	existing, err := s.cartRepo.GetItem(cart.ID, input.ProductID, color)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Quantity += input.Quantity
		existing.Subtotal = lineSubtotal(existing.UnitPrice, existing.Quantity)
		if err := s.cartRepo.UpdateItem(existing); err != nil {
			return nil, err
		}
	} else {
		item := &models.CartItem{
			CartID:    cart.ID,
			ProductID: input.ProductID,
			Color:     color,
			Quantity:  input.Quantity,
			UnitPrice: product.PriceAmount,
			Subtotal:  lineSubtotal(product.PriceAmount, input.Quantity),
		}
		if err := s.cartRepo.CreateItem(item); err != nil {
			// 并发加购撞上唯一索引时回退为合并数量
			current, getErr := s.cartRepo.GetItem(cart.ID, input.ProductID, color)
			if getErr != nil || current == nil {
				return nil, err
			}
			current.Quantity += input.Quantity
			current.Subtotal = lineSubtotal(current.UnitPrice, current.Quantity)
			if err := s.cartRepo.UpdateItem(current); err != nil {
				return nil, err
			}
		}
	}

	if err := s.recomputeTotal(cart.ID); err != nil {
		return nil, err
	}
	return s.GetCart(input.UserID)
}

// UpdateItem 更新购物车项数量（数量归零即删除）
func (s *CartService) UpdateItem(input UpdateCartItemInput) (*CartDetail, error) {
	if input.UserID == 0 || input.ProductID == 0 {
		return nil, ErrInvalidCartItem
	}
	cart, err := s.cartRepo.GetByUser(input.UserID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	color := normalizeCartColor(input.Color)
	item, err := s.cartRepo.GetItem(cart.ID, input.ProductID, color)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	if input.Quantity <= 0 {
		if err := s.cartRepo.DeleteItem(item.ID); err != nil {
			return nil, err
		}
	} else {
		item.Quantity = input.Quantity
		item.Subtotal = lineSubtotal(item.UnitPrice, item.Quantity)
		if err := s.cartRepo.UpdateItem(item); err != nil {
			return nil, err
		}
	}

	if err := s.recomputeTotal(cart.ID); err != nil {
		return nil, err
	}
	return s.GetCart(input.UserID)
}

// RemoveItem 删除购物车项
func (s *CartService) RemoveItem(userID, productID uint, color string) (*CartDetail, error) {
	if userID == 0 || productID == 0 {
		return nil, ErrInvalidCartItem
	}
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	item, err := s.cartRepo.GetItem(cart.ID, productID, normalizeCartColor(color))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	if err := s.cartRepo.DeleteItem(item.ID); err != nil {
		return nil, err
	}

	if err := s.recomputeTotal(cart.ID); err != nil {
		return nil, err
	}
	return s.GetCart(userID)
}

// ClearCart 清空购物车（从未创建过购物车时返回不存在）
func (s *CartService) ClearCart(userID uint) (*CartDetail, error) {
	if userID == 0 {
		return nil, ErrInvalidCartItem
	}
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	if err := s.cartRepo.ClearItems(cart.ID); err != nil {
		return nil, err
	}
	if err := s.recomputeTotal(cart.ID); err != nil {
		return nil, err
	}
	return s.GetCart(userID)
}

// recomputeTotal 重算购物车合计（对已存的小计求和，不重新乘算）
func (s *CartService) recomputeTotal(cartID uint) error {
	items, err := s.cartRepo.ListItems(cartID)
	if err != nil {
		return err
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal.Decimal)
	}
	return s.cartRepo.UpdateTotal(cartID, models.NewMoneyFromDecimal(total))
}

func lineSubtotal(unitPrice models.Money, quantity int) models.Money {
	return models.NewMoneyFromDecimal(unitPrice.Decimal.Mul(decimal.NewFromInt(int64(quantity))))
}

func normalizeCartColor(color string) string {
	trimmed := strings.TrimSpace(color)
	if trimmed == "" {
		return constants.CartColorDefault
	}
	return trimmed
}
