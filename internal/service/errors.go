package service

import "errors"

// 通用错误
var (
	ErrNotFound = errors.New("记录不存在")
)

// 用户认证相关错误
var (
	ErrInvalidEmail       = errors.New("邮箱格式不正确")
	ErrEmailExists        = errors.New("邮箱已被注册")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrUserDisabled       = errors.New("账号已被禁用")
	ErrWeakPassword       = errors.New("密码强度不足")
	ErrInvalidPassword    = errors.New("原密码错误")
	ErrInvalidRole        = errors.New("角色不合法")
	ErrProfileEmpty       = errors.New("没有需要更新的资料")
)

// 验证码相关错误
var (
	ErrCaptchaRequired      = errors.New("需要验证码")
	ErrCaptchaInvalid       = errors.New("验证码错误")
	ErrCaptchaConfigInvalid = errors.New("验证码配置不合法")
)

// 商品相关错误
var (
	ErrProductNotFound     = errors.New("商品不存在")
	ErrProductNotAvailable = errors.New("商品不可购买")
	ErrProductForbidden    = errors.New("无权操作该商品")
	ErrInvalidProductInput = errors.New("商品参数不合法")
	ErrProductPriceInvalid = errors.New("商品价格不合法")
)

// 购物车相关错误
var (
	ErrCartNotFound     = errors.New("购物车不存在")
	ErrCartItemNotFound = errors.New("购物车项不存在")
	ErrCartEmpty        = errors.New("购物车为空")
	ErrInvalidCartItem  = errors.New("购物车参数不合法")
)

// 订单相关错误
var (
	ErrOrderNotFound          = errors.New("订单不存在")
	ErrOrderForbidden         = errors.New("无权操作该订单")
	ErrOrderStatusInvalid     = errors.New("订单状态不合法")
	ErrOrderTransitionInvalid = errors.New("订单状态流转不允许")
	ErrInvalidOrderItem       = errors.New("订单项参数不合法")
	ErrOrderFetchFailed       = errors.New("订单查询失败")
	ErrOrderCreateFailed      = errors.New("订单创建失败")
	ErrOrderUpdateFailed      = errors.New("订单更新失败")
)

// 邮件相关错误
var (
	ErrEmailServiceNotConfigured = errors.New("邮件服务未配置")
	ErrEmailServiceDisabled      = errors.New("邮件服务未启用")
	ErrEmailRecipientRejected    = errors.New("收件地址被拒绝")
)
