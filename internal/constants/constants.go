package constants

// 订单状态常量
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipping  = "shipping"
	OrderStatusCompleted = "completed"
	OrderStatusCanceled  = "canceled"
)

// 支付方式常量
const (
	PaymentMethodCOD = "cod"
)

// 用户角色常量
const (
	UserRoleCustomer = "customer"
	UserRoleSeller   = "seller"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 商品成色常量
const (
	ProductConditionLikeNew = "like_new"
	ProductConditionGood    = "good"
	ProductConditionFair    = "fair"
)

// 购物车默认颜色占位值
const (
	CartColorDefault = "default"
)

// 验证码提供方常量
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// 验证码校验场景常量
const (
	CaptchaSceneLogin    = "login"
	CaptchaSceneRegister = "register"
)

// 队列常量
const (
	QueueDefault            = "default"
	TaskOrderStatusEmail    = "order:status_email"
	TaskOrderSellerNewOrder = "order:seller_new_order"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "rl"
)

// 站点语言常量
const (
	LocaleZhCN = "zh-CN"
	LocaleZhTW = "zh-TW"
	LocaleEnUS = "en-US"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleZhCN, LocaleZhTW, LocaleEnUS}
