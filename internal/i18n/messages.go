package i18n

var catalog = map[string]map[string]string{
	LocaleZH: {
		"error.bad_request":              "请求参数不合法",
		"error.unauthorized":             "请先登录",
		"error.forbidden":                "无权执行该操作",
		"error.not_found":                "记录不存在",
		"error.internal":                 "服务器内部错误",
		"error.user_id_invalid":          "用户标识不合法",
		"error.user_id_type_invalid":     "用户标识类型错误",
		"error.auth_header_missing":      "缺少认证信息",
		"error.auth_header_invalid":      "认证信息格式不正确",
		"error.token_invalid":            "登录凭证无效，请重新登录",
		"error.token_revoked":            "登录凭证已失效，请重新登录",
		"error.jwt_secret_missing":       "服务端认证配置缺失",
		"error.rate_limited":             "请求过于频繁，请稍后再试",
		"error.rate_limit_unavailable":   "限流服务暂不可用，请稍后再试",
		"error.login_rate_limited":       "登录尝试过于频繁，请稍后再试",
		"error.invalid_email":            "邮箱格式不正确",
		"error.email_exists":             "邮箱已被注册",
		"error.invalid_credentials":      "邮箱或密码错误",
		"error.user_disabled":            "账号已被禁用",
		"error.weak_password":            "密码强度不足",
		"error.password_min_length":      "密码长度不能少于 %d 位",
		"error.password_require_upper":   "密码需要包含大写字母",
		"error.password_require_lower":   "密码需要包含小写字母",
		"error.password_require_number":  "密码需要包含数字",
		"error.password_require_special": "密码需要包含特殊字符",
		"error.invalid_password":         "原密码错误",
		"error.invalid_role":             "角色不合法",
		"error.profile_empty":            "没有需要更新的资料",
		"error.captcha_required":         "请完成验证码校验",
		"error.captcha_invalid":          "验证码错误",
		"error.captcha_config_invalid":   "验证码配置不合法",
		"error.product_not_found":        "商品不存在",
		"error.product_not_available":    "商品已下架或不可购买",
		"error.product_forbidden":        "无权操作该商品",
		"error.product_invalid":          "商品参数不合法",
		"error.product_price_invalid":    "商品价格不合法",
		"error.cart_not_found":           "购物车不存在",
		"error.cart_item_not_found":      "购物车中没有该商品",
		"error.cart_empty":               "购物车为空",
		"error.cart_invalid":             "购物车参数不合法",
		"error.order_not_found":          "订单不存在",
		"error.order_forbidden":          "无权操作该订单",
		"error.order_status_invalid":     "订单状态不合法",
		"error.order_transition_invalid": "订单状态流转不允许",
		"error.order_item_invalid":       "订单项参数不合法",
		"error.order_create_failed":      "订单创建失败",
		"error.order_fetch_failed":       "订单查询失败",
		"error.order_update_failed":      "订单更新失败",
		"order.status.pending":           "待确认",
		"order.status.confirmed":         "已确认",
		"order.status.shipping":          "配送中",
		"order.status.completed":         "已完成",
		"order.status.canceled":          "已取消",
		"email.order_status.subject":     "订单状态更新：%s",
		"email.order_status.body":        "您的订单 %s 状态已更新为「%s」，订单金额 %s 元。",
		"email.seller_new_order.subject": "您有新的订单",
		"email.seller_new_order.body":    "订单 %s 中包含您发布的商品，订单金额 %s 元，请及时确认。",
	},
	LocaleTW: {
		"error.bad_request":              "請求參數不合法",
		"error.unauthorized":             "請先登入",
		"error.forbidden":                "無權執行該操作",
		"error.not_found":                "記錄不存在",
		"error.internal":                 "伺服器內部錯誤",
		"error.user_id_invalid":          "用戶標識不合法",
		"error.user_id_type_invalid":     "用戶標識類型錯誤",
		"error.auth_header_missing":      "缺少認證資訊",
		"error.auth_header_invalid":      "認證資訊格式不正確",
		"error.token_invalid":            "登入憑證無效，請重新登入",
		"error.token_revoked":            "登入憑證已失效，請重新登入",
		"error.jwt_secret_missing":       "伺服端認證配置缺失",
		"error.rate_limited":             "請求過於頻繁，請稍後再試",
		"error.rate_limit_unavailable":   "限流服務暫不可用，請稍後再試",
		"error.login_rate_limited":       "登入嘗試過於頻繁，請稍後再試",
		"error.invalid_email":            "郵箱格式不正確",
		"error.email_exists":             "郵箱已被註冊",
		"error.invalid_credentials":      "郵箱或密碼錯誤",
		"error.user_disabled":            "帳號已被停用",
		"error.weak_password":            "密碼強度不足",
		"error.password_min_length":      "密碼長度不能少於 %d 位",
		"error.password_require_upper":   "密碼需要包含大寫字母",
		"error.password_require_lower":   "密碼需要包含小寫字母",
		"error.password_require_number":  "密碼需要包含數字",
		"error.password_require_special": "密碼需要包含特殊字元",
		"error.invalid_password":         "原密碼錯誤",
		"error.invalid_role":             "角色不合法",
		"error.profile_empty":            "沒有需要更新的資料",
		"error.captcha_required":         "請完成驗證碼校驗",
		"error.captcha_invalid":          "驗證碼錯誤",
		"error.captcha_config_invalid":   "驗證碼配置不合法",
		"error.product_not_found":        "商品不存在",
		"error.product_not_available":    "商品已下架或不可購買",
		"error.product_forbidden":        "無權操作該商品",
		"error.product_invalid":          "商品參數不合法",
		"error.product_price_invalid":    "商品價格不合法",
		"error.cart_not_found":           "購物車不存在",
		"error.cart_item_not_found":      "購物車中沒有該商品",
		"error.cart_empty":               "購物車為空",
		"error.cart_invalid":             "購物車參數不合法",
		"error.order_not_found":          "訂單不存在",
		"error.order_forbidden":          "無權操作該訂單",
		"error.order_status_invalid":     "訂單狀態不合法",
		"error.order_transition_invalid": "訂單狀態流轉不允許",
		"error.order_item_invalid":       "訂單項參數不合法",
		"error.order_create_failed":      "訂單建立失敗",
		"error.order_fetch_failed":       "訂單查詢失敗",
		"error.order_update_failed":      "訂單更新失敗",
		"order.status.pending":           "待確認",
		"order.status.confirmed":         "已確認",
		"order.status.shipping":          "配送中",
		"order.status.completed":         "已完成",
		"order.status.canceled":          "已取消",
		"email.order_status.subject":     "訂單狀態更新：%s",
		"email.order_status.body":        "您的訂單 %s 狀態已更新為「%s」，訂單金額 %s 元。",
		"email.seller_new_order.subject": "您有新的訂單",
		"email.seller_new_order.body":    "訂單 %s 中包含您發佈的商品，訂單金額 %s 元，請及時確認。",
	},
	LocaleEN: {
		"error.bad_request":              "Invalid request parameters",
		"error.unauthorized":             "Please sign in first",
		"error.forbidden":                "You are not allowed to perform this action",
		"error.not_found":                "Record not found",
		"error.internal":                 "Internal server error",
		"error.user_id_invalid":          "Invalid user identifier",
		"error.user_id_type_invalid":     "Invalid user identifier type",
		"error.auth_header_missing":      "Missing authorization header",
		"error.auth_header_invalid":      "Invalid authorization header",
		"error.token_invalid":            "Invalid token, please sign in again",
		"error.token_revoked":            "Token has been revoked, please sign in again",
		"error.jwt_secret_missing":       "Server authentication is not configured",
		"error.rate_limited":             "Too many requests, please try again later",
		"error.rate_limit_unavailable":   "Rate limiter is unavailable, please try again later",
		"error.login_rate_limited":       "Too many login attempts, please try again later",
		"error.invalid_email":            "Invalid email address",
		"error.email_exists":             "Email is already registered",
		"error.invalid_credentials":      "Incorrect email or password",
		"error.user_disabled":            "Account is disabled",
		"error.weak_password":            "Password is too weak",
		"error.password_min_length":      "Password must be at least %d characters",
		"error.password_require_upper":   "Password must contain an uppercase letter",
		"error.password_require_lower":   "Password must contain a lowercase letter",
		"error.password_require_number":  "Password must contain a digit",
		"error.password_require_special": "Password must contain a special character",
		"error.invalid_password":         "Incorrect current password",
		"error.invalid_role":             "Invalid role",
		"error.profile_empty":            "Nothing to update",
		"error.captcha_required":         "Captcha verification required",
		"error.captcha_invalid":          "Incorrect captcha",
		"error.captcha_config_invalid":   "Invalid captcha configuration",
		"error.product_not_found":        "Product not found",
		"error.product_not_available":    "Product is not available",
		"error.product_forbidden":        "You are not allowed to manage this product",
		"error.product_invalid":          "Invalid product parameters",
		"error.product_price_invalid":    "Invalid product price",
		"error.cart_not_found":           "Cart not found",
		"error.cart_item_not_found":      "Item not found in cart",
		"error.cart_empty":               "Cart is empty",
		"error.cart_invalid":             "Invalid cart parameters",
		"error.order_not_found":          "Order not found",
		"error.order_forbidden":          "You are not allowed to manage this order",
		"error.order_status_invalid":     "Invalid order status",
		"error.order_transition_invalid": "Order status transition not allowed",
		"error.order_item_invalid":       "Invalid order item parameters",
		"error.order_create_failed":      "Failed to create order",
		"error.order_fetch_failed":       "Failed to fetch order",
		"error.order_update_failed":      "Failed to update order",
		"order.status.pending":           "Pending",
		"order.status.confirmed":         "Confirmed",
		"order.status.shipping":          "Shipping",
		"order.status.completed":         "Completed",
		"order.status.canceled":          "Canceled",
		"email.order_status.subject":     "Order status updated: %s",
		"email.order_status.body":        "Your order %s is now \"%s\". Order total: %s.",
		"email.seller_new_order.subject": "You have a new order",
		"email.seller_new_order.body":    "Order %s contains your listed items. Order total: %s. Please confirm it soon.",
	},
}
