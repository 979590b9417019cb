package i18n

var catalogs = map[string]map[string]string{
	LocaleEnUS: {
		"error.bad_request":           "invalid request",
		"error.unauthorized":          "unauthorized",
		"error.forbidden":             "permission denied",
		"error.not_found":             "not found",
		"error.internal":              "internal error",
		"error.jwt_secret_missing":    "authentication is not configured",
		"error.auth_header_missing":   "authorization header missing",
		"error.auth_header_invalid":   "authorization header invalid",
		"error.token_invalid":         "invalid token",
		"error.token_revoked":         "token has been revoked",
		"error.user_id_invalid":       "invalid user id",
		"error.user_id_type_invalid":  "invalid user id type",
		"error.admin_id_invalid":      "invalid admin id",
		"error.admin_id_type_invalid": "invalid admin id type",

		"error.rate_limited":           "too many requests, retry in %d seconds",
		"error.rate_limit_unavailable": "rate limiter unavailable",
		"error.login_too_many":         "too many login attempts, retry in %d seconds",

		"error.invalid_credentials": "incorrect email or password",
		"error.login_invalid":       "incorrect credentials",
		"error.login_failed":        "login failed, please try again",
		"error.register_failed":     "registration failed, please try again",
		"error.email_exists":        "this email is already registered",
		"error.email_invalid":       "invalid email address",
		"error.password_policy":     "password does not meet the security policy",
		"error.password_invalid":    "incorrect password",
		"error.password_mismatch":   "current password is incorrect",
		"error.password_weak":       "password does not meet the security policy",
		"error.user_disabled":       "this account has been disabled",
		"error.user_not_found":      "user not found",
		"error.admin_not_found":     "admin not found",
		"error.captcha_required":    "captcha is required",
		"error.captcha_invalid":     "captcha verification failed",

		"error.password_change_failed":   "failed to change password",
		"error.profile_update_failed":    "failed to update profile",
		"error.password_min_length":      "password must be at least %d characters",
		"error.password_require_upper":   "password must contain an uppercase letter",
		"error.password_require_lower":   "password must contain a lowercase letter",
		"error.password_require_number":  "password must contain a digit",
		"error.password_require_special": "password must contain a special character",

		"error.captcha_unavailable":     "captcha service unavailable",
		"error.captcha_generate_failed": "failed to generate captcha",
		"error.captcha_verify_failed":   "failed to verify captcha",

		"error.product_not_found":     "product not found",
		"error.product_not_available": "product is not available",
		"error.product_invalid":       "invalid product data",
		"error.product_id_invalid":    "invalid product id",
		"error.product_data_invalid":  "invalid product data",
		"error.product_name_exists":   "a product with this name already exists",
		"error.product_fetch_failed":  "failed to load products",
		"error.product_save_failed":   "failed to save product",
		"error.stock_insufficient":    "insufficient stock",

		"error.cart_item_invalid":      "invalid cart item",
		"error.cart_quantity_invalid":  "quantity must be a positive integer",
		"error.cart_fetch_failed":      "failed to load cart",
		"error.cart_update_failed":     "failed to update cart",
		"error.cart_empty":             "your cart is empty",
		"error.cart_token_invalid":     "invalid cart token",
		"error.promo_invalid":          "invalid or expired promo code",
		"error.promo_code_exists":      "promo code already exists",
		"error.promo_not_found":        "promo code not found",
		"error.promo_data_invalid":     "invalid promo code data",
		"error.promo_fetch_failed":     "failed to load promo codes",
		"error.promo_save_failed":      "failed to save promo code",
		"error.order_not_found":        "order not found",
		"error.order_id_invalid":       "invalid order id",
		"error.order_status_invalid":   "invalid order status transition",
		"error.order_fetch_failed":     "failed to load orders",
		"error.order_save_failed":      "failed to save order",
		"error.checkout_failed":        "checkout failed, please try again",
		"error.shipping_required":      "shipping address is required",

		"error.user_fetch_failed":    "failed to load users",
		"error.user_save_failed":     "failed to save user",
		"error.user_status_invalid":  "invalid user status",
		"error.authz_fetch_failed":   "failed to load authorization data",
		"error.authz_save_failed":    "failed to save authorization data",
		"error.authz_role_invalid":   "invalid role name",

		"error.card_name_invalid":   "cardholder name is required",
		"error.card_number_invalid": "card number must be 16 digits",
		"error.card_expiry_invalid": "expiry date must be in MM/YY format",
		"error.card_expired":        "this card has expired",
		"error.card_cvv_invalid":    "CVV must be 3 or 4 digits",

		"error.points_fetch_failed": "failed to load reward points",
	},
	LocaleZhCN: {
		"error.bad_request":           "请求参数错误",
		"error.unauthorized":          "未授权",
		"error.forbidden":             "没有权限",
		"error.not_found":             "资源不存在",
		"error.internal":              "服务器内部错误",
		"error.jwt_secret_missing":    "认证服务未配置",
		"error.auth_header_missing":   "缺少认证头",
		"error.auth_header_invalid":   "认证头格式错误",
		"error.token_invalid":         "无效的 token",
		"error.token_revoked":         "token 已失效",
		"error.user_id_invalid":       "无效的用户ID",
		"error.user_id_type_invalid":  "用户ID类型错误",
		"error.admin_id_invalid":      "无效的管理员ID",
		"error.admin_id_type_invalid": "管理员ID类型错误",

		"error.rate_limited":           "请求过于频繁，请 %d 秒后重试",
		"error.rate_limit_unavailable": "限流服务不可用",
		"error.login_too_many":         "登录尝试过多，请 %d 秒后重试",

		"error.invalid_credentials": "邮箱或密码错误",
		"error.login_invalid":       "用户名或密码错误",
		"error.login_failed":        "登录失败，请重试",
		"error.register_failed":     "注册失败，请重试",
		"error.email_exists":        "该邮箱已注册",
		"error.email_invalid":       "邮箱格式不正确",
		"error.password_policy":     "密码不符合安全策略",
		"error.password_invalid":    "密码错误",
		"error.password_mismatch":   "当前密码错误",
		"error.password_weak":       "密码不符合安全策略",
		"error.user_disabled":       "账号已被禁用",
		"error.user_not_found":      "用户不存在",
		"error.admin_not_found":     "管理员不存在",
		"error.captcha_required":    "请输入验证码",
		"error.captcha_invalid":     "验证码校验失败",

		"error.password_change_failed":   "修改密码失败",
		"error.profile_update_failed":    "更新资料失败",
		"error.password_min_length":      "密码长度至少 %d 位",
		"error.password_require_upper":   "密码必须包含大写字母",
		"error.password_require_lower":   "密码必须包含小写字母",
		"error.password_require_number":  "密码必须包含数字",
		"error.password_require_special": "密码必须包含特殊字符",

		"error.captcha_unavailable":     "验证码服务不可用",
		"error.captcha_generate_failed": "验证码生成失败",
		"error.captcha_verify_failed":   "验证码校验异常",

		"error.product_not_found":     "商品不存在",
		"error.product_not_available": "商品已下架",
		"error.product_invalid":       "商品数据不合法",
		"error.product_id_invalid":    "无效的商品ID",
		"error.product_data_invalid":  "商品数据不合法",
		"error.product_name_exists":   "同名商品已存在",
		"error.product_fetch_failed":  "商品加载失败",
		"error.product_save_failed":   "商品保存失败",
		"error.stock_insufficient":    "库存不足",

		"error.cart_item_invalid":      "购物车项不合法",
		"error.cart_quantity_invalid":  "数量必须为正整数",
		"error.cart_fetch_failed":      "购物车加载失败",
		"error.cart_update_failed":     "购物车更新失败",
		"error.cart_empty":             "购物车为空",
		"error.cart_token_invalid":     "无效的购物车令牌",
		"error.promo_invalid":          "优惠码无效或已过期",
		"error.promo_code_exists":      "优惠码已存在",
		"error.promo_not_found":        "优惠码不存在",
		"error.promo_data_invalid":     "优惠码数据不合法",
		"error.promo_fetch_failed":     "优惠码加载失败",
		"error.promo_save_failed":      "优惠码保存失败",
		"error.order_not_found":        "订单不存在",
		"error.order_id_invalid":       "无效的订单ID",
		"error.order_status_invalid":   "订单状态流转不合法",
		"error.order_fetch_failed":     "订单加载失败",
		"error.order_save_failed":      "订单保存失败",
		"error.checkout_failed":        "结算失败，请重试",
		"error.shipping_required":      "收货地址不能为空",

		"error.user_fetch_failed":    "用户加载失败",
		"error.user_save_failed":     "用户保存失败",
		"error.user_status_invalid":  "用户状态不合法",
		"error.authz_fetch_failed":   "权限数据加载失败",
		"error.authz_save_failed":    "权限数据保存失败",
		"error.authz_role_invalid":   "角色名不合法",

		"error.card_name_invalid":   "持卡人姓名不能为空",
		"error.card_number_invalid": "卡号必须为16位数字",
		"error.card_expiry_invalid": "有效期格式必须为 MM/YY",
		"error.card_expired":        "该卡已过期",
		"error.card_cvv_invalid":    "CVV 必须为3或4位数字",

		"error.points_fetch_failed": "积分加载失败",
	},
}
