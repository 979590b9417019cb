package service

import "errors"

// 业务错误定义，由 handler 层统一映射为响应码与多语言文案
var (
	// 认证
	ErrInvalidCredentials   = errors.New("用户名或密码错误")
	ErrEmailExists          = errors.New("邮箱已注册")
	ErrInvalidEmail         = errors.New("邮箱格式不合法")
	ErrUserNotFound         = errors.New("用户不存在")
	ErrAdminNotFound        = errors.New("管理员不存在")
	ErrUserDisabled         = errors.New("账号已被禁用")
	ErrPasswordMismatch     = errors.New("原密码错误")
	ErrCaptchaRequired      = errors.New("需要验证码")
	ErrCaptchaInvalid       = errors.New("验证码错误")
	ErrCaptchaConfigInvalid = errors.New("验证码配置不合法")
	ErrWeakPassword         = errors.New("密码强度不足")

	// 商品
	ErrProductNotFound     = errors.New("商品不存在")
	ErrProductNotAvailable = errors.New("商品已下架")
	ErrProductNameExists   = errors.New("商品名称已存在")
	ErrProductDataInvalid  = errors.New("商品数据不合法")
	ErrStockInsufficient   = errors.New("库存不足")

	// 购物车
	ErrCartItemInvalid     = errors.New("购物车项不合法")
	ErrCartQuantityInvalid = errors.New("购物车数量不合法")
	ErrCartEmpty           = errors.New("购物车为空")
	ErrCartTokenInvalid    = errors.New("购物车令牌不合法")

	// 优惠码
	// 对外统一为"无效或已过期"，不区分失败原因
	ErrPromoInvalid     = errors.New("优惠码无效或已过期")
	ErrPromoCodeExists  = errors.New("优惠码已存在")
	ErrPromoNotFound    = errors.New("优惠码不存在")
	ErrPromoDataInvalid = errors.New("优惠码数据不合法")

	// 订单与结算
	ErrOrderNotFound      = errors.New("订单不存在")
	ErrOrderStatusInvalid = errors.New("订单状态流转不合法")
	ErrShippingRequired   = errors.New("收货地址不能为空")
	ErrCheckoutFailed     = errors.New("下单失败")

	// 支付卡校验（仅格式校验，不发起扣款）
	ErrCardNameInvalid   = errors.New("持卡人姓名不合法")
	ErrCardNumberInvalid = errors.New("卡号不合法")
	ErrCardExpiryInvalid = errors.New("有效期格式不合法")
	ErrCardExpired       = errors.New("卡片已过期")
	ErrCardCVVInvalid    = errors.New("安全码不合法")
)
