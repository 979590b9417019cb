package constants

// 订单状态
const (
	OrderStatusPending   = "pending"   // 待发货
	OrderStatusShipped   = "shipped"   // 已发货
	OrderStatusDelivered = "delivered" // 已送达
	OrderStatusCancelled = "cancelled" // 已取消
)

// OrderStatuses 全部合法订单状态
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// 用户状态
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 用户角色
const (
	UserRoleMember = "member"
	UserRoleAdmin  = "admin"
)

// 积分流水类型
const (
	PointTxnTypeCheckout = "checkout" // 下单奖励
	PointTxnTypeAdjust   = "adjust"   // 管理员调整
)

// 积分流水方向
const (
	PointTxnDirectionIn  = "in"
	PointTxnDirectionOut = "out"
)

// 队列名称
const (
	QueueDefault = "default"
)

// 队列任务类型
const (
	TaskOrderStatusNotify = "order:status_notify"
	TaskCartExpire        = "cart:expire"
)

// 验证码场景
const (
	CaptchaSceneLogin      = "login"
	CaptchaSceneAdminLogin = "admin_login"
)

// 验证码提供方
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// 商品分类（种子数据与筛选用）
const (
	ProductCategoryFruits     = "fruits"
	ProductCategoryVegetables = "vegetables"
	ProductCategorySeafood    = "seafood"
	ProductCategoryDairy      = "dairy"
	ProductCategoryPantry     = "pantry"
)

// ProductCategories 全部商品分类
var ProductCategories = []string{
	ProductCategoryFruits,
	ProductCategoryVegetables,
	ProductCategorySeafood,
	ProductCategoryDairy,
	ProductCategoryPantry,
}
