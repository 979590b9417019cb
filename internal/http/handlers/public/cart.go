package public

import (
	"strconv"
	"time"

	"github.com/simplyfresh/simplyfresh/internal/http/response"
	"github.com/simplyfresh/simplyfresh/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartItemRequest 购物车条目请求
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

func cartView(lines []service.CartLineDetail) gin.H {
	return gin.H{
		"lines":        lines,
		"item_count":   len(lines),
		"total_amount": service.CartTotal(lines),
	}
}

// GetCart 获取当前用户购物车
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	lines, err := h.CartService.ListByUser(userID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, cartView(lines))
}

// AddCartItem 添加商品到购物车（已存在则数量累加）
func (h *Handler) AddCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CartService.AddItem(userID, req.ProductID, req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}
	h.scheduleUserCartExpire(c, userID)

	lines, err := h.CartService.ListByUser(userID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, cartView(lines))
}

// UpdateCartItem 更新购物车商品数量（数量为 0 或负数即移除）
func (h *Handler) UpdateCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CartService.UpdateQuantity(userID, uint(productID), req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}
	h.scheduleUserCartExpire(c, userID)

	lines, err := h.CartService.ListByUser(userID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, cartView(lines))
}

// RemoveCartItem 从购物车移除商品
func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
		return
	}

	if err := h.CartService.RemoveItem(userID, uint(productID)); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"removed": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.CartService.Clear(userID); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}

// GetGuestCart 获取游客购物车
func (h *Handler) GetGuestCart(c *gin.Context) {
	token := getCartToken(c)
	if token == "" {
		response.Success(c, cartView(nil))
		return
	}

	lines, err := h.CartService.ListGuest(c.Request.Context(), token)
	if err != nil {
		respondCartError(c, err)
		return
	}

	view := cartView(lines)
	view["cart_token"] = token
	response.Success(c, view)
}

// AddGuestCartItem 游客添加商品到购物车
// 首次调用未携带 X-Cart-Token 时生成新 Token 并随响应返回
func (h *Handler) AddGuestCartItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	token := getCartToken(c)
	if token == "" {
		token = uuid.NewString()
	}

	if err := h.CartService.AddGuestItem(c.Request.Context(), token, req.ProductID, req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}
	h.scheduleGuestCartExpire(c, token)

	lines, err := h.CartService.ListGuest(c.Request.Context(), token)
	if err != nil {
		respondCartError(c, err)
		return
	}

	view := cartView(lines)
	view["cart_token"] = token
	response.Success(c, view)
}

// UpdateGuestCartItem 游客更新购物车商品数量
func (h *Handler) UpdateGuestCartItem(c *gin.Context) {
	token := getCartToken(c)
	if token == "" {
		respondError(c, response.CodeBadRequest, "error.cart_token_invalid", nil)
		return
	}

	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CartService.UpdateGuestQuantity(c.Request.Context(), token, uint(productID), req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}
	h.scheduleGuestCartExpire(c, token)

	lines, err := h.CartService.ListGuest(c.Request.Context(), token)
	if err != nil {
		respondCartError(c, err)
		return
	}

	view := cartView(lines)
	view["cart_token"] = token
	response.Success(c, view)
}

// 游客购物车写入后安排延迟清理任务，入队失败不影响接口
func (h *Handler) scheduleGuestCartExpire(c *gin.Context, token string) {
	if h.QueueClient == nil || !h.QueueClient.Enabled() {
		return
	}
	ttl := time.Duration(h.Config.Cart.GuestTTLHours) * time.Hour
	if ttl <= 0 {
		return
	}
	if err := h.QueueClient.EnqueueCartExpire(token, ttl); err != nil {
		requestLog(c).Warnw("guest_cart_expire_enqueue_failed", "error", err)
	}
}

// 用户购物车写入后安排闲置清理任务，Worker 执行时会再校验活跃度
func (h *Handler) scheduleUserCartExpire(c *gin.Context, userID uint) {
	if h.QueueClient == nil || !h.QueueClient.Enabled() {
		return
	}
	ttl := time.Duration(h.Config.Cart.GuestTTLHours) * time.Hour
	if ttl <= 0 {
		return
	}
	if err := h.QueueClient.EnqueueUserCartExpire(userID, ttl); err != nil {
		requestLog(c).Warnw("user_cart_expire_enqueue_failed", "error", err)
	}
}
