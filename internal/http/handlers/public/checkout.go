package public

import (
	"strings"

	"github.com/simplyfresh/simplyfresh/internal/http/response"
	"github.com/simplyfresh/simplyfresh/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutPreviewRequest 结算预览请求
type CheckoutPreviewRequest struct {
	PromoCode string `json:"promo_code"`
}

// CheckoutPreview 结算预览
// 优惠码折扣基于当前购物车总价实时计算
func (h *Handler) CheckoutPreview(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req CheckoutPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	preview, err := h.CheckoutService.Preview(userID, req.PromoCode)
	if err != nil {
		respondCheckoutPreviewError(c, err)
		return
	}

	response.Success(c, preview)
}

// CheckoutRequest 提交订单请求
type CheckoutRequest struct {
	PromoCode       string `json:"promo_code"`
	ShippingAddress string `json:"shipping_address"`
	CardHolderName  string `json:"card_holder_name" binding:"required"`
	CardNumber      string `json:"card_number" binding:"required"`
	CardExpiry      string `json:"card_expiry" binding:"required"`
	CardCVV         string `json:"card_cvv" binding:"required"`
}

// Checkout 提交订单
func (h *Handler) Checkout(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	result, err := h.CheckoutService.Checkout(service.CheckoutInput{
		UserID:          userID,
		PromoCode:       strings.TrimSpace(req.PromoCode),
		ShippingAddress: req.ShippingAddress,
		Card: service.CardDetails{
			HolderName: req.CardHolderName,
			Number:     req.CardNumber,
			Expiry:     req.CardExpiry,
			CVV:        req.CardCVV,
		},
	})
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	response.Success(c, gin.H{
		"order":          result.Order,
		"summary":        result.Summary,
		"points_awarded": result.PointsAwarded,
	})
}
