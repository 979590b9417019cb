package admin

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/simplyfresh/simplyfresh/internal/http/response"
	"github.com/simplyfresh/simplyfresh/internal/models"
	"github.com/simplyfresh/simplyfresh/internal/repository"
	"github.com/simplyfresh/simplyfresh/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AdminPromoCodeRequest 优惠码创建/更新请求
type AdminPromoCodeRequest struct {
	Code            string `json:"code" binding:"required"`
	DiscountPercent string `json:"discount_percent" binding:"required"`
	ExpirationDate  string `json:"expiration_date" binding:"required"`
	UsageLimit      int    `json:"usage_limit"`
	IsActive        bool   `json:"is_active"`
}

func (r AdminPromoCodeRequest) toServiceInput() (service.PromoCodeInput, error) {
	percent, err := decimal.NewFromString(strings.TrimSpace(r.DiscountPercent))
	if err != nil {
		return service.PromoCodeInput{}, service.ErrPromoDataInvalid
	}
	expiration, err := parsePromoDate(r.ExpirationDate)
	if err != nil {
		return service.PromoCodeInput{}, service.ErrPromoDataInvalid
	}
	return service.PromoCodeInput{
		Code:            r.Code,
		DiscountPercent: models.NewMoneyFromDecimal(percent),
		ExpirationDate:  expiration,
		UsageLimit:      r.UsageLimit,
		IsActive:        r.IsActive,
	}, nil
}

// 过期日期接受日期或完整时间戳两种格式
func parsePromoDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func respondPromoWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPromoNotFound):
		respondError(c, response.CodeNotFound, "error.promo_not_found", nil)
	case errors.Is(err, service.ErrPromoDataInvalid):
		respondError(c, response.CodeBadRequest, "error.promo_data_invalid", nil)
	case errors.Is(err, service.ErrPromoCodeExists):
		respondError(c, response.CodeConflict, "error.promo_code_exists", nil)
	default:
		respondError(c, response.CodeInternal, "error.promo_save_failed", err)
	}
}

// GetAdminPromoCodes 优惠码列表
func (h *Handler) GetAdminPromoCodes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.PromoCodeListFilter{
		Page:      page,
		PageSize:  pageSize,
		Code:      strings.TrimSpace(c.Query("code")),
		OnlyValid: c.Query("only_valid") == "true",
	}
	if raw := strings.TrimSpace(c.Query("is_active")); raw != "" {
		active := raw == "true"
		filter.IsActive = &active
	}

	promos, total, err := h.PromoAdminService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.promo_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, promos, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetAdminPromoCode 优惠码详情
func (h *Handler) GetAdminPromoCode(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	promo, err := h.PromoAdminService.Get(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrPromoNotFound) {
			respondError(c, response.CodeNotFound, "error.promo_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.promo_fetch_failed", err)
		return
	}

	response.Success(c, promo)
}

// CreateAdminPromoCode 创建优惠码
func (h *Handler) CreateAdminPromoCode(c *gin.Context) {
	var req AdminPromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	input, err := req.toServiceInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.promo_data_invalid", nil)
		return
	}

	promo, err := h.PromoAdminService.Create(input)
	if err != nil {
		respondPromoWriteError(c, err)
		return
	}

	response.Success(c, promo)
}

// UpdateAdminPromoCode 更新优惠码
func (h *Handler) UpdateAdminPromoCode(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req AdminPromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	input, err := req.toServiceInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.promo_data_invalid", nil)
		return
	}

	promo, err := h.PromoAdminService.Update(uint(id), input)
	if err != nil {
		respondPromoWriteError(c, err)
		return
	}

	response.Success(c, promo)
}

// DeleteAdminPromoCode 删除优惠码
func (h *Handler) DeleteAdminPromoCode(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.PromoAdminService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrPromoNotFound) {
			respondError(c, response.CodeNotFound, "error.promo_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.promo_save_failed", err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
