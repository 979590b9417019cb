package public

import (
	"errors"
	"strconv"
	"strings"

	handlershared "github.com/simplyfresh/simplyfresh/internal/http/handlers/shared"
	"github.com/simplyfresh/simplyfresh/internal/http/response"
	"github.com/simplyfresh/simplyfresh/internal/models"
	"github.com/simplyfresh/simplyfresh/internal/repository"
	"github.com/simplyfresh/simplyfresh/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ListProducts 商品列表（仅上架商品）
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		Category:   strings.TrimSpace(c.Query("category")),
		Search:     strings.TrimSpace(c.Query("search")),
		OrderBy:    strings.TrimSpace(c.Query("order_by")),
		OnlyActive: true,
	}
	if raw := strings.TrimSpace(c.Query("price_min")); raw != "" {
		if amount, err := decimal.NewFromString(raw); err == nil && !amount.IsNegative() {
			min := models.NewMoneyFromDecimal(amount)
			filter.PriceMin = &min
		}
	}
	if raw := strings.TrimSpace(c.Query("price_max")); raw != "" {
		if amount, err := decimal.NewFromString(raw); err == nil && !amount.IsNegative() {
			max := models.NewMoneyFromDecimal(amount)
			filter.PriceMax = &max
		}
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.product_id_invalid", nil)
		return
	}

	product, err := h.ProductService.Get(uint(id), true)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, product)
}

// ListSpotlightProducts 门店精选商品
func (h *Handler) ListSpotlightProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if limit <= 0 || limit > h.Config.Store.SpotlightMaxItems {
		limit = h.Config.Store.SpotlightMaxItems
	}

	products, err := h.ProductService.Spotlight(limit)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, products)
}
