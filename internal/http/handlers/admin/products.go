package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/simplyfresh/simplyfresh/internal/constants"
	"github.com/simplyfresh/simplyfresh/internal/http/response"
	"github.com/simplyfresh/simplyfresh/internal/models"
	"github.com/simplyfresh/simplyfresh/internal/repository"
	"github.com/simplyfresh/simplyfresh/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AdminProductRequest 商品创建/更新请求
type AdminProductRequest struct {
	Name            string `json:"name" binding:"required"`
	Category        string `json:"category"`
	PriceAmount     string `json:"price_amount" binding:"required"`
	Image           string `json:"image"`
	QuantityInStock int    `json:"quantity_in_stock"`
	IsActive        bool   `json:"is_active"`
	IsSpotlight     bool   `json:"is_spotlight"`
}

func (r AdminProductRequest) toServiceInput() (service.ProductInput, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(r.PriceAmount))
	if err != nil {
		return service.ProductInput{}, service.ErrProductDataInvalid
	}
	return service.ProductInput{
		Name:            r.Name,
		Category:        r.Category,
		PriceAmount:     models.NewMoneyFromDecimal(amount),
		Image:           r.Image,
		QuantityInStock: r.QuantityInStock,
		IsActive:        r.IsActive,
		IsSpotlight:     r.IsSpotlight,
	}, nil
}

func respondProductWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, response.CodeNotFound, "error.product_not_found", nil)
	case errors.Is(err, service.ErrProductDataInvalid):
		respondError(c, response.CodeBadRequest, "error.product_data_invalid", nil)
	case errors.Is(err, service.ErrProductNameExists):
		respondError(c, response.CodeConflict, "error.product_name_exists", nil)
	default:
		respondError(c, response.CodeInternal, "error.product_save_failed", err)
	}
}

// GetAdminProducts 商品列表（含下架商品）
func (h *Handler) GetAdminProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	products, total, err := h.ProductService.List(repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: strings.TrimSpace(c.Query("category")),
		Search:   strings.TrimSpace(c.Query("search")),
		OrderBy:  strings.TrimSpace(c.Query("order_by")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetAdminProduct 商品详情
func (h *Handler) GetAdminProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	product, err := h.ProductService.Get(uint(id), false)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	response.Success(c, product)
}

// CreateAdminProduct 创建商品
func (h *Handler) CreateAdminProduct(c *gin.Context) {
	var req AdminProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	input, err := req.toServiceInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.product_data_invalid", nil)
		return
	}

	product, err := h.ProductService.Create(input)
	if err != nil {
		respondProductWriteError(c, err)
		return
	}

	response.Success(c, product)
}

// UpdateAdminProduct 更新商品
func (h *Handler) UpdateAdminProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req AdminProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	input, err := req.toServiceInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.product_data_invalid", nil)
		return
	}

	product, err := h.ProductService.Update(uint(id), input)
	if err != nil {
		respondProductWriteError(c, err)
		return
	}

	response.Success(c, product)
}

// DeleteAdminProduct 删除商品
func (h *Handler) DeleteAdminProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.ProductService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_save_failed", err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}

// GetProductCategories 商品分类列表
func (h *Handler) GetProductCategories(c *gin.Context) {
	response.Success(c, constants.ProductCategories)
}
