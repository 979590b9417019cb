package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/simplyfresh/simplyfresh/internal/cache"
	"github.com/simplyfresh/simplyfresh/internal/constants"
	"github.com/simplyfresh/simplyfresh/internal/http/response"
	"github.com/simplyfresh/simplyfresh/internal/repository"
	"github.com/simplyfresh/simplyfresh/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminUsers 用户列表
func (h *Handler) GetAdminUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	users, total, err := h.UserRepo.List(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  strings.TrimSpace(c.Query("keyword")),
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, users, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetAdminUser 用户详情
func (h *Handler) GetAdminUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	user, err := h.UserRepo.GetByID(uint(id))
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}
	if user == nil {
		respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		return
	}

	response.Success(c, user)
}

// AdminUserStatusRequest 用户状态更新请求
type AdminUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateAdminUserStatus 启用/停用用户
// 停用会同时吊销该用户已签发的全部 Token
func (h *Handler) UpdateAdminUserStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req AdminUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status != constants.UserStatusActive && status != constants.UserStatusDisabled {
		respondError(c, response.CodeBadRequest, "error.user_status_invalid", nil)
		return
	}

	user, err := h.UserRepo.GetByID(uint(id))
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}
	if user == nil {
		respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		return
	}

	if err := h.UserRepo.BatchUpdateStatus([]uint{uint(id)}, status); err != nil {
		respondError(c, response.CodeInternal, "error.user_save_failed", err)
		return
	}

	response.Success(c, gin.H{"id": id, "status": status})
}

// AdminUserProfileRequest 用户资料更新请求，nil 字段表示不修改
type AdminUserProfileRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Street      *string `json:"street"`
	District    *string `json:"district"`
	City        *string `json:"city"`
	PostalCode  *string `json:"postal_code"`
	State       *string `json:"state"`
	Country     *string `json:"country"`
}

// UpdateAdminUser 管理员更新用户资料
func (h *Handler) UpdateAdminUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req AdminUserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, err := h.UserAuthService.UpdateProfile(uint(id), service.ProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Street:      req.Street,
		District:    req.District,
		City:        req.City,
		PostalCode:  req.PostalCode,
		State:       req.State,
		Country:     req.Country,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.user_save_failed", err)
		return
	}

	response.Success(c, user)
}

// DeleteAdminUser 删除用户（软删除），同时清空购物车与会话缓存
func (h *Handler) DeleteAdminUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	user, err := h.UserRepo.GetByID(uint(id))
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}
	if user == nil {
		respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		return
	}

	if err := h.CartRepo.ClearByUser(uint(id)); err != nil {
		respondError(c, response.CodeInternal, "error.user_save_failed", err)
		return
	}
	if err := h.UserRepo.Delete(uint(id)); err != nil {
		respondError(c, response.CodeInternal, "error.user_save_failed", err)
		return
	}
	if err := cache.DelUserAuthState(c.Request.Context(), uint(id)); err != nil {
		requestLog(c).Warnw("admin_user_delete_auth_state_evict_failed", "user_id", id, "error", err)
	}

	response.Success(c, gin.H{"deleted": true})
}

// AdminAdjustPointsRequest 积分调整请求
type AdminAdjustPointsRequest struct {
	Delta  int64  `json:"delta" binding:"required"`
	Remark string `json:"remark"`
}

// AdjustAdminUserPoints 管理员调整用户积分
func (h *Handler) AdjustAdminUserPoints(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req AdminAdjustPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.PointsService.Adjust(uint(id), req.Delta, req.Remark); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.user_save_failed", err)
		return
	}

	balance, err := h.PointsService.Balance(uint(id))
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}

	response.Success(c, gin.H{"id": id, "point_balance": balance})
}
