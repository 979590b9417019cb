package repository

import (
	"github.com/simplyfresh/simplyfresh/internal/models"

	"gorm.io/gorm"
)

// PointRepository 积分流水数据访问接口
type PointRepository interface {
	Create(txn *models.PointTransaction) error
	List(filter PointTransactionListFilter) ([]models.PointTransaction, int64, error)
	SumByUser(userID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormPointRepository
}

// GormPointRepository GORM 实现
type GormPointRepository struct {
	db *gorm.DB
}

// NewPointRepository 创建积分流水仓库
func NewPointRepository(db *gorm.DB) *GormPointRepository {
	return &GormPointRepository{db: db}
}

// WithTx 绑定事务
func (r *GormPointRepository) WithTx(tx *gorm.DB) *GormPointRepository {
	if tx == nil {
		return r
	}
	return &GormPointRepository{db: tx}
}

// Create 写入积分流水
func (r *GormPointRepository) Create(txn *models.PointTransaction) error {
	if txn == nil {
		return nil
	}
	return r.db.Create(txn).Error
}

// List 积分流水列表
func (r *GormPointRepository) List(filter PointTransactionListFilter) ([]models.PointTransaction, int64, error) {
	query := r.db.Model(&models.PointTransaction{})
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var txns []models.PointTransaction
	if err := query.Order("id DESC").Find(&txns).Error; err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

// SumByUser 按流水聚合用户积分（对账用）
func (r *GormPointRepository) SumByUser(userID uint) (int64, error) {
	var sum struct {
		Total int64
	}
	err := r.db.Model(&models.PointTransaction{}).
		Select("COALESCE(SUM(CASE WHEN direction = 'in' THEN points ELSE -points END), 0) AS total").
		Where("user_id = ?", userID).
		Take(&sum).Error
	if err != nil {
		return 0, err
	}
	return sum.Total, nil
}
