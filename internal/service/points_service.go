package service

import (
	"gorm.io/gorm"

	"github.com/simplyfresh/simplyfresh/internal/constants"
	"github.com/simplyfresh/simplyfresh/internal/models"
	"github.com/simplyfresh/simplyfresh/internal/repository"
)

// PointsService 积分查询与调整
type PointsService struct {
	userRepo  repository.UserRepository
	pointRepo repository.PointRepository
}

// NewPointsService 创建积分服务
func NewPointsService(userRepo repository.UserRepository, pointRepo repository.PointRepository) *PointsService {
	return &PointsService{
		userRepo:  userRepo,
		pointRepo: pointRepo,
	}
}

// Balance 查询积分余额
func (s *PointsService) Balance(userID uint) (int64, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}
	return user.PointBalance, nil
}

// History 积分流水
func (s *PointsService) History(userID uint, page, pageSize int) ([]models.PointTransaction, int64, error) {
	if userID == 0 {
		return nil, 0, ErrUserNotFound
	}
	return s.pointRepo.List(repository.PointTransactionListFilter{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
}

// Adjust 管理员调整积分，delta 可为负
func (s *PointsService) Adjust(userID uint, delta int64, remark string) error {
	if delta == 0 {
		return nil
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	direction := constants.PointTxnDirectionIn
	points := delta
	if delta < 0 {
		direction = constants.PointTxnDirectionOut
		points = -delta
	}
	// 余额变更与流水写入同一事务，事务内回读余额作为流水快照
	return models.DB.Transaction(func(tx *gorm.DB) error {
		userRepo := s.userRepo.WithTx(tx)
		if err := userRepo.AddPoints(userID, delta); err != nil {
			return err
		}
		adjusted, err := userRepo.GetByID(userID)
		if err != nil {
			return err
		}
		if adjusted == nil {
			return ErrUserNotFound
		}
		return s.pointRepo.WithTx(tx).Create(&models.PointTransaction{
			UserID:       userID,
			Type:         constants.PointTxnTypeAdjust,
			Direction:    direction,
			Points:       points,
			BalanceAfter: adjusted.PointBalance,
			Remark:       remark,
		})
	})
}
