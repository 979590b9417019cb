package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/simplyfresh/simplyfresh/internal/constants"
	"github.com/simplyfresh/simplyfresh/internal/models"
	"github.com/simplyfresh/simplyfresh/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupPointsServiceTest(t *testing.T) (*PointsService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:points_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.PointTransaction{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	userRepo := repository.NewUserRepository(db)
	pointRepo := repository.NewPointRepository(db)
	return NewPointsService(userRepo, pointRepo), db
}

func seedPointsUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Email:        "mei@example.com",
		PasswordHash: "x",
		Status:       constants.UserStatusActive,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func TestPointsAdjustLedgerTracksBalance(t *testing.T) {
	svc, db := setupPointsServiceTest(t)
	user := seedPointsUser(t, db)

	if err := svc.Adjust(user.ID, 10, "campaign bonus"); err != nil {
		t.Fatalf("first adjust failed: %v", err)
	}
	if err := svc.Adjust(user.ID, -4, "manual correction"); err != nil {
		t.Fatalf("second adjust failed: %v", err)
	}

	var gotUser models.User
	if err := db.First(&gotUser, user.ID).Error; err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if gotUser.PointBalance != 6 {
		t.Fatalf("balance want 6 got %d", gotUser.PointBalance)
	}

	// 每条流水的 balance_after 必须等于自增落库后的余额
	var txns []models.PointTransaction
	if err := db.Where("user_id = ?", user.ID).Order("id").Find(&txns).Error; err != nil {
		t.Fatalf("load txns failed: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("txn count want 2 got %d", len(txns))
	}
	if txns[0].BalanceAfter != 10 {
		t.Fatalf("first balance_after want 10 got %d", txns[0].BalanceAfter)
	}
	if txns[0].Direction != constants.PointTxnDirectionIn || txns[0].Points != 10 {
		t.Fatalf("first txn mismatch: %+v", txns[0])
	}
	if txns[1].BalanceAfter != 6 {
		t.Fatalf("second balance_after want 6 got %d", txns[1].BalanceAfter)
	}
	if txns[1].Direction != constants.PointTxnDirectionOut || txns[1].Points != 4 {
		t.Fatalf("second txn mismatch: %+v", txns[1])
	}
}

func TestPointsAdjustRollsBackWhenLedgerFails(t *testing.T) {
	svc, db := setupPointsServiceTest(t)
	user := seedPointsUser(t, db)

	// 流水表缺失时写入失败，余额变更必须随事务回滚
	if err := db.Migrator().DropTable(&models.PointTransaction{}); err != nil {
		t.Fatalf("drop table failed: %v", err)
	}
	if err := svc.Adjust(user.ID, 10, "campaign bonus"); err == nil {
		t.Fatalf("adjust without ledger table should fail")
	}

	var gotUser models.User
	if err := db.First(&gotUser, user.ID).Error; err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if gotUser.PointBalance != 0 {
		t.Fatalf("balance should stay 0 after rollback, got %d", gotUser.PointBalance)
	}
}

func TestPointsAdjustUnknownUser(t *testing.T) {
	svc, _ := setupPointsServiceTest(t)
	if err := svc.Adjust(999, 10, "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown user want ErrUserNotFound got %v", err)
	}
}
