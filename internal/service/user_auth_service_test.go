package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/simplyfresh/simplyfresh/internal/config"
	"github.com/simplyfresh/simplyfresh/internal/models"
	"github.com/simplyfresh/simplyfresh/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupUserAuthServiceTest(t *testing.T) (*UserAuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:user_auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	cfg := &config.Config{}
	cfg.UserJWT.SecretKey = "user-auth-test-secret"
	cfg.UserJWT.ExpireHours = 24
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartService := NewCartService(cartRepo, productRepo, 0)
	return NewUserAuthService(cfg, userRepo, cartService), db
}

func TestRegisterPersistsUserAndIssuesToken(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)

	user, token, expiresAt, err := svc.Register(RegisterInput{
		Email:     "aisha@example.com",
		Password:  "Str0ng!Password",
		FirstName: "Aisha",
		LastName:  "Rahman",
		Street:    "12 Jalan Melur",
		City:      "Shah Alam",
		State:     "Selangor",
		Country:   "Malaysia",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if token == "" || expiresAt.Before(time.Now()) {
		t.Fatalf("register should issue a future-dated token, got expires_at %v", expiresAt)
	}
	if user.RegisteredAt.IsZero() {
		t.Fatalf("registered_at should be set")
	}

	var stored models.User
	if err := db.Where("email = ?", "aisha@example.com").First(&stored).Error; err != nil {
		t.Fatalf("load stored user failed: %v", err)
	}
	if stored.RegisteredAt.IsZero() {
		t.Fatalf("stored registered_at should be set")
	}
	if stored.PasswordHash == "Str0ng!Password" || stored.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("parse issued token failed: %v", err)
	}
	if claims.UserID != stored.ID || claims.Email != "aisha@example.com" {
		t.Fatalf("claims want user %d/aisha@example.com got %d/%s", stored.ID, claims.UserID, claims.Email)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	input := RegisterInput{Email: "dup@example.com", Password: "Str0ng!Password"}
	if _, _, _, err := svc.Register(input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, _, err := svc.Register(input); err != ErrEmailExists {
		t.Fatalf("duplicate email want ErrEmailExists got %v", err)
	}
}
