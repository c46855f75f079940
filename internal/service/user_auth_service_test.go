package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/reloop-next/internal/config"
	"github.com/reloop-next/internal/constants"
	"github.com/reloop-next/internal/models"
	"github.com/reloop-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupUserAuthServiceTest(t *testing.T) (*UserAuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:user_auth_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.UserJWT.SecretKey = "test-secret-key-for-user-auth-tests"
	cfg.UserJWT.ExpireHours = 24
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{
		MinLength:     8,
		RequireLower:  true,
		RequireNumber: true,
	}
	return NewUserAuthService(cfg, repository.NewUserRepository(db)), db
}

func TestRegisterNormalizesEmailAndDefaults(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	user, token, _, err := svc.Register(" Buyer@Example.COM ", "passw0rd1", "", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "buyer@example.com" {
		t.Fatalf("email want normalized got %q", user.Email)
	}
	if user.Role != constants.UserRoleCustomer {
		t.Fatalf("role want customer got %s", user.Role)
	}
	// 昵称为空时取邮箱前缀
	if user.DisplayName != "buyer" {
		t.Fatalf("display name want buyer got %q", user.DisplayName)
	}
	if token == "" {
		t.Fatalf("register should issue a token")
	}

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestRegisterRejectsDuplicateAndInvalidInput(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	if _, _, _, err := svc.Register("buyer@example.com", "passw0rd1", "买家", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, _, err := svc.Register("BUYER@example.com", "passw0rd1", "买家", ""); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected email exists, got: %v", err)
	}
	if _, _, _, err := svc.Register("not-an-email", "passw0rd1", "", ""); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected invalid email, got: %v", err)
	}
	if _, _, _, err := svc.Register("seller@example.com", "passw0rd1", "", "admin"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected invalid role, got: %v", err)
	}
	if _, _, _, err := svc.Register("weak@example.com", "short", "", ""); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected weak password, got: %v", err)
	}
}

func TestLoginCredentialChecks(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)

	if _, _, _, err := svc.Register("buyer@example.com", "passw0rd1", "买家", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, _, err := svc.Login("buyer@example.com", "wrong-pass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got: %v", err)
	}
	if _, _, _, err := svc.Login("missing@example.com", "passw0rd1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got: %v", err)
	}

	user, token, _, err := svc.Login("Buyer@Example.com", "passw0rd1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || user.LastLoginAt == nil {
		t.Fatalf("login should issue token and stamp last_login_at")
	}

	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Update("status", constants.UserStatusDisabled).Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}
	if _, _, _, err := svc.Login("buyer@example.com", "passw0rd1"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("expected user disabled, got: %v", err)
	}
}

func TestChangePasswordBumpsTokenVersion(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)

	user, _, _, err := svc.Register("buyer@example.com", "passw0rd1", "买家", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "wrong-old1", "newpassw0rd"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected invalid old password, got: %v", err)
	}
	if err := svc.ChangePassword(user.ID, "passw0rd1", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected weak new password, got: %v", err)
	}
	if err := svc.ChangePassword(user.ID, "passw0rd1", "newpassw0rd1"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	var reloaded models.User
	if err := db.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	// 改密后旧 Token 必须全部失效
	if reloaded.TokenVersion != user.TokenVersion+1 {
		t.Fatalf("token version want %d got %d", user.TokenVersion+1, reloaded.TokenVersion)
	}
	if reloaded.TokenInvalidBefore == nil {
		t.Fatalf("token_invalid_before should be set")
	}

	if _, _, _, err := svc.Login("buyer@example.com", "passw0rd1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password should stop working, got: %v", err)
	}
	if _, _, _, err := svc.Login("buyer@example.com", "newpassw0rd1"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestUpdateProfileRequiresChanges(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	user, _, _, err := svc.Register("buyer@example.com", "passw0rd1", "买家", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.UpdateProfile(user.ID, nil, nil); !errors.Is(err, ErrProfileEmpty) {
		t.Fatalf("expected profile empty, got: %v", err)
	}

	nickname := "新昵称"
	locale := "en-US"
	updated, err := svc.UpdateProfile(user.ID, &nickname, &locale)
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.DisplayName != "新昵称" || updated.Locale != "en-US" {
		t.Fatalf("profile not applied: %+v", updated)
	}
}
