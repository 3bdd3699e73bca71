// Package admins handles administrator accounts and their sessions.
package admins

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"Backend-Scholarship-Finder/src/apperrors"
	"Backend-Scholarship-Finder/src/logger"
	"Backend-Scholarship-Finder/src/models"
	"Backend-Scholarship-Finder/src/utils"
)

// RoleAdmin is the JWT role carried by admin tokens.
const RoleAdmin = "admin"

const (
	defaultAdminName    = "관리자"
	msgBadCredentials   = "아이디 또는 비밀번호가 올바르지 않습니다."
	msgBadCurrentPasswd = "현재 비밀번호가 올바르지 않습니다."
)

type Service struct {
	store Store
	log   logger.Logger
	now   func() time.Time
}

func NewService(store Store, log logger.Logger) *Service {
	return &Service{store: store, log: log, now: time.Now}
}

// BootstrapDefaultAdmin creates the default account when the username is free.
// Safe to run on every start.
func (s *Service) BootstrapDefaultAdmin(ctx context.Context, username, password string) error {
	_, err := s.store.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	admin := &models.Admin{
		ID:        uuid.NewString(),
		Username:  username,
		Name:      defaultAdminName,
		Password:  hash,
		IsActive:  true,
		CreatedAt: s.now(),
	}
	if err := s.store.Create(ctx, admin); err != nil {
		return err
	}
	s.log.Info("✅ default admin account created", map[string]interface{}{"username": username})
	return nil
}

// Login checks the credentials of an active admin and issues a token.
func (s *Service) Login(ctx context.Context, req models.AdminLoginRequest) (*models.AdminLoginResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	admin, err := s.store.FindByUsername(ctx, req.Username)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, msgBadCredentials)
	}
	if err != nil {
		return nil, err
	}
	if !admin.IsActive || !checkPassword(admin.Password, req.Password) {
		s.log.Warn("⚠️ admin login rejected", map[string]interface{}{"username": req.Username})
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, msgBadCredentials)
	}

	if err := s.store.TouchLastLogin(ctx, admin.ID, s.now()); err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(admin.ID, admin.Username, RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &models.AdminLoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Admin:       models.AdminInfo{ID: admin.ID, Username: admin.Username, Name: admin.Name},
	}, nil
}

// Me returns the account behind a token.
func (s *Service) Me(ctx context.Context, id string) (*models.Admin, error) {
	return s.store.FindByID(ctx, id)
}

// ChangePassword replaces the password after checking the current one.
func (s *Service) ChangePassword(ctx context.Context, id string, req models.ChangePasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	admin, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !checkPassword(admin.Password, req.CurrentPassword) {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, msgBadCurrentPasswd)
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, id, hash)
}

// Logout revokes the token until it would have expired anyway.
func (s *Service) Logout(_ context.Context, token string, ttl time.Duration) error {
	return utils.BlacklistToken(token, ttl)
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(bytes), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
