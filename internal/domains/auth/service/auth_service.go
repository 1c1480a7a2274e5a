package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hypehouse-backend/internal/domains/auth/model"
	"hypehouse-backend/internal/domains/auth/repository"
	"hypehouse-backend/internal/shared/session"
	"hypehouse-backend/pkg/cache"
	"hypehouse-backend/pkg/jwt"
	"hypehouse-backend/pkg/logger"
)

const (
	failedLoginKeyPrefix  = "auth:failed:"
	revokedTokenKeyPrefix = "auth:revoked:"
)

// Config của login throttling
type Config struct {
	MaxFailedLogins int
	LockoutWindow   time.Duration
}

type authService struct {
	repo       repository.RepositoryInterface
	cache      cache.Cache
	jwtManager *jwt.Manager
	cfg        Config
}

func NewAuthService(
	repo repository.RepositoryInterface,
	cache cache.Cache,
	jwtManager *jwt.Manager,
	cfg Config,
) ServiceInterface {
	if cfg.MaxFailedLogins <= 0 {
		cfg.MaxFailedLogins = 5
	}
	if cfg.LockoutWindow <= 0 {
		cfg.LockoutWindow = 15 * time.Minute
	}
	return &authService{
		repo:       repo,
		cache:      cache,
		jwtManager: jwtManager,
		cfg:        cfg,
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareDummy giữ thời gian phản hồi tương đương khi email không tồn tại
func compareDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("hypehouse-dummy-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// ========================================
// LOGIN / LOGOUT
// ========================================

func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	email := model.NormalizedEmail(req.Email)
	failedKey := failedLoginKeyPrefix + email

	// STEP 1: throttling theo email
	if s.isLockedOut(ctx, failedKey) {
		return nil, model.ErrTooManyAttempts
	}

	// STEP 2: credentials
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, model.ErrUserNotFound) {
			return nil, err
		}
		compareDummy(req.Password)
		s.recordFailure(ctx, failedKey)
		return nil, model.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailure(ctx, failedKey)
		return nil, model.ErrInvalidCredentials
	}

	// STEP 3: chỉ admin được mở session; không tiết lộ lý do
	isAdmin, err := s.repo.HasRole(ctx, user.ID, model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		s.recordFailure(ctx, failedKey)
		return nil, model.ErrInvalidCredentials
	}

	// STEP 4: token
	token, claims, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	if err := s.cache.Delete(ctx, failedKey); err != nil {
		logger.Warn("reset failed login counter", err, map[string]interface{}{"email": email})
	}
	if err := s.repo.TouchLastLogin(ctx, user.ID); err != nil {
		logger.Warn("record last login", err, map[string]interface{}{"user_id": user.ID.String()})
	}

	return &model.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   claims.ExpiresAt.Time,
		Session: model.SessionInfo{
			UserID: user.ID,
			Email:  user.Email,
		},
	}, nil
}

func (s *authService) isLockedOut(ctx context.Context, key string) bool {
	var count int64
	found, err := s.cache.Get(ctx, key, &count)
	if err != nil {
		logger.Warn("read failed login counter", err, map[string]interface{}{"key": key})
		return false
	}
	return found && count >= int64(s.cfg.MaxFailedLogins)
}

func (s *authService) recordFailure(ctx context.Context, key string) {
	count, err := s.cache.Increment(ctx, key)
	if err != nil {
		logger.Warn("increment failed login counter", err, map[string]interface{}{"key": key})
		return
	}
	if count == 1 {
		if err := s.cache.Expire(ctx, key, s.cfg.LockoutWindow); err != nil {
			logger.Warn("set failed login window", err, map[string]interface{}{"key": key})
		}
	}
}

// Logout revoke jti tới khi token hết hạn
func (s *authService) Logout(ctx context.Context, caller session.Caller) error {
	if caller.TokenID == "" {
		return model.ErrInvalidToken
	}
	ttl := time.Until(caller.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.Set(ctx, revokedTokenKeyPrefix+caller.TokenID, "1", ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// ========================================
// GATE
// ========================================

func (s *authService) VerifyAccessToken(ctx context.Context, token string) (session.Caller, error) {
	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return session.Caller{}, model.ErrInvalidToken
	}
	userID, err := claims.ParsedUserID()
	if err != nil || userID == uuid.Nil {
		return session.Caller{}, model.ErrInvalidToken
	}

	// Không xác minh được trạng thái revoke thì coi như token không hợp lệ
	revoked, err := s.cache.Exists(ctx, revokedTokenKeyPrefix+claims.ID)
	if err != nil {
		return session.Caller{}, fmt.Errorf("check token revocation: %w", err)
	}
	if revoked {
		return session.Caller{}, model.ErrInvalidToken
	}

	return session.Caller{
		UserID:    userID,
		Email:     claims.Email,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *authService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}
	return s.repo.HasRole(ctx, userID, model.RoleAdmin)
}

func (s *authService) Session(ctx context.Context, caller session.Caller) (*model.SessionInfo, error) {
	user, err := s.repo.FindByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	return &model.SessionInfo{UserID: user.ID, Email: user.Email}, nil
}

// ========================================
// IDENTITY ADMINISTRATION
// ========================================

func (s *authService) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return s.repo.Create(ctx, req.Email, string(hash))
}

func (s *authService) GrantRole(ctx context.Context, email string, role model.Role) error {
	if !role.Valid() {
		return model.ErrInvalidRole
	}
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.repo.GrantRole(ctx, user.ID, role)
}

func (s *authService) RevokeRole(ctx context.Context, email string, role model.Role) (bool, error) {
	if !role.Valid() {
		return false, model.ErrInvalidRole
	}
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return s.repo.RevokeRole(ctx, user.ID, role)
}

func (s *authService) ListRoles(ctx context.Context) ([]model.RoleAssignment, error) {
	return s.repo.ListRoles(ctx)
}
