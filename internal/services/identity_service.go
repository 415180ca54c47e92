package services

import (
	"errors"
	"strings"
	"time"

	"lexhub_backend/internal/auth"
	"lexhub_backend/internal/logger"
	"lexhub_backend/internal/models"
	"lexhub_backend/internal/repositories"
	"lexhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// IdentityService превращает проверенную сессию в пользователя платформы
type IdentityService interface {
	ResolveSession(db *gorm.DB, claims *auth.SessionClaims) (*models.User, error)
}

type IdentityServiceImpl struct {
	userRepo repositories.UserRepository
	inTx     txRunner
	now      func() time.Time
}

func NewIdentityService(userRepo repositories.UserRepository) IdentityService {
	return &IdentityServiceImpl{
		userRepo: userRepo,
		inTx:     gormTransaction,
		now:      time.Now,
	}
}

// ResolveSession ищет пользователя по subject, затем по email.
// При первом входе создается CLIENT с профилем клиента.
func (s *IdentityServiceImpl) ResolveSession(db *gorm.DB, claims *auth.SessionClaims) (*models.User, error) {
	user, err := s.findUser(db, claims)
	if errors.Is(err, repositories.ErrUserNotFound) {
		user, err = s.registerUser(db, claims)
	}
	if err != nil {
		return nil, handleIdentityError(err)
	}

	if !user.IsActive() {
		return nil, apperrors.ErrUserSuspended
	}

	s.touchLastLogin(db, user, claims)
	return user, nil
}

func (s *IdentityServiceImpl) findUser(db *gorm.DB, claims *auth.SessionClaims) (*models.User, error) {
	if claims.Subject != "" {
		user, err := s.userRepo.FindByID(db, claims.Subject)
		if err == nil || !errors.Is(err, repositories.ErrUserNotFound) {
			return user, err
		}
	}
	if claims.Email == "" {
		return nil, repositories.ErrUserNotFound
	}
	return s.userRepo.FindByEmail(db, claims.Email)
}

func (s *IdentityServiceImpl) registerUser(db *gorm.DB, claims *auth.SessionClaims) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(claims.Email))
	if email == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	locale := claims.Locale
	if locale == "" {
		locale = "en"
	}
	user := &models.User{
		Email:  email,
		Name:   claims.Name,
		Image:  claims.Picture,
		Role:   models.UserRoleClient,
		Status: models.UserStatusActive,
		Locale: locale,
	}

	err := s.inTx(db, func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}
		firstName, lastName := splitName(claims.Name)
		return s.userRepo.CreateClientProfile(tx, &models.ClientProfile{
			UserID:          user.ID,
			FirstName:       firstName,
			LastName:        lastName,
			PreferredLocale: locale,
		})
	})
	if errors.Is(err, repositories.ErrUserAlreadyExists) {
		// параллельный первый вход: пользователь уже создан другим запросом
		return s.userRepo.FindByEmail(db, email)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("User registered on first sign-in", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// touchLastLogin обновляет lastLoginAt один раз на выданный токен
func (s *IdentityServiceImpl) touchLastLogin(db *gorm.DB, user *models.User, claims *auth.SessionClaims) {
	if claims.IssuedAt == nil {
		return
	}
	if user.LastLoginAt != nil && !claims.IssuedAt.Time.After(*user.LastLoginAt) {
		return
	}
	now := s.now()
	if err := s.userRepo.TouchLastLogin(db, user.ID, now); err != nil {
		logger.WithError(err).Warn("Failed to update last login", "user_id", user.ID)
		return
	}
	user.LastLoginAt = &now
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

func handleIdentityError(err error) error {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.ErrUnauthenticated
	}
	return apperrors.InternalError(err)
}
