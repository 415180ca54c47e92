package helpers

import (
	"fmt"
	"testing"
	"time"

	"lexhub_backend/internal/auth"
	"lexhub_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// UniqueSuffix - чтобы тесты не пересекались по email и номеру лицензии
func UniqueSuffix() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

// CreateUser создает активного пользователя с нужной ролью
func CreateUser(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Email:  fmt.Sprintf("%s_%s@test.com", role, UniqueSuffix()),
		Role:   role,
		Status: models.UserStatusActive,
		Locale: "en",
	}
	require.NoError(t, db.Create(user).Error, "не удалось создать пользователя")
	return user
}

// SessionFor выпускает токен сессии, как это делает внешний identity provider
func SessionFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := auth.IssueSessionToken(SessionSecret, auth.SessionClaims{
		Email:            user.Email,
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID, IssuedAt: jwt.NewNumericDate(time.Now())},
	}, time.Hour)
	require.NoError(t, err)
	return token
}

// CreateAndLoginUser - пользователь плюс его токен
func CreateAndLoginUser(t *testing.T, db *gorm.DB, role models.UserRole) (string, *models.User) {
	t.Helper()
	user := CreateUser(t, db, role)
	return SessionFor(t, user), user
}

// LawyerFixture - профиль юриста, созданный в обход API
type LawyerFixture struct {
	BarNumber  string
	City       string
	State      string
	Status     models.LawyerStatus
	HourlyRate *float64
	Rating     float64
	Category   models.CategoryKey
	Languages  []models.Language
}

func CreateLawyer(t *testing.T, db *gorm.DB, f LawyerFixture) *models.LawyerProfile {
	t.Helper()
	user := CreateUser(t, db, models.UserRoleLawyer)

	if f.BarNumber == "" {
		f.BarNumber = "BAR" + UniqueSuffix()
	}
	if f.Status == "" {
		f.Status = models.LawyerStatusApproved
	}
	if f.State == "" {
		f.State = "CA"
	}

	profile := &models.LawyerProfile{
		UserID:        user.ID,
		FirstName:     "Test",
		LastName:      "Lawyer",
		BarNumber:     f.BarNumber,
		BarState:      "CA",
		City:          f.City,
		State:         f.State,
		HourlyRate:    f.HourlyRate,
		AverageRating: f.Rating,
		Status:        f.Status,
	}
	require.NoError(t, db.Omit("User", "Categories", "Languages", "Documents", "Reviews", "Consultations").Create(profile).Error)

	if f.Category != "" {
		var category models.Category
		require.NoError(t, db.First(&category, "key = ?", f.Category).Error)
		link := models.LawyerCategory{LawyerID: profile.ID, CategoryID: category.ID, IsPrimary: true}
		require.NoError(t, db.Omit("Category").Create(&link).Error)
	}
	for i, lang := range f.Languages {
		link := models.LawyerLanguage{LawyerID: profile.ID, Language: lang, IsPrimary: i == 0}
		require.NoError(t, db.Create(&link).Error)
	}
	return profile
}

func Rate(v float64) *float64 {
	return &v
}
