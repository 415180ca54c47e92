package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"lexhub_backend/internal/config"
	"lexhub_backend/internal/logger"
	"lexhub_backend/internal/models"
	"lexhub_backend/internal/repositories"

	"gorm.io/gorm"
)

type seeder struct {
	userRepo     repositories.UserRepository
	lawyerRepo   repositories.LawyerRepository
	categoryRepo repositories.CategoryRepository
	now          func() time.Time
}

func newSeeder() *seeder {
	return &seeder{
		userRepo:     repositories.NewUserRepository(),
		lawyerRepo:   repositories.NewLawyerRepository(),
		categoryRepo: repositories.NewCategoryRepository(),
		now:          time.Now,
	}
}

// Seed идемпотентен: повторный запуск ничего не дублирует
func Seed(db *gorm.DB, cfg *config.Config) error {
	s := newSeeder()

	if err := s.seedCategories(db); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := s.seedFirstAdmin(db, cfg.Seed.FirstAdminEmail); err != nil {
		return fmt.Errorf("seed first admin: %w", err)
	}
	if cfg.Seed.DemoLawyers {
		if err := s.seedDemoLawyers(db); err != nil {
			return fmt.Errorf("seed demo lawyers: %w", err)
		}
	}
	return nil
}

func (s *seeder) seedCategories(db *gorm.DB) error {
	created := 0
	for _, category := range seedCategories() {
		category := category
		ok, err := s.categoryRepo.UpsertByKey(db, &category)
		if err != nil {
			return err
		}
		if ok {
			created++
		}
	}
	logger.Info("Categories seeded", "created", created)
	return nil
}

// seedFirstAdmin создает администратора или повышает существующего пользователя
func (s *seeder) seedFirstAdmin(db *gorm.DB, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		logger.Warn("FIRST_ADMIN_EMAIL is not set. Skipping admin seeding.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByEmail(tx, email)
		switch {
		case err == nil:
			if user.Role == models.UserRolePlatformAdmin {
				logger.Info("Admin user already exists. Skipping creation.", "email", email)
				return nil
			}
			logger.Warn("Promoting existing user to platform admin", "email", email, "role", user.Role)
			return s.userRepo.UpdateRole(tx, user.ID, models.UserRolePlatformAdmin)
		case !errors.Is(err, repositories.ErrUserNotFound):
			return err
		}

		admin := &models.User{
			Email:  email,
			Role:   models.UserRolePlatformAdmin,
			Status: models.UserStatusActive,
			Locale: "en",
		}
		if err := s.userRepo.Create(tx, admin); err != nil {
			return err
		}
		logger.Info("Created first admin user", "email", email)
		return nil
	})
}

func (s *seeder) seedDemoLawyers(db *gorm.DB) error {
	categories, err := s.categoryRepo.FindActive(db)
	if err != nil {
		return err
	}
	idByKey := make(map[models.CategoryKey]string, len(categories))
	for _, c := range categories {
		idByKey[c.Key] = c.ID
	}

	created := 0
	for _, d := range demoLawyers {
		ok, err := s.seedDemoLawyer(db, d, idByKey)
		if err != nil {
			return fmt.Errorf("%s: %w", d.email, err)
		}
		if ok {
			created++
		}
	}
	logger.Info("Demo lawyers seeded", "created", created)
	return nil
}

func (s *seeder) seedDemoLawyer(db *gorm.DB, d demoLawyer, idByKey map[models.CategoryKey]string) (bool, error) {
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByEmail(tx, d.email)
		if errors.Is(err, repositories.ErrUserNotFound) {
			user = &models.User{
				Email:  d.email,
				Name:   d.firstName + " " + d.lastName,
				Role:   models.UserRoleLawyer,
				Status: models.UserStatusActive,
				Locale: "en",
			}
			err = s.userRepo.Create(tx, user)
		}
		if err != nil {
			return err
		}

		exists, err := s.lawyerRepo.ExistsByUserID(tx, user.ID)
		if err != nil || exists {
			return err
		}

		now := s.now().UTC()
		admission := now.AddDate(-d.years, 0, 0)
		hourly, fee := d.hourlyRate, d.consultationFee
		profile := &models.LawyerProfile{
			UserID:             user.ID,
			FirstName:          d.firstName,
			LastName:           d.lastName,
			BarNumber:          d.barNumber,
			BarState:           d.barState,
			BarAdmissionDate:   &admission,
			YearsExperience:    d.years,
			Bio:                d.bio,
			LawSchool:          d.lawSchool,
			Certifications:     d.certifications,
			OfficePhone:        d.officePhone,
			OfficeAddress:      d.officeAddress,
			City:               d.city,
			State:              d.state,
			ZipCode:            d.zipCode,
			Website:            d.website,
			HourlyRate:         &hourly,
			ConsultationFee:    &fee,
			AverageRating:      d.rating,
			TotalConsultations: d.consultations,
			Status:             models.LawyerStatusApproved,
			ApprovedAt:         &now,
		}
		if err := s.lawyerRepo.Create(tx, profile); err != nil {
			return err
		}

		var links []models.LawyerCategory
		for i, key := range d.categories {
			if id, ok := idByKey[key]; ok {
				links = append(links, models.LawyerCategory{LawyerID: profile.ID, CategoryID: id, IsPrimary: i == 0})
			}
		}
		if err := s.lawyerRepo.AttachCategories(tx, links); err != nil {
			return err
		}

		langs := make([]models.LawyerLanguage, 0, len(d.languages))
		for i, l := range d.languages {
			langs = append(langs, models.LawyerLanguage{LawyerID: profile.ID, Language: l, IsPrimary: i == 0})
		}
		if err := s.lawyerRepo.AttachLanguages(tx, langs); err != nil {
			return err
		}

		created = true
		return nil
	})
	return created, err
}
