package services

import (
	"errors"
	"strings"
	"time"

	"lexhub_backend/internal/logger"
	"lexhub_backend/internal/models"
	"lexhub_backend/internal/repositories"
	"lexhub_backend/internal/services/dto"
	"lexhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	onboardSuccessMessage = "Lawyer profile created successfully. Your application is pending admin approval."
	profileReviewsLimit   = 10
)

type ModerationAction string

const (
	ModerationApprove ModerationAction = "approve"
	ModerationReject  ModerationAction = "reject"
)

// LawyerService - жизненный цикл профиля юриста: заявка, модерация, публичная карточка
type LawyerService interface {
	Submit(db *gorm.DB, userID string, req *dto.OnboardLawyerRequest) (*dto.OnboardLawyerResponse, error)
	Decide(db *gorm.DB, lawyerID string, req *dto.ModerationRequest) (*dto.ModerationResponse, error)
	ListPending(db *gorm.DB) ([]dto.PendingLawyer, error)
	GetPublicProfile(db *gorm.DB, lawyerID string) (*dto.LawyerDetailResponse, error)
}

type LawyerServiceImpl struct {
	lawyerRepo   repositories.LawyerRepository
	userRepo     repositories.UserRepository
	categoryRepo repositories.CategoryRepository
	reviewRepo   repositories.ReviewRepository
	inTx         txRunner
	now          func() time.Time
}

func NewLawyerService(
	lawyerRepo repositories.LawyerRepository,
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepository,
	reviewRepo repositories.ReviewRepository,
) LawyerService {
	return &LawyerServiceImpl{
		lawyerRepo:   lawyerRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
		inTx:         gormTransaction,
		now:          time.Now,
	}
}

// ==========================
// Submit
// ==========================

// Submit создает профиль в статусе PENDING_VERIFICATION вместе со связями
// и повышает пользователя до LAWYER. Все в одной транзакции.
func (s *LawyerServiceImpl) Submit(db *gorm.DB, userID string, req *dto.OnboardLawyerRequest) (*dto.OnboardLawyerResponse, error) {
	if missing := missingLawyerFields(req); len(missing) > 0 {
		return nil, apperrors.ErrMissingFields("lawyer", missing)
	}

	languages, err := normalizeLanguages(req.Languages)
	if err != nil {
		return nil, err
	}

	profile := buildLawyerProfile(userID, req, s.now())

	err = s.inTx(db, func(tx *gorm.DB) error {
		exists, err := s.lawyerRepo.ExistsByUserID(tx, userID)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrLawyerProfileExists
		}

		taken, err := s.lawyerRepo.ExistsByBarNumber(tx, profile.BarNumber)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrBarNumberTaken
		}

		if err := s.lawyerRepo.Create(tx, profile); err != nil {
			return err
		}

		categories, err := s.resolveCategories(tx, profile.ID, req.Categories)
		if err != nil {
			return err
		}
		if err := s.lawyerRepo.AttachCategories(tx, categories); err != nil {
			return err
		}

		for i := range languages {
			languages[i].LawyerID = profile.ID
		}
		if err := s.lawyerRepo.AttachLanguages(tx, languages); err != nil {
			return err
		}

		return s.userRepo.UpdateRole(tx, userID, models.UserRoleLawyer)
	})
	if err != nil {
		return nil, handleLawyerError(err)
	}

	logger.Info("Lawyer application submitted", "lawyer_id", profile.ID, "user_id", userID, "bar_state", profile.BarState)

	return &dto.OnboardLawyerResponse{
		Success:  true,
		LawyerID: profile.ID,
		Message:  onboardSuccessMessage,
	}, nil
}

// resolveCategories оставляет только известные ключи без повторов.
// Основной становится первая категория с флагом isPrimary.
func (s *LawyerServiceImpl) resolveCategories(tx *gorm.DB, lawyerID string, input []dto.LawyerCategoryInput) ([]models.LawyerCategory, error) {
	if len(input) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(input))
	seen := make(map[string]bool, len(input))
	for _, in := range input {
		key := strings.TrimSpace(in.CategoryKey)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}

	found, err := s.categoryRepo.FindByKeys(tx, keys)
	if err != nil {
		return nil, err
	}
	idByKey := make(map[string]string, len(found))
	for _, c := range found {
		idByKey[string(c.Key)] = c.ID
	}

	links := make([]models.LawyerCategory, 0, len(found))
	linked := make(map[string]bool, len(found))
	primarySet := false
	for _, in := range input {
		key := strings.TrimSpace(in.CategoryKey)
		id, ok := idByKey[key]
		if !ok || linked[key] {
			continue
		}
		linked[key] = true
		isPrimary := in.IsPrimary && !primarySet
		primarySet = primarySet || isPrimary
		links = append(links, models.LawyerCategory{
			LawyerID:   lawyerID,
			CategoryID: id,
			IsPrimary:  isPrimary,
		})
	}
	return links, nil
}

// ==========================
// Decide
// ==========================

// Decide переводит профиль из PENDING_VERIFICATION в APPROVED или REJECTED.
// Переход условный: из двух параллельных решений применяется только одно.
func (s *LawyerServiceImpl) Decide(db *gorm.DB, lawyerID string, req *dto.ModerationRequest) (*dto.ModerationResponse, error) {
	// только точные значения approve/reject
	action := ModerationAction(req.Action)

	decision := repositories.LawyerDecision{Notes: optionalString(req.Notes)}
	switch action {
	case ModerationApprove:
		now := s.now()
		decision.Status = models.LawyerStatusApproved
		decision.ApprovedAt = &now
	case ModerationReject:
		decision.Status = models.LawyerStatusRejected
	default:
		return nil, apperrors.ErrInvalidModerationAction
	}

	var updated *models.LawyerProfile
	err := s.inTx(db, func(tx *gorm.DB) error {
		applied, err := s.lawyerRepo.TransitionFromPending(tx, lawyerID, decision)
		if err != nil {
			return err
		}
		if !applied {
			// отличаем "нет такого" от "уже решено"
			if _, err := s.lawyerRepo.FindByID(tx, lawyerID); err != nil {
				return err
			}
			return apperrors.ErrLawyerNotPending
		}
		updated, err = s.lawyerRepo.FindByID(tx, lawyerID)
		return err
	})
	if err != nil {
		return nil, handleLawyerError(err)
	}

	logger.Info("Lawyer moderation decision applied", "lawyer_id", lawyerID, "status", decision.Status)

	message := "Lawyer approved successfully"
	if action == ModerationReject {
		message = "Lawyer rejected successfully"
	}
	return &dto.ModerationResponse{
		Success: true,
		Lawyer:  updated,
		Message: message,
	}, nil
}

// ==========================
// Read side
// ==========================

// ListPending - очередь модерации, старые заявки первыми
func (s *LawyerServiceImpl) ListPending(db *gorm.DB) ([]dto.PendingLawyer, error) {
	profiles, err := s.lawyerRepo.FindPending(db)
	if err != nil {
		return nil, handleLawyerError(err)
	}

	result := make([]dto.PendingLawyer, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		item := dto.PendingLawyer{LawyerProfile: p}
		if p.User != nil {
			item.User = &dto.PendingUser{Email: p.User.Email, CreatedAt: p.User.CreatedAt}
		}
		result = append(result, item)
	}
	return result, nil
}

// GetPublicProfile отдает только одобренные профили
func (s *LawyerServiceImpl) GetPublicProfile(db *gorm.DB, lawyerID string) (*dto.LawyerDetailResponse, error) {
	profile, err := s.lawyerRepo.FindDetailByID(db, lawyerID)
	if err != nil {
		return nil, handleLawyerError(err)
	}
	if !profile.IsApproved() {
		return nil, apperrors.ErrLawyerNotAvailable
	}

	reviews, err := s.reviewRepo.RecentWithClient(db, profile.ID, profileReviewsLimit)
	if err != nil {
		return nil, handleLawyerError(err)
	}

	counts, err := s.lawyerRepo.CountsByLawyerIDs(db, []string{profile.ID})
	if err != nil {
		return nil, handleLawyerError(err)
	}

	return &dto.LawyerDetailResponse{
		LawyerProfile: profile,
		User:          userSummary(profile.User),
		Reviews:       buildReviewResponses(reviews),
		Count:         toCounts(counts[profile.ID]),
	}, nil
}

// ==========================
// Helpers
// ==========================

func missingLawyerFields(req *dto.OnboardLawyerRequest) []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"firstName", req.FirstName},
		{"lastName", req.LastName},
		{"barNumber", req.BarNumber},
		{"barState", req.BarState},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// normalizeLanguages приводит языки к enum, убирает повторы и оставляет один основной
func normalizeLanguages(input []dto.LawyerLanguageInput) ([]models.LawyerLanguage, error) {
	result := make([]models.LawyerLanguage, 0, len(input))
	seen := make(map[models.Language]bool, len(input))
	invalid := make(map[string]string)
	primarySet := false

	for _, in := range input {
		lang, ok := models.ParseLanguage(in.Language)
		if !ok {
			invalid[in.Language] = "Must be a supported language"
			continue
		}
		if seen[lang] {
			continue
		}
		seen[lang] = true
		isPrimary := in.IsPrimary && !primarySet
		primarySet = primarySet || isPrimary
		result = append(result, models.LawyerLanguage{Language: lang, IsPrimary: isPrimary})
	}

	if len(invalid) > 0 {
		return nil, apperrors.ValidationError(map[string]interface{}{"languages": invalid})
	}
	return result, nil
}

func buildLawyerProfile(userID string, req *dto.OnboardLawyerRequest, now time.Time) *models.LawyerProfile {
	admission := now.AddDate(-req.YearsExperience, 0, 0)
	return &models.LawyerProfile{
		UserID:           userID,
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		BarNumber:        strings.TrimSpace(req.BarNumber),
		BarState:         strings.ToUpper(strings.TrimSpace(req.BarState)),
		BarAdmissionDate: &admission,
		YearsExperience:  req.YearsExperience,
		Bio:              req.Bio,
		LawSchool:        req.LawSchool,
		Certifications:   req.Certifications,
		OfficePhone:      req.OfficePhone,
		OfficeAddress:    req.OfficeAddress,
		City:             strings.TrimSpace(req.City),
		State:            strings.TrimSpace(req.State),
		ZipCode:          req.ZipCode,
		Website:          req.Website,
		HourlyRate:       req.HourlyRate,
		ConsultationFee:  req.ConsultationFee,
		Status:           models.LawyerStatusPending,
	}
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func userSummary(u *models.User) *dto.LawyerUserSummary {
	if u == nil {
		return nil
	}
	return &dto.LawyerUserSummary{Email: u.Email, Name: u.Name, Image: u.Image}
}

func toCounts(c repositories.LawyerCounts) dto.LawyerCounts {
	return dto.LawyerCounts{Reviews: c.Reviews, Consultations: c.Consultations}
}

func buildReviewResponses(reviews []models.Review) []dto.ReviewResponse {
	result := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		r := &reviews[i]
		item := dto.ReviewResponse{Review: r}
		if c := r.Consultation; c != nil {
			item.Consultation = &dto.ReviewConsultation{
				ID:          c.ID,
				Type:        c.Type,
				Status:      c.Status,
				ScheduledAt: c.ScheduledAt,
			}
			if cl := c.Client; cl != nil {
				client := &dto.ReviewClient{ID: cl.ID, FirstName: cl.FirstName, LastName: cl.LastName}
				if cl.User != nil {
					client.User = &dto.ReviewClientUser{Email: cl.User.Email}
				}
				item.Consultation.Client = client
			}
		}
		result = append(result, item)
	}
	return result
}

func handleLawyerError(err error) error {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, repositories.ErrLawyerNotFound):
		return apperrors.ErrLawyerNotFound(err)
	case errors.Is(err, repositories.ErrLawyerAlreadyExists):
		return apperrors.ErrLawyerProfileExists.WithError(err)
	case errors.Is(err, repositories.ErrBarNumberTaken):
		return apperrors.ErrBarNumberTaken.WithError(err)
	case errors.Is(err, repositories.ErrPrimaryConflict):
		return apperrors.ValidationError(map[string]string{"categories": "Only one primary entry is allowed"})
	case errors.Is(err, repositories.ErrUserNotFound):
		return apperrors.ErrUnauthenticated.WithError(err)
	}
	return apperrors.InternalError(err)
}
