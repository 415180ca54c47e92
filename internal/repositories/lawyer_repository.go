package repositories

import (
	"errors"
	"math"
	"strings"
	"time"

	"lexhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrLawyerNotFound      = errors.New("lawyer profile not found")
	ErrLawyerAlreadyExists = errors.New("lawyer profile already exists for this user")
	ErrBarNumberTaken      = errors.New("bar number already registered")
	ErrPrimaryConflict     = errors.New("more than one primary entry for lawyer")
)

// LawyerSearchCriteria - уже нормализованные фильтры каталога
type LawyerSearchCriteria struct {
	Category string
	Location string
	Language string
	MinRate  *float64
	MaxRate  *float64
	Page     int
	Limit    int
}

// Offset - skip = (page-1)*limit
func (c LawyerSearchCriteria) Offset() int {
	if c.Page < 1 || c.Limit < 1 {
		return 0
	}
	if c.Page-1 > math.MaxInt32/c.Limit {
		return math.MaxInt32
	}
	return (c.Page - 1) * c.Limit
}

// LawyerDecision - результат модерации для атомарного перехода из PENDING_VERIFICATION
type LawyerDecision struct {
	Status     models.LawyerStatus
	Notes      *string
	ApprovedAt *time.Time
}

type LawyerCounts struct {
	Reviews       int64 `json:"reviews"`
	Consultations int64 `json:"consultations"`
}

type LawyerRepository interface {
	Create(db *gorm.DB, profile *models.LawyerProfile) error
	ExistsByUserID(db *gorm.DB, userID string) (bool, error)
	ExistsByBarNumber(db *gorm.DB, barNumber string) (bool, error)
	AttachCategories(db *gorm.DB, links []models.LawyerCategory) error
	AttachLanguages(db *gorm.DB, links []models.LawyerLanguage) error

	FindByID(db *gorm.DB, id string) (*models.LawyerProfile, error)
	FindDetailByID(db *gorm.DB, id string) (*models.LawyerProfile, error)
	FindPending(db *gorm.DB) ([]models.LawyerProfile, error)
	Search(db *gorm.DB, criteria LawyerSearchCriteria) ([]models.LawyerProfile, int64, error)
	CountsByLawyerIDs(db *gorm.DB, ids []string) (map[string]LawyerCounts, error)

	// TransitionFromPending меняет статус только если профиль все еще в PENDING_VERIFICATION.
	// false - ни одна строка не обновлена (профиля нет или статус уже другой).
	TransitionFromPending(db *gorm.DB, id string, decision LawyerDecision) (bool, error)
}

type LawyerRepositoryImpl struct{}

func NewLawyerRepository() LawyerRepository {
	return &LawyerRepositoryImpl{}
}

// ==========================
// Lifecycle
// ==========================

func (r *LawyerRepositoryImpl) Create(db *gorm.DB, profile *models.LawyerProfile) error {
	// Связи пишутся отдельно через Attach*
	if err := db.Omit("User", "Categories", "Languages", "Documents", "Reviews", "Consultations").Create(profile).Error; err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if strings.Contains(constraint, "bar_number") {
				return ErrBarNumberTaken
			}
			return ErrLawyerAlreadyExists
		}
		return err
	}
	return nil
}

func (r *LawyerRepositoryImpl) ExistsByUserID(db *gorm.DB, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.LawyerProfile{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *LawyerRepositoryImpl) ExistsByBarNumber(db *gorm.DB, barNumber string) (bool, error) {
	var count int64
	err := db.Model(&models.LawyerProfile{}).Where("bar_number = ?", barNumber).Count(&count).Error
	return count > 0, err
}

func (r *LawyerRepositoryImpl) AttachCategories(db *gorm.DB, links []models.LawyerCategory) error {
	if len(links) == 0 {
		return nil
	}
	if err := db.Omit("Category").Create(&links).Error; err != nil {
		if _, ok := uniqueViolation(err); ok {
			return ErrPrimaryConflict
		}
		return err
	}
	return nil
}

func (r *LawyerRepositoryImpl) AttachLanguages(db *gorm.DB, links []models.LawyerLanguage) error {
	if len(links) == 0 {
		return nil
	}
	if err := db.Create(&links).Error; err != nil {
		if _, ok := uniqueViolation(err); ok {
			return ErrPrimaryConflict
		}
		return err
	}
	return nil
}

func (r *LawyerRepositoryImpl) TransitionFromPending(db *gorm.DB, id string, decision LawyerDecision) (bool, error) {
	if !isUUID(id) {
		return false, nil
	}
	result := db.Model(&models.LawyerProfile{}).
		Where("id = ? AND status = ?", id, models.LawyerStatusPending).
		Updates(map[string]interface{}{
			"status":             decision.Status,
			"verification_notes": decision.Notes,
			"approved_at":        decision.ApprovedAt,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ==========================
// Reads
// ==========================

func (r *LawyerRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.LawyerProfile, error) {
	if !isUUID(id) {
		return nil, ErrLawyerNotFound
	}
	var profile models.LawyerProfile
	if err := db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLawyerNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *LawyerRepositoryImpl) FindDetailByID(db *gorm.DB, id string) (*models.LawyerProfile, error) {
	if !isUUID(id) {
		return nil, ErrLawyerNotFound
	}
	var profile models.LawyerProfile
	err := db.
		Preload("User").
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC").Order("created_at ASC")
		}).
		Preload("Categories.Category").
		Preload("Languages", func(db *gorm.DB) *gorm.DB {
			return db.Order("language ASC")
		}).
		First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLawyerNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// FindPending - очередь модерации, сначала самые старые заявки
func (r *LawyerRepositoryImpl) FindPending(db *gorm.DB) ([]models.LawyerProfile, error) {
	var profiles []models.LawyerProfile
	err := db.
		Preload("User").
		Preload("Categories.Category").
		Preload("Languages").
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("uploaded_at ASC")
		}).
		Where("status = ?", models.LawyerStatusPending).
		Order("created_at ASC").
		Order("id ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *LawyerRepositoryImpl) searchScope(db *gorm.DB, c LawyerSearchCriteria) *gorm.DB {
	query := db.Model(&models.LawyerProfile{}).
		Where("lawyer_profiles.status = ?", models.LawyerStatusApproved)

	if c.Category != "" {
		query = query.Where(`EXISTS (
			SELECT 1 FROM lawyer_categories lc
			JOIN categories c ON c.id = lc.category_id
			WHERE lc.lawyer_id = lawyer_profiles.id AND c.key = ?)`, c.Category)
	}

	if c.Location != "" {
		pattern := containsPattern(c.Location)
		query = query.Where("(lawyer_profiles.city ILIKE ? OR lawyer_profiles.state ILIKE ?)", pattern, pattern)
	}

	if c.Language != "" {
		query = query.Where(`EXISTS (
			SELECT 1 FROM lawyer_languages ll
			WHERE ll.lawyer_id = lawyer_profiles.id AND ll.language = ?)`, c.Language)
	}

	// Профиль без ставки не попадает в выборку, если задана любая граница
	if c.MinRate != nil || c.MaxRate != nil {
		query = query.Where("lawyer_profiles.hourly_rate IS NOT NULL")
	}
	if c.MinRate != nil {
		query = query.Where("lawyer_profiles.hourly_rate >= ?", *c.MinRate)
	}
	if c.MaxRate != nil {
		query = query.Where("lawyer_profiles.hourly_rate <= ?", *c.MaxRate)
	}

	return query
}

func (r *LawyerRepositoryImpl) Search(db *gorm.DB, c LawyerSearchCriteria) ([]models.LawyerProfile, int64, error) {
	var total int64
	if err := r.searchScope(db, c).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []models.LawyerProfile
	if total == 0 {
		return profiles, 0, nil
	}

	// id - последний ключ сортировки, чтобы страницы были стабильными
	err := r.searchScope(db, c).
		Preload("User").
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC").Order("created_at ASC")
		}).
		Preload("Categories.Category").
		Preload("Languages").
		Order("lawyer_profiles.average_rating DESC").
		Order("lawyer_profiles.total_consultations DESC").
		Order("lawyer_profiles.id ASC").
		Offset(c.Offset()).
		Limit(c.Limit).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

func (r *LawyerRepositoryImpl) CountsByLawyerIDs(db *gorm.DB, ids []string) (map[string]LawyerCounts, error) {
	counts := make(map[string]LawyerCounts, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	type row struct {
		LawyerID string
		Total    int64
	}

	var reviews []row
	if err := db.Model(&models.Review{}).
		Select("lawyer_id, COUNT(*) AS total").
		Where("lawyer_id IN ?", ids).
		Group("lawyer_id").
		Scan(&reviews).Error; err != nil {
		return nil, err
	}

	var consultations []row
	if err := db.Model(&models.Consultation{}).
		Select("lawyer_id, COUNT(*) AS total").
		Where("lawyer_id IN ?", ids).
		Group("lawyer_id").
		Scan(&consultations).Error; err != nil {
		return nil, err
	}

	for _, id := range ids {
		counts[id] = LawyerCounts{}
	}
	for _, rw := range reviews {
		c := counts[rw.LawyerID]
		c.Reviews = rw.Total
		counts[rw.LawyerID] = c
	}
	for _, rw := range consultations {
		c := counts[rw.LawyerID]
		c.Consultations = rw.Total
		counts[rw.LawyerID] = c
	}
	return counts, nil
}
