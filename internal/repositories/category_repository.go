package repositories

import (
	"lexhub_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository interface {
	FindActive(db *gorm.DB) ([]models.Category, error)
	FindByKeys(db *gorm.DB, keys []string) ([]models.Category, error)
	// CountApprovedLawyers - число одобренных юристов по category_id
	CountApprovedLawyers(db *gorm.DB) (map[string]int64, error)
	// UpsertByKey создает категорию с подкатегориями, существующую по key не трогает
	UpsertByKey(db *gorm.DB, category *models.Category) (created bool, err error)
}

type CategoryRepositoryImpl struct{}

func NewCategoryRepository() CategoryRepository {
	return &CategoryRepositoryImpl{}
}

func (r *CategoryRepositoryImpl) FindActive(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC").Order("id ASC")
		}).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Order("id ASC").
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) FindByKeys(db *gorm.DB, keys []string) ([]models.Category, error) {
	var categories []models.Category
	if len(keys) == 0 {
		return categories, nil
	}
	err := db.Where("key IN ?", keys).Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) CountApprovedLawyers(db *gorm.DB) (map[string]int64, error) {
	type row struct {
		CategoryID string
		Total      int64
	}
	var rows []row
	err := db.Table("lawyer_categories lc").
		Select("lc.category_id, COUNT(*) AS total").
		Joins("JOIN lawyer_profiles lp ON lp.id = lc.lawyer_id").
		Where("lp.status = ?", models.LawyerStatusApproved).
		Group("lc.category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.CategoryID] = rw.Total
	}
	return counts, nil
}

func (r *CategoryRepositoryImpl) UpsertByKey(db *gorm.DB, category *models.Category) (bool, error) {
	subcategories := category.Subcategories
	category.Subcategories = nil

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(category)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	for i := range subcategories {
		subcategories[i].CategoryID = category.ID
	}
	if len(subcategories) > 0 {
		if err := db.Create(&subcategories).Error; err != nil {
			return false, err
		}
	}
	category.Subcategories = subcategories
	return true, nil
}
