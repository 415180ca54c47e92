package services

import (
	"lexhub_backend/internal/repositories"
	"lexhub_backend/internal/services/dto"
	"lexhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CategoryService interface {
	List(db *gorm.DB) ([]dto.CategoryResponse, error)
}

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

// List - активные категории с подкатегориями и числом одобренных юристов
func (s *CategoryServiceImpl) List(db *gorm.DB) ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindActive(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	counts, err := s.categoryRepo.CountApprovedLawyers(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, dto.CategoryResponse{
			Category: c,
			Count:    dto.CategoryCounts{Lawyers: counts[c.ID]},
		})
	}
	return result, nil
}
