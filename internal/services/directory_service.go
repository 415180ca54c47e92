package services

import (
	"strings"

	"lexhub_backend/internal/models"
	"lexhub_backend/internal/repositories"
	"lexhub_backend/internal/services/dto"
	"lexhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	defaultDirectoryPage  = 1
	defaultDirectoryLimit = 12
	maxDirectoryLimit     = 100
	maxDirectoryPage      = 1_000_000 // дальше выдача все равно пустая
	listReviewsPerLawyer  = 5
)

// DirectoryService - публичный каталог одобренных юристов
type DirectoryService interface {
	Search(db *gorm.DB, req *dto.SearchLawyersRequest) (*dto.SearchLawyersResponse, error)
}

type DirectoryServiceImpl struct {
	lawyerRepo repositories.LawyerRepository
	reviewRepo repositories.ReviewRepository
}

func NewDirectoryService(lawyerRepo repositories.LawyerRepository, reviewRepo repositories.ReviewRepository) DirectoryService {
	return &DirectoryServiceImpl{
		lawyerRepo: lawyerRepo,
		reviewRepo: reviewRepo,
	}
}

// Search фильтрует APPROVED-профили и сортирует по рейтингу,
// затем по числу консультаций, затем по id.
func (s *DirectoryServiceImpl) Search(db *gorm.DB, req *dto.SearchLawyersRequest) (*dto.SearchLawyersResponse, error) {
	criteria := buildSearchCriteria(req)

	profiles, total, err := s.lawyerRepo.Search(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := make([]string, 0, len(profiles))
	for i := range profiles {
		ids = append(ids, profiles[i].ID)
	}

	var (
		counts  = map[string]repositories.LawyerCounts{}
		reviews = map[string][]models.Review{}
	)
	if len(ids) > 0 {
		if counts, err = s.lawyerRepo.CountsByLawyerIDs(db, ids); err != nil {
			return nil, apperrors.InternalError(err)
		}
		if reviews, err = s.reviewRepo.RecentByLawyerIDs(db, ids, listReviewsPerLawyer); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	items := make([]dto.LawyerListItem, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		recent := reviews[p.ID]
		if recent == nil {
			recent = []models.Review{}
		}
		items = append(items, dto.LawyerListItem{
			LawyerProfile: p,
			User:          userSummary(p.User),
			Reviews:       recent,
			Count:         toCounts(counts[p.ID]),
		})
	}

	return &dto.SearchLawyersResponse{
		Lawyers: items,
		Pagination: dto.Pagination{
			Page:       criteria.Page,
			Limit:      criteria.Limit,
			Total:      total,
			TotalPages: totalPages(total, criteria.Limit),
		},
	}, nil
}

func buildSearchCriteria(req *dto.SearchLawyersRequest) repositories.LawyerSearchCriteria {
	page := req.Page
	if page < 1 {
		page = defaultDirectoryPage
	}
	if page > maxDirectoryPage {
		page = maxDirectoryPage
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultDirectoryLimit
	}
	if limit > maxDirectoryLimit {
		limit = maxDirectoryLimit
	}

	language := strings.TrimSpace(req.Language)
	if lang, ok := models.ParseLanguage(language); ok {
		language = string(lang)
	}

	return repositories.LawyerSearchCriteria{
		Category: strings.TrimSpace(req.Category),
		Location: strings.TrimSpace(req.Location),
		Language: language,
		MinRate:  req.MinRate,
		MaxRate:  req.MaxRate,
		Page:     page,
		Limit:    limit,
	}
}

func totalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
