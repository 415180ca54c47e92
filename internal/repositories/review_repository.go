package repositories

import (
	"lexhub_backend/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	// RecentByLawyerIDs - не больше perLawyer последних отзывов на каждого юриста
	RecentByLawyerIDs(db *gorm.DB, lawyerIDs []string, perLawyer int) (map[string][]models.Review, error)
	// RecentWithClient - последние отзывы юриста с консультацией и email клиента
	RecentWithClient(db *gorm.DB, lawyerID string, limit int) ([]models.Review, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) RecentByLawyerIDs(db *gorm.DB, lawyerIDs []string, perLawyer int) (map[string][]models.Review, error) {
	result := make(map[string][]models.Review, len(lawyerIDs))
	if len(lawyerIDs) == 0 || perLawyer <= 0 {
		return result, nil
	}

	// Preload с Limit режет общий список, а не по каждому юристу, поэтому окно
	var reviews []models.Review
	err := db.Raw(`
		SELECT * FROM (
			SELECT reviews.*,
				ROW_NUMBER() OVER (PARTITION BY lawyer_id ORDER BY created_at DESC, id DESC) AS rn
			FROM reviews
			WHERE lawyer_id IN ?
		) ranked
		WHERE rn <= ?
		ORDER BY lawyer_id, created_at DESC, id DESC`, lawyerIDs, perLawyer).
		Scan(&reviews).Error
	if err != nil {
		return nil, err
	}

	for _, review := range reviews {
		result[review.LawyerID] = append(result[review.LawyerID], review)
	}
	return result, nil
}

func (r *ReviewRepositoryImpl) RecentWithClient(db *gorm.DB, lawyerID string, limit int) ([]models.Review, error) {
	var reviews []models.Review
	err := db.
		Preload("Consultation.Client.User").
		Where("lawyer_id = ?", lawyerID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}
