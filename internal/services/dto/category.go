package dto

import "lexhub_backend/internal/models"

type CategoryCounts struct {
	Lawyers int64 `json:"lawyers"`
}

// CategoryResponse - категория с подкатегориями и числом одобренных юристов
type CategoryResponse struct {
	models.Category
	Count CategoryCounts `json:"_count"`
}
