package dto

import "lexhub_backend/internal/models"

// ====================
//  Request DTOs
// ====================

// SearchLawyersRequest - фильтры каталога. Нули в page/limit заменяет сервис.
type SearchLawyersRequest struct {
	Category string   `form:"category" validate:"omitempty,max=64"`
	Location string   `form:"location" validate:"omitempty,max=100"`
	Language string   `form:"language" validate:"omitempty,max=32"`
	MinRate  *float64 `form:"minRate" validate:"omitempty,min=0"`
	MaxRate  *float64 `form:"maxRate" validate:"omitempty,min=0"`
	Page     int      `form:"page"`
	Limit    int      `form:"limit"`
}

// ====================
//  Response DTOs
// ====================

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// LawyerListItem - карточка каталога: профиль, сводка по пользователю,
// последние отзывы и счетчики.
type LawyerListItem struct {
	*models.LawyerProfile
	User    *LawyerUserSummary `json:"user"`
	Reviews []models.Review    `json:"reviews"`
	Count   LawyerCounts       `json:"_count"`
}

type SearchLawyersResponse struct {
	Lawyers    []LawyerListItem `json:"lawyers"`
	Pagination Pagination       `json:"pagination"`
}
