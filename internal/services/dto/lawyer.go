package dto

import (
	"time"

	"lexhub_backend/internal/models"
)

// ==========================
// Onboarding
// ==========================

type LawyerCategoryInput struct {
	CategoryKey string `json:"categoryKey" validate:"required,max=64"`
	IsPrimary   bool   `json:"isPrimary"`
}

type LawyerLanguageInput struct {
	Language  string `json:"language" validate:"required,is-language"`
	IsPrimary bool   `json:"isPrimary"`
}

// OnboardLawyerRequest - заявка юриста. Обязательные поля проверяет сервис,
// чтобы вернуть единое сообщение "Missing required fields".
type OnboardLawyerRequest struct {
	FirstName       string                `json:"firstName" validate:"max=100"`
	LastName        string                `json:"lastName" validate:"max=100"`
	BarNumber       string                `json:"barNumber" validate:"max=64"`
	BarState        string                `json:"barState" validate:"max=8"`
	YearsExperience int                   `json:"yearsExperience" validate:"min=0,max=80"`
	Bio             string                `json:"bio" validate:"omitempty,max=5000"`
	LawSchool       string                `json:"lawSchool" validate:"omitempty,max=200"`
	Certifications  []string              `json:"certifications" validate:"omitempty,max=20,dive,notblank,max=200"`
	OfficePhone     string                `json:"officePhone" validate:"omitempty,max=32"`
	OfficeAddress   string                `json:"officeAddress" validate:"omitempty,max=300"`
	City            string                `json:"city" validate:"omitempty,max=100"`
	State           string                `json:"state" validate:"omitempty,max=100"`
	ZipCode         string                `json:"zipCode" validate:"omitempty,max=16"`
	Website         string                `json:"website" validate:"omitempty,max=200"`
	HourlyRate      *float64              `json:"hourlyRate" validate:"omitempty,min=0"`
	ConsultationFee *float64              `json:"consultationFee" validate:"omitempty,min=0"`
	Categories      []LawyerCategoryInput `json:"categories" validate:"omitempty,max=10,dive"`
	Languages       []LawyerLanguageInput `json:"languages" validate:"omitempty,max=15,dive"`
}

type OnboardLawyerResponse struct {
	Success  bool   `json:"success"`
	LawyerID string `json:"lawyerId"`
	Message  string `json:"message"`
}

// ==========================
// Moderation
// ==========================

// ModerationRequest - action проверяет сервис ("approve" | "reject")
type ModerationRequest struct {
	Action string `json:"action"`
	Notes  string `json:"notes" validate:"omitempty,max=2000"`
}

type ModerationResponse struct {
	Success bool                  `json:"success"`
	Lawyer  *models.LawyerProfile `json:"lawyer"`
	Message string                `json:"message"`
}

// PendingUser - минимум данных о владельце заявки
type PendingUser struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type PendingLawyer struct {
	*models.LawyerProfile
	User *PendingUser `json:"user"`
}

// ==========================
// Public profile
// ==========================

type LawyerCounts struct {
	Reviews       int64 `json:"reviews"`
	Consultations int64 `json:"consultations"`
}

type LawyerUserSummary struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`
}

type ReviewClientUser struct {
	Email string `json:"email"`
}

type ReviewClient struct {
	ID        string            `json:"id"`
	FirstName string            `json:"firstName,omitempty"`
	LastName  string            `json:"lastName,omitempty"`
	User      *ReviewClientUser `json:"user,omitempty"`
}

type ReviewConsultation struct {
	ID          string                    `json:"id"`
	Type        models.ConsultationType   `json:"type"`
	Status      models.ConsultationStatus `json:"status"`
	ScheduledAt time.Time                 `json:"scheduledAt"`
	Client      *ReviewClient             `json:"client,omitempty"`
}

// ReviewResponse - отзыв без внутренних полей пользователя клиента
type ReviewResponse struct {
	*models.Review
	Consultation *ReviewConsultation `json:"consultation,omitempty"`
}

type LawyerDetailResponse struct {
	*models.LawyerProfile
	User    *LawyerUserSummary `json:"user"`
	Reviews []ReviewResponse   `json:"reviews"`
	Count   LawyerCounts       `json:"_count"`
}
