package apperrors

import (
	"net/http"
	"strings"
)

// =========================================================================
// Фабрики (оборачивают ошибки репозиториев и внешних сервисов)
// =========================================================================

// ErrNotFound - общий 404 для ресурса
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrLawyerNotFound - профиль юриста не найден
func ErrLawyerNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "lawyer", "Lawyer not found", http.StatusNotFound)
}

// ErrChatUpstream - сбой модели. Детали остаются только в логах.
func ErrChatUpstream(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "chat", "Failed to generate response", http.StatusInternalServerError)
}

// ErrMissingFields - не заполнены обязательные поля
func ErrMissingFields(domain string, fields []string) *AppError {
	return New(CodeValidationFailed, domain, "Missing required fields: "+strings.Join(fields, ", "), http.StatusBadRequest).
		WithDetails(map[string][]string{"missing": fields})
}

// =========================================================================
// Статичные ошибки
// =========================================================================

// --- Auth ---

// ErrUnauthenticated - нет сессии или токен невалиден. Без деталей.
var ErrUnauthenticated = New(CodeUnauthorized, "auth", "Unauthenticated", http.StatusUnauthorized)

// ErrUnauthorized - роль не входит в allow-list. Без деталей.
var ErrUnauthorized = New(CodeForbidden, "auth", "Unauthorized", http.StatusForbidden)

// ErrUserSuspended - аккаунт неактивен
var ErrUserSuspended = New(CodeForbidden, "auth", "Your account is not active", http.StatusForbidden)

// --- Lawyer lifecycle ---

// Конфликты онбординга отдаются как 400, так договорено с фронтом.
var ErrLawyerProfileExists = New(CodeConflict, "lawyer", "You already have a lawyer profile", http.StatusBadRequest)

var ErrBarNumberTaken = New(CodeConflict, "lawyer", "This bar number is already registered", http.StatusBadRequest)

// ErrLawyerNotPending - решение уже принято или профиль в другом статусе
var ErrLawyerNotPending = New(CodeInvalidStatus, "lawyer", "Lawyer is not pending verification", http.StatusBadRequest)

// ErrLawyerNotAvailable - профиль существует, но не одобрен
var ErrLawyerNotAvailable = New(CodeForbidden, "lawyer", "Lawyer profile not available", http.StatusForbidden)

var ErrInvalidModerationAction = New(CodeValidationFailed, "moderation", `Invalid action. Must be "approve" or "reject"`, http.StatusBadRequest)

// --- Chat ---

var ErrMessageRequired = New(CodeValidationFailed, "chat", "Message is required", http.StatusBadRequest)

// ErrRateLimited - слишком много запросов с одного клиента
var ErrRateLimited = New(CodeLimitExceeded, "rate_limit", "Rate limit exceeded. Try again later.", http.StatusTooManyRequests)
