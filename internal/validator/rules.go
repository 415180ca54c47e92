package validator

import (
	"log"
	"strings"

	"lexhub_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// Роли в истории чата. "assistant" приходит от фронта, "model" - в терминах Gemini.
var chatRoles = map[string]struct{}{
	"user":      {},
	"assistant": {},
	"model":     {},
}

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Без правил приложение запускать нельзя
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-language': значение из закрытого списка языков (регистр не важен)
	mustRegister("is-language", validateLanguage)

	// 'is-chat-role': роль реплики в истории чата
	mustRegister("is-chat-role", validateChatRole)

	// 'notblank': строка не состоит из одних пробелов
	mustRegister("notblank", validateNotBlank)
}

// --- Функции валидации ---

func validateLanguage(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения - забота 'required'
	}
	_, ok := models.ParseLanguage(value)
	return ok
}

func validateChatRole(fl validator.FieldLevel) bool {
	value := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	if value == "" {
		return true
	}
	_, ok := chatRoles[value]
	return ok
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
