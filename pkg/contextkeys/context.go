package contextkeys

// Кастомный тип, чтобы не пересекаться с ключами других пакетов
type contextKey string

const (
	// DBContextKey - ключ для *gorm.DB (пул или транзакция) в gin.Context
	DBContextKey = contextKey("db")

	// IdentityContextKey - ключ для auth.Identity текущего запроса
	IdentityContextKey = contextKey("identity")
)
