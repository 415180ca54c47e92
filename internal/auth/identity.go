package auth

import (
	"context"

	"lexhub_backend/internal/models"
	"lexhub_backend/pkg/contextkeys"
)

// Identity - вызывающий пользователь, привязан к одному запросу
type Identity struct {
	UserID string
	Email  string
	Role   models.UserRole
	Status models.UserStatus
	Locale string
}

// NewIdentity снимает identity с записи пользователя (роль всегда из БД)
func NewIdentity(u *models.User) *Identity {
	return &Identity{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		Status: u.Status,
		Locale: u.Locale,
	}
}

func (i *Identity) HasRole(role models.UserRole) bool {
	return i != nil && i.Role == role
}

func (i *Identity) HasAnyRole(roles ...models.UserRole) bool {
	return i != nil && Allows(roles, i.Role)
}

func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, contextkeys.IdentityContextKey, identity)
}

func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(contextkeys.IdentityContextKey).(*Identity)
	return identity, ok && identity != nil
}
