package middleware

import (
	"lexhub_backend/internal/auth"
	"lexhub_backend/internal/logger"
	"lexhub_backend/internal/models"
	"lexhub_backend/pkg/apperrors"
	"lexhub_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionResolver находит (или заводит) пользователя по проверенной сессии
type SessionResolver interface {
	ResolveSession(db *gorm.DB, claims *auth.SessionClaims) (*models.User, error)
}

// IdentityGate проверяет сессию и роль до вызова хендлера.
// Результат кладется в контекст запроса как *auth.Identity.
type IdentityGate struct {
	resolver   SessionResolver
	secret     string
	cookieName string
}

func NewIdentityGate(resolver SessionResolver, secret, cookieName string) *IdentityGate {
	return &IdentityGate{
		resolver:   resolver,
		secret:     secret,
		cookieName: cookieName,
	}
}

// RequireAuth - любой активный пользователь
func (g *IdentityGate) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := g.authenticate(c); !ok {
			return
		}
		c.Next()
	}
}

// RequireRole пропускает только роли из allow-list. Пустой список не пускает никого.
func (g *IdentityGate) RequireRole(allowed ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := g.authenticate(c)
		if !ok {
			return
		}
		if !auth.Allows(allowed, identity.Role) {
			logger.CtxWarn(c.Request.Context(), "Access denied: role not allowed",
				"role", identity.Role,
				"allowed", allowed,
				"path", c.Request.URL.Path,
			)
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			return
		}
		c.Next()
	}
}

func (g *IdentityGate) RequireClient() gin.HandlerFunc {
	return g.RequireRole(auth.ClientOnly...)
}

func (g *IdentityGate) RequireLawyer() gin.HandlerFunc {
	return g.RequireRole(auth.LawyerOnly...)
}

func (g *IdentityGate) RequireFirmAdmin() gin.HandlerFunc {
	return g.RequireRole(auth.FirmAdminOnly...)
}

func (g *IdentityGate) RequireAdmin() gin.HandlerFunc {
	return g.RequireRole(auth.AdminOnly...)
}

func (g *IdentityGate) RequireLawyerOrFirmAdmin() gin.HandlerFunc {
	return g.RequireRole(auth.LawyerOrFirmAdmin...)
}

func (g *IdentityGate) RequireLawyerOrAdmin() gin.HandlerFunc {
	return g.RequireRole(auth.LawyerOrAdmin...)
}

// authenticate отвечает клиенту сам, если вернул false
func (g *IdentityGate) authenticate(c *gin.Context) (*auth.Identity, bool) {
	ctx := c.Request.Context()

	// гейт уже отработал выше по цепочке
	if identity, ok := auth.IdentityFromContext(ctx); ok {
		return identity, true
	}

	token := auth.TokenFromRequest(c.Request, g.cookieName)
	if token == "" {
		apperrors.HandleError(c, apperrors.ErrUnauthenticated)
		return nil, false
	}

	claims, err := auth.ParseSessionToken(token, g.secret)
	if err != nil {
		logger.CtxDebug(ctx, "Session token rejected", "error", err.Error(), "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ErrUnauthenticated)
		return nil, false
	}

	user, err := g.resolver.ResolveSession(dbFromContext(c), claims)
	if err != nil {
		apperrors.HandleError(c, err)
		return nil, false
	}

	identity := auth.NewIdentity(user)
	ctx = auth.WithIdentity(ctx, identity)
	ctx = logger.WithUserID(ctx, identity.UserID)
	ctx = logger.WithRole(ctx, string(identity.Role))
	c.Request = c.Request.WithContext(ctx)
	c.Set(string(contextkeys.IdentityContextKey), identity)

	return identity, true
}

// CurrentIdentity - личность из контекста; false для анонимного запроса
func CurrentIdentity(c *gin.Context) (*auth.Identity, bool) {
	return auth.IdentityFromContext(c.Request.Context())
}

func HasRole(c *gin.Context, role models.UserRole) bool {
	identity, ok := CurrentIdentity(c)
	return ok && identity.HasRole(role)
}

func HasAnyRole(c *gin.Context, roles ...models.UserRole) bool {
	identity, ok := CurrentIdentity(c)
	return ok && identity.HasAnyRole(roles...)
}

func dbFromContext(c *gin.Context) *gorm.DB {
	val, ok := c.Get(string(contextkeys.DBContextKey))
	if !ok {
		return nil
	}
	db, _ := val.(*gorm.DB)
	return db
}
