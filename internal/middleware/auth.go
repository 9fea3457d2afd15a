package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pagelift/core/internal/pkg/jwt"
	"github.com/pagelift/core/internal/pkg/response"
)

const contextKeyPrincipal = "principal"

// Principal is the authenticated caller. It is extracted once at the HTTP
// boundary and passed explicitly into services; nothing downstream reads
// ambient auth state.
type Principal struct {
	UserID   string
	TenantID string
	Role     string
}

// Auth returns a middleware that enforces JWT authentication and stores the
// verified principal on the request context.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwt.Parse(extractToken(c))
		if err != nil || claims.TokenType != jwt.TypeAccess {
			response.Unauthorized(c)
			return
		}
		c.Set(contextKeyPrincipal, Principal{
			UserID:   claims.UserID,
			TenantID: claims.TenantID,
			Role:     claims.Role,
		})
		c.Next()
	}
}

// RequireRole returns a middleware that rejects principals outside the
// allowed role set. Run it after Auth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPrincipal(c)
		for _, role := range roles {
			if p.Role == role {
				c.Next()
				return
			}
		}
		response.Forbidden(c)
	}
}

// RequirePermission rejects principals whose role fails the given check,
// e.g. models.CanEdit. Run it after Auth.
func RequirePermission(allowed func(role string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !allowed(CurrentPrincipal(c).Role) {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// CurrentPrincipal extracts the authenticated principal from context. The
// zero Principal means the request is unauthenticated.
func CurrentPrincipal(c *gin.Context) Principal {
	v, _ := c.Get(contextKeyPrincipal)
	p, _ := v.(Principal)
	return p
}

func extractToken(c *gin.Context) string {
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if after, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return auth
}
