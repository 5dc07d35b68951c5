package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/models"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/service"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Context keys for user info
const (
	CtxUserID   = "user_id"
	CtxUserRole = "user_role"
	CtxIdentity = "cart_identity"
)

const (
	SessionCookieName = "cart_session"
	sessionCookieAge  = 30 * 24 * 60 * 60 // seconds
)

// Identity resolves who owns the cart for this request. A valid Bearer token
// wins; otherwise the anonymous session cookie is used if present. A request
// with neither carries a zero identity; mutating endpoints allocate a token
// via EnsureIdentity.
func Identity(verifier *token.HSVerifier, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authz := c.GetHeader("Authorization"); authz != "" {
			tok, ok := ExtractBearerToken(authz)
			if !ok || tok == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, NewUnauthorizedError("invalid Authorization header"))
				return
			}
			claims, err := verifier.ParseAndValidateAccess(c.Request.Context(), tok)
			if err != nil {
				log.Warn("token validation failed", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusUnauthorized, NewUnauthorizedError("invalid token"))
				return
			}
			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxUserRole, claims.Role)
			c.Set(CtxIdentity, models.UserIdentity(claims.UserID))
			c.Next()
			return
		}

		if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
			c.Set(CtxIdentity, models.SessionIdentity(cookie))
		}
		c.Next()
	}
}

// EnsureIdentity allocates an anonymous session token when the request has no
// identity yet, so carts survive across requests for guests. Read-only routes
// skip this and see a zero identity instead.
func EnsureIdentity(identity service.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(CtxIdentity); !ok {
			tok := identity.NewSessionToken()
			c.SetCookie(SessionCookieName, tok, sessionCookieAge, "/", "", false, true)
			c.Set(CtxIdentity, models.SessionIdentity(tok))
		}
		c.Next()
	}
}

// RequireAuth rejects requests that did not present a valid access token.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(CtxUserID); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, NewUnauthorizedError("authentication required"))
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects non-admin users. Must run after Identity.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(CtxUserRole)
		if !ok || role.(string) != string(service.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, NewForbiddenError("admin access required"))
			return
		}
		c.Next()
	}
}

func identityFrom(c *gin.Context) models.CartIdentity {
	if v, ok := c.Get(CtxIdentity); ok {
		if id, ok := v.(models.CartIdentity); ok {
			return id
		}
	}
	return models.CartIdentity{}
}

// serviceContext carries the authenticated principal into the service layer.
func serviceContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if v, ok := c.Get(CtxUserID); ok {
		if uid, ok := v.(uuid.UUID); ok {
			ctx = service.WithUserID(ctx, uid)
		}
	}
	if v, ok := c.Get(CtxUserRole); ok {
		if role, ok := v.(string); ok {
			ctx = service.WithRole(ctx, service.Role(role))
		}
	}
	return ctx
}

// ExtractBearerToken pulls the token out of an Authorization header, tolerant
// of stray quotes and trailing junk.
func ExtractBearerToken(authz string) (string, bool) {
	if authz == "" {
		return "", false
	}
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	t := strings.TrimSpace(parts[1])
	t = strings.Trim(t, " \"'")
	if i := strings.IndexRune(t, ','); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	t = strings.Trim(t, " \"'")
	if i := strings.IndexByte(t, ' '); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	t = strings.Trim(t, " \"'")
	return t, true
}
