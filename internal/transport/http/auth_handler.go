package http

import (
	"errors"
	"net/http"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth     service.Authenticator
	identity service.IdentityService
	log      *zap.Logger
}

func NewAuthHandler(auth service.Authenticator, identity service.IdentityService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, identity: identity, log: log}
}

// Login delegates credential checks to the auth service and then folds the
// anonymous cart into the user's cart before responding.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, NewValidationError("invalid request body"))
		return
	}

	userID, accessToken, err := h.auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, NewUnauthorizedError("invalid credentials"))
			return
		}
		h.log.Error("auth service call failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, NewInternalError(""))
		return
	}

	if cookie, cerr := c.Cookie(SessionCookieName); cerr == nil && cookie != "" {
		if err := h.identity.MergeOnLogin(c.Request.Context(), cookie, userID); err != nil {
			if errors.Is(err, service.ErrMergeInProgress) {
				// another login submission is merging the same cart right now
				h.log.Info("cart merge already running", zap.String("user_id", userID.String()))
			} else {
				// login still succeeds; the guest cart stays behind the cookie
				h.log.Error("cart merge failed", zap.Error(err), zap.String("user_id", userID.String()))
			}
		} else {
			c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
		}
	}

	c.JSON(http.StatusOK, LoginResponse{UserID: userID.String(), AccessToken: accessToken})
}
