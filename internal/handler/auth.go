package handler

import (
	"net/http"
	"time"

	"github.com/yashkabra143/TimeTrakr/internal/config"
	"github.com/yashkabra143/TimeTrakr/internal/middleware"
	"github.com/yashkabra143/TimeTrakr/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler logs the operator in. There is exactly one account,
// configured in config.yaml; no registration.
type AuthHandler struct {
	Username     string
	PasswordHash string
	JWTSecret    string
	TokenTTL     time.Duration
}

func NewAuthHandler(auth config.AuthConfig, jwt config.JWTConfig) *AuthHandler {
	ttlHours := jwt.ExpireHours
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		Username:     auth.Username,
		PasswordHash: auth.PasswordHash,
		JWTSecret:    jwt.Secret,
		TokenTTL:     time.Duration(ttlHours) * time.Hour,
	}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	if req.Username != h.Username ||
		bcrypt.CompareHashAndPassword([]byte(h.PasswordHash), []byte(req.Password)) != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "wrong username or password")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.Username, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "issue token failed")
		return
	}

	util.Success(c, util.Response{
		"token":      token,
		"expires_at": time.Now().Add(h.TokenTTL),
	})
}

// Me returns the logged-in operator (requires AuthMiddleware).
func Me(c *gin.Context) {
	username := c.GetString(middleware.ContextOperator)
	util.Success(c, util.Response{
		"username": username,
	})
}
