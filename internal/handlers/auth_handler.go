package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Katzuo/LevelEngine/config"
	"github.com/Katzuo/LevelEngine/middleware/jwt"
)

type AuthHandler struct {
	cfg *config.AuthConfig
	tm  *jwt.TokenManager
}

func NewAuthHandler(cfg *config.AuthConfig, tm *jwt.TokenManager) *AuthHandler {
	return &AuthHandler{cfg: cfg, tm: tm}
}

type loginRequest struct {
	Operator string `json:"operator" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 运维登录，口令与配置中的 bcrypt 摘要比对
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数格式错误"})
		return
	}

	if req.Operator != h.cfg.Operator ||
		bcrypt.CompareHashAndPassword([]byte(h.cfg.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "账号或口令错误"})
		return
	}

	token, err := h.tm.GenerateToken(req.Operator)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
