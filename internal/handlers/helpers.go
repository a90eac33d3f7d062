package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Katzuo/LevelEngine/internal/repositories"
	"github.com/Katzuo/LevelEngine/internal/services"
)

// pathID 解析 URL 路径中的数字 ID，失败时直接写 400 响应
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的 " + name})
		return 0, false
	}
	return id, true
}

// respondError 统一的错误到状态码映射
// 校验类错误 400，不存在 404，存储故障 500
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidBase),
		errors.Is(err, services.ErrInvalidModifier),
		errors.Is(err, services.ErrInvalidCooldown),
		errors.Is(err, services.ErrInvalidLevel):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrMemberNotFound),
		errors.Is(err, services.ErrRewardNotFound),
		errors.Is(err, services.ErrSettingsNotFound),
		errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
