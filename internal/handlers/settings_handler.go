package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Katzuo/LevelEngine/internal/services"
)

type SettingsHandler struct {
	Admin *services.AdminService
}

func NewSettingsHandler(admin *services.AdminService) *SettingsHandler {
	return &SettingsHandler{Admin: admin}
}

// GetSettings 查看 Guild 等级系统配置
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	guildID, ok := pathID(c, "guild_id")
	if !ok {
		return
	}

	settings, err := h.Admin.GetSettings(c.Request.Context(), guildID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

type updateSettingsRequest struct {
	CooldownMinutes *int    `json:"cooldown_minutes"`
	Base            *int    `json:"base"`
	Modifier        *int    `json:"modifier"`
	RewardAmount    *int    `json:"reward_amount"`
	UserChannelID   *uint64 `json:"user_channel_id"`
	LogChannelID    *uint64 `json:"log_channel_id"`
}

// UpdateSettings 更新配置，缺省字段保持不变
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	guildID, ok := pathID(c, "guild_id")
	if !ok {
		return
	}

	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数格式错误"})
		return
	}

	settings, err := h.Admin.UpdateSettings(c.Request.Context(), guildID, services.SettingsPatch{
		CooldownMinutes: req.CooldownMinutes,
		Base:            req.Base,
		Modifier:        req.Modifier,
		RewardAmount:    req.RewardAmount,
		UserChannelID:   req.UserChannelID,
		LogChannelID:    req.LogChannelID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
