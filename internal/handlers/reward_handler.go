package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Katzuo/LevelEngine/internal/services"
)

type RewardHandler struct {
	Rewards *services.RewardService
}

func NewRewardHandler(rewards *services.RewardService) *RewardHandler {
	return &RewardHandler{Rewards: rewards}
}

// ListRewards 列出 Guild 的奖励表，按等级升序
func (h *RewardHandler) ListRewards(c *gin.Context) {
	guildID, ok := pathID(c, "guild_id")
	if !ok {
		return
	}

	rewards, err := h.Rewards.List(c.Request.Context(), guildID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}

type putRewardRequest struct {
	Level int `json:"level" binding:"required"`
}

// PutReward 新增或更新奖励
func (h *RewardHandler) PutReward(c *gin.Context) {
	guildID, ok := pathID(c, "guild_id")
	if !ok {
		return
	}
	roleID, ok := pathID(c, "role_id")
	if !ok {
		return
	}

	var req putRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数格式错误"})
		return
	}

	reward, err := h.Rewards.AddOrUpdate(c.Request.Context(), guildID, roleID, req.Level)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reward)
}

// DeleteReward 删除奖励，目标不存在时同样返回成功
func (h *RewardHandler) DeleteReward(c *gin.Context) {
	guildID, ok := pathID(c, "guild_id")
	if !ok {
		return
	}
	roleID, ok := pathID(c, "role_id")
	if !ok {
		return
	}

	if err := h.Rewards.Remove(c.Request.Context(), guildID, roleID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ResyncMember 手动触发一次奖励收敛
func (h *RewardHandler) ResyncMember(c *gin.Context) {
	guildID, ok := pathID(c, "guild_id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	if err := h.Rewards.Resync(c.Request.Context(), guildID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "synced"})
}
