package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Katzuo/LevelEngine/internal/services"
)

type MemberHandler struct {
	Admin *services.AdminService
}

func NewMemberHandler(admin *services.AdminService) *MemberHandler {
	return &MemberHandler{Admin: admin}
}

// GetStats 查询成员的经验、等级、进度与下一个奖励
func (h *MemberHandler) GetStats(c *gin.Context) {
	guildID, ok := pathID(c, "guild_id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	stats, err := h.Admin.MemberStats(c.Request.Context(), guildID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

type awardRequest struct {
	Amount int `json:"amount" binding:"required"`
}

// Award 为成员追加经验
func (h *MemberHandler) Award(c *gin.Context) {
	guildID, ok := pathID(c, "guild_id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var req awardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数格式错误"})
		return
	}

	member, err := h.Admin.Award(c.Request.Context(), guildID, userID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

type reclaimRequest struct {
	Amount int  `json:"amount"`
	All    bool `json:"all"`
}

// Reclaim 回收成员经验，all 为 true 时清零，结果不会为负
func (h *MemberHandler) Reclaim(c *gin.Context) {
	guildID, ok := pathID(c, "guild_id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var req reclaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数格式错误"})
		return
	}

	member, err := h.Admin.Reclaim(c.Request.Context(), guildID, userID, req.Amount, req.All)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

type ignoreMemberRequest struct {
	Ignored bool `json:"ignored"`
}

// SetIgnore 设置成员的忽略标记
func (h *MemberHandler) SetIgnore(c *gin.Context) {
	guildID, ok := pathID(c, "guild_id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var req ignoreMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数格式错误"})
		return
	}

	member, err := h.Admin.SetMemberIgnore(c.Request.Context(), guildID, userID, req.Ignored)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// ListIgnored 返回 Guild 的排除名单（频道 + 身份组）
func (h *MemberHandler) ListIgnored(c *gin.Context) {
	guildID, ok := pathID(c, "guild_id")
	if !ok {
		return
	}

	channels, roles, err := h.Admin.ListIgnored(c.Request.Context(), guildID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"channels": channels, "roles": roles})
}

// IgnoreChannel 将频道加入排除名单
func (h *MemberHandler) IgnoreChannel(c *gin.Context) {
	h.ignoreTarget(c, "channel_id", h.Admin.IgnoreChannel)
}

// UnignoreChannel 将频道移出排除名单
func (h *MemberHandler) UnignoreChannel(c *gin.Context) {
	h.ignoreTarget(c, "channel_id", h.Admin.UnignoreChannel)
}

// IgnoreRole 将身份组加入排除名单
func (h *MemberHandler) IgnoreRole(c *gin.Context) {
	h.ignoreTarget(c, "role_id", h.Admin.IgnoreRole)
}

// UnignoreRole 将身份组移出排除名单
func (h *MemberHandler) UnignoreRole(c *gin.Context) {
	h.ignoreTarget(c, "role_id", h.Admin.UnignoreRole)
}

func (h *MemberHandler) ignoreTarget(c *gin.Context, param string, fn func(ctx context.Context, guildID, targetID uint64) error) {
	guildID, ok := pathID(c, "guild_id")
	if !ok {
		return
	}
	targetID, ok := pathID(c, param)
	if !ok {
		return
	}

	if err := fn(c.Request.Context(), guildID, targetID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
