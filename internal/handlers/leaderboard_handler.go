package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Katzuo/LevelEngine/config"
	"github.com/Katzuo/LevelEngine/internal/services"
)

type LeaderboardHandler struct {
	ranks *services.RankService
	cfg   config.LeaderboardConfig
}

func NewLeaderboardHandler(rank *services.RankService, cfg config.LeaderboardConfig) *LeaderboardHandler {
	return &LeaderboardHandler{ranks: rank, cfg: cfg}
}

// Top 返回排行榜前 N 名，N 缺省取配置值
func (h *LeaderboardHandler) Top(c *gin.Context) {
	guildID, ok := pathID(c, "guild_id")
	if !ok {
		return
	}

	count := queryInt(c, "count", h.cfg.TopCount)
	if count <= 0 {
		count = 10
	}

	entries, total, err := h.ranks.Top(c.Request.Context(), guildID, count)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": total})
}

// Around 返回以指定成员为中心的排行榜窗口
func (h *LeaderboardHandler) Around(c *gin.Context) {
	guildID, ok := pathID(c, "guild_id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	before := queryInt(c, "before", h.cfg.WindowBefore)
	after := queryInt(c, "after", h.cfg.WindowAfter)

	entries, total, err := h.ranks.Window(c.Request.Context(), guildID, userID, before, after)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": total})
}

// Rank 返回指定成员的名次与 Guild 总人数
func (h *LeaderboardHandler) Rank(c *gin.Context) {
	guildID, ok := pathID(c, "guild_id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	rank, total, err := h.ranks.Rank(c.Request.Context(), guildID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rank": rank, "total": total})
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
