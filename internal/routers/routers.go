package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Katzuo/LevelEngine/internal/handlers"
	"github.com/Katzuo/LevelEngine/internal/middlewares"
	"github.com/Katzuo/LevelEngine/internal/ws"
	"github.com/Katzuo/LevelEngine/middleware/jwt"
)

// SetupRoutes 注册全部运维路由
// 参与事件不走 HTTP，由 Kafka 消费端进入引擎
func SetupRoutes(r *gin.Engine,
	tm *jwt.TokenManager,
	authHandler *handlers.AuthHandler,
	settingsHandler *handlers.SettingsHandler,
	rewardHandler *handlers.RewardHandler,
	memberHandler *handlers.MemberHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	hub *ws.Hub,
) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"Status": "OK"})
	})

	r.POST("/api/v1/auth/login", authHandler.Login)

	auth := middlewares.AuthMiddleware(tm)

	// 实时审计流（WebSocket）
	r.GET("/ws/audit", auth, func(c *gin.Context) {
		ws.ServeWs(hub, c)
	})

	guilds := r.Group("/api/v1/guilds", auth)
	{
		guilds.GET("/:guild_id/settings", settingsHandler.GetSettings)
		guilds.PATCH("/:guild_id/settings", settingsHandler.UpdateSettings)

		guilds.GET("/:guild_id/rewards", rewardHandler.ListRewards)
		guilds.PUT("/:guild_id/rewards/:role_id", rewardHandler.PutReward)
		guilds.DELETE("/:guild_id/rewards/:role_id", rewardHandler.DeleteReward)

		guilds.GET("/:guild_id/members/:user_id", memberHandler.GetStats)
		guilds.POST("/:guild_id/members/:user_id/award", memberHandler.Award)
		guilds.POST("/:guild_id/members/:user_id/reclaim", memberHandler.Reclaim)
		guilds.POST("/:guild_id/members/:user_id/ignore", memberHandler.SetIgnore)
		guilds.POST("/:guild_id/members/:user_id/resync", rewardHandler.ResyncMember)

		guilds.GET("/:guild_id/ignored", memberHandler.ListIgnored)
		guilds.PUT("/:guild_id/ignored/channels/:channel_id", memberHandler.IgnoreChannel)
		guilds.DELETE("/:guild_id/ignored/channels/:channel_id", memberHandler.UnignoreChannel)
		guilds.PUT("/:guild_id/ignored/roles/:role_id", memberHandler.IgnoreRole)
		guilds.DELETE("/:guild_id/ignored/roles/:role_id", memberHandler.UnignoreRole)

		guilds.GET("/:guild_id/leaderboard", leaderboardHandler.Top)
		guilds.GET("/:guild_id/leaderboard/:user_id", leaderboardHandler.Around)
		guilds.GET("/:guild_id/leaderboard/:user_id/rank", leaderboardHandler.Rank)
	}
}
