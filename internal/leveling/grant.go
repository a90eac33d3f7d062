package leveling

import (
	"time"

	"github.com/Katzuo/LevelEngine/internal/models"
)

// TryGrant 冷却门：判断成员此刻能否获得经验
// 可以获得时返回更新后的成员（经验 + 冷却刷新）和 true；
// 否则原样返回成员和 false，调用方不应写库
// 纯函数，调用方负责持有 (guild, user) 级别的锁并持久化结果
func TryGrant(member models.Member, settings *models.GuildSettings, now time.Time) (models.Member, bool) {
	if member.IgnoreXPGain || member.TimeoutAt.After(now) {
		return member, false
	}
	member.XP += settings.RewardAmount
	member.TimeoutAt = now.Add(settings.Cooldown())
	return member, true
}

// NewMember 首次见到成员时的初始记录：零经验，冷却到期时间为当前时间
// 首条消息只登记存在，真正的经验发放从下一条有效消息开始
func NewMember(guildID, userID uint64, now time.Time) models.Member {
	return models.Member{
		GuildID:   guildID,
		UserID:    userID,
		XP:        0,
		TimeoutAt: now,
	}
}
