package models

import (
	"time"
)

// GuildSettings 每个 Guild 的等级系统配置
// base 必须大于 0，否则等级公式无意义（由 Service 层校验）
type GuildSettings struct {
	GuildID uint64 `gorm:"primaryKey;autoIncrement:false" json:"guild_id"`

	CooldownMinutes int `gorm:"not null;default:1" json:"cooldown_minutes"` // 两次获得经验之间的最小间隔（分钟）
	Base            int `gorm:"not null;default:50" json:"base"`            // 曲线基数
	Modifier        int `gorm:"not null;default:5" json:"modifier"`         // 曲线增长系数（百分比）
	RewardAmount    int `gorm:"not null;default:5" json:"reward_amount"`    // 每条有效消息获得的经验

	UserChannelID uint64 `gorm:"not null;default:0" json:"user_channel_id"` // 用户命令频道，0 表示不限制
	LogChannelID  uint64 `gorm:"not null;default:0" json:"log_channel_id"`  // 审计/公告频道，0 表示关闭

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (GuildSettings) TableName() string {
	return "guild_settings"
}

// Cooldown 返回配置的冷却时长
func (s *GuildSettings) Cooldown() time.Duration {
	return time.Duration(s.CooldownMinutes) * time.Minute
}
