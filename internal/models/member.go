package models

import "time"

// Member 成员经验记录，联合主键 (guild_id, user_id)
type Member struct {
	GuildID uint64 `gorm:"primaryKey;autoIncrement:false" json:"guild_id"`
	UserID  uint64 `gorm:"primaryKey;autoIncrement:false" json:"user_id"`

	XP           int       `gorm:"not null;default:0" json:"xp"`
	TimeoutAt    time.Time `gorm:"not null" json:"timeout_at"` // 冷却到期时间，早于当前时间表示可以获得经验
	IgnoreXPGain bool      `gorm:"not null;default:false" json:"ignore_xp_gain"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Member) TableName() string {
	return "member_levels"
}
