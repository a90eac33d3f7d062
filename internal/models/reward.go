package models

import "time"

// Reward 等级奖励，达到 Level 的成员应持有 RoleID 对应的身份组
// 联合主键 (guild_id, role_id)，同一身份组重复保存只更新等级
type Reward struct {
	GuildID uint64 `gorm:"primaryKey;autoIncrement:false" json:"guild_id"`
	RoleID  uint64 `gorm:"primaryKey;autoIncrement:false" json:"role_id"`

	Level int `gorm:"not null" json:"level"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Reward) TableName() string {
	return "rewards"
}
