package models

import "time"

// IgnoredChannel 被排除的频道，来自该频道的消息不产生经验
type IgnoredChannel struct {
	GuildID   uint64    `gorm:"primaryKey;autoIncrement:false" json:"guild_id"`
	ChannelID uint64    `gorm:"primaryKey;autoIncrement:false" json:"channel_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (IgnoredChannel) TableName() string {
	return "ignored_channels"
}

// IgnoredRole 被排除的身份组，持有该身份组的成员不产生经验
type IgnoredRole struct {
	GuildID   uint64    `gorm:"primaryKey;autoIncrement:false" json:"guild_id"`
	RoleID    uint64    `gorm:"primaryKey;autoIncrement:false" json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (IgnoredRole) TableName() string {
	return "ignored_roles"
}
