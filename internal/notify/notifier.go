package notify

import (
	"context"
	"time"
)

// 通知类型
const (
	TypeLevelUp     = "level_up"
	TypeRewardGrant = "reward_grant"
	TypeRewardFail  = "reward_fail"
	TypeAdminAction = "admin_action"
)

// Event 一条发往 Guild 审计频道的通知
// 语义是至少一次投递，消费方需要容忍重复
type Event struct {
	Type      string    `json:"type"`
	GuildID   uint64    `json:"guild_id"`
	ChannelID uint64    `json:"channel_id"` // 目标审计频道
	UserID    uint64    `json:"user_id,omitempty"`
	Level     int       `json:"level,omitempty"`
	RoleIDs   []uint64  `json:"role_ids,omitempty"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Notifier 通知出口
// 路由决策（审计频道为 0 时静默丢弃）由调用方完成，到达这里的事件一定要投递
type Notifier interface {
	Post(ctx context.Context, event Event) error
}

// Multi 将同一事件广播给多个出口，返回第一个遇到的错误
func Multi(notifiers ...Notifier) Notifier {
	return multiNotifier(notifiers)
}

type multiNotifier []Notifier

func (m multiNotifier) Post(ctx context.Context, event Event) error {
	var first error
	for _, n := range m {
		if err := n.Post(ctx, event); err != nil && first == nil {
			first = err
		}
	}
	return first
}
