package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Katzuo/LevelEngine/internal/leveling"
	"github.com/Katzuo/LevelEngine/internal/models"
	"github.com/Katzuo/LevelEngine/internal/notify"
	"github.com/Katzuo/LevelEngine/internal/repositories"
	logger "github.com/Katzuo/LevelEngine/middleware/log"
	"github.com/Katzuo/LevelEngine/utils/keymutex"
)

// MessageEvent 一次参与事件：某个成员在某个频道发了一条消息
// 由网关进程投递，至少一次语义
type MessageEvent struct {
	EventID       string   `json:"event_id"`
	UserID        uint64   `json:"user_id"`
	GuildID       uint64   `json:"guild_id"`
	ChannelID     uint64   `json:"channel_id"`
	AuthorIsBot   bool     `json:"author_is_bot"`
	AuthorRoleIDs []uint64 `json:"author_role_ids"`
}

// LevelingService 参与事件的主处理路径
// 过滤 -> 首次登记 -> 冷却门 -> 持久化 -> 升级检测 -> 奖励收敛
type LevelingService struct {
	settings SettingsStore
	members  MemberStore
	ignores  IgnoreStore
	rewards  *RewardService
	notifier notify.Notifier
	locks    *keymutex.KeyMutex
	defaults models.GuildSettings
	logger   *logger.Logger
	now      func() time.Time
}

func NewLevelingService(
	settings SettingsStore,
	members MemberStore,
	ignores IgnoreStore,
	rewards *RewardService,
	notifier notify.Notifier,
	locks *keymutex.KeyMutex,
	defaults models.GuildSettings,
	log *logger.Logger,
) *LevelingService {
	return &LevelingService{
		settings: settings,
		members:  members,
		ignores:  ignores,
		rewards:  rewards,
		notifier: notifier,
		locks:    locks,
		defaults: defaults,
		logger:   log,
		now:      time.Now,
	}
}

// HandleMessage 处理一次参与事件
// 处理失败返回错误由消费端记录；事件本身不会回给消息作者
func (s *LevelingService) HandleMessage(ctx context.Context, event MessageEvent) error {
	if event.AuthorIsBot {
		return nil
	}

	// Guild 第一次出现活动时惰性创建默认配置
	settings, err := s.settings.EnsureDefault(ctx, event.GuildID, s.defaults)
	if err != nil {
		return fmt.Errorf("加载 Guild 配置失败: %w", err)
	}

	ignored, err := s.ignores.IsChannelIgnored(ctx, event.GuildID, event.ChannelID)
	if err != nil {
		return err
	}
	if ignored {
		return nil
	}

	if len(event.AuthorRoleIDs) > 0 {
		ignored, err := s.ignores.AnyRoleIgnored(ctx, event.GuildID, event.AuthorRoleIDs)
		if err != nil {
			return err
		}
		if ignored {
			return nil
		}
	}

	// 同一成员的读-判-写必须串行，否则并发消息会丢失更新
	s.locks.Lock(event.GuildID, event.UserID)
	defer s.locks.Unlock(event.GuildID, event.UserID)

	now := s.now().UTC()

	member, err := s.members.Get(ctx, event.GuildID, event.UserID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		// 首次见到：只登记存在，发放从下一条有效消息开始
		created := leveling.NewMember(event.GuildID, event.UserID, now)
		if _, err := s.members.Save(ctx, &created); err != nil {
			return err
		}
		return nil
	}

	updated, eligible := leveling.TryGrant(*member, settings, now)
	if !eligible {
		return nil
	}

	saved, err := s.members.Save(ctx, &updated)
	if err != nil {
		return err
	}

	// 升级判定基于前后经验各算一次等级，不依赖缓存的"上次等级"，
	// 因为经验还可能被管理命令带外调整
	curve := leveling.Curve{Base: settings.Base, Modifier: settings.Modifier}
	previousLevel := curve.Level(member.XP)
	newLevel := curve.Level(saved.XP)
	if newLevel <= previousLevel {
		return nil
	}

	s.logger.WithContext(ctx).Info("成员升级",
		zap.String("event_id", event.EventID),
		zap.Uint64("guild_id", event.GuildID),
		zap.Uint64("user_id", event.UserID),
		zap.Int("level", newLevel))

	s.announce(ctx, settings, notify.Event{
		Type:    notify.TypeLevelUp,
		GuildID: event.GuildID,
		UserID:  event.UserID,
		Level:   newLevel,
		Message: fmt.Sprintf("成员 %d 升到了 %d 级", event.UserID, newLevel),
	})

	// 事件自带作者当前身份组，收敛时直接作为已持有集合
	s.rewards.Sync(ctx, settings, event.UserID, newLevel, event.AuthorRoleIDs)
	return nil
}

func (s *LevelingService) announce(ctx context.Context, settings *models.GuildSettings, event notify.Event) {
	if settings.LogChannelID == 0 {
		return
	}
	event.ChannelID = settings.LogChannelID
	event.Timestamp = s.now().UTC()
	if err := s.notifier.Post(ctx, event); err != nil {
		s.logger.WithContext(ctx).Warn("通知投递失败", zap.Uint64("guild_id", settings.GuildID), zap.Error(err))
	}
}
