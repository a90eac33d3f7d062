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

// SettingsPatch 配置更新，nil 字段表示保持不变
// 外部引用格式（提及、名称等）由接入层解析成 ID，这里只接受纯标识符
type SettingsPatch struct {
	CooldownMinutes *int
	Base            *int
	Modifier        *int
	RewardAmount    *int
	UserChannelID   *uint64
	LogChannelID    *uint64
}

// MemberStats 成员等级查询结果
type MemberStats struct {
	GuildID        uint64 `json:"guild_id"`
	UserID         uint64 `json:"user_id"`
	XP             int    `json:"xp"`
	Level          int    `json:"level"`
	ProgressGained int    `json:"progress_gained"` // 当前等级内已获得的经验
	ProgressSpan   int    `json:"progress_span"`   // 当前等级到下一等级的经验区间
	NextRewardRole uint64 `json:"next_reward_role,omitempty"`
	NextRewardAt   int    `json:"next_reward_at,omitempty"`
}

// AdminService 运维命令面：配置、经验调整、排除名单、成员查询
type AdminService struct {
	settings SettingsStore
	members  MemberStore
	rewards  RewardStore
	ignores  IgnoreStore
	notifier notify.Notifier
	locks    *keymutex.KeyMutex
	defaults models.GuildSettings
	logger   *logger.Logger
}

func NewAdminService(
	settings SettingsStore,
	members MemberStore,
	rewards RewardStore,
	ignores IgnoreStore,
	notifier notify.Notifier,
	locks *keymutex.KeyMutex,
	defaults models.GuildSettings,
	log *logger.Logger,
) *AdminService {
	return &AdminService{
		settings: settings,
		members:  members,
		rewards:  rewards,
		ignores:  ignores,
		notifier: notifier,
		locks:    locks,
		defaults: defaults,
		logger:   log,
	}
}

// GetSettings 查看 Guild 配置，不存在时以默认值创建
func (s *AdminService) GetSettings(ctx context.Context, guildID uint64) (*models.GuildSettings, error) {
	return s.settings.EnsureDefault(ctx, guildID, s.defaults)
}

// UpdateSettings 应用配置更新，先整体校验再落库
func (s *AdminService) UpdateSettings(ctx context.Context, guildID uint64, patch SettingsPatch) (*models.GuildSettings, error) {
	settings, err := s.settings.EnsureDefault(ctx, guildID, s.defaults)
	if err != nil {
		return nil, err
	}

	if patch.CooldownMinutes != nil {
		if *patch.CooldownMinutes < 0 {
			return nil, ErrInvalidCooldown
		}
		settings.CooldownMinutes = *patch.CooldownMinutes
	}
	if patch.Base != nil {
		if *patch.Base <= 0 {
			return nil, ErrInvalidBase
		}
		settings.Base = *patch.Base
	}
	if patch.Modifier != nil {
		if *patch.Modifier < 0 {
			return nil, ErrInvalidModifier
		}
		settings.Modifier = *patch.Modifier
	}
	if patch.RewardAmount != nil {
		if *patch.RewardAmount <= 0 {
			return nil, ErrInvalidAmount
		}
		settings.RewardAmount = *patch.RewardAmount
	}
	if patch.UserChannelID != nil {
		settings.UserChannelID = *patch.UserChannelID
	}
	if patch.LogChannelID != nil {
		settings.LogChannelID = *patch.LogChannelID
	}

	return s.settings.Save(ctx, settings)
}

// Award 为成员追加经验，amount 必须为正
// 手动奖励不受冷却与忽略标记限制
func (s *AdminService) Award(ctx context.Context, guildID, userID uint64, amount int) (*models.Member, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	// 与参与事件路径共用同一把锁，避免手动调整与发放互相覆盖
	s.locks.Lock(guildID, userID)
	defer s.locks.Unlock(guildID, userID)

	member, err := s.getMember(ctx, guildID, userID)
	if err != nil {
		return nil, err
	}
	member.XP += amount
	saved, err := s.members.Save(ctx, member)
	if err != nil {
		return nil, err
	}
	s.audit(ctx, guildID, userID, fmt.Sprintf("管理员为成员 %d 追加了 %d 点经验", userID, amount))
	return saved, nil
}

// Reclaim 回收成员经验，all 为 true 时清零，结果永不为负
func (s *AdminService) Reclaim(ctx context.Context, guildID, userID uint64, amount int, all bool) (*models.Member, error) {
	if !all && amount <= 0 {
		return nil, ErrInvalidAmount
	}

	s.locks.Lock(guildID, userID)
	defer s.locks.Unlock(guildID, userID)

	member, err := s.getMember(ctx, guildID, userID)
	if err != nil {
		return nil, err
	}
	if all {
		member.XP = 0
	} else {
		member.XP -= amount
		if member.XP < 0 {
			member.XP = 0
		}
	}
	saved, err := s.members.Save(ctx, member)
	if err != nil {
		return nil, err
	}
	s.audit(ctx, guildID, userID, fmt.Sprintf("管理员回收了成员 %d 的经验，剩余 %d 点", userID, saved.XP))
	return saved, nil
}

// SetMemberIgnore 设置成员的忽略标记，被忽略的成员不再从消息获得经验
func (s *AdminService) SetMemberIgnore(ctx context.Context, guildID, userID uint64, ignored bool) (*models.Member, error) {
	s.locks.Lock(guildID, userID)
	defer s.locks.Unlock(guildID, userID)

	member, err := s.getMember(ctx, guildID, userID)
	if err != nil {
		return nil, err
	}
	member.IgnoreXPGain = ignored
	return s.members.Save(ctx, member)
}

// IgnoreChannel 排除频道，重复排除是空操作
func (s *AdminService) IgnoreChannel(ctx context.Context, guildID, channelID uint64) error {
	if _, err := s.settings.EnsureDefault(ctx, guildID, s.defaults); err != nil {
		return err
	}
	return s.ignores.AddChannel(ctx, guildID, channelID)
}

// UnignoreChannel 恢复频道，目标不存在时也视为成功
func (s *AdminService) UnignoreChannel(ctx context.Context, guildID, channelID uint64) error {
	return s.ignores.RemoveChannel(ctx, guildID, channelID)
}

// IgnoreRole 排除身份组，重复排除是空操作
func (s *AdminService) IgnoreRole(ctx context.Context, guildID, roleID uint64) error {
	if _, err := s.settings.EnsureDefault(ctx, guildID, s.defaults); err != nil {
		return err
	}
	return s.ignores.AddRole(ctx, guildID, roleID)
}

// UnignoreRole 恢复身份组，目标不存在时也视为成功
func (s *AdminService) UnignoreRole(ctx context.Context, guildID, roleID uint64) error {
	return s.ignores.RemoveRole(ctx, guildID, roleID)
}

// ListIgnored 返回 Guild 的排除名单
func (s *AdminService) ListIgnored(ctx context.Context, guildID uint64) (channels, roles []uint64, err error) {
	channels, err = s.ignores.ListChannels(ctx, guildID)
	if err != nil {
		return nil, nil, err
	}
	roles, err = s.ignores.ListRoles(ctx, guildID)
	if err != nil {
		return nil, nil, err
	}
	return channels, roles, nil
}

// MemberStats 查询成员的等级、进度与下一个奖励
func (s *AdminService) MemberStats(ctx context.Context, guildID, userID uint64) (*MemberStats, error) {
	member, err := s.getMember(ctx, guildID, userID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.EnsureDefault(ctx, guildID, s.defaults)
	if err != nil {
		return nil, err
	}

	curve := leveling.Curve{Base: settings.Base, Modifier: settings.Modifier}
	level := curve.Level(member.XP)
	gained, span := curve.Progress(member.XP)

	stats := &MemberStats{
		GuildID:        guildID,
		UserID:         userID,
		XP:             member.XP,
		Level:          level,
		ProgressGained: gained,
		ProgressSpan:   span,
	}

	// 下一个奖励：等级严格高于当前等级的奖励里等级最低的那个
	rewards, err := s.rewards.List(ctx, guildID)
	if err != nil {
		return nil, err
	}
	for _, reward := range rewards {
		if reward.Level > level {
			stats.NextRewardRole = reward.RoleID
			stats.NextRewardAt = reward.Level
			break
		}
	}
	return stats, nil
}

// audit 把管理动作写进 Guild 审计频道，配置未指向审计频道时静默丢弃
// 审计失败不影响命令本身的结果
func (s *AdminService) audit(ctx context.Context, guildID, userID uint64, message string) {
	settings, err := s.settings.EnsureDefault(ctx, guildID, s.defaults)
	if err != nil || settings.LogChannelID == 0 {
		return
	}
	event := notify.Event{
		Type:      notify.TypeAdminAction,
		GuildID:   guildID,
		ChannelID: settings.LogChannelID,
		UserID:    userID,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err := s.notifier.Post(ctx, event); err != nil {
		s.logger.WithContext(ctx).Warn("审计通知投递失败", zap.Uint64("guild_id", guildID), zap.Error(err))
	}
}

func (s *AdminService) getMember(ctx context.Context, guildID, userID uint64) (*models.Member, error) {
	member, err := s.members.Get(ctx, guildID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}
