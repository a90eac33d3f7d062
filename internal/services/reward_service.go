package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Katzuo/LevelEngine/internal/gateway"
	"github.com/Katzuo/LevelEngine/internal/leveling"
	"github.com/Katzuo/LevelEngine/internal/models"
	"github.com/Katzuo/LevelEngine/internal/notify"
	"github.com/Katzuo/LevelEngine/internal/repositories"
	logger "github.com/Katzuo/LevelEngine/middleware/log"
)

// RewardService 奖励同步器 + 奖励管理
// 同步器的职责：让成员的外部身份组最终与其等级匹配
// 收敛是最终一致的：外部变更失败只上报一次，不回滚经验写入，
// 等下一次自然触发（下一条有效消息或手动 resync）再重试
type RewardService struct {
	settings SettingsStore
	members  MemberStore
	rewards  RewardStore
	gateway  gateway.RoleGateway
	notifier notify.Notifier
	defaults models.GuildSettings
	logger   *logger.Logger
}

func NewRewardService(
	settings SettingsStore,
	members MemberStore,
	rewards RewardStore,
	gw gateway.RoleGateway,
	notifier notify.Notifier,
	defaults models.GuildSettings,
	log *logger.Logger,
) *RewardService {
	return &RewardService{
		settings: settings,
		members:  members,
		rewards:  rewards,
		gateway:  gw,
		notifier: notifier,
		defaults: defaults,
		logger:   log,
	}
}

// missingRewards 计算需要补发的身份组
// 只补不撤：等级下降不会摘除已持有的身份组
// known 非空时跳过外部已不存在的身份组，避免一个坏奖励卡住整轮发放
func missingRewards(level int, held []uint64, rewards []models.Reward, known map[uint64]bool) []uint64 {
	heldSet := make(map[uint64]bool, len(held))
	for _, id := range held {
		heldSet[id] = true
	}

	var toGrant []uint64
	for _, reward := range rewards {
		if reward.Level > level {
			continue
		}
		if heldSet[reward.RoleID] {
			continue
		}
		if known != nil && !known[reward.RoleID] {
			continue
		}
		toGrant = append(toGrant, reward.RoleID)
	}
	return toGrant
}

// Sync 将成员的身份组向其等级收敛，held 为成员当前持有的身份组
// 外部失败以单条聚合通知上报，不向调用方返回错误
func (s *RewardService) Sync(ctx context.Context, settings *models.GuildSettings, userID uint64, level int, held []uint64) {
	rewards, err := s.rewards.List(ctx, settings.GuildID)
	if err != nil {
		s.logger.WithContext(ctx).Error("读取奖励表失败",
			zap.Uint64("guild_id", settings.GuildID),
			zap.Error(err))
		return
	}
	if len(rewards) == 0 {
		return
	}

	// 奖励指向的身份组可能已在外部被删除，先拿现存集合用于过滤
	var known map[uint64]bool
	if existing, err := s.gateway.GuildRoles(ctx, settings.GuildID); err == nil {
		known = make(map[uint64]bool, len(existing))
		for _, id := range existing {
			known[id] = true
		}
	} else {
		s.logger.WithContext(ctx).Warn("查询 Guild 身份组失败，跳过存在性过滤",
			zap.Uint64("guild_id", settings.GuildID),
			zap.Error(err))
	}

	toGrant := missingRewards(level, held, rewards, known)
	if len(toGrant) == 0 {
		return
	}

	if err := s.gateway.AddRoles(ctx, settings.GuildID, userID, toGrant); err != nil {
		s.reportFailure(ctx, settings, userID, toGrant, err)
		return
	}

	s.post(ctx, settings, notify.Event{
		Type:    notify.TypeRewardGrant,
		GuildID: settings.GuildID,
		UserID:  userID,
		Level:   level,
		RoleIDs: toGrant,
		Message: fmt.Sprintf("成员 %d 达到 %d 级，获得 %d 个奖励身份组", userID, level, len(toGrant)),
	})
}

// Resync 手动触发一次收敛，使用网关视角的当前持有集合
func (s *RewardService) Resync(ctx context.Context, guildID, userID uint64) error {
	member, err := s.members.Get(ctx, guildID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}

	settings, err := s.settings.EnsureDefault(ctx, guildID, s.defaults)
	if err != nil {
		return err
	}

	held, err := s.gateway.MemberRoles(ctx, guildID, userID)
	if err != nil {
		return fmt.Errorf("查询成员身份组失败: %w", err)
	}

	curve := leveling.Curve{Base: settings.Base, Modifier: settings.Modifier}
	s.Sync(ctx, settings, userID, curve.Level(member.XP), held)
	return nil
}

// AddOrUpdate 新增或更新奖励，同一身份组只更新等级
func (s *RewardService) AddOrUpdate(ctx context.Context, guildID, roleID uint64, level int) (*models.Reward, error) {
	if level < 1 {
		return nil, ErrInvalidLevel
	}
	// 依赖行必须挂在已存在的配置行下
	if _, err := s.settings.EnsureDefault(ctx, guildID, s.defaults); err != nil {
		return nil, err
	}
	return s.rewards.Save(ctx, &models.Reward{GuildID: guildID, RoleID: roleID, Level: level})
}

// Remove 删除奖励，目标不存在时也视为成功
func (s *RewardService) Remove(ctx context.Context, guildID, roleID uint64) error {
	return s.rewards.Delete(ctx, guildID, roleID)
}

// List 返回 Guild 的奖励表，按等级升序
func (s *RewardService) List(ctx context.Context, guildID uint64) ([]models.Reward, error) {
	return s.rewards.List(ctx, guildID)
}

func (s *RewardService) reportFailure(ctx context.Context, settings *models.GuildSettings, userID uint64, roleIDs []uint64, cause error) {
	reason := "未知错误"
	switch {
	case errors.Is(cause, gateway.ErrPermissionDenied):
		reason = "权限不足"
	case errors.Is(cause, context.DeadlineExceeded):
		reason = "调用超时"
	}
	s.logger.WithContext(ctx).Warn("身份组发放失败",
		zap.Uint64("guild_id", settings.GuildID),
		zap.Uint64("user_id", userID),
		zap.String("reason", reason),
		zap.Error(cause))

	s.post(ctx, settings, notify.Event{
		Type:    notify.TypeRewardFail,
		GuildID: settings.GuildID,
		UserID:  userID,
		RoleIDs: roleIDs,
		Message: fmt.Sprintf("无法为成员 %d 发放奖励身份组: %s", userID, reason),
	})
}

// post 按配置路由通知：审计频道为 0 时静默丢弃
func (s *RewardService) post(ctx context.Context, settings *models.GuildSettings, event notify.Event) {
	if settings.LogChannelID == 0 {
		return
	}
	event.ChannelID = settings.LogChannelID
	event.Timestamp = time.Now().UTC()
	if err := s.notifier.Post(ctx, event); err != nil {
		s.logger.WithContext(ctx).Warn("通知投递失败", zap.Uint64("guild_id", settings.GuildID), zap.Error(err))
	}
}
