package services

import (
	"context"

	"github.com/Katzuo/LevelEngine/internal/models"
)

// 服务层只依赖窄接口，仓储实现由 main 注入
// 测试中可以用内存实现替换，参见各 *_test.go

type SettingsStore interface {
	Get(ctx context.Context, guildID uint64) (*models.GuildSettings, error)
	Save(ctx context.Context, settings *models.GuildSettings) (*models.GuildSettings, error)
	EnsureDefault(ctx context.Context, guildID uint64, defaults models.GuildSettings) (*models.GuildSettings, error)
}

type MemberStore interface {
	Get(ctx context.Context, guildID, userID uint64) (*models.Member, error)
	Save(ctx context.Context, member *models.Member) (*models.Member, error)
	ListRanked(ctx context.Context, guildID uint64) ([]models.Member, error)
}

type RewardStore interface {
	Get(ctx context.Context, guildID, roleID uint64) (*models.Reward, error)
	List(ctx context.Context, guildID uint64) ([]models.Reward, error)
	Save(ctx context.Context, reward *models.Reward) (*models.Reward, error)
	Delete(ctx context.Context, guildID, roleID uint64) error
}

type IgnoreStore interface {
	AddChannel(ctx context.Context, guildID, channelID uint64) error
	RemoveChannel(ctx context.Context, guildID, channelID uint64) error
	ListChannels(ctx context.Context, guildID uint64) ([]uint64, error)
	IsChannelIgnored(ctx context.Context, guildID, channelID uint64) (bool, error)
	AddRole(ctx context.Context, guildID, roleID uint64) error
	RemoveRole(ctx context.Context, guildID, roleID uint64) error
	ListRoles(ctx context.Context, guildID uint64) ([]uint64, error)
	AnyRoleIgnored(ctx context.Context, guildID uint64, roleIDs []uint64) (bool, error)
}
