package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Katzuo/LevelEngine/internal/models"
)

const settingsCacheTTL = 10 * time.Minute

// SettingsRepository Guild 配置仓储
// 配置读多写少，走 Redis 读穿缓存，写入时删除缓存键
// 缓存不是事实来源：未命中一律回源数据库
type SettingsRepository struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewSettingsRepository(db *gorm.DB, rdb *redis.Client) *SettingsRepository {
	return &SettingsRepository{db: db, rdb: rdb}
}

func settingsCacheKey(guildID uint64) string {
	return fmt.Sprintf("level:settings:%d", guildID)
}

// Get 获取 Guild 配置，未命中缓存时回源数据库并写回缓存
func (r *SettingsRepository) Get(ctx context.Context, guildID uint64) (*models.GuildSettings, error) {
	if r.rdb != nil {
		data, err := r.rdb.Get(ctx, settingsCacheKey(guildID)).Bytes()
		if err == nil {
			var cached models.GuildSettings
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
		// 缓存故障不影响读路径，继续回源
	}

	var settings models.GuildSettings
	if err := r.db.WithContext(ctx).First(&settings, "guild_id = ?", guildID).Error; err != nil {
		return nil, wrap("settings.get", err)
	}

	r.fillCache(ctx, &settings)
	return &settings, nil
}

// Save 保存配置（存在则更新全部可变字段），并使缓存失效
func (r *SettingsRepository) Save(ctx context.Context, settings *models.GuildSettings) (*models.GuildSettings, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "guild_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"cooldown_minutes", "base", "modifier", "reward_amount",
			"user_channel_id", "log_channel_id", "updated_at",
		}),
	}).Create(settings).Error
	if err != nil {
		return nil, wrap("settings.save", err)
	}

	if r.rdb != nil {
		// 写后删除缓存，下次读取回源拿到新值
		_ = r.rdb.Del(ctx, settingsCacheKey(settings.GuildID)).Err()
	}
	return r.Get(ctx, settings.GuildID)
}

// EnsureDefault 获取配置，不存在时以默认值惰性创建
// Guild 第一次出现活动时由事件路径调用
func (r *SettingsRepository) EnsureDefault(ctx context.Context, guildID uint64, defaults models.GuildSettings) (*models.GuildSettings, error) {
	settings, err := r.Get(ctx, guildID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	defaults.GuildID = guildID
	return r.Save(ctx, &defaults)
}

func (r *SettingsRepository) fillCache(ctx context.Context, settings *models.GuildSettings) {
	if r.rdb == nil {
		return
	}
	if data, err := json.Marshal(settings); err == nil {
		_ = r.rdb.Set(ctx, settingsCacheKey(settings.GuildID), data, settingsCacheTTL).Err()
	}
}
