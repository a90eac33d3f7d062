package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Katzuo/LevelEngine/internal/models"
)

// IgnoreRepository 排除名单仓储（频道 + 身份组）
// 纯成员集合：行存在即被排除
type IgnoreRepository struct {
	db *gorm.DB
}

func NewIgnoreRepository(db *gorm.DB) *IgnoreRepository {
	return &IgnoreRepository{db: db}
}

// AddChannel 将频道加入排除名单，重复加入是空操作
func (r *IgnoreRepository) AddChannel(ctx context.Context, guildID, channelID uint64) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guild_id"}, {Name: "channel_id"}},
		DoNothing: true,
	}).Create(&models.IgnoredChannel{GuildID: guildID, ChannelID: channelID}).Error
	return wrap("ignore.add_channel", err)
}

// RemoveChannel 将频道移出排除名单，目标不存在时不报错
func (r *IgnoreRepository) RemoveChannel(ctx context.Context, guildID, channelID uint64) error {
	err := r.db.WithContext(ctx).
		Where("guild_id = ? AND channel_id = ?", guildID, channelID).
		Delete(&models.IgnoredChannel{}).Error
	return wrap("ignore.remove_channel", err)
}

// ListChannels 返回 Guild 的全部排除频道 ID
func (r *IgnoreRepository) ListChannels(ctx context.Context, guildID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&models.IgnoredChannel{}).
		Where("guild_id = ?", guildID).
		Pluck("channel_id", &ids).Error
	if err != nil {
		return nil, wrap("ignore.list_channels", err)
	}
	return ids, nil
}

// IsChannelIgnored 检查频道是否被排除
func (r *IgnoreRepository) IsChannelIgnored(ctx context.Context, guildID, channelID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.IgnoredChannel{}).
		Where("guild_id = ? AND channel_id = ?", guildID, channelID).
		Count(&count).Error
	if err != nil {
		return false, wrap("ignore.is_channel_ignored", err)
	}
	return count > 0, nil
}

// AddRole 将身份组加入排除名单，重复加入是空操作
func (r *IgnoreRepository) AddRole(ctx context.Context, guildID, roleID uint64) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guild_id"}, {Name: "role_id"}},
		DoNothing: true,
	}).Create(&models.IgnoredRole{GuildID: guildID, RoleID: roleID}).Error
	return wrap("ignore.add_role", err)
}

// RemoveRole 将身份组移出排除名单，目标不存在时不报错
func (r *IgnoreRepository) RemoveRole(ctx context.Context, guildID, roleID uint64) error {
	err := r.db.WithContext(ctx).
		Where("guild_id = ? AND role_id = ?", guildID, roleID).
		Delete(&models.IgnoredRole{}).Error
	return wrap("ignore.remove_role", err)
}

// ListRoles 返回 Guild 的全部排除身份组 ID
func (r *IgnoreRepository) ListRoles(ctx context.Context, guildID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&models.IgnoredRole{}).
		Where("guild_id = ?", guildID).
		Pluck("role_id", &ids).Error
	if err != nil {
		return nil, wrap("ignore.list_roles", err)
	}
	return ids, nil
}

// AnyRoleIgnored 检查给定身份组中是否有任意一个被排除
func (r *IgnoreRepository) AnyRoleIgnored(ctx context.Context, guildID uint64, roleIDs []uint64) (bool, error) {
	if len(roleIDs) == 0 {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.IgnoredRole{}).
		Where("guild_id = ? AND role_id IN ?", guildID, roleIDs).
		Count(&count).Error
	if err != nil {
		return false, wrap("ignore.any_role_ignored", err)
	}
	return count > 0, nil
}
