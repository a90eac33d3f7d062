package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Katzuo/LevelEngine/internal/models"
)

// RewardRepository 等级奖励仓储
type RewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{db: db}
}

// Get 按 (guild, role) 获取奖励
func (r *RewardRepository) Get(ctx context.Context, guildID, roleID uint64) (*models.Reward, error) {
	var reward models.Reward
	err := r.db.WithContext(ctx).
		First(&reward, "guild_id = ? AND role_id = ?", guildID, roleID).Error
	if err != nil {
		return nil, wrap("reward.get", err)
	}
	return &reward, nil
}

// List 返回 Guild 全部奖励，按等级升序
func (r *RewardRepository) List(ctx context.Context, guildID uint64) ([]models.Reward, error) {
	var rewards []models.Reward
	err := r.db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("level ASC, role_id ASC").
		Find(&rewards).Error
	if err != nil {
		return nil, wrap("reward.list", err)
	}
	return rewards, nil
}

// Save 写入奖励并回读；同一身份组重复保存只更新等级，不产生重复行
func (r *RewardRepository) Save(ctx context.Context, reward *models.Reward) (*models.Reward, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guild_id"}, {Name: "role_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"level", "updated_at"}),
	}).Create(reward).Error
	if err != nil {
		return nil, wrap("reward.save", err)
	}
	return r.Get(ctx, reward.GuildID, reward.RoleID)
}

// Delete 删除奖励，目标不存在时不报错
func (r *RewardRepository) Delete(ctx context.Context, guildID, roleID uint64) error {
	err := r.db.WithContext(ctx).
		Where("guild_id = ? AND role_id = ?", guildID, roleID).
		Delete(&models.Reward{}).Error
	return wrap("reward.delete", err)
}
