package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Katzuo/LevelEngine/internal/models"
)

// MemberRepository 成员经验仓储
type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Get 按 (guild, user) 获取成员记录
func (r *MemberRepository) Get(ctx context.Context, guildID, userID uint64) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).
		First(&member, "guild_id = ? AND user_id = ?", guildID, userID).Error
	if err != nil {
		return nil, wrap("member.get", err)
	}
	return &member, nil
}

// Save 写入成员记录（存在则更新可变字段）并回读
// 回读保证返回的是驱动实际落库的值（时间戳会被数据库归一化）
func (r *MemberRepository) Save(ctx context.Context, member *models.Member) (*models.Member, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "guild_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"xp", "timeout_at", "ignore_xp_gain", "updated_at",
		}),
	}).Create(member).Error
	if err != nil {
		return nil, wrap("member.save", err)
	}
	return r.Get(ctx, member.GuildID, member.UserID)
}

// ListRanked 返回 Guild 全部成员，按经验降序，经验相同时按 user_id 升序保证确定性
func (r *MemberRepository) ListRanked(ctx context.Context, guildID uint64) ([]models.Member, error) {
	var members []models.Member
	err := r.db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("xp DESC, user_id ASC").
		Find(&members).Error
	if err != nil {
		return nil, wrap("member.list_ranked", err)
	}
	return members, nil
}
