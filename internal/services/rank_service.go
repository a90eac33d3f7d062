package services

import (
	"context"

	"github.com/Katzuo/LevelEngine/internal/models"
)

// RankedMember 排行榜中的一行，Rank 从 1 开始
type RankedMember struct {
	Rank   int           `json:"rank"`
	Member models.Member `json:"member"`
}

// RankService 排行榜查询，只读快照，不加额外锁
type RankService struct {
	members MemberStore
}

func NewRankService(members MemberStore) *RankService {
	return &RankService{members: members}
}

// Top 返回经验最高的前 count 名成员
func (s *RankService) Top(ctx context.Context, guildID uint64, count int) ([]RankedMember, int, error) {
	ranked, err := s.members.ListRanked(ctx, guildID)
	if err != nil {
		return nil, 0, err
	}
	if count > len(ranked) {
		count = len(ranked)
	}
	out := make([]RankedMember, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, RankedMember{Rank: i + 1, Member: ranked[i]})
	}
	return out, len(ranked), nil
}

// Rank 返回成员的名次（从 1 开始）与 Guild 总人数
func (s *RankService) Rank(ctx context.Context, guildID, userID uint64) (int, int, error) {
	ranked, err := s.members.ListRanked(ctx, guildID)
	if err != nil {
		return 0, 0, err
	}
	for i, member := range ranked {
		if member.UserID == userID {
			return i + 1, len(ranked), nil
		}
	}
	return 0, len(ranked), ErrMemberNotFound
}

// Window 返回以指定成员为中心的连续窗口，总大小 before+after+1
// 两端都做边界裁剪：成员靠近头部时窗口从第 1 名开始向后延伸，
// 靠近尾部时向前回退，尽可能保持请求的窗口大小
func (s *RankService) Window(ctx context.Context, guildID, userID uint64, before, after int) ([]RankedMember, int, error) {
	if before < 0 {
		before = 0
	}
	if after < 0 {
		after = 0
	}

	ranked, err := s.members.ListRanked(ctx, guildID)
	if err != nil {
		return nil, 0, err
	}

	index := -1
	for i, member := range ranked {
		if member.UserID == userID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, len(ranked), ErrMemberNotFound
	}

	size := before + after + 1
	start := index - before
	if start < 0 {
		start = 0
	}
	end := start + size
	if end > len(ranked) {
		end = len(ranked)
		start = end - size
		if start < 0 {
			start = 0
		}
	}

	out := make([]RankedMember, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, RankedMember{Rank: i + 1, Member: ranked[i]})
	}
	return out, len(ranked), nil
}
