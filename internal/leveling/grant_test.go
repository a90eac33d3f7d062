package leveling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Katzuo/LevelEngine/internal/models"
)

func testSettings() *models.GuildSettings {
	return &models.GuildSettings{
		GuildID:         1,
		CooldownMinutes: 1,
		Base:            50,
		Modifier:        5,
		RewardAmount:    5,
	}
}

func TestTryGrant(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	settings := testSettings()

	member := NewMember(1, 42, now.Add(-time.Hour))

	updated, granted := TryGrant(member, settings, now)
	assert.True(t, granted)
	assert.Equal(t, 5, updated.XP)
	assert.Equal(t, now.Add(time.Minute), updated.TimeoutAt)

	// 冷却期内的第二次调用不得发放
	again, granted := TryGrant(updated, settings, now.Add(30*time.Second))
	assert.False(t, granted)
	assert.Equal(t, updated, again)

	// 冷却到期的瞬间视为可发放
	after, granted := TryGrant(updated, settings, updated.TimeoutAt)
	assert.True(t, granted)
	assert.Equal(t, 10, after.XP)
}

func TestTryGrant_IgnoredMember(t *testing.T) {
	now := time.Now()
	member := NewMember(1, 42, now.Add(-time.Hour))
	member.IgnoreXPGain = true

	_, granted := TryGrant(member, testSettings(), now)
	assert.False(t, granted)
}

func TestNewMember(t *testing.T) {
	now := time.Now()
	member := NewMember(7, 99, now)

	assert.Equal(t, uint64(7), member.GuildID)
	assert.Equal(t, uint64(99), member.UserID)
	assert.Zero(t, member.XP)
	assert.Equal(t, now, member.TimeoutAt)

	// 首条消息只登记，下一条才真正发放
	_, granted := TryGrant(member, testSettings(), now)
	assert.True(t, granted)
}
