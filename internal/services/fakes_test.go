package services

import (
	"context"
	"sort"
	"sync"

	"github.com/Katzuo/LevelEngine/internal/models"
	"github.com/Katzuo/LevelEngine/internal/notify"
	"github.com/Katzuo/LevelEngine/internal/repositories"
)

// 服务层测试用的内存仓储，行为对齐 repositories 包：
// 未命中返回 repositories.ErrNotFound，写入后返回落库快照

type fakeSettingsStore struct {
	mu   sync.Mutex
	data map[uint64]models.GuildSettings
}

func newFakeSettingsStore() *fakeSettingsStore {
	return &fakeSettingsStore{data: make(map[uint64]models.GuildSettings)}
}

func (f *fakeSettingsStore) Get(_ context.Context, guildID uint64) (*models.GuildSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.data[guildID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &s, nil
}

func (f *fakeSettingsStore) Save(_ context.Context, settings *models.GuildSettings) (*models.GuildSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[settings.GuildID] = *settings
	s := f.data[settings.GuildID]
	return &s, nil
}

func (f *fakeSettingsStore) EnsureDefault(_ context.Context, guildID uint64, defaults models.GuildSettings) (*models.GuildSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.data[guildID]; ok {
		return &s, nil
	}
	defaults.GuildID = guildID
	f.data[guildID] = defaults
	s := f.data[guildID]
	return &s, nil
}

type memberKey struct {
	guildID uint64
	userID  uint64
}

type fakeMemberStore struct {
	mu   sync.Mutex
	data map[memberKey]models.Member
}

func newFakeMemberStore() *fakeMemberStore {
	return &fakeMemberStore{data: make(map[memberKey]models.Member)}
}

func (f *fakeMemberStore) Get(_ context.Context, guildID, userID uint64) (*models.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.data[memberKey{guildID, userID}]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &m, nil
}

func (f *fakeMemberStore) Save(_ context.Context, member *models.Member) (*models.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[memberKey{member.GuildID, member.UserID}] = *member
	m := f.data[memberKey{member.GuildID, member.UserID}]
	return &m, nil
}

func (f *fakeMemberStore) ListRanked(_ context.Context, guildID uint64) ([]models.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Member
	for key, m := range f.data {
		if key.guildID == guildID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].XP != out[j].XP {
			return out[i].XP > out[j].XP
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

type rewardKey struct {
	guildID uint64
	roleID  uint64
}

type fakeRewardStore struct {
	mu   sync.Mutex
	data map[rewardKey]models.Reward
}

func newFakeRewardStore() *fakeRewardStore {
	return &fakeRewardStore{data: make(map[rewardKey]models.Reward)}
}

func (f *fakeRewardStore) Get(_ context.Context, guildID, roleID uint64) (*models.Reward, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.data[rewardKey{guildID, roleID}]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &r, nil
}

func (f *fakeRewardStore) List(_ context.Context, guildID uint64) ([]models.Reward, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Reward
	for key, r := range f.data {
		if key.guildID == guildID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].RoleID < out[j].RoleID
	})
	return out, nil
}

func (f *fakeRewardStore) Save(_ context.Context, reward *models.Reward) (*models.Reward, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[rewardKey{reward.GuildID, reward.RoleID}] = *reward
	r := f.data[rewardKey{reward.GuildID, reward.RoleID}]
	return &r, nil
}

func (f *fakeRewardStore) Delete(_ context.Context, guildID, roleID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, rewardKey{guildID, roleID})
	return nil
}

type fakeIgnoreStore struct {
	mu       sync.Mutex
	channels map[memberKey]bool // key 复用 (guildID, id)
	roles    map[memberKey]bool
}

func newFakeIgnoreStore() *fakeIgnoreStore {
	return &fakeIgnoreStore{
		channels: make(map[memberKey]bool),
		roles:    make(map[memberKey]bool),
	}
}

func (f *fakeIgnoreStore) AddChannel(_ context.Context, guildID, channelID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.channels[memberKey{guildID, channelID}] = true
	return nil
}

func (f *fakeIgnoreStore) RemoveChannel(_ context.Context, guildID, channelID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.channels, memberKey{guildID, channelID})
	return nil
}

func (f *fakeIgnoreStore) ListChannels(_ context.Context, guildID uint64) ([]uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []uint64
	for key := range f.channels {
		if key.guildID == guildID {
			out = append(out, key.userID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (f *fakeIgnoreStore) IsChannelIgnored(_ context.Context, guildID, channelID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.channels[memberKey{guildID, channelID}], nil
}

func (f *fakeIgnoreStore) AddRole(_ context.Context, guildID, roleID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roles[memberKey{guildID, roleID}] = true
	return nil
}

func (f *fakeIgnoreStore) RemoveRole(_ context.Context, guildID, roleID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.roles, memberKey{guildID, roleID})
	return nil
}

func (f *fakeIgnoreStore) ListRoles(_ context.Context, guildID uint64) ([]uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []uint64
	for key := range f.roles {
		if key.guildID == guildID {
			out = append(out, key.userID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (f *fakeIgnoreStore) AnyRoleIgnored(_ context.Context, guildID uint64, roleIDs []uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range roleIDs {
		if f.roles[memberKey{guildID, id}] {
			return true, nil
		}
	}
	return false, nil
}

// fakeGateway 可编程的外部身份组网关
type fakeGateway struct {
	mu         sync.Mutex
	guildRoles map[uint64][]uint64    // guildID -> 现存身份组
	memberHeld map[memberKey][]uint64 // (guildID, userID) -> 持有身份组
	addCalls   []addCall              // 记录每次 AddRoles
	addErr     error                  // AddRoles 固定返回的错误
	guildErr   error                  // GuildRoles 固定返回的错误
	memberErr  error                  // MemberRoles 固定返回的错误
}

type addCall struct {
	guildID uint64
	userID  uint64
	roleIDs []uint64
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		guildRoles: make(map[uint64][]uint64),
		memberHeld: make(map[memberKey][]uint64),
	}
}

func (f *fakeGateway) AddRoles(_ context.Context, guildID, userID uint64, roleIDs []uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	f.addCalls = append(f.addCalls, addCall{guildID, userID, append([]uint64(nil), roleIDs...)})
	key := memberKey{guildID, userID}
	f.memberHeld[key] = append(f.memberHeld[key], roleIDs...)
	return nil
}

func (f *fakeGateway) MemberRoles(_ context.Context, guildID, userID uint64) ([]uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.memberErr != nil {
		return nil, f.memberErr
	}
	return append([]uint64(nil), f.memberHeld[memberKey{guildID, userID}]...), nil
}

func (f *fakeGateway) GuildRoles(_ context.Context, guildID uint64) ([]uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.guildErr != nil {
		return nil, f.guildErr
	}
	return append([]uint64(nil), f.guildRoles[guildID]...), nil
}

// captureNotifier 记录经过路由后真正要投递的事件
type captureNotifier struct {
	mu     sync.Mutex
	events []notify.Event
	err    error
}

func (c *captureNotifier) Post(_ context.Context, event notify.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.events = append(c.events, event)
	return nil
}

func (c *captureNotifier) all() []notify.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]notify.Event(nil), c.events...)
}

func (c *captureNotifier) ofType(eventType string) []notify.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []notify.Event
	for _, e := range c.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}
