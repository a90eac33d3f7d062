package gateway

import (
	"context"
	"errors"
)

var (
	// ErrPermissionDenied 网关没有权限执行身份组变更
	ErrPermissionDenied = errors.New("网关权限不足")
	// ErrMemberNotFound 目标成员在外部系统中不存在
	ErrMemberNotFound = errors.New("外部成员不存在")
)

// RoleGateway 外部身份组网关
// 实际的聊天平台连接由独立的网关进程持有，引擎通过 gRPC 或 HTTP 调用它
// 所有调用都应携带带超时的 context，超时与权限失败同等对待：
// 上报一次，不同步重试，等待成员下一次自然触发再收敛
type RoleGateway interface {
	// AddRoles 为成员追加身份组，追加已持有的身份组是空操作
	AddRoles(ctx context.Context, guildID, userID uint64, roleIDs []uint64) error

	// MemberRoles 返回成员当前持有的身份组 ID
	MemberRoles(ctx context.Context, guildID, userID uint64) ([]uint64, error)

	// GuildRoles 返回 Guild 当前存在的全部身份组 ID
	// 用于跳过指向已被删除身份组的奖励
	GuildRoles(ctx context.Context, guildID uint64) ([]uint64, error)
}
