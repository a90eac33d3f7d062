package gateway

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "github.com/Katzuo/LevelEngine/internal/gateway/proto"
)

// GRPCGateway 通过 gRPC 直连网关进程的 RoleGateway 实现
// 状态码映射与 HTTP 实现保持一致：PermissionDenied 与 NotFound
// 转成本包的哨兵错误，DeadlineExceeded 转成 context.DeadlineExceeded
type GRPCGateway struct {
	conn    *grpc.ClientConn
	client  pb.RoleGatewayClient
	timeout time.Duration
}

func NewGRPCGateway(address string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCGateway, error) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	}, opts...)
	conn, err := grpc.DialContext(ctx, address, opts...)
	if err != nil {
		return nil, fmt.Errorf("连接网关失败: %w", err)
	}

	return &GRPCGateway{
		conn:    conn,
		client:  pb.NewRoleGatewayClient(conn),
		timeout: timeout,
	}, nil
}

// Close 关闭客户端连接
func (g *GRPCGateway) Close() error {
	if g.conn != nil {
		return g.conn.Close()
	}
	return nil
}

// AddRoles 为成员追加身份组
func (g *GRPCGateway) AddRoles(ctx context.Context, guildID, userID uint64, roleIDs []uint64) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	_, err := g.client.AddRoles(ctx, &pb.AddRolesRequest{
		GuildId: guildID,
		UserId:  userID,
		RoleIds: roleIDs,
	})
	return mapStatusError(err)
}

// MemberRoles 查询成员当前持有的身份组
func (g *GRPCGateway) MemberRoles(ctx context.Context, guildID, userID uint64) ([]uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.MemberRoles(ctx, &pb.MemberRolesRequest{
		GuildId: guildID,
		UserId:  userID,
	})
	if err != nil {
		return nil, mapStatusError(err)
	}
	return resp.RoleIds, nil
}

// GuildRoles 查询 Guild 现存的全部身份组
func (g *GRPCGateway) GuildRoles(ctx context.Context, guildID uint64) ([]uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.GuildRoles(ctx, &pb.GuildRolesRequest{GuildId: guildID})
	if err != nil {
		return nil, mapStatusError(err)
	}
	return resp.RoleIds, nil
}

func mapStatusError(err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.PermissionDenied:
		return ErrPermissionDenied
	case codes.NotFound:
		return ErrMemberNotFound
	case codes.DeadlineExceeded:
		return context.DeadlineExceeded
	}
	return err
}
