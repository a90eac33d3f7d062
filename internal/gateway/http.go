package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPGateway 通过 HTTP 调用网关进程的 RoleGateway 实现
type HTTPGateway struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

func NewHTTPGateway(baseURL string, timeout time.Duration) *HTTPGateway {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

type addRolesRequest struct {
	RoleIDs []uint64 `json:"role_ids"`
}

type rolesResponse struct {
	RoleIDs []uint64 `json:"role_ids"`
}

// AddRoles 为成员追加身份组
func (g *HTTPGateway) AddRoles(ctx context.Context, guildID, userID uint64, roleIDs []uint64) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	body, err := json.Marshal(addRolesRequest{RoleIDs: roleIDs})
	if err != nil {
		return fmt.Errorf("序列化请求失败: %w", err)
	}

	url := fmt.Sprintf("%s/guilds/%d/members/%d/roles", g.baseURL, guildID, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusForbidden:
		return ErrPermissionDenied
	case http.StatusNotFound:
		return ErrMemberNotFound
	default:
		return fmt.Errorf("网关返回异常状态码 %d", resp.StatusCode)
	}
}

// MemberRoles 查询成员当前持有的身份组
func (g *HTTPGateway) MemberRoles(ctx context.Context, guildID, userID uint64) ([]uint64, error) {
	url := fmt.Sprintf("%s/guilds/%d/members/%d/roles", g.baseURL, guildID, userID)
	return g.fetchRoles(ctx, url)
}

// GuildRoles 查询 Guild 现存的全部身份组
func (g *HTTPGateway) GuildRoles(ctx context.Context, guildID uint64) ([]uint64, error) {
	url := fmt.Sprintf("%s/guilds/%d/roles", g.baseURL, guildID)
	return g.fetchRoles(ctx, url)
}

func (g *HTTPGateway) fetchRoles(ctx context.Context, url string) ([]uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return nil, ErrPermissionDenied
	case http.StatusNotFound:
		return nil, ErrMemberNotFound
	default:
		return nil, fmt.Errorf("网关返回异常状态码 %d", resp.StatusCode)
	}

	var parsed rolesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("解析网关响应失败: %w", err)
	}
	return parsed.RoleIDs, nil
}
