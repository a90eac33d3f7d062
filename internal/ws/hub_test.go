package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Katzuo/LevelEngine/internal/notify"
)

func setupHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(zap.NewNop())
	go hub.Run()

	r := gin.New()
	r.GET("/ws/audit", func(c *gin.Context) {
		ServeWs(hub, c)
	})
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return hub, server
}

func dialAudit(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/audit"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_BroadcastsPostedEvents(t *testing.T) {
	hub, server := setupHub(t)
	conn := dialAudit(t, server)

	// 注册异步完成，稍等 Hub 处理
	time.Sleep(50 * time.Millisecond)

	posted := notify.Event{
		Type:      notify.TypeLevelUp,
		GuildID:   1,
		ChannelID: 900,
		UserID:    42,
		Level:     3,
		Message:   "成员 42 升到了 3 级",
	}
	require.NoError(t, hub.Post(context.Background(), posted))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var received notify.Event
	require.NoError(t, json.Unmarshal(data, &received))
	assert.Equal(t, posted.Type, received.Type)
	assert.Equal(t, posted.UserID, received.UserID)
	assert.Equal(t, posted.Level, received.Level)
}

func TestHub_MultipleClientsReceiveSameEvent(t *testing.T) {
	hub, server := setupHub(t)
	first := dialAudit(t, server)
	second := dialAudit(t, server)

	time.Sleep(50 * time.Millisecond)

	require.NoError(t, hub.Post(context.Background(), notify.Event{
		Type:    notify.TypeRewardGrant,
		GuildID: 1,
		UserID:  42,
	}))

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Contains(t, string(data), notify.TypeRewardGrant)
	}
}

func TestHub_PostWithoutClientsDoesNotBlock(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	// 没有任何客户端时投递也立即返回
	for range 10 {
		assert.NoError(t, hub.Post(context.Background(), notify.Event{Type: notify.TypeLevelUp}))
	}
}
