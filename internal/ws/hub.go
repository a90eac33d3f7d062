package ws

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/Katzuo/LevelEngine/internal/notify"
)

// Hub 维护运维端的实时审计流连接
// 所有等级/奖励通知会镜像广播给已连接的客户端，仅用于观察，不参与收敛逻辑
type Hub struct {
	// 已注册的客户端
	clients map[*Client]bool

	// 互斥锁，保护 map 的并发读写
	mu sync.RWMutex

	// 注册请求通道
	register chan *Client

	// 注销请求通道
	unregister chan *Client

	// 广播通道
	broadcast chan []byte

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		logger:     logger,
	}
}

// Run 处理注册、注销与广播，需在独立 goroutine 中运行
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// 发送缓冲已满的慢客户端直接丢弃本条消息
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Post 实现 notify.Notifier，将通知镜像到审计流
func (h *Hub) Post(_ context.Context, event notify.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn("审计流广播通道已满，丢弃通知",
			zap.Uint64("guild_id", event.GuildID),
			zap.String("type", event.Type))
	}
	return nil
}
