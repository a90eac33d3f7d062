package consumer

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Katzuo/LevelEngine/internal/services"
	logger "github.com/Katzuo/LevelEngine/middleware/log"
)

// MessageHandler 消费端只依赖这个接口，测试中可替换
type MessageHandler interface {
	HandleMessage(ctx context.Context, event services.MessageEvent) error
}

// EventConsumer 消费网关投递的参与事件并送入等级引擎
// 投递语义是至少一次：处理失败只记录日志并标记已消费，避免坏消息死循环
type EventConsumer struct {
	handler MessageHandler
	logger  *logger.Logger
}

func NewEventConsumer(handler MessageHandler, log *logger.Logger) *EventConsumer {
	return &EventConsumer{handler: handler, logger: log}
}

// Setup is run at the beginning of a new session, before ConsumeClaim
func (c *EventConsumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited
func (c *EventConsumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim must start a consumer loop of ConsumerGroupClaim's Messages().
func (c *EventConsumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		c.consume(session.Context(), message.Value)
		session.MarkMessage(message, "")
	}
	return nil
}

func (c *EventConsumer) consume(ctx context.Context, payload []byte) {
	var event services.MessageEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		c.logger.Warn("反序列化参与事件失败", zap.Error(err))
		return
	}
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}

	// 事件 ID 兼作 trace ID，整条处理链路的日志可以按它串起来
	ctx = logger.WithTraceID(ctx, event.EventID)

	if err := c.handler.HandleMessage(ctx, event); err != nil {
		// 失败只对运维可见，绝不反馈给消息作者
		c.logger.WithContext(ctx).Error("处理参与事件失败",
			zap.String("event_id", event.EventID),
			zap.Uint64("guild_id", event.GuildID),
			zap.Uint64("user_id", event.UserID),
			zap.Error(err))
	}
}

// Start 启动消费者组并持续消费直到 ctx 取消
func Start(ctx context.Context, brokers []string, groupID, topic string, consumer *EventConsumer, log *logger.Logger) error {
	config := sarama.NewConfig()
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest

	client, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return err
	}

	go func() {
		defer client.Close()
		for {
			if err := client.Consume(ctx, []string{topic}, consumer); err != nil {
				log.Error("消费者错误", zap.Error(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
	return nil
}
