package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"
)

// KafkaNotifier 将通知写入 Kafka，由网关进程消费后投递到聊天平台
type KafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaNotifier(brokers []string, topic string) (*KafkaNotifier, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("启动 Sarama 生产者失败: %w", err)
	}

	return &KafkaNotifier{
		producer: producer,
		topic:    topic,
	}, nil
}

// Post 发送一条通知，按 Guild 分区保证同一 Guild 的通知有序
func (k *KafkaNotifier) Post(_ context.Context, event Event) error {
	bytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("序列化通知失败: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(event.GuildID, 10)),
		Value: sarama.ByteEncoder(bytes),
	}

	if _, _, err := k.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("发送通知到 kafka 失败: %w", err)
	}
	return nil
}

func (k *KafkaNotifier) Close() error {
	return k.producer.Close()
}
