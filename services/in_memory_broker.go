package services

import (
	"strings"
	"sync"

	"matchday-service/logger"
)

// InMemoryBroker 是 MessageBroker 接口的内存实现。没有 AMQP 时
// 进程内直接分发，topic 支持 "match.*" 形式的前缀通配。
type InMemoryBroker struct {
	consumers map[string][]chan BrokerMessage
	mu        sync.RWMutex
}

// NewInMemoryBroker 创建 InMemoryBroker 实例
func NewInMemoryBroker() *InMemoryBroker {
	return &InMemoryBroker{
		consumers: make(map[string][]chan BrokerMessage),
	}
}

// Produce 实现 MessageBroker 接口
func (b *InMemoryBroker) Produce(msg BrokerMessage) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for pattern, chans := range b.consumers {
		if !topicMatches(pattern, msg.Topic) {
			continue
		}
		for _, ch := range chans {
			// 通道满了则丢弃，慢消费者不准拖住比赛命令
			select {
			case ch <- msg:
				delivered++
			default:
			}
		}
	}

	if delivered == 0 {
		logger.Printf("[InMemoryBroker] No consumers for topic %s, message dropped", msg.Topic)
	}
	return nil
}

// Consume 实现 MessageBroker 接口
func (b *InMemoryBroker) Consume(topic string) (<-chan BrokerMessage, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan BrokerMessage, 256)
	b.consumers[topic] = append(b.consumers[topic], ch)

	logger.Printf("[InMemoryBroker] Consumer subscribed to %s. Total for topic: %d", topic, len(b.consumers[topic]))
	return ch, nil
}

// Close 实现 MessageBroker 接口
func (b *InMemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, chans := range b.consumers {
		for _, ch := range chans {
			close(ch)
		}
	}
	b.consumers = make(map[string][]chan BrokerMessage)
	return nil
}

// topicMatches 前缀通配匹配: "match.*" 命中 "match.m1.goal"
func topicMatches(pattern, topic string) bool {
	if pattern == topic || pattern == "#" {
		return true
	}
	if strings.HasSuffix(pattern, ".*") {
		return strings.HasPrefix(topic, strings.TrimSuffix(pattern, "*"))
	}
	return false
}
