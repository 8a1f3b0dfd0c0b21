package services

import (
	"fmt"
)

// BrokerMessage 定义了在 Broker 中传输的消息结构
type BrokerMessage struct {
	Topic string
	Key   string // match_id
	Value []byte // JSON 消息体
}

// MessageBroker 定义了事件外发队列的抽象接口。生产实现走 AMQP，
// 未配置 AMQP_URL 时和测试中使用内存实现。
type MessageBroker interface {
	// Produce 发送消息到指定的 Topic
	Produce(msg BrokerMessage) error
	// Consume 订阅指定的 Topic，返回一个消息通道
	Consume(topic string) (<-chan BrokerMessage, error)
	// Close 关闭 Broker 连接
	Close() error
}

// EventRoutingKey 构造比赛事件的路由键, 形如 match.<id>.<kind>
func EventRoutingKey(matchID, eventKind string) string {
	return fmt.Sprintf("match.%s.%s", matchID, eventKind)
}
