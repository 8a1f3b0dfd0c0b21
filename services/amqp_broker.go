package services

import (
	"fmt"
	"strings"

	"github.com/streadway/amqp"

	"matchday-service/logger"
)

// AMQPBroker 是 MessageBroker 接口的 AMQP 实现。比赛事件发布到
// 一个 topic exchange，下游 (统计、通知) 按路由键订阅。
type AMQPBroker struct {
	url      string
	exchange string
	conn     *amqp.Connection
	channel  *amqp.Channel
}

// NewAMQPBroker 建立 AMQP 连接并声明 exchange
func NewAMQPBroker(url, exchange string) (*AMQPBroker, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-delete
		false,    // internal
		false,    // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	logger.Printf("[AMQP] Connected, exchange %q declared", exchange)

	return &AMQPBroker{
		url:      url,
		exchange: exchange,
		conn:     conn,
		channel:  channel,
	}, nil
}

// Produce 实现 MessageBroker 接口，Topic 作为路由键发布
func (b *AMQPBroker) Produce(msg BrokerMessage) error {
	return b.channel.Publish(
		b.exchange,
		msg.Topic, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   msg.Key,
			Body:        msg.Value,
		},
	)
}

// Consume 实现 MessageBroker 接口: 声明匿名队列并按路由键绑定
func (b *AMQPBroker) Consume(topic string) (<-chan BrokerMessage, error) {
	queue, err := b.channel.QueueDeclare(
		"",    // 由服务器命名
		false, // durable
		true,  // auto-delete
		true,  // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	// 内部约定的 "match.*" 前缀通配换成 AMQP 的多段通配 #
	bindingKey := topic
	if strings.HasSuffix(bindingKey, ".*") {
		bindingKey = strings.TrimSuffix(bindingKey, ".*") + ".#"
	}
	if bindingKey == "" {
		bindingKey = "#"
	}

	if err := b.channel.QueueBind(queue.Name, bindingKey, b.exchange, false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	deliveries, err := b.channel.Consume(queue.Name, "", true, true, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to consume: %w", err)
	}

	out := make(chan BrokerMessage, 256)
	go func() {
		defer close(out)
		for d := range deliveries {
			out <- BrokerMessage{
				Topic: d.RoutingKey,
				Key:   d.MessageId,
				Value: d.Body,
			}
		}
	}()

	return out, nil
}

// Close 实现 MessageBroker 接口
func (b *AMQPBroker) Close() error {
	if b.channel != nil {
		b.channel.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
