package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// QueueExchange is the fanout exchange queue events are published to.
const QueueExchange = "canteen_queue_fanout"

// redialInterval bounds how often a lost broker connection is retried.
const redialInterval = 5 * time.Second

// AMQPPublisher publishes queue events as persistent JSON messages. When the
// broker closes the channel the next Publish redials, at most once per
// redialInterval; events published while disconnected are dropped.
type AMQPPublisher struct {
	url     string
	connect func(url string) (*amqp.Connection, *amqp.Channel, error)
	now     func() time.Time

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	closed   chan *amqp.Error
	lastDial time.Time
}

// DialAMQP connects to the broker and declares the exchange.
func DialAMQP(url string) (*AMQPPublisher, error) {
	p := &AMQPPublisher{url: url, connect: connectAMQP, now: time.Now}
	if err := p.redial(); err != nil {
		return nil, err
	}
	return p, nil
}

func connectAMQP(url string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(QueueExchange, "fanout", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("declare exchange: %w", err)
	}
	return conn, ch, nil
}

// redial replaces the connection. Callers hold p.mu, except DialAMQP.
func (p *AMQPPublisher) redial() error {
	p.lastDial = p.now()
	conn, ch, err := p.connect(p.url)
	if err != nil {
		return err
	}
	p.release()
	p.conn, p.ch = conn, ch
	p.closed = ch.NotifyClose(make(chan *amqp.Error, 1))
	return nil
}

// usable reports whether the current channel can publish, redialing a lost
// one when the retry interval has passed.
func (p *AMQPPublisher) usable() bool {
	if p.ch != nil {
		select {
		case err := <-p.closed:
			logf("amqp channel closed: %v", err)
			p.release()
		default:
			return true
		}
	}
	if p.now().Sub(p.lastDial) < redialInterval {
		return false
	}
	if err := p.redial(); err != nil {
		logf("amqp redial: %v", err)
		return false
	}
	return true
}

func (p *AMQPPublisher) release() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn, p.ch, p.closed = nil, nil, nil
}

// Publish implements Publisher.
func (p *AMQPPublisher) Publish(ctx context.Context, event Event) {
	body, err := json.Marshal(event)
	if err != nil {
		logf("marshal event: %v", err)
		return
	}
	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.usable() {
		logf("amqp unavailable, dropping %s for entry %d", event.Type, event.EntryID)
		return
	}
	err = p.ch.PublishWithContext(ctx, QueueExchange, event.Type, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		ContentType:  "application/json",
		Type:         event.Type,
		Body:         body,
	})
	if err != nil {
		logf("publish %s for entry %d: %v", event.Type, event.EntryID, err)
	}
}

// Close closes the channel and the connection.
func (p *AMQPPublisher) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.release()
}
