package kafkabroker

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

const (
	defaultWriteTimeout     = 2 * time.Second
	defaultBreakerTimeout   = 30 * time.Second
	defaultFailureThreshold = 5
)

type ProducerConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
	// FailureThreshold consecutive failures open the breaker for BreakerTimeout.
	FailureThreshold uint32
	BreakerTimeout   time.Duration
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	writer  messageWriter
	topic   string
	breaker *gobreaker.CircuitBreaker[struct{}]
}

func NewProducer(cfg ProducerConfig) *Producer {
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: cfg.WriteTimeout,
	}
	return newProducer(w, cfg)
}

func newProducer(w messageWriter, cfg ProducerConfig) *Producer {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = defaultFailureThreshold
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = defaultBreakerTimeout
	}
	threshold := cfg.FailureThreshold

	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:    "kafka-" + cfg.Topic,
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(log.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Kafka circuit breaker state changed")
		},
	})

	return &Producer{
		writer:  w,
		topic:   cfg.Topic,
		breaker: breaker,
	}
}

func (p *Producer) SendMessage(ctx context.Context, key, value []byte) error {
	_, err := p.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, p.writer.WriteMessages(ctx, kafka.Message{
			Key:   key,
			Value: value,
			Time:  time.Now(),
		})
	})
	if err != nil {
		log.Errorf("Failed to send message to %s: %v", p.topic, err)
		return err
	}
	log.Debugf("Message sent to %s: key=%s", p.topic, string(key))
	return nil
}

func (p *Producer) Close() error {
	log.Info("Closing Kafka producer...")
	return p.writer.Close()
}
