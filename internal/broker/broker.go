package broker

import "context"

type Producer interface {
	SendMessage(ctx context.Context, key, value []byte) error
	Close() error
}

// NoopProducer is used when no brokers are configured.
type NoopProducer struct{}

func (NoopProducer) SendMessage(context.Context, []byte, []byte) error { return nil }

func (NoopProducer) Close() error { return nil }
