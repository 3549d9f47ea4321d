// Observable implementation for rxlite
// 惰性、单播的Observable核心实现
package rxlite

import (
	"github.com/rs/zerolog"
)

// ============================================================================
// Observable 核心实现
// ============================================================================

// Observable 可观察序列
//
// An Observable holds no subscriber state. Every Subscribe call runs the
// producer again from scratch, so subscriptions never share notifications.
type Observable[T any] struct {
	producer Producer[T]
	config   *Config
}

// New 创建新的Observable，生产者在订阅前不会被调用
func New[T any](producer Producer[T], options ...Option) *Observable[T] {
	return &Observable[T]{
		producer: producer,
		config:   newConfig(options),
	}
}

// Subscribe 订阅并运行生产者
//
// The producer runs synchronously on the calling goroutine. Its teardown is
// attached after it returns; if the producer already terminated the observer
// the teardown runs before Subscribe returns. A panic raised by the producer
// or by a handler propagates to the caller.
func (o *Observable[T]) Subscribe(handlers Handlers[T]) Subscription {
	obs := newObserver(handlers)

	o.logger().Trace().Msg("subscribed")
	teardown := o.producer(obs)
	obs.attach(teardown)

	return &subscription[T]{observer: obs}
}

func (o *Observable[T]) logger() *zerolog.Logger {
	return &o.config.Logger
}
