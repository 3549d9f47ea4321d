// Observer implementation for rxlite
// 带终止门控与一次性释放的观察者实现
package rxlite

import (
	"sync"

	"go.uber.org/atomic"
)

// observer Observer的核心实现
//
// unsubscribed flips false->true exactly once. The teardown slot is written
// once by Subscribe after the producer returns and runs at most once.
type observer[T any] struct {
	handlers     Handlers[T]
	unsubscribed atomic.Bool

	mu       sync.Mutex
	teardown Teardown
	tornDown bool
}

func newObserver[T any](handlers Handlers[T]) *observer[T] {
	return &observer[T]{
		handlers: handlers,
	}
}

// Next 发射下一个值，终止后无效
func (o *observer[T]) Next(value T) {
	if o.handlers.Next != nil && !o.unsubscribed.Load() {
		o.handlers.Next(value)
	}
}

// Error 发射终止错误，随后取消订阅
func (o *observer[T]) Error(err error) {
	if !o.unsubscribed.CompareAndSwap(false, true) {
		return
	}
	if o.handlers.Error != nil {
		o.handlers.Error(err)
	}
	o.runTeardown()
}

// Complete 发射完成信号，随后取消订阅
func (o *observer[T]) Complete() {
	if !o.unsubscribed.CompareAndSwap(false, true) {
		return
	}
	if o.handlers.Complete != nil {
		o.handlers.Complete()
	}
	o.runTeardown()
}

// Unsubscribe 取消订阅，可重复调用
func (o *observer[T]) Unsubscribe() {
	o.unsubscribed.Store(true)
	o.runTeardown()
}

// IsUnsubscribed 检查是否已终止
func (o *observer[T]) IsUnsubscribed() bool {
	return o.unsubscribed.Load()
}

// attach stores the producer's teardown. If the observer terminated while the
// producer was still running, the teardown runs now.
func (o *observer[T]) attach(teardown Teardown) {
	o.mu.Lock()
	o.teardown = teardown
	o.mu.Unlock()

	if o.unsubscribed.Load() {
		o.runTeardown()
	}
}

func (o *observer[T]) runTeardown() {
	o.mu.Lock()
	if o.teardown == nil || o.tornDown {
		o.mu.Unlock()
		return
	}
	o.tornDown = true
	teardown := o.teardown
	o.mu.Unlock()

	teardown()
}

// subscription 订阅句柄，持有唯一的observer引用
type subscription[T any] struct {
	observer *observer[T]
}

// Unsubscribe 取消订阅
func (s *subscription[T]) Unsubscribe() {
	s.observer.Unsubscribe()
}
