// Factory functions for rxlite
// 工厂函数，所有发射均在Subscribe调用内同步完成
package rxlite

// ============================================================================
// 从数据源创建
// ============================================================================

// From 从切片创建Observable
//
// Each subscription emits every value in order and then completes. The
// emission loop does not stop early when the observer is unsubscribed
// mid-stream; notifications after that point are simply dropped.
func From[T any](values []T, options ...Option) *Observable[T] {
	var o *Observable[T]
	o = New(func(observer Observer[T]) Teardown {
		for _, value := range values {
			observer.Next(value)
		}
		observer.Complete()

		return func() {
			o.logger().Debug().Int("values", len(values)).Msg("unsubscribed")
		}
	}, options...)
	return o
}

// ============================================================================
// 基础工厂函数
// ============================================================================

// Just 从给定的值创建Observable
func Just[T any](values ...T) *Observable[T] {
	return From(values)
}

// Empty 创建一个空的Observable，立即完成
func Empty[T any](options ...Option) *Observable[T] {
	return From[T](nil, options...)
}

// Never 创建一个永不发射任何值的Observable
func Never[T any](options ...Option) *Observable[T] {
	var o *Observable[T]
	o = New(func(Observer[T]) Teardown {
		return func() {
			o.logger().Debug().Msg("unsubscribed")
		}
	}, options...)
	return o
}

// Throw 创建一个立即发射错误的Observable
func Throw[T any](err error, options ...Option) *Observable[T] {
	if err == nil {
		err = ErrNilError
	}

	var o *Observable[T]
	o = New(func(observer Observer[T]) Teardown {
		observer.Error(err)

		return func() {
			o.logger().Debug().Err(err).Msg("unsubscribed")
		}
	}, options...)
	return o
}
