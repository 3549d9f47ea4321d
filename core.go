// Package rxlite provides a minimal push-based reactive stream primitive
// 单播、惰性订阅的响应式流原语：Observable 与 Observer
package rxlite

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ============================================================================
// 核心类型定义
// ============================================================================

// Handlers 订阅者提供的回调集合，三个回调均为可选
//
// A nil field means the corresponding notification is ignored.
type Handlers[T any] struct {
	// Next 处理下一个值
	Next func(value T)
	// Error 处理终止错误
	Error func(err error)
	// Complete 处理完成信号
	Complete func()
}

// Teardown 释放动作，订阅结束时最多执行一次
type Teardown func()

// Producer 生产者函数：向Observer发射通知并返回释放动作
type Producer[T any] func(observer Observer[T]) Teardown

// ============================================================================
// 生命周期管理
// ============================================================================

// Observer 交给生产者的通知接收端
//
// The concrete implementation is created only by Observable.Subscribe.
// Notifications for one Observer must not be delivered concurrently.
type Observer[T any] interface {
	// Next 发射下一个值
	Next(value T)
	// Error 发射终止错误
	Error(err error)
	// Complete 发射完成信号
	Complete()
	// Unsubscribe 取消订阅
	Unsubscribe()
	// IsUnsubscribed 检查是否已终止
	IsUnsubscribed() bool
}

// Subscription 订阅句柄，只暴露取消订阅
type Subscription interface {
	// Unsubscribe 取消订阅，可重复调用
	Unsubscribe()
}

// ============================================================================
// 错误定义
// ============================================================================

// ErrNilError is delivered in place of a nil error passed to Throw.
var ErrNilError = errors.New("rxlite: nil error emitted")

// ============================================================================
// 配置选项
// ============================================================================

// Config 配置结构
type Config struct {
	// Logger receives subscription lifecycle diagnostics.
	Logger zerolog.Logger
	// Name tags log lines emitted for an Observable.
	Name string
}

// Option 配置选项
type Option func(config *Config)

// DefaultConfig 默认配置，日志静默
func DefaultConfig() *Config {
	return &Config{
		Logger: zerolog.Nop(),
	}
}

// WithLogger 设置日志记录器
func WithLogger(logger zerolog.Logger) Option {
	return func(config *Config) {
		config.Logger = logger
	}
}

// WithName 设置Observable名称，用于日志
func WithName(name string) Option {
	return func(config *Config) {
		config.Name = name
	}
}

func newConfig(options []Option) *Config {
	config := DefaultConfig()
	for _, opt := range options {
		if opt != nil {
			opt(config)
		}
	}
	if config.Name != "" {
		config.Logger = config.Logger.With().Str("observable", config.Name).Logger()
	}
	return config
}
