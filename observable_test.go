// Observable tests for rxlite
// Observable 惰性、单播与顺序测试
package rxlite_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/xinjiayu/rxlite"
	"github.com/xinjiayu/rxlite/streamtest"
)

// ============================================================================
// 场景测试
// ============================================================================

func TestFromEmitsInOrderThenCompletes(t *testing.T) {
	rec := streamtest.NewRecorder[int]()

	rxlite.From([]int{1, 2, 3}).Subscribe(rec.Handlers())

	require.Equal(t, []streamtest.Notification[int]{
		{Kind: streamtest.KindNext, Value: 1},
		{Kind: streamtest.KindNext, Value: 2},
		{Kind: streamtest.KindNext, Value: 3},
		{Kind: streamtest.KindComplete},
	}, rec.Notifications())
}

func TestFromEmptyWithoutCompleteHandler(t *testing.T) {
	nexts := 0
	var sub rxlite.Subscription
	require.NotPanics(t, func() {
		sub = rxlite.From([]int{}).Subscribe(rxlite.Handlers[int]{
			Next: func(int) { nexts++ },
		})
	})
	assert.Zero(t, nexts)
	require.NotPanics(t, sub.Unsubscribe)
}

func TestUnsubscribeTwiceRunsTeardownOnce(t *testing.T) {
	teardowns := 0
	obs := rxlite.New(func(rxlite.Observer[int]) rxlite.Teardown {
		return func() { teardowns++ }
	})

	sub := obs.Subscribe(rxlite.Handlers[int]{})
	assert.Zero(t, teardowns)

	sub.Unsubscribe()
	sub.Unsubscribe()
	assert.Equal(t, 1, teardowns)
}

func TestErrorThenNextIsDropped(t *testing.T) {
	boom := errors.New("boom")
	rec := streamtest.NewRecorder[int]()

	rxlite.New(func(observer rxlite.Observer[int]) rxlite.Teardown {
		observer.Error(boom)
		observer.Next(5)
		observer.Complete()
		return nil
	}).Subscribe(rec.Handlers())

	assert.Empty(t, rec.Values())
	assert.Zero(t, rec.Completions())
	require.Len(t, rec.Errors(), 1)
	assert.ErrorIs(t, rec.Errors()[0], boom)
}

// ============================================================================
// 惰性与单播测试
// ============================================================================

func TestNewIsLazy(t *testing.T) {
	calls := 0
	obs := rxlite.New(func(observer rxlite.Observer[string]) rxlite.Teardown {
		calls++
		observer.Complete()
		return nil
	})
	assert.Zero(t, calls)

	obs.Subscribe(rxlite.Handlers[string]{})
	assert.Equal(t, 1, calls)
}

func TestFromIsUnicast(t *testing.T) {
	obs := rxlite.From([]string{"a", "b"})
	first := streamtest.NewRecorder[string]()
	second := streamtest.NewRecorder[string]()

	obs.Subscribe(first.Handlers())
	obs.Subscribe(second.Handlers())

	assert.Equal(t, []string{"a", "b"}, first.Values())
	assert.Equal(t, []string{"a", "b"}, second.Values())
	assert.Equal(t, 1, first.Completions())
	assert.Equal(t, 1, second.Completions())
}

func TestSubscriptionsAreIndependent(t *testing.T) {
	var observers []rxlite.Observer[int]
	teardowns := map[int]int{}
	obs := rxlite.New(func(observer rxlite.Observer[int]) rxlite.Teardown {
		id := len(observers)
		observers = append(observers, observer)
		return func() { teardowns[id]++ }
	})

	first := obs.Subscribe(rxlite.Handlers[int]{})
	obs.Subscribe(rxlite.Handlers[int]{})

	first.Unsubscribe()
	assert.True(t, observers[0].IsUnsubscribed())
	assert.False(t, observers[1].IsUnsubscribed())
	assert.Equal(t, map[int]int{0: 1}, teardowns)
}

// ============================================================================
// 释放动作测试
// ============================================================================

func TestTeardownRunsWhenProducerTerminatedSynchronously(t *testing.T) {
	teardowns := 0
	sub := rxlite.New(func(observer rxlite.Observer[int]) rxlite.Teardown {
		observer.Next(1)
		observer.Complete()
		return func() { teardowns++ }
	}).Subscribe(rxlite.Handlers[int]{})

	assert.Equal(t, 1, teardowns)
	sub.Unsubscribe()
	assert.Equal(t, 1, teardowns)
}

func TestUnsubscribeFromAsyncProducer(t *testing.T) {
	var captured rxlite.Observer[int]
	teardowns := 0
	rec := streamtest.NewRecorder[int]()

	sub := rxlite.New(func(observer rxlite.Observer[int]) rxlite.Teardown {
		captured = observer
		return func() { teardowns++ }
	}).Subscribe(rec.Handlers())

	captured.Next(1)
	sub.Unsubscribe()
	captured.Next(2)
	captured.Complete()
	sub.Unsubscribe()

	assert.Equal(t, []int{1}, rec.Values())
	assert.Zero(t, rec.Terminals())
	assert.Equal(t, 1, teardowns)
	assert.True(t, captured.IsUnsubscribed())
}

func TestProducerPanicPropagates(t *testing.T) {
	obs := rxlite.New(func(rxlite.Observer[int]) rxlite.Teardown {
		panic("producer failed")
	})

	assert.PanicsWithValue(t, "producer failed", func() {
		obs.Subscribe(rxlite.Handlers[int]{})
	})
}

func TestHandlerPanicPropagates(t *testing.T) {
	obs := rxlite.From([]int{1})

	assert.Panics(t, func() {
		obs.Subscribe(rxlite.Handlers[int]{Next: func(int) { panic("handler failed") }})
	})
}

func TestFromLogsTeardownMarker(t *testing.T) {
	oldLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(oldLevel) })

	var buf strings.Builder
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)

	rxlite.From([]int{1, 2}, rxlite.WithLogger(logger), rxlite.WithName("numbers")).
		Subscribe(rxlite.Handlers[int]{})

	out := buf.String()
	assert.Contains(t, out, `"message":"subscribed"`)
	assert.Contains(t, out, `"message":"unsubscribed"`)
	assert.Contains(t, out, `"observable":"numbers"`)
	assert.Equal(t, 1, strings.Count(out, `"message":"unsubscribed"`))
}

// ============================================================================
// 属性测试
// ============================================================================

func TestFromPreservesOrder(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := rapid.SliceOf(rapid.Int()).Draw(rt, "values")
		subscriptions := rapid.IntRange(1, 4).Draw(rt, "subscriptions")
		obs := rxlite.From(values)

		for i := 0; i < subscriptions; i++ {
			rec := streamtest.NewRecorder[int]()
			obs.Subscribe(rec.Handlers())

			notifications := rec.Notifications()
			if len(notifications) != len(values)+1 {
				rt.Fatalf("got %d notifications for %d values", len(notifications), len(values))
			}
			for j, v := range values {
				if notifications[j].Kind != streamtest.KindNext || notifications[j].Value != v {
					rt.Fatalf("notification %d = %+v, want next(%d)", j, notifications[j], v)
				}
			}
			if notifications[len(values)].Kind != streamtest.KindComplete {
				rt.Fatalf("last notification = %v, want complete", notifications[len(values)].Kind)
			}
		}
	})
}
