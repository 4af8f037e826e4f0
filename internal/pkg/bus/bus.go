// Package bus is the in-process pub/sub channel for storefront state
// changes. Every cart or auth mutation is announced here so independent
// consumers (handlers, caches, future websocket pushes) stay consistent
// without a shared in-memory view. Delivery is best-effort and in-process
// only; cross-instance consistency remains last-writer-wins on the shared
// store.
package bus

import (
	evbus "github.com/asaskevich/EventBus"
)

const (
	topicCartChanged = "storefront:cart-change"
	topicAuthChanged = "storefront:auth-change"
)

// Bus wraps EventBus with typed publish/subscribe helpers. Callbacks receive
// the session ID whose state changed.
type Bus struct {
	inner evbus.Bus
}

func New() *Bus {
	return &Bus{inner: evbus.New()}
}

func (b *Bus) PublishCartChanged(sessionID string) {
	b.inner.Publish(topicCartChanged, sessionID)
}

func (b *Bus) PublishAuthChanged(sessionID string) {
	b.inner.Publish(topicAuthChanged, sessionID)
}

func (b *Bus) SubscribeCartChanged(fn func(sessionID string)) error {
	return b.inner.Subscribe(topicCartChanged, fn)
}

func (b *Bus) SubscribeAuthChanged(fn func(sessionID string)) error {
	return b.inner.Subscribe(topicAuthChanged, fn)
}

func (b *Bus) UnsubscribeCartChanged(fn func(sessionID string)) error {
	return b.inner.Unsubscribe(topicCartChanged, fn)
}

func (b *Bus) UnsubscribeAuthChanged(fn func(sessionID string)) error {
	return b.inner.Unsubscribe(topicAuthChanged, fn)
}

// WaitAsync blocks until all in-flight async callbacks finish. Used in tests.
func (b *Bus) WaitAsync() {
	b.inner.WaitAsync()
}
