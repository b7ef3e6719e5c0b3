package events

import (
	"context"
	"log/slog"
	"sync"
)

// subscriberBuffer is the per-subscriber queue depth. A subscriber that
// falls this far behind loses events; persistent events remain available
// in the events table.
const subscriberBuffer = 64

// Broker fans NOTIFY payloads out to local SSE subscribers. The listener
// delivers every payload for a channel to Broadcast; the broker forwards
// it to each subscriber without blocking the receive loop.
type Broker struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan []byte]struct{}
	listener    *NotifyListener
}

// NewBroker creates a Broker. Call AttachListener before Subscribe.
func NewBroker() *Broker {
	return &Broker{subscribers: make(map[string]map[chan []byte]struct{})}
}

// AttachListener wires the NOTIFY listener the broker LISTENs through.
func (b *Broker) AttachListener(l *NotifyListener) {
	b.listener = l
}

// Subscribe registers a subscriber for a channel and ensures the
// underlying LISTEN is active. The returned cancel function must be called
// exactly once; it unsubscribes and releases the LISTEN when the last
// local subscriber leaves.
func (b *Broker) Subscribe(ctx context.Context, channel string) (<-chan []byte, func(), error) {
	ch := make(chan []byte, subscriberBuffer)

	b.mu.Lock()
	first := len(b.subscribers[channel]) == 0
	if b.subscribers[channel] == nil {
		b.subscribers[channel] = make(map[chan []byte]struct{})
	}
	b.subscribers[channel][ch] = struct{}{}
	b.mu.Unlock()

	if first && b.listener != nil {
		if err := b.listener.Subscribe(ctx, channel); err != nil {
			b.remove(channel, ch)
			return nil, nil, err
		}
	}

	cancel := func() {
		last := b.remove(channel, ch)
		if last && b.listener != nil {
			if err := b.listener.Unsubscribe(context.Background(), channel); err != nil {
				slog.Warn("UNLISTEN failed", "channel", channel, "error", err)
			}
		}
	}
	return ch, cancel, nil
}

// Broadcast forwards a payload to every subscriber of a channel. Slow
// subscribers are skipped rather than blocking the NOTIFY receive loop.
func (b *Broker) Broadcast(channel string, payload []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subscribers[channel] {
		select {
		case ch <- payload:
		default:
			slog.Debug("Dropping event for slow subscriber", "channel", channel)
		}
	}
}

// remove deletes the subscriber and reports whether it was the last one
// on the channel.
func (b *Broker) remove(channel string, ch chan []byte) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if subs, ok := b.subscribers[channel]; ok {
		delete(subs, ch)
		if len(subs) == 0 {
			delete(b.subscribers, channel)
			return true
		}
	}
	return false
}
