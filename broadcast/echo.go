package broadcast

import (
	"sync"

	"github.com/PrinceMakavana/restaurant-order-management-system/models"
)

// EchoChannel is an in-process Channel that mimics the relay's notify-self
// behavior: every published message is delivered straight back on Messages.
// Inject simulates a message published by another client. It exists so the
// publish-and-apply-on-echo path can be exercised without a live socket.
type EchoChannel struct {
	mu       sync.Mutex
	messages chan models.Message
	closed   bool
}

func NewEchoChannel() *EchoChannel {
	return &EchoChannel{messages: make(chan models.Message, 64)}
}

func (ch *EchoChannel) Publish(msg models.Message) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if ch.closed {
		return ErrChannelClosed
	}
	ch.messages <- msg
	return nil
}

// Inject delivers a message as if a remote client had published it.
func (ch *EchoChannel) Inject(msg models.Message) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if !ch.closed {
		ch.messages <- msg
	}
}

func (ch *EchoChannel) Messages() <-chan models.Message {
	return ch.messages
}

func (ch *EchoChannel) Close() error {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if !ch.closed {
		ch.closed = true
		close(ch.messages)
	}
	return nil
}
