package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/PrinceMakavana/restaurant-order-management-system/models"
)

// ErrChannelClosed is returned by Publish after the channel shuts down.
var ErrChannelClosed = errors.New("broadcast: channel closed")

// Channel is the client-side handle on the relay. Published messages come
// back on Messages along with everyone else's; consumers mutate local state
// only from that stream.
type Channel interface {
	Publish(msg models.Message) error
	Messages() <-chan models.Message
	Close() error
}

// SocketChannel is a Channel over a websocket connection to the hub.
type SocketChannel struct {
	conn      *websocket.Conn
	messages  chan models.Message
	writeMu   sync.Mutex
	connected *atomic.Bool
	log       *logrus.Entry
	closeOnce sync.Once
}

// Dial connects to the relay endpoint and starts the read loop.
func Dial(ctx context.Context, url string) (*SocketChannel, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	ch := &SocketChannel{
		conn:      conn,
		messages:  make(chan models.Message, sendBuffer),
		connected: atomic.NewBool(true),
		log:       logrus.WithField("component", "channel"),
	}
	go ch.readLoop()
	return ch, nil
}

func (ch *SocketChannel) readLoop() {
	defer func() {
		ch.connected.Store(false)
		close(ch.messages)
	}()
	for {
		_, raw, err := ch.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				ch.log.WithError(err).Warn("connection lost")
			}
			return
		}
		var msg models.Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			ch.log.WithError(err).Debug("dropping undecodable frame")
			continue
		}
		ch.messages <- msg
	}
}

func (ch *SocketChannel) Publish(msg models.Message) error {
	if !ch.connected.Load() {
		return ErrChannelClosed
	}
	ch.writeMu.Lock()
	defer ch.writeMu.Unlock()
	return ch.conn.WriteJSON(msg)
}

func (ch *SocketChannel) Messages() <-chan models.Message {
	return ch.messages
}

// Connected reports whether the underlying socket is still up.
func (ch *SocketChannel) Connected() bool {
	return ch.connected.Load()
}

func (ch *SocketChannel) Close() error {
	var err error
	ch.closeOnce.Do(func() {
		ch.connected.Store(false)
		ch.writeMu.Lock()
		ch.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline())
		ch.writeMu.Unlock()
		err = ch.conn.Close()
	})
	return err
}

func deadline() time.Time {
	return time.Now().Add(writeWait)
}
