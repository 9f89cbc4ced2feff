package client

import (
	"context"
	"errors"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/PrinceMakavana/restaurant-order-management-system/models"
)

// menuFrame is the wire shape of the /api/menu/watch feed.
type menuFrame struct {
	Items []models.MenuItem `json:"items"`
	Error string            `json:"error,omitempty"`
}

// WatchMenu dials the live menu feed and returns the event stream a MenuView
// consumes. The stream closes when the socket drops; reconnecting is the
// caller's choice.
func WatchMenu(ctx context.Context, url string) (<-chan MenuEvent, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	events := make(chan MenuEvent, 8)
	log := logrus.WithField("component", "menufeed")
	go func() {
		defer close(events)
		defer conn.Close()
		for {
			var frame menuFrame
			if err := conn.ReadJSON(&frame); err != nil {
				log.WithError(err).Warn("menu feed closed")
				return
			}
			ev := MenuEvent{Items: frame.Items}
			if frame.Error != "" {
				ev = MenuEvent{Err: errors.New(frame.Error)}
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}
