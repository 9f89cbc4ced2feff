package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/PrinceMakavana/restaurant-order-management-system/database/dbhelper"
	"github.com/PrinceMakavana/restaurant-order-management-system/models"
)

const (
	notifyChannel     = "menu_items_changed"
	listenMinInterval = 2 * time.Second
	listenMaxInterval = time.Minute
	pingInterval      = 90 * time.Second
)

// Event is one delivery to catalog subscribers: a full snapshot of the menu,
// or the error that interrupted the subscription.
type Event struct {
	Items []models.MenuItem
	Err   error
}

// Store owns the menu catalog. Writes go straight to Postgres; a trigger
// NOTIFYs on every mutation and the listener loop reloads the full item list
// and fans it out, so subscribers always see whole snapshots rather than
// diffs.
type Store struct {
	listener *pq.Listener
	validate *validator.Validate
	log      *logrus.Entry

	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

func NewStore(dsn string) *Store {
	s := &Store{
		validate: validator.New(),
		log:      logrus.WithField("component", "catalog"),
		subs:     make(map[int]chan Event),
	}
	s.listener = pq.NewListener(dsn, listenMinInterval, listenMaxInterval,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				s.log.WithError(err).Warn("catalog listener event")
			}
		})
	return s
}

// Run listens for change notifications until the context is cancelled. Each
// notification, and each reconnect, triggers a full reload.
func (s *Store) Run(ctx context.Context) error {
	if err := s.listener.Listen(notifyChannel); err != nil {
		s.fanOut(Event{Err: err})
		return err
	}
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()
	defer s.listener.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case n := <-s.listener.Notify:
			// A nil notification means the connection was re-established;
			// reload either way since changes may have been missed.
			if n != nil {
				s.log.WithField("op", n.Extra).Debug("menu changed")
			}
			s.publishSnapshot()
		case <-ping.C:
			if err := s.listener.Ping(); err != nil {
				s.log.WithError(err).Error("catalog listener ping failed")
				s.fanOut(Event{Err: err})
			}
		}
	}
}

// Subscribe registers for snapshot events and immediately delivers the
// current catalog. Cancel the context to unsubscribe.
func (s *Store) Subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, 8)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	items, err := dbhelper.ListMenuItems()
	ch <- Event{Items: items, Err: err}

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
		close(ch)
	}()
	return ch
}

func (s *Store) publishSnapshot() {
	items, err := dbhelper.ListMenuItems()
	if err != nil {
		s.log.WithError(err).Error("failed to reload menu snapshot")
		s.fanOut(Event{Err: err})
		return
	}
	s.fanOut(Event{Items: items})
}

func (s *Store) fanOut(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.subs {
		select {
		case ch <- ev:
		default:
			s.log.WithField("subscriber", id).Warn("dropping snapshot for slow subscriber")
		}
	}
}

// Create validates and inserts a new item; the store assigns the id.
func (s *Store) Create(input models.MenuItemInput) (models.MenuItem, error) {
	if err := s.validate.Struct(input); err != nil {
		return models.MenuItem{}, validationError(err)
	}
	return dbhelper.CreateMenuItem(input)
}

// Update merges the named fields of the patch into an existing item.
func (s *Store) Update(id string, patch models.MenuItemPatch) error {
	if err := s.validate.Struct(patch); err != nil {
		return validationError(err)
	}
	return dbhelper.UpdateMenuItem(id, patch)
}

func (s *Store) Delete(id string) error {
	return dbhelper.DeleteMenuItem(id)
}

func (s *Store) List() ([]models.MenuItem, error) {
	return dbhelper.ListMenuItems()
}

func validationError(err error) error {
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return err
	}
	var result *multierror.Error
	for _, fe := range err.(validator.ValidationErrors) {
		result = multierror.Append(result, &FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return result.ErrorOrNil()
}
