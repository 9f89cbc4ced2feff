package client

import (
	"context"
	"sync"

	"github.com/PrinceMakavana/restaurant-order-management-system/models"
)

// MenuState is the observable lifecycle of the menu read model.
type MenuState string

const (
	MenuLoading MenuState = "loading"
	MenuReady   MenuState = "ready"
	MenuError   MenuState = "error"
)

// MenuEvent is one delivery from a menu subscription: either a full snapshot
// of the catalog or a subscription failure.
type MenuEvent struct {
	Items []models.MenuItem
	Err   error
}

// MenuView caches the menu for display. Every snapshot replaces the whole
// cached list, which is how remote edits and deletes become visible without
// reconciliation. It starts in loading and never returns there: later
// snapshots swap items in place, and failures park it in error until the
// subscription recovers.
type MenuView struct {
	mu     sync.RWMutex
	state  MenuState
	items  []models.MenuItem
	errMsg string
}

func NewMenuView() *MenuView {
	return &MenuView{state: MenuLoading}
}

// Apply folds one subscription event into the view.
func (v *MenuView) Apply(ev MenuEvent) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if ev.Err != nil {
		v.state = MenuError
		v.errMsg = ev.Err.Error()
		return
	}
	v.items = ev.Items
	v.state = MenuReady
	v.errMsg = ""
}

// Run consumes subscription events until the stream closes or the context is
// cancelled.
func (v *MenuView) Run(ctx context.Context, events <-chan MenuEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			v.Apply(ev)
		}
	}
}

func (v *MenuView) State() MenuState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Items returns a copy of the current snapshot.
func (v *MenuView) Items() []models.MenuItem {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]models.MenuItem, len(v.items))
	copy(out, v.items)
	return out
}

func (v *MenuView) Error() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.errMsg
}
