package client

import (
	"errors"
	"testing"
)

func TestMenuViewLifecycle(t *testing.T) {
	v := NewMenuView()
	if v.State() != MenuLoading {
		t.Fatalf("initial state = %q, want loading", v.State())
	}

	v.Apply(MenuEvent{Items: fixtureMenu})
	if v.State() != MenuReady {
		t.Fatalf("state after first snapshot = %q, want ready", v.State())
	}
	if len(v.Items()) != 4 {
		t.Fatalf("view holds %d items, want 4", len(v.Items()))
	}

	// A deletion arrives as a smaller full snapshot; the list is replaced
	// wholesale and the view never returns to loading.
	v.Apply(MenuEvent{Items: fixtureMenu[:3]})
	if v.State() != MenuReady {
		t.Fatalf("state after second snapshot = %q, want ready", v.State())
	}
	if len(v.Items()) != 3 {
		t.Fatalf("view holds %d items after deletion, want 3", len(v.Items()))
	}
	for _, it := range v.Items() {
		if it.ID == "4" {
			t.Error("deleted item still visible")
		}
	}
}

func TestMenuViewError(t *testing.T) {
	v := NewMenuView()
	v.Apply(MenuEvent{Err: errors.New("subscription lost")})

	if v.State() != MenuError {
		t.Fatalf("state = %q, want error", v.State())
	}
	if v.Error() != "subscription lost" {
		t.Errorf("error message = %q", v.Error())
	}

	// Recovery: the next good snapshot clears the error.
	v.Apply(MenuEvent{Items: fixtureMenu})
	if v.State() != MenuReady || v.Error() != "" {
		t.Errorf("state = %q, error = %q after recovery", v.State(), v.Error())
	}
}

func TestMenuViewSnapshotIsolation(t *testing.T) {
	v := NewMenuView()
	v.Apply(MenuEvent{Items: fixtureMenu})

	items := v.Items()
	items[0].Name = "mutated"
	if v.Items()[0].Name != "Caesar Salad" {
		t.Error("Items() should return a copy")
	}
}
