package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/PrinceMakavana/restaurant-order-management-system/catalog"
	"github.com/PrinceMakavana/restaurant-order-management-system/database/dbhelper"
	"github.com/PrinceMakavana/restaurant-order-management-system/models"
	"github.com/PrinceMakavana/restaurant-order-management-system/storage"
	"github.com/PrinceMakavana/restaurant-order-management-system/utils"
)

// Handler carries the server-side dependencies. Everything is injected so
// tests can swap in fakes instead of touching package globals.
type Handler struct {
	Catalog *catalog.Store
	Objects storage.ObjectStore
	Log     *logrus.Entry
}

var watchUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Catalog.List()
	if err != nil {
		h.Log.WithError(err).Error("failed to list menu")
		utils.RespondError(w, http.StatusInternalServerError, "failed to load menu items")
		return
	}
	utils.RespondJSON(w, http.StatusOK, items)
}

func (h *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var input models.MenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item, err := h.Catalog.Create(input)
	if err != nil {
		if catalog.IsValidationError(err) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.WithError(err).Error("failed to add menu item")
		utils.RespondError(w, http.StatusInternalServerError, "failed to add menu item")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, item)
}

func (h *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var patch models.MenuItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Catalog.Update(id, patch); err != nil {
		switch {
		case catalog.IsValidationError(err):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, dbhelper.ErrMenuItemNotFound):
			utils.RespondError(w, http.StatusNotFound, "menu item not found")
		default:
			h.Log.WithError(err).Error("failed to update menu item")
			utils.RespondError(w, http.StatusInternalServerError, "failed to update menu item")
		}
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Catalog.Delete(id); err != nil {
		if errors.Is(err, dbhelper.ErrMenuItemNotFound) {
			utils.RespondError(w, http.StatusNotFound, "menu item not found")
			return
		}
		h.Log.WithError(err).Error("failed to delete menu item")
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete menu item")
		return
	}
	utils.RespondJSON(w, http.StatusNoContent, nil)
}

// WatchMenu streams full catalog snapshots over a websocket, one frame per
// change, starting with the current state.
func (h *Handler) WatchMenu(w http.ResponseWriter, r *http.Request) {
	conn, err := watchUpgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.WithError(err).Error("menu watch upgrade failed")
		return
	}
	defer conn.Close()

	// The request context does not notice a hijacked connection dropping,
	// so watch the socket ourselves to release the subscription.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	events := h.Catalog.Subscribe(ctx)
	for ev := range events {
		frame := map[string]interface{}{"items": ev.Items}
		if ev.Err != nil {
			frame = map[string]interface{}{"error": ev.Err.Error()}
		}
		if err := conn.WriteJSON(frame); err != nil {
			return
		}
	}
}
