package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/PrinceMakavana/restaurant-order-management-system/broadcast"
	"github.com/PrinceMakavana/restaurant-order-management-system/handlers"
	"github.com/PrinceMakavana/restaurant-order-management-system/middlewares"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

func SetupRoutes(h *handlers.Handler, hub *broadcast.Hub, imagesDir string) *Server {
	router := mux.NewRouter()
	router.Use(middlewares.Recover, middlewares.RequestLogger)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")

	router.HandleFunc("/ws", hub.ServeWS)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/menu", h.ListMenu).Methods("GET")
	api.HandleFunc("/menu", h.CreateMenuItem).Methods("POST")
	api.HandleFunc("/menu/watch", h.WatchMenu).Methods("GET")
	api.HandleFunc("/menu/{id}", h.UpdateMenuItem).Methods("PATCH")
	api.HandleFunc("/menu/{id}", h.DeleteMenuItem).Methods("DELETE")
	api.HandleFunc("/uploads", h.UploadImage).Methods("POST")

	router.PathPrefix("/images/").Handler(
		http.StripPrefix("/images/", http.FileServer(http.Dir(imagesDir))))

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              port,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
