package sandbox

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/rs/cors"
)

func NewServer() *Server {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &Server{
		store:   newOrderStore(time.Now),
		decoder: decoder,
	}
}

// SetupHandler mounts the order endpoints on router under prefix, e.g.
// "/order/sandbox/rest".
func (s *Server) SetupHandler(router *mux.Router, prefix string) {
	sub := router.PathPrefix(prefix).Subrouter()
	sub.Use(requireAuthorization)

	sub.HandleFunc("/orderlist/{accountId:[0-9]+}.json", s.handleListOrders).Methods(http.MethodGet)
	sub.HandleFunc("/cancelorder.json", s.handleCancelOrder).Methods(http.MethodPost)
	sub.HandleFunc("/previewequityorder.json", s.handlePreviewEquityOrder).Methods(http.MethodPost)
	sub.HandleFunc("/placeequityorder.json", s.handlePlaceEquityOrder).Methods(http.MethodPost)
	sub.HandleFunc("/previewchangeequityorder.json", s.handlePreviewChangeEquityOrder).Methods(http.MethodPost)
	sub.HandleFunc("/placechangeequityorder.json", s.handlePlaceChangeEquityOrder).Methods(http.MethodPost)
}

func (s *Server) Handler(prefix string) http.Handler {
	router := mux.NewRouter()
	s.SetupHandler(router, prefix)

	return router
}

// HandlerWithCORS serves Handler(prefix) to browser clients from origins.
func (s *Server) HandlerWithCORS(prefix string, origins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	return c.Handler(s.Handler(prefix))
}
