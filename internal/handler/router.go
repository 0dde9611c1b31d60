package handler

import (
	"net/http"

	"pdf-qr-stamper/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()
	router.Use(Recoverer(container.Logger))
	router.Use(RequestLogger(container.Logger))

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"pdf-qr-stamper"}`))
	}).Methods("GET")

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	stampHandler := NewStampHandler(container.Stamper, container.Config, container.Logger)
	api.HandleFunc("/documents/qr", stampHandler.StampQR).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: container.Config.GetCORSOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		ExposedHeaders: []string{
			"Content-Disposition",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
