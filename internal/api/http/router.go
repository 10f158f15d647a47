package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	if handler.MediaDir != "" {
		r.PathPrefix("/media/").Handler(
			http.StripPrefix("/media/", http.FileServer(http.Dir(handler.MediaDir))))
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("Kitchary starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
