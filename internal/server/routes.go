package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lak_auction/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Get("/health", handler(s.getHealth))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handler(s.getHealth))

		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler(s.getItems))
			r.Post("/", handler(s.postItem))
			r.Get("/{id}", handler(s.getItem))
			r.Patch("/{id}/bid", handler(s.patchItemBid))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
