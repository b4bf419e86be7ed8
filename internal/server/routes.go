package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dnf_market/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/efficiency", handler(s.getV1ItemsEfficiency))
			r.Post("/efficiency", handler(s.postV1ItemsEfficiency))
			r.Get("/health", handler(s.getV1ItemsHealth))
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
