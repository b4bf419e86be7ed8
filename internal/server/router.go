package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dnf_market/pkg/logx"
	"dnf_market/pkg/middlewarex"
)

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	LogFieldMaxLen int
}

// NewRouter собирает chi-роутер со стандартной цепочкой middleware.
func NewRouter(s Server, opts RouterOptions) http.Handler {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger(log),
		middlewarex.Recovery,
		middlewarex.CORS(opts.AllowedOrigins),
		middlewarex.RequestLogging(masker, opts.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, opts.LogFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}
