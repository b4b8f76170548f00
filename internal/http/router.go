package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/osamarizk/wizo-insights/internal/http/auth"
	"github.com/osamarizk/wizo-insights/internal/http/insight"
	"github.com/osamarizk/wizo-insights/internal/http/merchant"
	"github.com/osamarizk/wizo-insights/internal/http/spending"
	"github.com/osamarizk/wizo-insights/internal/http/wallet"
)

func New(
	jwtSecret string,
	spendingV1 *spending.Handler,
	insightsV1 *insight.Handler,
	walletV1 *wallet.Handler,
	merchantsV1 *merchant.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(jwtSecret))

		r.Route("/spending", spendingV1.Routes)

		r.Route("/insights", insightsV1.Routes)

		r.Route("/wallet", walletV1.Routes)

		r.Route("/merchants", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			merchantsV1.Routes(r)
		})
	})

	return router
}
