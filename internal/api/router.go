/**
 * @description
 * This file sets up the HTTP router for the voice-agent-service. It defines
 * the API endpoints, associates them with their handlers, and applies
 * middleware for recovery, timeouts, CORS, metrics and bearer authentication.
 *
 * @notes
 * - authenticate_customer, make_call and call_status are intentionally public:
 *   the browser front-end drives them before any agent token exists. Only the
 *   agent-facing directory and knowledge reads sit behind the bearer gate.
 */

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes creates and returns the router for the voice-agent-service.
func Routes(h *Handlers, verifier TokenVerifier, staticDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	// The probe can spend up to 12 candidate attempts of 30s each before giving
	// up, so the request timeout sits above that worst case.
	r.Use(middleware.Timeout(7 * time.Minute))
	r.Use(metricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	// Public endpoints.
	r.Get("/", h.Health)
	r.Get("/index.html", h.Index)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/authenticate_customer", h.AuthenticateCustomer)
	r.Post("/make_call", h.MakeCall)
	r.Get("/call_status/{call_id}", h.CallStatus)

	// Agent endpoints behind the bearer gate.
	r.Group(func(r chi.Router) {
		r.Use(AgentAuthMiddleware(verifier))

		r.Get("/customer/{customer_id}/accounts", h.CustomerAccounts)
		r.Get("/customer/{customer_id}/transactions", h.CustomerTransactions)
		r.Get("/customer/{customer_id}/loans", h.CustomerLoans)
		r.Get("/knowledge/hours", h.BankingHours)
		r.Get("/knowledge/fees", h.FeeSchedule)
		r.Get("/knowledge/account_types", h.AccountTypes)
	})

	return r
}
