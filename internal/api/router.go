package api

import (
	"net/http"
	"time"

	// Registers the generated API definitions with swaggo.
	_ "guestchat/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter wires every guest chat route.
func NewRouter(guestHandler *GuestHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Liveness probe.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1/guest", func(r chi.Router) {
		// Plain JSON routes get a timeout so a stuck store cannot hold a connection.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(30 * time.Second))

			r.Post("/session", guestHandler.HandleStartSession)
			r.Get("/session", guestHandler.HandleGetSession)

			r.Get("/conversations", guestHandler.HandleListConversations)
			r.Get("/conversations/{conversationID}", guestHandler.HandleGetConversation)
			r.Delete("/conversations", guestHandler.HandleClearHistory)
		})

		// Streaming routes hold the connection for the whole reply and must not time out.
		r.Group(func(r chi.Router) {
			r.Post("/messages", guestHandler.HandleSendMessage)
			r.Get("/ws", guestHandler.HandleWebSocket)
		})
	})

	return r
}
