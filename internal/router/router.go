package router

import (
	"net/http"
	"time"

	"aesthetic-cakes/internal/handler"
	"aesthetic-cakes/internal/middleware"
	"aesthetic-cakes/internal/model"

	"github.com/rs/zerolog"
)

// Config holds the middleware settings the router needs. With AllowedOrigin
// "*" browsers never send the session cookie cross-origin, so a SPA served
// from another origin gets a fresh cart on every request.
type Config struct {
	AllowedOrigin     string
	SessionCookieName string
	SessionTTL        time.Duration
}

// New creates a new HTTP router with all routes and middleware configured.
func New(
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	contactHandler *handler.ContactHandler,
	cfg Config,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("/api/featured", catalogHandler.Featured)
	mux.HandleFunc("/api/search", catalogHandler.Search)

	// Browse routes per kind: /api/portfolio for cakes, /api/sweeties for sweets
	for _, kind := range model.Kinds {
		base := "/api/" + kind.Route()
		list := catalogHandler.List(kind)
		detail := catalogHandler.GetByID(kind)

		kindRouteHandler := func(w http.ResponseWriter, r *http.Request) {
			// Check if this is a request for a specific product ID
			if r.URL.Path != base && r.URL.Path != base+"/" {
				detail(w, r)
				return
			}
			list(w, r)
		}

		// Register both with and without trailing slash
		mux.HandleFunc(base, kindRouteHandler)
		mux.HandleFunc(base+"/", kindRouteHandler)
	}

	mux.HandleFunc("/api/cart", cartHandler.Get)
	mux.HandleFunc("/api/cart/items", cartHandler.AddItem)
	mux.HandleFunc("/api/cart/items/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/cart/items/" {
			cartHandler.AddItem(w, r)
			return
		}
		cartHandler.Item(w, r)
	})

	mux.HandleFunc("/api/contact", contactHandler.Submit)

	if cfg.AllowedOrigin == "*" {
		logger.Warn().Msg("CORS allows any origin; cross-origin clients will not keep a cart session")
	}

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> Session
	var handler http.Handler = mux
	handler = middleware.Session(cfg.SessionCookieName, cfg.SessionTTL, logger)(handler)
	handler = middleware.CORS(cfg.AllowedOrigin)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
