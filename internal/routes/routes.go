package routes

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"

	"SURUWE_BACK-END/internal/config"
	"SURUWE_BACK-END/internal/handlers"
	"SURUWE_BACK-END/internal/middleware"
	"SURUWE_BACK-END/internal/utils"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	cfg *config.Config,
	profileHandler *handlers.ProfileHandler,
	photosHandler *handlers.PhotosHandler,
	ordersHandler *handlers.OrdersHandler,
	wizardHandler *handlers.WizardHandler,
	healthHandler *handlers.HealthHandler,
) {
	session := &cfg.Session

	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Onboarding and public profile routes
	http.HandleFunc("/api/profiles", profileHandler.Create)
	http.HandleFunc("/api/profiles/", publicHandler(profileHandler, ordersHandler))

	// Owner routes (session token required)
	http.HandleFunc("/api/me", middleware.SessionMiddleware(profileHandler.Me, session))
	http.HandleFunc("/api/me/measurements", middleware.SessionMiddleware(profileHandler.UpdateMeasurements, session))
	http.HandleFunc("/api/me/share-message", middleware.SessionMiddleware(profileHandler.ShareMessage, session))
	http.HandleFunc("/api/me/photos", middleware.SessionMiddleware(photosHandler.Photos, session))
	http.HandleFunc("/api/me/photos/", middleware.SessionMiddleware(photosHandler.Photos, session))
	http.HandleFunc("/api/me/orders", middleware.SessionMiddleware(ordersHandler.Orders, session))
	http.HandleFunc("/api/me/orders/", middleware.SessionMiddleware(ordersHandler.Orders, session))
	http.HandleFunc("/api/me/wizard", middleware.SessionMiddleware(wizardHandler.Wizard, session))
	http.HandleFunc("/api/me/wizard/", middleware.SessionMiddleware(wizardHandler.Wizard, session))

	// Swagger UI
	http.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

// publicHandler dispatches the tailor-facing routes:
// /api/profiles/{slug} and /api/profiles/{slug}/orders/{id}
func publicHandler(profileHandler *handlers.ProfileHandler, ordersHandler *handlers.OrdersHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only GET is allowed")
			return
		}

		rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/profiles/"), "/")
		parts := strings.Split(rest, "/")
		switch {
		case len(parts) == 1 && parts[0] != "":
			profileHandler.PublicProfile(w, r, parts[0])
		case len(parts) == 3 && parts[1] == "orders":
			orderID, err := uuid.Parse(parts[2])
			if err != nil {
				utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "invalid order id")
				return
			}
			ordersHandler.PublicOrder(w, r, parts[0], orderID)
		default:
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "unknown route")
		}
	}
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Suruwe backend is running."))
}
