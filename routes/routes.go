package routes

import (
	"github.com/Dosada05/event-console/handlers"
	"github.com/Dosada05/event-console/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
)

// SetupRoutes собирает маршруты мастера настройки события.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	draftHandler *handlers.DraftHandler,
	weightClassHandler *handlers.WeightClassHandler,
	matchHandler *handlers.MatchHandler,
	seatZoneHandler *handlers.SeatZoneHandler,
	submissionHandler *handlers.SubmissionHandler,
	referenceHandler *handlers.ReferenceHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Публичные справочные маршруты
	router.Get("/catalog", referenceHandler.ListCatalog)
	router.Get("/images/{assetRef}", referenceHandler.ResolveImage)

	// Уведомления сессии (токен передать в WebSocket-заголовках нельзя,
	// сокет привязан к конкретному черновику)
	router.Get("/ws/drafts/{draftID}", webSocketHandler.Subscribe)

	// Сессии мастера — только для организаторов
	router.Route("/drafts", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))
		r.Use(middleware.Authorize("organizer", "admin"))

		r.Post("/", draftHandler.Create)

		r.Route("/{draftID}", func(r chi.Router) {
			r.Get("/", draftHandler.Get)
			r.Delete("/", draftHandler.Cancel)

			r.Put("/basic-info", draftHandler.UpdateBasicInfo)
			r.Put("/schedule", draftHandler.UpdateSchedule)
			r.Post("/advance", draftHandler.Advance)
			r.Post("/retreat", draftHandler.Retreat)
			r.Post("/poster", draftHandler.UploadPoster)
			r.Post("/seat-chart", draftHandler.UploadSeatChart)

			r.Get("/reference", referenceHandler.GetDraftReference)
			r.Post("/reference/retry", referenceHandler.RetryLoad)

			r.Post("/weight-classes", weightClassHandler.Add)
			r.Put("/weight-classes/{classID}", weightClassHandler.Update)
			r.Delete("/weight-classes/{classID}", weightClassHandler.Remove)

			r.Get("/matches", matchHandler.ListByDate)
			r.Post("/matches", matchHandler.Add)
			r.Delete("/matches/{matchID}", matchHandler.Remove)

			r.Post("/seat-zones", seatZoneHandler.Add)
			r.Put("/seat-zones/{zoneID}", seatZoneHandler.Update)
			r.Delete("/seat-zones/{zoneID}", seatZoneHandler.Remove)

			r.Get("/payload", submissionHandler.Preview)
			r.Post("/submit", submissionHandler.Submit)
		})
	})
}
