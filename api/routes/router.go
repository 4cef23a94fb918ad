// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"majestic/internal/affiche"
	"majestic/internal/auth"
	"majestic/internal/events"
	"majestic/internal/homehero"
	"majestic/internal/languages"
	"majestic/internal/notifications"
	"majestic/internal/pricing"
	"majestic/internal/rooms"
	"majestic/internal/seatmap"
	"majestic/internal/sessions"
	"majestic/internal/sessiontimes"
	"majestic/internal/shared/config"
	"majestic/internal/shared/database"
	"majestic/internal/showtypes"
	"majestic/internal/uploads"
	"majestic/pkg/cache"
	"majestic/pkg/logger"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer *notifications.Producer

	cacheService cache.Service

	// Services kept for cross-module injection
	pricingService  pricing.Service
	showTypeService showtypes.Service
	roomService     rooms.Service
	heroService     homehero.Service
	eventService    events.Service
	sessionRepo     sessions.Repository
	uploadService   uploads.Service
}

func NewRouter(cfg *config.Config, db *database.DB, producer *notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes. Setup order matters: the
// reference catalogs come first, then rooms and events, then sessions which
// consume all of them.
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.cacheService = cache.NewService(r.db.GetRedisClient())

	r.setupHealthRoutes(engine)
	r.setupStaticRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupCatalogRoutes(api)
		r.setupRoomRoutes(api)
		r.setupHeroRoutes(api)
		r.setupEventRoutes(api)
		r.setupSessionRoutes(api)
		r.setupAfficheRoutes(api)
	}
}

func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "majestic-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "majestic-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

func (r *Router) setupStaticRoutes(engine *gin.Engine) {
	engine.Static("/uploads", r.config.Upload.Path)
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)

	auth.SetupAuthRoutes(rg, authController)
}

// setupCatalogRoutes wires the small reference catalogs: pricing tiers,
// languages, show types and the session time grid.
func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup) {
	pricingRepo := pricing.NewRepository(r.db.GetPostgreSQL())
	r.pricingService = pricing.NewService(pricingRepo)
	pricing.SetupPricingRoutes(rg, pricing.NewController(r.pricingService))

	languageRepo := languages.NewRepository(r.db.GetPostgreSQL())
	languageService := languages.NewService(languageRepo)
	languages.SetupLanguageRoutes(rg, languages.NewController(languageService))

	showTypeRepo := showtypes.NewRepository(r.db.GetPostgreSQL())
	r.showTypeService = showtypes.NewService(showTypeRepo)
	showtypes.SetupShowTypeRoutes(rg, showtypes.NewController(r.showTypeService))

	sessionTimeRepo := sessiontimes.NewRepository(r.db.GetPostgreSQL())
	sessionTimeService := sessiontimes.NewService(sessionTimeRepo)
	sessiontimes.SetupSessionTimeRoutes(rg, sessiontimes.NewController(sessionTimeService))
}

func (r *Router) setupRoomRoutes(rg *gin.RouterGroup) {
	roomRepo := rooms.NewRepository(r.db.GetPostgreSQL())
	r.roomService = rooms.NewService(roomRepo)
	r.roomService.SetPricingCatalog(r.pricingService)

	rooms.SetupRoomRoutes(rg, rooms.NewController(r.roomService))
}

func (r *Router) setupHeroRoutes(rg *gin.RouterGroup) {
	heroRepo := homehero.NewRepository(r.db.GetPostgreSQL())
	r.heroService = homehero.NewService(heroRepo)

	homehero.SetupHeroRoutes(rg, homehero.NewController(r.heroService))
}

func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	// The sessions repository doubles as the events module's session store
	// (cascade deletes, "events with upcoming sessions").
	r.sessionRepo = sessions.NewRepository(r.db.GetPostgreSQL())

	eventRepo := events.NewRepository(r.db.GetPostgreSQL())
	r.eventService = events.NewService(eventRepo)
	r.eventService.SetSessionStore(r.sessionRepo)
	r.eventService.SetHeroProvider(r.heroService)
	r.eventService.SetShowTypeSource(showTypeSource{r.showTypeService})
	r.eventService.SetCacheService(r.cacheService)

	eventController := events.NewController(r.eventService)

	var err error
	r.uploadService, err = uploads.NewService(r.config)
	if err != nil {
		logger.GetDefault().Warn("upload storage unavailable, poster uploads disabled", "error", err)
	} else {
		eventController.SetUploader(r.uploadService)
		uploads.SetupUploadRoutes(rg, uploads.NewController(r.uploadService))
	}

	events.SetupEventRoutes(rg, eventController)
}

func (r *Router) setupSessionRoutes(rg *gin.RouterGroup) {
	sessionService := sessions.NewService(r.sessionRepo)
	sessionService.SetEventCatalog(eventCatalog{r.eventService})
	sessionService.SetRoomSource(roomLayoutSource{r.roomService})
	sessionService.SetPricingCatalog(r.pricingService)
	sessionService.SetPublisher(r.producer)
	sessionService.SetCacheService(r.cacheService)

	sessions.SetupSessionRoutes(rg, sessions.NewController(sessionService))
}

func (r *Router) setupAfficheRoutes(rg *gin.RouterGroup) {
	afficheRepo := affiche.NewRepository(r.db.GetPostgreSQL())
	afficheService := affiche.NewService(afficheRepo)
	afficheService.SetEventChecker(r.eventService)

	affiche.SetupAfficheRoutes(rg, affiche.NewController(afficheService))
}

// eventCatalog adapts the events service to the reads the sessions module
// needs: version membership and display fields for schedule views.
type eventCatalog struct {
	events events.Service
}

func (a eventCatalog) GetAvailableVersions(id uuid.UUID) ([]string, error) {
	return a.events.GetAvailableVersions(id)
}

func (a eventCatalog) GetEventSummary(id uuid.UUID) (*sessions.EventSummary, error) {
	event, err := a.events.GetEventByID(id)
	if err != nil {
		return nil, err
	}
	return &sessions.EventSummary{
		ID:             event.ID,
		Type:           string(event.Type),
		Name:           event.Name,
		Description:    event.Description,
		Poster:         event.Poster,
		Genres:         event.Genres,
		Duration:       event.Duration,
		AgeRestriction: event.AgeRestriction,
		DirectedBy:     event.DirectedBy,
		TrailerLink:    event.TrailerLink,
	}, nil
}

// roomLayoutSource adapts the rooms service to the narrow layout lookup the
// sessions module validates overrides against.
type roomLayoutSource struct {
	rooms rooms.Service
}

func (a roomLayoutSource) GetRoomLayout(name string) ([]seatmap.Cell, error) {
	room, err := a.rooms.GetRoomByName(name)
	if err != nil {
		return nil, err
	}
	return room.Layout, nil
}

// showTypeSource adapts the show type catalog for the events module.
type showTypeSource struct {
	showTypes showtypes.Service
}

func (a showTypeSource) ListShowTypes() (interface{}, error) {
	return a.showTypes.ListShowTypes()
}
