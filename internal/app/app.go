package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"lmscl/internal/config"
	"lmscl/internal/gateway"
	"lmscl/internal/handlers"
	"lmscl/internal/logger"
	"lmscl/internal/render"
	"lmscl/internal/routes"
	"lmscl/internal/services"
	"lmscl/internal/session"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	clockEvery   = time.Minute
	sweepEvery   = 10 * time.Minute
	redisTimeout = 5 * time.Second
)

// InitApp wires the gateway, services, handlers and routes. The returned
// cleanup stops the background tickers and closes the session store.
func InitApp(cfg *config.Config) (*mux.Router, func(), error) {
	store, err := newSessionStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	codec := session.NewCodec(sessionSecret(cfg), cfg.SessionTTL, !cfg.IsDev())

	renderer, err := render.New()
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	// Backend
	api := gateway.NewClient(cfg.APIBaseURL, cfg.APITimeout)

	// Services
	dashboardSvc, err := services.NewDashboardService()
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	boardSvc, err := services.NewJobBoardService()
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	viewerSvc := services.NewCourseViewerService(api, cfg.CourseID, cfg.WebSearchURL)
	catalogSvc := services.NewCatalogService(api)
	blogSvc := services.NewBlogService(api)
	jobsSvc := services.NewJobsService(api, cfg.JobsPageSize)
	peopleSvc := services.NewPeopleService(api)
	assessmentSvc := services.NewAssessmentService(api)
	authoringSvc := services.NewCourseAuthoringService(api)

	clock := services.NewClock()
	StartClock(clock)

	// Handlers
	pages := handlers.NewPages(renderer, clock)
	h := routes.Handlers{
		Pages:      pages,
		Home:       handlers.NewHomeHandler(),
		Dashboard:  handlers.NewDashboardHandler(pages, dashboardSvc),
		Viewer:     handlers.NewViewerHandler(pages, viewerSvc, dashboardSvc.ViewerStudent()),
		Catalog:    handlers.NewCatalogHandler(pages, catalogSvc, blogSvc),
		Jobs:       handlers.NewJobsHandler(pages, jobsSvc, boardSvc),
		People:     handlers.NewPeopleHandler(pages, peopleSvc),
		Assessment: handlers.NewAssessmentHandler(assessmentSvc),
		Authoring:  handlers.NewAuthoringHandler(authoringSvc, blogSvc),
	}

	router := mux.NewRouter()
	routes.InitRoutes(router, h, store, codec)

	cleanup := func() {
		clock.Stop()
		if err := store.Close(); err != nil {
			logger.Log.Warn("session store close failed", zap.Error(err))
		}
	}
	return router, cleanup, nil
}

// StartClock refreshes the header clock once a minute.
func StartClock(clock *services.Clock) {
	clock.Start(clockEvery)
}

func newSessionStore(cfg *config.Config) (session.Store, error) {
	if cfg.SessionStore == "redis" {
		ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
		defer cancel()
		store, err := session.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL)
		if err != nil {
			return nil, fmt.Errorf("session store: %w", err)
		}
		logger.Log.Info("session store: redis", zap.String("addr", cfg.RedisAddr), zap.Int("db", cfg.RedisDB))
		return store, nil
	}
	logger.Log.Info("session store: memory", zap.Duration("ttl", cfg.SessionTTL))
	return session.NewMemoryStore(cfg.SessionTTL, sweepEvery), nil
}

// sessionSecret falls back to a random per-process key, so sessions do not
// survive a restart without SESSION_SECRET.
func sessionSecret(cfg *config.Config) string {
	if cfg.SessionSecret != "" {
		return cfg.SessionSecret
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic("session secret: " + err.Error())
	}
	return hex.EncodeToString(buf)
}
