package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"talent-hub/internal/config"
	"talent-hub/internal/database"
	"talent-hub/internal/database/filestore"
	dbpostgres "talent-hub/internal/database/postgres"
	"talent-hub/internal/infrastructure/cache"
	"talent-hub/internal/pkg/jwt"
	"talent-hub/internal/repository"
	"talent-hub/internal/usecase"
	"talent-hub/internal/ws"
)

// Container builds and owns every long-lived dependency: the snapshot store,
// the cache, the websocket hub and the usecases on top of them.
type Container struct {
	Config config.Config
	Logger *log.Logger

	Store *repository.Store
	Cache *cache.Redis
	Hub   *ws.Hub
	JWT   jwt.Service

	Auth      usecase.AuthUsecase
	Scales    usecase.ScaleUsecase
	Catalog   usecase.CatalogUsecase
	Clients   usecase.ClientUsecase
	Members   usecase.MemberUsecase
	Profiles  usecase.ProfileUsecase
	Gradings  usecase.GradingUsecase
	Goals     usecase.GoalUsecase
	Analytics usecase.AnalyticsUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	backend, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := repository.Open(ctx, backend, logger)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	hub := ws.NewHub(logger)
	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn, cfg.JWT.RefreshExpiresIn,
	)

	scaleRepo := repository.NewSnapshotScaleRepository(store)
	skillRepo := repository.NewSnapshotSkillRepository(store)
	clientRepo := repository.NewSnapshotClientRepository(store)
	memberRepo := repository.NewSnapshotMemberRepository(store)
	profileRepo := repository.NewSnapshotProfileRepository(store)
	gradingRepo := repository.NewSnapshotGradingRepository(store)
	goalRepo := repository.NewSnapshotGoalRepository(store)
	analyticsRepo := repository.NewSnapshotAnalyticsRepository(store)
	adminRepo := repository.NewSnapshotAdminRepository(store)

	notify := &changeNotifier{feed: ws.NewNotifier(hub), cache: redisCache}

	grading := usecase.NewGradingUsecase(gradingRepo, skillRepo, scaleRepo, memberRepo, notify, cfg.App.StrictGradingLevels)

	return &Container{
		Config: cfg,
		Logger: logger,
		Store:  store,
		Cache:  redisCache,
		Hub:    hub,
		JWT:    jwtSvc,

		Auth:      usecase.NewAuthUsecase(adminRepo, jwtSvc),
		Scales:    usecase.NewScaleUsecase(scaleRepo, notify),
		Catalog:   usecase.NewCatalogUsecase(skillRepo, scaleRepo, notify),
		Clients:   usecase.NewClientUsecase(clientRepo, notify),
		Members:   usecase.NewMemberUsecase(memberRepo, profileRepo, goalRepo, grading, notify),
		Profiles:  usecase.NewProfileUsecase(profileRepo, clientRepo, notify),
		Gradings:  grading,
		Goals:     usecase.NewGoalUsecase(goalRepo, gradingRepo, grading, notify),
		Analytics: usecase.NewAnalyticsUsecase(analyticsRepo, memberRepo, redisCache, cfg.Redis.AnalyticsCacheTTL),
	}, nil
}

func openBackend(ctx context.Context, cfg config.Config) (database.SnapshotStore, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		return dbpostgres.Connect(ctx, cfg.Database)
	case config.StorageDriverFile:
		return filestore.New(cfg.Storage.DataFile)
	}
	return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.Store != nil {
		return c.Store.Close()
	}
	return nil
}

// changeNotifier fans a mutation signal out to the websocket feed and drops
// the cached analytics derived from the changed data.
type changeNotifier struct {
	feed  *ws.Notifier
	cache *cache.Redis
}

func (n *changeNotifier) EntityChanged(entity, action string, id int64) {
	n.feed.EntityChanged(entity, action, id)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = n.cache.DeleteByPattern(ctx, "analytics:*")
}
