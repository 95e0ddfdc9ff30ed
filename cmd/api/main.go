package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/talohastudios/die-project-finder/config"
	"github.com/talohastudios/die-project-finder/internal/analytics"
	"github.com/talohastudios/die-project-finder/internal/bootstrap"
	"github.com/talohastudios/die-project-finder/internal/catalog"
	"github.com/talohastudios/die-project-finder/internal/jobs"
	"github.com/talohastudios/die-project-finder/internal/logger"
	"github.com/talohastudios/die-project-finder/internal/notify"
	"github.com/talohastudios/die-project-finder/internal/quiz/service"
	"github.com/talohastudios/die-project-finder/internal/results"
	"github.com/talohastudios/die-project-finder/internal/storage"
)

const serviceName = "die-project-finder"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog := logger.New(cfg.App.LogLevel, cfg.App.Environment)
	defer zlog.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN()})
	if err != nil {
		zlog.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}
	if err := storage.RunMigrations(ctx, db, migrationsDir, zlog); err != nil {
		zlog.Fatal("run migrations", zap.Error(err))
	}

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		zlog.Fatal("open redis", zap.Error(err))
	}
	defer rdb.Close()

	catalogRepo := catalog.NewRepo(db)
	catalogCache := catalog.NewCache(rdb, catalogRepo, cfg.Catalog.CacheTTL, zlog)
	if err := catalogCache.Refresh(ctx); err != nil {
		// the cache is read-through, a cold start is fine
		zlog.Warn("initial catalog cache prime failed", zap.Error(err))
	}

	resultsRepo := results.NewRepo(db)
	kit := notify.NewKitClient(notify.KitOptions{
		APIKey: cfg.Kit.APIKey,
		FormID: cfg.Kit.FormID,
	}, zlog)

	quizService := service.NewQuizService(catalogCache, resultsRepo, kit, cfg.App.PublicHost, zlog)

	scheduler := jobs.NewScheduler(zlog)
	if err := scheduler.AddCatalogRefresh(cfg.Catalog.RefreshSchedule, catalogCache); err != nil {
		zlog.Fatal("schedule catalog refresh", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		DB:          db,
		Redis:       rdb,
		Quiz:        quizService,
		Catalog:     catalogCache,
		Dies:        catalogRepo,
		Analytics:   analytics.NewRepo(db),
		Log:         zlog,
	})

	zlog.Info("listening", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
