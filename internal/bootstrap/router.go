package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/talohastudios/die-project-finder/internal/analytics"
	httpapi "github.com/talohastudios/die-project-finder/internal/api/http"
	"github.com/talohastudios/die-project-finder/internal/api/http/middleware"
	"github.com/talohastudios/die-project-finder/internal/catalog"
	quizhttp "github.com/talohastudios/die-project-finder/internal/quiz/http"
	"github.com/talohastudios/die-project-finder/internal/quiz/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	Redis       *redis.Client
	Quiz        *service.QuizService
	Catalog     catalog.Source
	Dies        catalog.DieLister
	Analytics   analytics.Recorder
	Log         *zap.Logger
}

func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.RequestID(dep.Log))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	quizhttp.New(dep.Quiz).Register(api)
	catalog.Register(api.Group("/catalog"), dep.Catalog, dep.Dies)
	analytics.Register(api.Group("/analytics"), dep.Analytics, dep.Log)

	return r
}
