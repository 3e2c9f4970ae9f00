package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/cutiepets/admin/internal/pkg/config"
	"github.com/cutiepets/admin/internal/pkg/database"
	"github.com/cutiepets/admin/internal/pkg/health"
	"github.com/cutiepets/admin/internal/pkg/logger"
	"github.com/cutiepets/admin/internal/pkg/middleware"
	nsqpkg "github.com/cutiepets/admin/internal/pkg/nsq"
	"github.com/cutiepets/admin/internal/pkg/server"
	"github.com/cutiepets/admin/internal/pkg/storage"
	"github.com/cutiepets/admin/services/auth"
	authGateway "github.com/cutiepets/admin/services/auth/gateway"
	authHandler "github.com/cutiepets/admin/services/auth/handler"
	authHTTP "github.com/cutiepets/admin/services/auth/handler/http"
	authRepository "github.com/cutiepets/admin/services/auth/repository"
	authUsecase "github.com/cutiepets/admin/services/auth/usecase"
	petsHandler "github.com/cutiepets/admin/services/pets/handler"
	petsHTTP "github.com/cutiepets/admin/services/pets/handler/http"
	petsRepository "github.com/cutiepets/admin/services/pets/repository"
	petsUsecase "github.com/cutiepets/admin/services/pets/usecase"
	productsHandler "github.com/cutiepets/admin/services/products/handler"
	productsHTTP "github.com/cutiepets/admin/services/products/handler/http"
	productsRepository "github.com/cutiepets/admin/services/products/repository"
	productsUsecase "github.com/cutiepets/admin/services/products/usecase"
)

func main() {
	appName := "admin-service"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Outbound mail goes through NSQ when a daemon is configured, otherwise
	// codes are written to the log for local development
	var mailGW auth.MailGW = authGateway.NewLogMailer()
	if configs.NSQ.Enabled {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address, logger.NewAppLogger(configs.Logger.Level, os.Stdout))
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		defer producer.Stop()
		mailGW = authGateway.NewNsqMailer(producer)
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))

	// Image storage backend
	var store storage.Storage
	switch configs.Storage.Backend {
	case "supabase":
		store = storage.NewSupabaseStorage(configs.Storage.SupabaseURL, configs.Storage.SupabaseKey, configs.Storage.SupabaseBucket)
	default:
		localStore, err := storage.NewLocalStorage(configs.Storage.LocalDir, configs.Storage.BaseURL)
		if err != nil {
			zapLogger.Fatal("Failed to initialize local storage", logger.Err(err))
		}
		e.Static(configs.Storage.BaseURL, localStore.Root())
		store = localStore
	}

	// Initialize repositories
	accountRepo := authRepository.NewAccountRepo(postgresClient.GetDB())
	challengeRepo := authRepository.NewChallengeRepo(redisClient)
	petRepo := petsRepository.NewPetRepo(postgresClient.GetDB())
	productRepo := productsRepository.NewProductRepo(postgresClient.GetDB())

	// Initialize usecases
	authUC := authUsecase.NewAuthUC(accountRepo, challengeRepo, mailGW, configs)
	petUC := petsUsecase.NewPetUC(petRepo, store, configs)
	productUC := productsUsecase.NewProductUC(productRepo, store, configs)

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, configs.App.Version)

	// Auth routes are public, everything else sits behind JWT
	authHandler.NewHandler(authHTTP.NewAuthHandler(authUC)).RegisterRoutes(e)

	protected := e.Group("", middleware.JWTMiddleware(configs.JWT))
	petsHandler.NewHandler(petsHTTP.NewPetHandler(petUC)).RegisterRoutes(protected)
	productsHandler.NewHandler(
		productsHTTP.NewProductHandler(productUC),
		productsHTTP.NewCategoryHandler(productUC),
	).RegisterRoutes(protected)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, configs.Server.ShutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
