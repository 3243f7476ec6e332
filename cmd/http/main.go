package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"vasavimart-service/internal/app/config"
	"vasavimart-service/internal/app/delivery/http/middlewares"
	"vasavimart-service/internal/app/delivery/http/routers"
	"vasavimart-service/internal/app/drivers/database"
	"vasavimart-service/internal/app/drivers/logger"
	"vasavimart-service/internal/app/drivers/messaging"
	"vasavimart-service/internal/app/drivers/storage"
	"vasavimart-service/internal/app/services/auth"
	"vasavimart-service/internal/app/services/bills"
	"vasavimart-service/internal/app/services/categories"
	"vasavimart-service/internal/app/services/orders"
	"vasavimart-service/internal/app/services/products"
	"vasavimart-service/internal/app/services/pushtokens"
	"vasavimart-service/internal/app/services/shared/jwtmanager"
	"vasavimart-service/internal/app/services/shared/otpgateway"
	"vasavimart-service/internal/app/services/shared/push"
	sharedredis "vasavimart-service/internal/app/services/shared/redis"
	sharedstorage "vasavimart-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	logrusLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        database.NewMongoDB(driverConfig),
		Redis:          database.NewRedisClient(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Minio:          storage.NewMinio(driverConfig),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap, logrusLogger)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Sugar().Infof("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, logrusLogger *logrus.Logger) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)
	jwtManager := jwtmanager.NewJWTManager(bootstrap.InternalConfig)
	otpGateway := otpgateway.NewTwoFactorService(bootstrap.InternalConfig, bootstrap.Logger)

	pushService, err := push.NewPushService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.RabbitMQ.PushQueue)
	if err != nil {
		log.Fatalf("Failed to create push service: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, jwtManager, bootstrap.InternalConfig)

	// Auth
	userMongoRepository := auth.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	retention := time.Duration(bootstrap.InternalConfig.JWT.LoginExpTimeInDays) * 24 * time.Hour
	if err := userMongoRepository.EnsureIndexes(context.Background(), retention); err != nil {
		log.Fatalf("Failed to ensure user indexes: %v", err)
	}
	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, otpGateway, jwtManager, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(authUsecase, bootstrap.Logger)

	// Catalog
	categoryMongoRepository := categories.NewCategoryMongoRepository(bootstrap.MongoDB, dbName)
	categoryUsecase := categories.NewCategoryUsecase(categoryMongoRepository, redisRepository, bootstrap.Logger)
	categoryController := categories.NewCategoryController(categoryUsecase, bootstrap.Logger)

	productMongoRepository := products.NewProductMongoRepository(bootstrap.MongoDB, dbName)
	productUsecase := products.NewProductUsecase(productMongoRepository, categoryMongoRepository, bootstrap.Logger)
	productController := products.NewProductController(productUsecase, bootstrap.Logger)

	// Orders
	orderMongoRepository := orders.NewOrderMongoRepository(bootstrap.MongoDB, dbName)
	orderUsecase := orders.NewOrderUsecase(orderMongoRepository, pushService, bootstrap.Logger)
	orderController := orders.NewOrderController(orderUsecase, bootstrap.Logger)

	// Bills
	billUsecase := bills.NewBillUsecase(orderMongoRepository, minioStorage, bootstrap.InternalConfig, bootstrap.Logger)
	billController := bills.NewBillController(billUsecase, bootstrap.Logger)

	// Push tokens + delivery worker
	expoTokenMongoRepository := pushtokens.NewExpoTokenMongoRepository(bootstrap.MongoDB, dbName)
	if err := expoTokenMongoRepository.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to ensure expo token indexes: %v", err)
	}
	expoTokenUsecase := pushtokens.NewExpoTokenUsecase(expoTokenMongoRepository, bootstrap.Logger)
	expoTokenController := pushtokens.NewExpoTokenController(expoTokenUsecase, bootstrap.Logger)

	pushWorker := push.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, bootstrap.RabbitMQ, expoTokenMongoRepository)
	workerStop, err := pushWorker.Start(context.Background())
	if err != nil {
		log.Fatalf("Failed to start push worker: %v", err)
	}
	bootstrap.WorkerStop = workerStop

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		logrusLogger,
		authController,
		productController,
		categoryController,
		orderController,
		billController,
		expoTokenController,
	)
}
