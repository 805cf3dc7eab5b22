package main

import (
	"context"
	"labportal-service/internal/app/config"
	"labportal-service/internal/app/delivery/http/middlewares"
	"labportal-service/internal/app/delivery/http/routers"
	"labportal-service/internal/app/drivers/database"
	"labportal-service/internal/app/drivers/logger"
	"labportal-service/internal/app/drivers/messaging"
	"labportal-service/internal/app/services/core/workflow"
	"labportal-service/internal/app/services/gateway/gatewayhttp"
	"labportal-service/internal/app/services/gateway/instruments"
	"labportal-service/internal/app/services/gateway/orders"
	"labportal-service/internal/app/services/gateway/reagents"
	"labportal-service/internal/app/services/gateway/results"
	"labportal-service/internal/app/services/shared/events"
	sharedredis "labportal-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootstrapLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootstrapLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	redisClient := database.NewRedisClient(driverConfig, bootstrapLog)
	rabbitConn := messaging.NewRabbitMQ(driverConfig, bootstrapLog)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Log:            log,
		BootstrapLog:   bootstrapLog,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootstrapLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootstrapLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		bootstrapLog.Fatalf("Server forced to shutdown: %v", err)
	}

	bootstrapLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Lab gateway clients share one throttled HTTP client
	gatewayClient := gatewayhttp.NewClient(
		time.Duration(bootstrap.InternalConfig.LabGateway.TimeoutInSeconds)*time.Second,
		bootstrap.InternalConfig.LabGateway.RequestsPerSecond,
	)
	baseUrl := bootstrap.InternalConfig.LabGateway.BaseUrl
	instrumentClient := instruments.NewInstrumentRestClient(baseUrl, gatewayClient)
	reagentClient := reagents.NewReagentRestClient(baseUrl, gatewayClient)
	orderClient := orders.NewOrderRestClient(baseUrl, gatewayClient)
	resultClient := results.NewResultRestClient(baseUrl, gatewayClient)

	// Redis
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)

	// Audit events
	resultEventPublisher, err := events.NewResultEventPublisher(
		bootstrap.RabbitMQ,
		bootstrap.Log,
		bootstrap.InternalConfig.Workflow.AuditQueueName,
	)
	if err != nil {
		bootstrap.BootstrapLog.Fatalf("Failed to set up result event publisher: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Log, bootstrap.InternalConfig)

	// Workflow
	readinessGate := workflow.NewReadinessGate(instrumentClient, bootstrap.Log)
	reservationCoordinator := workflow.NewReservationCoordinator(reagentClient, bootstrap.Log)
	lifecycleCoordinator := workflow.NewLifecycleCoordinator(orderClient, resultClient, resultEventPublisher, bootstrap.Log)
	workflowUsecase := workflow.NewWorkflowUsecase(
		readinessGate,
		reservationCoordinator,
		lifecycleCoordinator,
		orderClient,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.Log,
	)
	workflowController := workflow.NewWorkflowController(bootstrap.Log, workflowUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, workflowController)
}
