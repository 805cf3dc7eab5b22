package config

import (
	"labportal-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		LabGateway: LabGateway{
			BaseUrl:           utils.GetEnvString("LAB_GATEWAY_BASE_URL", "http://localhost:5000/api"),
			RequestsPerSecond: utils.GetEnvFloat("LAB_GATEWAY_REQUESTS_PER_SECOND", 20),
			TimeoutInSeconds:  utils.GetEnvInt("LAB_GATEWAY_TIMEOUT_IN_SECONDS", 10),
		},
		Workflow: Workflow{
			TotalDurationInMs:   utils.GetEnvInt("WORKFLOW_TOTAL_DURATION_IN_MS", 6000),
			TickIntervalInMs:    utils.GetEnvInt("WORKFLOW_TICK_INTERVAL_IN_MS", 50),
			HandoffTTLInMinutes: utils.GetEnvInt("WORKFLOW_HANDOFF_TTL_IN_MINUTES", 30),
			AuditQueueName:      utils.GetEnvString("WORKFLOW_AUDIT_QUEUE_NAME", "lab_result_events"),
		},
	}
}
