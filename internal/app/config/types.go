package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Log            *zap.Logger
		BootstrapLog   *logrus.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App        App
		LabGateway LabGateway
		Workflow   Workflow
	}

	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
	}

	App struct {
		Env             string
		Port            string
		Version         string
		Timezone        string
		EndpointPrefix  string
		MaxRequests     int
		ShutdownTimeout int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	LabGateway struct {
		BaseUrl           string
		RequestsPerSecond float64
		TimeoutInSeconds  int
	}

	Workflow struct {
		TotalDurationInMs   int
		TickIntervalInMs    int
		HandoffTTLInMinutes int
		AuditQueueName      string
	}
)
