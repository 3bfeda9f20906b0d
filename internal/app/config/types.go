package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Logger         *zap.Logger
		AccessLog      *logrus.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App App
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                      string
		Port                     string
		Version                  string
		Timezone                 string
		EndpointPrefix           string
		MaxRequests              int
		ShutdownTimeout          int
		AssignRateLimitPerMinute int
		AssignRateLimitBlockSecs int
		RabbitMQTimetableQueue   string
		ClassCacheTTLSeconds     int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
