package config

import (
	"vasavimart-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "vasavimart"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":3000"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 30),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			OTPCooldownInSeconds:     utils.GetEnvInt("APP_OTP_COOLDOWN_IN_SECONDS", 30),
		},
		JWT: JWT{
			Secret:                    utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ChallengeExpTimeInMinutes: utils.GetEnvInt("JWT_CHALLENGE_EXP_TIME_IN_MINUTES", 10),
			LoginExpTimeInDays:        utils.GetEnvInt("JWT_LOGIN_EXP_TIME_IN_DAYS", 180),
		},
		TwoFactor: TwoFactor{
			APIKey:                  utils.GetEnvString("TWO_FACTOR_API_KEY", ""),
			BaseUrl:                 utils.GetEnvString("TWO_FACTOR_BASE_URL", "https://2factor.in/API/V1"),
			RequestTimeoutInSeconds: utils.GetEnvInt("TWO_FACTOR_REQUEST_TIMEOUT_IN_SECONDS", 10),
			MaxRequestsPerSecond:    utils.GetEnvInt("TWO_FACTOR_MAX_REQUESTS_PER_SECOND", 5),
		},
		Expo: Expo{
			PushUrl:                 utils.GetEnvString("EXPO_PUSH_URL", "https://exp.host/--/api/v2/push/send"),
			RequestTimeoutInSeconds: utils.GetEnvInt("EXPO_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		RabbitMQ: AppRabbitMQ{
			PushQueue: utils.GetEnvString("APP_RABBITMQ_PUSH_QUEUE", "push_notifications"),
		},
		Minio: AppMinio{
			BucketName: utils.GetEnvString("APP_MINIO_BUCKET_NAME", "bills"),
		},
	}
}
