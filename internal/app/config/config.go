package config

import (
	"freeslot-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			AccessLogFileName:   utils.GetEnvString("LOGGER_ACCESS_LOG_FILENAME", "access.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       appPort(),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			SubmitEmailMaxRequests:     utils.GetEnvInt("APP_SUBMIT_EMAIL_MAX_REQUEST", 5),
			SubmitEmailPerSeconds:      utils.GetEnvInt("APP_SUBMIT_EMAIL_PER_SECONDS", 60),
			SubmitEmailBlockInSeconds:  utils.GetEnvInt("APP_SUBMIT_EMAIL_BLOCK_IN_SECONDS", 300),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			CompressionLevel:           utils.GetEnvInt("APP_COMPRESSION_LEVEL", 5),
		},
		Workday: Workday{
			Start:              utils.GetEnvString("WORKDAY_START", "08:00"),
			End:                utils.GetEnvString("WORKDAY_END", "16:00"),
			ConvertWindowStart: utils.GetEnvString("CONVERT_WINDOW_START", "09:00"),
			ConvertWindowEnd:   utils.GetEnvString("CONVERT_WINDOW_END", "18:00"),
		},
		Webhook: Webhook{
			EmailConfirmationURL: utils.GetEnvString("WEBHOOK_EMAIL_CONFIRMATION_URL", ""),
			JWTAlg:               utils.GetEnvString("WEBHOOK_JWT_ALG", ""),
			JWTSecret:            utils.GetEnvString("WEBHOOK_JWT_SECRET", ""),
			JWTPrivateKey:        utils.GetEnvString("WEBHOOK_JWT_PRIVATE_KEY", ""),
			HTTPTimeoutInSeconds: utils.GetEnvInt("WEBHOOK_HTTP_TIMEOUT_IN_SECONDS", 15),
		},
	}
}

// appPort prefers APP_PORT and falls back to the bare PORT most hosts inject.
func appPort() string {
	if port := utils.GetEnvString("PORT", ""); port != "" {
		return utils.GetEnvString("APP_PORT", ":"+port)
	}
	return utils.GetEnvString("APP_PORT", ":10000")
}
