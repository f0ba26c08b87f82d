package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Logger         *zap.Logger
		AccessLogger   *logrus.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App     App
		Workday Workday
		Webhook Webhook
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		MaxRequests                int
		ShutdownTimeout            int
		SubmitEmailMaxRequests     int
		SubmitEmailPerSeconds      int
		SubmitEmailBlockInSeconds  int
		RequestBodyLimitInMegabyte int
		// CompressionLevel of 0 leaves responses uncompressed.
		CompressionLevel int
	}

	// Workday holds the wall-clock working hours, formatted as HH:MM in UTC.
	Workday struct {
		Start              string
		End                string
		ConvertWindowStart string
		ConvertWindowEnd   string
	}

	// Webhook calls carry a bearer token when JWTSecret or JWTPrivateKey is set.
	Webhook struct {
		EmailConfirmationURL string
		JWTAlg               string
		JWTSecret            string
		JWTPrivateKey        string
		HTTPTimeoutInSeconds int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
		AccessLogFileName   string
	}
)
