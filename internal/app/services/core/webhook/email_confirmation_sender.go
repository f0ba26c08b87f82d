package webhook

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"freeslot-service/internal/app/config"
	"freeslot-service/internal/app/contracts"
	"freeslot-service/internal/app/services/shared/jwtmanager"
	"freeslot-service/internal/pkg/constvars"
	"freeslot-service/internal/pkg/dto/requests"
	"freeslot-service/internal/pkg/exceptions"
	"freeslot-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const defaultHTTPTimeoutInSeconds = 15

type emailConfirmationSender struct {
	InternalConfig *config.InternalConfig
	JWTManager     *jwtmanager.JWTManager
	Log            *zap.Logger
	httpClient     *http.Client
}

type emailConfirmationPayload struct {
	ClientKey string `json:"clientKey"`
	Email     string `json:"email"`
}

// NewEmailConfirmationSender builds the sender. A nil jwtManager sends calls
// without an Authorization header.
func NewEmailConfirmationSender(internalConfig *config.InternalConfig, jwtManager *jwtmanager.JWTManager, logger *zap.Logger) contracts.EmailConfirmationSender {
	timeoutSeconds := defaultHTTPTimeoutInSeconds
	if internalConfig.Webhook.HTTPTimeoutInSeconds > 0 {
		timeoutSeconds = internalConfig.Webhook.HTTPTimeoutInSeconds
	}

	return &emailConfirmationSender{
		InternalConfig: internalConfig,
		JWTManager:     jwtManager,
		Log:            logger,
		httpClient:     &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
	}
}

// SendEmailConfirmation posts {clientKey, email} once. Any 2xx counts as
// delivered; everything else is reported with a bounded copy of the body.
func (s *emailConfirmationSender) SendEmailConfirmation(ctx context.Context, request *requests.EmailConfirmation) error {
	requestID := utils.GetRequestID(ctx)

	targetURL := strings.TrimSpace(s.InternalConfig.Webhook.EmailConfirmationURL)
	if targetURL == "" {
		s.Log.Error("emailConfirmationSender.SendEmailConfirmation webhook url is empty",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return exceptions.ErrWebhookNotConfigured()
	}

	bodyBytes, err := json.Marshal(emailConfirmationPayload{
		ClientKey: request.ClientKey,
		Email:     request.Email,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	if s.JWTManager != nil {
		token, err := s.JWTManager.CreateToken(ctx, constvars.WebhookSubjectEmail)
		if err != nil {
			return exceptions.ErrWebhookSignToken(err)
		}
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.Log.Error("emailConfirmationSender.SendEmailConfirmation error calling webhook",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWebhookURLKey, targetURL),
			zap.Error(err),
		)
		return exceptions.ErrUpstreamDelivery(err, 0, "")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		io.Copy(io.Discard, io.LimitReader(resp.Body, constvars.WebhookMaxErrorBody))
		s.Log.Info("emailConfirmationSender.SendEmailConfirmation webhook sent successfully",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil
	}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, constvars.WebhookMaxErrorBody))
	s.Log.Error("emailConfirmationSender.SendEmailConfirmation webhook returned unexpected status",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWebhookURLKey, targetURL),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.String(constvars.LoggingResponseKey, string(b)),
	)
	return exceptions.ErrUpstreamDelivery(nil, resp.StatusCode, string(b))
}
