package confirmations

import (
	"context"
	"freeslot-service/internal/app/contracts"
	"freeslot-service/internal/pkg/constvars"
	"freeslot-service/internal/pkg/dto/requests"
	"freeslot-service/internal/pkg/exceptions"
	"freeslot-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

type confirmationUsecase struct {
	EmailConfirmationSender contracts.EmailConfirmationSender
	Log                     *zap.Logger
}

func NewConfirmationUsecase(sender contracts.EmailConfirmationSender, logger *zap.Logger) contracts.EmailConfirmationUsecase {
	return &confirmationUsecase{
		EmailConfirmationSender: sender,
		Log:                     logger,
	}
}

func (uc *confirmationUsecase) ConfirmEmail(ctx context.Context, request *requests.EmailConfirmation) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("confirmationUsecase.ConfirmEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientKeyKey, request.ClientKey),
	)

	request.ClientKey = strings.TrimSpace(request.ClientKey)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))

	err := utils.ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}

	err = utils.LogOperation(uc.Log, "send_email_confirmation", requestID, func() error {
		return uc.EmailConfirmationSender.SendEmailConfirmation(ctx, request)
	})
	if err != nil {
		return err
	}

	utils.LogBusinessEvent(uc.Log, "email_confirmed", requestID,
		zap.String(constvars.LoggingClientKeyKey, request.ClientKey),
	)
	return nil
}
