package contracts

import (
	"context"
	"freeslot-service/internal/pkg/dto/requests"
)

// EmailConfirmationSender forwards a confirmed address to the automation webhook.
// Delivery is attempted once and any failure is returned to the caller.
type EmailConfirmationSender interface {
	SendEmailConfirmation(ctx context.Context, request *requests.EmailConfirmation) error
}

type EmailConfirmationUsecase interface {
	ConfirmEmail(ctx context.Context, request *requests.EmailConfirmation) error
}
