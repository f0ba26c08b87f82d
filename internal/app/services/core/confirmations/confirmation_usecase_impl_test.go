package confirmations

import (
	"context"
	"errors"
	"freeslot-service/internal/pkg/dto/requests"
	"freeslot-service/internal/pkg/exceptions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockEmailConfirmationSender struct {
	mock.Mock
}

func (m *MockEmailConfirmationSender) SendEmailConfirmation(ctx context.Context, request *requests.EmailConfirmation) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func TestConfirmationUsecase_ConfirmEmail(t *testing.T) {
	t.Run("Sanitizes And Forwards", func(t *testing.T) {
		sender := new(MockEmailConfirmationSender)
		usecase := NewConfirmationUsecase(sender, zap.NewNop())

		expected := &requests.EmailConfirmation{ClientKey: "client-123", Email: "jane@example.com"}
		sender.On("SendEmailConfirmation", mock.Anything, expected).Return(nil).Once()

		err := usecase.ConfirmEmail(context.Background(), &requests.EmailConfirmation{
			ClientKey: "  client-123 ",
			Email:     " Jane@Example.COM ",
		})

		assert.NoError(t, err)
		sender.AssertExpectations(t)
	})

	t.Run("Invalid Email Is Not Forwarded", func(t *testing.T) {
		sender := new(MockEmailConfirmationSender)
		usecase := NewConfirmationUsecase(sender, zap.NewNop())

		err := usecase.ConfirmEmail(context.Background(), &requests.EmailConfirmation{ClientKey: "client-123", Email: "not-an-email"})

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, "email must be a valid email", customErr.ClientMessage)
		sender.AssertNotCalled(t, "SendEmailConfirmation")
	})

	t.Run("Sender Failure Is Returned", func(t *testing.T) {
		sender := new(MockEmailConfirmationSender)
		usecase := NewConfirmationUsecase(sender, zap.NewNop())

		upstreamErr := exceptions.ErrUpstreamDelivery(nil, http.StatusBadGateway, "")
		sender.On("SendEmailConfirmation", mock.Anything, mock.AnythingOfType("*requests.EmailConfirmation")).Return(upstreamErr).Once()

		err := usecase.ConfirmEmail(context.Background(), &requests.EmailConfirmation{ClientKey: "client-123", Email: "jane@example.com"})

		assert.ErrorIs(t, err, upstreamErr)
		sender.AssertExpectations(t)
	})
}
