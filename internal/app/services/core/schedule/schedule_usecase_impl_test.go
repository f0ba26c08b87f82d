package schedule

import (
	"context"
	"errors"
	"freeslot-service/internal/app/config"
	"freeslot-service/internal/pkg/constvars"
	"freeslot-service/internal/pkg/dto/requests"
	"freeslot-service/internal/pkg/dto/responses"
	"freeslot-service/internal/pkg/exceptions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Workday: config.Workday{
			Start:              "08:00",
			End:                "16:00",
			ConvertWindowStart: "09:00",
			ConvertWindowEnd:   "18:00",
		},
	}
}

func newTestScheduleUsecase(t *testing.T) *scheduleUsecase {
	t.Helper()
	usecase, err := NewScheduleUsecase(newTestInternalConfig(), zap.NewNop())
	require.NoError(t, err)
	return usecase.(*scheduleUsecase)
}

func requireCustomError(t *testing.T, err error, statusCode int, clientMessage string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "error should be a CustomError")
	assert.Equal(t, statusCode, customErr.StatusCode)
	assert.Equal(t, clientMessage, customErr.ClientMessage)
}

func TestNewScheduleUsecase_InvalidWorkingHours(t *testing.T) {
	internalConfig := newTestInternalConfig()
	internalConfig.Workday.Start = "17:00"

	usecase, err := NewScheduleUsecase(internalConfig, zap.NewNop())

	assert.Error(t, err)
	assert.Nil(t, usecase)
}

func TestScheduleUsecase_FindFreeSlots(t *testing.T) {
	usecase := newTestScheduleUsecase(t)
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "test-request-id")

	t.Run("Free Slots Around A Meeting", func(t *testing.T) {
		request := &requests.OccupiedSlots{Value: []requests.TimeInterval{
			{Start: "2024-03-12T10:00:00Z", End: "2024-03-12T11:30:00Z"},
		}}

		response, err := usecase.FindFreeSlots(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, []responses.TimeInterval{
			{Start: "2024-03-12T08:00:00.000Z", End: "2024-03-12T10:00:00.000Z"},
			{Start: "2024-03-12T11:30:00.000Z", End: "2024-03-12T16:00:00.000Z"},
		}, response.FreeSlots)
	})

	t.Run("Full Coverage Yields Empty List", func(t *testing.T) {
		request := &requests.OccupiedSlots{Value: []requests.TimeInterval{
			{Start: "2024-03-12T08:00:00Z", End: "2024-03-12T16:00:00Z"},
		}}

		response, err := usecase.FindFreeSlots(ctx, request)

		require.NoError(t, err)
		assert.NotNil(t, response.FreeSlots)
		assert.Empty(t, response.FreeSlots)
	})

	t.Run("Offsets Are Normalised To UTC", func(t *testing.T) {
		request := &requests.OccupiedSlots{Value: []requests.TimeInterval{
			{Start: "2024-03-12T11:00:00+02:00", End: "2024-03-12T12:00:00+02:00"},
		}}

		response, err := usecase.FindFreeSlots(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, []responses.TimeInterval{
			{Start: "2024-03-12T08:00:00.000Z", End: "2024-03-12T09:00:00.000Z"},
			{Start: "2024-03-12T10:00:00.000Z", End: "2024-03-12T16:00:00.000Z"},
		}, response.FreeSlots)
	})

	t.Run("Slot Ending At Midnight Is Accepted", func(t *testing.T) {
		request := &requests.OccupiedSlots{Value: []requests.TimeInterval{
			{Start: "2024-03-12T15:00:00Z", End: "2024-03-13T00:00:00Z"},
		}}

		response, err := usecase.FindFreeSlots(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, []responses.TimeInterval{
			{Start: "2024-03-12T08:00:00.000Z", End: "2024-03-12T15:00:00.000Z"},
		}, response.FreeSlots)
	})

	t.Run("Empty Value", func(t *testing.T) {
		_, err := usecase.FindFreeSlots(ctx, &requests.OccupiedSlots{})

		requireCustomError(t, err, http.StatusBadRequest, constvars.ErrClientInvalidOccupiedSlots)
	})

	t.Run("Slots On Different Days", func(t *testing.T) {
		request := &requests.OccupiedSlots{Value: []requests.TimeInterval{
			{Start: "2024-03-12T10:00:00Z", End: "2024-03-12T11:00:00Z"},
			{Start: "2024-03-13T10:00:00Z", End: "2024-03-13T11:00:00Z"},
		}}

		_, err := usecase.FindFreeSlots(ctx, request)

		requireCustomError(t, err, http.StatusBadRequest, constvars.ErrClientSlotsSpanMultipleDays)
	})

	t.Run("Slot Ending Before It Starts", func(t *testing.T) {
		request := &requests.OccupiedSlots{Value: []requests.TimeInterval{
			{Start: "2024-03-12T11:00:00Z", End: "2024-03-12T10:00:00Z"},
		}}

		_, err := usecase.FindFreeSlots(ctx, request)

		requireCustomError(t, err, http.StatusBadRequest, constvars.ErrClientSlotEndsBeforeStart)
	})

	t.Run("Unparseable Datetime", func(t *testing.T) {
		request := &requests.OccupiedSlots{Value: []requests.TimeInterval{
			{Start: "not-a-date", End: "2024-03-12T10:00:00Z"},
		}}

		_, err := usecase.FindFreeSlots(ctx, request)

		requireCustomError(t, err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest)
	})
}

func TestScheduleUsecase_ExtendToNextWorkday(t *testing.T) {
	usecase := newTestScheduleUsecase(t)
	ctx := context.Background()

	t.Run("Friday Extends To Monday", func(t *testing.T) {
		response, err := usecase.ExtendToNextWorkday(ctx, &requests.ExtendSlot{RequestedDatetime: "2024-03-15T10:00:00"})

		require.NoError(t, err)
		assert.Equal(t, &responses.WorkdayWindow{Start: "2024-03-18T08:00:00Z", End: "2024-03-18T16:00:00Z"}, response)
	})

	t.Run("Plain Date Is Accepted", func(t *testing.T) {
		response, err := usecase.ExtendToNextWorkday(ctx, &requests.ExtendSlot{RequestedDatetime: "2024-03-12"})

		require.NoError(t, err)
		assert.Equal(t, "2024-03-13T08:00:00Z", response.Start)
	})

	t.Run("Missing Datetime", func(t *testing.T) {
		_, err := usecase.ExtendToNextWorkday(ctx, &requests.ExtendSlot{})

		requireCustomError(t, err, http.StatusBadRequest, constvars.ErrClientRequestedDatetimeRequired)
	})

	t.Run("Invalid Datetime", func(t *testing.T) {
		_, err := usecase.ExtendToNextWorkday(ctx, &requests.ExtendSlot{RequestedDatetime: "tomorrow"})

		requireCustomError(t, err, http.StatusBadRequest, constvars.ErrClientRequestedDatetimeInvalid)
	})
}

func TestScheduleUsecase_ConvertDate(t *testing.T) {
	usecase := newTestScheduleUsecase(t)
	ctx := context.Background()

	t.Run("Same Date Fixed Window", func(t *testing.T) {
		response, err := usecase.ConvertDate(ctx, &requests.ConvertDate{Date: "2024-03-12T21:15:00Z"})

		require.NoError(t, err)
		assert.Equal(t, &responses.ConvertedDate{StartTime: "2024-03-12T09:00:00Z", EndTime: "2024-03-12T18:00:00Z"}, response)
	})

	t.Run("Missing Date", func(t *testing.T) {
		_, err := usecase.ConvertDate(ctx, &requests.ConvertDate{Date: "  "})

		requireCustomError(t, err, http.StatusBadRequest, constvars.ErrClientConvertDateRequired)
	})

	t.Run("Invalid Date", func(t *testing.T) {
		_, err := usecase.ConvertDate(ctx, &requests.ConvertDate{Date: "31/12/2024"})

		requireCustomError(t, err, http.StatusBadRequest, constvars.ErrClientConvertDateInvalid)
	})
}
