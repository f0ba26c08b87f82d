package routers

import (
	"bytes"
	"context"
	"freeslot-service/internal/app/config"
	"freeslot-service/internal/app/delivery/http/controllers"
	"freeslot-service/internal/app/delivery/http/middlewares"
	"freeslot-service/internal/app/services/core/schedule"
	"freeslot-service/internal/pkg/constvars"
	"freeslot-service/internal/pkg/dto/requests"
	"freeslot-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockScheduleUsecase struct {
	mock.Mock
}

func (m *MockScheduleUsecase) FindFreeSlots(ctx context.Context, request *requests.OccupiedSlots) (*responses.FreeSlots, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.FreeSlots), args.Error(1)
}

func (m *MockScheduleUsecase) ExtendToNextWorkday(ctx context.Context, request *requests.ExtendSlot) (*responses.WorkdayWindow, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.WorkdayWindow), args.Error(1)
}

func (m *MockScheduleUsecase) ConvertDate(ctx context.Context, request *requests.ConvertDate) (*responses.ConvertedDate, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ConvertedDate), args.Error(1)
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func newTestInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			Env:                        "development",
			Timezone:                   "UTC",
			MaxRequests:                1000,
			SubmitEmailMaxRequests:     100,
			SubmitEmailPerSeconds:      60,
			SubmitEmailBlockInSeconds:  300,
			RequestBodyLimitInMegabyte: 1,
		},
		Workday: config.Workday{
			Start:              "08:00",
			End:                "16:00",
			ConvertWindowStart: "09:00",
			ConvertWindowEnd:   "18:00",
		},
	}
}

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestScheduleRouter_WithScheduleUsecase(t *testing.T) {
	logger := zap.NewNop()
	internalConfig := newTestInternalConfig()

	scheduleUsecase, err := schedule.NewScheduleUsecase(internalConfig, logger)
	require.NoError(t, err)

	middlewareInstance := middlewares.NewMiddlewares(logger, internalConfig)
	router := chi.NewRouter()
	attachScheduleRoutes(router, middlewareInstance, controllers.NewScheduleController(logger, scheduleUsecase))

	t.Run("Occupied Slots Returns Free Slots", func(t *testing.T) {
		rr := postJSON(router, "/occupied-slots", `{"value":[{"start":"2024-03-12T09:00:00Z","end":"2024-03-12T10:00:00Z"},{"start":"2024-03-12T13:00:00Z","end":"2024-03-12T14:30:00Z"}]}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeEnvelope(t, rr)
		assert.True(t, body.Success)
		assert.JSONEq(t, `{"free_slots":[
			{"start":"2024-03-12T08:00:00.000Z","end":"2024-03-12T09:00:00.000Z"},
			{"start":"2024-03-12T10:00:00.000Z","end":"2024-03-12T13:00:00.000Z"},
			{"start":"2024-03-12T14:30:00.000Z","end":"2024-03-12T16:00:00.000Z"}
		]}`, string(body.Data))
	})

	t.Run("Overlapping Slots", func(t *testing.T) {
		rr := postJSON(router, "/occupied-slots", `{"value":[{"start":"2024-03-12T08:00:00Z","end":"2024-03-12T10:00:00Z"},{"start":"2024-03-12T09:00:00Z","end":"2024-03-12T11:00:00Z"}]}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"free_slots":[{"start":"2024-03-12T11:00:00.000Z","end":"2024-03-12T16:00:00.000Z"}]}`, string(decodeEnvelope(t, rr).Data))
	})

	t.Run("Full Coverage Encodes Empty Array", func(t *testing.T) {
		rr := postJSON(router, "/occupied-slots", `{"value":[{"start":"2024-03-12T07:00:00Z","end":"2024-03-12T17:00:00Z"}]}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"free_slots":[]}`, string(decodeEnvelope(t, rr).Data))
	})

	t.Run("Missing Value", func(t *testing.T) {
		rr := postJSON(router, "/occupied-slots", `{}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.ErrClientInvalidOccupiedSlots, decodeEnvelope(t, rr).Message)
	})

	t.Run("Empty Value", func(t *testing.T) {
		rr := postJSON(router, "/occupied-slots", `{"value":[]}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.ErrClientInvalidOccupiedSlots, decodeEnvelope(t, rr).Message)
	})

	t.Run("Value Is Not A List", func(t *testing.T) {
		rr := postJSON(router, "/occupied-slots", `{"value":"busy"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.ErrClientInvalidOccupiedSlots, decodeEnvelope(t, rr).Message)
	})

	t.Run("Slot Missing End", func(t *testing.T) {
		rr := postJSON(router, "/occupied-slots", `{"value":[{"start":"2024-03-12T09:00:00Z"}]}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "value[0].end is required", decodeEnvelope(t, rr).Message)
	})

	t.Run("Slots Across Days", func(t *testing.T) {
		rr := postJSON(router, "/occupied-slots", `{"value":[{"start":"2024-03-12T09:00:00Z","end":"2024-03-13T10:00:00Z"}]}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.ErrClientSlotsSpanMultipleDays, decodeEnvelope(t, rr).Message)
	})

	t.Run("Extend Friday To Monday", func(t *testing.T) {
		rr := postJSON(router, "/extend-slots", `{"requested_datetime":"2024-03-15T10:00:00"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"start":"2024-03-18T08:00:00Z","end":"2024-03-18T16:00:00Z"}`, string(decodeEnvelope(t, rr).Data))
	})

	t.Run("Extend Without Datetime", func(t *testing.T) {
		rr := postJSON(router, "/extend-slots", ``)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.ErrClientRequestedDatetimeRequired, decodeEnvelope(t, rr).Message)
	})

	t.Run("Extend With Invalid Datetime", func(t *testing.T) {
		rr := postJSON(router, "/extend-slots", `{"requested_datetime":"next friday"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.ErrClientRequestedDatetimeInvalid, decodeEnvelope(t, rr).Message)
	})

	t.Run("Convert Date", func(t *testing.T) {
		rr := postJSON(router, "/convert-date", `{"date":"2024-03-12T21:00:00.000Z"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"startTime":"2024-03-12T09:00:00Z","endTime":"2024-03-12T18:00:00Z"}`, string(decodeEnvelope(t, rr).Data))
	})

	t.Run("Convert Without Date", func(t *testing.T) {
		rr := postJSON(router, "/convert-date", `{}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.ErrClientConvertDateRequired, decodeEnvelope(t, rr).Message)
	})

	t.Run("Convert Invalid Date", func(t *testing.T) {
		rr := postJSON(router, "/convert-date", `{"date":"not a date"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.ErrClientConvertDateInvalid, decodeEnvelope(t, rr).Message)
	})
}

func TestScheduleRouter_ValidationHappensBeforeUsecase(t *testing.T) {
	logger := zap.NewNop()
	mockScheduleUsecase := new(MockScheduleUsecase)

	router := chi.NewRouter()
	attachScheduleRoutes(router, middlewares.NewMiddlewares(logger, newTestInternalConfig()), controllers.NewScheduleController(logger, mockScheduleUsecase))

	rr := postJSON(router, "/occupied-slots", `{"value":[{"start":"soon","end":"later"}]}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockScheduleUsecase.AssertNotCalled(t, "FindFreeSlots")
}
