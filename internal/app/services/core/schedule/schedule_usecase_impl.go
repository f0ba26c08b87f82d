package schedule

import (
	"context"
	"errors"
	"fmt"
	"freeslot-service/internal/app/config"
	"freeslot-service/internal/app/contracts"
	"freeslot-service/internal/pkg/constvars"
	"freeslot-service/internal/pkg/dto/requests"
	"freeslot-service/internal/pkg/dto/responses"
	"freeslot-service/internal/pkg/exceptions"
	"freeslot-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	WorkingHours  WorkingHours
	ConvertWindow WorkingHours
	Log           *zap.Logger
}

func NewScheduleUsecase(internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.ScheduleUsecase, error) {
	workingHours, err := NewWorkingHours(internalConfig.Workday.Start, internalConfig.Workday.End)
	if err != nil {
		return nil, err
	}

	convertWindow, err := NewWorkingHours(internalConfig.Workday.ConvertWindowStart, internalConfig.Workday.ConvertWindowEnd)
	if err != nil {
		return nil, err
	}

	return &scheduleUsecase{
		WorkingHours:  workingHours,
		ConvertWindow: convertWindow,
		Log:           logger,
	}, nil
}

func (uc *scheduleUsecase) FindFreeSlots(ctx context.Context, request *requests.OccupiedSlots) (*responses.FreeSlots, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.FindFreeSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingOccupiedCountKey, len(request.Value)),
	)

	if len(request.Value) == 0 {
		return nil, exceptions.ErrInvalidOccupiedSlots(nil)
	}

	occupied, err := parseOccupiedSlots(request.Value)
	if err != nil {
		uc.Log.Error("scheduleUsecase.FindFreeSlots error parsing occupied slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	workdayDate := DayStart(occupied[0].Start)
	err = ensureSingleDay(occupied, workdayDate)
	if err != nil {
		uc.Log.Error("scheduleUsecase.FindFreeSlots occupied slots span several days",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	window := uc.WorkingHours.WindowOn(workdayDate)
	freeSlots := CalculateFreeSlots(window, occupied)

	response := &responses.FreeSlots{
		FreeSlots: make([]responses.TimeInterval, 0, len(freeSlots)),
	}
	for _, slot := range freeSlots {
		response.FreeSlots = append(response.FreeSlots, responses.TimeInterval{
			Start: utils.FormatISOMillisUTC(slot.Start),
			End:   utils.FormatISOMillisUTC(slot.End),
		})
	}

	uc.Log.Info("scheduleUsecase.FindFreeSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkdayDateKey, workdayDate.Format(constvars.LayoutDate)),
		zap.Int(constvars.LoggingFreeSlotCountKey, len(response.FreeSlots)),
	)
	return response, nil
}

func (uc *scheduleUsecase) ExtendToNextWorkday(ctx context.Context, request *requests.ExtendSlot) (*responses.WorkdayWindow, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.ExtendToNextWorkday called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requested, err := utils.ParseDatetime(request.RequestedDatetime)
	if errors.Is(err, utils.ErrEmptyDatetime) {
		return nil, exceptions.ErrRequestedDatetimeRequired(nil)
	}
	if err != nil {
		uc.Log.Error("scheduleUsecase.ExtendToNextWorkday error parsing requested datetime",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrRequestedDatetimeInvalid(err)
	}

	window := uc.WorkingHours.WindowOn(NextWorkday(requested))

	uc.Log.Info("scheduleUsecase.ExtendToNextWorkday succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkdayDateKey, window.Start.Format(constvars.LayoutDate)),
	)
	return &responses.WorkdayWindow{
		Start: utils.FormatISOSecondsUTC(window.Start),
		End:   utils.FormatISOSecondsUTC(window.End),
	}, nil
}

func (uc *scheduleUsecase) ConvertDate(ctx context.Context, request *requests.ConvertDate) (*responses.ConvertedDate, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.ConvertDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	date, err := utils.ParseDatetime(request.Date)
	if errors.Is(err, utils.ErrEmptyDatetime) {
		return nil, exceptions.ErrConvertDateRequired(nil)
	}
	if err != nil {
		uc.Log.Error("scheduleUsecase.ConvertDate error parsing date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrConvertDateInvalid(err)
	}

	window := uc.ConvertWindow.WindowOn(date)

	uc.Log.Info("scheduleUsecase.ConvertDate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkdayDateKey, window.Start.Format(constvars.LayoutDate)),
	)
	return &responses.ConvertedDate{
		StartTime: utils.FormatISOSecondsUTC(window.Start),
		EndTime:   utils.FormatISOSecondsUTC(window.End),
	}, nil
}

func parseOccupiedSlots(slots []requests.TimeInterval) ([]TimeInterval, error) {
	occupied := make([]TimeInterval, 0, len(slots))
	for i, slot := range slots {
		start, err := utils.ParseDatetime(slot.Start)
		if err != nil {
			return nil, exceptions.ErrInvalidFormat(err, fmt.Sprintf("value[%d].start", i))
		}
		end, err := utils.ParseDatetime(slot.End)
		if err != nil {
			return nil, exceptions.ErrInvalidFormat(err, fmt.Sprintf("value[%d].end", i))
		}
		if end.Before(start) {
			return nil, exceptions.ErrSlotEndsBeforeStart(i)
		}
		occupied = append(occupied, TimeInterval{Start: start, End: end})
	}
	return occupied, nil
}

// ensureSingleDay rejects slots outside [workdayDate, workdayDate+24h]. A slot
// may end exactly at the following midnight.
func ensureSingleDay(occupied []TimeInterval, workdayDate time.Time) error {
	nextDay := workdayDate.AddDate(0, 0, 1)
	for i, slot := range occupied {
		if slot.Start.Before(workdayDate) || !slot.Start.Before(nextDay) || slot.End.After(nextDay) {
			return exceptions.ErrSlotOutsideWorkdayDate(i, workdayDate.Format(constvars.LayoutDate))
		}
	}
	return nil
}
