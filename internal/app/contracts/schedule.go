package contracts

import (
	"context"
	"freeslot-service/internal/pkg/dto/requests"
	"freeslot-service/internal/pkg/dto/responses"
)

type ScheduleUsecase interface {
	FindFreeSlots(ctx context.Context, request *requests.OccupiedSlots) (*responses.FreeSlots, error)
	ExtendToNextWorkday(ctx context.Context, request *requests.ExtendSlot) (*responses.WorkdayWindow, error)
	ConvertDate(ctx context.Context, request *requests.ConvertDate) (*responses.ConvertedDate, error)
}
