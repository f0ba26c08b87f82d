package controllers

import (
	"freeslot-service/internal/app/contracts"
	"freeslot-service/internal/pkg/constvars"
	"freeslot-service/internal/pkg/dto/requests"
	"freeslot-service/internal/pkg/exceptions"
	"freeslot-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
}

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
	}
}

func (ctrl *ScheduleController) FindFreeSlots(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ScheduleController.FindFreeSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.OccupiedSlots)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("ScheduleController.FindFreeSlots error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidOccupiedSlots(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ScheduleController.FindFreeSlots validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if field, _ := exceptions.FirstValidationFailure(err); field == constvars.FieldOccupiedSlots {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidOccupiedSlots(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.ScheduleUsecase.FindFreeSlots(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("ScheduleController.FindFreeSlots error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ScheduleController.FindFreeSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseFreeSlotsComputed, response)
}

func (ctrl *ScheduleController) ExtendToNextWorkday(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ScheduleController.ExtendToNextWorkday called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ExtendSlot)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("ScheduleController.ExtendToNextWorkday error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ScheduleController.ExtendToNextWorkday validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if _, tag := exceptions.FirstValidationFailure(err); tag == "required" {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRequestedDatetimeRequired(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRequestedDatetimeInvalid(err))
		return
	}

	response, err := ctrl.ScheduleUsecase.ExtendToNextWorkday(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("ScheduleController.ExtendToNextWorkday error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSlotExtended, response)
}

func (ctrl *ScheduleController) ConvertDate(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ScheduleController.ConvertDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ConvertDate)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("ScheduleController.ConvertDate error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		if _, tag := exceptions.FirstValidationFailure(err); tag == "required" {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrConvertDateRequired(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrConvertDateInvalid(err))
		return
	}

	response, err := ctrl.ScheduleUsecase.ConvertDate(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseDateConverted, response)
}
