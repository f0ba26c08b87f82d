package controllers

import (
	"errors"
	"freeslot-service/internal/app/contracts"
	"freeslot-service/internal/app/delivery/http/templates"
	"freeslot-service/internal/pkg/constvars"
	"freeslot-service/internal/pkg/dto/requests"
	"freeslot-service/internal/pkg/exceptions"
	"freeslot-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// EmailConfirmationController serves the browser facing capture flow. Replies
// are plain text or HTML rather than the JSON envelope.
type EmailConfirmationController struct {
	Log                      *zap.Logger
	EmailConfirmationUsecase contracts.EmailConfirmationUsecase
}

func NewEmailConfirmationController(logger *zap.Logger, emailConfirmationUsecase contracts.EmailConfirmationUsecase) *EmailConfirmationController {
	return &EmailConfirmationController{
		Log:                      logger,
		EmailConfirmationUsecase: emailConfirmationUsecase,
	}
}

func (ctrl *EmailConfirmationController) CaptureEmail(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	clientKey := strings.TrimSpace(r.URL.Query().Get(constvars.QueryClientKey))
	if clientKey == "" {
		ctrl.Log.Info("EmailConfirmationController.CaptureEmail client key missing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildTextResponse(w, constvars.StatusBadRequest, constvars.TextClientKeyMissing)
		return
	}

	body, err := templates.RenderCaptureEmail(templates.CaptureEmailPage{
		ClientKey:  clientKey,
		SubmitPath: constvars.RouteSubmitEmail,
	})
	if err != nil {
		utils.BuildTextErrorResponse(ctrl.Log, w, exceptions.ErrRenderTemplate(err, "capture_email.html"), constvars.TextCaptureRenderingFailed)
		return
	}

	utils.BuildHTMLResponse(w, constvars.StatusOK, body)
}

func (ctrl *EmailConfirmationController) SubmitEmail(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("EmailConfirmationController.SubmitEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request, err := ctrl.readSubmission(r)
	if err != nil {
		ctrl.Log.Error("EmailConfirmationController.SubmitEmail error reading submission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildTextErrorResponse(ctrl.Log, w, err, constvars.TextSubmissionFormUnreadable)
		return
	}

	if strings.TrimSpace(request.ClientKey) == "" || strings.TrimSpace(request.Email) == "" {
		utils.BuildTextResponse(w, constvars.StatusBadRequest, constvars.TextSubmissionIncomplete)
		return
	}

	err = ctrl.EmailConfirmationUsecase.ConfirmEmail(r.Context(), request)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusBadRequest {
			utils.BuildTextErrorResponse(ctrl.Log, w, err, constvars.TextSubmissionInvalidEmail)
			return
		}
		utils.BuildTextErrorResponse(ctrl.Log, w, err, constvars.TextSubmissionFailed)
		return
	}

	utils.BuildTextResponse(w, constvars.StatusOK, constvars.TextSubmissionSucceeded)
}

// readSubmission accepts both the HTML form post and a JSON body.
func (ctrl *EmailConfirmationController) readSubmission(r *http.Request) (*requests.EmailConfirmation, error) {
	request := new(requests.EmailConfirmation)

	if utils.IsJSONRequest(r) {
		if err := utils.DecodeJSONBody(r, request); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		return request, nil
	}

	if err := r.ParseForm(); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, exceptions.ErrRequestBodyTooLarge(err)
		}
		return nil, exceptions.ErrCannotParseForm(err)
	}
	request.ClientKey = r.PostForm.Get(constvars.FormClientKey)
	request.Email = r.PostForm.Get(constvars.FormEmail)
	return request, nil
}
