package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must contain at least %s item(s)",
	"max":          "maximum at %s characters long",
	"iso_datetime": "must be a valid ISO-8601 datetime",
	"clock":        "must be a valid HH:MM time",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidOccupiedSlots          = "Invalid input, 'value' is required and should contain slots."
	ErrClientRequestedDatetimeRequired     = "Invalid input, 'requested_datetime' is required."
	ErrClientRequestedDatetimeInvalid      = "Invalid input, 'requested_datetime' must be a valid ISO date."
	ErrClientConvertDateRequired           = "Missing 'date' parameter."
	ErrClientConvertDateInvalid            = "Invalid date format. Please provide a valid ISO date string."
	ErrClientSlotsSpanMultipleDays         = "Invalid input, all slots must fall on the same day."
	ErrClientSlotEndsBeforeStart           = "Invalid input, a slot cannot end before it starts."
	ErrClientRequestBodyTooLarge           = "request body is too large"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseTime           = "cannot parse time into the given format"
	ErrDevCannotParseForm           = "cannot parse form body"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed          = "validation failed"
	ErrDevInvalidFormat             = "invalid %s format"
	ErrDevSlotOutsideWorkdayDate    = "slot %d falls outside workday date %s"
	ErrDevSlotEndsBeforeStart       = "slot %d ends before it starts"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevWebhookURLNotConfigured   = "webhook url for email confirmation is not configured"
	ErrDevWebhookUnexpectedStatus   = "webhook returned status %d"
	ErrDevWebhookSignToken          = "failed to sign webhook token"
	ErrDevTemplateRender            = "failed to render template %s"
	ErrDevServerProcess             = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded    = "deadline exceeded"
	ErrDevServerPanicRecovered      = "panic recovered while serving request"
	ErrDevRequestLimitExceeded      = "request limit exceeded"
	ErrDevInvalidWorkingHoursWindow = "working hours start %s must be before end %s"
)
