package constvars

// Layouts accepted for incoming datetimes, tried in order.
var AcceptedDatetimeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

const (
	LayoutDate           = "2006-01-02"
	LayoutClock          = "15:04"
	LayoutISOMillisUTC   = "2006-01-02T15:04:05.000Z"
	LayoutISOSecondsUTC  = "2006-01-02T15:04:05Z"
	FieldOccupiedSlots   = "value"
	FieldRequestedDate   = "requested_datetime"
	FieldConvertDate     = "date"
	WebhookSubjectEmail  = "email-confirmation"
	WebhookTokenTTLInMin = 5
	WebhookMaxErrorBody  = 4096
)
