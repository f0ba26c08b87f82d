package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingOperationKey      = "operation"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingWebhookURLKey     = "webhook_url"
	LoggingOccupiedCountKey  = "occupied_count"
	LoggingFreeSlotCountKey  = "free_slot_count"
	LoggingWorkdayDateKey    = "workday_date"
	LoggingClientKeyKey      = "client_key"
	LoggingResponseLengthKey = "response_length"
)
