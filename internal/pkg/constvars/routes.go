package constvars

const (
	RouteHealth        = "/"
	RouteOccupiedSlots = "/occupied-slots"
	RouteExtendSlots   = "/extend-slots"
	RouteConvertDate   = "/convert-date"
	RouteCaptureEmail  = "/capture-email"
	RouteSubmitEmail   = "/submit-email"
)

const (
	QueryClientKey = "key"
	FormClientKey  = "clientKey"
	FormEmail      = "email"
)
