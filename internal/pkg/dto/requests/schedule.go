package requests

type TimeInterval struct {
	Start string `json:"start" validate:"required,iso_datetime"`
	End   string `json:"end" validate:"required,iso_datetime"`
}

type OccupiedSlots struct {
	Value []TimeInterval `json:"value" validate:"required,min=1,dive"`
}

type ExtendSlot struct {
	RequestedDatetime string `json:"requested_datetime" validate:"required,iso_datetime"`
}

type ConvertDate struct {
	Date string `json:"date" validate:"required,iso_datetime"`
}
