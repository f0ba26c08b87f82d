package responses

type TimeInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FreeSlots always carries a non-nil slice so an empty result encodes as [].
type FreeSlots struct {
	FreeSlots []TimeInterval `json:"free_slots"`
}

type WorkdayWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ConvertedDate struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
