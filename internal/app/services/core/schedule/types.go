package schedule

import (
	"fmt"
	"time"

	"freeslot-service/internal/pkg/constvars"
	"freeslot-service/internal/pkg/utils"
)

// TimeInterval is a half-open span [Start, End) of UTC instants.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

func (ti TimeInterval) Duration() time.Duration {
	return ti.End.Sub(ti.Start)
}

type WorkdayWindow struct {
	Start time.Time
	End   time.Time
}

// Clock is a wall-clock time of day in UTC.
type Clock struct {
	Hour   int
	Minute int
}

func ParseClock(value string) (Clock, error) {
	hour, minute, err := utils.ParseClock(value)
	if err != nil {
		return Clock{}, err
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

func (c Clock) On(date time.Time) time.Time {
	year, month, day := date.UTC().Date()
	return time.Date(year, month, day, c.Hour, c.Minute, 0, 0, time.UTC)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) minutes() int {
	return c.Hour*60 + c.Minute
}

type WorkingHours struct {
	Start Clock
	End   Clock
}

func NewWorkingHours(start, end string) (WorkingHours, error) {
	startClock, err := ParseClock(start)
	if err != nil {
		return WorkingHours{}, fmt.Errorf("invalid working hours start %q: %w", start, err)
	}
	endClock, err := ParseClock(end)
	if err != nil {
		return WorkingHours{}, fmt.Errorf("invalid working hours end %q: %w", end, err)
	}
	if startClock.minutes() >= endClock.minutes() {
		return WorkingHours{}, fmt.Errorf(constvars.ErrDevInvalidWorkingHoursWindow, startClock, endClock)
	}

	return WorkingHours{Start: startClock, End: endClock}, nil
}

// WindowOn returns the working hours on the UTC calendar date of date.
func (wh WorkingHours) WindowOn(date time.Time) WorkdayWindow {
	return WorkdayWindow{
		Start: wh.Start.On(date),
		End:   wh.End.On(date),
	}
}
