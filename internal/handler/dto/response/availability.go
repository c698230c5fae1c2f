package response

import (
	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/usecase/queries"
)

type AvailabilityResponse struct {
	Date           string   `json:"date"`
	AvailableHours []int    `json:"available_hours"`
	AvailableTimes []string `json:"available_times"`
}

func NewAvailabilityResponse(date calendar.Date, hours []slot.Hour) AvailabilityResponse {
	return AvailabilityResponse{
		Date:           date.String(),
		AvailableHours: Hours(hours),
		AvailableTimes: Times(hours),
	}
}

type DayResponse struct {
	Date        string `json:"date"`
	Weekday     string `json:"weekday"`
	Kind        string `json:"kind"`
	HolidayName string `json:"holiday_name,omitempty"`
	Bookable    bool   `json:"bookable"`
	// Free is filled from DayView.AvailableHours after the copy.
	Free []int `json:"available_hours"`
}

type WeekResponse struct {
	Anchor string        `json:"anchor"`
	End    string        `json:"end"`
	Days   []DayResponse `json:"days"`
}

func FromWeekView(w *queries.WeekView) (WeekResponse, error) {
	res := WeekResponse{
		Anchor: w.Anchor.String(),
		End:    w.End.String(),
		Days:   make([]DayResponse, 0, len(w.Days)),
	}
	for _, d := range w.Days {
		var day DayResponse
		if err := copyInto(&day, &d); err != nil {
			return WeekResponse{}, err
		}
		day.Free = Hours(d.AvailableHours)
		res.Days = append(res.Days, day)
	}
	return res, nil
}
