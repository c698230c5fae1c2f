package response

import (
	"fmt"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/slot"

	"github.com/jinzhu/copier"
)

// copyOption renders domain value types as their wire form.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: calendar.Date{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				d, ok := src.(calendar.Date)
				if !ok {
					return nil, fmt.Errorf("expected calendar.Date, got %T", src)
				}
				return d.String(), nil
			},
		},
		{
			SrcType: slot.Hour(0),
			DstType: copier.Int,
			Fn: func(src any) (any, error) {
				h, ok := src.(slot.Hour)
				if !ok {
					return nil, fmt.Errorf("expected slot.Hour, got %T", src)
				}
				return int(h), nil
			},
		},
	},
}

func copyInto(to, from any) error {
	return copier.CopyWithOption(to, from, copyOption)
}

// Hours renders slot hours as plain integers.
func Hours(hours []slot.Hour) []int {
	out := make([]int, len(hours))
	for i, h := range hours {
		out[i] = int(h)
	}
	return out
}

// Times renders slot hours as "HH:00".
func Times(hours []slot.Hour) []string {
	out := make([]string, len(hours))
	for i, h := range hours {
		out[i] = h.String()
	}
	return out
}
