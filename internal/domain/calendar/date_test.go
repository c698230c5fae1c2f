//go:build unit

package calendar_test

import (
	"encoding/json"
	"testing"
	"time"

	"clinic-booking/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    calendar.Date
		wantErr bool
	}{
		{in: "2030-06-10", want: calendar.NewDate(2030, time.June, 10)},
		{in: " 2030-06-10 ", want: calendar.NewDate(2030, time.June, 10)},
		{in: "2030-02-30", wantErr: true},
		{in: "10/06/2030", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := calendar.ParseDate(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, calendar.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate(t *testing.T) {
	d := calendar.NewDate(2030, time.June, 10)

	t.Run("normalizes overflow", func(t *testing.T) {
		assert.Equal(t, calendar.NewDate(2030, time.July, 1), calendar.NewDate(2030, time.June, 31))
	})

	t.Run("arithmetic and ordering", func(t *testing.T) {
		next := d.AddDays(1)
		assert.True(t, d.Before(next))
		assert.True(t, next.After(d))
		assert.False(t, d.After(d))
		assert.True(t, d.Equal(calendar.NewDate(2030, time.June, 10)))
		assert.Equal(t, calendar.NewDate(2030, time.May, 31), d.AddDays(-10))
	})

	t.Run("weekday", func(t *testing.T) {
		assert.Equal(t, time.Monday, d.Weekday())
	})

	t.Run("date of a time keeps its location", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*60*60)
		late := time.Date(2030, time.June, 9, 23, 30, 0, 0, time.UTC)
		assert.Equal(t, calendar.NewDate(2030, time.June, 9), calendar.DateOf(late))
		assert.Equal(t, d, calendar.DateOf(late.In(loc)))
	})

	t.Run("json round trip as string", func(t *testing.T) {
		b, err := json.Marshal(struct {
			Date calendar.Date `json:"date"`
		}{Date: d})
		require.NoError(t, err)
		assert.JSONEq(t, `{"date":"2030-06-10"}`, string(b))

		var decoded struct {
			Date calendar.Date `json:"date"`
		}
		require.NoError(t, json.Unmarshal(b, &decoded))
		assert.Equal(t, d, decoded.Date)
	})
}
