//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"clinic-booking/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow(t *testing.T) {
	anchor := calendar.NewDate(2030, time.June, 10)
	w := calendar.NewWindow(anchor)

	t.Run("seven consecutive days from the anchor", func(t *testing.T) {
		days := w.Days()
		require.Len(t, days, calendar.WindowDays)
		assert.Equal(t, anchor, days[0])
		assert.Equal(t, calendar.NewDate(2030, time.June, 16), days[6])
		assert.Equal(t, days[6], w.End())
	})

	t.Run("navigation returns a new window", func(t *testing.T) {
		next := w.Shift(calendar.Next)
		assert.Equal(t, calendar.NewDate(2030, time.June, 17), next.Anchor())
		assert.Equal(t, anchor, w.Anchor())

		assert.Equal(t, anchor, next.Shift(calendar.Prev).Anchor())
		assert.Equal(t, anchor, w.Shift(calendar.Stay).Anchor())
	})

	t.Run("clamp", func(t *testing.T) {
		earliest := calendar.NewDate(2030, time.June, 12)
		assert.Equal(t, earliest, w.Clamp(earliest).Anchor())
		assert.Equal(t, anchor, w.Clamp(calendar.NewDate(2030, time.June, 1)).Anchor())
	})

	t.Run("contains", func(t *testing.T) {
		assert.True(t, w.Contains(anchor))
		assert.True(t, w.Contains(w.End()))
		assert.False(t, w.Contains(anchor.AddDays(-1)))
		assert.False(t, w.Contains(w.End().AddDays(1)))
	})
}

func TestParseDirection(t *testing.T) {
	for _, in := range []string{"", "next", "prev"} {
		d, err := calendar.ParseDirection(in)
		require.NoError(t, err)
		assert.Equal(t, calendar.Direction(in), d)
	}

	_, err := calendar.ParseDirection("sideways")
	assert.ErrorIs(t, err, calendar.ErrInvalidDirection)
}
