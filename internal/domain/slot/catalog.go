package slot

import (
	"fmt"
	"strings"
)

const (
	FirstHour Hour = 10
	LastHour  Hour = 18
)

// Hour is the start hour of a one-hour appointment slot.
type Hour int

func (h Hour) String() string {
	return fmt.Sprintf("%02d:00", int(h))
}

// Catalog is the ordered set of bookable start hours.
type Catalog struct {
	hours []Hour
}

var defaultCatalog = NewCatalog(FirstHour, LastHour)

// DefaultCatalog returns the clinic's nine daily slots, 10:00 through 18:00.
func DefaultCatalog() Catalog {
	return defaultCatalog
}

func NewCatalog(first, last Hour) Catalog {
	if last < first {
		return Catalog{}
	}
	hours := make([]Hour, 0, int(last-first)+1)
	for h := first; h <= last; h++ {
		hours = append(hours, h)
	}
	return Catalog{hours: hours}
}

func (c Catalog) Hours() []Hour {
	out := make([]Hour, len(c.hours))
	copy(out, c.hours)
	return out
}

func (c Catalog) Len() int    { return len(c.hours) }
func (c Catalog) First() Hour { return c.hours[0] }
func (c Catalog) Last() Hour  { return c.hours[len(c.hours)-1] }

func (c Catalog) Contains(h Hour) bool {
	for _, ch := range c.hours {
		if ch == h {
			return true
		}
	}
	return false
}

// Minus returns the catalog hours not present in occupied, in catalog order.
func (c Catalog) Minus(occupied []Hour) []Hour {
	taken := make(map[Hour]struct{}, len(occupied))
	for _, h := range occupied {
		taken[h] = struct{}{}
	}
	free := make([]Hour, 0, len(c.hours))
	for _, h := range c.hours {
		if _, ok := taken[h]; !ok {
			free = append(free, h)
		}
	}
	return free
}

func (c Catalog) String() string {
	return JoinHours(c.hours)
}

// JoinHours renders hours as "10:00, 11:00".
func JoinHours(hours []Hour) string {
	parts := make([]string, len(hours))
	for i, h := range hours {
		parts[i] = h.String()
	}
	return strings.Join(parts, ", ")
}
