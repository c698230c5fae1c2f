package calendar

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed holidays.toml
var defaultHolidays string

var ErrInvalidHoliday = errors.New("invalid holiday definition")

type DayKind int

const (
	BusinessDay DayKind = iota + 1
	Weekend
	Holiday
)

func (k DayKind) String() string {
	switch k {
	case BusinessDay:
		return "business_day"
	case Weekend:
		return "weekend"
	case Holiday:
		return "holiday"
	default:
		return "unknown"
	}
}

// HolidayRule is a holiday recurring every year on the same month and day.
type HolidayRule struct {
	Name  string `toml:"name"`
	Month int    `toml:"month"`
	Day   int    `toml:"day"`
}

type holidayFile struct {
	Holidays []HolidayRule `toml:"holiday"`
}

type monthDay struct {
	month time.Month
	day   int
}

// Policy decides which dates the clinic is open on.
type Policy struct {
	holidays map[monthDay]string
}

var defaultPolicy = mustLoadPolicy(defaultHolidays)

// DefaultPolicy returns the policy built from the embedded holiday table.
func DefaultPolicy() *Policy {
	return defaultPolicy
}

func NewPolicy(rules []HolidayRule) (*Policy, error) {
	p := &Policy{holidays: make(map[monthDay]string, len(rules))}
	for _, r := range rules {
		if r.Month < 1 || r.Month > 12 || r.Day < 1 {
			return nil, fmt.Errorf("%w: %q %02d-%02d", ErrInvalidHoliday, r.Name, r.Month, r.Day)
		}
		// 2000 is a leap year, so 02-29 is accepted.
		probe := time.Date(2000, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC)
		if probe.Day() != r.Day {
			return nil, fmt.Errorf("%w: %q %02d-%02d", ErrInvalidHoliday, r.Name, r.Month, r.Day)
		}
		p.holidays[monthDay{month: time.Month(r.Month), day: r.Day}] = r.Name
	}
	return p, nil
}

// LoadPolicy decodes a TOML holiday table.
func LoadPolicy(doc string) (*Policy, error) {
	var f holidayFile
	if _, err := toml.Decode(doc, &f); err != nil {
		return nil, fmt.Errorf("decode holiday table: %w", err)
	}
	return NewPolicy(f.Holidays)
}

func mustLoadPolicy(doc string) *Policy {
	p, err := LoadPolicy(doc)
	if err != nil {
		panic(err)
	}
	return p
}

// Classify reports a holiday before a weekend when both apply.
func (p *Policy) Classify(d Date) DayKind {
	if _, ok := p.HolidayName(d); ok {
		return Holiday
	}
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return Weekend
	default:
		return BusinessDay
	}
}

func (p *Policy) IsBusinessDay(d Date) bool {
	return p.Classify(d) == BusinessDay
}

func (p *Policy) HolidayName(d Date) (string, bool) {
	name, ok := p.holidays[monthDay{month: d.Month(), day: d.Day()}]
	return name, ok
}

// Holidays returns the rules ordered by month and day.
func (p *Policy) Holidays() []HolidayRule {
	rules := make([]HolidayRule, 0, len(p.holidays))
	for md, name := range p.holidays {
		rules = append(rules, HolidayRule{Name: name, Month: int(md.month), Day: md.day})
	}
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Month != rules[j].Month {
			return rules[i].Month < rules[j].Month
		}
		return rules[i].Day < rules[j].Day
	})
	return rules
}
