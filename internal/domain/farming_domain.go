package domain

import (
	"strings"
	"time"
)

// FarmingDomain is a location where artifact sets can be farmed on fixed weekdays
type FarmingDomain struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	Region           Region   `json:"region" yaml:"region"`
	Description      string   `json:"description" yaml:"description"`
	RecommendedLevel int      `json:"recommendedLevel" yaml:"recommendedLevel"`
	ArtifactSets     []string `json:"artifactSets" yaml:"artifactSets"`
	WeekDays         []string `json:"weekDays" yaml:"weekDays"`
	Characters       string   `json:"characters" yaml:"characters"`
}

// OpenOn reports whether the domain can be entered on day
func (d *FarmingDomain) OpenOn(day time.Weekday) bool {
	return d.DayIndex(day) >= 0
}

// DayIndex returns the position of day within WeekDays, or -1
func (d *FarmingDomain) DayIndex(day time.Weekday) int {
	for i, wd := range d.WeekDays {
		if wd == day.String() {
			return i
		}
	}
	return -1
}

// ParseWeekday accepts full English day names, case-insensitive
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.TrimSpace(s)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), s) {
			return d, nil
		}
	}
	return 0, &ValidationError{Field: "day", Reason: "unknown weekday " + s, Err: ErrInvalidWeekday}
}
