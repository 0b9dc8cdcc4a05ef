package domain

import (
	"sort"
	"strings"
)

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var weekdayOrder = map[Weekday]int{
	Monday: 0, Tuesday: 1, Wednesday: 2, Thursday: 3, Friday: 4, Saturday: 5, Sunday: 6,
}

// DefaultAvailableDays applies to lunchboxes created without explicit days.
var DefaultAvailableDays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

func ParseWeekday(value string) (Weekday, bool) {
	day := Weekday(strings.ToLower(strings.TrimSpace(value)))
	_, ok := weekdayOrder[day]
	return day, ok
}

func (d Weekday) Valid() bool {
	_, ok := weekdayOrder[d]
	return ok
}

func SortWeekdays(days []Weekday) {
	sort.Slice(days, func(i, j int) bool {
		return weekdayOrder[days[i]] < weekdayOrder[days[j]]
	})
}

func WeekdayStrings(days []Weekday) []string {
	out := make([]string, len(days))
	for i, day := range days {
		out[i] = string(day)
	}
	return out
}

func WeekdaysFromStrings(values []string) []Weekday {
	out := make([]Weekday, 0, len(values))
	for _, value := range values {
		if day, ok := ParseWeekday(value); ok {
			out = append(out, day)
		}
	}
	return out
}
