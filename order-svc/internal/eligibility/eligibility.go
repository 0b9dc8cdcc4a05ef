package eligibility

import (
	"lunchbox-marketplace/order-svc/internal/cart"
	"lunchbox-marketplace/order-svc/internal/domain"
)

type Reason string

const (
	ReasonNone                Reason = ""
	ReasonSelectionIncomplete Reason = "selection_incomplete"
	ReasonItemsIneligible     Reason = "items_ineligible"
)

const (
	FailedDay      = "day"
	FailedBuilding = "building"
)

type Result struct {
	Valid           bool                    `json:"valid"`
	Reason          Reason                  `json:"reason,omitempty"`
	IneligibleItems []domain.IneligibleItem `json:"ineligibleItems"`
}

// Err converts a failed result into the matching domain error.
func (r Result) Err() error {
	switch r.Reason {
	case ReasonNone:
		return nil
	case ReasonSelectionIncomplete:
		return domain.ErrSelectionIncomplete
	default:
		return &domain.IneligibleItemsError{Items: r.IneligibleItems}
	}
}

// Validate checks every line against the chosen day and building. An unset
// day or building never validates.
func Validate(lines []cart.Line, day domain.Weekday, buildingID string) Result {
	if day == "" || buildingID == "" {
		return Result{Reason: ReasonSelectionIncomplete, IneligibleItems: []domain.IneligibleItem{}}
	}

	ineligible := []domain.IneligibleItem{}
	for _, line := range lines {
		var reasons []string
		if !containsDay(line.AvailableDays, day) {
			reasons = append(reasons, FailedDay)
		}
		if !containsString(line.EligibleBuildingIDs, buildingID) {
			reasons = append(reasons, FailedBuilding)
		}
		if len(reasons) > 0 {
			ineligible = append(ineligible, domain.IneligibleItem{
				MenuItemID: line.MenuItemID,
				Name:       line.Name,
				Reasons:    reasons,
			})
		}
	}

	if len(ineligible) > 0 {
		return Result{Reason: ReasonItemsIneligible, IneligibleItems: ineligible}
	}
	return Result{Valid: true, IneligibleItems: ineligible}
}

// AvailableBuildingIDs returns the buildings every line can be delivered to,
// in the order they appear on the first line.
func AvailableBuildingIDs(lines []cart.Line) []string {
	if len(lines) == 0 {
		return []string{}
	}
	out := []string{}
	for _, id := range lines[0].EligibleBuildingIDs {
		shared := true
		for _, line := range lines[1:] {
			if !containsString(line.EligibleBuildingIDs, id) {
				shared = false
				break
			}
		}
		if shared && !containsString(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// AvailableDays returns the days every line is offered on, monday first.
func AvailableDays(lines []cart.Line) []domain.Weekday {
	if len(lines) == 0 {
		return []domain.Weekday{}
	}
	out := []domain.Weekday{}
	for _, day := range lines[0].AvailableDays {
		shared := true
		for _, line := range lines[1:] {
			if !containsDay(line.AvailableDays, day) {
				shared = false
				break
			}
		}
		if shared && !containsDay(out, day) {
			out = append(out, day)
		}
	}
	domain.SortWeekdays(out)
	return out
}

func containsDay(days []domain.Weekday, day domain.Weekday) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
