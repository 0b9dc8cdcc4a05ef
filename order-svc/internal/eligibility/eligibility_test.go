package eligibility

import (
	"testing"

	"lunchbox-marketplace/order-svc/internal/cart"
	"lunchbox-marketplace/order-svc/internal/domain"

	"github.com/stretchr/testify/assert"
)

func line(id string, days []domain.Weekday, buildings ...string) cart.Line {
	return cart.Line{MenuItemID: id, Name: "Lunchbox " + id, Quantity: 1, AvailableDays: days, EligibleBuildingIDs: buildings}
}

func TestValidate(t *testing.T) {
	weekdays := []domain.Weekday{domain.Monday, domain.Tuesday}
	lines := []cart.Line{
		line("a", weekdays, "b1", "b2"),
		line("b", []domain.Weekday{domain.Monday}, "b1"),
	}

	tests := []struct {
		name         string
		day          domain.Weekday
		building     string
		wantValid    bool
		wantReason   Reason
		wantItems    []string
		wantErr      error
		wantFailures map[string][]string
	}{
		{name: "all eligible", day: domain.Monday, building: "b1", wantValid: true},
		{name: "missing day", day: "", building: "b1", wantReason: ReasonSelectionIncomplete, wantErr: domain.ErrSelectionIncomplete},
		{name: "missing building", day: domain.Monday, building: "", wantReason: ReasonSelectionIncomplete, wantErr: domain.ErrSelectionIncomplete},
		{
			name: "day excluded for one line", day: domain.Tuesday, building: "b1",
			wantReason: ReasonItemsIneligible, wantItems: []string{"b"}, wantErr: domain.ErrIneligibleItems,
			wantFailures: map[string][]string{"b": {FailedDay}},
		},
		{
			name: "building excluded for one line", day: domain.Monday, building: "b2",
			wantReason: ReasonItemsIneligible, wantItems: []string{"b"}, wantErr: domain.ErrIneligibleItems,
			wantFailures: map[string][]string{"b": {FailedBuilding}},
		},
		{
			name: "both dimensions fail", day: domain.Friday, building: "b9",
			wantReason: ReasonItemsIneligible, wantItems: []string{"a", "b"}, wantErr: domain.ErrIneligibleItems,
			wantFailures: map[string][]string{"a": {FailedDay, FailedBuilding}, "b": {FailedDay, FailedBuilding}},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			result := Validate(lines, testCase.day, testCase.building)

			assert.Equal(t, testCase.wantValid, result.Valid)
			assert.Equal(t, testCase.wantReason, result.Reason)
			ids := []string{}
			for _, item := range result.IneligibleItems {
				ids = append(ids, item.MenuItemID)
				if testCase.wantFailures != nil {
					assert.Equal(t, testCase.wantFailures[item.MenuItemID], item.Reasons)
				}
			}
			if testCase.wantItems == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, testCase.wantItems, ids)
			}
			if testCase.wantErr == nil {
				assert.NoError(t, result.Err())
			} else {
				assert.ErrorIs(t, result.Err(), testCase.wantErr)
			}
		})
	}
}

func TestValidate_SelectionIncompleteIsNotIneligible(t *testing.T) {
	result := Validate([]cart.Line{line("a", nil)}, "", "")

	assert.False(t, result.Valid)
	assert.NotErrorIs(t, result.Err(), domain.ErrIneligibleItems)
}

func TestAvailableBuildingIDs(t *testing.T) {
	lines := []cart.Line{
		line("a", nil, "b1", "b2", "b3"),
		line("b", nil, "b3", "b2"),
		line("c", nil, "b2", "b3", "b4"),
	}

	assert.Equal(t, []string{"b2", "b3"}, AvailableBuildingIDs(lines))
	assert.Empty(t, AvailableBuildingIDs(nil))
	assert.Empty(t, AvailableBuildingIDs(append(lines, line("d", nil, "b9"))))
}

func TestAvailableDays(t *testing.T) {
	lines := []cart.Line{
		line("a", []domain.Weekday{domain.Friday, domain.Monday, domain.Wednesday}),
		line("b", []domain.Weekday{domain.Wednesday, domain.Friday, domain.Monday, domain.Tuesday}),
	}

	assert.Equal(t, []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday}, AvailableDays(lines))
	assert.Empty(t, AvailableDays(nil))
}
