package planner

import "errors"

// SlotsPerDay is the number of itinerary buckets available per trip day.
const SlotsPerDay = 4

// TimeSlots lists the fixed daily buckets in visit order.
var TimeSlots = [SlotsPerDay]string{"09:00", "12:00", "15:00", "19:00"}

// ErrInvalidOrdinal indicates AssignSlot was called with an ordinal below 1.
var ErrInvalidOrdinal = errors.New("planner: like ordinal must be positive")

// Assignment places one liked attraction into a trip day and time slot.
type Assignment struct {
	DayNumber int
	TimeSlot  string
}

// SlotIndex returns the zero-based position of the assignment's slot within
// the day.
func (a Assignment) SlotIndex() int {
	for i, slot := range TimeSlots {
		if slot == a.TimeSlot {
			return i
		}
	}
	return 0
}

// AssignSlot computes the day and time slot for a liked attraction. The
// ordinal is the 1-based position of the like within the trip's swipe
// sequence, counting the like being placed. Day and slot derive from the same
// ordinal so re-running the sequence always reproduces identical placements.
func AssignSlot(ordinal int) (Assignment, error) {
	if ordinal < 1 {
		return Assignment{}, ErrInvalidOrdinal
	}
	return Assignment{
		DayNumber: (ordinal-1)/SlotsPerDay + 1,
		TimeSlot:  TimeSlots[(ordinal-1)%SlotsPerDay],
	}, nil
}
