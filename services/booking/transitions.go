package booking

import "fixify/models"

// transitions is the closed table of allowed one-step moves. Completed and
// rejected are terminal.
var transitions = map[models.BookingStatus]models.BookingStatus{
	models.StatusPending:  models.StatusAccepted,
	models.StatusAccepted: models.StatusOnTheWay,
	models.StatusOnTheWay: models.StatusStarted,
	models.StatusStarted:  models.StatusCompleted,
}

// CanTransition reports whether a booking in the current status may move to
// next in a single step. Re-submitting the current status is not a legal
// move; duplicates are rejected rather than replayed so side effects such as
// chat creation cannot repeat.
func CanTransition(current, next models.BookingStatus) bool {
	if current == models.StatusPending && next == models.StatusRejected {
		return true
	}
	return transitions[current] == next
}
