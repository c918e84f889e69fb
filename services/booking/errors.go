package booking

import (
	"fmt"

	"fixify/models"
	"fixify/utils"
)

func errDescriptionTooShort(min int) error {
	return utils.ValidationError{Msg: fmt.Sprintf("description must be at least %d characters", min)}
}

var (
	errPreferredDateRequired = utils.ValidationError{Msg: "preferred date is required"}
	errAddressRequired       = utils.ValidationError{Msg: "address is required"}
	errServiceUnavailable    = utils.ValidationError{Msg: "invalid or unapproved service"}
	errNotBookingProvider    = utils.AuthorizationError{Msg: "you are not the provider of this booking"}
	errAccountBlocked        = utils.AuthorizationError{Msg: "account is blocked"}
	errProviderBlocked       = utils.StateConflictError{Msg: "provider is not accepting bookings"}
)

func errIllegalTransition(current, next models.BookingStatus) error {
	return utils.StateConflictError{Msg: fmt.Sprintf("cannot move booking from %s to %s", current, next)}
}
