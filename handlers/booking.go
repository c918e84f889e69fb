package handlers

import (
	"net/http"

	"fixify/middleware"
	"fixify/models"
	"fixify/services/booking"
	"fixify/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Svc booking.Service
}

func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// CreateBookingHandler creates a pending booking for the calling customer.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var in booking.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Svc.CreateBooking(c.Request.Context(), middleware.CallerID(c), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateStatusHandler moves a booking one step through its state machine on
// behalf of the owning provider.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	var in struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Svc.UpdateStatus(c.Request.Context(), middleware.CallerID(c), c.Param("id"), in.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListUserBookingsHandler returns the calling customer's bookings.
func (h *BookingHandler) ListUserBookingsHandler(c *gin.Context) {
	views, err := h.Svc.ListForCustomer(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// ListProviderBookingsHandler returns the calling provider's bookings.
func (h *BookingHandler) ListProviderBookingsHandler(c *gin.Context) {
	views, err := h.Svc.ListForProvider(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
