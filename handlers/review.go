package handlers

import (
	"net/http"

	"fixify/middleware"
	"fixify/models"
	"fixify/services/review"
	"fixify/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes the review endpoints.
type ReviewHandler struct {
	Svc review.Service
}

func NewReviewHandler(svc review.Service) *ReviewHandler {
	return &ReviewHandler{Svc: svc}
}

// AddReviewHandler records a review for a completed booking.
func (h *ReviewHandler) AddReviewHandler(c *gin.Context) {
	var in struct {
		BookingID string `json:"bookingId"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	r, err := h.Svc.AddReview(c.Request.Context(), middleware.CallerID(c), in.BookingID, in.Rating, in.Comment)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// ListProviderReviewsHandler returns reviews for a provider owner. Public.
func (h *ReviewHandler) ListProviderReviewsHandler(c *gin.Context) {
	reviews, err := h.Svc.ListForProviderUser(c.Request.Context(), models.UserID(c.Param("userId")))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
