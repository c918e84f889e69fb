package handlers

import (
	"net/http"

	"fixify/middleware"
	"fixify/services/report"
	"fixify/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler exposes the report endpoints.
type ReportHandler struct {
	Svc report.Service
}

func NewReportHandler(svc report.Service) *ReportHandler {
	return &ReportHandler{Svc: svc}
}

// CreateReportHandler files a report against the other party of a booking.
func (h *ReportHandler) CreateReportHandler(c *gin.Context) {
	var in struct {
		BookingID string `json:"bookingId"`
		Reason    string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	r, err := h.Svc.CreateReport(c.Request.Context(),
		middleware.CallerID(c), middleware.CallerRole(c), in.BookingID, in.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Report submitted", "report": r})
}

// ListReportsHandler returns every report. Admin only.
func (h *ReportHandler) ListReportsHandler(c *gin.Context) {
	reports, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// ResolveReportHandler marks a report resolved. Admin only.
func (h *ReportHandler) ResolveReportHandler(c *gin.Context) {
	if err := h.Svc.Resolve(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report resolved"})
}
