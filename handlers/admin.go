package handlers

import (
	"net/http"

	"fixify/models"
	"fixify/services/admin"
	"fixify/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the moderation endpoints.
type AdminHandler struct {
	Svc admin.Service
}

func NewAdminHandler(svc admin.Service) *AdminHandler {
	return &AdminHandler{Svc: svc}
}

func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Svc.ListUsers(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) ListProvidersHandler(c *gin.Context) {
	providers, err := h.Svc.ListProviders(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

func (h *AdminHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Svc.ListBookings(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// SetUserBlockedHandler sets a user's blocked flag from {"blocked": bool}.
func (h *AdminHandler) SetUserBlockedHandler(c *gin.Context) {
	var in struct {
		Blocked bool `json:"blocked"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.SetUserBlocked(c.Request.Context(), models.UserID(c.Param("id")), in.Blocked); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated"})
}

// SetProviderBlockedHandler sets a provider profile's blocked flag.
func (h *AdminHandler) SetProviderBlockedHandler(c *gin.Context) {
	var in struct {
		Blocked bool `json:"blocked"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.SetProviderBlocked(c.Request.Context(), models.ProviderID(c.Param("id")), in.Blocked); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Provider updated"})
}

// ApproveServiceHandler approves one catalogue entry of a provider.
func (h *AdminHandler) ApproveServiceHandler(c *gin.Context) {
	err := h.Svc.ApproveService(c.Request.Context(),
		models.ProviderID(c.Param("id")), c.Param("serviceId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service approved"})
}

// VerifyProviderHandler verifies a provider and approves its whole catalogue.
func (h *AdminHandler) VerifyProviderHandler(c *gin.Context) {
	if err := h.Svc.VerifyProvider(c.Request.Context(), models.ProviderID(c.Param("id"))); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Provider verified"})
}
