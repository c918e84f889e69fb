package handlers

import (
	"net/http"

	"fixify/middleware"
	"fixify/services/provider"
	"fixify/utils"

	"github.com/gin-gonic/gin"
)

// ProviderHandler exposes provider profile and catalogue endpoints.
type ProviderHandler struct {
	Svc provider.Service
}

func NewProviderHandler(svc provider.Service) *ProviderHandler {
	return &ProviderHandler{Svc: svc}
}

// CreateProfileHandler creates a provider profile for the calling user and
// promotes them to the provider role. The response carries a fresh token with
// the new role so the client switches without a second login.
func (h *ProviderHandler) CreateProfileHandler(c *gin.Context) {
	var in struct {
		Pincodes   []string `json:"pincodes"`
		Experience int      `json:"experience"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	res, err := h.Svc.CreateProfile(c.Request.Context(), middleware.CallerID(c), in.Pincodes, in.Experience)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GetMyProfileHandler returns the caller's provider profile.
func (h *ProviderHandler) GetMyProfileHandler(c *gin.Context) {
	p, err := h.Svc.GetMyProfile(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfileHandler updates operating areas and experience.
func (h *ProviderHandler) UpdateProfileHandler(c *gin.Context) {
	var in struct {
		Pincodes   []string `json:"pincodes"`
		Experience int      `json:"experience"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	p, err := h.Svc.UpdateProfile(c.Request.Context(), middleware.CallerID(c), in.Pincodes, in.Experience)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "provider": p})
}

// AddServiceHandler appends an unapproved catalogue entry.
func (h *ProviderHandler) AddServiceHandler(c *gin.Context) {
	var in provider.AddServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	svc, err := h.Svc.AddService(c.Request.Context(), middleware.CallerID(c), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Service added, waiting for admin approval",
		"service": svc,
	})
}

// UpdateServicePriceHandler sets the price of one catalogue entry.
func (h *ProviderHandler) UpdateServicePriceHandler(c *gin.Context) {
	var in struct {
		ServiceID string  `json:"serviceId"`
		Price     float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.UpdateServicePrice(c.Request.Context(), middleware.CallerID(c), in.ServiceID, in.Price); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Price updated"})
}

// RemoveServiceHandler deletes one catalogue entry.
func (h *ProviderHandler) RemoveServiceHandler(c *gin.Context) {
	if err := h.Svc.RemoveService(c.Request.Context(), middleware.CallerID(c), c.Param("serviceId")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service removed"})
}

// ToggleAvailabilityHandler flips the online flag.
func (h *ProviderHandler) ToggleAvailabilityHandler(c *gin.Context) {
	online, err := h.Svc.ToggleAvailability(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	state := "Offline"
	if online {
		state = "Online"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Provider is now " + state,
		"isOnline": online,
	})
}

// SearchHandler returns verified providers matching optional pincode and
// service filters. Public.
func (h *ProviderHandler) SearchHandler(c *gin.Context) {
	providers, err := h.Svc.Search(c.Request.Context(), c.Query("pincode"), c.Query("service"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}
