/**
* Name:        api.go
* Description: JSON API for the profile form and dashboard
* Workflow:    submit profile, read it back, build its dashboard, debug listing
 */
package handler

import (
	"errors"
	"net/http"
	"strings"

	"nutriguide/internal/advice"
	"nutriguide/internal/middleware"
	"nutriguide/internal/models"
	"nutriguide/internal/wellness"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileSummary is one row of the debug listing.
type ProfileSummary struct {
	models.Profile
	BMI      float64         `json:"bmi" example:"22.9"`
	Category advice.Category `json:"category" example:"Normal weight"`
}

// CreateProfile godoc
// @Summary      Submit a profile
// @Description  Validates and stores a profile, then returns its id and a session token for the dashboard.
// @Tags         Profiles
// @Accept       json
// @Produce      json
// @Param        request body wellness.ProfileInput true "Profile form values"
// @Success      201 {object} handler.SubmitResponse
// @Failure      400 {object} handler.ValidationErrorResponse "Out-of-range or missing fields"
// @Failure      429 {object} handler.ErrorResponse "Rate limited"
// @Failure      500 {object} handler.ErrorResponse "Database error"
// @Router       /api/profiles [post]
func (h *Handler) CreateProfile(c *gin.Context) {
	var in wellness.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apiError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.svc.Submit(c.Request.Context(), in)
	if err != nil {
		var ve *wellness.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "Invalid profile", Fields: ve.Fields})
			return
		}
		h.logger.Error("Failed to create profile (database error)", zap.Error(err))
		apiError(c, http.StatusInternalServerError, "Failed to create profile (database error)")
		return
	}

	token, _, err := h.sessions.Issue(models.Profile{ID: id, Name: strings.TrimSpace(in.Name)})
	if err != nil {
		h.logger.Error("Failed to issue session", zap.Error(err))
		apiError(c, http.StatusInternalServerError, "Failed to issue session")
		return
	}
	c.JSON(http.StatusCreated, SubmitResponse{ID: id, Token: token})
}

// GetProfile godoc
// @Summary      Get a profile
// @Description  Returns the stored profile with the given id.
// @Tags         Profiles
// @Produce      json
// @Param        id path int true "Profile id"
// @Success      200 {object} models.Profile
// @Failure      400 {object} handler.ErrorResponse "Bad id"
// @Failure      404 {object} handler.ErrorResponse "Unknown id"
// @Router       /api/profiles/{id} [get]
func (h *Handler) GetProfile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.svc.Profile(c.Request.Context(), id)
	if err != nil {
		h.storageError(c, err, "load profile")
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetDashboard godoc
// @Summary      Dashboard for a profile
// @Description  BMI, category, daily water target and the diet/exercise/hydration/tips advice for a stored profile.
// @Tags         Dashboard
// @Produce      json
// @Param        id path int true "Profile id"
// @Success      200 {object} handler.DashboardResponse
// @Failure      400 {object} handler.ErrorResponse "Bad id"
// @Failure      404 {object} handler.ErrorResponse "Unknown id"
// @Router       /api/profiles/{id}/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	r, err := h.svc.Dashboard(c.Request.Context(), id)
	if err != nil {
		h.storageError(c, err, "build dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboardResponse(r))
}

// GetSessionDashboard godoc
// @Summary      Dashboard for the current session
// @Description  Same as the per-id dashboard, for the profile the session token was issued for.
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.DashboardResponse
// @Failure      401 {object} handler.ErrorResponse "Missing or invalid session token"
// @Failure      404 {object} handler.ErrorResponse "Profile no longer exists"
// @Router       /api/dashboard [get]
func (h *Handler) GetSessionDashboard(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		apiError(c, http.StatusUnauthorized, "Session token required")
		return
	}
	r, err := h.svc.Dashboard(c.Request.Context(), s.ProfileID)
	if err != nil {
		h.storageError(c, err, "build dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboardResponse(r))
}

// ListProfiles godoc
// @Summary      List every profile (debug)
// @Description  All submissions in insertion order. Only available when DEBUG_KEY is configured.
// @Tags         Debug
// @Produce      json
// @Param        X-Debug-Key header string true "Debug key"
// @Success      200 {object} handler.ProfilesResponse
// @Failure      403 {object} handler.ErrorResponse "Wrong debug key"
// @Failure      404 {object} handler.ErrorResponse "Debug listing disabled"
// @Router       /api/profiles [get]
func (h *Handler) ListProfiles(c *gin.Context) {
	profiles, err := h.svc.Profiles(c.Request.Context())
	if err != nil {
		h.storageError(c, err, "list profiles")
		return
	}
	count, err := h.svc.ProfileCount(c.Request.Context())
	if err != nil {
		h.storageError(c, err, "count profiles")
		return
	}
	out := make([]ProfileSummary, 0, len(profiles))
	for _, p := range profiles {
		bmi := advice.ComputeBMI(p.WeightKG, p.HeightCM)
		out = append(out, ProfileSummary{Profile: p, BMI: bmi, Category: advice.Categorize(bmi)})
	}
	c.JSON(http.StatusOK, ProfilesResponse{Count: count, Profiles: out})
}

// GetLatestDashboard godoc
// @Summary      Dashboard for the newest submission (debug)
// @Description  Builds the dashboard for the most recently stored profile, whoever submitted it.
// @Description  Only available when DEBUG_KEY is configured.
// @Tags         Debug
// @Produce      json
// @Param        X-Debug-Key header string true "Debug key"
// @Success      200 {object} handler.DashboardResponse
// @Failure      403 {object} handler.ErrorResponse "Wrong debug key"
// @Failure      404 {object} handler.ErrorResponse "No profiles yet, or debug disabled"
// @Router       /api/dashboard/latest [get]
func (h *Handler) GetLatestDashboard(c *gin.Context) {
	r, err := h.svc.LatestDashboard(c.Request.Context())
	if err != nil {
		h.storageError(c, err, "build dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboardResponse(r))
}

// Health godoc
// @Summary      Liveness
// @Tags         System
// @Produce      json
// @Success      200 {object} handler.SuccessResponse
// @Failure      503 {object} handler.ErrorResponse
// @Router       /healthz [get]
func (h *Handler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Ping(c.Request.Context()); err != nil {
			h.logger.Error("health check failed", zap.Error(err))
			apiError(c, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "ok"})
}
