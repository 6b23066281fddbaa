/**
* Name:        pages.go
* Description: server-rendered form and dashboard pages
* Workflow:    GET / form, POST /submit, GET /dashboard?section=, POST /logout
 */
package handler

import (
	"errors"
	"net/http"
	"strings"

	"nutriguide/internal/advice"
	"nutriguide/internal/metrics"
	"nutriguide/internal/middleware"
	"nutriguide/internal/models"
	"nutriguide/internal/storage"
	"nutriguide/internal/wellness"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type formPage struct {
	Values        wellness.ProfileInput
	Errors        map[string]string
	Message       string
	Genders       []models.Gender
	HasBackground bool
}

type sectionLink struct {
	Title  string
	Slug   string
	Active bool
}

type dashboardPage struct {
	Greeting      string
	Report        wellness.Report
	Section       advice.Section
	Sections      []sectionLink
	Lines         []string
	HasBackground bool
}

func (h *Handler) newFormPage(in wellness.ProfileInput) formPage {
	if in.Gender == "" {
		in.Gender = string(models.GenderMale)
	}
	return formPage{Values: in, Genders: models.Genders, HasBackground: h.background != ""}
}

// FormPage renders the profile form, or sends a visitor with a live session
// straight to the dashboard.
func (h *Handler) FormPage(c *gin.Context) {
	if _, ok := middleware.CurrentSession(c); ok {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "form.tmpl", h.newFormPage(wellness.ProfileInput{}))
}

// SubmitForm stores the posted profile and starts a dashboard session.
func (h *Handler) SubmitForm(c *gin.Context) {
	var in wellness.ProfileInput
	if err := c.ShouldBind(&in); err != nil {
		page := h.newFormPage(in)
		page.Message = "Please enter numbers for age, height and weight."
		c.HTML(http.StatusBadRequest, "form.tmpl", page)
		return
	}

	id, err := h.svc.Submit(c.Request.Context(), in)
	if err != nil {
		var ve *wellness.ValidationError
		if errors.As(err, &ve) {
			page := h.newFormPage(in)
			page.Errors = ve.Fields
			page.Message = "Please fix the highlighted fields."
			c.HTML(http.StatusBadRequest, "form.tmpl", page)
			return
		}
		h.logger.Error("Failed to save profile", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{"Message": "Your profile could not be saved. Please try again later."})
		return
	}

	token, s, err := h.sessions.Issue(models.Profile{ID: id, Name: strings.TrimSpace(in.Name)})
	if err != nil {
		h.logger.Error("Failed to issue session", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{"Message": "Your profile was saved but the session could not be started."})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(s.ExpiresAt.Sub(s.IssuedAt).Seconds()), "/", "", h.secureCookie, true)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// DashboardPage shows one section of the session's dashboard.
func (h *Handler) DashboardPage(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	section, err := advice.ParseSection(c.Query("section"))
	if err != nil {
		section = advice.SectionBMIReport
	}

	report, err := h.svc.Dashboard(c.Request.Context(), s.ProfileID)
	if err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			h.clearSession(c)
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		h.logger.Error("Failed to build dashboard", zap.Int64("profile_id", s.ProfileID), zap.Error(err))
		c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{"Message": "Your dashboard could not be loaded. Please try again later."})
		return
	}

	links := make([]sectionLink, 0, len(advice.Sections))
	for _, sec := range advice.Sections {
		links = append(links, sectionLink{Title: string(sec), Slug: sec.Slug(), Active: sec == section})
	}
	metrics.DashboardViewsTotal.WithLabelValues(section.Slug()).Inc()

	c.HTML(http.StatusOK, "dashboard.tmpl", dashboardPage{
		Greeting:      report.Greeting(),
		Report:        report,
		Section:       section,
		Sections:      links,
		Lines:         report.Lines(section),
		HasBackground: h.background != "",
	})
}

// Logout forgets the session so a new profile can be entered.
func (h *Handler) Logout(c *gin.Context) {
	h.clearSession(c)
	c.Redirect(http.StatusSeeOther, "/")
}

// Background serves the optional decorative image.
func (h *Handler) Background(c *gin.Context) {
	if h.background == "" {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(h.background)
}

func (h *Handler) clearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookie, true)
}
