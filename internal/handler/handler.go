/**
* Name:        handler.go
* Description: shared handler state and response shapes
* Workflow:    form -> submit -> session cookie -> dashboard
 */
package handler

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"

	"nutriguide/internal/session"
	"nutriguide/internal/storage"
	"nutriguide/internal/wellness"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger is anything that can report whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds shared dependencies for all route handlers.
type Handler struct {
	svc          *wellness.Service
	sessions     *session.Manager
	db           Pinger
	logger       *zap.Logger
	background   string
	secureCookie bool
}

// Options configures a Handler.
type Options struct {
	Service  *wellness.Service
	Sessions *session.Manager
	DB       Pinger
	Logger   *zap.Logger
	// BackgroundImage is an optional decorative file; a missing file is skipped.
	BackgroundImage string
	SecureCookie    bool
}

func New(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{
		svc:          opts.Service,
		sessions:     opts.Sessions,
		db:           opts.DB,
		logger:       logger.Named("handler"),
		secureCookie: opts.SecureCookie,
	}
	if opts.BackgroundImage != "" {
		if info, err := os.Stat(opts.BackgroundImage); err != nil || info.IsDir() {
			h.logger.Warn("background image not available, pages render without it",
				zap.String("path", opts.BackgroundImage))
		} else {
			h.background = opts.BackgroundImage
		}
	}
	return h
}

type SuccessResponse struct {
	Message string `json:"message" example:"ok"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Profile not found"`
}

type ValidationErrorResponse struct {
	Error  string            `json:"error" example:"Invalid profile"`
	Fields map[string]string `json:"fields"`
}

type SubmitResponse struct {
	ID    int64  `json:"id" example:"1"`
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type DashboardResponse struct {
	Greeting string `json:"greeting" example:"Hello Jane, your health dashboard"`
	wellness.Report
}

type ProfilesResponse struct {
	Count    int              `json:"count" example:"2"`
	Profiles []ProfileSummary `json:"profiles"`
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// storageError maps a service error onto a status code and logs unexpected ones.
func (h *Handler) storageError(c *gin.Context, err error, what string) {
	if errors.Is(err, storage.ErrProfileNotFound) {
		apiError(c, http.StatusNotFound, "Profile not found")
		return
	}
	h.logger.Error(what, zap.Error(err))
	apiError(c, http.StatusInternalServerError, "Failed to "+what+" (database error)")
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		apiError(c, http.StatusBadRequest, "Invalid profile id")
		return 0, false
	}
	return id, true
}

func dashboardResponse(r wellness.Report) DashboardResponse {
	return DashboardResponse{Greeting: r.Greeting(), Report: r}
}
