package handler

import (
	"net/http"
	"strings"
	"time"

	"nutriguide/internal/advice"
	"nutriguide/internal/metrics"
	"nutriguide/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	wsReadLimit    = 512
	wsIdleTimeout  = 5 * time.Minute
	wsWriteTimeout = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SectionMessage is one dashboard section pushed over the WebSocket.
type SectionMessage struct {
	Section  advice.Section  `json:"section,omitempty" example:"Diet Recommendation"`
	Greeting string          `json:"greeting,omitempty"`
	BMI      float64         `json:"bmi,omitempty"`
	Category advice.Category `json:"category,omitempty"`
	Lines    []string        `json:"lines,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// DashboardSocket godoc
// @Summary      Dashboard section picker (WebSocket)
// @Description  Upgrades to a WebSocket. The server first sends the BMI report; afterwards every text frame
// @Description  naming a section ("diet", "Water Intake", ...) is answered with that section's lines.
// @Description  The profile is re-read from the store for every frame.
// @Tags         Dashboard
// @Param        token query string true "Session token from /api/profiles or the session cookie"
// @Success      101 {string} string "Switching Protocols"
// @Failure      401 {object} handler.ErrorResponse "Missing or invalid session token"
// @Router       /ws/dashboard [get]
func (h *Handler) DashboardSocket(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		apiError(c, http.StatusUnauthorized, "Session token required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade to WebSocket", zap.Int64("profile_id", s.ProfileID), zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(wsReadLimit)
	log := h.logger.With(zap.String("session_id", s.ID), zap.Int64("profile_id", s.ProfileID))
	log.Debug("dashboard socket connected")

	ctx := c.Request.Context()
	send := func(msg SectionMessage) error {
		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		return conn.WriteJSON(msg)
	}
	render := func(name string) SectionMessage {
		section, err := advice.ParseSection(name)
		if err != nil {
			return SectionMessage{Error: err.Error()}
		}
		report, err := h.svc.Dashboard(ctx, s.ProfileID)
		if err != nil {
			log.Error("Failed to build dashboard", zap.Error(err))
			return SectionMessage{Error: "dashboard unavailable"}
		}
		metrics.DashboardViewsTotal.WithLabelValues(section.Slug()).Inc()
		return SectionMessage{
			Section:  section,
			Greeting: report.Greeting(),
			BMI:      report.BMI,
			Category: report.Category,
			Lines:    report.Lines(section),
		}
	}

	if err := send(render("")); err != nil {
		return
	}
	for {
		conn.SetReadDeadline(time.Now().Add(wsIdleTimeout))
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("dashboard socket closed unexpectedly", zap.Error(err))
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		if err := send(render(strings.TrimSpace(string(data)))); err != nil {
			log.Warn("dashboard socket write failed", zap.Error(err))
			return
		}
	}
}
