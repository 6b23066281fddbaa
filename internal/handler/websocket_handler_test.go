package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nutriguide/internal/advice"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestDashboardSocket(t *testing.T) {
	app := newTestApp(t)
	created := app.submit(t, janeInput())

	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv := httptest.NewServer(app.router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/dashboard?token=" + created.Token
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var first SectionMessage
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, advice.SectionBMIReport, first.Section)
	assert.Equal(t, "Hello Jane, your health dashboard", first.Greeting)
	assert.Equal(t, 23.0, first.BMI)
	assert.Equal(t, advice.NormalWeight, first.Category)
	assert.Equal(t, []string{"BMI: 23.0 (Normal weight)"}, first.Lines)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("water")))
	var water SectionMessage
	require.NoError(t, conn.ReadJSON(&water))
	assert.Equal(t, advice.SectionWater, water.Section)
	require.NotEmpty(t, water.Lines)
	assert.Equal(t, "Suggested: 2.2 L/day", water.Lines[0])

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("bogus")))
	var bad SectionMessage
	require.NoError(t, conn.ReadJSON(&bad))
	assert.NotEmpty(t, bad.Error)
	assert.Empty(t, bad.Lines)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
}

func TestDashboardSocketRequiresSession(t *testing.T) {
	app := newTestApp(t)
	srv := httptest.NewServer(app.router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/dashboard?token=forged"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
