package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nutriguide/internal/advice"
	"nutriguide/internal/session"
	"nutriguide/internal/storage"
	"nutriguide/internal/wellness"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testDebugKey = "debug-test-key"

type testApp struct {
	router   *gin.Engine
	store    *storage.Store
	sessions *session.Manager
}

type appOption func(*Options, *RouterOptions)

func withRateLimit(n int) appOption {
	return func(_ *Options, r *RouterOptions) { r.RateLimitPerMinute = n }
}

func withBackground(path string) appOption {
	return func(o *Options, _ *RouterOptions) { o.BackgroundImage = path }
}

func newTestApp(t *testing.T, opts ...appOption) *testApp {
	t.Helper()
	store, err := storage.Open(context.Background(), ":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return newTestAppWithStore(t, store, store, opts...)
}

func newTestAppWithStore(t *testing.T, profiles wellness.ProfileStore, db Pinger, opts ...appOption) *testApp {
	t.Helper()
	sessions, err := session.NewManager("handler-test-secret", time.Hour)
	require.NoError(t, err)

	hopts := Options{
		Service:  wellness.NewService(profiles, advice.NewEngine(nil), nil),
		Sessions: sessions,
		DB:       db,
	}
	ropts := RouterOptions{AllowedOrigins: []string{"*"}, DebugKey: testDebugKey, RateLimitPerMinute: 1000}
	for _, o := range opts {
		o(&hopts, &ropts)
	}

	app := &testApp{router: NewRouter(New(hopts), ropts), sessions: sessions}
	if s, ok := profiles.(*storage.Store); ok {
		app.store = s
	}
	return app
}

func (a *testApp) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func janeInput() gin.H {
	return gin.H{"name": "Jane", "age": 30, "gender": "Female", "height_cm": 165, "weight_kg": 62.5}
}

func (a *testApp) submit(t *testing.T, body any) SubmitResponse {
	t.Helper()
	rec := a.do(t, jsonRequest(t, http.MethodPost, "/api/profiles", body))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var out SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCreateProfileThenDashboard(t *testing.T) {
	app := newTestApp(t)

	created := app.submit(t, janeInput())
	assert.Equal(t, int64(1), created.ID)
	assert.NotEmpty(t, created.Token)

	rec := app.do(t, httptest.NewRequest(http.MethodGet, "/api/profiles/1/dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var dash struct {
		Greeting    string  `json:"greeting"`
		BMI         float64 `json:"bmi"`
		Category    string  `json:"category"`
		WaterLiters float64 `json:"water_liters"`
		Profile     struct {
			Name   string `json:"name"`
			Gender string `json:"gender"`
		} `json:"profile"`
		Advice advice.Bundle `json:"advice"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
	assert.Equal(t, "Hello Jane, your health dashboard", dash.Greeting)
	assert.Equal(t, 23.0, dash.BMI)
	assert.Equal(t, string(advice.NormalWeight), dash.Category)
	assert.Equal(t, 2.2, dash.WaterLiters)
	assert.Equal(t, "Female", dash.Profile.Gender)

	assert.Equal(t, advice.Recommend(advice.NormalWeight), dash.Advice)
}

func TestGetProfile(t *testing.T) {
	app := newTestApp(t)
	app.submit(t, gin.H{"name": "  Sam  ", "age": 41, "gender": "male", "height_cm": 180, "weight_kg": 95})

	rec := app.do(t, httptest.NewRequest(http.MethodGet, "/api/profiles/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Sam"`)
	assert.Contains(t, rec.Body.String(), `"gender":"Male"`)
	assert.Contains(t, rec.Body.String(), `"created_at"`)
}

func TestProfileLookupErrors(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		path   string
		status int
	}{
		{"/api/profiles/99", http.StatusNotFound},
		{"/api/profiles/99/dashboard", http.StatusNotFound},
		{"/api/profiles/abc", http.StatusBadRequest},
		{"/api/profiles/0/dashboard", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := app.do(t, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestCreateProfileValidation(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name  string
		body  gin.H
		field string
	}{
		{"empty name", gin.H{"name": "  ", "age": 30, "gender": "Female", "height_cm": 165, "weight_kg": 60}, "name"},
		{"age zero", gin.H{"name": "A", "age": 0, "gender": "Female", "height_cm": 165, "weight_kg": 60}, "age"},
		{"unknown gender", gin.H{"name": "A", "age": 30, "gender": "Other", "height_cm": 165, "weight_kg": 60}, "gender"},
		{"height too large", gin.H{"name": "A", "age": 30, "gender": "Male", "height_cm": 251, "weight_kg": 60}, "height_cm"},
		{"weight too small", gin.H{"name": "A", "age": 30, "gender": "Male", "height_cm": 170, "weight_kg": 9}, "weight_kg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, jsonRequest(t, http.MethodPost, "/api/profiles", tt.body))
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ValidationErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Fields, tt.field)
		})
	}

	n, err := app.store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCreateProfileMalformedBody(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/profiles", bytes.NewBufferString(`{"age": "thirty"`))
	req.Header.Set("Content-Type", "application/json")

	rec := app.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
}

func TestSessionDashboard(t *testing.T) {
	app := newTestApp(t)
	created := app.submit(t, janeInput())

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+created.Token)
	rec := app.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"greeting":"Hello Jane, your health dashboard"`)

	rec = app.do(t, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListProfilesRequiresDebugKey(t *testing.T) {
	app := newTestApp(t)
	app.submit(t, janeInput())
	app.submit(t, gin.H{"name": "Bob", "age": 50, "gender": "Male", "height_cm": 170, "weight_kg": 95})

	rec := app.do(t, httptest.NewRequest(http.MethodGet, "/api/profiles", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/profiles", nil)
	req.Header.Set("X-Debug-Key", testDebugKey)
	rec = app.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ProfilesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "Jane", resp.Profiles[0].Name)
	assert.Equal(t, "Bob", resp.Profiles[1].Name)
	assert.Equal(t, 32.9, resp.Profiles[1].BMI)
	assert.Equal(t, advice.Obese, resp.Profiles[1].Category)
}

func TestLatestDashboard(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/latest", nil)
	req.Header.Set("X-Debug-Key", testDebugKey)
	rec := app.do(t, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	app.submit(t, janeInput())
	app.submit(t, gin.H{"name": "Tall", "age": 40, "gender": "Male", "height_cm": 200, "weight_kg": 99.8})

	rec = app.do(t, httptest.NewRequest(http.MethodGet, "/api/dashboard/latest", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/dashboard/latest", nil)
	req.Header.Set("X-Debug-Key", testDebugKey)
	rec = app.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var dash struct {
		Greeting string  `json:"greeting"`
		BMI      float64 `json:"bmi"`
		Category string  `json:"category"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
	assert.Equal(t, "Hello Tall, your health dashboard", dash.Greeting)
	assert.Equal(t, 24.9, dash.BMI)
	assert.Equal(t, string(advice.NormalWeight), dash.Category)
}

func TestListProfilesDisabledWithoutKey(t *testing.T) {
	app := newTestApp(t, func(_ *Options, r *RouterOptions) { r.DebugKey = "" })

	req := httptest.NewRequest(http.MethodGet, "/api/profiles", nil)
	req.Header.Set("X-Debug-Key", "anything")
	rec := app.do(t, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProfileRateLimited(t *testing.T) {
	app := newTestApp(t, withRateLimit(2))

	app.submit(t, janeInput())
	app.submit(t, janeInput())

	rec := app.do(t, jsonRequest(t, http.MethodPost, "/api/profiles", janeInput()))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	n, err := app.store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCreateProfileStorageFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPrepare("INSERT INTO users").
		ExpectExec().
		WillReturnError(errors.New("disk I/O error"))

	store := storage.New(db, nil)
	app := newTestAppWithStore(t, store, store)

	rec := app.do(t, jsonRequest(t, http.MethodPost, "/api/profiles", janeInput()))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

type downPinger struct{}

func (downPinger) Ping(context.Context) error { return storage.ErrStorageUnavailable }

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	rec := app.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"ok"}`, rec.Body.String())

	store, err := storage.Open(context.Background(), ":memory:", nil)
	require.NoError(t, err)
	defer store.Close()
	down := newTestAppWithStore(t, store, downPinger{})
	rec = down.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsAndSwaggerMounted(t *testing.T) {
	app := newTestApp(t)
	app.submit(t, janeInput())

	rec := app.do(t, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "nutriguide_submissions_total")
	assert.Contains(t, rec.Body.String(), "nutriguide_profiles ")

	rec = app.do(t, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/profiles/{id}/dashboard")
	assert.Contains(t, rec.Body.String(), "/api/dashboard/latest")
	assert.Contains(t, rec.Body.String(), `"title": "NutriGuide API"`)
	assert.Contains(t, rec.Body.String(), `"BearerAuth"`)
}
