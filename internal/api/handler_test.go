package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"college-portal-client/config"
	"college-portal-client/internal/feed"
	"college-portal-client/internal/portal"
	"college-portal-client/internal/session"
	"college-portal-client/internal/store"
	"college-portal-client/internal/submit"
)

// newTestRouter wires the facade against a mock remote portal.
func newTestRouter(t *testing.T, portalHandler http.HandlerFunc, login bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(portalHandler)
	t.Cleanup(server.Close)

	client, err := portal.NewClient(&config.APIConfig{
		BaseURL:         server.URL,
		Timeout:         5 * time.Second,
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
	})
	require.NoError(t, err)

	sess := session.NewStore(client, "")
	if login {
		_, err = sess.DemoLogin(context.Background())
		require.NoError(t, err)
	}

	backend := store.NewRemote(client)
	agg := feed.New(backend, sess, time.Minute)
	pipeline := submit.New(backend, sess, agg, nil)

	cfg := &config.ServerConfig{Port: 0, RateLimitPerSec: 1000, CacheTTLSeconds: 60}
	return NewRouter(cfg, sess, agg, pipeline)
}

func portalStub(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/demo-login":
			json.NewEncoder(w).Encode(map[string]any{
				"student": map[string]any{"id": 42, "student_id": "21CS001", "name": "Demo Student"},
			})
		case r.URL.Path == "/outing-requests" && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{
				"requests": []map[string]any{{"id": 1, "status": "pending", "created_at": "2024-06-10T10:00:00"}},
			})
		case strings.HasSuffix(r.URL.Path, "-orders") && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{"orders": []any{}})
		case r.URL.Path == "/mess-orders" && r.Method == http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{
				"order": map[string]any{"id": 9, "status": "pending", "meal_type": "lunch"},
			})
		default:
			t.Errorf("unexpected portal call %s %s", r.Method, r.URL.Path)
		}
	}
}

func TestGetFeed(t *testing.T) {
	router := newTestRouter(t, portalStub(t), true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Requests []struct {
			ID     int64  `json:"id"`
			Status string `json:"status"`
		} `json:"requests"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Requests, 1)
	assert.Equal(t, int64(1), body.Requests[0].ID)
}

func TestGetFeed_InvalidFilter(t *testing.T) {
	router := newTestRouter(t, portalStub(t), true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/feed?filter=parking", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetFeed_Unauthenticated(t *testing.T) {
	router := newTestRouter(t, portalStub(t), false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/feed", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetMe(t *testing.T) {
	router := newTestRouter(t, portalStub(t), true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/me", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "21CS001")
}

func TestPostRequest_SubmitsAndEchoes(t *testing.T) {
	router := newTestRouter(t, portalStub(t), true)

	body := strings.NewReader(`{"meal_type":"lunch","meal_date":"2024-06-12","quantity":1}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/requests/mess", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"order"`)
}

func TestPostRequest_ValidationError(t *testing.T) {
	router := newTestRouter(t, portalStub(t), true)

	// return before outing: rejected locally with 400
	body := strings.NewReader(`{"outing_date":"2024-06-10","return_date":"2024-06-05","reason":"trip","emergency_contact":"+91"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/requests/outing", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Return date")
}

func TestPostRequest_UnknownService(t *testing.T) {
	router := newTestRouter(t, portalStub(t), true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/requests/parking", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
