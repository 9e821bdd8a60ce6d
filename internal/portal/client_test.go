package portal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"college-portal-client/config"
	"college-portal-client/internal/model"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(&config.APIConfig{
		BaseURL:         baseURL,
		Timeout:         5 * time.Second,
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
	})
	require.NoError(t, err)
	return client
}

func TestClient_LoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "21CS001", body["login_id"])

		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc"})
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Login successful",
			"student": map[string]any{"id": 7, "student_id": "21CS001", "name": "Demo Student"},
		})
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	student, err := client.Login(context.Background(), "21CS001", "demo123")
	require.NoError(t, err)
	assert.Equal(t, int64(7), student.ID)
	assert.Equal(t, "Demo Student", student.Name)

	// The session cookie must be retained for subsequent calls.
	require.NotEmpty(t, client.Cookies())
	assert.Equal(t, "session", client.Cookies()[0].Name)
}

func TestClient_LoginInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.Login(context.Background(), "S123", "bad")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid credentials", authErr.Message)
}

func TestClient_ServerErrorMessageVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Student ID already registered"})
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.Signup(context.Background(), &model.SignupProfile{StudentID: "21CS001"})

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusBadRequest, serverErr.Status)
	assert.Equal(t, "Student ID already registered", serverErr.Message)
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := testClient(t, server.URL)
	_, err := client.Me(context.Background())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.NotNil(t, errors.Unwrap(netErr))
}

func TestClient_ListRequestsEnvelopes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42", r.URL.Query().Get("student_id"))
		switch r.URL.Path {
		case "/outing-requests":
			json.NewEncoder(w).Encode(map[string]any{
				"requests": []map[string]any{{"id": 1, "status": "pending", "created_at": "2024-06-10T10:00:00"}},
			})
		case "/xerox-orders":
			json.NewEncoder(w).Encode(map[string]any{
				"orders": []map[string]any{{"id": 2, "status": "pending", "created_at": "2024-06-11T10:00:00"}},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	outings, err := client.ListRequests(context.Background(), model.KindOuting, 42)
	require.NoError(t, err)
	require.Len(t, outings, 1)
	assert.Equal(t, int64(1), outings[0].ID)

	orders, err := client.ListRequests(context.Background(), model.KindXerox, 42)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(2), orders[0].ID)
}

func TestClient_CreateRequestTagsKind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mess-orders", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Mess order submitted successfully",
			"order":   map[string]any{"id": 9, "status": "pending", "meal_type": "lunch"},
		})
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	created, err := client.CreateRequest(context.Background(), &model.MessPayload{
		MealType: "lunch", MealDate: "2024-06-12", Quantity: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, model.KindMess, created.Kind)
	assert.Equal(t, int64(9), created.ID)
	assert.Equal(t, "lunch", created.MealType)
}

func TestClient_DashboardStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard/stats", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"total_students": 12, "pending_outings": 3})
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	stats, err := client.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalStudents)
	assert.Equal(t, int64(3), stats.PendingOutings)
}
