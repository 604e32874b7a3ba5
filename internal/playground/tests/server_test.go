package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuantum/internal/game"
	"kuantum/internal/models"
	"kuantum/internal/monitoring"
	"kuantum/internal/playground"
)

func newTestServer() *playground.Server {
	gin.SetMode(gin.TestMode)
	return playground.NewServer(monitoring.NewMonitor())
}

func testSnapshot() game.StatusSnapshot {
	return game.StatusSnapshot{
		Day:          3,
		Phase:        game.PhasePlanning,
		Score:        150,
		Satisfaction: 55,
		Stability:    90,
		Resources: map[models.ResourceType]int{
			models.ResourceQuantumEnergy: 8,
		},
		Active: []models.Order{{ID: 1234, Dish: models.DishWaveFunctionSoup}},
		Events: []models.EventRecord{
			{Day: 2, Type: models.EventResourceBoost, Message: "boost"},
		},
	}
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	server.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
}

func TestHandleStatusBeforePublish(t *testing.T) {
	server := newTestServer()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/status", nil)
	server.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleStatusAfterPublish(t *testing.T) {
	server := newTestServer()
	server.Publish(testSnapshot())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/status", nil)
	server.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(3), response["day"])
	assert.Equal(t, float64(150), response["score"])
	assert.Contains(t, response, "resources")
	assert.Contains(t, response, "activeOrders")
}

func TestHandleOrders(t *testing.T) {
	server := newTestServer()
	server.Publish(testSnapshot())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/orders", nil)
	server.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	active, ok := response["active"].([]interface{})
	require.True(t, ok)
	assert.Len(t, active, 1)
}

func TestHandleEvents(t *testing.T) {
	server := newTestServer()
	server.Publish(testSnapshot())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/events", nil)
	server.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, string(models.EventResourceBoost), response[0]["type"])
}

func TestHandleMetrics(t *testing.T) {
	server := newTestServer()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/metrics", nil)
	server.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response, "uptime_seconds")
}

func TestWebSocketFeed(t *testing.T) {
	server := newTestServer()
	server.Publish(testSnapshot())

	ts := httptest.NewServer(server.Router())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// A new observer is seeded with the latest snapshot immediately.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var seeded game.StatusSnapshot
	require.NoError(t, conn.ReadJSON(&seeded))
	assert.Equal(t, 3, seeded.Day)

	// Subsequent publishes are pushed over the same connection.
	next := testSnapshot()
	next.Day = 4
	server.Publish(next)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var pushed game.StatusSnapshot
	require.NoError(t, conn.ReadJSON(&pushed))
	assert.Equal(t, 4, pushed.Day)
}
