package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAnalyticsRouter(service *fakeAnalyticsService) *gin.Engine {
	handler := NewAnalyticsHandler(service, testLogger())
	router := gin.New()
	router.POST("/api/analytics/active-users", handler.UpdateActiveUsers)
	return router
}

func TestUpdateActiveUsersRejectsBadAction(t *testing.T) {
	service := &fakeAnalyticsService{}
	router := newAnalyticsRouter(service)

	recorder := performJSON(t, router, http.MethodPost, "/api/analytics/active-users", map[string]interface{}{"action": "refresh"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, `action must be "join" or "leave"`, decodeBody(t, recorder)["error"])
	assert.Empty(t, service.lastAction)
}

func TestUpdateActiveUsersJoin(t *testing.T) {
	service := &fakeAnalyticsService{count: 7}
	router := newAnalyticsRouter(service)

	recorder := performJSON(t, router, http.MethodPost, "/api/analytics/active-users", map[string]interface{}{"action": "join"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(7), body["activeUsers"])
	assert.Equal(t, "join", service.lastAction)
}

func TestUpdateActiveUsersLeave(t *testing.T) {
	service := &fakeAnalyticsService{count: 0}
	router := newAnalyticsRouter(service)

	recorder := performJSON(t, router, http.MethodPost, "/api/analytics/active-users", map[string]interface{}{"action": "leave"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, float64(0), body["activeUsers"])
	assert.Equal(t, "leave", service.lastAction)
}
