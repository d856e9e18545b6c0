package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moraputalapraveen/hireme4u-backend/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func visitorRouter(visitors *fakeVisitorStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{Logger: zap.NewNop(), Visitors: visitors}
	r := gin.New()
	r.POST("/api/visitor/track", h.TrackVisitor)
	r.GET("/api/visitor/stats", h.VisitorStats)
	r.GET("/api/visitor/recent", h.RecentVisitors)
	return r
}

func Test_TrackVisitor_RecordsClientDetails(t *testing.T) {
	visitors := &fakeVisitorStore{}
	r := visitorRouter(visitors)

	req := httptest.NewRequest(http.MethodPost, "/api/visitor/track",
		strings.NewReader(`{"page": "/jobs", "referrer": "https://google.com"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, visitors.upserts, 1)

	v := visitors.upserts[0]
	assert.Equal(t, "/jobs", v.Page)
	assert.Equal(t, "https://google.com", v.Referrer)
	assert.Equal(t, "desktop", v.Device)
	assert.Equal(t, "Chrome", v.Browser)
	assert.Equal(t, "Windows", v.OS)
	assert.Equal(t, SessionID(v.IPAddress, time.Now()), v.SessionID)
}

func Test_TrackVisitor_DefaultsReferrerToDirect(t *testing.T) {
	visitors := &fakeVisitorStore{}
	r := visitorRouter(visitors)

	w, _ := doJSON(t, r, http.MethodPost, "/api/visitor/track", `{"page": "/"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, visitors.upserts, 1)
	assert.Equal(t, "direct", visitors.upserts[0].Referrer)
}

func Test_TrackVisitor_RequiresPage(t *testing.T) {
	visitors := &fakeVisitorStore{}
	r := visitorRouter(visitors)

	w, parsed := doJSON(t, r, http.MethodPost, "/api/visitor/track", `{"referrer": "x"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, parsed["success"])
	assert.Empty(t, visitors.upserts)
}

func Test_SessionID_Format(t *testing.T) {
	now := time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "10.0.0.1-2025-03-14", SessionID("10.0.0.1", now))
}

func Test_PeriodStart(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(-24*time.Hour), periodStart("24h", now))
	assert.Equal(t, now.AddDate(0, 0, -7), periodStart("7d", now))
	assert.Equal(t, now.AddDate(0, 0, -30), periodStart("30d", now))
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), periodStart("all", now))
	// unknown periods fall back to 7 days
	assert.Equal(t, now.AddDate(0, 0, -7), periodStart("fortnight", now))
}

func Test_VisitorStats_EchoesPeriod(t *testing.T) {
	visitors := &fakeVisitorStore{stats: &model.VisitorStats{Total: 42, Unique: 7}}
	r := visitorRouter(visitors)

	w, parsed := doJSON(t, r, http.MethodGet, "/api/visitor/stats?period=30d", "")

	assert.Equal(t, http.StatusOK, w.Code)
	stats, ok := parsed["stats"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "30d", stats["period"])
	assert.Equal(t, float64(42), stats["total"])
}

func Test_RecentVisitors(t *testing.T) {
	visitors := &fakeVisitorStore{recent: []model.Visitor{
		{Page: "/jobs", SessionID: "1.2.3.4-2025-03-14"},
	}}
	r := visitorRouter(visitors)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/visitor/recent", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	assert.Len(t, parsed["visitors"], 1)
}
