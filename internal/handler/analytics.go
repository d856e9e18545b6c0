package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moraputalapraveen/hireme4u-backend/pkg"
	"github.com/moraputalapraveen/hireme4u-backend/pkg/model"
	"github.com/moraputalapraveen/hireme4u-backend/pkg/response"
)

// TrackEvent appends an analytics event.
func (h *Handler) TrackEvent(c *gin.Context) {
	var req model.TrackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !req.EventType.Valid() {
		response.BadRequest(c, "invalid event type")
		return
	}

	sessionID := c.GetHeader("Session-Id")
	if sessionID == "" {
		sessionID = "anonymous"
	}

	event := &model.AnalyticsEvent{
		EventType: req.EventType,
		EventData: req.EventData,
		URL:       req.URL,
		Device:    pkg.DetectDevice(c.Request.UserAgent()),
		SessionID: sessionID,
	}
	if err := h.Analytics.Insert(c.Request.Context(), event); err != nil {
		h.Logger.Sugar().Errorw("event tracking failed", "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, gin.H{})
}

// AnalyticsStats reports view/search totals and popular search terms.
func (h *Handler) AnalyticsStats(c *gin.Context) {
	stats, err := h.Analytics.Stats(c.Request.Context())
	if err != nil {
		h.Logger.Sugar().Errorw("analytics stats failed", "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, gin.H{
		"totalViews":        stats.TotalViews,
		"totalSearches":     stats.TotalSearches,
		"popularCategories": stats.PopularCategories,
	})
}

// DetailedAnalytics lists recent events, optionally bounded to a date
// range. Malformed dates are ignored rather than failing the request.
func (h *Handler) DetailedAnalytics(c *gin.Context) {
	var start, end *time.Time
	if s, errS := time.Parse("2006-01-02", c.Query("startDate")); errS == nil {
		if e, errE := time.Parse("2006-01-02", c.Query("endDate")); errE == nil {
			start, end = &s, &e
		}
	}

	events, err := h.Analytics.Detailed(c.Request.Context(), start, end)
	if err != nil {
		h.Logger.Sugar().Errorw("detailed analytics failed", "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, gin.H{"analytics": events})
}
