package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moraputalapraveen/hireme4u-backend/pkg"
	"github.com/moraputalapraveen/hireme4u-backend/pkg/model"
	"github.com/moraputalapraveen/hireme4u-backend/pkg/response"
)

const recentVisitorLimit = 50

// TrackVisitor records a page visit. A repeat visit from the same client
// and page on the same calendar day increments a counter instead of
// inserting a new row.
func (h *Handler) TrackVisitor(c *gin.Context) {
	var req model.TrackVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	ua := c.Request.UserAgent()
	if ua == "" {
		ua = "unknown"
	}
	info := pkg.ParseUserAgent(ua)

	referrer := req.Referrer
	if referrer == "" {
		referrer = "direct"
	}

	visitor := &model.Visitor{
		IPAddress: ip,
		UserAgent: ua,
		Page:      req.Page,
		Referrer:  referrer,
		Device:    info.Device,
		Browser:   info.Browser,
		OS:        info.OS,
		SessionID: SessionID(ip, time.Now()),
	}
	if err := h.Visitors.Upsert(c.Request.Context(), visitor); err != nil {
		h.Logger.Sugar().Errorw("visitor tracking failed", "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, gin.H{})
}

// SessionID approximates a client identity as IP plus calendar day. It is
// a dedup key, not a security concept.
func SessionID(ip string, now time.Time) string {
	return ip + "-" + now.Format("2006-01-02")
}

// periodStart resolves the stats period parameter. Unknown values fall
// back to 7 days.
func periodStart(period string, now time.Time) time.Time {
	switch period {
	case "24h":
		return now.Add(-24 * time.Hour)
	case "7d":
		return now.AddDate(0, 0, -7)
	case "30d":
		return now.AddDate(0, 0, -30)
	case "all":
		return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	default:
		return now.AddDate(0, 0, -7)
	}
}

// VisitorStats aggregates visit counters for the requested period.
// Requires an admin token.
func (h *Handler) VisitorStats(c *gin.Context) {
	period := c.DefaultQuery("period", "7d")
	stats, err := h.Visitors.Stats(c.Request.Context(), periodStart(period, time.Now()))
	if err != nil {
		h.Logger.Sugar().Errorw("visitor stats failed", "err", err)
		response.InternalError(c, "")
		return
	}
	stats.Period = period
	response.OK(c, gin.H{"stats": stats})
}

// RecentVisitors returns the latest visit records. Requires an admin token.
func (h *Handler) RecentVisitors(c *gin.Context) {
	visitors, err := h.Visitors.Recent(c.Request.Context(), recentVisitorLimit)
	if err != nil {
		h.Logger.Sugar().Errorw("recent visitors failed", "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, gin.H{"visitors": visitors})
}
