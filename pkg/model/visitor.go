package model

import "time"

type Visitor struct {
	ID         int64     `json:"id" db:"id"`
	IPAddress  string    `json:"ipAddress" db:"ip_address"`
	UserAgent  string    `json:"userAgent" db:"user_agent"`
	Page       string    `json:"page" db:"page"`
	Referrer   string    `json:"referrer" db:"referrer"`
	Device     string    `json:"device" db:"device"`
	Browser    string    `json:"browser" db:"browser"`
	OS         string    `json:"os" db:"os"`
	SessionID  string    `json:"sessionId" db:"session_id"`
	VisitCount int       `json:"visitCount" db:"visit_count"`
	VisitedAt  time.Time `json:"visitedAt" db:"visited_at"`
}

type TrackVisitRequest struct {
	Page     string `json:"page" binding:"required"`
	Referrer string `json:"referrer"`
}

// CountByKey is a generic (key, count) aggregation row used by the visitor
// and analytics stats endpoints.
type CountByKey struct {
	Key   string `json:"_id"`
	Count int    `json:"count"`
}

type VisitorStats struct {
	Period       string       `json:"period"`
	Total        int          `json:"total"`
	Unique       int          `json:"unique"`
	ByDay        []CountByKey `json:"byDay"`
	ByPage       []CountByKey `json:"byPage"`
	ByDevice     []CountByKey `json:"byDevice"`
	ByBrowser    []CountByKey `json:"byBrowser"`
	TopReferrers []CountByKey `json:"topReferrers"`
}
