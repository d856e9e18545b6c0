package model

import "time"

type EventType string

const (
	EventPageView         EventType = "page_view"
	EventSearch           EventType = "search"
	EventApplicationClick EventType = "application_click"
	EventBookmark         EventType = "bookmark"
	EventShare            EventType = "share"
)

func (e EventType) Valid() bool {
	switch e {
	case EventPageView, EventSearch, EventApplicationClick, EventBookmark, EventShare:
		return true
	}
	return false
}

type AnalyticsEvent struct {
	ID        int64     `json:"id" db:"id"`
	EventType EventType `json:"eventType" db:"event_type"`
	EventData string    `json:"eventData" db:"event_data"`
	URL       string    `json:"url" db:"url"`
	Device    string    `json:"device" db:"device"`
	SessionID string    `json:"sessionId" db:"session_id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

type TrackEventRequest struct {
	EventType EventType `json:"eventType" binding:"required"`
	EventData string    `json:"eventData"`
	URL       string    `json:"url"`
}

type AnalyticsStats struct {
	TotalViews        int          `json:"totalViews"`
	TotalSearches     int          `json:"totalSearches"`
	PopularCategories []CountByKey `json:"popularCategories"`
}
