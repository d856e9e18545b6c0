package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moraputalapraveen/hireme4u-backend/pkg/model"
)

type AnalyticsRepository struct {
	db *pgxpool.Pool
}

// Insert appends an event. Analytics records are never updated or deleted.
func (r *AnalyticsRepository) Insert(ctx context.Context, e *model.AnalyticsEvent) error {
	const q = `
INSERT INTO analytics (event_type, event_data, url, device, session_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, timestamp
`
	row := r.db.QueryRow(ctx, q, e.EventType, e.EventData, e.URL, e.Device, e.SessionID)
	if err := row.Scan(&e.ID, &e.Timestamp); err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}
	return nil
}

// Stats reports view/search totals and the five most common search terms.
func (r *AnalyticsRepository) Stats(ctx context.Context) (*model.AnalyticsStats, error) {
	stats := &model.AnalyticsStats{}

	if err := r.db.QueryRow(ctx,
		"SELECT COUNT(1) FROM analytics WHERE event_type = $1", model.EventPageView,
	).Scan(&stats.TotalViews); err != nil {
		return nil, fmt.Errorf("count page views: %w", err)
	}

	if err := r.db.QueryRow(ctx,
		"SELECT COUNT(1) FROM analytics WHERE event_type = $1", model.EventSearch,
	).Scan(&stats.TotalSearches); err != nil {
		return nil, fmt.Errorf("count searches: %w", err)
	}

	const popularQ = `
SELECT event_data, COUNT(1)
FROM analytics
WHERE event_type = $1
GROUP BY event_data
ORDER BY COUNT(1) DESC
LIMIT 5
`
	rows, err := r.db.Query(ctx, popularQ, model.EventSearch)
	if err != nil {
		return nil, fmt.Errorf("query popular searches: %w", err)
	}
	defer rows.Close()

	stats.PopularCategories = make([]model.CountByKey, 0, 5)
	for rows.Next() {
		var c model.CountByKey
		if err := rows.Scan(&c.Key, &c.Count); err != nil {
			return nil, fmt.Errorf("scan popular search row: %w", err)
		}
		stats.PopularCategories = append(stats.PopularCategories, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return stats, nil
}

// Detailed lists events newest first, optionally bounded to a date range,
// capped at 100 rows.
func (r *AnalyticsRepository) Detailed(ctx context.Context, start, end *time.Time) ([]model.AnalyticsEvent, error) {
	q := `
SELECT id, event_type, event_data, url, device, session_id, timestamp
FROM analytics
`
	args := []interface{}{}
	if start != nil && end != nil {
		q += "WHERE timestamp >= $1 AND timestamp <= $2\n"
		args = append(args, *start, *end)
	}
	q += "ORDER BY timestamp DESC LIMIT 100"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query analytics: %w", err)
	}
	defer rows.Close()

	out := make([]model.AnalyticsEvent, 0)
	for rows.Next() {
		var e model.AnalyticsEvent
		if err := rows.Scan(&e.ID, &e.EventType, &e.EventData, &e.URL, &e.Device, &e.SessionID, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan analytics row: %w", err)
		}
		out = append(out, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}
