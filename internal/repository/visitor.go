package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moraputalapraveen/hireme4u-backend/pkg/model"
)

type VisitorRepository struct {
	db *pgxpool.Pool
}

// Upsert records a visit. The (session_id, page) uniqueness constraint
// turns a same-day repeat into a counter increment instead of a new row.
func (r *VisitorRepository) Upsert(ctx context.Context, v *model.Visitor) error {
	const q = `
INSERT INTO visitors (ip_address, user_agent, page, referrer, device, browser, os, session_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (session_id, page) DO UPDATE
SET visit_count = visitors.visit_count + 1, visited_at = now()
`
	_, err := r.db.Exec(ctx, q,
		v.IPAddress, v.UserAgent, v.Page, v.Referrer, v.Device, v.Browser, v.OS, v.SessionID,
	)
	if err != nil {
		return fmt.Errorf("upsert visitor: %w", err)
	}
	return nil
}

// Stats aggregates visit counters since the given time.
func (r *VisitorRepository) Stats(ctx context.Context, since time.Time) (*model.VisitorStats, error) {
	stats := &model.VisitorStats{}

	const totalsQ = `
SELECT COUNT(1), COUNT(DISTINCT ip_address)
FROM visitors
WHERE visited_at >= $1
`
	if err := r.db.QueryRow(ctx, totalsQ, since).Scan(&stats.Total, &stats.Unique); err != nil {
		return nil, fmt.Errorf("count visitors: %w", err)
	}

	var err error
	stats.ByDay, err = r.countGroups(ctx, `
SELECT to_char(visited_at, 'YYYY-MM-DD') AS day, COUNT(1)
FROM visitors WHERE visited_at >= $1
GROUP BY day ORDER BY day`, since)
	if err != nil {
		return nil, err
	}

	stats.ByPage, err = r.countGroups(ctx, `
SELECT page, COUNT(1)
FROM visitors WHERE visited_at >= $1
GROUP BY page ORDER BY COUNT(1) DESC LIMIT 10`, since)
	if err != nil {
		return nil, err
	}

	stats.ByDevice, err = r.countGroups(ctx, `
SELECT device, COUNT(1)
FROM visitors WHERE visited_at >= $1
GROUP BY device`, since)
	if err != nil {
		return nil, err
	}

	stats.ByBrowser, err = r.countGroups(ctx, `
SELECT browser, COUNT(1)
FROM visitors WHERE visited_at >= $1
GROUP BY browser ORDER BY COUNT(1) DESC LIMIT 5`, since)
	if err != nil {
		return nil, err
	}

	stats.TopReferrers, err = r.countGroups(ctx, `
SELECT referrer, COUNT(1)
FROM visitors WHERE visited_at >= $1 AND referrer <> 'direct'
GROUP BY referrer ORDER BY COUNT(1) DESC LIMIT 5`, since)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *VisitorRepository) countGroups(ctx context.Context, q string, args ...interface{}) ([]model.CountByKey, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("visitor aggregation: %w", err)
	}
	defer rows.Close()

	out := make([]model.CountByKey, 0)
	for rows.Next() {
		var c model.CountByKey
		if err := rows.Scan(&c.Key, &c.Count); err != nil {
			return nil, fmt.Errorf("scan aggregation row: %w", err)
		}
		out = append(out, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

// Recent returns the latest visit records, newest first.
func (r *VisitorRepository) Recent(ctx context.Context, limit int) ([]model.Visitor, error) {
	const q = `
SELECT id, ip_address, user_agent, page, referrer, device, browser, os,
	session_id, visit_count, visited_at
FROM visitors
ORDER BY visited_at DESC
LIMIT $1
`
	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent visitors: %w", err)
	}
	defer rows.Close()

	out := make([]model.Visitor, 0, limit)
	for rows.Next() {
		var v model.Visitor
		if err := rows.Scan(
			&v.ID, &v.IPAddress, &v.UserAgent, &v.Page, &v.Referrer, &v.Device,
			&v.Browser, &v.OS, &v.SessionID, &v.VisitCount, &v.VisitedAt,
		); err != nil {
			return nil, fmt.Errorf("scan visitor row: %w", err)
		}
		out = append(out, v)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}
