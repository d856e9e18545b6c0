package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moraputalapraveen/hireme4u-backend/pkg/model"
)

var ErrJobNotFound = errors.New("job not found")

const maxFacetLocations = 20

// JobRepository is the persistence layer for job postings, including the
// listing query engine.
type JobRepository struct {
	db *pgxpool.Pool
}

const jobColumns = `id, title, slug, company, location, description, requirements, salary,
	apply_link, category, job_type, experience_level, company_description,
	is_fresher_friendly, posted_date, created_at, updated_at`

func scanJob(row pgx.Row) (*model.Job, error) {
	var j model.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Slug, &j.Company, &j.Location, &j.Description, &j.Requirements,
		&j.Salary, &j.ApplyLink, &j.Category, &j.JobType, &j.ExperienceLevel,
		&j.CompanyDescription, &j.IsFresherFriendly, &j.PostedDate, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Create inserts a normalized posting and fills in the store-assigned
// fields.
func (r *JobRepository) Create(ctx context.Context, j *model.Job) error {
	const q = `
INSERT INTO jobs (
	title, slug, company, location, description, requirements, salary,
	apply_link, category, job_type, experience_level, company_description,
	is_fresher_friendly, posted_date
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id, created_at, updated_at
`
	requirements := j.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	row := r.db.QueryRow(ctx, q,
		j.Title, j.Slug, j.Company, j.Location, j.Description, requirements, j.Salary,
		j.ApplyLink, j.Category, j.JobType, j.ExperienceLevel, j.CompanyDescription,
		j.IsFresherFriendly, j.PostedDate,
	)
	if err := row.Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// List runs the filtered, sorted, paginated query and the matching total
// count. The count ignores paging so callers can derive the page count.
func (r *JobRepository) List(ctx context.Context, q *model.ListJobsQuery) ([]model.Job, *model.Pagination, error) {
	page, limit := normalizePaging(q.Page, q.Limit)
	where, args := buildJobListFilter(q, time.Now())

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(1) FROM jobs"+where, args...).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("count jobs: %w", err)
	}

	query := "SELECT " + jobColumns + " FROM jobs" + where + sortClause(q.SortBy, q.SortOrder) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, (page-1)*limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]model.Job, 0, limit)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("scan job row: %w", err)
		}
		jobs = append(jobs, *j)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("rows error: %w", rows.Err())
	}

	pagination := &model.Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: (total + limit - 1) / limit,
	}
	return jobs, pagination, nil
}

// GetBySlug resolves a single posting by its slug.
func (r *JobRepository) GetBySlug(ctx context.Context, slug string) (*model.Job, error) {
	const q = "SELECT " + jobColumns + " FROM jobs WHERE slug = $1"
	j, err := scanJob(r.db.QueryRow(ctx, q, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("scan job by slug: %w", err)
	}
	return j, nil
}

// FilterOptions computes the distinct facet values over the entire
// collection, never the filtered subset, so dropdown options stay stable
// while the user filters.
func (r *JobRepository) FilterOptions(ctx context.Context) (*model.FilterOptions, error) {
	categories, err := r.distinctValues(ctx, "category", 0)
	if err != nil {
		return nil, err
	}
	jobTypes, err := r.distinctValues(ctx, "job_type", 0)
	if err != nil {
		return nil, err
	}
	experienceLevels, err := r.distinctValues(ctx, "experience_level", 0)
	if err != nil {
		return nil, err
	}
	locations, err := r.distinctValues(ctx, "location", maxFacetLocations)
	if err != nil {
		return nil, err
	}
	return &model.FilterOptions{
		Categories:       categories,
		JobTypes:         jobTypes,
		ExperienceLevels: experienceLevels,
		Locations:        locations,
	}, nil
}

// distinctValues lists the distinct values of a column. The column names
// come from fixed call sites, never user input.
func (r *JobRepository) distinctValues(ctx context.Context, column string, limit int) ([]string, error) {
	q := fmt.Sprintf("SELECT DISTINCT %[1]s FROM jobs ORDER BY %[1]s", column)
	if limit > 0 {
		q += fmt.Sprintf(" LIMIT %d", limit)
	}
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan distinct %s: %w", column, err)
		}
		values = append(values, v)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return values, nil
}

// DeleteOlderThan removes postings with posted_date strictly before the
// cutoff and reports how many were deleted.
func (r *JobRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM jobs WHERE posted_date < $1", cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old jobs: %w", err)
	}
	return tag.RowsAffected(), nil
}
