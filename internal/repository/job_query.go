package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/moraputalapraveen/hireme4u-backend/pkg/model"
)

// sortColumns maps the public sortBy names onto real columns. Identifiers
// cannot be bound as query parameters, so unknown names silently fall back
// to posted_date instead of being passed through.
var sortColumns = map[string]string{
	"postedDate":      "posted_date",
	"title":           "title",
	"company":         "company",
	"location":        "location",
	"category":        "category",
	"jobType":         "job_type",
	"experienceLevel": "experience_level",
	"createdAt":       "created_at",
}

// datePostedOffsets maps the symbolic datePosted values to day offsets.
// "today" means "within the last 1 day", matching the long-standing
// behavior clients depend on.
var datePostedOffsets = map[string]int{
	"today":  1,
	"3days":  3,
	"7days":  7,
	"30days": 30,
}

// dateOffsetDays resolves a datePosted value to a day offset. Unrecognized
// non-numeric values report false and apply no filter.
func dateOffsetDays(v string) (int, bool) {
	if days, ok := datePostedOffsets[v]; ok {
		return days, true
	}
	if days, err := strconv.Atoi(v); err == nil {
		return days, true
	}
	return 0, false
}

// buildJobListFilter translates the listing parameters into a WHERE clause
// and its bind arguments. All filters combine with AND; the search term is
// OR-ed across title, company, description and location. Malformed optional
// values degrade to "no filter" and never fail the request.
func buildJobListFilter(q *model.ListJobsQuery, now time.Time) (string, []interface{}) {
	var conds []string
	var args []interface{}

	bind := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.Search != "" {
		p := bind("%" + q.Search + "%")
		conds = append(conds, fmt.Sprintf(
			"(title ILIKE %[1]s OR company ILIKE %[1]s OR description ILIKE %[1]s OR location ILIKE %[1]s)", p))
	}
	if q.Category != "" {
		conds = append(conds, "category = "+bind(q.Category))
	}
	if q.JobType != "" {
		conds = append(conds, "job_type = "+bind(q.JobType))
	}
	if q.ExperienceLevel != "" {
		conds = append(conds, "experience_level = "+bind(q.ExperienceLevel))
	}
	if q.Location != "" {
		conds = append(conds, "location ILIKE "+bind("%"+q.Location+"%"))
	}
	if q.IsFresherFriendly == "true" {
		conds = append(conds, "is_fresher_friendly = true")
	}
	if q.DatePosted != "" {
		if days, ok := dateOffsetDays(q.DatePosted); ok {
			conds = append(conds, "posted_date >= "+bind(now.AddDate(0, 0, -days)))
		}
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// sortClause builds the ORDER BY clause from the allow-listed sort column
// and direction. Default is posted_date descending.
func sortClause(sortBy, sortOrder string) string {
	col, ok := sortColumns[sortBy]
	if !ok {
		col = "posted_date"
	}
	dir := "DESC"
	if sortOrder == "asc" {
		dir = "ASC"
	}
	return " ORDER BY " + col + " " + dir
}

// normalizePaging applies the 1-indexed pagination defaults.
func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
